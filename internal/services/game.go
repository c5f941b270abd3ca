package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=game.go -destination=mock_game_test.go -package=services

// GameReader defines read-only operations for games.
type GameReader interface {
	GetByID(ctx context.Context, id string) (*models.Game, error)
	List(ctx context.Context) ([]models.Game, error)
}

// GameWriter defines write operations for games.
type GameWriter interface {
	Create(ctx context.Context, title, description string, publishYear int) (*models.Game, error)
	Update(ctx context.Context, id, title, description string, publishYear int) error
	Delete(ctx context.Context, id string) error
}

// GameCache caches game records by id.
type GameCache interface {
	Get(ctx context.Context, id string) (*models.Game, error) // Returns an error on miss
	Set(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GameService handles game CRUD, caching and lifecycle event publishing.
// cache and kafkaWriter are optional.
type GameService struct {
	reader      GameReader
	writer      GameWriter
	cache       GameCache
	kafkaWriter KafkaWriter

	// fillMu guards writes. A cache fill only happens if no write committed
	// since the fill's read started.
	fillMu sync.Mutex
	writes uint64
}

// NewGameService creates a new GameService.
func NewGameService(
	reader GameReader,
	writer GameWriter,
	cache GameCache,
	kafkaWriter KafkaWriter,
) *GameService {
	return &GameService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a game lifecycle event to Kafka.
// Failures are logged and never reach the caller.
func (s *GameService) publishEvent(ctx context.Context, operation, gameID string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "game_id", gameID, "operation", operation)
		return
	}

	event := models.GameEvent{
		EventID:   uuid.NewString(),
		GameID:    gameID,
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal game event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(gameID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish game event to Kafka", "event_id", event.EventID, "game_id", gameID, "error", err)
	} else {
		logger.Log.Infow("Game event published to Kafka", "event_id", event.EventID, "game_id", gameID, "operation", operation)
	}
}

// cacheKey returns the canonical form of id so that every spelling uuid.Parse
// accepts maps to the same cache entry. ok is false for ids that are not UUIDs.
func cacheKey(id string) (key string, ok bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// generation returns the current write generation.
func (s *GameService) generation() uint64 {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	return s.writes
}

// fill caches game unless a write committed after generation gen was taken.
func (s *GameService) fill(ctx context.Context, game *models.Game, gen uint64) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	if s.writes != gen {
		logger.Log.Debugw("skipping cache fill after concurrent write", "game_id", game.ID)
		return
	}
	if err := s.cache.Set(ctx, game); err != nil {
		logger.Log.Warnw("failed to cache game", "game_id", game.ID, "error", err)
	}
}

// evict drops the cached record after a committed mutation.
func (s *GameService) evict(ctx context.Context, id string) {
	s.fillMu.Lock()
	s.writes++
	s.fillMu.Unlock()

	if s.cache == nil {
		return
	}
	key, ok := cacheKey(id)
	if !ok {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Log.Warnw("failed to evict cached game", "game_id", key, "error", err)
	}
}

// Create persists a new game and publishes a created event.
func (s *GameService) Create(ctx context.Context, title, description string, publishYear int) (*models.Game, error) {
	game, err := s.writer.Create(ctx, title, description, publishYear)
	if err != nil {
		logger.Log.Errorw("failed to create game", "title", title, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.GameCreated, game.ID.String())

	return game, nil
}

// List returns all stored games.
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	games, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list games", "error", err)
		return nil, err
	}
	return games, nil
}

// Get returns a game by id, reading through the cache when one is configured.
func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	key, cacheable := cacheKey(id)
	cacheable = cacheable && s.cache != nil

	var gen uint64
	if cacheable {
		game, err := s.cache.Get(ctx, key)
		if err == nil {
			return game, nil
		}
		logger.Log.Debugw("game cache miss", "game_id", key, "error", err)
		gen = s.generation()
	}

	game, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get game", "game_id", id, "error", err)
		return nil, err
	}

	if cacheable {
		s.fill(ctx, game, gen)
	}

	return game, nil
}

// Update replaces the fields of a game. Returns models.ErrGameNotFound when
// no game has the id.
func (s *GameService) Update(ctx context.Context, id, title, description string, publishYear int) error {
	if err := s.writer.Update(ctx, id, title, description, publishYear); err != nil {
		if errors.Is(err, models.ErrGameNotFound) {
			logger.Log.Warnw("game to update not found", "game_id", id)
		} else {
			logger.Log.Errorw("failed to update game", "game_id", id, "error", err)
		}
		return err
	}

	if key, ok := cacheKey(id); ok {
		id = key
	}
	s.evict(ctx, id)
	s.publishEvent(ctx, models.GameUpdated, id)

	return nil
}

// Delete removes a game. Returns models.ErrGameNotFound when no game has the id.
func (s *GameService) Delete(ctx context.Context, id string) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrGameNotFound) {
			logger.Log.Warnw("game to delete not found", "game_id", id)
		} else {
			logger.Log.Errorw("failed to delete game", "game_id", id, "error", err)
		}
		return err
	}

	if key, ok := cacheKey(id); ok {
		id = key
	}
	s.evict(ctx, id)
	s.publishEvent(ctx, models.GameDeleted, id)

	return nil
}
