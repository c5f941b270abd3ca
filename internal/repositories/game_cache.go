package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

// ErrCacheMiss is returned when a game is not cached.
var ErrCacheMiss = errors.New("game not found in cache")

// GameCacheRepository caches game records in Redis
type GameCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached records
}

// NewGameCacheRepository creates a new repository instance with the given TTL
func NewGameCacheRepository(client *redis.Client, expiration time.Duration) *GameCacheRepository {
	return &GameCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func gameKey(id string) string {
	return fmt.Sprintf("game:%s", id)
}

// Get returns the cached game or ErrCacheMiss.
func (r *GameCacheRepository) Get(ctx context.Context, id string) (*models.Game, error) {
	key := gameKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var game models.Game
	if err := json.Unmarshal(val, &game); err != nil {
		return nil, fmt.Errorf("decode cached game %s: %w", id, err)
	}

	return &game, nil
}

// Set caches the game with expiration
func (r *GameCacheRepository) Set(ctx context.Context, game *models.Game) error {
	key := gameKey(game.ID.String())

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Delete evicts the game from the cache. Evicting a missing key is not an error.
func (r *GameCacheRepository) Delete(ctx context.Context, id string) error {
	key := gameKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
