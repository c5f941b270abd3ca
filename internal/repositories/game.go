package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

// Queries are written with '?' bind vars and rebound for the driver in use.
const (
	sqlGetGameByID = `
		SELECT id, title, description, publish_year, created_at, updated_at
		FROM games
		WHERE id = ?
	`

	sqlListGames = `
		SELECT id, title, description, publish_year, created_at, updated_at
		FROM games
		ORDER BY created_at, id
	`

	sqlInsertGame = `
		INSERT INTO games (id, title, description, publish_year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	sqlUpdateGame = `
		UPDATE games
		SET title = ?, description = ?, publish_year = ?, updated_at = ?
		WHERE id = ?
	`

	sqlDeleteGame = `
		DELETE FROM games WHERE id = ?
	`
)

// GameReadRepository handles game read operations
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// GetByID returns the game with the given id or models.ErrGameNotFound.
func (r *GameReadRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	gameID, err := parseID("get game", id)
	if err != nil {
		return nil, err
	}

	var game models.Game
	err = r.db.GetContext(ctx, &game, r.db.Rebind(sqlGetGameByID), gameID)
	logQuery(sqlGetGameByID, []any{gameID}, game, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrGameNotFound
	}
	if err != nil {
		return nil, &models.PersistenceError{Op: "get game", Err: err}
	}

	return &game, nil
}

// List returns every stored game. The result is never nil.
func (r *GameReadRepository) List(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	err := r.db.SelectContext(ctx, &games, r.db.Rebind(sqlListGames))
	logQuery(sqlListGames, nil, len(games), err)

	if err != nil {
		return nil, &models.PersistenceError{Op: "list games", Err: err}
	}
	if games == nil {
		games = []models.Game{}
	}

	return games, nil
}

// GameWriteRepository handles game write operations.
// It assigns ids and maintains timestamps.
type GameWriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewGameWriteRepository(db *sqlx.DB) *GameWriteRepository {
	return &GameWriteRepository{
		db: db,
		now: func() time.Time {
			// Postgres keeps microseconds.
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

// Create validates and inserts a new game and returns the stored record.
func (r *GameWriteRepository) Create(ctx context.Context, title, description string, publishYear int) (*models.Game, error) {
	now := r.now()
	game := models.Game{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		PublishYear: publishYear,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}

	args := []any{game.ID, game.Title, game.Description, game.PublishYear, game.CreatedAt, game.UpdatedAt}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(sqlInsertGame), args...)
	logQuery(sqlInsertGame, args, game.ID, err)

	if err != nil {
		return nil, &models.PersistenceError{Op: "insert game", Err: err}
	}

	return &game, nil
}

// Update replaces the fields of an existing game and refreshes updated_at.
func (r *GameWriteRepository) Update(ctx context.Context, id, title, description string, publishYear int) error {
	gameID, err := parseID("update game", id)
	if err != nil {
		return err
	}

	game := models.Game{Title: title, Description: description, PublishYear: publishYear}
	if err := game.Validate(); err != nil {
		return err
	}

	args := []any{title, description, publishYear, r.now(), gameID}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(sqlUpdateGame), args...)

	return checkAffected("update game", sqlUpdateGame, args, res, err)
}

// Delete removes the game with the given id.
func (r *GameWriteRepository) Delete(ctx context.Context, id string) error {
	gameID, err := parseID("delete game", id)
	if err != nil {
		return err
	}

	args := []any{gameID}
	res, err := r.db.ExecContext(ctx, r.db.Rebind(sqlDeleteGame), args...)

	return checkAffected("delete game", sqlDeleteGame, args, res, err)
}

// checkAffected maps a single-row statement result to ErrGameNotFound
// when no row matched.
func checkAffected(op, query string, args []any, res sql.Result, err error) error {
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return &models.PersistenceError{Op: op, Err: err}
	}
	if rowsAffected == 0 {
		return models.ErrGameNotFound
	}
	return nil
}

func parseID(op, id string) (uuid.UUID, error) {
	gameID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &models.PersistenceError{
			Op:  op,
			Err: fmt.Errorf("invalid game id %q: %w", id, err),
		}
	}
	return gameID, nil
}

// logQuery logs the statement collapsed to a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
