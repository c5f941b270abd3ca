package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

//go:generate mockgen -source=create.go -destination=mock_create_test.go -package=handlers

// GameCreator defines the interface that the service must implement.
type GameCreator interface {
	Create(ctx context.Context, title, description string, publishYear int) (*models.Game, error)
}

// CreateGameRequest represents the JSON body for creating a game
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// Title
	// required: true
	// default: Chess
	Title string `json:"title"`

	// Description
	// required: true
	// default: Classic strategy game
	Description string `json:"description"`

	// Publish year
	// required: true
	// default: 1475
	PublishYear int `json:"publishYear"`
}

// missingFields reports whether any required field is absent.
func (req CreateGameRequest) missingFields() bool {
	return req.Title == "" || req.Description == "" || req.PublishYear == 0
}

// NewCreateGameHandler returns an HTTP handler for creating a game.
// @Summary Create a game
// @Description Persists a new game. The id and timestamps are assigned by the store.
// @Tags games
// @Accept json
// @Produce json
// @Param request body handlers.CreateGameRequest true "Game to create"
// @Success 201 {object} models.Game "Created game"
// @Failure 400 {object} handlers.MessageResponse "Missing required fields"
// @Failure 500 {object} handlers.MessageResponse "Persistence failure"
// @Router /games [post]
func NewCreateGameHandler(svc GameCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.RequestIDFromContext(ctx)

		var req CreateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create game request", "request_id", reqID, "error", err)
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if req.missingFields() {
			logger.Log.Warnw("create game request is missing fields", "request_id", reqID, "request", req)
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		game, err := svc.Create(ctx, req.Title, req.Description, req.PublishYear)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				writeMessage(w, http.StatusBadRequest, msgMissingFields)
				return
			}
			logger.Log.Errorw("failed to create game", "request_id", reqID, "error", err)
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, game)
	}
}
