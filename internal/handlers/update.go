package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

//go:generate mockgen -source=update.go -destination=mock_update_test.go -package=handlers

// GameUpdater defines the interface that the service must implement.
type GameUpdater interface {
	Update(ctx context.Context, id, title, description string, publishYear int) error
}

// UpdateGameRequest represents the JSON body replacing a game's fields
// swagger:model UpdateGameRequest
type UpdateGameRequest struct {
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

func (req UpdateGameRequest) missingFields() bool {
	return req.Title == "" || req.Description == "" || req.PublishYear == 0
}

// NewUpdateGameHandler returns an HTTP handler replacing a game's fields.
// @Summary Update a game
// @Description Replaces title, description and publish year. The response does not include the record.
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param request body handlers.UpdateGameRequest true "Replacement fields"
// @Success 200 {object} handlers.MessageResponse "Game updated"
// @Failure 400 {object} handlers.MessageResponse "Missing required fields"
// @Failure 404 {object} handlers.MessageResponse "Game not found"
// @Failure 500 {object} handlers.MessageResponse "Persistence failure"
// @Router /games/{id} [put]
func NewUpdateGameHandler(svc GameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.RequestIDFromContext(ctx)
		id := chi.URLParam(r, "id")

		var req UpdateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode update game request", "request_id", reqID, "error", err)
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if req.missingFields() {
			logger.Log.Warnw("update game request is missing fields", "request_id", reqID, "game_id", id)
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		err := svc.Update(ctx, id, req.Title, req.Description, req.PublishYear)
		if err != nil {
			var verr *models.ValidationError
			switch {
			case errors.Is(err, models.ErrGameNotFound):
				writeMessage(w, http.StatusNotFound, msgGameNotFound)
			case errors.As(err, &verr):
				writeMessage(w, http.StatusBadRequest, msgMissingFields)
			default:
				logger.Log.Errorw("failed to update game", "request_id", reqID, "game_id", id, "error", err)
				writeMessage(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeMessage(w, http.StatusOK, msgGameUpdated)
	}
}
