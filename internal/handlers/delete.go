package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

//go:generate mockgen -source=delete.go -destination=mock_delete_test.go -package=handlers

// GameDeleter defines the interface that the service must implement.
type GameDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewDeleteGameHandler returns an HTTP handler removing a game.
// @Summary Delete a game
// @Description Removes the game with the given id.
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} handlers.MessageResponse "Game deleted"
// @Failure 404 {object} handlers.MessageResponse "Game not found"
// @Failure 500 {object} handlers.MessageResponse "Persistence failure"
// @Router /games/{id} [delete]
func NewDeleteGameHandler(svc GameDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		if err := svc.Delete(ctx, id); err != nil {
			if errors.Is(err, models.ErrGameNotFound) {
				writeMessage(w, http.StatusNotFound, msgGameNotFound)
				return
			}
			logger.Log.Errorw("failed to delete game",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"game_id", id,
				"error", err,
			)
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeMessage(w, http.StatusOK, msgGameDeleted)
	}
}
