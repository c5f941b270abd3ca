package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

//go:generate mockgen -source=get.go -destination=mock_get_test.go -package=handlers

// GameGetter defines the interface that the service must implement.
type GameGetter interface {
	Get(ctx context.Context, id string) (*models.Game, error)
}

// NewGetGameHandler returns an HTTP handler fetching a game by id.
// Lookup failures, a missing game included, are reported as 500.
// @Summary Get a game
// @Description Returns the game with the given id.
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.Game "Game"
// @Failure 500 {object} handlers.MessageResponse "Invalid id, missing game or persistence failure"
// @Router /games/{id} [get]
func NewGetGameHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		game, err := svc.Get(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to get game",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"game_id", id,
				"error", err,
			)
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, game)
	}
}
