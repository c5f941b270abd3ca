package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-game-catalog/internal/models"
)

//go:generate mockgen -source=list.go -destination=mock_list_test.go -package=handlers

// GameLister defines the interface that the service must implement.
type GameLister interface {
	List(ctx context.Context) ([]models.Game, error)
}

// ListGamesResponse represents all stored games
// swagger:model ListGamesResponse
type ListGamesResponse struct {
	// Number of games in data
	// default: 1
	Count int `json:"count"`

	// Stored games
	Data []models.Game `json:"data"`
}

// NewListGamesHandler returns an HTTP handler listing every game.
// @Summary List games
// @Description Returns all stored games and their count. No filtering or pagination.
// @Tags games
// @Produce json
// @Success 200 {object} handlers.ListGamesResponse "All games"
// @Failure 500 {object} handlers.MessageResponse "Persistence failure"
// @Router /games [get]
func NewListGamesHandler(svc GameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		games, err := svc.List(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list games",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"error", err,
			)
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		if games == nil {
			games = []models.Game{}
		}

		writeJSON(w, http.StatusOK, ListGamesResponse{
			Count: len(games),
			Data:  games,
		})
	}
}
