package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
	"github.com/sbilibin2017/gw-game-catalog/internal/middlewares"
)

// NewWelcomeHandler returns an HTTP handler answering the root path with a text banner.
// @Summary Welcome banner
// @Description Confirms the service is up. Responds with the non-standard status 234.
// @Tags meta
// @Produce plain
// @Success 234 {string} string "Welcome to my app"
// @Router / [get]
func NewWelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Debugw("welcome request",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"user_agent", r.UserAgent(),
		)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(statusWelcomeCode)
		w.Write([]byte(msgWelcomeBanner))
	}
}
