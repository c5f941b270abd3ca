package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-game-catalog/internal/logger"
)

// Messages returned in MessageResponse bodies.
const (
	msgMissingFields  = "Send all required fields: title, description publishYear"
	msgInvalidBody    = "Invalid request body"
	msgGameNotFound   = "Game not found"
	msgGameUpdated    = "Game updated"
	msgGameDeleted    = "Game deleted"
	msgWelcomeBanner  = "Welcome to my app"
	statusWelcomeCode = 234
)

// MessageResponse is the body of acknowledgements and error responses
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable status
	// default: Game not found
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
