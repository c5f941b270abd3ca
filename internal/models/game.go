package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a game record in the database
type Game struct {
	ID          uuid.UUID `json:"id" db:"id"`                    // Primary key, assigned on insert
	Title       string    `json:"title" db:"title"`              // Required
	Description string    `json:"description" db:"description"`  // Required
	PublishYear int       `json:"publishYear" db:"publish_year"` // Required, zero counts as absent
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`     // Last update timestamp
}

// Validate checks the required fields of the record and reports
// every missing one in a single *ValidationError.
func (g Game) Validate() error {
	var missing []string
	if g.Title == "" {
		missing = append(missing, "title")
	}
	if g.Description == "" {
		missing = append(missing, "description")
	}
	if g.PublishYear == 0 {
		missing = append(missing, "publishYear")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
