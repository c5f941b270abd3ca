package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGameNotFound is returned when no record matches the given id.
var ErrGameNotFound = errors.New("game not found")

// ValidationError is returned when required fields are absent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PersistenceError wraps any other driver-level failure, including ids the
// store cannot parse. Error keeps the driver message intact so it can be
// returned to clients as is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
