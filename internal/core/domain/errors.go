package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested report or match does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotTrained indicates a corpus query before Initialize.
	// Batch-mode matching requires a built IDF table.
	ErrNotTrained = errors.New("corpus not trained")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
