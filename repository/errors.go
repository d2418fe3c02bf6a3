package repository

import "errors"

var (
	// ErrNotFound reports that no entity matched the given user and id.
	ErrNotFound = errors.New("not found")

	// ErrMaxHitsReached rejects an increment on a habit already at max_hits.
	ErrMaxHitsReached = errors.New("already at maximum hit level")

	// ErrMinHitsReached rejects a decrement on a habit already at zero hits.
	ErrMinHitsReached = errors.New("already at minimum hit level")

	// ErrAlreadyCompleted rejects completing a todo a second time.
	ErrAlreadyCompleted = errors.New("already completed")
)
