package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrInvalidMood is returned at the write boundary when a mood value
	// falls outside the six-label enum. Out-of-enum values are never
	// persisted.
	ErrInvalidMood = errors.New("invalid mood label")
)
