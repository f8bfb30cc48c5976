package core

import (
	"errors"
)

var (
	// ErrCardinality is returned when a query that needs exactly one entity
	// finds zero or several.
	ErrCardinality    = errors.New("expected exactly one matching entity")
	ErrEntityNotFound = errors.New("entity not found")
	ErrInvalidDelta   = errors.New("delta time must be finite and non-negative")
	ErrUnknownKey     = errors.New("unknown key name")
	ErrUnknownDrill   = errors.New("unknown drill")
)
