package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Play errors
	ErrInvalidPlay     = errors.New("invalid play")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidTile     = errors.New("invalid tile")
	ErrInvalidLayout   = errors.New("invalid bonus layout")

	// Tile supply errors
	ErrNotEnoughTiles = errors.New("not enough tiles in bag")
	ErrInvalidCount   = errors.New("invalid tile count")

	// Table errors
	ErrTableNotFound = errors.New("table not found")
)

// PlayError reports a rejected play. The board is left untouched.
type PlayError struct {
	Placements  []Placement
	Orientation Orientation
	Reason      ValidationReason
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("invalid play: %s (orientation %s, %d tiles)", e.Reason, e.Orientation, len(e.Placements))
}

// Is lets errors.Is match ErrInvalidPlay
func (e *PlayError) Is(target error) bool {
	return target == ErrInvalidPlay
}
