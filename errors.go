package rogue

import "errors"

var (
	// ErrNilApp is returned by Run when the application is nil.
	ErrNilApp = errors.New("rogue: nil App")

	// ErrBadFont is returned by Run when the configured font atlas
	// cannot be loaded.
	ErrBadFont = errors.New("rogue: load font atlas")

	// ErrBadSize is returned by Run when the configured inner size is
	// zero in either dimension.
	ErrBadSize = errors.New("rogue: window size must be positive")
)
