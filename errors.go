package compose

import "errors"

// Sentinel errors.
var (
	// ErrUnknownBlendMode is returned when a blend mode name or code is not
	// recognized.
	ErrUnknownBlendMode = errors.New("compose: unknown blend mode")

	// ErrInvalidScale is returned by New when the scale or pixel ratio is
	// not a positive finite number.
	ErrInvalidScale = errors.New("compose: scale and pixel ratio must be positive")

	// ErrClosed is returned by operations on a closed Runtime.
	ErrClosed = errors.New("compose: runtime closed")
)
