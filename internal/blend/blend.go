// Package blend implements the composite operations of the raster backend.
//
// Operations are named after the 2D canvas globalCompositeOperation values
// they stand for. All blend functions work on premultiplied alpha bytes in
// the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "errors"

// ErrUnknownOp is returned by ParseOp for names that are not composite operations.
var ErrUnknownOp = errors.New("blend: unknown composite operation")

// Op is a composite operation supported natively by the raster backend.
type Op uint8

const (
	// SourceOver draws the source over the destination (default).
	SourceOver Op = iota
	// Multiply multiplies source and destination colors.
	Multiply
	// Screen is the inverse of multiply.
	Screen
	// Lighten keeps the lighter of source and destination.
	Lighten
	// Darken keeps the darker of source and destination.
	Darken
	// Difference is the absolute difference of source and destination.
	Difference
	// Overlay is hard-light with the layers swapped.
	Overlay
	// Lighter adds source and destination, clamped.
	Lighter
	// HardLight multiplies or screens depending on the source.
	HardLight
	// DestinationOut keeps the destination where the source is transparent.
	DestinationOut
	// ColorBurn darkens the destination to reflect the source.
	ColorBurn

	opCount
)

var opNames = [opCount]string{
	SourceOver:     "source-over",
	Multiply:       "multiply",
	Screen:         "screen",
	Lighten:        "lighten",
	Darken:         "darken",
	Difference:     "difference",
	Overlay:        "overlay",
	Lighter:        "lighter",
	HardLight:      "hard-light",
	DestinationOut: "destination-out",
	ColorBurn:      "color-burn",
}

// String returns the canvas name of the operation.
func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "unknown"
}

// IsValid reports whether o is a known operation.
func (o Op) IsValid() bool {
	return o < opCount
}

// ParseOp returns the operation with the given canvas name.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return SourceOver, ErrUnknownOp
}

// Func is the signature of a per-pixel blend.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for op.
// Unknown operations fall back to source-over.
func FuncFor(op Op) Func {
	switch op {
	case Multiply:
		return blendMultiply
	case Screen:
		return blendScreen
	case Lighten:
		return blendLighten
	case Darken:
		return blendDarken
	case Difference:
		return blendDifference
	case Overlay:
		return blendOverlay
	case Lighter:
		return blendLighter
	case HardLight:
		return blendHardLight
	case DestinationOut:
		return blendDestinationOut
	case ColorBurn:
		return blendColorBurn
	default:
		return blendSourceOver
	}
}
