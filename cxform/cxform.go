// Package cxform defines the color transform applied to rendered content.
//
// A Transform has eight components, four channel multipliers followed by
// four additive offsets:
//
//	[rMul, gMul, bMul, aMul, rAdd, gAdd, bAdd, aAdd]
//
// Multipliers scale a channel in its natural range and offsets are added in
// the 0-255 range, so a channel value c becomes clamp(c*mul + add, 0, 255).
package cxform

import (
	"image/color"
	"math"
)

// Transform is an 8-component color transform.
type Transform [8]float64

// Identity leaves colors unchanged.
var Identity = Transform{1, 1, 1, 1, 0, 0, 0, 0}

// Component indices.
const (
	RedMul = iota
	GreenMul
	BlueMul
	AlphaMul
	RedAdd
	GreenAdd
	BlueAdd
	AlphaAdd
)

// IsIdentity reports whether t leaves every color unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Tint returns a transform that multiplies each channel by the given factors.
func Tint(r, g, b, a float64) Transform {
	return Transform{r, g, b, a, 0, 0, 0, 0}
}

// Apply transforms c and returns the result as a premultiplied color.
func (t Transform) Apply(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := color.NRGBA{
		R: channel(n.R, t[RedMul], t[RedAdd]),
		G: channel(n.G, t[GreenMul], t[GreenAdd]),
		B: channel(n.B, t[BlueMul], t[BlueAdd]),
		A: channel(n.A, t[AlphaMul], t[AlphaAdd]),
	}
	return color.RGBAModel.Convert(out).(color.RGBA)
}

func channel(v uint8, mul, add float64) uint8 {
	return uint8(Clamp255(float64(v)*mul + add))
}

// Clamp255 clamps v to [0, 255]. NaN maps to 0.
func Clamp255(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 255))
}
