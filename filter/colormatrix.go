package filter

import (
	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// ColorMatrix transforms every pixel with a 4×5 matrix applied to
// straight (unpremultiplied) channels in the 0-255 range:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// The fifth column holds offsets in the 0-255 range.
type ColorMatrix struct {
	Matrix [20]float64
}

// NewColorMatrix returns a filter with the given row-major matrix.
func NewColorMatrix(m [20]float64) *ColorMatrix {
	return &ColorMatrix{Matrix: m}
}

// IdentityMatrix leaves pixels unchanged.
var IdentityMatrix = [20]float64{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// NewSaturation returns a saturation adjustment: 0 is grayscale, 1 leaves
// colors unchanged, values above 1 oversaturate.
func NewSaturation(s float64) *ColorMatrix {
	// Rec. 709 luminance.
	const lr, lg, lb = 0.2126, 0.7152, 0.0722
	inv := 1 - s
	return &ColorMatrix{Matrix: [20]float64{
		lr*inv + s, lg * inv, lb * inv, 0, 0,
		lr * inv, lg*inv + s, lb * inv, 0, 0,
		lr * inv, lg * inv, lb*inv + s, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// NewBrightness scales the color channels by factor.
func NewBrightness(factor float64) *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float64{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}}
}

// NewInvert inverts the color channels and keeps alpha.
func NewInvert() *ColorMatrix {
	return &ColorMatrix{Matrix: [20]float64{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}}
}

// Then returns the matrix that applies f first and next second.
func (f *ColorMatrix) Then(next *ColorMatrix) *ColorMatrix {
	a, b := &f.Matrix, &next.Matrix
	var out [20]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			var v float64
			for k := 0; k < 4; k++ {
				v += b[row*5+k] * a[k*5+col]
			}
			if col == 4 {
				v += b[row*5+4]
			}
			out[row*5+col] = v
		}
	}
	return &ColorMatrix{Matrix: out}
}

var _ compose.Filter = (*ColorMatrix)(nil)

// Apply implements compose.Filter. It works in place and returns src.
func (f *ColorMatrix) Apply(src *surface.Surface, _ cxform.Transform, _ compose.Environment) *surface.Surface {
	if f.Matrix == IdentityMatrix {
		return src
	}

	img := src.Image()
	m := &f.Matrix
	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			a := float64(row[i+3])
			var r, g, b float64
			if a > 0 {
				r = float64(row[i]) * 255 / a
				g = float64(row[i+1]) * 255 / a
				b = float64(row[i+2]) * 255 / a
			}

			nr := cxform.Clamp255(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4])
			ng := cxform.Clamp255(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9])
			nb := cxform.Clamp255(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14])
			na := cxform.Clamp255(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])

			k := na / 255
			row[i] = clampUint8(float32(nr * k))
			row[i+1] = clampUint8(float32(ng * k))
			row[i+2] = clampUint8(float32(nb * k))
			row[i+3] = clampUint8(float32(na))
		}
	}
	return src
}
