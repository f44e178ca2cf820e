package filter

import (
	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// Blur applies a Gaussian blur. The surface grows by the blur reach on
// every side so that nothing is clipped.
type Blur struct {
	// BlurX is the horizontal standard deviation in stage units.
	BlurX float64
	// BlurY is the vertical standard deviation in stage units.
	BlurY float64
}

// NewBlur returns a blur with equal horizontal and vertical amounts.
func NewBlur(amount float64) *Blur {
	return &Blur{BlurX: amount, BlurY: amount}
}

// NewBlurXY returns a directional blur.
func NewBlurXY(x, y float64) *Blur {
	return &Blur{BlurX: x, BlurY: y}
}

var _ compose.Filter = (*Blur)(nil)

// Apply implements compose.Filter.
func (f *Blur) Apply(src *surface.Surface, _ cxform.Transform, env compose.Environment) *surface.Surface {
	scale := env.Scale() * env.PixelRatio()
	sx, sy := f.BlurX*scale, f.BlurY*scale
	mx, my := KernelRadius(sx), KernelRadius(sy)
	if mx == 0 && my == 0 {
		return src
	}

	out := grow(src, env, mx, mx, my, my)
	blurRGBA(out, kernels.get(sx), kernels.get(sy))

	env.ReleaseSurface(src)
	return out
}

// grow returns a surface from env with src copied in at (left, top) and
// the given margins added, positioned so that src's pixels stay put.
func grow(src *surface.Surface, env compose.Environment, left, right, top, bottom int) *surface.Surface {
	out := env.AcquireSurface()
	out.Resize(src.Width()+left+right, src.Height()+top+bottom)
	out.DrawImage(src, float64(left), float64(top))

	ox, oy := src.Offset()
	out.SetOffset(ox-float64(left), oy-float64(top))
	return out
}

// blurRGBA blurs the premultiplied pixels of s in place.
func blurRGBA(s *surface.Surface, kx, ky []float32) {
	img := s.Image()
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	buf := getFloats(w * h * 4)
	defer putFloats(buf)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i, v := range row {
			buf.data[y*w*4+i] = float32(v)
		}
	}

	convolve(buf.data, w, h, 4, kx, ky)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			j := y*w*4 + i
			a := clampUint8(buf.data[j+3])
			row[i+3] = a
			// Premultiplied channels never exceed alpha.
			row[i] = min(clampUint8(buf.data[j]), a)
			row[i+1] = min(clampUint8(buf.data[j+1]), a)
			row[i+2] = min(clampUint8(buf.data[j+2]), a)
		}
	}
}
