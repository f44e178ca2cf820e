package filter

import (
	"image/color"
	"math"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// DropShadow draws a blurred, colored copy of the content's alpha behind
// the content, displaced by Distance along Angle.
type DropShadow struct {
	// Distance is the shadow displacement in stage units.
	Distance float64
	// Angle is the displacement direction in degrees, clockwise from +x.
	Angle float64
	// Color is the shadow color. Its alpha is ignored; see Alpha.
	Color color.RGBA
	// Alpha is the shadow opacity in [0, 1].
	Alpha float64
	// Blur is the shadow's Gaussian standard deviation in stage units.
	Blur float64
	// Strength multiplies the shadow coverage before clamping.
	Strength float64
	// Knockout cuts the content's shape out of the shadow and drops
	// the content itself.
	Knockout bool
	// HideObject draws only the shadow.
	HideObject bool
}

// NewDropShadow returns a shadow with strength 1.
func NewDropShadow(distance, angle float64, c color.RGBA, alpha, blur float64) *DropShadow {
	return &DropShadow{
		Distance: distance,
		Angle:    angle,
		Color:    c,
		Alpha:    alpha,
		Blur:     blur,
		Strength: 1,
	}
}

var _ compose.Filter = (*DropShadow)(nil)

// Apply implements compose.Filter. The shadow color passes through ct.
func (f *DropShadow) Apply(src *surface.Surface, ct cxform.Transform, env compose.Environment) *surface.Surface {
	scale := env.Scale() * env.PixelRatio()
	rad := f.Angle * math.Pi / 180
	dx := int(math.Round(math.Cos(rad) * f.Distance * scale))
	dy := int(math.Round(math.Sin(rad) * f.Distance * scale))
	sigma := f.Blur * scale
	margin := KernelRadius(sigma)

	left, right := margin+max(0, -dx), margin+max(0, dx)
	top, bottom := margin+max(0, -dy), margin+max(0, dy)
	out := env.AcquireSurface()
	out.Resize(src.Width()+left+right, src.Height()+top+bottom)
	ox, oy := src.Offset()
	out.SetOffset(ox-float64(left), oy-float64(top))

	f.paintShadow(out, src, left+dx, top+dy, sigma, ct)

	switch {
	case f.Knockout:
		out.SetCompositeOperation(surface.OpDestinationOut)
		out.DrawImage(src, float64(left), float64(top))
		out.SetCompositeOperation(surface.OpSourceOver)
	case !f.HideObject:
		out.DrawImage(src, float64(left), float64(top))
	}

	env.ReleaseSurface(src)
	return out
}

// paintShadow writes the shadow of src, placed at (x, y), into dst.
func (f *DropShadow) paintShadow(dst, src *surface.Surface, x, y int, sigma float64, ct cxform.Transform) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	mask := getFloats(w * h)
	defer putFloats(mask)

	simg := src.Image()
	for sy := 0; sy < src.Height(); sy++ {
		for sx := 0; sx < src.Width(); sx++ {
			mask.data[(y+sy)*w+x+sx] = float32(simg.Pix[sy*simg.Stride+sx*4+3]) / 255
		}
	}
	if sigma > 0 {
		k := kernels.get(sigma)
		convolve(mask.data, w, h, 1, k, k)
	}

	alpha := cxform.Clamp255(f.Alpha * 255)
	sc := ct.Apply(color.NRGBA{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: uint8(math.Round(alpha))})
	strength := float32(f.Strength)

	dimg := dst.Image()
	for py := 0; py < h; py++ {
		row := dimg.Pix[py*dimg.Stride : py*dimg.Stride+w*4]
		for px := 0; px < w; px++ {
			cov := min(mask.data[py*w+px]*strength, 1)
			if cov <= 0 {
				continue
			}
			i := px * 4
			row[i] = clampUint8(float32(sc.R) * cov)
			row[i+1] = clampUint8(float32(sc.G) * cov)
			row[i+2] = clampUint8(float32(sc.B) * cov)
			row[i+3] = clampUint8(float32(sc.A) * cov)
		}
	}
}
