// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/internal/blend"
)

// Transform returns the current transform of the drawing context.
func (s *Surface) Transform() matrix.Matrix {
	return s.transform
}

// SetTransform replaces the current transform.
func (s *Surface) SetTransform(m matrix.Matrix) {
	s.transform = m
}

// ResetTransform sets the current transform to identity.
func (s *Surface) ResetTransform() {
	s.transform = matrix.Identity
}

// GlobalAlpha returns the alpha applied to every drawing operation.
func (s *Surface) GlobalAlpha() float64 {
	return s.alpha
}

// SetGlobalAlpha sets the global alpha, clamped to [0, 1].
func (s *Surface) SetGlobalAlpha(a float64) {
	switch {
	case math.IsNaN(a):
		return
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	s.alpha = a
}

// CompositeOperation returns the current composite operation.
func (s *Surface) CompositeOperation() CompositeOp {
	return s.op
}

// SetCompositeOperation sets the operation used by FillRect and DrawImage.
// Unknown operations are ignored, as a canvas ignores unknown names.
func (s *Surface) SetCompositeOperation(op CompositeOp) {
	if !op.IsValid() {
		return
	}
	s.op = op
}

// FillColor returns the current fill color (premultiplied).
func (s *Surface) FillColor() color.RGBA {
	return s.fill
}

// SetFillColor sets the color used by FillRect.
func (s *Surface) SetFillColor(c color.Color) {
	s.fill = color.RGBAModel.Convert(c).(color.RGBA)
}

// alphaByte returns the global alpha as a byte.
func (s *Surface) alphaByte() byte {
	return byte(math.Round(s.alpha * 255))
}

// FillRect fills the rectangle (x, y, w, h), given in user space, with the
// fill color under the current transform, global alpha and composite operation.
func (s *Surface) FillRect(x, y, w, h float64) {
	if s.Area() == 0 || w == 0 || h == 0 {
		return
	}

	a := s.alphaByte()
	c := s.fill
	r, g, b, ca := mulByte(c.R, a), mulByte(c.G, a), mulByte(c.B, a), mulByte(c.A, a)

	m := s.transform
	if rect, ok := alignedRect(m, x, y, w, h); ok {
		rect = rect.Intersect(s.img.Rect)
		for py := rect.Min.Y; py < rect.Max.Y; py++ {
			i := s.img.PixOffset(rect.Min.X, py)
			blend.SolidSpan(s.img.Pix[i:i+rect.Dx()*4], nil, r, g, b, ca, s.op)
		}
		return
	}

	width, height := s.Width(), s.Height()
	z := vector.NewRasterizer(width, height)
	corners := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i, p := range corners {
		px := float32(m[0]*p[0] + m[2]*p[1] + m[4])
		py := float32(m[1]*p[0] + m[3]*p[1] + m[5])
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for py := 0; py < height; py++ {
		row := mask.Pix[py*mask.Stride : py*mask.Stride+width]
		i := s.img.PixOffset(0, py)
		blend.SolidSpan(s.img.Pix[i:i+width*4], row, r, g, b, ca, s.op)
	}
}

// DrawImage draws src with its top-left corner at (x, y) in user space,
// under the current transform, global alpha and composite operation.
// Integer placements are blitted directly; anything else is resampled
// bilinearly first.
func (s *Surface) DrawImage(src image.Image, x, y float64) {
	if src == nil || s.Area() == 0 {
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}

	m := matrix.Matrix{1, 0, 0, 1, x, y}.Mul(s.transform)
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 &&
		m[4] == math.Trunc(m[4]) && m[5] == math.Trunc(m[5]) {
		s.blit(toRGBA(src), int(m[4]), int(m[5]))
		return
	}

	// x' = a*x + c*y + e; Aff3 is row-major.
	aff := f64.Aff3{
		m[0], m[2], m[4] - m[0]*float64(sb.Min.X) - m[2]*float64(sb.Min.Y),
		m[1], m[3], m[5] - m[1]*float64(sb.Min.X) - m[3]*float64(sb.Min.Y),
	}
	tmp := image.NewRGBA(s.img.Rect)
	xdraw.ApproxBiLinear.Transform(tmp, aff, src, sb, xdraw.Src, nil)
	s.blit(tmp, 0, 0)
}

// blit blends src onto the surface with its origin at (ox, oy).
func (s *Surface) blit(src *image.RGBA, ox, oy int) {
	sb := src.Rect
	dr := image.Rect(ox, oy, ox+sb.Dx(), oy+sb.Dy()).Intersect(s.img.Rect)
	if dr.Empty() {
		return
	}

	a := s.alphaByte()
	n := dr.Dx() * 4
	for py := dr.Min.Y; py < dr.Max.Y; py++ {
		di := s.img.PixOffset(dr.Min.X, py)
		si := src.PixOffset(sb.Min.X+dr.Min.X-ox, sb.Min.Y+py-oy)
		blend.Span(s.img.Pix[di:di+n], src.Pix[si:si+n], s.op, a)
	}
}

// toRGBA returns img as a premultiplied RGBA buffer, converting when needed.
func toRGBA(img image.Image) *image.RGBA {
	switch v := img.(type) {
	case *Surface:
		return v.img
	case *image.RGBA:
		return v
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Rect, img, b.Min, xdraw.Src)
	return out
}

// alignedRect maps (x, y, w, h) through m and reports whether the result is
// an axis-aligned rectangle on integer pixel edges.
func alignedRect(m matrix.Matrix, x, y, w, h float64) (image.Rectangle, bool) {
	if m[1] != 0 || m[2] != 0 {
		return image.Rectangle{}, false
	}
	x0, x1 := m[0]*x+m[4], m[0]*(x+w)+m[4]
	y0, y1 := m[3]*y+m[5], m[3]*(y+h)+m[5]
	for _, v := range [4]float64{x0, x1, y0, y1} {
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1)), true
}

func mulByte(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}
