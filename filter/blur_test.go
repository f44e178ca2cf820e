package filter

import (
	"image/color"
	"testing"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

func TestBlurZeroIsIdentity(t *testing.T) {
	env := newEnv(t)
	src := filledSurface(env, 4, 4, color.RGBA{R: 255, A: 255})

	if got := NewBlur(0).Apply(src, cxform.Identity, env); got != src {
		t.Error("zero blur should return its input")
	}
}

func TestBlurGrowsSurface(t *testing.T) {
	env := newEnv(t)
	src := filledSurface(env, 10, 10, color.RGBA{255, 255, 255, 255})
	src.SetOffset(4, 6)

	out := NewBlur(1).Apply(src, cxform.Identity, env)

	if out == src {
		t.Fatal("blur should return a new surface")
	}
	if out.Width() != 16 || out.Height() != 16 {
		t.Errorf("blurred size = %dx%d, want 16x16", out.Width(), out.Height())
	}
	if x, y := out.Offset(); x != 1 || y != 3 {
		t.Errorf("Offset() = (%v, %v), want (1, 3)", x, y)
	}
	if src.State() != surface.Pooled {
		t.Error("blur did not release its input")
	}

	center := out.Image().RGBAAt(8, 8)
	if center.A < 250 {
		t.Errorf("center alpha = %d, want ~255", center.A)
	}
	edge := out.Image().RGBAAt(0, 8)
	if edge.A == 0 || edge.A > 10 {
		t.Errorf("outer edge alpha = %d, want a faint non-zero tail", edge.A)
	}
	inside := out.Image().RGBAAt(3, 8)
	if inside.A < 160 || inside.A > 195 {
		t.Errorf("first content column alpha = %d, want ~178", inside.A)
	}
	outside := out.Image().RGBAAt(2, 8)
	if outside.A < 60 || outside.A > 95 {
		t.Errorf("first margin column alpha = %d, want ~77", outside.A)
	}
}

func TestBlurScalesWithEnvironment(t *testing.T) {
	env := newEnv(t, compose.WithScale(2))
	src := filledSurface(env, 4, 4, color.RGBA{A: 255})

	out := NewBlurXY(1, 0).Apply(src, cxform.Identity, env)
	if out.Width() != 4+2*6 || out.Height() != 4 {
		t.Errorf("blurred size = %dx%d, want 16x4", out.Width(), out.Height())
	}
}

func TestBlurKeepsPremultiplied(t *testing.T) {
	env := newEnv(t)
	src := filledSurface(env, 6, 6, color.RGBA{200, 100, 50, 255})

	out := NewBlur(1.5).Apply(src, cxform.Identity, env)
	img := out.Image()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			c := img.RGBAAt(x, y)
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Fatalf("pixel (%d,%d) = %v is not premultiplied", x, y, c)
			}
		}
	}
}

func BenchmarkBlur(b *testing.B) {
	env := newEnv(b)
	f := NewBlur(2)
	b.ReportAllocs()
	for b.Loop() {
		src := filledSurface(env, 64, 64, color.RGBA{A: 255})
		env.ReleaseSurface(f.Apply(src, cxform.Identity, env))
	}
}
