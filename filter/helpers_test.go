package filter

import (
	"image/color"
	"testing"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/surface"
)

// newEnv returns a runtime to serve as the filter environment.
func newEnv(t testing.TB, opts ...compose.Option) *compose.Runtime {
	t.Helper()
	rt, err := compose.New(opts...)
	if err != nil {
		t.Fatalf("compose.New() error = %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

// filledSurface returns an active surface from env filled with c.
func filledSurface(env compose.Environment, w, h int, c color.RGBA) *surface.Surface {
	s := env.AcquireSurface()
	s.Resize(w, h)
	s.SetFillColor(c)
	s.FillRect(0, 0, float64(w), float64(h))
	return s
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func pixelNear(got, want color.RGBA, tol uint8) bool {
	return absDiff(got.R, want.R) <= tol &&
		absDiff(got.G, want.G) <= tol &&
		absDiff(got.B, want.B) <= tol &&
		absDiff(got.A, want.A) <= tol
}
