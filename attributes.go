package compose

import (
	"seehuhn.de/go/geom/rect"

	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// Environment is the player-wide state the compositing core reads: the
// stage scale, the device pixel ratio and the surface pool.
type Environment interface {
	Scale() float64
	PixelRatio() float64
	AcquireSurface() *surface.Surface
	ReleaseSurface(*surface.Surface)
}

// Filter post-processes an isolated node's surface.
//
// Apply may modify src in place and return it, or return a different
// surface. In the latter case Apply owns src and must release it through
// env, and the returned surface must carry the display offset at which it
// is to be composited.
type Filter interface {
	Apply(src *surface.Surface, ct cxform.Transform, env Environment) *surface.Surface
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(src *surface.Surface, ct cxform.Transform, env Environment) *surface.Surface

// Apply calls f(src, ct, env).
func (f FilterFunc) Apply(src *surface.Surface, ct cxform.Transform, env Environment) *surface.Surface {
	return f(src, ct, env)
}

// Attributes are the per-node properties the compositing core consumes.
type Attributes struct {
	// Bounds is the node's tight bounding box in local coordinates.
	Bounds rect.Rect
	// Filters run in order on the isolated surface.
	Filters []Filter
	// Blend selects how the isolated surface is drawn into its parent.
	Blend BlendMode
}

// NeedsIsolation reports whether the node must be rendered offscreen:
// it has filters, or its blend mode is not normal.
func (a Attributes) NeedsIsolation() bool {
	return len(a.Filters) > 0 || a.Blend != BlendNormal
}

// Node is anything that can report its rendering attributes.
type Node interface {
	Attributes() Attributes
}
