// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"image/color"
	"log/slog"
	"math"
	"sync/atomic"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// Engine renders nodes that need isolation: nodes with filters or a
// non-normal blend mode are drawn into an offscreen surface, post-processed
// and composited into their parent.
//
// The per-node protocol is
//
//	iso, cm := e.PreDraw(f, attrs, m)
//	// draw the node and its children into f.Active() using cm
//	e.PostDraw(f, iso, attrs, m, ct)
//
// and calls nest with the scene traversal. Render wraps the three steps.
//
// An Engine holds no per-frame state and may serve several frames at once
// as long as its Environment is safe for concurrent use.
type Engine struct {
	env Environment
	log atomic.Pointer[slog.Logger]
}

// NewEngine returns an engine that takes its scale and surfaces from env.
func NewEngine(env Environment) *Engine {
	e := &Engine{env: env}
	e.log.Store(Logger())
	return e
}

// SetLogger sets the engine's logger. Nil disables logging.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	e.log.Store(l)
}

func (e *Engine) logger() *slog.Logger {
	return e.log.Load()
}

// PreDraw starts rendering a node.
//
// When a does not need isolation PreDraw does nothing and returns an
// inactive Isolation and m unchanged. Otherwise it acquires a surface
// sized to a.Bounds in device pixels, makes it the frame's active surface
// and returns m with its translation replaced by the negated display
// offset, so the node's content lands at the surface origin.
func (e *Engine) PreDraw(f *Frame, a Attributes, m matrix.Matrix) (Isolation, matrix.Matrix) {
	if !a.NeedsIsolation() {
		return Isolation{}, m
	}

	parent := f.active
	f.active = nil

	scale := e.env.Scale() * e.env.PixelRatio()
	xScale, yScale := scale, scale
	b := a.Bounds
	w := deviceExtent(b.URx-b.LLx, xScale)
	h := deviceExtent(b.URy-b.LLy, yScale)

	s := e.env.AcquireSurface()
	s.Resize(w, h)
	offX, offY := b.LLx*xScale, b.LLy*yScale
	s.SetOffset(offX, offY)

	depth := f.push(s, parent)
	e.logger().Debug("compose: isolation start",
		"depth", depth, "width", w, "height", h,
		"blend", a.Blend.String(), "filters", len(a.Filters))

	iso := Isolation{frame: f, surface: s, parent: parent, depth: depth}
	return iso, matrix.Matrix{m[0], m[1], m[2], m[3], -offX, -offY}
}

// PostDraw finishes a node started with PreDraw. For an active isolation
// it runs the filters in order, applies the blend mode, draws the result
// into the parent surface and returns the offscreen surface to the pool.
// a and m must be the values passed to PreDraw.
//
// Closing an isolation while isolations opened after it are still open
// breaks nesting. The inner isolations are abandoned: their surfaces are
// released without being composited.
func (e *Engine) PostDraw(f *Frame, iso Isolation, a Attributes, m matrix.Matrix, ct cxform.Transform) {
	if !iso.Active() {
		return
	}
	if !f.owns(iso) {
		e.logger().Warn("compose: isolation is not open on this frame",
			"depth", iso.depth)
		return
	}
	if abandoned := f.unwind(iso.depth); len(abandoned) > 0 {
		e.logger().Warn("compose: unbalanced isolation nesting",
			"depth", iso.depth, "abandoned", len(abandoned))
		for _, s := range abandoned {
			e.env.ReleaseSurface(s)
		}
	}
	f.pop()

	s := iso.surface
	for i, flt := range a.Filters {
		if flt == nil {
			continue
		}
		out := flt.Apply(s, ct, e.env)
		if out == nil {
			e.logger().Warn("compose: filter returned no surface",
				"depth", iso.depth, "filter", i)
			return
		}
		s = out
	}

	op := surface.OpSourceOver
	s.SetGlobalAlpha(1)
	if a.Blend != BlendNormal {
		s.ResetTransform()
		var passes []surface.CompositeOp
		op, passes = a.Blend.Emulation()
		fillPasses(s, passes)
	}
	s.SetCompositeOperation(op)

	// The display offset is in device space, so it applies after m.
	offX, offY := s.Offset()
	x, y := m[4]+offX, m[5]+offY

	if parent := iso.parent; parent != nil && s.Area() > 0 {
		composite(parent, s, x, y, op)
	}

	e.logger().Debug("compose: isolation end",
		"depth", iso.depth, "op", op.String(), "x", x, "y", y)

	s.ClearOffset()
	e.env.ReleaseSurface(s)
}

// Render draws one node: it brackets draw with PreDraw and PostDraw.
// draw receives the surface to draw into and the matrix to draw with.
func (e *Engine) Render(f *Frame, n Node, m matrix.Matrix, ct cxform.Transform, draw func(target *surface.Surface, m matrix.Matrix)) {
	a := n.Attributes()
	iso, cm := e.PreDraw(f, a, m)
	if draw != nil {
		draw(f.Active(), cm)
	}
	e.PostDraw(f, iso, a, m, ct)
}

// fillPasses fills s with opaque white once per operation, in order.
func fillPasses(s *surface.Surface, passes []surface.CompositeOp) {
	if len(passes) == 0 {
		return
	}
	w, h := float64(s.Width()), float64(s.Height())
	s.SetFillColor(color.White)
	for _, op := range passes {
		s.SetCompositeOperation(op)
		s.FillRect(0, 0, w, h)
	}
}

// composite draws src into dst translated by (x, y) with op. The drawing
// state of dst is restored afterwards.
func composite(dst, src *surface.Surface, x, y float64, op surface.CompositeOp) {
	t, alpha, prev := dst.Transform(), dst.GlobalAlpha(), dst.CompositeOperation()

	dst.SetTransform(matrix.Matrix{1, 0, 0, 1, x, y})
	dst.SetGlobalAlpha(1)
	dst.SetCompositeOperation(op)
	dst.DrawImage(src, 0, 0)

	dst.SetTransform(t)
	dst.SetGlobalAlpha(alpha)
	dst.SetCompositeOperation(prev)
}

// deviceExtent returns |ceil(v*scale)| as a pixel count. Non-finite
// results give 0.
func deviceExtent(v, scale float64) int {
	d := math.Abs(math.Ceil(v * scale))
	if math.IsNaN(d) || math.IsInf(d, 0) || d > math.MaxInt32 {
		return 0
	}
	return int(d)
}
