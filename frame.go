// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"github.com/gogpu/compose/surface"
)

// Frame is the composition state of one traversal: the surface drawing
// currently goes to and the stack of open isolations.
//
// A Frame replaces a process-wide "active surface" slot. Each traversal
// creates its own Frame and threads it through every PreDraw and PostDraw
// call. A Frame must not be shared between goroutines.
type Frame struct {
	active *surface.Surface
	open   []openIsolation
}

// openIsolation is one level of the isolation stack.
type openIsolation struct {
	surface *surface.Surface
	parent  *surface.Surface
}

// NewFrame returns a frame drawing into target.
func NewFrame(target *surface.Surface) *Frame {
	return &Frame{active: target}
}

// Active returns the surface drawing currently goes to. It is nil only
// while an isolation is being set up.
func (f *Frame) Active() *surface.Surface {
	return f.active
}

// Depth returns the number of open isolations.
func (f *Frame) Depth() int {
	return len(f.open)
}

// push opens an isolation drawing into s on top of the current one.
func (f *Frame) push(s, parent *surface.Surface) int {
	f.open = append(f.open, openIsolation{surface: s, parent: parent})
	f.active = s
	return len(f.open) - 1
}

// owns reports whether iso is still open on f.
func (f *Frame) owns(iso Isolation) bool {
	return iso.frame == f &&
		iso.depth < len(f.open) &&
		f.open[iso.depth].surface == iso.surface
}

// unwind closes every isolation above depth and returns their surfaces,
// innermost first.
func (f *Frame) unwind(depth int) []*surface.Surface {
	var abandoned []*surface.Surface
	for i := len(f.open) - 1; i > depth; i-- {
		abandoned = append(abandoned, f.open[i].surface)
		f.open[i] = openIsolation{}
	}
	f.open = f.open[:depth+1]
	return abandoned
}

// pop closes the innermost isolation and makes its parent active.
func (f *Frame) pop() {
	n := len(f.open) - 1
	f.active = f.open[n].parent
	f.open[n] = openIsolation{}
	f.open = f.open[:n]
}

// Isolation is the handle PreDraw returns for one node. It is passed
// unchanged to the matching PostDraw. The zero value is an inactive
// isolation, meaning the node was drawn directly.
type Isolation struct {
	frame   *Frame
	surface *surface.Surface
	parent  *surface.Surface
	depth   int
}

// Active reports whether the node is being rendered offscreen.
func (i Isolation) Active() bool {
	return i.surface != nil
}

// Surface returns the offscreen surface, or nil for an inactive isolation.
func (i Isolation) Surface() *surface.Surface {
	return i.surface
}

// Parent returns the surface the node is composited into.
func (i Isolation) Parent() *surface.Surface {
	return i.parent
}
