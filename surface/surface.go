// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/internal/blend"
)

// depthStencilBytes is the size of one Depth24PlusStencil8 texel.
const depthStencilBytes = 4

// State tells whether a surface is in use or idle in a pool.
type State uint8

const (
	// Active surfaces are owned by a frame or a cache entry.
	Active State = iota
	// Pooled surfaces sit on a free list, shrunk to 1×1.
	Pooled
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == Pooled {
		return "pooled"
	}
	return "active"
}

// Surface is an offscreen raster target: a premultiplied RGBA pixel buffer
// plus its drawing context.
//
// Surface implements image.Image so that one surface can be drawn into
// another with DrawImage.
type Surface struct {
	img   *image.RGBA
	depth []byte // depth/stencil plane, nil for raster surfaces

	transform matrix.Matrix
	alpha     float64
	op        CompositeOp
	fill      color.RGBA

	offsetX, offsetY float64

	state State
}

// New creates an active surface with the given size in device pixels.
// Negative sizes are treated as zero.
func New(width, height int, opts ...Option) *Surface {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{}
	if o.depthStencil {
		s.depth = []byte{}
	}
	s.Resize(width, height)
	return s
}

// Width returns the surface width in device pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in device pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Area returns width × height, the unit the cache size budget counts in.
func (s *Surface) Area() int {
	return s.Width() * s.Height()
}

// Format returns the color format of the pixel buffer.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// DepthStencilFormat returns the depth/stencil format of a GPU-backed
// surface, or TextureFormatUndefined for a raster surface.
func (s *Surface) DepthStencilFormat() gputypes.TextureFormat {
	if s.depth == nil {
		return gputypes.TextureFormatUndefined
	}
	return gputypes.TextureFormatDepth24PlusStencil8
}

// GPUBacked reports whether the surface carries a depth/stencil plane.
func (s *Surface) GPUBacked() bool {
	return s.depth != nil
}

// Resize changes the surface dimensions. Like assigning a canvas size it
// discards the pixel content and resets the drawing context.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if s.depth != nil {
		s.depth = make([]byte, width*height*depthStencilBytes)
	}
	s.resetContext()
}

// resetContext restores the default drawing state.
func (s *Surface) resetContext() {
	s.transform = matrix.Identity
	s.alpha = 1
	s.op = OpSourceOver
	s.fill = color.RGBA{A: 255}
	s.offsetX, s.offsetY = 0, 0
}

// Clear erases the surface: color data for raster surfaces, color and
// depth/stencil data for GPU-backed surfaces. The size is kept.
func (s *Surface) Clear() {
	clear(s.img.Pix)
	if s.depth != nil {
		clear(s.depth)
	}
}

// State returns whether the surface is active or pooled.
func (s *Surface) State() State {
	return s.state
}

// SetState records a pool transition. Pools call this; renderers should not.
func (s *Surface) SetState(st State) {
	s.state = st
}

// Offset returns the display offset recorded for the surface.
func (s *Surface) Offset() (x, y float64) {
	return s.offsetX, s.offsetY
}

// SetOffset records the device-space origin of the surface in its parent.
func (s *Surface) SetOffset(x, y float64) {
	s.offsetX, s.offsetY = x, y
}

// ClearOffset resets the display offset to the origin.
func (s *Surface) ClearOffset() {
	s.offsetX, s.offsetY = 0, 0
}

// Image returns the live pixel buffer. Writes to it are visible on the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current pixel content.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return s.img.RGBAAt(x, y)
}

// CompositeOp is a composite operation of the drawing context.
type CompositeOp = blend.Op

// Composite operations supported by the raster backend.
const (
	OpSourceOver     = blend.SourceOver
	OpMultiply       = blend.Multiply
	OpScreen         = blend.Screen
	OpLighten        = blend.Lighten
	OpDarken         = blend.Darken
	OpDifference     = blend.Difference
	OpOverlay        = blend.Overlay
	OpLighter        = blend.Lighter
	OpHardLight      = blend.HardLight
	OpDestinationOut = blend.DestinationOut
	OpColorBurn      = blend.ColorBurn
)

// ParseCompositeOp returns the operation with the given canvas name,
// such as "source-over" or "color-burn".
func ParseCompositeOp(name string) (CompositeOp, error) {
	return blend.ParseOp(name)
}
