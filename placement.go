package compose

import (
	"seehuhn.de/go/geom/rect"
)

// Placement is the display-list record a parent keeps for a child at a
// given frame and depth.
type Placement struct {
	Blend   BlendMode
	Filters []Filter
}

// Overrides are attributes set on a node directly. Set values win over
// the parent's placement record.
type Overrides struct {
	Blend    BlendMode
	HasBlend bool
	// Filters overrides the placement filters when non-nil. An empty,
	// non-nil slice removes all filters.
	Filters []Filter
}

// SetBlend records an explicit blend mode.
func (o *Overrides) SetBlend(b BlendMode) {
	o.Blend = b
	o.HasBlend = true
}

// PlacementTable maps frame → depth → placement for one parent.
// The zero value is an empty table ready to use.
type PlacementTable struct {
	frames map[int]map[int]Placement
}

// Set records the placement of the child at depth on frame.
func (t *PlacementTable) Set(frame, depth int, p Placement) {
	if t.frames == nil {
		t.frames = make(map[int]map[int]Placement)
	}
	byDepth := t.frames[frame]
	if byDepth == nil {
		byDepth = make(map[int]Placement)
		t.frames[frame] = byDepth
	}
	byDepth[depth] = p
}

// Lookup returns the placement of the child at depth on frame.
// A nil table has no placements.
func (t *PlacementTable) Lookup(frame, depth int) (Placement, bool) {
	if t == nil {
		return Placement{}, false
	}
	byDepth, ok := t.frames[frame]
	if !ok {
		return Placement{}, false
	}
	p, ok := byDepth[depth]
	return p, ok
}

// ResolveAttributes combines a node's own overrides with its parent's
// placement record. Each property is taken from own when set, else from
// the placement for (frame, depth) in parent, else the default (normal
// blending, no filters). parent may be nil for a root node.
func ResolveAttributes(bounds rect.Rect, own Overrides, parent *PlacementTable, frame, depth int) Attributes {
	a := Attributes{Bounds: bounds}
	p, placed := parent.Lookup(frame, depth)

	switch {
	case own.HasBlend:
		a.Blend = own.Blend
	case placed:
		a.Blend = p.Blend
	}

	switch {
	case own.Filters != nil:
		a.Filters = own.Filters
	case placed:
		a.Filters = p.Filters
	}
	return a
}

// PlacedNode is a Node whose attributes are resolved from its own
// overrides and its parent's placement table.
type PlacedNode struct {
	Bounds rect.Rect
	Own    Overrides
	Parent *PlacementTable
	Frame  int
	Depth  int
}

// Attributes implements Node.
func (n *PlacedNode) Attributes() Attributes {
	return ResolveAttributes(n.Bounds, n.Own, n.Parent, n.Frame, n.Depth)
}
