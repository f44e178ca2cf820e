package compose_test

import (
	"fmt"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/filter"
	"github.com/gogpu/compose/surface"
)

func fill(c color.Color, w, h float64) func(*surface.Surface, matrix.Matrix) {
	return func(dst *surface.Surface, m matrix.Matrix) {
		dst.SetTransform(m)
		dst.SetFillColor(c)
		dst.FillRect(0, 0, w, h)
	}
}

func TestDropShadowThroughEngine(t *testing.T) {
	rt, err := compose.New()
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	stage := surface.New(20, 20)
	f := compose.NewFrame(stage)
	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}

	node := &compose.PlacedNode{
		Bounds: rect.Rect{URx: 4, URy: 4},
		Own: compose.Overrides{
			Filters: []compose.Filter{filter.NewDropShadow(3, 90, black, 1, 0)},
		},
	}
	rt.Engine().Render(f, node, matrix.Matrix{1, 0, 0, 1, 5, 5}, cxform.Identity, fill(red, 4, 4))

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{6, 6, red},
		{8, 8, red},
		{6, 10, black},
		{8, 11, black},
		{6, 12, color.RGBA{}},
		{4, 6, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := stage.Image().RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("stage pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if rt.Pool().Len() != 2 {
		t.Errorf("pool Len() = %d, want 2", rt.Pool().Len())
	}
}

func TestFiltersAndBlendFromPlacement(t *testing.T) {
	rt, err := compose.New()
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	stage := surface.New(4, 4)
	stage.SetFillColor(color.RGBA{200, 100, 50, 255})
	stage.FillRect(0, 0, 4, 4)

	var table compose.PlacementTable
	table.Set(1, 1, compose.Placement{
		Blend:   compose.BlendMultiply,
		Filters: []compose.Filter{filter.NewInvert()},
	})
	node := &compose.PlacedNode{
		Bounds: rect.Rect{URx: 4, URy: 4},
		Parent: &table,
		Frame:  1,
		Depth:  1,
	}

	// Black content, inverted to white, multiplied onto the stage.
	rt.Engine().Render(compose.NewFrame(stage), node, matrix.Identity, cxform.Identity, fill(color.Black, 4, 4))

	if got := stage.Image().RGBAAt(2, 2); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("stage pixel = %v, want unchanged {200 100 50 255}", got)
	}
}

func Example() {
	rt, err := compose.New()
	if err != nil {
		panic(err)
	}
	defer rt.Close()

	stage := surface.New(10, 10)
	stage.SetFillColor(color.RGBA{200, 100, 50, 255})
	stage.FillRect(0, 0, 10, 10)

	node := &compose.PlacedNode{Bounds: rect.Rect{URx: 10, URy: 10}}
	node.Own.SetBlend(compose.BlendMultiply)

	f := compose.NewFrame(stage)
	rt.Engine().Render(f, node, matrix.Identity, cxform.Identity, fill(color.RGBA{R: 255, A: 255}, 10, 10))

	fmt.Println(stage.Image().RGBAAt(5, 5))
	fmt.Println(rt.DeriveKey("shape", []float64{2, 0, 0, 2, 0, 0}, cxform.Tint(1, 1, 1, 0.5)))
	// Output:
	// {200 0 0 255}
	// shape_2_2_1110.5
}
