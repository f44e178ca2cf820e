// Command composedemo renders every blend mode onto a striped backdrop and
// saves the result as a PNG.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/filter"
	"github.com/gogpu/compose/surface"
)

const (
	cell    = 64
	columns = 7
)

func main() {
	var (
		output  = flag.String("output", "blendmodes.png", "output file")
		scale   = flag.Float64("scale", 1, "stage scale")
		shadow  = flag.Bool("shadow", false, "add a drop shadow to every tile")
		verbose = flag.Bool("v", false, "log isolation activity")
	)
	flag.Parse()

	opts := []compose.Option{compose.WithScale(*scale)}
	if *verbose {
		opts = append(opts, compose.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	rt, err := compose.New(opts...)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}
	defer rt.Close()

	modes := compose.BlendModes()
	rows := (len(modes) + columns - 1) / columns
	w := int(float64(columns*cell) * *scale)
	h := int(float64(rows*cell) * *scale)

	stage := surface.New(w, h)
	drawBackdrop(stage, *scale)

	f := compose.NewFrame(stage)
	for i, mode := range modes {
		node := &compose.PlacedNode{Bounds: rect.Rect{URx: cell - 16, URy: cell - 16}}
		node.Own.SetBlend(mode)
		if *shadow {
			node.Own.Filters = []compose.Filter{filter.NewDropShadow(4, 45, color.RGBA{A: 255}, 0.6, 3)}
		}
		tx := float64(i%columns*cell+8) * *scale
		ty := float64(i/columns*cell+8) * *scale
		m := matrix.Matrix{*scale, 0, 0, *scale, tx, ty}
		rt.Engine().Render(f, node, m, cxform.Identity, drawTile)
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, stage.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	st := rt.Stats()
	log.Printf("Demo saved to %s (%dx%d), %d surfaces pooled\n", *output, w, h, st.Pooled)
}

// drawBackdrop paints vertical stripes so each blend mode has varied
// destination colors to work against.
func drawBackdrop(s *surface.Surface, scale float64) {
	stripes := []color.RGBA{
		{40, 60, 120, 255},
		{200, 200, 200, 255},
		{230, 120, 40, 255},
		{20, 20, 20, 255},
	}
	width := float64(s.Width())
	step := 16 * scale
	for i := 0; float64(i)*step < width; i++ {
		s.SetFillColor(stripes[i%len(stripes)])
		s.FillRect(float64(i)*step, 0, step, float64(s.Height()))
	}
}

func drawTile(dst *surface.Surface, m matrix.Matrix) {
	dst.SetTransform(m)
	dst.SetFillColor(color.RGBA{R: 220, G: 40, B: 90, A: 255})
	dst.FillRect(0, 0, cell-16, (cell-16)/2)
	dst.SetFillColor(color.RGBA{R: 40, G: 180, B: 120, A: 255})
	dst.FillRect(0, (cell-16)/2, cell-16, (cell-16)/2)
}
