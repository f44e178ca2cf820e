// Package compose renders scene-graph nodes that need offscreen isolation
// and caches rendered bitmaps between frames.
//
// # Overview
//
// A node with filters or a blend mode other than normal cannot be drawn
// straight into its parent. The [Engine] draws it into an offscreen
// surface borrowed from a pool, runs the filter chain on that surface,
// emulates the blend mode and composites the result back at the node's
// position.
//
// Separately, a [Runtime] memoizes rendered bitmaps under keys derived from
// content identity, transform scale and color transform, so that equal
// content drawn at equal scale shares one bitmap.
//
// # Quick Start
//
//	rt, err := compose.New(compose.WithPixelRatio(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	stage := surface.New(800, 600)
//	f := compose.NewFrame(stage)
//	rt.Engine().Render(f, node, m, cxform.Identity, func(dst *surface.Surface, m matrix.Matrix) {
//	    dst.SetTransform(m)
//	    dst.FillRect(0, 0, 10, 10)
//	})
//
// # Blend modes
//
// The raster backend knows a fixed set of composite operations. Modes it
// lacks are emulated: subtract fills the isolated surface with white under
// difference and darken before compositing with color-burn; invert fills
// with white under difference and lighter before compositing with
// difference. See [BlendMode.Emulation].
//
// # Architecture
//
//   - compose: Engine, Frame, Runtime, blend modes, placement resolution
//   - cache: surface pool, surface cache, size budget, key derivation
//   - surface: offscreen raster surfaces and their drawing context
//   - cxform: color transforms
//   - filter: blur, color matrix and drop shadow filters
//
// # Logging
//
// compose is silent by default. See [SetLogger].
package compose
