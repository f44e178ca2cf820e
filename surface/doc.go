// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the offscreen raster surface used for isolated
// compositing.
//
// A Surface couples an alpha-premultiplied RGBA pixel buffer with a small 2D
// drawing context modelled on the HTML canvas: a current transform, a global
// alpha, a composite operation and a fill color. The context also records
// the display offset of the surface, the device-space origin of the surface
// relative to its parent while it is used as an isolation target.
//
// # Ownership
//
// A surface is owned by exactly one holder at a time: a traversal frame, a
// cache entry or a pool free list. Ownership moves explicitly on acquire and
// release; surfaces are never shared. State reports which side of the pool
// the surface is on.
//
// # Backends
//
// Raster surfaces hold only color data. Surfaces created WithDepthStencil
// stand for GPU-backed targets and carry a depth/stencil plane which Clear
// resets together with the color data.
//
// # Usage
//
//	s := surface.New(64, 64)
//	s.SetFillColor(color.White)
//	s.FillRect(0, 0, 64, 64)
//
//	dst := surface.New(128, 128)
//	dst.SetCompositeOperation(surface.OpMultiply)
//	dst.SetTransform(matrix.Matrix{1, 0, 0, 1, 32, 32})
//	dst.DrawImage(s, 0, 0)
//
// Surfaces are NOT thread-safe.
package surface
