// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	depthStencil bool
}

// WithDepthStencil creates a GPU-backed surface with a depth/stencil plane.
func WithDepthStencil() Option {
	return func(o *options) {
		o.depthStencil = true
	}
}
