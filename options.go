package compose

import "log/slog"

// Option configures a Runtime during creation.
//
// Example:
//
//	rt, err := compose.New(
//	    compose.WithScale(2),
//	    compose.WithPixelRatio(1.5),
//	)
type Option func(*options)

type options struct {
	scale        float64
	pixelRatio   float64
	budget       int64
	depthStencil bool
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		scale:      1,
		pixelRatio: 1,
		budget:     DefaultBudget,
	}
}

// WithScale sets the global stage scale. Must be positive.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithPixelRatio sets the device pixel ratio. Must be positive.
func WithPixelRatio(r float64) Option {
	return func(o *options) {
		o.pixelRatio = r
	}
}

// WithBudget sets the initial surface-area budget shared by the pool and
// the cache. The budget is advisory and never triggers eviction.
func WithBudget(area int64) Option {
	return func(o *options) {
		o.budget = area
	}
}

// WithDepthStencil makes the pool construct GPU-backed surfaces that carry
// a depth/stencil plane, cleared together with color on release.
func WithDepthStencil() Option {
	return func(o *options) {
		o.depthStencil = true
	}
}

// WithLogger sets the runtime's logger instead of the package default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
