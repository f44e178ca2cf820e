// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/cache"
	"github.com/gogpu/compose/cxform"
	"github.com/gogpu/compose/surface"
)

// DefaultBudget is the initial surface-area budget of a Runtime.
const DefaultBudget = cache.DefaultBudget

// Runtime owns the surface pool, the surface cache and the compositing
// engine of one player. It implements Environment.
//
// Runtime is safe for concurrent use; the Frames rendered with it are not.
type Runtime struct {
	scale      float64
	pixelRatio float64

	pool   *cache.Pool
	store  *cache.Store
	engine *Engine

	log    atomic.Pointer[slog.Logger]
	closed atomic.Bool
}

// New creates a runtime.
//
// Example:
//
//	rt, err := compose.New(compose.WithPixelRatio(2))
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
func New(opts ...Option) (*Runtime, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !positive(o.scale) || !positive(o.pixelRatio) {
		return nil, fmt.Errorf("%w: scale=%v pixelRatio=%v", ErrInvalidScale, o.scale, o.pixelRatio)
	}

	var surfOpts []surface.Option
	if o.depthStencil {
		surfOpts = append(surfOpts, surface.WithDepthStencil())
	}

	pool := cache.NewPool(cache.NewBudget(o.budget), surfOpts...)
	r := &Runtime{
		scale:      o.scale,
		pixelRatio: o.pixelRatio,
		pool:       pool,
		store:      cache.NewStore(pool),
	}
	r.engine = NewEngine(r)

	l := o.logger
	if l == nil {
		l = Logger()
	}
	r.SetLogger(l)
	return r, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// SetLogger sets the logger of the runtime, its pool, cache and engine.
// Nil disables logging.
func (r *Runtime) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	r.log.Store(l)
	propagateLogger(l, r.pool, r.store, r.engine)
}

// Scale returns the global stage scale.
func (r *Runtime) Scale() float64 { return r.scale }

// PixelRatio returns the device pixel ratio.
func (r *Runtime) PixelRatio() float64 { return r.pixelRatio }

// Engine returns the compositing engine bound to this runtime.
func (r *Runtime) Engine() *Engine { return r.engine }

// Pool returns the surface pool.
func (r *Runtime) Pool() *cache.Pool { return r.pool }

// Store returns the surface cache.
func (r *Runtime) Store() *cache.Store { return r.store }

// AcquireSurface takes a surface from the pool.
func (r *Runtime) AcquireSurface() *surface.Surface {
	return r.pool.Acquire()
}

// ReleaseSurface returns s to the pool.
func (r *Runtime) ReleaseSurface(s *surface.Surface) {
	r.pool.Release(s)
}

// Cached returns the value cached under key.
func (r *Runtime) Cached(key string) (any, bool) {
	return r.store.Get(key)
}

// SetCached caches value under key.
func (r *Runtime) SetCached(key string, value any) {
	r.store.Set(key, value)
}

// DeriveKey returns the cache key of content id rendered under transform
// and ct. See cache.DeriveKey.
func (r *Runtime) DeriveKey(id string, transform []float64, ct cxform.Transform) string {
	return cache.DeriveKey(id, transform, ct)
}

// ResetAll empties the cache, returning cached surfaces to the pool, and
// restores the budget.
func (r *Runtime) ResetAll() {
	r.store.ResetAll()
}

// Budget returns the current value of the advisory size budget.
func (r *Runtime) Budget() int64 {
	return r.pool.Budget().Value()
}

// Stats returns cache statistics.
func (r *Runtime) Stats() cache.Stats {
	return r.store.Stats()
}

// Memoize returns the surface cached for id under m and ct. On a miss it
// acquires a surface of w×h device pixels, calls draw to fill it, caches
// it and returns it. The returned surface is owned by the cache and stays
// valid until ResetAll.
//
// A cached value of another type under the same key is replaced.
func (r *Runtime) Memoize(id string, m matrix.Matrix, ct cxform.Transform, w, h int, draw func(*surface.Surface)) *surface.Surface {
	key := cache.DeriveMatrixKey(id, m, ct)
	if s, ok := r.store.Surface(key); ok {
		return s
	}

	s := r.pool.Acquire()
	s.Resize(w, h)
	if draw != nil {
		draw(s)
	}
	r.store.Set(key, s)

	r.log.Load().Debug("compose: memoized surface",
		"key", key, "width", s.Width(), "height", s.Height())
	return s
}

// Close releases every cached surface and drops the pooled ones.
// Calling Close more than once returns ErrClosed.
func (r *Runtime) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	r.store.ResetAll()
	n := r.pool.Drain()
	r.log.Load().Debug("compose: runtime closed", "drained", n)
	return nil
}
