package cache

import (
	"log/slog"
	"sync"

	"github.com/gogpu/compose/surface"
)

// Pool is a LIFO free list of idle surfaces.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu     sync.Mutex
	free   []*surface.Surface
	budget *Budget
	opts   []surface.Option
	log    *slog.Logger
}

// NewPool creates an empty pool that credits released area to budget.
// A nil budget gets a private one starting at DefaultBudget.
// opts are applied to every surface the pool constructs.
func NewPool(budget *Budget, opts ...surface.Option) *Pool {
	if budget == nil {
		budget = NewBudget(DefaultBudget)
	}
	return &Pool{
		budget: budget,
		opts:   opts,
		log:    slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger for ownership warnings. Nil disables logging.
func (p *Pool) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	p.mu.Lock()
	p.log = l
	p.mu.Unlock()
}

// Budget returns the budget the pool credits on release.
func (p *Pool) Budget() *Budget {
	return p.budget
}

// Acquire returns the most recently released surface, or a new 1×1
// surface when the free list is empty. The surface is active on return.
func (p *Pool) Acquire() *surface.Surface {
	p.mu.Lock()
	n := len(p.free)
	if n == 0 {
		p.mu.Unlock()
		return surface.New(1, 1, p.opts...)
	}
	s := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	p.mu.Unlock()

	s.SetState(surface.Active)
	return s
}

// Release clears s, shrinks it to 1×1 and pushes it onto the free list.
// The budget grows by the area s had before shrinking.
//
// Releasing nil or a surface that is already pooled is an ownership error;
// it is logged and otherwise ignored.
func (p *Pool) Release(s *surface.Surface) {
	if s == nil {
		p.logger().Warn("cache: release of nil surface ignored")
		return
	}
	if s.State() == surface.Pooled {
		p.logger().Warn("cache: surface released twice",
			"width", s.Width(), "height", s.Height())
		return
	}

	p.budget.Add(int64(s.Area()))
	s.Clear()
	s.Resize(1, 1)
	s.ClearOffset()
	s.SetState(surface.Pooled)

	p.mu.Lock()
	p.free = append(p.free, s)
	p.mu.Unlock()
}

// Len returns the number of idle surfaces.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Drain drops every idle surface and returns how many were dropped.
func (p *Pool) Drain() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.free)
	clear(p.free)
	p.free = p.free[:0]
	return n
}

func (p *Pool) logger() *slog.Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.log
}
