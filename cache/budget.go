package cache

import "sync/atomic"

// DefaultBudget is the initial value of a Budget, in pixel-area units.
const DefaultBudget int64 = 73400320

// Budget is an advisory, signed counter of available surface area.
// Releasing a surface adds its area; storing one in a Store subtracts it.
//
// Budget is safe for concurrent use.
type Budget struct {
	initial int64
	value   atomic.Int64
}

// NewBudget returns a budget starting at initial.
func NewBudget(initial int64) *Budget {
	b := &Budget{initial: initial}
	b.value.Store(initial)
	return b
}

// Value returns the current counter.
func (b *Budget) Value() int64 {
	return b.value.Load()
}

// Initial returns the value the budget starts from and resets to.
func (b *Budget) Initial() int64 {
	return b.initial
}

// Add adjusts the counter by delta and returns the new value.
func (b *Budget) Add(delta int64) int64 {
	return b.value.Add(delta)
}

// Reset restores the initial value.
func (b *Budget) Reset() {
	b.value.Store(b.initial)
}

// Exhausted reports whether the counter has dropped to zero or below.
// Callers may use it to decide whether to cache; the package never does.
func (b *Budget) Exhausted() bool {
	return b.value.Load() <= 0
}
