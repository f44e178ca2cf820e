package cache

import (
	"image/color"
	"sync"
	"testing"

	"github.com/gogpu/compose/surface"
)

func TestPoolAcquireEmpty(t *testing.T) {
	p := NewPool(nil)
	s := p.Acquire()
	if s == nil {
		t.Fatal("Acquire() returned nil")
	}
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("new surface size = %dx%d, want 1x1", s.Width(), s.Height())
	}
	if s.State() != surface.Active {
		t.Errorf("State() = %v, want active", s.State())
	}
}

func TestPoolReleaseShrinksAndCredits(t *testing.T) {
	b := NewBudget(1000)
	p := NewPool(b)

	s := p.Acquire()
	s.Resize(10, 20)
	s.SetFillColor(color.White)
	s.FillRect(0, 0, 10, 20)
	s.SetOffset(4, 5)

	p.Release(s)

	if got := b.Value(); got != 1200 {
		t.Errorf("budget = %d, want 1200", got)
	}
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("released size = %dx%d, want 1x1", s.Width(), s.Height())
	}
	if s.State() != surface.Pooled {
		t.Errorf("State() = %v, want pooled", s.State())
	}
	if got := s.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("released pixel = %v, want transparent", got)
	}
	if x, y := s.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset() = (%v, %v), want (0, 0)", x, y)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPoolLIFO(t *testing.T) {
	p := NewPool(nil)
	a, b := p.Acquire(), p.Acquire()
	p.Release(a)
	p.Release(b)

	if got := p.Acquire(); got != b {
		t.Error("first Acquire() should return the last released surface")
	}
	if got := p.Acquire(); got != a {
		t.Error("second Acquire() should return the first released surface")
	}
	if got := p.Acquire(); got == a || got == b {
		t.Error("Acquire() on an empty pool should construct a new surface")
	}
}

func TestPoolReuseAfterRelease(t *testing.T) {
	p := NewPool(nil)
	s := p.Acquire()
	s.Resize(8, 8)
	p.Release(s)

	got := p.Acquire()
	if got != s {
		t.Fatal("Acquire() did not reuse the released surface")
	}
	if got.State() != surface.Active {
		t.Errorf("State() = %v, want active", got.State())
	}
	if got.Width() != 1 || got.Height() != 1 {
		t.Errorf("reused size = %dx%d, want 1x1", got.Width(), got.Height())
	}
}

func TestPoolReleaseMisuse(t *testing.T) {
	b := NewBudget(0)
	p := NewPool(b)

	p.Release(nil)
	if p.Len() != 0 || b.Value() != 0 {
		t.Errorf("Release(nil) changed state: Len=%d budget=%d", p.Len(), b.Value())
	}

	s := p.Acquire()
	s.Resize(3, 3)
	p.Release(s)
	p.Release(s)
	if p.Len() != 1 {
		t.Errorf("double release: Len() = %d, want 1", p.Len())
	}
	if b.Value() != 9 {
		t.Errorf("double release: budget = %d, want 9", b.Value())
	}
}

func TestPoolDepthStencil(t *testing.T) {
	p := NewPool(nil, surface.WithDepthStencil())
	s := p.Acquire()
	if !s.GPUBacked() {
		t.Fatal("surface from depth-stencil pool should be GPU-backed")
	}
	s.Resize(4, 4)
	p.Release(s)
	if !s.GPUBacked() {
		t.Error("released surface lost its depth/stencil plane")
	}
}

func TestPoolDrain(t *testing.T) {
	p := NewPool(nil)
	for i := 0; i < 3; i++ {
		p.Release(surface.New(2, 2))
	}
	if n := p.Drain(); n != 3 {
		t.Errorf("Drain() = %d, want 3", n)
	}
	if p.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", p.Len())
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(NewBudget(0))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s := p.Acquire()
				s.Resize(2, 2)
				p.Release(s)
			}
		}()
	}
	wg.Wait()

	if got := p.Budget().Value(); got != 8*100*4 {
		t.Errorf("budget = %d, want %d", got, 8*100*4)
	}
	if p.Len() < 1 || p.Len() > 8 {
		t.Errorf("Len() = %d, want between 1 and 8", p.Len())
	}
}

func TestBudget(t *testing.T) {
	b := NewBudget(DefaultBudget)
	if b.Value() != 73400320 {
		t.Fatalf("Value() = %d, want 73400320", b.Value())
	}
	b.Add(-DefaultBudget - 5)
	if b.Value() != -5 {
		t.Errorf("Value() = %d, want -5", b.Value())
	}
	if !b.Exhausted() {
		t.Error("Exhausted() = false for negative budget")
	}
	b.Reset()
	if b.Value() != b.Initial() {
		t.Errorf("Value() after Reset = %d, want %d", b.Value(), b.Initial())
	}
}

func BenchmarkPoolCycle(b *testing.B) {
	p := NewPool(nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := p.Acquire()
		p.Release(s)
	}
}
