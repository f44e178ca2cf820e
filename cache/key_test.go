package cache

import (
	"testing"

	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/compose/cxform"
)

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		transform []float64
		ct        cxform.Transform
		want      string
	}{
		{"identity", "shape1", []float64{1, 0, 0, 1, 0, 0}, cxform.Identity, "shape1_1_1"},
		{"translation ignored", "shape1", []float64{1, 0, 0, 1, 50, -7}, cxform.Identity, "shape1_1_1"},
		{"scale pair", "s", []float64{2, 3}, cxform.Identity, "s_2_3"},
		{"affine scale", "s", []float64{0.5, 0, 0, 4, 0, 0}, cxform.Identity, "s_0.5_4"},
		{"rotation ignored", "s", []float64{0, 1, -1, 0, 0, 0}, cxform.Identity, "s_1_1"},
		{"skewed", "s", []float64{1, 1, 0, 1, 0, 0}, cxform.Identity, "s_1.4142135623730951_1"},
		{"four coefficients", "s", []float64{3, 4, 0, 2}, cxform.Identity, "s_5_2"},
		{"nil transform", "s", nil, cxform.Identity, "s_0_0"},
		{"negative scale pair", "s", []float64{-1, 1}, cxform.Identity, "s_-1_1"},
		{"red halved", "s", []float64{1, 1}, cxform.Tint(0.5, 1, 1, 1), "s_1_1_0111"},
		{"half alpha", "s", []float64{1, 1}, cxform.Tint(1, 1, 1, 0.5), "s_1_1_1110.5"},
		{"red offset clamps", "s", []float64{1, 1}, cxform.Transform{1, 1, 1, 1, 300, 0, 0, 0}, "s_1_1_255111"},
		{"alpha offset", "s", []float64{1, 1}, cxform.Transform{1, 1, 1, 0, 0, 0, 0, 51}, "s_1_1_1110.2"},
		{"zero transform", "s", []float64{1, 1}, cxform.Transform{}, "s_1_1_0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveKey(tt.id, tt.transform, tt.ct); got != tt.want {
				t.Errorf("DeriveKey(%q, %v, %v) = %q, want %q", tt.id, tt.transform, tt.ct, got, tt.want)
			}
		})
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	tr := []float64{0.7, 0.3, -0.3, 0.7, 12, 34}
	ct := cxform.Transform{0.2, 0.4, 0.6, 0.8, 10, 20, 30, 40}

	first := DeriveKey("node", tr, ct)
	for i := 0; i < 100; i++ {
		if got := DeriveKey("node", tr, ct); got != first {
			t.Fatalf("call %d: DeriveKey() = %q, want %q", i, got, first)
		}
	}
}

func TestDeriveKeySharesUntintedSlot(t *testing.T) {
	a := DeriveKey("id", []float64{2, 0, 0, 2, 0, 0}, cxform.Identity)
	b := DeriveKey("id", []float64{0, 2, -2, 0, 100, 100}, cxform.Identity)
	if a != b {
		t.Errorf("keys differ for equal scale: %q vs %q", a, b)
	}
	c := DeriveKey("id", []float64{2, 0, 0, 2, 0, 0}, cxform.Tint(1, 1, 1, 0.5))
	if a == c {
		t.Errorf("tinted key %q should differ from untinted key", c)
	}
}

func TestDeriveMatrixKey(t *testing.T) {
	m := matrix.Scale(2, 3).Translate(10, 10)
	want := DeriveKey("m", m[:], cxform.Identity)
	if got := DeriveMatrixKey("m", m, cxform.Identity); got != want {
		t.Errorf("DeriveMatrixKey() = %q, want %q", got, want)
	}
	if want != "m_2_3" {
		t.Errorf("DeriveMatrixKey() = %q, want m_2_3", want)
	}
}

func TestColorSignature(t *testing.T) {
	if got := ColorSignature(cxform.Identity); got != identitySignature {
		t.Errorf("ColorSignature(Identity) = %q, want %q", got, identitySignature)
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	tr := []float64{0.7, 0.3, -0.3, 0.7, 12, 34}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DeriveKey("node", tr, cxform.Identity)
	}
}
