package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddClamp(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero + zero", 0, 0, 0},
		{"100 + 100", 100, 100, 200},
		{"128 + 128 (clamped)", 128, 128, 255},
		{"max + max (clamped)", 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addClamp(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("addClamp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPorterDuffOps(t *testing.T) {
	type px [4]byte
	tests := []struct {
		name     string
		op       Op
		src, dst px
		want     px
	}{
		{"source-over opaque source", SourceOver, px{10, 20, 30, 255}, px{200, 200, 200, 255}, px{10, 20, 30, 255}},
		{"source-over transparent source", SourceOver, px{0, 0, 0, 0}, px{200, 100, 50, 255}, px{200, 100, 50, 255}},
		{"source-over onto transparent", SourceOver, px{64, 0, 0, 128}, px{0, 0, 0, 0}, px{64, 0, 0, 128}},
		{"destination-out opaque source", DestinationOut, px{255, 255, 255, 255}, px{200, 100, 50, 255}, px{0, 0, 0, 0}},
		{"destination-out transparent source", DestinationOut, px{0, 0, 0, 0}, px{200, 100, 50, 255}, px{200, 100, 50, 255}},
		{"lighter", Lighter, px{100, 100, 100, 255}, px{200, 50, 0, 255}, px{255, 150, 100, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := FuncFor(tt.op)(tt.src[0], tt.src[1], tt.src[2], tt.src[3], tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.op, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}
