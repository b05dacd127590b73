package overlay

import (
	"math"
	"testing"
)

// TestHex tests hex color parsing.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#fff", RGB(1, 1, 1)},
		{"rrggbb", "#ff0000", RGB(1, 0, 0)},
		{"rrggbbaa", "#00ff0080", RGBA{G: 1, A: 128.0 / 255}},
		{"no hash", "0000ff", RGB(0, 0, 1)},
		{"invalid falls back to opaque black", "nope!", RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want, 0.001) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

// TestWithAlphaScale tests the grid-tint alpha scaling.
func TestWithAlphaScale(t *testing.T) {
	tests := []struct {
		name  string
		c     RGBA
		s     float64
		wantA float64
	}{
		{"opaque at 60%", RGB(1, 1, 1), 0.6, 0.6},
		{"half alpha at 60%", RGBA2(1, 0, 0, 0.5), 0.6, 0.3},
		{"clamped high", RGB(0, 0, 0), 2.0, 1.0},
		{"clamped low", RGB(0, 0, 0), -1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.WithAlphaScale(tt.s)
			if math.Abs(got.A-tt.wantA) > 1e-9 {
				t.Errorf("alpha = %v, want %v", got.A, tt.wantA)
			}
			if got.R != tt.c.R || got.G != tt.c.G || got.B != tt.c.B {
				t.Errorf("rgb changed: %+v", got)
			}
		})
	}
}

// TestColorRoundTrip verifies conversion through image/color.
func TestColorRoundTrip(t *testing.T) {
	orig := RGBA2(0.2, 0.4, 0.6, 0.8)
	got := FromColor(orig.Color())
	if !colorsClose(got, orig, 0.01) {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func colorsClose(a, b RGBA, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance &&
		math.Abs(a.A-b.A) <= tolerance
}
