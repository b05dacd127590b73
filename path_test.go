package overlay

import (
	"math"
	"testing"
)

// TestPathArea tests the Area() method for boundary shapes.
func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name: "unit square clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(1, 0)
				p.LineTo(1, 1)
				p.LineTo(0, 1)
				p.Close()
				return p
			},
			wantArea:  1.0,
			tolerance: 0.001,
		},
		{
			name: "10x10 rectangle",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(0, 0, 10, 10)
				return p
			},
			wantArea:  100,
			tolerance: 0.1,
		},
		{
			name: "circle radius 10",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(0, 0, 10)
				return p
			},
			wantArea:  math.Pi * 100,
			tolerance: 0.5, // Bezier approximation of a circle
		},
		{
			name: "ellipse 20x10",
			buildPath: func() *Path {
				p := NewPath()
				p.Ellipse(0, 0, 20, 10)
				return p
			},
			wantArea:  math.Pi * 20 * 10,
			tolerance: 1.5,
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantArea:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := math.Abs(tt.buildPath().Area())
			if math.Abs(got-tt.wantArea) > tt.tolerance {
				t.Errorf("Area() = %v, want %v (tolerance %v)", got, tt.wantArea, tt.tolerance)
			}
		})
	}
}

// TestPathElements verifies the element list a renderer consumes:
// ordered, typed, and carrying the construction points.
func TestPathElements(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 30, 40)

	elems := p.Elements()
	want := []PathElement{
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(40, 20)},
		LineTo{Point: Pt(40, 60)},
		LineTo{Point: Pt(10, 60)},
		Close{},
	}
	if len(elems) != len(want) {
		t.Fatalf("got %d elements, want %d", len(elems), len(want))
	}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, elems[i], want[i])
		}
	}
}

// TestQuadraticSegment verifies quadratic segments participate in area,
// containment and flattening. The region between a parabola and its
// chord has area 2/3 * base * height.
func TestQuadraticSegment(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 10, 10, 0)
	p.Close()

	if got, want := math.Abs(p.Area()), 2.0/3.0*10*5; math.Abs(got-want) > 0.01 {
		t.Errorf("Area() = %v, want %v", got, want)
	}

	if !p.Contains(Pt(5, 2)) {
		t.Error("point under the apex not contained")
	}
	if p.Contains(Pt(5, 6)) {
		t.Error("point above the curve contained")
	}

	// Flattened points lie on the parabola y = 2x - x^2/5.
	for _, pt := range p.Flatten(0.1) {
		if want := 2*pt.X - pt.X*pt.X/5; math.Abs(pt.Y-want) > 1e-9 {
			t.Errorf("flattened point %v off the curve, want y=%v", pt, want)
		}
	}
}

// TestPathBoundingBox verifies tight bounding boxes including curve extrema.
func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		want      Rect
		tolerance float64
	}{
		{
			name: "rectangle",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(10, 20, 30, 40)
				return p
			},
			want:      RectXYWH(10, 20, 30, 40),
			tolerance: 1e-9,
		},
		{
			name: "circle",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(100, 100, 50)
				return p
			},
			want:      RectXYWH(50, 50, 100, 100),
			tolerance: 0.01,
		},
		{
			name: "ellipse",
			buildPath: func() *Path {
				p := NewPath()
				p.Ellipse(0, 0, 40, 20)
				return p
			},
			want:      RectXYWH(-40, -20, 80, 40),
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.buildPath().BoundingBox()
			if !rectsClose(got, tt.want, tt.tolerance) {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRoundedRectangleClamp verifies that oversized corner radii are
// clamped so the boundary never self-intersects or escapes the box.
func TestRoundedRectangleClamp(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 10, 10, 100)

	bbox := p.BoundingBox()
	want := RectXYWH(0, 0, 10, 10)
	if !rectsClose(bbox, want, 0.01) {
		t.Errorf("BoundingBox() = %+v, want %+v", bbox, want)
	}

	// Radius clamps to 5, so the boundary is (approximately) the
	// inscribed circle.
	wantArea := math.Pi * 25
	if got := math.Abs(p.Area()); math.Abs(got-wantArea) > 0.2 {
		t.Errorf("Area() = %v, want ~%v", got, wantArea)
	}
}

// TestPathContains tests non-zero winding containment.
func TestPathContains(t *testing.T) {
	circle := NewPath()
	circle.Circle(50, 50, 25)

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(50, 50), true},
		{"inside edge", Pt(70, 50), true},
		{"outside", Pt(80, 50), false},
		{"far away", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circle.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

// TestFlattenClosed verifies flattening of a closed curved path yields a
// closed polygon within tolerance of the curve.
func TestFlattenClosed(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)

	pts := p.Flatten(0.1)
	if len(pts) < 8 {
		t.Fatalf("Flatten() produced %d points, want >= 8", len(pts))
	}
	for _, pt := range pts {
		r := pt.Length()
		if r > 10.05 || r < 9.0 {
			t.Errorf("flattened point %v at radius %v, want ~10", pt, r)
		}
	}
}

func rectsClose(a, b Rect, tolerance float64) bool {
	return math.Abs(a.Min.X-b.Min.X) <= tolerance &&
		math.Abs(a.Min.Y-b.Min.Y) <= tolerance &&
		math.Abs(a.Max.X-b.Max.X) <= tolerance &&
		math.Abs(a.Max.Y-b.Max.Y) <= tolerance
}
