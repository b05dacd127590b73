package overlay

import (
	"math"
	"testing"
)

// TestMaskPartition verifies mask and unioned shapes exactly partition
// the canvas: area(mask) + area(union) == area(canvas). Rectangles
// flatten exactly; only curved boundaries get a flattening allowance.
func TestMaskPartition(t *testing.T) {
	tests := []struct {
		name      string
		shapes    []ShapeDescriptor
		tolerance float64
	}{
		{
			name:      "single rectangle",
			shapes:    []ShapeDescriptor{{Kind: Rectangle, Bounds: rectPtr(RectXYWH(50, 50, 100, 80))}},
			tolerance: 1e-6,
		},
		{
			name: "disjoint rectangles",
			shapes: []ShapeDescriptor{
				{Kind: Rectangle, Bounds: rectPtr(RectXYWH(10, 10, 50, 50))},
				{Kind: Rectangle, Bounds: rectPtr(RectXYWH(200, 200, 80, 60))},
			},
			tolerance: 1e-6,
		},
		{
			name: "overlapping rectangles",
			shapes: []ShapeDescriptor{
				{Kind: Rectangle, Bounds: rectPtr(RectXYWH(50, 50, 100, 100))},
				{Kind: Rectangle, Bounds: rectPtr(RectXYWH(100, 100, 100, 100))},
			},
			tolerance: 1e-6,
		},
		{
			name: "circle with nested child",
			shapes: []ShapeDescriptor{{
				Kind:   Circle,
				Bounds: rectPtr(RectXYWH(50, 50, 200, 200)),
				Children: []ShapeDescriptor{
					{Kind: Rectangle, Position: Centered(), Size: Rel(0.4, 0.4)},
				},
			}},
			tolerance: 0.5,
		},
	}

	canvas := RectXYWH(0, 0, 400, 400)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := make([]ResolvedShape, 0, len(tt.shapes))
			for _, d := range tt.shapes {
				resolved = append(resolved, Resolve(d, topLevelBox(d, canvas)))
			}

			mask, union := CompositeMask(resolved, canvas, 0)

			total := mask.Area() + union.Area()
			if math.Abs(total-canvas.Area()) > tt.tolerance {
				t.Errorf("mask %v + union %v = %v, want %v",
					mask.Area(), union.Area(), total, canvas.Area())
			}
		})
	}
}

// TestMaskHoleOrientation verifies the mask's shape window is a hole
// wound opposite the outer contour: signed areas cancel instead of
// adding, and a non-zero-winding fill of the path leaves the window
// open.
func TestMaskHoleOrientation(t *testing.T) {
	box := RectXYWH(50, 50, 100, 80)
	canvas := RectXYWH(0, 0, 400, 400)
	shapes := []ResolvedShape{Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &box}, box)}

	mask, union := CompositeMask(shapes, canvas, 0)

	want := canvas.Area() - box.Area()
	if got := mask.Area(); math.Abs(got-want) > 1e-6 {
		t.Errorf("mask area = %v, want %v", got, want)
	}
	if got := union.Area(); math.Abs(got-box.Area()) > 1e-6 {
		t.Errorf("union area = %v, want %v", got, box.Area())
	}

	// One outer contour, one hole, opposite windings.
	var pos, neg int
	for _, c := range mask.Contours() {
		var a float64
		for i := range c {
			j := (i + 1) % len(c)
			a += c[i].X*c[j].Y - c[j].X*c[i].Y
		}
		switch {
		case a > 0:
			pos++
		case a < 0:
			neg++
		}
	}
	if pos != 1 || neg != 1 {
		t.Fatalf("contour windings: %d positive, %d negative, want one of each", pos, neg)
	}

	// The converted path agrees under the non-zero rule.
	p := mask.Path()
	if got := math.Abs(p.Area()); math.Abs(got-want) > 1e-6 {
		t.Errorf("mask path area = %v, want %v", got, want)
	}
	if p.Contains(box.Center()) {
		t.Error("shape window filled by mask path")
	}
	if !p.Contains(Pt(10, 10)) {
		t.Error("canvas corner missing from mask path")
	}
}

// TestMaskUnionNotSum verifies fully overlapping shapes union rather
// than double-count: the combined area equals the larger rectangle's.
func TestMaskUnionNotSum(t *testing.T) {
	outer := RectXYWH(50, 50, 200, 100)
	inner := RectXYWH(100, 75, 50, 50) // fully inside outer

	shapes := []ResolvedShape{
		Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &outer}, outer),
		Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &inner}, inner),
	}

	_, union := CompositeMask(shapes, RectXYWH(0, 0, 400, 400), 0)

	if got, want := union.Area(), outer.Area(); math.Abs(got-want) > 1e-6 {
		t.Errorf("union area = %v, want %v (the larger rectangle, not the sum)", got, want)
	}
}

// TestMaskOrderIndependent verifies the mask shape does not depend on
// shape order.
func TestMaskOrderIndependent(t *testing.T) {
	a := RectXYWH(50, 50, 100, 100)
	b := RectXYWH(120, 80, 100, 100)
	canvas := RectXYWH(0, 0, 300, 300)

	sa := Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &a}, a)
	sb := Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &b}, b)

	m1, _ := CompositeMask([]ResolvedShape{sa, sb}, canvas, 0)
	m2, _ := CompositeMask([]ResolvedShape{sb, sa}, canvas, 0)

	if math.Abs(m1.Area()-m2.Area()) > 1e-6 {
		t.Errorf("mask area depends on order: %v vs %v", m1.Area(), m2.Area())
	}
}

// TestMaskContainment verifies points inside any shape are excluded
// from the mask and points outside all shapes are included.
func TestMaskContainment(t *testing.T) {
	box := RectXYWH(100, 100, 100, 100)
	shapes := []ResolvedShape{Resolve(ShapeDescriptor{Kind: Circle, Bounds: &box}, box)}

	mask, union := CompositeMask(shapes, RectXYWH(0, 0, 300, 300), 0)

	tests := []struct {
		name     string
		pt       Point
		inMask   bool
		inShapes bool
	}{
		{"circle center", Pt(150, 150), false, true},
		{"inside circle", Pt(170, 150), false, true},
		{"box corner outside circle", Pt(102, 102), true, false},
		{"canvas corner", Pt(5, 5), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.Contains(tt.pt); got != tt.inMask {
				t.Errorf("mask.Contains(%v) = %v, want %v", tt.pt, got, tt.inMask)
			}
			if got := union.Contains(tt.pt); got != tt.inShapes {
				t.Errorf("union.Contains(%v) = %v, want %v", tt.pt, got, tt.inShapes)
			}
		})
	}
}

// TestMaskNoShapes verifies an empty forest masks the whole canvas.
func TestMaskNoShapes(t *testing.T) {
	canvas := RectXYWH(0, 0, 200, 100)
	mask, union := CompositeMask(nil, canvas, 0)

	if !union.IsEmpty() {
		t.Errorf("union not empty: area %v", union.Area())
	}
	if math.Abs(mask.Area()-canvas.Area()) > 1e-9 {
		t.Errorf("mask area = %v, want %v", mask.Area(), canvas.Area())
	}
}

// TestRegionPath verifies the region-to-path conversion round-trips the
// enclosed area.
func TestRegionPath(t *testing.T) {
	box := RectXYWH(10, 10, 80, 40)
	shapes := []ResolvedShape{Resolve(ShapeDescriptor{Kind: Rectangle, Bounds: &box}, box)}

	_, union := CompositeMask(shapes, RectXYWH(0, 0, 100, 100), 0)
	p := union.Path()

	if got, want := math.Abs(p.Area()), box.Area(); math.Abs(got-want) > 1e-6 {
		t.Errorf("path area = %v, want %v", got, want)
	}
}

func rectPtr(r Rect) *Rect {
	return &r
}
