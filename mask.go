package overlay

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// Mask compositor: every resolved boundary in the forest is flattened
// to a polygon contour and unioned into one region, and the mask is the
// canvas rectangle minus that union. Union is commutative, so the mask
// shape is independent of shape order; only the later frame-stroke
// drawing step is order-sensitive.

// DefaultFlattenTolerance is the maximum distance between a curve and
// its polygonal approximation used during mask compositing.
const DefaultFlattenTolerance = 0.25

// Region is an area described by a set of closed polygonal contours,
// the result of boolean compositing. Holes are carried as additional
// contours wound opposite to their enclosing contour, so signed areas
// cancel and a non-zero-winding fill leaves them open.
type Region struct {
	poly polyclip.Polygon
}

// newRegion normalizes contour orientation by nesting depth: contours
// at even depth wind positive, holes at odd depth wind negative. The
// clipper does not guarantee any particular output orientation, so this
// is established here once and every consumer of the contours relies
// on it.
func newRegion(poly polyclip.Polygon) Region {
	for i, contour := range poly {
		a := contourArea(contour)
		if a == 0 {
			continue
		}
		hole := contourDepth(poly, i)%2 == 1
		if hole == (a > 0) {
			reverseContour(contour)
		}
	}
	return Region{poly: poly}
}

// contourDepth counts how many other contours enclose the first vertex
// of contour i.
func contourDepth(poly polyclip.Polygon, i int) int {
	pt := poly[i][0]
	depth := 0
	for j, other := range poly {
		if j != i && contourContains(other, pt) {
			depth++
		}
	}
	return depth
}

// contourContains is an even-odd ray cast against a single contour.
func contourContains(c polyclip.Contour, pt polyclip.Point) bool {
	crossings := 0
	n := len(c)
	for i := 0; i < n; i++ {
		a := c[i]
		b := c[(i+1)%n]
		if (a.Y <= pt.Y) != (b.Y <= pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > pt.X {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

func reverseContour(c polyclip.Contour) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}

// IsEmpty returns true if the region has no contours.
func (r Region) IsEmpty() bool {
	return len(r.poly) == 0
}

// Area returns the total area of the region. Contours are orientation
// normalized on construction, so holes wind opposite their enclosing
// contour and subtract from the signed sum.
func (r Region) Area() float64 {
	var area float64
	for _, contour := range r.poly {
		area += contourArea(contour)
	}
	return math.Abs(area)
}

// Contains tests if a point is inside the region, using the even-odd
// rule so holes are excluded regardless of contour orientation.
func (r Region) Contains(pt Point) bool {
	crossings := 0
	p := polyclip.Point{X: pt.X, Y: pt.Y}
	for _, contour := range r.poly {
		if contourContains(contour, p) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Path converts the region to a Path with one closed subpath per
// contour, ready for the renderer to fill or stroke.
func (r Region) Path() *Path {
	p := NewPath()
	for _, contour := range r.poly {
		if len(contour) < 3 {
			continue
		}
		p.MoveTo(contour[0].X, contour[0].Y)
		for _, pt := range contour[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}

// Contours returns the region's contours as point slices, outermost
// first in polyclip's output order.
func (r Region) Contours() [][]Point {
	out := make([][]Point, 0, len(r.poly))
	for _, contour := range r.poly {
		pts := make([]Point, len(contour))
		for i, pt := range contour {
			pts[i] = Point{X: pt.X, Y: pt.Y}
		}
		out = append(out, pts)
	}
	return out
}

// contourArea is the shoelace signed area of a single contour.
func contourArea(c polyclip.Contour) float64 {
	var area float64
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return area / 2
}

// CompositeMask unions every boundary in the resolved forest (parents
// and all descendants, in traversal order) and subtracts the union from
// the canvas box. It returns the mask region and the union itself (the
// unmasked area, used for the debug overlay and area accounting).
// tolerance <= 0 selects DefaultFlattenTolerance.
func CompositeMask(shapes []ResolvedShape, canvas Rect, tolerance float64) (mask, union Region) {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}

	var unioned polyclip.Polygon
	walkShapes(shapes, func(rs *ResolvedShape) {
		poly := pathPolygon(rs.Boundary, tolerance)
		if len(poly) == 0 {
			return
		}
		if unioned == nil {
			unioned = poly
			return
		}
		unioned = unioned.Construct(polyclip.UNION, poly)
	})

	canvasPoly := polyclip.Polygon{{
		{X: canvas.Min.X, Y: canvas.Min.Y},
		{X: canvas.Max.X, Y: canvas.Min.Y},
		{X: canvas.Max.X, Y: canvas.Max.Y},
		{X: canvas.Min.X, Y: canvas.Max.Y},
	}}

	if unioned == nil {
		return newRegion(canvasPoly), Region{}
	}

	return newRegion(canvasPoly.Construct(polyclip.DIFFERENCE, unioned)),
		newRegion(unioned)
}

// walkShapes visits every node in the forest in traversal order:
// top-level shapes in list order, each node before its children.
func walkShapes(shapes []ResolvedShape, fn func(*ResolvedShape)) {
	for i := range shapes {
		fn(&shapes[i])
		walkShapes(shapes[i].Children, fn)
	}
}

// pathPolygon flattens a path into polygon contours, one per closed
// subpath. Degenerate contours (fewer than three distinct points) are
// dropped, which is how zero-area boundaries vanish from the union.
func pathPolygon(p *Path, tolerance float64) polyclip.Polygon {
	if p.IsEmpty() {
		return nil
	}

	var poly polyclip.Polygon
	var contour polyclip.Contour

	push := func(pt Point) {
		cp := polyclip.Point{X: pt.X, Y: pt.Y}
		if n := len(contour); n > 0 && contour[n-1] == cp {
			return
		}
		contour = append(contour, cp)
	}
	flush := func() {
		if n := len(contour); n > 1 && contour[0] == contour[n-1] {
			contour = contour[:n-1]
		}
		if len(contour) >= 3 {
			poly = append(poly, contour)
		}
		contour = nil
	}

	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			push(e.Point)
			current = e.Point
		case LineTo:
			push(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolerance, push)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, push)
			current = e.Point
		case Close:
			flush()
		}
	}
	flush()

	return poly
}
