package overlay

import "math"

// Render plan builder: derives the stroked frame list and the auxiliary
// decorations (rule-of-thirds grid lines, L-shaped corner indicators)
// from a resolved forest. Purely additive; none of this affects the mask.

// GridAlphaScale is the opacity applied to the frame color for grid
// lines.
const GridAlphaScale = 0.6

// gridLineWidth is the fixed stroke width of grid lines.
const gridLineWidth = 1.0

// Frame is one shape boundary with its stroke styling, in draw order.
type Frame struct {
	Boundary *Path
	Color    RGBA
	Width    float64
}

// Segment is one decoration line segment with its stroke styling.
type Segment struct {
	Line  Line
	Color RGBA
	Width float64
}

// BuildPlan derives frames and decorations for every node in the
// forest. Traversal order matches compositing: top-level shapes in list
// order, each node's own frame and decorations before its children's.
// Later-drawn frames visually overlap earlier ones at shared edges.
func BuildPlan(shapes []ResolvedShape) (frames []Frame, decorations []Segment) {
	walkShapes(shapes, func(rs *ResolvedShape) {
		frames = append(frames, Frame{
			Boundary: rs.Boundary,
			Color:    rs.FrameColor,
			Width:    rs.StrokeWidth,
		})
		decorations = append(decorations, gridSegments(rs)...)
		decorations = append(decorations, cornerSegments(rs)...)
	})
	return frames, decorations
}

// gridSegments returns the 2+2 rule-of-thirds lines spanning the
// axis-aligned bounding box of the shape's boundary. Grid lines are
// straight even for circles and ellipses; they cover the bounding box,
// not the boundary itself.
func gridSegments(rs *ResolvedShape) []Segment {
	if !rs.ShowGrid {
		return nil
	}
	bbox := rs.Boundary.BoundingBox()
	if bbox.IsEmpty() {
		return nil
	}

	color := rs.FrameColor.WithAlphaScale(GridAlphaScale)
	w := bbox.Width()
	h := bbox.Height()

	segs := make([]Segment, 0, 4)
	for _, f := range []float64{1.0 / 3.0, 2.0 / 3.0} {
		x := bbox.Min.X + w*f
		segs = append(segs, Segment{
			Line:  NewLine(Pt(x, bbox.Min.Y), Pt(x, bbox.Max.Y)),
			Color: color,
			Width: gridLineWidth,
		})
	}
	for _, f := range []float64{1.0 / 3.0, 2.0 / 3.0} {
		y := bbox.Min.Y + h*f
		segs = append(segs, Segment{
			Line:  NewLine(Pt(bbox.Min.X, y), Pt(bbox.Max.X, y)),
			Color: color,
			Width: gridLineWidth,
		})
	}
	return segs
}

// cornerSegments returns the four L-shaped corner indicators, two legs
// per corner. Only rectangular kinds carry corner indicators. Legs are
// clamped to half the corresponding side so opposing corners never
// overlap on small boxes.
func cornerSegments(rs *ResolvedShape) []Segment {
	if rs.CornerLength <= 0 {
		return nil
	}
	if rs.Kind != Rectangle && rs.Kind != RoundedRectangle {
		return nil
	}

	box := rs.Box
	legX := math.Min(rs.CornerLength, box.Width()/2)
	legY := math.Min(rs.CornerLength, box.Height()/2)
	if legX <= 0 || legY <= 0 {
		return nil
	}

	minX, minY := box.Min.X, box.Min.Y
	maxX, maxY := box.Max.X, box.Max.Y

	lines := []Line{
		// Top-left
		NewLine(Pt(minX, minY), Pt(minX+legX, minY)),
		NewLine(Pt(minX, minY), Pt(minX, minY+legY)),
		// Top-right
		NewLine(Pt(maxX, minY), Pt(maxX-legX, minY)),
		NewLine(Pt(maxX, minY), Pt(maxX, minY+legY)),
		// Bottom-left
		NewLine(Pt(minX, maxY), Pt(minX+legX, maxY)),
		NewLine(Pt(minX, maxY), Pt(minX, maxY-legY)),
		// Bottom-right
		NewLine(Pt(maxX, maxY), Pt(maxX-legX, maxY)),
		NewLine(Pt(maxX, maxY), Pt(maxX, maxY-legY)),
	}

	segs := make([]Segment, 0, len(lines))
	for _, l := range lines {
		segs = append(segs, Segment{
			Line:  l,
			Color: rs.FrameColor,
			Width: rs.StrokeWidth,
		})
	}
	return segs
}
