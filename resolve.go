package overlay

import "math"

// Geometry resolver: turns a descriptor plus an available box into a
// concrete box and closed boundary, then recursively resolves children
// against the parent's resolved box. Resolution never fails; degenerate
// input collapses to zero-area geometry instead.

// DefaultChildFraction is the size applied to a child with no explicit
// Size: 30% of the parent box in each dimension.
const DefaultChildFraction = 0.3

// ResolvedShape is the concrete geometric result of applying sizing,
// positioning and aspect rules to a descriptor: its box, its closed
// boundary, the styling carried over from the descriptor, and its
// resolved children in order. Constructed fresh on every resolve pass
// and never mutated afterwards.
type ResolvedShape struct {
	Kind     ShapeKind
	Box      Rect
	Boundary *Path

	StrokeWidth  float64
	CornerLength float64
	CornerRadius float64
	FrameColor   RGBA
	ShowGrid     bool

	Children []ResolvedShape
}

// Resolve computes the concrete geometry of d within available.
//
// If d.AspectRatio is set (and the kind is not Circle), available is
// first replaced by the largest box of that ratio fitting centered
// within it. Children are positioned against the resolved box, not the
// original available box, and resolve recursively in order; no child
// observes its siblings.
func Resolve(d ShapeDescriptor, available Rect) ResolvedShape {
	box := canonBox(available)
	if d.AspectRatio > 0 && d.Kind != Circle {
		box = aspectFit(box, d.AspectRatio)
	}
	if d.Kind == Circle {
		box = squareIn(box)
	}

	rs := ResolvedShape{
		Kind:         d.Kind,
		Box:          box,
		Boundary:     boundaryFor(d.Kind, box, d.CornerRadius),
		StrokeWidth:  d.StrokeWidth,
		CornerLength: d.CornerLength,
		CornerRadius: d.CornerRadius,
		FrameColor:   d.FrameColor,
		ShowGrid:     d.ShowGrid,
	}

	if len(d.Children) > 0 {
		rs.Children = make([]ResolvedShape, 0, len(d.Children))
		for i := range d.Children {
			child := d.Children[i]
			rs.Children = append(rs.Children, Resolve(child, childBox(child, box)))
		}
	}

	return rs
}

// aspectFit returns the largest box of the target ratio (width/height)
// that fits within box, centered. A box wider than the target shrinks
// horizontally with its height and vertical position unchanged; a box
// taller than the target shrinks vertically, keeping its width. Equal
// ratios leave the box untouched.
func aspectFit(box Rect, ratio float64) Rect {
	w := box.Width()
	h := box.Height()
	if w <= 0 || h <= 0 {
		return box
	}

	current := w / h
	switch {
	case current > ratio:
		newW := h * ratio
		dx := (w - newW) / 2
		return Rect{
			Min: Point{X: box.Min.X + dx, Y: box.Min.Y},
			Max: Point{X: box.Max.X - dx, Y: box.Max.Y},
		}
	case current < ratio:
		newH := w / ratio
		dy := (h - newH) / 2
		return Rect{
			Min: Point{X: box.Min.X, Y: box.Min.Y + dy},
			Max: Point{X: box.Max.X, Y: box.Max.Y - dy},
		}
	}
	return box
}

// squareIn returns the largest square centered in box. The side is the
// smaller of the box dimensions; this is the circle box, which ignores
// aspect ratio entirely.
func squareIn(box Rect) Rect {
	side := math.Min(box.Width(), box.Height())
	c := box.Center()
	return Rect{
		Min: Point{X: c.X - side/2, Y: c.Y - side/2},
		Max: Point{X: c.X + side/2, Y: c.Y + side/2},
	}
}

// boundaryFor constructs the closed boundary path of a shape kind
// within its resolved box.
func boundaryFor(kind ShapeKind, box Rect, cornerRadius float64) *Path {
	p := NewPath()
	w := box.Width()
	h := box.Height()

	switch kind {
	case RoundedRectangle:
		// RoundedRectangle clamps the radius internally.
		p.RoundedRectangle(box.Min.X, box.Min.Y, w, h, cornerRadius)
	case Circle:
		c := box.Center()
		p.Circle(c.X, c.Y, math.Min(w, h)/2)
	case Ellipse:
		c := box.Center()
		p.Ellipse(c.X, c.Y, w/2, h/2)
	default:
		p.Rectangle(box.Min.X, box.Min.Y, w, h)
	}
	return p
}

// childBox computes a child's concrete box from the parent's resolved
// box using the child's positioning and sizing rules.
func childBox(child ShapeDescriptor, parent Rect) Rect {
	w, h := resolveSize(child.Size, parent)

	switch child.Position.Mode {
	case PositionAbsolute:
		if child.Bounds != nil {
			return canonBox(*child.Bounds)
		}
		// Validation requires Bounds; an unvalidated descriptor
		// degrades to the parent's top-left corner.
		return RectXYWH(parent.Min.X, parent.Min.Y, w, h)
	case PositionRelative:
		anchor := Point{
			X: parent.Min.X + child.Position.At.X*parent.Width(),
			Y: parent.Min.Y + child.Position.At.Y*parent.Height(),
		}
		return RectXYWH(anchor.X-w/2, anchor.Y-h/2, w, h)
	case PositionInset:
		// Only Left and Top determine the position; Right and Bottom
		// are carried in the config but do not anchor against the
		// trailing edges.
		in := child.Position.Insets
		return RectXYWH(parent.Min.X+in.Left, parent.Min.Y+in.Top, w, h)
	default: // PositionCenter
		c := parent.Center()
		return RectXYWH(c.X-w/2, c.Y-h/2, w, h)
	}
}

// resolveSize turns a sizing rule into concrete dimensions against the
// parent box. An unset size defaults to DefaultChildFraction of the
// parent in each dimension. Results are clamped to >= 0.
func resolveSize(s Size, parent Rect) (w, h float64) {
	switch s.Mode {
	case SizeAbsolute:
		w, h = s.W, s.H
	case SizeRelative:
		w, h = s.W*parent.Width(), s.H*parent.Height()
	default:
		w, h = DefaultChildFraction*parent.Width(), DefaultChildFraction*parent.Height()
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// canonBox clamps an inverted box to zero area instead of swapping its
// corners, so degenerate input stays where the caller put it.
func canonBox(box Rect) Rect {
	if box.Max.X < box.Min.X {
		box.Max.X = box.Min.X
	}
	if box.Max.Y < box.Min.Y {
		box.Max.Y = box.Min.Y
	}
	return box
}

// topLevelBox computes the available box for a top-level shape: its
// explicit bounds when given, an explicitly sized box centered in the
// canvas, or the full canvas (the aspect-ratio fit inside Resolve is
// then the sole sizing fallback).
func topLevelBox(d ShapeDescriptor, canvas Rect) Rect {
	if d.Bounds != nil {
		return canonBox(*d.Bounds)
	}
	if d.Size.Mode != SizeUnset {
		w, h := resolveSize(d.Size, canvas)
		c := canvas.Center()
		return RectXYWH(c.X-w/2, c.Y-h/2, w, h)
	}
	return canvas
}
