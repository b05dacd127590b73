package overlay

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a descriptor or config carries values
// the engine refuses to resolve (non-positive aspect ratio, negative
// stroke metrics, empty shape list). Validation failures are programming
// errors to fix before the next repaint, not runtime conditions to
// recover from; nothing is ever silently coerced.
var ErrInvalidConfig = errors.New("overlay: invalid configuration")

// ShapeKind identifies the geometric form of a guideline shape.
type ShapeKind int

const (
	// Rectangle is an axis-aligned rectangle boundary.
	Rectangle ShapeKind = iota
	// RoundedRectangle is a rectangle with a uniform corner radius.
	RoundedRectangle
	// Circle always has equal width and height: its diameter is the
	// smaller dimension of the resolved box, and aspect ratio is ignored.
	Circle
	// Ellipse is inscribed in the resolved box.
	Ellipse
)

// String returns the lowercase name of the kind.
func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case RoundedRectangle:
		return "rounded_rectangle"
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind parses a kind name as produced by String.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "rectangle":
		return Rectangle, nil
	case "rounded_rectangle":
		return RoundedRectangle, nil
	case "circle":
		return Circle, nil
	case "ellipse":
		return Ellipse, nil
	}
	return 0, fmt.Errorf("%w: unknown shape kind %q", ErrInvalidConfig, s)
}

// SizeMode distinguishes how a Size's components are interpreted.
type SizeMode int

const (
	// SizeUnset means no size was given; the resolver applies its
	// default of 30% of the parent box in each dimension.
	SizeUnset SizeMode = iota
	// SizeAbsolute interprets W and H as canvas units.
	SizeAbsolute
	// SizeRelative interprets W and H as fractions of the parent box.
	SizeRelative
)

// Size describes a shape's sizing rule. The mode is an explicit tag: a
// caller chooses Abs or Rel and there is no magnitude guessing unless
// InferSize is used deliberately.
type Size struct {
	Mode SizeMode
	W, H float64
}

// Abs creates an absolute size in canvas units.
func Abs(w, h float64) Size {
	return Size{Mode: SizeAbsolute, W: w, H: h}
}

// Rel creates a size relative to the parent box. Each fraction must lie
// in [0, 1].
func Rel(fw, fh float64) Size {
	return Size{Mode: SizeRelative, W: fw, H: fh}
}

// InferSize guesses the mode from magnitude: if both components are
// <= 1.0 the size is treated as relative, otherwise as absolute.
//
// The inference is ambiguous by construction: an absolute size of one
// canvas unit or less cannot be expressed through it. Callers needing
// such a size must use Abs. Prefer Abs/Rel in new code; InferSize exists
// for configs ported from hosts that used magnitude inference.
func InferSize(w, h float64) Size {
	if w <= 1.0 && h <= 1.0 {
		return Rel(w, h)
	}
	return Abs(w, h)
}

// EdgeInsets are margins from each edge of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// InsetsAll creates uniform insets on all four sides.
func InsetsAll(d float64) EdgeInsets {
	return EdgeInsets{Left: d, Top: d, Right: d, Bottom: d}
}

// PositionMode distinguishes how a child shape is placed inside its
// parent's resolved box.
type PositionMode int

const (
	// PositionCenter centers the child box in the parent box.
	// This is the zero value.
	PositionCenter PositionMode = iota
	// PositionAbsolute uses the child's explicit Bounds; the parent box
	// is ignored.
	PositionAbsolute
	// PositionRelative centers the child box on a fractional anchor
	// point inside the parent box.
	PositionRelative
	// PositionInset places the child box at a fixed margin from the
	// parent's top-left corner. Only Left and Top determine the
	// position; Right and Bottom are accepted but unused, matching the
	// established overlay behavior (see DESIGN.md).
	PositionInset
)

// Positioning describes where a child shape sits inside its parent.
type Positioning struct {
	Mode PositionMode
	// At is the fractional anchor for PositionRelative; each component
	// must lie in [0, 1]. At (0.5, 0.5) is equivalent to PositionCenter.
	At Point
	// Insets are the margins for PositionInset.
	Insets EdgeInsets
}

// Centered positions a child at the center of its parent box.
func Centered() Positioning {
	return Positioning{Mode: PositionCenter}
}

// AtFraction positions a child centered on the point (ox, oy) mapped
// into the parent box, with each offset in [0, 1].
func AtFraction(ox, oy float64) Positioning {
	return Positioning{Mode: PositionRelative, At: Pt(ox, oy)}
}

// WithInsets positions a child at a fixed margin from the parent's
// top-left corner.
func WithInsets(in EdgeInsets) Positioning {
	return Positioning{Mode: PositionInset, Insets: in}
}

// AbsolutePosition marks a child as self-positioned through its Bounds.
func AbsolutePosition() Positioning {
	return Positioning{Mode: PositionAbsolute}
}

// ShapeDescriptor is one node of the guideline tree: the shape's kind,
// its sizing and positioning rule, its styling, and its children. The
// tree is a strict forest of owned values; a child never references its
// parent, and positioning is resolved top-down.
type ShapeDescriptor struct {
	Kind ShapeKind

	// Bounds is an explicit box. Required for PositionAbsolute children;
	// optional for top-level shapes, which otherwise fill the available
	// canvas (minus padding, then aspect-adjusted).
	Bounds *Rect

	// Position places this shape inside its parent's resolved box.
	// Ignored for top-level shapes.
	Position Positioning

	// Size is this shape's sizing rule relative to the parent box.
	Size Size

	// AspectRatio constrains the resolved box to width/height == AspectRatio,
	// fitting the largest such box centered in the available one.
	// Zero means unconstrained. Ignored for Circle.
	AspectRatio float64

	// StrokeWidth is the frame stroke width in canvas units.
	StrokeWidth float64

	// CornerLength is the leg length of the four L-shaped corner
	// indicators. Zero disables them. Only Rectangle and
	// RoundedRectangle draw corner indicators.
	CornerLength float64

	// CornerRadius is the corner radius for RoundedRectangle.
	CornerRadius float64

	// FrameColor is the stroke color of the frame and corner indicators;
	// grid lines use it at reduced opacity.
	FrameColor RGBA

	// ShowGrid draws rule-of-thirds grid lines over the shape's
	// bounding box.
	ShowGrid bool

	// Children are nested shapes positioned against this shape's
	// resolved box, in draw order.
	Children []ShapeDescriptor
}

// Validate checks the descriptor and all its children.
// It reports the first offending field wrapped in ErrInvalidConfig.
func (d *ShapeDescriptor) Validate() error {
	return d.validate(true)
}

func (d *ShapeDescriptor) validate(topLevel bool) error {
	switch d.Kind {
	case Rectangle, RoundedRectangle, Circle, Ellipse:
	default:
		return fmt.Errorf("%w: unknown shape kind %d", ErrInvalidConfig, int(d.Kind))
	}

	if d.AspectRatio < 0 {
		return fmt.Errorf("%w: aspect ratio %g must be >= 0", ErrInvalidConfig, d.AspectRatio)
	}
	if d.StrokeWidth < 0 {
		return fmt.Errorf("%w: stroke width %g must be >= 0", ErrInvalidConfig, d.StrokeWidth)
	}
	if d.CornerLength < 0 {
		return fmt.Errorf("%w: corner length %g must be >= 0", ErrInvalidConfig, d.CornerLength)
	}
	if d.CornerRadius < 0 {
		return fmt.Errorf("%w: corner radius %g must be >= 0", ErrInvalidConfig, d.CornerRadius)
	}

	switch d.Size.Mode {
	case SizeUnset:
	case SizeAbsolute:
		if d.Size.W < 0 || d.Size.H < 0 {
			return fmt.Errorf("%w: absolute size (%g, %g) must be >= 0", ErrInvalidConfig, d.Size.W, d.Size.H)
		}
	case SizeRelative:
		if d.Size.W < 0 || d.Size.W > 1 || d.Size.H < 0 || d.Size.H > 1 {
			return fmt.Errorf("%w: relative size (%g, %g) must lie in [0, 1]", ErrInvalidConfig, d.Size.W, d.Size.H)
		}
	default:
		return fmt.Errorf("%w: unknown size mode %d", ErrInvalidConfig, int(d.Size.Mode))
	}

	if !topLevel {
		switch d.Position.Mode {
		case PositionCenter:
		case PositionAbsolute:
			if d.Bounds == nil {
				return fmt.Errorf("%w: absolute-positioned child requires explicit bounds", ErrInvalidConfig)
			}
		case PositionRelative:
			at := d.Position.At
			if at.X < 0 || at.X > 1 || at.Y < 0 || at.Y > 1 {
				return fmt.Errorf("%w: relative position (%g, %g) must lie in [0, 1]", ErrInvalidConfig, at.X, at.Y)
			}
		case PositionInset:
			in := d.Position.Insets
			if in.Left < 0 || in.Top < 0 || in.Right < 0 || in.Bottom < 0 {
				return fmt.Errorf("%w: insets must be >= 0", ErrInvalidConfig)
			}
		default:
			return fmt.Errorf("%w: unknown position mode %d", ErrInvalidConfig, int(d.Position.Mode))
		}
	}

	for i := range d.Children {
		if err := d.Children[i].validate(false); err != nil {
			return err
		}
	}
	return nil
}

// Config is the top-level overlay description: an ordered list of
// top-level shapes plus canvas-wide settings.
type Config struct {
	// Shapes are the top-level guideline shapes in draw order.
	// Must be non-empty.
	Shapes []ShapeDescriptor

	// MaskColor fills the occlusion mask (the canvas area outside all
	// shape boundaries). The engine only carries it through; the
	// renderer applies it.
	MaskColor RGBA

	// Debug additionally emits the raw unioned boundary as a stroked
	// diagnostic overlay drawn on top of everything.
	Debug bool

	// Padding shrinks the canvas on all four sides before resolving.
	// Only meaningful in the single-shape convenience form.
	Padding float64
}

// SingleShape builds the single-shape convenience form: one top-level
// descriptor occupying the full canvas minus padding.
func SingleShape(d ShapeDescriptor, padding float64) Config {
	return Config{Shapes: []ShapeDescriptor{d}, Padding: padding}
}

// Validate checks the config and every descriptor in it.
func (c *Config) Validate() error {
	if len(c.Shapes) == 0 {
		return fmt.Errorf("%w: at least one top-level shape is required", ErrInvalidConfig)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding %g must be >= 0", ErrInvalidConfig, c.Padding)
	}
	for i := range c.Shapes {
		if err := c.Shapes[i].validate(true); err != nil {
			return err
		}
	}
	return nil
}
