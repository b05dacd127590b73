package overlay

import "fmt"

// Top-level entry points. Both are pure and stateless: each call takes
// its own config and canvas size and returns a self-contained result,
// so repeated calls with identical input yield geometrically identical
// output and there is nothing to invalidate between repaints.

// Result is everything a renderer needs for one repaint, in draw order:
// fill Mask with MaskColor, stroke each Frame boundary, stroke each
// Decoration segment, and (debug builds only) stroke Debug last, on top
// of everything.
type Result struct {
	// Shapes is the resolved forest, preserved for callers that need
	// concrete boxes (hit regions, focus metering, layout of captions).
	Shapes []ResolvedShape

	// Mask is the canvas area outside all shape boundaries.
	Mask Region

	// MaskColor is the configured occlusion fill color, carried through
	// from the Config. Zero (transparent) when resolved via ResolveShape.
	MaskColor RGBA

	// Frames are the shape boundaries with stroke styling, in forest
	// traversal order.
	Frames []Frame

	// Decorations are grid lines and corner indicators, in the same
	// traversal order.
	Decorations []Segment

	// Debug is the raw unioned boundary, present only when Config.Debug
	// is set. Stroked 1 unit wide in DebugColor.
	Debug *Path

	// DebugColor is the diagnostic stroke color for Debug.
	DebugColor RGBA
}

// ResolveOverlay resolves a full overlay config against a canvas of the
// given dimensions. Validation failures are reported as wrapped
// ErrInvalidConfig; resolution itself never fails.
//
// Padding applies only in the single-shape form (exactly one top-level
// shape); in the multi-shape form shapes are resolved against the full
// canvas.
func ResolveOverlay(cfg Config, width, height float64, opts ...ResolveOption) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultResolveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := RectXYWH(0, 0, width, height)
	available := canvas
	if len(cfg.Shapes) == 1 {
		available = canvas.Inset(cfg.Padding)
	}

	shapes := make([]ResolvedShape, 0, len(cfg.Shapes))
	for i := range cfg.Shapes {
		d := cfg.Shapes[i]
		shapes = append(shapes, Resolve(d, topLevelBox(d, available)))
	}

	mask, union := CompositeMask(shapes, canvas, o.flattenTolerance)
	frames, decorations := BuildPlan(shapes)

	res := &Result{
		Shapes:      shapes,
		Mask:        mask,
		MaskColor:   cfg.MaskColor,
		Frames:      frames,
		Decorations: decorations,
	}
	if cfg.Debug {
		res.Debug = union.Path()
		res.DebugColor = o.debugColor
	}

	Logger().Debug("overlay resolved",
		"shapes", len(shapes),
		"canvas_width", width,
		"canvas_height", height,
		"frames", len(frames),
		"decorations", len(decorations),
	)

	return res, nil
}

// ResolveShape is the single-shape fast path: one descriptor, no
// children forest to assemble at the call site. The available box is
// the canvas shrunk by padding on all four sides; the result is
// identical to resolving the equivalent one-element Config.
//
// MaskColor and Debug are Config-level settings and stay at their zero
// values here; use ResolveOverlay when they are needed.
func ResolveShape(d ShapeDescriptor, padding, width, height float64, opts ...ResolveOption) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: padding %g must be >= 0", ErrInvalidConfig, padding)
	}

	o := defaultResolveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := RectXYWH(0, 0, width, height)
	available := canvas.Inset(padding)

	shapes := [1]ResolvedShape{Resolve(d, topLevelBox(d, available))}
	mask, _ := CompositeMask(shapes[:], canvas, o.flattenTolerance)
	frames, decorations := BuildPlan(shapes[:])

	Logger().Debug("shape resolved",
		"kind", d.Kind.String(),
		"canvas_width", width,
		"canvas_height", height,
		"padding", padding,
	)

	return &Result{
		Shapes:      shapes[:],
		Mask:        mask,
		Frames:      frames,
		Decorations: decorations,
	}, nil
}
