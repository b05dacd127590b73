package overlay

import "golang.org/x/image/colornames"

// ResolveOption configures a resolve pass.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default compositing tolerance
//	res, err := overlay.ResolveOverlay(cfg, 400, 800)
//
//	// Coarser flattening for very large canvases
//	res, err := overlay.ResolveOverlay(cfg, 4000, 8000,
//	    overlay.WithFlattenTolerance(1.0))
type ResolveOption func(*resolveOptions)

// resolveOptions holds optional configuration for a resolve pass.
type resolveOptions struct {
	flattenTolerance float64
	debugColor       RGBA
}

// defaultResolveOptions returns the default resolve options.
func defaultResolveOptions() resolveOptions {
	return resolveOptions{
		flattenTolerance: DefaultFlattenTolerance,
		debugColor:       FromColor(colornames.Magenta),
	}
}

// WithFlattenTolerance sets the maximum distance between a curved
// boundary and its polygonal approximation during mask compositing.
// Values <= 0 fall back to DefaultFlattenTolerance.
func WithFlattenTolerance(tolerance float64) ResolveOption {
	return func(o *resolveOptions) {
		o.flattenTolerance = tolerance
	}
}

// WithDebugColor overrides the diagnostic color of the debug overlay
// stroke emitted when Config.Debug is set.
func WithDebugColor(c RGBA) ResolveOption {
	return func(o *resolveOptions) {
		o.debugColor = c
	}
}
