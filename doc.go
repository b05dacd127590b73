// Package overlay computes camera-viewfinder guideline geometry.
//
// # Overview
//
// overlay is a pure Go geometry engine for camera-preview overlays. Given a
// canvas size and a declarative tree of shape descriptors it produces the
// concrete vector geometry a renderer needs: one occlusion mask covering
// everything outside the shapes, a stroked frame per shape, and auxiliary
// decorations (rule-of-thirds grid lines, corner indicators).
//
// The engine never touches pixels. It is a synchronous, stateless function
// from (config, canvas size) to geometry, intended to be called once per
// repaint while the camera preview streams underneath.
//
// # Quick Start
//
//	import "github.com/gogpu/overlay"
//
//	// A document-scanner style frame: credit-card aspect ratio,
//	// centered, 20 units of padding around the canvas edge.
//	card := overlay.ShapeDescriptor{
//	    Kind:         overlay.RoundedRectangle,
//	    AspectRatio:  1.586,
//	    CornerRadius: 12,
//	    CornerLength: 24,
//	    StrokeWidth:  2,
//	    FrameColor:   overlay.RGB(1, 1, 1),
//	    ShowGrid:     true,
//	}
//
//	res, err := overlay.ResolveShape(card, 20, 400, 800)
//	if err != nil {
//	    // invalid descriptor: a programming error, not a runtime condition
//	}
//	// res.Mask, res.Frames, res.Decorations feed the renderer.
//
// # Architecture
//
// The library is organized into:
//   - Geometry vocabulary: Point, Rect, Path, QuadBez, CubicBez, RGBA
//   - Descriptor model: ShapeDescriptor, Size, Positioning, Config
//   - Resolver: Resolve (descriptor + box -> concrete boundary, recursive)
//   - Compositor: CompositeMask (boolean union / canvas difference)
//   - Plan builder: frames and decoration segments in traversal order
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All values in canvas units (typically logical pixels)
//
// # Determinism
//
// Resolution is a pure function: identical inputs produce geometrically
// identical results. The engine holds no state between calls, so repaint
// cadence is entirely the host's concern.
package overlay

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
