package overlay

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Declarative config files. Overlay configs are data, and hosts that
// ship multiple capture modes (document, card, passport, selfie) keep
// them in TOML next to the rest of their configuration:
//
//	mask_color = "#000000B3"
//	debug = false
//	padding = 20
//
//	[[shape]]
//	kind = "rounded_rectangle"
//	aspect_ratio = 1.586
//	stroke_width = 2
//	corner_length = 24
//	corner_radius = 12
//	frame_color = "#FFFFFF"
//	show_grid = true
//
//	  [[shape.child]]
//	  kind = "circle"
//	  position = "center"
//	  size = [0.4, 0.4]
//	  size_mode = "relative"
//
// Colors are hex strings in any form Hex accepts. `size_mode` is
// "absolute" or "relative"; when omitted the magnitude inference of
// InferSize applies, which cannot express absolute sizes <= 1 unit.

// tomlConfig mirrors the TOML document shape.
type tomlConfig struct {
	MaskColor string      `toml:"mask_color"`
	Debug     bool        `toml:"debug"`
	Padding   float64     `toml:"padding"`
	Shapes    []tomlShape `toml:"shape"`
}

type tomlShape struct {
	Kind         string      `toml:"kind"`
	Bounds       []float64   `toml:"bounds"` // x, y, w, h
	Position     string      `toml:"position"`
	At           []float64   `toml:"at"`     // fractional anchor, 2 values
	Insets       []float64   `toml:"insets"` // left, top, right, bottom
	Size         []float64   `toml:"size"`   // 2 values
	SizeMode     string      `toml:"size_mode"`
	AspectRatio  float64     `toml:"aspect_ratio"`
	StrokeWidth  float64     `toml:"stroke_width"`
	CornerLength float64     `toml:"corner_length"`
	CornerRadius float64     `toml:"corner_radius"`
	FrameColor   string      `toml:"frame_color"`
	ShowGrid     bool        `toml:"show_grid"`
	Children     []tomlShape `toml:"child"`
}

// LoadConfig reads and validates an overlay config from a TOML file.
func LoadConfig(path string) (Config, error) {
	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return buildConfig(tc)
}

// DecodeConfig reads and validates an overlay config from TOML text.
func DecodeConfig(r io.Reader) (Config, error) {
	var tc tomlConfig
	if _, err := toml.NewDecoder(r).Decode(&tc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return buildConfig(tc)
}

func buildConfig(tc tomlConfig) (Config, error) {
	cfg := Config{
		Debug:   tc.Debug,
		Padding: tc.Padding,
	}
	if tc.MaskColor != "" {
		cfg.MaskColor = Hex(tc.MaskColor)
	}

	for i := range tc.Shapes {
		d, err := buildShape(tc.Shapes[i])
		if err != nil {
			return Config{}, err
		}
		cfg.Shapes = append(cfg.Shapes, d)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func buildShape(ts tomlShape) (ShapeDescriptor, error) {
	kind, err := ParseShapeKind(ts.Kind)
	if err != nil {
		return ShapeDescriptor{}, err
	}

	d := ShapeDescriptor{
		Kind:         kind,
		AspectRatio:  ts.AspectRatio,
		StrokeWidth:  ts.StrokeWidth,
		CornerLength: ts.CornerLength,
		CornerRadius: ts.CornerRadius,
		ShowGrid:     ts.ShowGrid,
	}
	if ts.FrameColor != "" {
		d.FrameColor = Hex(ts.FrameColor)
	}

	if len(ts.Bounds) > 0 {
		if len(ts.Bounds) != 4 {
			return ShapeDescriptor{}, fmt.Errorf("%w: bounds needs 4 values (x, y, w, h), got %d", ErrInvalidConfig, len(ts.Bounds))
		}
		b := RectXYWH(ts.Bounds[0], ts.Bounds[1], ts.Bounds[2], ts.Bounds[3])
		d.Bounds = &b
	}

	if len(ts.Size) > 0 {
		if len(ts.Size) != 2 {
			return ShapeDescriptor{}, fmt.Errorf("%w: size needs 2 values, got %d", ErrInvalidConfig, len(ts.Size))
		}
		switch ts.SizeMode {
		case "absolute":
			d.Size = Abs(ts.Size[0], ts.Size[1])
		case "relative":
			d.Size = Rel(ts.Size[0], ts.Size[1])
		case "":
			d.Size = InferSize(ts.Size[0], ts.Size[1])
		default:
			return ShapeDescriptor{}, fmt.Errorf("%w: unknown size mode %q", ErrInvalidConfig, ts.SizeMode)
		}
	} else if ts.SizeMode != "" {
		return ShapeDescriptor{}, fmt.Errorf("%w: size_mode given without size", ErrInvalidConfig)
	}

	switch ts.Position {
	case "", "center":
		d.Position = Centered()
	case "absolute":
		d.Position = AbsolutePosition()
	case "relative":
		if len(ts.At) != 2 {
			return ShapeDescriptor{}, fmt.Errorf("%w: relative position needs `at` with 2 values", ErrInvalidConfig)
		}
		d.Position = AtFraction(ts.At[0], ts.At[1])
	case "inset":
		if len(ts.Insets) != 4 {
			return ShapeDescriptor{}, fmt.Errorf("%w: inset position needs `insets` with 4 values (left, top, right, bottom)", ErrInvalidConfig)
		}
		d.Position = WithInsets(EdgeInsets{
			Left:   ts.Insets[0],
			Top:    ts.Insets[1],
			Right:  ts.Insets[2],
			Bottom: ts.Insets[3],
		})
	default:
		return ShapeDescriptor{}, fmt.Errorf("%w: unknown position %q", ErrInvalidConfig, ts.Position)
	}

	for i := range ts.Children {
		child, err := buildShape(ts.Children[i])
		if err != nil {
			return ShapeDescriptor{}, err
		}
		d.Children = append(d.Children, child)
	}

	return d, nil
}
