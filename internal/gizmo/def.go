package gizmo

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"axis-gizmo/internal/node"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefPath is the default location of the gizmo definition, relative to the working directory.
const DefPath = "assets/gizmo.yaml"

// Def is the YAML definition of the gizmo (e.g. assets/gizmo.yaml). Colors are CSS names
// ("red", "lime") or hex ("#ff8800", "#ff880080").
type Def struct {
	Origin OriginDef `yaml:"origin"`
	Axis   AxisDef   `yaml:"axis"`
}

// OriginDef sizes the origin sphere.
type OriginDef struct {
	Radius float32 `yaml:"radius"`
}

// AxisDef sizes and colors the axis cylinders.
type AxisDef struct {
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
	X      string  `yaml:"x"`
	Y      string  `yaml:"y"`
	Z      string  `yaml:"z"`
}

// DefaultDef returns the definition matching the builder defaults.
func DefaultDef() Def {
	return Def{
		Origin: OriginDef{Radius: DefaultOriginRadius},
		Axis: AxisDef{
			Radius: DefaultAxisRadius,
			Height: DefaultAxisHeight,
			X:      "red",
			Y:      "lime",
			Z:      "blue",
		},
	}
}

// LoadDef reads a gizmo definition from path. Fields missing from the file keep their
// DefaultDef values. A missing file is not an error; DefaultDef is returned.
func LoadDef(path string) (Def, error) {
	d := DefaultDef()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, fmt.Errorf("gizmo def: %w", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return DefaultDef(), fmt.Errorf("gizmo def %s: %w", path, err)
	}
	return d, nil
}

// Build returns the origin sphere and the axis bundle described by d.
func (d Def) Build() (origin, axis *node.Node, err error) {
	x, err := ParseColor(d.Axis.X)
	if err != nil {
		return nil, nil, fmt.Errorf("axis x color: %w", err)
	}
	y, err := ParseColor(d.Axis.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("axis y color: %w", err)
	}
	z, err := ParseColor(d.Axis.Z)
	if err != nil {
		return nil, nil, fmt.Errorf("axis z color: %w", err)
	}
	origin, err = MakeOriginNode(WithRadius(d.Origin.Radius))
	if err != nil {
		return nil, nil, err
	}
	axis, err = MakeAxisNode(WithColors(x, y, z), WithRadius(d.Axis.Radius), WithHeight(d.Axis.Height))
	if err != nil {
		return nil, nil, err
	}
	return origin, axis, nil
}

// ParseColor resolves a CSS color name or a #rgb, #rrggbb or #rrggbbaa hex string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
