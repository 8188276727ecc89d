// Package gizmo builds the coordinate-axis helper: an origin sphere plus red, green and
// blue cylinders along X, Y and Z. Builders return plain node trees with no dependency on a
// rendering context; the caller attaches them to a scene.
package gizmo

import (
	"errors"
	"fmt"
	"image/color"

	"axis-gizmo/internal/geom"
	"axis-gizmo/internal/node"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// ErrInvalidParameter is returned when a radius or height is not strictly positive.
var ErrInvalidParameter = errors.New("invalid parameter")

// AxisNodeName is the name of the node that groups the three axis cylinders.
const AxisNodeName = "axis"

// OriginNodeName is the name given to the origin sphere.
const OriginNodeName = "origin"

// Defaults for the axis bundle and origin marker.
const (
	DefaultAxisRadius   = float32(0.1)
	DefaultAxisHeight   = float32(5.0)
	DefaultOriginRadius = float32(0.25)
)

// Default colors: X red, Y green, Z blue; cylinders without a color are white.
var (
	DefaultXColor        = colornames.Red
	DefaultYColor        = colornames.Lime
	DefaultZColor        = colornames.Blue
	DefaultCylinderColor = colornames.White
)

// MakeSphereNode returns a node holding a sphere of the given radius centered on its origin.
func MakeSphereNode(radius float32) (*node.Node, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrInvalidParameter)
	}
	return node.NewWithGeometry(node.Geometry{Kind: node.Sphere, Radius: radius}), nil
}

// MakeCylinderNode returns a node holding a cylinder with a single material of color c.
// The color defaults to white; only the first value of c is used.
func MakeCylinderNode(radius, height float32, c ...color.RGBA) (*node.Node, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("cylinder radius %g: %w", radius, ErrInvalidParameter)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cylinder height %g: %w", height, ErrInvalidParameter)
	}
	diffuse := DefaultCylinderColor
	if len(c) > 0 {
		diffuse = c[0]
	}
	n := node.NewWithGeometry(node.Geometry{Kind: node.Cylinder, Radius: radius, Height: height})
	n.Material = &node.Material{Diffuse: diffuse}
	return n, nil
}

// quarterTurn is a +90° rotation about axis, applied around the node's own origin.
func quarterTurn(n *node.Node, axis geom.Vec3) {
	n.Rotate(geom.QuatAxisAngle(axis, math32.Pi/2), geom.Vec3{})
}

// MakeXAxisNode returns a cylinder lying along +X with one end on the origin.
// Cylinders stand along +Y, so a quarter turn about Z lays it on X.
func MakeXAxisNode(radius, height float32, c color.RGBA) (*node.Node, error) {
	n, err := MakeCylinderNode(radius, height, c)
	if err != nil {
		return nil, err
	}
	quarterTurn(n, geom.AxisZ)
	n.SetPosition(geom.V3(height*0.5, 0, 0))
	return n, nil
}

// MakeYAxisNode returns an unrotated cylinder standing on the origin along +Y.
func MakeYAxisNode(radius, height float32, c color.RGBA) (*node.Node, error) {
	n, err := MakeCylinderNode(radius, height, c)
	if err != nil {
		return nil, err
	}
	n.SetPosition(geom.V3(0, height*0.5, 0))
	return n, nil
}

// MakeZAxisNode returns a cylinder lying along +Z with one end on the origin
// (a quarter turn about X).
func MakeZAxisNode(radius, height float32, c color.RGBA) (*node.Node, error) {
	n, err := MakeCylinderNode(radius, height, c)
	if err != nil {
		return nil, err
	}
	quarterTurn(n, geom.AxisX)
	n.SetPosition(geom.V3(0, 0, height*0.5))
	return n, nil
}

// MakeAxisNode returns the axis bundle: a node named "axis" with the X, Y and Z cylinders
// as children, in that order.
func MakeAxisNode(opts ...Option) (*node.Node, error) {
	o := newOptions(opts)
	x, err := MakeXAxisNode(o.radius, o.height, o.xColor)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := MakeYAxisNode(o.radius, o.height, o.yColor)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	z, err := MakeZAxisNode(o.radius, o.height, o.zColor)
	if err != nil {
		return nil, fmt.Errorf("z axis: %w", err)
	}
	x.Name, y.Name, z.Name = "x", "y", "z"

	axis := node.New(AxisNodeName)
	axis.AddChild(x)
	axis.AddChild(y)
	axis.AddChild(z)
	return axis, nil
}

// MakeOriginNode returns a sphere at (0,0,0) marking the world origin. Only WithRadius
// applies; it defaults to DefaultOriginRadius.
func MakeOriginNode(opts ...Option) (*node.Node, error) {
	o := options{radius: DefaultOriginRadius}
	for _, opt := range opts {
		opt(&o)
	}
	n, err := MakeSphereNode(o.radius)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	n.Name = OriginNodeName
	n.SetPosition(geom.Vec3{})
	return n, nil
}
