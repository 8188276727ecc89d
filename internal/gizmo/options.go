package gizmo

import "image/color"

type options struct {
	xColor, yColor, zColor color.RGBA
	radius, height         float32
}

// Option overrides one of the axis bundle defaults.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		xColor: DefaultXColor,
		yColor: DefaultYColor,
		zColor: DefaultZColor,
		radius: DefaultAxisRadius,
		height: DefaultAxisHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColors sets the X, Y and Z cylinder colors.
func WithColors(x, y, z color.RGBA) Option {
	return func(o *options) {
		o.xColor, o.yColor, o.zColor = x, y, z
	}
}

// WithRadius sets the cylinder radius (or the sphere radius for MakeOriginNode).
func WithRadius(r float32) Option {
	return func(o *options) { o.radius = r }
}

// WithHeight sets the cylinder height, i.e. the visible length of each axis.
func WithHeight(h float32) Option {
	return func(o *options) { o.height = h }
}
