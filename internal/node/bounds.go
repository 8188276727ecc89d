package node

import "axis-gizmo/internal/geom"

// CylinderEnds returns the world-space centers of a cylinder's two caps: the local points
// (0, ±Height/2, 0) under w.
func CylinderEnds(w Transform, g Geometry) (bottom, top geom.Vec3) {
	half := g.Height / 2
	return w.Apply(geom.V3(0, -half, 0)), w.Apply(geom.V3(0, half, 0))
}

// Bounds returns a world-space axis-aligned box enclosing g under w. For cylinders the
// box is the cap centers grown by the radius, which contains the cylinder at any rotation.
func Bounds(w Transform, g Geometry) (min, max geom.Vec3) {
	r := geom.V3(g.Radius, g.Radius, g.Radius)
	switch g.Kind {
	case Cylinder:
		a, b := CylinderEnds(w, g)
		return a.Min(b).Sub(r), a.Max(b).Add(r)
	default:
		return w.Position.Sub(r), w.Position.Add(r)
	}
}
