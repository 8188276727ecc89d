package geom

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion with X,Y,Z (vector part) and W (scalar part).
// The zero value is not a valid rotation; use Identity.
type Quat struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
	W float32 `yaml:"w"`
}

// Identity returns the identity rotation.
func Identity() Quat {
	return Quat{W: 1}
}

// QuatAxisAngle returns the rotation of angle radians about axis, right-hand rule.
// The axis is normalized first.
func QuatAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normal()
	s := math32.Sin(angle / 2)
	return Quat{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: math32.Cos(angle / 2)}
}

// IsIdentity reports whether q is exactly the identity rotation.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// Mul returns q * o: the rotation o followed by q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the quaternion norm; 1 for a valid rotation.
func (q Quat) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Rotate returns v rotated by q.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis (unit) and angle in radians. The identity
// rotation reports axis +Y and angle 0.
func (q Quat) AxisAngle() (Vec3, float32) {
	w := math32.Max(-1, math32.Min(1, q.W))
	angle := 2 * math32.Acos(w)
	s := math32.Sqrt(1 - w*w)
	if s < 1e-6 {
		return Up, 0
	}
	return Vec3{q.X / s, q.Y / s, q.Z / s}, angle
}

// ApproxEqual reports whether every component of q is within tol of o or of -o
// (q and -q are the same rotation).
func (q Quat) ApproxEqual(o Quat, tol float32) bool {
	return q.within(o, tol) || q.within(Quat{-o.X, -o.Y, -o.Z, -o.W}, tol)
}

func (q Quat) within(o Quat, tol float32) bool {
	return math32.Abs(q.X-o.X) <= tol && math32.Abs(q.Y-o.Y) <= tol &&
		math32.Abs(q.Z-o.Z) <= tol && math32.Abs(q.W-o.W) <= tol
}
