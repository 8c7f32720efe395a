// Package axisangle rotates single-precision vectors with Rodrigues' formula.
package axisangle

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3-component vector of float32.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) scale(t float32) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

func (v Vec3) dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) l2() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) normalize() Vec3 {
	return v.scale(1 / v.l2())
}

func (v Vec3) cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// RotateAroundAxis returns v rotated by angle radians around axis.
// The axis is normalized first and must not be zero.
func (v Vec3) RotateAroundAxis(axis Vec3, angle float32) Vec3 {
	axis = axis.normalize()
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return v.scale(cos).
		add(axis.cross(v).scale(sin)).
		add(axis.scale(axis.dot(v) * (1 - cos)))
}

// FromFloat64 narrows a float64 triple to a Vec3.
func FromFloat64(v [3]float64) Vec3 {
	return Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Float64 widens v to a float64 triple.
func (v Vec3) Float64() [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}
