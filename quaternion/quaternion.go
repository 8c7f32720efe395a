// Package quaternion implements quaternion algebra for rotating 3D vectors.
//
// All values are immutable: every operation returns a new Q and leaves its
// operands untouched, so a Q may be shared between goroutines freely.
// No operation checks its inputs. Dividing by zero, inverting a zero
// quaternion or building a rotation around a zero-length axis produce
// IEEE-754 infinities and NaNs.
package quaternion

import (
	"fmt"
	"math"
)

// Q is the quaternion R + I𝐢 + J𝐣 + K𝐤.
type Q struct {
	R float64 // real part
	I float64
	J float64
	K float64
}

// V3 is a 3-component vector of float64.
type V3 [3]float64

// New returns the quaternion r + i𝐢 + j𝐣 + k𝐤.
func New(r, i, j, k float64) Q {
	return Q{R: r, I: i, J: j, K: k}
}

// Mul returns the Hamilton product q ⋅ p.
// It is not commutative.
func (q Q) Mul(p Q) Q {
	return Q{
		R: q.R*p.R - q.I*p.I - q.J*p.J - q.K*p.K,
		I: q.R*p.I + q.I*p.R + q.J*p.K - q.K*p.J,
		J: q.R*p.J - q.I*p.K + q.J*p.R + q.K*p.I,
		K: q.R*p.K + q.I*p.J - q.J*p.I + q.K*p.R,
	}
}

// DivScalar returns q with every component divided by s.
func (q Q) DivScalar(s float64) Q {
	return Q{R: q.R / s, I: q.I / s, J: q.J / s, K: q.K / s}
}

// Conjugate returns q with its imaginary part negated.
func (q Q) Conjugate() Q {
	return Q{R: q.R, I: -q.I, J: -q.J, K: -q.K}
}

// Norm2 returns the squared norm of q.
func (q Q) Norm2() float64 {
	return q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
}

// Norm returns the norm of q.
func (q Q) Norm() float64 {
	return math.Sqrt(q.Norm2())
}

// Inverse returns q⁻¹.
// For a unit quaternion this equals q.Conjugate().
func (q Q) Inverse() Q {
	return q.Conjugate().DivScalar(q.Norm2())
}

// RotationQ returns the unit quaternion rotating by theta radians around
// the axis (x, y, z). The axis need not be normalized, but it must not be
// zero.
func RotationQ(x, y, z, theta float64) Q {
	l := math.Sqrt(x*x + y*y + z*z)
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)
	return Q{R: c, I: x * s / l, J: y * s / l, K: z * s / l}
}

// Rotate returns v rotated by q, computed as the sandwich product
// q ⋅ (0, v) ⋅ q*. q must be a unit quaternion.
func (q Q) Rotate(v V3) V3 {
	p := Q{I: v[0], J: v[1], K: v[2]}
	r := q.Mul(p).Mul(q.Conjugate())
	return V3{r.I, r.J, r.K}
}

// String formats q as (r, i, j, k).
func (q Q) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.R, q.I, q.J, q.K)
}

// Degrees converts deg degrees to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// Len returns the length of v.
func (v V3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
