// Package xform implements the double-precision vector and matrix
// types the transform baker composes and applies, along with the
// per-axis Euler composition rules the scene format's rotation-order
// field selects between.
package xform

import "math"

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// NewVector3 creates and returns a pointer to a new Vector3 with
// the specified x, y and z components.
func NewVector3(x, y, z float64) *Vector3 {

	return &Vector3{X: x, Y: y, Z: z}
}

// Set sets this vector's X, Y and Z components.
// Returns the pointer to this updated vector.
func (v *Vector3) Set(x, y, z float64) *Vector3 {

	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// IsZero returns whether all three components are exactly zero.
func (v *Vector3) IsZero() bool {

	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsOne returns whether all three components are exactly one.
func (v *Vector3) IsOne() bool {

	return v.X == 1 && v.Y == 1 && v.Z == 1
}

// Length returns the length of this vector.
func (v *Vector3) Length() float64 {

	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize normalizes this vector in place.
// Returns the pointer to this updated vector.
func (v *Vector3) Normalize() *Vector3 {

	length := v.Length()
	if length == 0 {
		v.X, v.Y, v.Z = 0, 0, 0
		return v
	}
	return v.MultiplyScalar(1 / length)
}

// MultiplyScalar multiplies each component of this vector by s.
// Returns the pointer to this updated vector.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {

	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// ApplyMatrix4 applies the affine transform m to this vector,
// treating it as a point (implicit w=1), and stores the result.
// Returns the pointer to this updated vector.
func (v *Vector3) ApplyMatrix4(m *Matrix4) *Vector3 {

	x, y, z := v.X, v.Y, v.Z

	v.X = m[0]*x + m[4]*y + m[8]*z + m[12]
	v.Y = m[1]*x + m[5]*y + m[9]*z + m[13]
	v.Z = m[2]*x + m[6]*y + m[10]*z + m[14]
	return v
}

// ApplyMatrix3 applies the linear (no translation) transform m to
// this vector. Returns the pointer to this updated vector.
func (v *Vector3) ApplyMatrix3(m *Matrix3) *Vector3 {

	x, y, z := v.X, v.Y, v.Z

	v.X = m[0]*x + m[3]*y + m[6]*z
	v.Y = m[1]*x + m[4]*y + m[7]*z
	v.Z = m[2]*x + m[5]*y + m[8]*z
	return v
}
