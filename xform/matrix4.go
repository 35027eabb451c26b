package xform

import (
	"errors"
	"math"
)

// singularEpsilon is the |determinant| threshold below which a matrix
// is treated as non-invertible, per spec.md §4.1.
const singularEpsilon = 1e-14

// ErrSingularMatrix is returned by GetInverse when the source matrix's
// determinant has magnitude below singularEpsilon.
var ErrSingularMatrix = errors.New("xform: singular matrix")

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Matrix4 is a 4x4 matrix organized internally in column-major order:
// m[4*col+row].
type Matrix4 [16]float64

// NewMatrix4Identity returns a new identity Matrix4.
func NewMatrix4Identity() *Matrix4 {

	var m Matrix4
	m.Identity()
	return &m
}

// Set sets all elements of the matrix, row by row starting at row1,
// column1, row1, column2, and so forth.
// Returns the pointer to this updated matrix.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float64) *Matrix4 {

	m[0], m[4], m[8], m[12] = n11, n12, n13, n14
	m[1], m[5], m[9], m[13] = n21, n22, n23, n24
	m[2], m[6], m[10], m[14] = n31, n32, n33, n34
	m[3], m[7], m[11], m[15] = n41, n42, n43, n44
	return m
}

// Identity sets this matrix to the identity matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix4) Identity() *Matrix4 {

	return m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Copy copies src into this matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix4) Copy(src *Matrix4) *Matrix4 {

	*m = *src
	return m
}

// Translation sets this matrix to a pure translation matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix4) Translation(v *Vector3) *Matrix4 {

	return m.Set(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// ScaleMatrix sets this matrix to a pure scale matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix4) ScaleMatrix(v *Vector3) *Matrix4 {

	return m.Set(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// RotationX sets this matrix to a rotation of theta radians about the X axis.
// Returns the pointer to this updated matrix.
func (m *Matrix4) RotationX(theta float64) *Matrix4 {

	c, s := math.Cos(theta), math.Sin(theta)
	return m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY sets this matrix to a rotation of theta radians about the Y axis.
// Returns the pointer to this updated matrix.
func (m *Matrix4) RotationY(theta float64) *Matrix4 {

	c, s := math.Cos(theta), math.Sin(theta)
	return m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ sets this matrix to a rotation of theta radians about the Z axis.
// Returns the pointer to this updated matrix.
func (m *Matrix4) RotationZ(theta float64) *Matrix4 {

	c, s := math.Cos(theta), math.Sin(theta)
	return m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Multiply sets this matrix to a*b and returns the pointer to it.
func (m *Matrix4) Multiply(a, b *Matrix4) *Matrix4 {

	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[4*k+row] * b[4*col+k]
			}
			out[4*col+row] = sum
		}
	}
	*m = out
	return m
}

// MultiplyAll returns the left-to-right product of the given matrices.
// MultiplyAll() with no arguments returns the identity matrix.
func MultiplyAll(mats ...*Matrix4) *Matrix4 {

	out := NewMatrix4Identity()
	for _, mat := range mats {
		out.Multiply(out, mat)
	}
	return out
}

// Determinant3 returns the determinant of the upper-left 3x3 block.
func (m *Matrix4) Determinant3() float64 {

	var upper Matrix3
	upper.SetFromUpperLeft(m)
	return upper.Determinant()
}

// GetInverse sets this matrix to the inverse of src.
// Returns ErrSingularMatrix if |det(src)| < singularEpsilon, in which
// case this matrix is left set to the identity.
func (m *Matrix4) GetInverse(src *Matrix4) error {

	n11, n12, n13, n14 := src[0], src[4], src[8], src[12]
	n21, n22, n23, n24 := src[1], src[5], src[9], src[13]
	n31, n32, n33, n34 := src[2], src[6], src[10], src[14]
	n41, n42, n43, n44 := src[3], src[7], src[11], src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14

	if absF(det) < singularEpsilon {
		m.Identity()
		return ErrSingularMatrix
	}

	invDet := 1 / det

	m[0] = t11 * invDet
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * invDet
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * invDet
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * invDet

	m[4] = t12 * invDet
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * invDet
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * invDet
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * invDet

	m[8] = t13 * invDet
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * invDet
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * invDet
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * invDet

	m[12] = t14 * invDet
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * invDet
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * invDet
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * invDet

	return nil
}
