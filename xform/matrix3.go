package xform

// Matrix3 is a 3x3 matrix organized internally in column-major order,
// matching Matrix4's layout so the two interoperate without transposes.
type Matrix3 [9]float64

// NewMatrix3Identity returns a new identity Matrix3.
func NewMatrix3Identity() *Matrix3 {

	var m Matrix3
	m.Identity()
	return &m
}

// Set sets all elements of the matrix, row by row starting at row1,
// column1, row1, column2, and so forth.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) *Matrix3 {

	m[0], m[3], m[6] = n11, n12, n13
	m[1], m[4], m[7] = n21, n22, n23
	m[2], m[5], m[8] = n31, n32, n33
	return m
}

// Identity sets this matrix to the identity matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Identity() *Matrix3 {

	return m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// SetFromUpperLeft copies the rotational/scaling upper-left 3x3 block
// of m4 into this matrix, dropping translation.
// Returns the pointer to this updated matrix.
func (m *Matrix3) SetFromUpperLeft(m4 *Matrix4) *Matrix3 {

	return m.Set(
		m4[0], m4[4], m4[8],
		m4[1], m4[5], m4[9],
		m4[2], m4[6], m4[10],
	)
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3) Determinant() float64 {

	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Transpose transposes this matrix in place.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Transpose() *Matrix3 {

	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// GetInverse sets this matrix to the inverse of src.
// Returns ErrSingularMatrix (without modifying this matrix's values
// beyond the identity fallback) if src is not invertible.
func (m *Matrix3) GetInverse(src *Matrix3) error {

	n11, n21, n31 := src[0], src[1], src[2]
	n12, n22, n32 := src[3], src[4], src[5]
	n13, n23, n33 := src[6], src[7], src[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if det == 0 || absF(det) < singularEpsilon {
		m.Identity()
		return ErrSingularMatrix
	}
	invDet := 1 / det

	m[0] = t11 * invDet
	m[1] = (n31*n23 - n33*n21) * invDet
	m[2] = (n32*n21 - n31*n22) * invDet
	m[3] = t12 * invDet
	m[4] = (n33*n11 - n31*n13) * invDet
	m[5] = (n31*n12 - n32*n11) * invDet
	m[6] = t13 * invDet
	m[7] = (n21*n13 - n23*n11) * invDet
	m[8] = (n22*n11 - n21*n12) * invDet

	return nil
}

// NormalMatrixFrom sets this matrix to the normal-transform matrix for
// the affine transform m4: the inverse-transpose of m4's upper-left 3x3
// rotational/scaling block. Translation plays no part, since normals are
// directions, not points. If the block is singular, falls back to the
// block itself (uniformly-degenerate transforms have no well-defined
// normal matrix; this keeps the mutator from panicking on such input).
// Returns the pointer to this updated matrix.
func (m *Matrix3) NormalMatrixFrom(m4 *Matrix4) *Matrix3 {

	var upper Matrix3
	upper.SetFromUpperLeft(m4)

	if err := m.GetInverse(&upper); err != nil {
		m.Copy(&upper)
		return m
	}
	m.Transpose()
	return m
}

// Copy copies src into this matrix.
// Returns the pointer to this updated matrix.
func (m *Matrix3) Copy(src *Matrix3) *Matrix3 {

	*m = *src
	return m
}
