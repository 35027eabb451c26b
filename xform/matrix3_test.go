package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix3_Determinant(t *testing.T) {

	m := NewMatrix3Identity()
	assert.Equal(t, 1.0, m.Determinant())
}

func TestMatrix3_GetInverse_Singular(t *testing.T) {

	var zero Matrix3
	var inv Matrix3
	err := inv.GetInverse(&zero)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestNormalMatrixFrom_PureRotationIsSelfInverseTranspose(t *testing.T) {

	m4 := NewMatrix4Identity()
	m4.RotationZ(0.3)

	var nm Matrix3
	nm.NormalMatrixFrom(m4)

	var upper Matrix3
	upper.SetFromUpperLeft(m4)

	for i := range nm {
		assert.InDelta(t, upper[i], nm[i], 1e-9)
	}
}

func TestNormalMatrixFrom_NonUniformScale(t *testing.T) {

	m4 := NewMatrix4Identity().ScaleMatrix(NewVector3(2, 1, 1))

	var nm Matrix3
	nm.NormalMatrixFrom(m4)

	v := NewVector3(1, 0, 0)
	v.ApplyMatrix3(&nm)
	// inverse-transpose of diag(2,1,1) is diag(0.5,1,1)
	assert.InDelta(t, 0.5, v.X, 1e-9)
}
