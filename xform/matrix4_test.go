package xform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4_Identity(t *testing.T) {

	m := NewMatrix4Identity()
	assert.Equal(t, Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, *m)
}

func TestMatrix4_MultiplyTranslations(t *testing.T) {

	tests := []struct {
		a, b     *Matrix4
		expected *Vector3
	}{
		{
			a:        NewMatrix4Identity().Translation(NewVector3(1, 0, 0)),
			b:        NewMatrix4Identity().Translation(NewVector3(0, 2, 0)),
			expected: NewVector3(1, 2, 0),
		},
		{
			a:        NewMatrix4Identity(),
			b:        NewMatrix4Identity().Translation(NewVector3(3, 3, 3)),
			expected: NewVector3(3, 3, 3),
		},
	}

	for _, test := range tests {
		var m Matrix4
		m.Multiply(test.a, test.b)
		v := NewVector3(0, 0, 0)
		v.ApplyMatrix4(&m)
		assert.InDelta(t, test.expected.X, v.X, 1e-12)
		assert.InDelta(t, test.expected.Y, v.Y, 1e-12)
		assert.InDelta(t, test.expected.Z, v.Z, 1e-12)
	}
}

func TestMatrix4_GetInverse_Singular(t *testing.T) {

	var zero Matrix4
	var inv Matrix4
	err := inv.GetInverse(&zero)
	assert.ErrorIs(t, err, ErrSingularMatrix)
	assert.Equal(t, *NewMatrix4Identity(), inv)
}

func TestMatrix4_GetInverse_RoundTrip(t *testing.T) {

	m := NewMatrix4Identity().Translation(NewVector3(1, -2, 5))
	var rot Matrix4
	rot.RotationX(0.7)
	m.Multiply(m, &rot)

	var inv Matrix4
	err := inv.GetInverse(m)
	assert.NoError(t, err)

	var product Matrix4
	product.Multiply(m, &inv)
	for i, v := range NewMatrix4Identity() {
		assert.InDelta(t, v, product[i], 1e-9)
	}
}

func TestMatrix4_Determinant3_Mirror(t *testing.T) {

	m := NewMatrix4Identity().ScaleMatrix(NewVector3(-1, 1, 1))
	assert.Less(t, m.Determinant3(), 0.0)

	m2 := NewMatrix4Identity().ScaleMatrix(NewVector3(1, 1, 1))
	assert.Greater(t, m2.Determinant3(), 0.0)
}

func TestEulerToMatrix_DefaultOrderIsXYZComposition(t *testing.T) {

	m1 := EulerToMatrix(10, 20, 30, OrderXYZ)
	m2 := EulerToMatrix(10, 20, 30, RotationOrder(99))
	assert.Equal(t, *m1, *m2)
}

func TestEulerToMatrix_RotationXOnly(t *testing.T) {

	m := EulerToMatrix(90, 0, 0, OrderXYZ)
	v := NewVector3(0, 1, 0)
	v.ApplyMatrix4(m)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
	assert.InDelta(t, 1, v.Z, 1e-9)
}
