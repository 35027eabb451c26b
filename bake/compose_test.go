package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbxbake/bake/xform"
)

func neutralModel() Model {
	m := Model{}
	m.LclScaling = oneVec
	m.GeometricScaling = oneVec
	return m
}

// S1: pure Lcl Rotation = (90, 0, 0), order 0 — the bake matrix is
// exactly Rx(90), and applying it to the three sample vertices matches
// spec.md §8's worked example.
func TestCompose_S1_PureXRotation(t *testing.T) {

	m := neutralModel()
	m.LclRotation = xform.Vector3{X: 90}

	ct, err := Compose(&m)
	assert.NoError(t, err)
	assert.False(t, ct.Mirror)

	cases := []struct {
		in, want xform.Vector3
	}{
		{xform.Vector3{X: 1}, xform.Vector3{X: 1}},
		{xform.Vector3{Y: 1}, xform.Vector3{Z: 1}},
		{xform.Vector3{Z: 1}, xform.Vector3{Y: -1}},
	}
	for _, c := range cases {
		v := c.in
		v.ApplyMatrix4(&ct.BakeMatrix)
		assert.InDelta(t, c.want.X, v.X, 1e-9)
		assert.InDelta(t, c.want.Y, v.Y, 1e-9)
		assert.InDelta(t, c.want.Z, v.Z, 1e-9)
	}
}

// S2 (composer half): Lcl Scaling = (-1, 1, 1) yields a mirrored bake.
func TestCompose_S2_MirrorFromNegativeScale(t *testing.T) {

	m := neutralModel()
	m.LclScaling = xform.Vector3{X: -1, Y: 1, Z: 1}

	ct, err := Compose(&m)
	assert.NoError(t, err)
	assert.True(t, ct.Mirror)

	v := xform.Vector3{X: 1}
	v.ApplyMatrix4(&ct.BakeMatrix)
	assert.InDelta(t, -1, v.X, 1e-9)
}

// S3: PreRotation/PostRotation chain with LclRotation left neutral —
// the bake matrix must equal E(pre,0)*E(rot,0)*E(pst,0)^-1 exactly,
// per spec.md §4.5/§8.
func TestCompose_S3_PrePostRotationChain(t *testing.T) {

	m := neutralModel()
	m.PreRotation = xform.Vector3{Y: 90}
	m.PostRotation = xform.Vector3{Z: 45}

	ct, err := Compose(&m)
	assert.NoError(t, err)

	pre := xform.EulerToMatrixVec(&m.PreRotation, xform.OrderXYZ)
	rot := xform.EulerToMatrixVec(&m.LclRotation, m.RotationOrder)
	pst := xform.EulerToMatrixVec(&m.PostRotation, xform.OrderXYZ)
	var pstInv xform.Matrix4
	assert.NoError(t, pstInv.GetInverse(pst))
	want := xform.MultiplyAll(pre, rot, &pstInv)

	for i := range want {
		assert.InDelta(t, want[i], ct.BakeMatrix[i], 1e-9)
	}
}

// S4: only GeometricRotation is non-neutral — the bake matrix reduces
// to M_geo, and AllNeutral must be false (because GeometricRotation is
// the non-neutral field) even though Lcl Rotation itself is neutral.
func TestCompose_S4_GeometricRotationOnly(t *testing.T) {

	m := neutralModel()
	m.GeometricRotation = xform.Vector3{Z: 90}
	assert.False(t, m.AllNeutral())

	ct, err := Compose(&m)
	assert.NoError(t, err)

	gR := xform.EulerToMatrixVec(&m.GeometricRotation, xform.OrderXYZ)
	for i := range gR {
		assert.InDelta(t, gR[i], ct.BakeMatrix[i], 1e-9)
	}
}

func TestAllNeutral_DefaultModel(t *testing.T) {

	m := neutralModel()
	assert.True(t, m.AllNeutral())
}
