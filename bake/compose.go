package bake

import "github.com/fbxbake/bake/xform"

// ComposedTransform holds the four matrices the composer derives for
// one model, per spec.md §4.5.
type ComposedTransform struct {
	NodeMatrix  xform.Matrix4
	GeoMatrix   xform.Matrix4
	CleanMatrix xform.Matrix4
	BakeMatrix  xform.Matrix4
	Mirror      bool
}

// Compose derives the node matrix, geometric matrix, clean-residue
// matrix and final bake matrix for m, following spec.md §4.5's
// composition rule exactly — each translation is its own affine step,
// and PostRotation enters inverted, matching the engine convention
// spec.md §9 calls out as deliberate (not a simplification to revisit).
func Compose(m *Model) (ComposedTransform, error) {

	var tr, rof, rpv, sof, spv, negRpv, negSpv xform.Matrix4
	tr.Translation(&m.LclTranslation)
	rof.Translation(&m.RotationOffset)
	rpv.Translation(&m.RotationPivot)
	sof.Translation(&m.ScalingOffset)
	spv.Translation(&m.ScalingPivot)
	negRpv.Translation(&xform.Vector3{X: -m.RotationPivot.X, Y: -m.RotationPivot.Y, Z: -m.RotationPivot.Z})
	negSpv.Translation(&xform.Vector3{X: -m.ScalingPivot.X, Y: -m.ScalingPivot.Y, Z: -m.ScalingPivot.Z})

	pre := xform.EulerToMatrixVec(&m.PreRotation, xform.OrderXYZ)
	rot := xform.EulerToMatrixVec(&m.LclRotation, m.RotationOrder)
	pst := xform.EulerToMatrixVec(&m.PostRotation, xform.OrderXYZ)

	var pstInv xform.Matrix4
	if err := pstInv.GetInverse(pst); err != nil {
		// A single-axis Euler product is always orthonormal, so this
		// is unreachable in practice; fall back to identity rather
		// than propagate a matrix-algebra error the input can't cause.
		pstInv.Identity()
	}

	var scl xform.Matrix4
	scl.ScaleMatrix(&m.LclScaling)

	nodeMatrix := xform.MultiplyAll(&tr, &rof, &rpv, pre, rot, &pstInv, &negRpv, &sof, &spv, &scl, &negSpv)

	var gT, gS xform.Matrix4
	gT.Translation(&m.GeometricTranslation)
	gS.ScaleMatrix(&m.GeometricScaling)
	gR := xform.EulerToMatrixVec(&m.GeometricRotation, xform.OrderXYZ)
	geoMatrix := xform.MultiplyAll(&gT, gR, &gS)

	cleanMatrix := xform.MultiplyAll(&tr, &rof, &sof)

	var cleanInv xform.Matrix4
	if err := cleanInv.GetInverse(cleanMatrix); err != nil {
		return ComposedTransform{}, newError(KindSingular, "clean-residue matrix is not invertible", err)
	}

	bakeMatrix := xform.MultiplyAll(&cleanInv, nodeMatrix, geoMatrix)

	return ComposedTransform{
		NodeMatrix:  *nodeMatrix,
		GeoMatrix:   *geoMatrix,
		CleanMatrix: *cleanMatrix,
		BakeMatrix:  *bakeMatrix,
		Mirror:      bakeMatrix.Determinant3() < 0,
	}, nil
}

// NormalMatrix returns the normal-transform matrix for ct's bake
// matrix — the inverse-transpose of its 3x3 rotational/scaling block
// — per spec.md §4.5. It is derived from BakeMatrix rather than
// NodeMatrix so a mirrored transform's effect on directional
// attributes is reflected too.
func (ct *ComposedTransform) NormalMatrix() xform.Matrix3 {

	var nm xform.Matrix3
	nm.NormalMatrixFrom(&ct.BakeMatrix)
	return nm
}
