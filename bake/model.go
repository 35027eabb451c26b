package bake

import (
	"github.com/fbxbake/bake/scene"
	"github.com/fbxbake/bake/xform"
)

// propertiesBlockPrefix is the child-block header the scene format
// nests a node's property table under. Content tools have varied this
// name's numeric suffix across format revisions (Properties60,
// Properties70, ...); matching on the common prefix alone keeps the
// locator from needing a version table.
const propertiesBlockPrefix = "Properties"

var (
	zeroVec = xform.Vector3{}
	oneVec  = xform.Vector3{X: 1, Y: 1, Z: 1}
)

// Model is one model node's discovered transform properties, per
// spec.md §3. HasProps is false when the node carries no property
// block at all, meaning "no bakeable transforms present".
type Model struct {
	ID   int64
	Name string

	HasProps  bool
	PropStart int
	PropEnd   int

	LclTranslation       xform.Vector3
	LclRotation          xform.Vector3
	LclScaling           xform.Vector3
	PreRotation          xform.Vector3
	PostRotation         xform.Vector3
	RotationOffset       xform.Vector3
	RotationPivot        xform.Vector3
	ScalingOffset        xform.Vector3
	ScalingPivot         xform.Vector3
	GeometricTranslation xform.Vector3
	GeometricRotation    xform.Vector3
	GeometricScaling     xform.Vector3
	RotationOrder        xform.RotationOrder
}

// BuildModel reads the Model entry headed at lines[headerLine]: its
// identifier, display name, and (if present) the full set of
// transform properties spec.md §3 lists, substituting the documented
// defaults (zero, except scalings which default to one) for any
// absent property. Returns ok=false only when the node's own header
// carries no parseable identifier or its brace block cannot be
// resolved — a malformed entry, skipped per spec.md §7.
func BuildModel(lines []string, headerLine int) (Model, bool) {

	id, ok := scene.ExtractID(lines[headerLine])
	if !ok {
		return Model{}, false
	}
	name := scene.ExtractName(lines[headerLine])

	node, ok := scene.ResolveBlock(lines, headerLine)
	if !ok {
		return Model{}, false
	}

	m := Model{ID: id, Name: name}

	props, hasProps := scene.FindChildBlock(lines, node.Start, node.End, propertiesBlockPrefix)
	if !hasProps {
		// No property block: every field stays at its neutral value,
		// so this model can never require baking.
		m.LclScaling = oneVec
		m.GeometricScaling = oneVec
		return m, true
	}

	m.HasProps = true
	m.PropStart = props.Start
	m.PropEnd = props.End

	m.LclTranslation = scene.ReadVector3Property(lines, props.Start, props.End, "Lcl Translation", zeroVec)
	m.LclRotation = scene.ReadVector3Property(lines, props.Start, props.End, "Lcl Rotation", zeroVec)
	m.LclScaling = scene.ReadVector3Property(lines, props.Start, props.End, "Lcl Scaling", oneVec)
	m.PreRotation = scene.ReadVector3Property(lines, props.Start, props.End, "PreRotation", zeroVec)
	m.PostRotation = scene.ReadVector3Property(lines, props.Start, props.End, "PostRotation", zeroVec)
	m.RotationOffset = scene.ReadVector3Property(lines, props.Start, props.End, "RotationOffset", zeroVec)
	m.RotationPivot = scene.ReadVector3Property(lines, props.Start, props.End, "RotationPivot", zeroVec)
	m.ScalingOffset = scene.ReadVector3Property(lines, props.Start, props.End, "ScalingOffset", zeroVec)
	m.ScalingPivot = scene.ReadVector3Property(lines, props.Start, props.End, "ScalingPivot", zeroVec)
	m.GeometricTranslation = scene.ReadVector3Property(lines, props.Start, props.End, "GeometricTranslation", zeroVec)
	m.GeometricRotation = scene.ReadVector3Property(lines, props.Start, props.End, "GeometricRotation", zeroVec)
	m.GeometricScaling = scene.ReadVector3Property(lines, props.Start, props.End, "GeometricScaling", oneVec)

	order := scene.ReadScalarIntProperty(lines, props.Start, props.End, "RotationOrder", 0)
	if order < 0 || order > 5 {
		order = 0
	}
	m.RotationOrder = xform.RotationOrder(order)

	return m, true
}

// ResetTransforms writes neutral values back into this model's local
// rotation, local scaling, pre-rotation, post-rotation, geometric
// translation, geometric rotation and geometric scaling property
// lines, per spec.md §4.6 step 5. Lcl Translation, the rotation/
// scaling offsets and pivots are deliberately left untouched: their
// effect was folded into the clean-residue matrix and remains on the
// node.
func (m *Model) ResetTransforms(lines []string) {

	if !m.HasProps {
		return
	}
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "Lcl Rotation", zeroVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "Lcl Scaling", oneVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "PreRotation", zeroVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "PostRotation", zeroVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "GeometricTranslation", zeroVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "GeometricRotation", zeroVec)
	scene.WriteVector3Property(lines, m.PropStart, m.PropEnd, "GeometricScaling", oneVec)
}

// AllNeutral reports whether every property the composer reads is
// already at its neutral value, per spec.md §4.5: bake is skipped
// when this holds, since there is nothing to fold into the geometry.
func (m *Model) AllNeutral() bool {

	return m.LclTranslation == zeroVec &&
		m.LclRotation == zeroVec &&
		m.LclScaling == oneVec &&
		m.PreRotation == zeroVec &&
		m.PostRotation == zeroVec &&
		m.RotationOffset == zeroVec &&
		m.RotationPivot == zeroVec &&
		m.ScalingOffset == zeroVec &&
		m.ScalingPivot == zeroVec &&
		m.GeometricTranslation == zeroVec &&
		m.GeometricRotation == zeroVec &&
		m.GeometricScaling == oneVec
}
