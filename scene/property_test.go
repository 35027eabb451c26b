package scene

import (
	"testing"

	"github.com/fbxbake/bake/xform"
	"github.com/stretchr/testify/assert"
)

func propLines() []string {
	return splitLines(`Properties70:  {
		P: "Lcl Translation", "Lcl Translation", "", "A",1,2,3
		P: "Lcl Rotation", "Lcl Rotation", "", "A",90,0,0
		P: "Lcl Scaling", "Lcl Scaling", "", "A",1,1,1
		P: "RotationOrder", "enum", "", "",2
	}
	`)
}

func TestFindProperty_AndReadVector3(t *testing.T) {

	lines := propLines()
	idx, ok := FindProperty(lines, 0, len(lines)-1, "Lcl Rotation")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	v := ReadVector3Property(lines, 0, len(lines)-1, "Lcl Rotation", xform.Vector3{})
	assert.Equal(t, xform.Vector3{X: 90, Y: 0, Z: 0}, v)
}

func TestReadVector3Property_AbsentUsesDefault(t *testing.T) {

	lines := propLines()
	def := xform.Vector3{X: 1, Y: 1, Z: 1}
	v := ReadVector3Property(lines, 0, len(lines)-1, "GeometricScaling", def)
	assert.Equal(t, def, v)
}

func TestReadScalarIntProperty(t *testing.T) {

	lines := propLines()
	order := ReadScalarIntProperty(lines, 0, len(lines)-1, "RotationOrder", 0)
	assert.Equal(t, 2, order)

	missing := ReadScalarIntProperty(lines, 0, len(lines)-1, "Nope", 0)
	assert.Equal(t, 0, missing)
}

func TestWriteVector3Property_PreservesRestOfLine(t *testing.T) {

	lines := propLines()
	WriteVector3Property(lines, 0, len(lines)-1, "Lcl Rotation", xform.Vector3{X: 0, Y: 0, Z: 0})

	idx, _ := FindProperty(lines, 0, len(lines)-1, "Lcl Rotation")
	assert.Equal(t, `		P: "Lcl Rotation", "Lcl Rotation", "", "A",0,0,0`, lines[idx])

	v := ReadVector3Property(lines, 0, len(lines)-1, "Lcl Rotation", xform.Vector3{})
	assert.Equal(t, xform.Vector3{}, v)
}

func TestWriteVector3Property_NoOpWhenAbsent(t *testing.T) {

	lines := propLines()
	before := append([]string(nil), lines...)
	WriteVector3Property(lines, 0, len(lines)-1, "GeometricScaling", xform.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, before, lines)
}
