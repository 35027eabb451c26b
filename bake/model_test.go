package bake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbxbake/bake/scene"
	"github.com/fbxbake/bake/xform"
)

func propLine(name string, v xform.Vector3) string {
	return `P: "` + name + `", "` + name + `", "", "A",` +
		scene.FormatFloat(v.X) + "," + scene.FormatFloat(v.Y) + "," + scene.FormatFloat(v.Z)
}

func fixtureModelLines(rotation xform.Vector3) []string {
	return []string{
		`Model: 123456789, "Model::TestCube", "Mesh" {`,
		`	Properties70:  {`,
		propLine("Lcl Translation", xform.Vector3{}),
		propLine("Lcl Rotation", rotation),
		propLine("Lcl Scaling", xform.Vector3{X: 1, Y: 1, Z: 1}),
		`	}`,
		`}`,
	}
}

func TestBuildModel_ReadsIdentifierNameAndProperties(t *testing.T) {

	lines := fixtureModelLines(xform.Vector3{X: 90})
	m, ok := BuildModel(lines, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(123456789), m.ID)
	assert.Equal(t, "TestCube", m.Name)
	assert.True(t, m.HasProps)
	assert.Equal(t, xform.Vector3{X: 90}, m.LclRotation)
	assert.Equal(t, xform.Vector3{X: 1, Y: 1, Z: 1}, m.LclScaling)
}

func TestBuildModel_NoPropertiesBlockDefaultsToNeutral(t *testing.T) {

	lines := []string{
		`Model: 1, "Model::Empty", "Mesh" {`,
		`}`,
	}
	m, ok := BuildModel(lines, 0)
	assert.True(t, ok)
	assert.False(t, m.HasProps)
	assert.True(t, m.AllNeutral())
}

func TestBuildModel_MalformedHeaderSkipped(t *testing.T) {

	lines := []string{
		`Model: not-an-id, "Model::Bad" {`,
		`}`,
	}
	_, ok := BuildModel(lines, 0)
	assert.False(t, ok)
}

func TestResetTransforms_WritesNeutralValuesAndLeavesTranslation(t *testing.T) {

	lines := fixtureModelLines(xform.Vector3{X: 90})
	m, ok := BuildModel(lines, 0)
	assert.True(t, ok)

	m.ResetTransforms(lines)
	assert.True(t, strings.HasSuffix(lines[3], ",0,0,0"))

	m2, ok := BuildModel(lines, 0)
	assert.True(t, ok)
	assert.True(t, m2.AllNeutral())
}
