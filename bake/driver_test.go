package bake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbxbake/bake/scene"
)

func fixtureFBXFile(rotationLine string) []string {
	lines := []string{
		`Objects:  {`,
		`	Model: 123456789, "Model::TestCube", "Mesh" {`,
		`		Properties70:  {`,
		`			P: "Lcl Translation", "Lcl Translation", "", "A",0,0,0`,
		rotationLine,
		`			P: "Lcl Scaling", "Lcl Scaling", "", "A",1,1,1`,
		`		}`,
		`	}`,
		`	Geometry: 987654321, "Geometry::CubeGeo", "Mesh" {`,
		`		Vertices: *3 {`,
		`			a: 1,0,0`,
		`		}`,
		`		PolygonVertexIndex: *1 {`,
		`			a: -1`,
		`		}`,
		`	}`,
		`}`,
		`Connections:  {`,
		`	C: "OO", 987654321, 123456789`,
		`}`,
	}
	return lines
}

// nodeHeaderLine returns the line index of the first header of kind in
// [start, end], or -1 if none is found.
func nodeHeaderLine(lines []string, start, end int, kind scene.NodeKind) int {
	for _, h := range scene.FindNodeHeaders(lines, start, end) {
		if h.Kind == kind {
			return h.Line
		}
	}
	return -1
}

func TestBake_EndToEndRotationBake(t *testing.T) {

	lines := fixtureFBXFile(`			P: "Lcl Rotation", "Lcl Rotation", "", "A",90,0,0`)
	buf := &scene.Buffer{Lines: lines}

	result, err := Bake(buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.MeshesBaked)

	objects, ok := scene.FindSection(buf.Lines, "Objects")
	assert.True(t, ok)

	g, ok := BuildGeometry(buf.Lines, nodeHeaderLine(buf.Lines, objects.Start, objects.End, scene.NodeGeometry))
	assert.True(t, ok)

	values, _, err := scene.ReadArrayLines(buf.Lines, g.Positions, scene.ParseFloat)
	assert.NoError(t, err)
	assert.InDelta(t, 1, values[0], 1e-9)
	assert.InDelta(t, 0, values[1], 1e-9)
	assert.InDelta(t, 0, values[2], 1e-9)

	m, ok := BuildModel(buf.Lines, nodeHeaderLine(buf.Lines, objects.Start, objects.End, scene.NodeModel))
	assert.True(t, ok)
	assert.True(t, m.AllNeutral())
}

func TestBake_NeutralModelSkipsMeshEntirely(t *testing.T) {

	lines := fixtureFBXFile(`			P: "Lcl Rotation", "Lcl Rotation", "", "A",0,0,0`)
	before := append([]string(nil), lines...)
	buf := &scene.Buffer{Lines: lines}

	result, err := Bake(buf)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.MeshesBaked)
	assert.Equal(t, before, buf.Lines)
}

func TestBake_NoObjectsSectionYieldsZeroMeshesNoError(t *testing.T) {

	buf := &scene.Buffer{Lines: []string{`Foo: {`, `}`}}
	result, err := Bake(buf)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.MeshesBaked)
}

func TestBake_LineCountNeverChanges(t *testing.T) {

	lines := fixtureFBXFile(`			P: "Lcl Rotation", "Lcl Rotation", "", "A",90,0,0`)
	before := len(lines)
	buf := &scene.Buffer{Lines: lines}

	_, err := Bake(buf)
	assert.NoError(t, err)
	assert.Equal(t, before, len(buf.Lines))
}

func TestBake_UnrelatedLinesUntouched(t *testing.T) {

	lines := fixtureFBXFile(`			P: "Lcl Rotation", "Lcl Rotation", "", "A",90,0,0`)
	header := lines[0]
	buf := &scene.Buffer{Lines: lines}

	_, err := Bake(buf)
	assert.NoError(t, err)
	assert.Equal(t, header, buf.Lines[0])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.Lines[1]), "Model:"))
}
