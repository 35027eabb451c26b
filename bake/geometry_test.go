package bake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixtureGeometryLines() []string {
	return []string{
		`Geometry: 987654321, "Geometry::CubeGeo", "Mesh" {`,
		`	Vertices: *9 {`,
		`		a: 0,0,0,1,0,0,0,1,0`,
		`	}`,
		`	PolygonVertexIndex: *3 {`,
		`		a: 0,1,-3`,
		`	}`,
		`	LayerElementNormal: 0 {`,
		`		MappingInformationType: "ByPolygonVertex"`,
		`		ReferenceInformationType: "Direct"`,
		`		Normals: *9 {`,
		`			a: 0,0,1,0,0,1,0,0,1`,
		`		}`,
		`	}`,
		`}`,
	}
}

func TestBuildGeometry_DiscoversPositionsIndexAndLayers(t *testing.T) {

	lines := fixtureGeometryLines()
	g, ok := BuildGeometry(lines, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(987654321), g.ID)
	assert.True(t, g.HasPositions)
	assert.True(t, g.HasPolygonIndex)
	assert.Len(t, g.Layers, 1)

	le := g.Layers[0]
	assert.Equal(t, LayerNormal, le.Kind)
	assert.True(t, le.HasData)
	assert.False(t, le.HasIndex)
	assert.True(t, le.ByPolygonVertex())
	assert.False(t, le.IndexToDirect())
	assert.True(t, le.Directional())
}

func TestBuildGeometry_MalformedHeaderSkipped(t *testing.T) {

	lines := []string{
		`Geometry: not-an-id, "Geometry::Bad", "Mesh" {`,
		`}`,
	}
	_, ok := BuildGeometry(lines, 0)
	assert.False(t, ok)
}

func TestLayerKind_Stride(t *testing.T) {

	assert.Equal(t, 3, LayerNormal.Stride())
	assert.Equal(t, 3, LayerTangent.Stride())
	assert.Equal(t, 3, LayerBinormal.Stride())
	assert.Equal(t, 2, LayerUV.Stride())
	assert.Equal(t, 4, LayerColor.Stride())
}
