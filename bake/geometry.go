package bake

import (
	"strings"

	"github.com/fbxbake/bake/scene"
)

// LayerKind enumerates the directional/per-vertex layer-element kinds
// spec.md §3 recognizes.
type LayerKind int

const (
	LayerNormal LayerKind = iota
	LayerTangent
	LayerBinormal
	LayerUV
	LayerColor
)

// Stride returns the number of scalar components per value for this
// layer kind: 3 for normals/tangents/binormals, 2 for UVs, 4 for colors.
func (k LayerKind) Stride() int {
	switch k {
	case LayerUV:
		return 2
	case LayerColor:
		return 4
	default:
		return 3
	}
}

// directional reports whether this layer kind's direct values are
// transformed by the normal matrix (true for normals/tangents/
// binormals) as opposed to left untouched by the bake (UVs, colors).
func (k LayerKind) directional() bool {
	return k == LayerNormal || k == LayerTangent || k == LayerBinormal
}

type layerSpec struct {
	blockPrefix string
	dataName    string
	kind        LayerKind
}

// layerSpecs lists the recognized layer-element block prefixes in a
// fixed order, so discovery is deterministic regardless of map
// iteration order.
var layerSpecs = []layerSpec{
	{"LayerElementNormal", "Normals", LayerNormal},
	{"LayerElementTangent", "Tangents", LayerTangent},
	{"LayerElementBinormal", "Binormals", LayerBinormal},
	{"LayerElementUV", "UV", LayerUV},
	{"LayerElementColor", "Colors", LayerColor},
}

// LayerElement is one discovered layer-element block: its mapping/
// reference information types and the array block(s) holding its
// values, per spec.md §3.
type LayerElement struct {
	Kind          LayerKind
	Block         scene.Section
	MappingType   string
	ReferenceType string

	HasData bool
	Data    scene.ArrayBlock

	HasIndex bool
	Index    scene.ArrayBlock // "<name>Index" array, present under IndexToDirect reference
}

// Directional reports whether this layer element's direct values are
// transformed by the normal matrix (normals, tangents, binormals).
func (le *LayerElement) Directional() bool {
	return le.Kind.directional()
}

// ByPolygonVertex reports whether this layer element's mapping type
// indicates one value per polygon-vertex-use, per spec.md §4.6 step 3.
func (le *LayerElement) ByPolygonVertex() bool {
	return strings.Contains(le.MappingType, "ByPolygonVertex")
}

// IndexToDirect reports whether this layer element's reference type
// indexes into a separate direct-values array.
func (le *LayerElement) IndexToDirect() bool {
	return strings.Contains(le.ReferenceType, "IndexToDirect")
}

// Geometry is one mesh node's discovered content, per spec.md §3.
type Geometry struct {
	ID                       int64
	ContentStart, ContentEnd int

	HasPositions bool
	Positions    scene.ArrayBlock

	HasPolygonIndex bool
	PolygonIndex    scene.ArrayBlock

	Layers []LayerElement
}

// BuildGeometry reads the Geometry entry headed at lines[headerLine]:
// its identifier and the inclusive line range of its content block,
// then discovers (without requiring any of them to be present) the
// positions array, the polygon-vertex-index array, and every
// recognized layer-element block nested inside it. Returns
// ok=false only when the node's own header or brace block cannot be
// resolved — a malformed entry, skipped per spec.md §7.
func BuildGeometry(lines []string, headerLine int) (Geometry, bool) {

	id, ok := scene.ExtractID(lines[headerLine])
	if !ok {
		return Geometry{}, false
	}
	node, ok := scene.ResolveBlock(lines, headerLine)
	if !ok {
		return Geometry{}, false
	}

	g := Geometry{ID: id, ContentStart: node.Start, ContentEnd: node.End}

	if block, ok := scene.FindArrayBlock(lines, node.Start, node.End, "Vertices"); ok {
		g.Positions = block
		g.HasPositions = true
	}
	if block, ok := scene.FindArrayBlock(lines, node.Start, node.End, "PolygonVertexIndex"); ok {
		g.PolygonIndex = block
		g.HasPolygonIndex = true
	}

	prefixes := make([]string, len(layerSpecs))
	for i, spec := range layerSpecs {
		prefixes[i] = spec.blockPrefix
	}
	blocks := scene.FindAllChildBlocks(lines, node.Start, node.End, prefixes...)

	for _, b := range blocks {
		header := strings.TrimSpace(lines[b.HeaderLine])
		var spec layerSpec
		matched := false
		for _, s := range layerSpecs {
			if strings.HasPrefix(header, s.blockPrefix) {
				spec, matched = s, true
				break
			}
		}
		if !matched {
			continue
		}

		le := LayerElement{Kind: spec.kind, Block: b}
		if mt, ok := scene.ReadStringProperty(lines, b.Start, b.End, "MappingInformationType"); ok {
			le.MappingType = mt
		}
		if rt, ok := scene.ReadStringProperty(lines, b.Start, b.End, "ReferenceInformationType"); ok {
			le.ReferenceType = rt
		}
		if db, ok := scene.FindArrayBlock(lines, b.Start, b.End, spec.dataName); ok {
			le.Data = db
			le.HasData = true
		}
		if le.IndexToDirect() {
			if ib, ok := scene.FindArrayBlock(lines, b.Start, b.End, spec.dataName+"Index"); ok {
				le.Index = ib
				le.HasIndex = true
			}
		}
		g.Layers = append(g.Layers, le)
	}

	return g, true
}
