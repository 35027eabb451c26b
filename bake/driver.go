package bake

import (
	"sort"

	"github.com/fbxbake/bake/scene"
)

// Result summarizes one file's bake run, per spec.md §4.7.
type Result struct {
	MeshesBaked   int
	MeshesSkipped int
	NormalsFixed  int
}

// Bake locates the Objects section (required) and Connections section
// (optional) in buf, builds the model and geometry tables, and bakes
// every geometry connected to a model whose transforms are not already
// neutral, in ascending geometry-ID order for deterministic output.
//
// A malformed model or geometry entry is skipped without aborting the
// file; a geometry whose clean-residue matrix is singular is skipped
// the same way. An absent Objects section is not an error: it yields a
// zero-mesh Result, since there is nothing to bake either way.
func Bake(buf *scene.Buffer) (Result, error) {

	lines := buf.Lines

	objects, ok := scene.FindSection(lines, "Objects")
	if !ok {
		return Result{}, nil
	}

	headers := scene.FindNodeHeaders(lines, objects.Start, objects.End)

	models := make(map[int64]*Model)
	geometries := make(map[int64]*Geometry)

	for _, h := range headers {
		switch h.Kind {
		case scene.NodeModel:
			m, ok := BuildModel(lines, h.Line)
			if !ok {
				continue
			}
			models[m.ID] = &m
		case scene.NodeGeometry:
			g, ok := BuildGeometry(lines, h.Line)
			if !ok {
				continue
			}
			geometries[g.ID] = &g
		}
	}

	var links map[int64]int64
	if conns, ok := scene.FindSection(lines, "Connections"); ok {
		links = BuildConnections(lines, conns.Start, conns.End, geometries, models)
	}

	geoIDs := make([]int64, 0, len(links))
	for geoID := range links {
		geoIDs = append(geoIDs, geoID)
	}
	sort.Slice(geoIDs, func(i, j int) bool { return geoIDs[i] < geoIDs[j] })

	var result Result
	for _, geoID := range geoIDs {
		modelID := links[geoID]
		g := geometries[geoID]
		m := models[modelID]

		if m.AllNeutral() {
			continue
		}

		ct, err := Compose(m)
		if err != nil {
			result.MeshesSkipped++
			continue
		}

		stats := Mutate(lines, g, &ct)
		m.ResetTransforms(lines)

		result.MeshesBaked++
		result.NormalsFixed += stats.NormalsFixed
	}

	return result, nil
}
