package bake

import (
	"math"

	"github.com/fbxbake/bake/scene"
	"github.com/fbxbake/bake/xform"
)

// MutationStats reports what Mutate actually changed for one mesh, for
// driver-level logging.
type MutationStats struct {
	Mirrored     bool
	NormalsFixed int
}

// Mutate rewrites g's arrays in lines to fold ct's bake matrix into the
// geometry, per spec.md §4.6:
//  1. positions are transformed by BakeMatrix;
//  2. normals/tangents/binormals are transformed by the normal matrix
//     and renormalized when their length after transform exceeds the
//     near-zero threshold;
//  3. on a mirrored bake, polygon winding is reversed and every
//     ByPolygonVertex layer's data is reordered to match;
//  4. normals alone then get a hygiene pass.
//
// A malformed or absent array is skipped individually rather than
// aborting the whole mesh, per spec.md §7.
func Mutate(lines []string, g *Geometry, ct *ComposedTransform) MutationStats {

	stats := MutationStats{Mirrored: ct.Mirror}

	if g.HasPositions {
		bakePositions(lines, g.Positions, &ct.BakeMatrix)
	}

	normalMatrix := ct.NormalMatrix()
	for i := range g.Layers {
		le := &g.Layers[i]
		if !le.HasData || !le.Directional() {
			continue
		}
		applyNormalMatrix(lines, le.Data, &normalMatrix)
	}

	if ct.Mirror && g.HasPolygonIndex {
		mirrorPolygons(lines, g)
	}

	for i := range g.Layers {
		le := &g.Layers[i]
		if le.Kind != LayerNormal || !le.HasData {
			continue
		}
		stats.NormalsFixed += fixNormals(lines, le.Data)
	}

	return stats
}

func bakePositions(lines []string, block scene.ArrayBlock, m *xform.Matrix4) {

	values, infos, err := scene.ReadArrayLines(lines, block, scene.ParseFloat)
	if err != nil {
		return
	}
	for i := 0; i+2 < len(values); i += 3 {
		v := xform.Vector3{X: values[i], Y: values[i+1], Z: values[i+2]}
		v.ApplyMatrix4(m)
		values[i], values[i+1], values[i+2] = v.X, v.Y, v.Z
	}
	_ = scene.WriteArrayLines(lines, infos, values, scene.FormatFloat)
}

func applyNormalMatrix(lines []string, block scene.ArrayBlock, nm *xform.Matrix3) {

	values, infos, err := scene.ReadArrayLines(lines, block, scene.ParseFloat)
	if err != nil {
		return
	}
	for i := 0; i+2 < len(values); i += 3 {
		v := xform.Vector3{X: values[i], Y: values[i+1], Z: values[i+2]}
		v.ApplyMatrix3(nm)
		if v.Length() > 1e-14 {
			v.Normalize()
		}
		values[i], values[i+1], values[i+2] = v.X, v.Y, v.Z
	}
	_ = scene.WriteArrayLines(lines, infos, values, scene.FormatFloat)
}

// mirrorPolygons reverses winding on g's polygon-vertex-index array and
// reorders every ByPolygonVertex layer's data to match, per spec.md
// §4.6 step 3. Polygon ranges are positional offsets into the
// polygon-vertex-index array; per-polygon-vertex layer arrays share
// that same per-polygon partitioning element-for-element.
func mirrorPolygons(lines []string, g *Geometry) {

	indices, infos, err := scene.ReadArrayLines(lines, g.PolygonIndex, scene.ParseInt)
	if err != nil {
		return
	}
	ranges := polygonRanges(indices)
	reverseWinding(indices, ranges)
	if err := scene.WriteArrayLines(lines, infos, indices, scene.FormatInt); err != nil {
		return
	}

	for i := range g.Layers {
		le := &g.Layers[i]
		if !le.ByPolygonVertex() {
			continue
		}
		if le.IndexToDirect() {
			if le.HasIndex {
				reorderIndexArray(lines, le.Index, ranges)
			}
			continue
		}
		if le.HasData {
			reorderDirectArray(lines, le.Data, ranges, le.Kind.Stride())
		}
	}
}

// polygonRanges groups the polygon-vertex-index array into runs
// terminated by a negative entry, returning each run's inclusive
// [start, end] array positions.
func polygonRanges(values []int64) [][2]int {

	var ranges [][2]int
	start := 0
	for i, v := range values {
		if v < 0 {
			ranges = append(ranges, [2]int{start, i})
			start = i + 1
		}
	}
	return ranges
}

// reverseWinding reverses each polygon's traversal while keeping its
// first vertex fixed: the new order is the first vertex followed by
// the remaining vertices in reverse. The final position is always
// re-encoded with the negative terminator regardless of which vertex
// lands there.
func reverseWinding(values []int64, ranges [][2]int) {

	for _, r := range ranges {
		s, e := r[0], r[1]
		n := e - s + 1
		if n <= 1 {
			continue
		}

		decoded := make([]int64, n)
		copy(decoded, values[s:e+1])
		decoded[n-1] = -decoded[n-1] - 1

		reordered := make([]int64, n)
		reordered[0] = decoded[0]
		for i := 1; i < n; i++ {
			reordered[i] = decoded[n-i]
		}
		reordered[n-1] = -reordered[n-1] - 1

		copy(values[s:e+1], reordered)
	}
}

// reorderIndexArray reorders each polygon's run in an index array with
// the same first-fixed, rest-reversed permutation reverseWinding
// applies to the polygon-vertex-index array, so each entry stays
// attached to the vertex it was attached to before mirroring.
func reorderIndexArray(lines []string, block scene.ArrayBlock, ranges [][2]int) {

	values, infos, err := scene.ReadArrayLines(lines, block, scene.ParseInt)
	if err != nil {
		return
	}
	for _, r := range ranges {
		permutePolygonRun(values, r[0], r[1], 1)
	}
	_ = scene.WriteArrayLines(lines, infos, values, scene.FormatInt)
}

// reorderDirectArray reorders each polygon's run of stride-wide tuples
// in a direct-values array with the same first-fixed, rest-reversed
// permutation reverseWinding applies to the polygon-vertex-index
// array, so each tuple stays attached to the vertex it was attached to
// before mirroring.
func reorderDirectArray(lines []string, block scene.ArrayBlock, ranges [][2]int, stride int) {

	values, infos, err := scene.ReadArrayLines(lines, block, scene.ParseFloat)
	if err != nil {
		return
	}
	for _, r := range ranges {
		permutePolygonRun(values, r[0], r[1], stride)
	}
	_ = scene.WriteArrayLines(lines, infos, values, scene.FormatFloat)
}

// permutePolygonRun rewrites the stride-wide tuples occupying element
// positions [s, e] in place: position s keeps its own tuple, and
// positions s+1..e receive the remaining tuples in reverse order. This
// mirrors reverseWinding's vertex permutation exactly (first vertex
// fixed, the rest reversed), which is the permutation that keeps a
// per-polygon-vertex attribute array in correspondence with the
// reversed polygon-vertex-index array it was paired with.
func permutePolygonRun[T any](values []T, s, e, stride int) {

	n := e - s + 1
	if n <= 1 {
		return
	}
	reordered := make([]T, n*stride)
	copy(reordered[:stride], values[s*stride:(s+1)*stride])
	for i := 1; i < n; i++ {
		src := e + 1 - i
		copy(reordered[i*stride:(i+1)*stride], values[src*stride:(src+1)*stride])
	}
	copy(values[s*stride:(e+1)*stride], reordered)
}

// fixNormals runs the normal hygiene pass of spec.md §4.6 step 4 over
// one normals array: components under the near-zero threshold are
// coerced to zero, a resulting near-zero vector is replaced with
// straight up, and anything else off unit length by more than the
// tolerance is renormalized. It returns how many normals it changed.
func fixNormals(lines []string, block scene.ArrayBlock) int {

	values, infos, err := scene.ReadArrayLines(lines, block, scene.ParseFloat)
	if err != nil {
		return 0
	}

	adjusted := 0
	for i := 0; i+2 < len(values); i += 3 {
		ox, oy, oz := values[i], values[i+1], values[i+2]
		x, y, z := ox, oy, oz

		if math.Abs(x) < 1e-6 {
			x = 0
		}
		if math.Abs(y) < 1e-6 {
			y = 0
		}
		if math.Abs(z) < 1e-6 {
			z = 0
		}

		length := math.Sqrt(x*x + y*y + z*z)
		switch {
		case length < 1e-6:
			x, y, z = 0, 1, 0
		case math.Abs(length-1) > 1e-3:
			x, y, z = x/length, y/length, z/length
		}

		if x != ox || y != oy || z != oz {
			adjusted++
		}
		values[i], values[i+1], values[i+2] = x, y, z
	}

	_ = scene.WriteArrayLines(lines, infos, values, scene.FormatFloat)
	return adjusted
}
