package bake

import (
	"strings"

	"github.com/fbxbake/bake/scene"
)

// BuildConnections scans the inclusive line range [start, end] (the
// Connections section's body) for rows of the form
// `C: "OO", childId, parentId` and returns a map from geometry ID to
// owning model ID, for rows whose first field unquotes to "OO" and
// whose other two identifiers resolve to a known geometry and a known
// model. Rows of any other shape, or naming unknown identifiers, are
// ignored per spec.md §3/§4.7.
func BuildConnections(lines []string, start, end int, geometries map[int64]*Geometry, models map[int64]*Model) map[int64]int64 {

	links := make(map[int64]int64)
	for i := start; i <= end && i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), "C:") {
			continue
		}
		fields := splitConnectionFields(lines[i])
		if len(fields) != 3 {
			continue
		}
		if strings.Trim(fields[0], `"`) != "OO" {
			continue
		}
		childID, err1 := scene.ParseInt(fields[1])
		parentID, err2 := scene.ParseInt(fields[2])
		if err1 != nil || err2 != nil {
			continue
		}
		if _, ok := geometries[childID]; !ok {
			continue
		}
		if _, ok := models[parentID]; !ok {
			continue
		}
		links[childID] = parentID
	}
	return links
}

// splitConnectionFields splits the text after "C:" on unquoted commas.
func splitConnectionFields(line string) []string {

	colon := strings.Index(line, "C:")
	if colon < 0 {
		return nil
	}
	rest := line[colon+2:]

	var fields []string
	inQuote := false
	last := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				fields = append(fields, strings.TrimSpace(rest[last:i]))
				last = i + 1
			}
		}
	}
	fields = append(fields, strings.TrimSpace(rest[last:]))
	return fields
}
