package scene

import (
	"strings"

	"github.com/fbxbake/bake/xform"
)

// FindProperty scans the inclusive line range [start, end] for a
// property line — trimmed start "P:" or "Property:" — naming the
// quoted property name, per spec.md §4.2. Returns ok=false if absent.
func FindProperty(lines []string, start, end int, name string) (int, bool) {

	quoted := `"` + name + `"`
	for i := start; i <= end && i >= 0 && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "P:") && !strings.HasPrefix(trimmed, "Property:") {
			continue
		}
		if strings.Contains(lines[i], quoted) {
			return i, true
		}
	}
	return 0, false
}

// ReadVector3Property reads the trailing 3-vector of the named
// property within [start, end], substituting def when the property is
// absent or its tail cannot be parsed as three numbers.
func ReadVector3Property(lines []string, start, end int, name string, def xform.Vector3) xform.Vector3 {

	idx, ok := FindProperty(lines, start, end, name)
	if !ok {
		return def
	}
	v, ok := parseTrailingVector3(lines[idx])
	if !ok {
		return def
	}
	return v
}

// ReadScalarIntProperty reads the trailing single integer field of the
// named property within [start, end], substituting def when absent or
// unparseable.
func ReadScalarIntProperty(lines []string, start, end int, name string, def int) int {

	idx, ok := FindProperty(lines, start, end, name)
	if !ok {
		return def
	}
	fields := trailingFields(lines[idx])
	if len(fields) == 0 {
		return def
	}
	v, err := ParseInt(fields[len(fields)-1])
	if err != nil {
		return def
	}
	return int(v)
}

// WriteVector3Property overwrites the trailing 3-vector of the named
// property within [start, end] in place, formatted per FormatFloat; the
// rest of the line is byte-preserved. A no-op when the property is
// absent.
func WriteVector3Property(lines []string, start, end int, name string, v xform.Vector3) {

	idx, ok := FindProperty(lines, start, end, name)
	if !ok {
		return
	}
	lines[idx] = rewriteTrailingVector3(lines[idx], v)
}

func parseTrailingVector3(line string) (xform.Vector3, bool) {

	fields := trailingFields(line)
	if len(fields) < 3 {
		return xform.Vector3{}, false
	}
	tail := fields[len(fields)-3:]
	x, err1 := ParseFloat(tail[0])
	y, err2 := ParseFloat(tail[1])
	z, err3 := ParseFloat(tail[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return xform.Vector3{}, false
	}
	return xform.Vector3{X: x, Y: y, Z: z}, true
}

// trailingFields splits a property line on unquoted commas, trimming
// whitespace from each field. The property name/type/subtype/flags
// fields are quoted and so never split on an internal comma.
func trailingFields(line string) []string {

	var fields []string
	inQuote := false
	last := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				fields = append(fields, strings.TrimSpace(line[last:i]))
				last = i + 1
			}
		}
	}
	fields = append(fields, strings.TrimSpace(line[last:]))
	return fields
}

// rewriteTrailingVector3 replaces the last three unquoted
// comma-separated fields of line with the formatted components of v,
// preserving every other byte (surrounding whitespace, punctuation,
// and the rest of the line) exactly.
func rewriteTrailingVector3(line string, v xform.Vector3) string {

	commas := unquotedCommaIndexes(line)
	if len(commas) < 3 {
		return line
	}
	n := len(commas)
	c1, c2, c3 := commas[n-3], commas[n-2], commas[n-1]

	values := [3]float64{v.X, v.Y, v.Z}
	segs := [3]string{line[c1+1 : c2], line[c2+1 : c3], line[c3+1:]}

	var out strings.Builder
	out.WriteString(line[:c1+1])
	for i, seg := range segs {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(rewriteNumericSegment(seg, values[i]))
	}
	return out.String()
}

// rewriteNumericSegment replaces the numeric token within seg with
// FormatFloat(val), keeping seg's leading and trailing whitespace.
func rewriteNumericSegment(seg string, val float64) string {

	trimmedLeft := strings.TrimLeft(seg, " \t")
	leadWS := seg[:len(seg)-len(trimmedLeft)]
	trimmed := strings.TrimRight(trimmedLeft, " \t")
	trailWS := trimmedLeft[len(trimmed):]
	return leadWS + FormatFloat(val) + trailWS
}

// unquotedCommaIndexes returns the byte offsets of all commas in line
// that fall outside a double-quoted run.
func unquotedCommaIndexes(line string) []int {

	var indexes []int
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				indexes = append(indexes, i)
			}
		}
	}
	return indexes
}
