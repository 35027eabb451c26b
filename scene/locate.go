package scene

import "strings"

// Section is a located top-level named section, e.g. "Objects" or
// "Connections": the header line index and the inclusive line range
// of its brace-delimited body (the lines strictly between the braces).
type Section struct {
	HeaderLine int
	Start      int // first body line, inclusive
	End        int // last body line, inclusive; End < Start means an empty body
}

// FindSection locates the first line whose leading non-whitespace text
// starts with "<name>:" and resolves its brace-delimited body, per
// spec.md §4.2: the opening brace may be on the header line itself or
// on a later non-empty, non-comment line; any other content before the
// brace cancels that candidate.
func FindSection(lines []string, name string) (Section, bool) {

	prefix := name + ":"
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
			continue
		}
		openLine, ok := findOpenBraceLine(lines, i)
		if !ok {
			continue
		}
		closeLine, ok := matchBrace(lines, openLine)
		if !ok {
			continue
		}
		return Section{HeaderLine: i, Start: openLine + 1, End: closeLine - 1}, true
	}
	return Section{}, false
}

// ResolveBlock resolves the brace-delimited body of a block whose
// header is already known to be at lines[headerLine] — used once a
// node header has been found by FindNodeHeaders, rather than searched
// for by name. Applies the same brace/comment/cancellation rules as
// FindSection.
func ResolveBlock(lines []string, headerLine int) (Section, bool) {

	openLine, ok := findOpenBraceLine(lines, headerLine)
	if !ok {
		return Section{}, false
	}
	closeLine, ok := matchBrace(lines, openLine)
	if !ok {
		return Section{}, false
	}
	return Section{HeaderLine: headerLine, Start: openLine + 1, End: closeLine - 1}, true
}

// isComment reports whether a trimmed line is a "; ..." comment.
func isComment(trimmed string) bool {
	return len(trimmed) > 0 && trimmed[0] == ';'
}

// findOpenBraceLine finds the line carrying the unquoted '{' that opens
// the block headed at lines[headerIdx], scanning the header line itself
// and then subsequent non-empty, non-comment lines. Discovery is
// cancelled (ok=false) if a non-empty, non-comment line without a brace
// appears first.
func findOpenBraceLine(lines []string, headerIdx int) (int, bool) {

	if containsUnquoted(lines[headerIdx], '{') {
		return headerIdx, true
	}
	for i := headerIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if isComment(trimmed) {
			continue
		}
		if containsUnquoted(lines[i], '{') {
			return i, true
		}
		return 0, false
	}
	return 0, false
}

// matchBrace walks forward from openLine, which must contain an
// unquoted '{', tracking brace balance (ignoring braces inside
// double-quoted runs) until it returns to zero. Returns the line on
// which the matching '}' was found.
func matchBrace(lines []string, openLine int) (int, bool) {

	balance := 0
	started := false
	for i := openLine; i < len(lines); i++ {
		inQuote := false
		for _, r := range lines[i] {
			switch {
			case r == '"':
				inQuote = !inQuote
			case inQuote:
				// quoted content never affects brace balance
			case r == '{':
				balance++
				started = true
			case r == '}':
				balance--
				if started && balance == 0 {
					return i, true
				}
			}
		}
	}
	return 0, false
}

// containsUnquoted reports whether ch appears in line outside any
// double-quoted run.
func containsUnquoted(line string, ch byte) bool {

	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case ch:
			if !inQuote {
				return true
			}
		}
	}
	return false
}

// NodeHeader describes a "Model:" or "Geometry:" header line found
// within the Objects section.
type NodeHeader struct {
	Line int
	Kind NodeKind
}

// NodeKind distinguishes the node headers the locator recognizes.
type NodeKind int

const (
	// NodeModel is a "Model:" header.
	NodeModel NodeKind = iota
	// NodeGeometry is a "Geometry:" header that mentions the quoted
	// token "Mesh" on its header line.
	NodeGeometry
)

// FindNodeHeaders scans the inclusive line range [start, end] for
// "Model:" headers, and "Geometry:" headers that carry the quoted
// token "Mesh" per spec.md §4.2.
func FindNodeHeaders(lines []string, start, end int) []NodeHeader {

	var headers []NodeHeader
	for i := start; i <= end && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(trimmed, "Model:"):
			headers = append(headers, NodeHeader{Line: i, Kind: NodeModel})
		case strings.HasPrefix(trimmed, "Geometry:") && strings.Contains(lines[i], `"Mesh"`):
			headers = append(headers, NodeHeader{Line: i, Kind: NodeGeometry})
		}
	}
	return headers
}

// ExtractID reads the first integer literal following the first colon
// of a header line, accepting an optional trailing 'L' suffix and a
// leading '-' only at position zero of the numeric run, per spec.md
// §4.2. Returns ok=false if no integer literal is found.
func ExtractID(header string) (int64, bool) {

	colon := strings.IndexByte(header, ':')
	if colon < 0 {
		return 0, false
	}
	rest := header[colon+1:]

	i := 0
	for i < len(rest) && (rest[i] < '0' || rest[i] > '9') {
		i++
	}
	start := i
	neg := i > 0 && i < len(rest) && rest[i-1] == '-'
	digitsStart := i
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	numStr := rest[start:i]
	var value int64
	for _, r := range numStr {
		if r == '-' {
			continue
		}
		value = value*10 + int64(r-'0')
	}
	if neg {
		value = -value
	}
	return value, true
}

// ExtractName reads the display name from a header line: the text
// between the first pair of double quotes after "Model::" if present
// (i.e. the "Model::" prefix stripped from that quoted field's
// content), otherwise between the first two double quotes on the
// line. Returns "?" if no quoted text is found, per spec.md §4.2.
func ExtractName(header string) string {

	if idx := strings.Index(header, "Model::"); idx >= 0 {
		if openQuote := strings.LastIndexByte(header[:idx], '"'); openQuote >= 0 {
			if closeRel := strings.IndexByte(header[idx:], '"'); closeRel >= 0 {
				return header[idx+len("Model::") : idx+closeRel]
			}
		}
	}
	first := strings.IndexByte(header, '"')
	if first < 0 {
		return "?"
	}
	second := strings.IndexByte(header[first+1:], '"')
	if second < 0 {
		return "?"
	}
	return header[first+1 : first+1+second]
}
