package scene

import "strings"

// FindChildBlock finds the first line within [start, end] whose
// trimmed text has the given prefix (e.g. "Properties70:" or
// "LayerElementNormal:") and resolves its brace-delimited body the
// same way FindSection resolves a top-level section.
func FindChildBlock(lines []string, start, end int, prefix string) (Section, bool) {

	for i := start; i <= end && i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), prefix) {
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

// FindAllChildBlocks finds every block within [start, end] whose
// header's trimmed text starts with one of prefixes — e.g. every
// "LayerElementNormal"/"LayerElementUV"/... block inside a geometry's
// content block. Nesting depth is not checked: a matching header inside
// a non-matching block is found too. Blocks are returned in line order
// and scanning skips past each matched block's body, so a block never
// appears twice and blocks nested inside a matched block are not
// returned separately.
func FindAllChildBlocks(lines []string, start, end int, prefixes ...string) []Section {

	var out []Section
	i := start
	for i <= end && i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		matched := false
		for _, p := range prefixes {
			if strings.HasPrefix(trimmed, p) {
				matched = true
				break
			}
		}
		if !matched {
			i++
			continue
		}
		openLine, ok := findOpenBraceLine(lines, i)
		if !ok {
			i++
			continue
		}
		closeLine, ok := matchBrace(lines, openLine)
		if !ok {
			i++
			continue
		}
		out = append(out, Section{HeaderLine: i, Start: openLine + 1, End: closeLine - 1})
		i = closeLine + 1
	}
	return out
}

// ReadStringProperty reads the quoted value of a "Key: "Value", ..."
// line within [start, end] — used for a layer-element block's
// MappingInformationType and ReferenceInformationType lines.
func ReadStringProperty(lines []string, start, end int, key string) (string, bool) {

	prefix := key + ":"
	for i := start; i <= end && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		first := strings.IndexByte(lines[i], '"')
		if first < 0 {
			continue
		}
		second := strings.IndexByte(lines[i][first+1:], '"')
		if second < 0 {
			continue
		}
		return lines[i][first+1 : first+1+second], true
	}
	return "", false
}
