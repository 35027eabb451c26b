// Package descriptor implements the scene-descriptor transform-field
// rewriter of spec.md §6: it resets m_LocalRotation, m_LocalScale and
// m_LocalEulerAnglesHint entries in a key/value scene descriptor to
// their identity values, in place, without disturbing any other line.
package descriptor

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fbxbake/bake/scene"
)

// watchedField names one transform entry the rewriter resets: the
// field names it carries, in the order they appear, and the identity
// scalar each resets to.
type watchedField struct {
	key    string
	fields []string
	values []string
}

var watchedFields = []watchedField{
	{"m_LocalRotation", []string{"x", "y", "z", "w"}, []string{"0", "0", "0", "1"}},
	{"m_LocalScale", []string{"x", "y", "z"}, []string{"1", "1", "1"}},
	{"m_LocalEulerAnglesHint", []string{"x", "y", "z"}, []string{"0", "0", "0"}},
}

// RewriteBuffer resets every watched transform entry in buf to
// identity, in either inline-flow or block-mapping style, and returns
// how many entries it rewrote; an entry whose fields were already at
// identity is still counted.
func RewriteBuffer(buf *scene.Buffer) int {

	changed := 0
	lines := buf.Lines
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		for _, wf := range watchedFields {
			if !strings.HasPrefix(trimmed, wf.key+":") {
				continue
			}
			rest := strings.TrimSpace(trimmed[len(wf.key)+1:])
			switch {
			case strings.HasPrefix(rest, "{"):
				if rewriteFlowLine(lines, i, wf) {
					changed++
				}
			case rest == "":
				if rewriteBlockFields(lines, i, leadingWhitespace(lines[i]), wf) > 0 {
					changed++
				}
			}
		}
	}
	return changed
}

// rewriteFlowLine resets wf's fields within an inline `{x: .., y: ..}`
// value on lines[i]. It decodes the braced text with yaml.v3 only to
// confirm it really is a flow-style mapping (catching the rare case of
// a quoted string that happens to contain a brace) before doing its
// own text-level field replacement; it never re-serializes the node.
func rewriteFlowLine(lines []string, i int, wf watchedField) bool {

	line := lines[i]
	open := strings.Index(line, "{")
	closeIdx := strings.LastIndex(line, "}")
	if open < 0 || closeIdx < open {
		return false
	}
	inner := line[open : closeIdx+1]

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(inner), &doc); err != nil || len(doc.Content) == 0 {
		return false
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode || mapping.Style&yaml.FlowStyle == 0 {
		return false
	}

	changed := false
	for idx, field := range wf.fields {
		updated, ok := replaceFlowField(inner, field, wf.values[idx])
		if ok {
			inner = updated
			changed = true
		}
	}
	if changed {
		lines[i] = line[:open] + inner + line[closeIdx+1:]
	}
	return changed
}

// replaceFlowField finds "<key>:" within s and rewrites the scalar run
// that follows (up to the next ',' or '}') to newVal, preserving
// whatever whitespace separates the colon from the original value.
func replaceFlowField(s, key, newVal string) (string, bool) {

	idx := strings.Index(s, key+":")
	if idx < 0 {
		return s, false
	}
	j := idx + len(key) + 1
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	prefix := s[:j]
	k := j
	for k < len(s) && s[k] != ',' && s[k] != '}' {
		k++
	}
	return prefix + newVal + s[k:], true
}

// rewriteBlockFields resets wf's fields where they appear as more
// indented `field: value` lines following the key line at headerIdx,
// stopping at the first line back at or above headerIndent.
func rewriteBlockFields(lines []string, headerIdx, headerIndent int, wf watchedField) int {

	changed := 0
	for i := headerIdx + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if leadingWhitespace(lines[i]) <= headerIndent {
			break
		}
		for idx, field := range wf.fields {
			if !strings.HasPrefix(trimmed, field+":") {
				continue
			}
			pad := lines[i][:leadingWhitespace(lines[i])]
			lines[i] = pad + field + ": " + wf.values[idx]
			changed++
		}
	}
	return changed
}

func leadingWhitespace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
