package scene

import (
	"fmt"
	"strings"
)

// ArrayBlock locates one numeric array literal inside a named child
// block, per spec.md §4.4: header line carrying "<name>:" and a "*"
// length declaration, an opening brace, and a body that starts at a
// line whose trimmed text begins with "a:" and runs to the line before
// the block's matching closing brace.
type ArrayBlock struct {
	HeaderLine int
	OpenLine   int
	CloseLine  int
	ALine      int
	BodyEnd    int // last body line, inclusive; always >= ALine
}

// FindArrayBlock finds the first "<name>:" header with a "*" length
// marker within the inclusive range [start, end] and resolves its
// array body.
func FindArrayBlock(lines []string, start, end int, name string) (ArrayBlock, bool) {

	prefix := name + ":"
	for i := start; i <= end && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		if !strings.Contains(lines[i], "*") {
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
		aLine, ok := findALine(lines, openLine+1, closeLine-1)
		if !ok {
			continue
		}
		return ArrayBlock{
			HeaderLine: i,
			OpenLine:   openLine,
			CloseLine:  closeLine,
			ALine:      aLine,
			BodyEnd:    closeLine - 1,
		}, true
	}
	return ArrayBlock{}, false
}

func findALine(lines []string, start, end int) (int, bool) {

	for i := start; i <= end && i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "a:") {
			return i, true
		}
	}
	return 0, false
}

// LineInfo is the per-body-line structural record spec.md §4.4
// requires a rewrite to reproduce exactly: which line, its prefix (up
// to and including "a:" on the first body line, or the leading
// whitespace on later lines), how many values it carried, and whether
// it ended in a trailing-comma continuation.
type LineInfo struct {
	Index         int
	Prefix        string
	Count         int
	TrailingComma bool
}

// ReadArrayLines parses the array body described by block out of
// lines, converting each comma-separated token with parse. It returns
// the concatenated values and the per-line LineInfo records needed to
// re-emit the same structure later.
func ReadArrayLines[T any](lines []string, block ArrayBlock, parse func(string) (T, error)) ([]T, []LineInfo, error) {

	var values []T
	var infos []LineInfo

	for i := block.ALine; i <= block.BodyEnd && i < len(lines); i++ {
		line := lines[i]

		var prefix string
		if i == block.ALine {
			idx := strings.Index(line, "a:")
			if idx < 0 {
				return nil, nil, fmt.Errorf("scene: array body line %d missing \"a:\"", i)
			}
			prefix = line[:idx+2]
		} else {
			trimmedLeft := strings.TrimLeft(line, " \t")
			prefix = line[:len(line)-len(trimmedLeft)]
		}

		remainder := line[len(prefix):]
		trimmedRight := strings.TrimRight(remainder, " \t")
		trailingComma := strings.HasSuffix(trimmedRight, ",")
		tokenStr := strings.TrimSuffix(trimmedRight, ",")

		count := 0
		if strings.TrimSpace(tokenStr) != "" {
			for _, tok := range strings.Split(tokenStr, ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				v, err := parse(tok)
				if err != nil {
					return nil, nil, fmt.Errorf("scene: array line %d: %w", i, err)
				}
				values = append(values, v)
				count++
			}
		}

		infos = append(infos, LineInfo{Index: i, Prefix: prefix, Count: count, TrailingComma: trailingComma})
	}
	return values, infos, nil
}

// WriteArrayLines re-emits an array body into lines from values and
// the LineInfo records ReadArrayLines produced: same per-line
// partitioning, same prefixes, same trailing-comma continuations. The
// total count across infos must equal len(values).
func WriteArrayLines[T any](lines []string, infos []LineInfo, values []T, format func(T) string) error {

	total := 0
	for _, info := range infos {
		total += info.Count
	}
	if total != len(values) {
		return fmt.Errorf("scene: array value count mismatch: have %d values, line infos need %d", len(values), total)
	}

	pos := 0
	for li, info := range infos {
		var b strings.Builder
		b.WriteString(info.Prefix)
		if li == 0 {
			b.WriteString(" ")
		}
		for i := 0; i < info.Count; i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(format(values[pos]))
			pos++
		}
		if info.TrailingComma {
			b.WriteByte(',')
		}
		lines[info.Index] = b.String()
	}
	return nil
}
