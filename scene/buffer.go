// Package scene implements the text locator and the property/array
// reader-writers that let the baker find and surgically rewrite the
// fragments of an ASCII scene-graph file it cares about, without
// building a full AST for the format. Every byte outside a recognized
// fragment flows through the Buffer unchanged.
package scene

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Buffer is the working representation of one scene file: its lines,
// with line endings stripped. Its length never changes once loaded —
// mutations rewrite existing entries in place; the baker never
// inserts or deletes lines.
type Buffer struct {
	Lines []string
	// newline records the line terminator observed in the source, so
	// Bytes can reproduce it; mixed terminators fall back to "\n".
	newline string
}

// ReadBuffer reads r fully and splits it into a Buffer of lines.
func ReadBuffer(r io.Reader) (*Buffer, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBuffer(data), nil
}

// NewBuffer splits data into a Buffer of lines, recording the line
// terminator style so Bytes can round-trip it.
func NewBuffer(data []byte) *Buffer {

	newline := "\n"
	if crlf := bytes.Count(data, []byte("\r\n")); crlf > 0 && crlf == bytes.Count(data, []byte("\n")) {
		newline = "\r\n"
	}

	b := &Buffer{newline: newline}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		b.Lines = append(b.Lines, scanner.Text())
	}
	return b
}

// Bytes reassembles the buffer's lines into a single byte slice,
// joined by the recorded line terminator, with a trailing terminator
// to match the common "file ends with a newline" convention.
func (b *Buffer) Bytes() []byte {

	var out strings.Builder
	for _, line := range b.Lines {
		out.WriteString(line)
		out.WriteString(b.newline)
	}
	return []byte(out.String())
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return len(b.Lines)
}
