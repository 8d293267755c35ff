// Package document provides immutable in-memory line storage for a viewed file.
package document

import (
	"os"
	"path/filepath"
	"strings"
)

// NoName is the display label for a document without a backing file.
const NoName = "[No Name]"

// Document is an ordered, immutable sequence of text lines loaded from a file.
// A Document is never edited in place; reloading produces a new Document.
type Document struct {
	lines []string
	path  string
	name  string
}

// New creates an empty document with zero lines.
func New() *Document {
	return &Document{name: NoName}
}

// Load reads the file at path fully into memory and splits it into lines.
// Line terminators are removed and a final terminator does not produce a
// trailing empty line. The error is the underlying I/O error, unwrapped.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Document{
		lines: splitLines(string(content)),
		path:  path,
		name:  filepath.Base(path),
	}, nil
}

// splitLines splits content at line terminators. Both "\n" and "\r\n" are
// accepted; a trailing terminator yields no extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Path returns the originating file path, or "" for an empty document.
func (d *Document) Path() string {
	return d.path
}

// Name returns the display label: the base filename, or NoName.
func (d *Document) Name() string {
	return d.name
}

// LineCount returns the number of lines. An empty document has zero lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LastLineIndex returns the index of the last line, or 0 for an empty document.
func (d *Document) LastLineIndex() int {
	if len(d.lines) == 0 {
		return 0
	}
	return len(d.lines) - 1
}

// LineLength returns the maximum valid cursor column for the line at row:
// the character count minus one, never negative. Out-of-range rows report 0.
// Note this deliberately under-counts true length by one; it is a cursor
// bound, not a text length.
func (d *Document) LineLength(row int) int {
	if row < 0 || row >= len(d.lines) {
		return 0
	}
	n := len([]rune(d.lines[row]))
	if n == 0 {
		return 0
	}
	return n - 1
}

// Slice returns up to width characters of the line at row starting at
// character index startCol, sliced on character boundaries. ok is false when
// the row does not exist, signalling the caller to render a placeholder.
// A startCol past the end of an existing line yields an empty string with
// ok true: a blank segment, not an error.
func (d *Document) Slice(row, startCol, width int) (string, bool) {
	if row < 0 || row >= len(d.lines) {
		return "", false
	}
	if startCol < 0 || width <= 0 {
		return "", true
	}

	runes := []rune(d.lines[row])
	if startCol >= len(runes) {
		return "", true
	}

	end := startCol + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[startCol:end]), true
}
