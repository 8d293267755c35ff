// Package statusline renders the reserved bottom status row.
package statusline

import (
	"fmt"

	"peruse/internal/renderer/backend"
	"peruse/internal/renderer/core"
)

// Styles configures the status line appearance.
type Styles struct {
	// Bar is the style for the status background and text.
	Bar core.Style
}

// DefaultStyles returns the default status line styles.
func DefaultStyles() Styles {
	return Styles{
		Bar: core.DefaultStyle().Reverse(),
	}
}

// StatusLine renders the document label and cursor position in the bottom row.
type StatusLine struct {
	filename   string
	line       int // 1-indexed for display
	col        int // 1-indexed for display
	totalLines int

	styles Styles
	width  int
}

// New creates a status line.
func New(styles Styles) *StatusLine {
	return &StatusLine{styles: styles}
}

// SetFilename updates the displayed document label.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	bar := s.styles.Bar

	b.Fill(core.RectFromSize(row, 0, 1, s.width), core.NewStyledCell(' ', bar))

	pos := s.formatPosition()
	posStart := s.width - core.StringWidth(pos) - 1

	// Left side: document label, truncated so it never runs into the
	// position indicator.
	x := 1
	for _, cell := range core.CellsFromString(s.filename, bar) {
		if x >= posStart-1 || x >= s.width {
			break
		}
		b.SetCell(x, row, cell)
		x++
	}

	// Right side: 1-based position indicator.
	if posStart > x {
		x = posStart
		for _, cell := range core.CellsFromString(pos, bar) {
			if x >= s.width {
				break
			}
			b.SetCell(x, row, cell)
			x++
		}
	}
}

// formatPosition formats the right-aligned position indicator.
func (s *StatusLine) formatPosition() string {
	result := fmt.Sprintf("Ln %d, Col %d", s.line, s.col)

	switch {
	case s.totalLines == 0:
		// Empty document: no scroll indicator.
	case s.line <= 1:
		result += " | Top"
	case s.line >= s.totalLines:
		result += " | Bot"
	default:
		result += fmt.Sprintf(" | %d%%", s.line*100/s.totalLines)
	}

	return result
}
