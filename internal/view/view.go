// Package view implements the viewport/cursor controller: it owns the cursor
// position, scroll offset and last-known terminal size, and decides which
// slice of the document is visible on each render pass.
package view

import (
	"peruse/internal/document"
	"peruse/internal/renderer/backend"
	"peruse/internal/renderer/core"
	"peruse/internal/renderer/statusline"
)

// Location is a logical (row, column) position in the document.
type Location struct {
	Row int
	Col int
}

// Size holds terminal dimensions in character cells.
type Size struct {
	Width  int
	Height int
}

// Direction identifies a cursor navigation command.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	PageUp
	PageDown
	Home
	End
)

// Options configures the view's appearance.
type Options struct {
	// Placeholder is the glyph drawn on rows past the end of the document.
	Placeholder rune

	// Text is the style for document text.
	Text core.Style

	// Status configures the status line styles.
	Status statusline.Styles
}

// DefaultOptions returns the default view configuration.
func DefaultOptions() Options {
	return Options{
		Placeholder: '~',
		Text:        core.DefaultStyle(),
		Status:      statusline.DefaultStyles(),
	}
}

// View is the viewport/cursor state machine. It is not safe for concurrent
// use; the application drives it from the single event-loop goroutine.
type View struct {
	doc    *document.Document
	cursor Location
	scroll Location
	size   Size

	needsRedraw bool

	placeholder rune
	textStyle   core.Style
	status      *statusline.StatusLine
}

// New creates a view over an empty document.
func New(opts Options) *View {
	return &View{
		doc:         document.New(),
		needsRedraw: true,
		placeholder: opts.Placeholder,
		textStyle:   opts.Text,
		status:      statusline.New(opts.Status),
	}
}

// Load replaces the document with the contents of the file at path. On
// failure the previous document, cursor and scroll are left untouched.
// On success the cursor keeps its position, clamped to the new document.
func (v *View) Load(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	v.doc = doc
	v.clampCursor()
	v.updateScroll()
	v.needsRedraw = true
	return nil
}

// Document returns the currently viewed document.
func (v *View) Document() *document.Document {
	return v.doc
}

// Cursor returns the logical cursor location.
func (v *View) Cursor() Location {
	return v.cursor
}

// Scroll returns the logical coordinate of the top-left visible cell.
func (v *View) Scroll() Location {
	return v.scroll
}

// NeedsRedraw reports whether the visible frame is stale.
func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

// HandleResize records new terminal dimensions and marks the frame stale.
// The scroll offset is re-clamped on the next render.
func (v *View) HandleResize(width, height int) {
	v.size = Size{Width: width, Height: height}
	v.needsRedraw = true
}

// usableHeight returns the viewport height available for document rows:
// the terminal height minus the reserved status row, never negative.
func (v *View) usableHeight() int {
	if v.size.Height <= 1 {
		return 0
	}
	return v.size.Height - 1
}

// MoveCursor applies a navigation command, then restores the cursor and
// scroll invariants. Out-of-range positions are absorbed by clamping;
// the operation never fails.
func (v *View) MoveCursor(dir Direction) {
	switch dir {
	case Left:
		// At the start of a line, wrap to the end of the previous line.
		if v.cursor.Col == 0 {
			if v.cursor.Row > 0 {
				v.cursor.Row--
				v.cursor.Col = v.doc.LineLength(v.cursor.Row)
			}
		} else {
			v.cursor.Col--
		}

	case Right:
		// At the end of a line, wrap to the start of the next line. Moving
		// past the last line is corrected by the clamp below.
		if v.cursor.Col == v.doc.LineLength(v.cursor.Row) {
			v.cursor.Row++
			v.cursor.Col = 0
		} else {
			v.cursor.Col++
		}

	case Up:
		if v.cursor.Row > 0 {
			v.cursor.Row--
		}

	case Down:
		v.cursor.Row++

	case PageUp:
		v.cursor = Location{}

	case PageDown:
		v.cursor = Location{Row: v.doc.LastLineIndex()}

	case Home:
		v.cursor.Col = 0

	case End:
		v.cursor.Col = v.doc.LineLength(v.cursor.Row)
	}

	v.clampCursor()
	v.updateScroll()
	v.needsRedraw = true
}

// Render paints the visible document slice, the status line and the cursor
// to the backend. Gated by the redraw flag: a second call with no
// intervening event is a no-op. The flag is cleared only after a full
// successful paint; a viewport too small to paint keeps the frame stale.
func (v *View) Render(b backend.Backend) {
	if !v.needsRedraw {
		return
	}

	width, height := b.Size()
	v.size = Size{Width: width, Height: height}

	usable := v.usableHeight()
	if usable <= 0 || width == 0 {
		return
	}

	// A resize may have left the cursor outside the visible rectangle.
	v.updateScroll()

	for y := 0; y < usable; y++ {
		v.renderRow(b, y, width)
	}

	v.renderStatus(b, width, height)

	b.ShowCursor(v.cursor.Col-v.scroll.Col, v.cursor.Row-v.scroll.Row)
	b.Show()

	v.needsRedraw = false
}

// renderRow paints one viewport row, padding to the full width so stale
// content from the previous frame is overwritten.
func (v *View) renderRow(b backend.Backend, y, width int) {
	docRow := y + v.scroll.Row

	text, ok := v.doc.Slice(docRow, v.scroll.Col, width)
	if !ok {
		// Past the end of the document.
		text = string(v.placeholder)
	}

	x := 0
	for _, cell := range core.CellsFromString(text, v.textStyle) {
		if x >= width {
			break
		}
		b.SetCell(x, y, cell)
		x++
	}
	if x < width {
		b.Fill(core.RectFromSize(y, x, 1, width-x), core.NewStyledCell(' ', v.textStyle))
	}
}

// renderStatus paints the reserved bottom row.
func (v *View) renderStatus(b backend.Backend, width, height int) {
	v.status.SetFilename(v.doc.Name())
	v.status.SetPosition(v.cursor.Row+1, v.cursor.Col+1)
	v.status.SetTotalLines(v.doc.LineCount())
	v.status.Resize(width)
	v.status.Render(b, height-1)
}
