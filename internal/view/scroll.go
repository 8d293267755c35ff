package view

// clampCursor restores the cursor invariants after a move or reload. The
// column is clamped against the line length before the row is clamped: a row
// past the end of the document has line length 0, so moving below the last
// line resets the column before the row is pulled back.
func (v *View) clampCursor() {
	if length := v.doc.LineLength(v.cursor.Row); v.cursor.Col > length {
		v.cursor.Col = length
	}
	if last := v.doc.LastLineIndex(); v.cursor.Row > last {
		v.cursor.Row = last
	}
}

// updateScroll adjusts the scroll offset minimally so the cursor lies inside
// the visible rectangle. No centering: the deterministic minimal-adjustment
// policy keeps scrolling reproducible.
func (v *View) updateScroll() {
	// Cursor above the viewport: pull the top edge up to it.
	if v.scroll.Row > v.cursor.Row {
		v.scroll.Row = v.cursor.Row
	}

	// Cursor below the last visible row: advance just far enough.
	if usable := v.usableHeight(); usable > 0 {
		if viewEnd := v.scroll.Row + usable - 1; v.cursor.Row > viewEnd {
			v.scroll.Row += v.cursor.Row - viewEnd
		}
	}

	// Same on the horizontal axis.
	if v.scroll.Col > v.cursor.Col {
		v.scroll.Col = v.cursor.Col
	}

	if v.size.Width > 0 {
		if viewEnd := v.scroll.Col + v.size.Width - 1; v.cursor.Col > viewEnd {
			v.scroll.Col += v.cursor.Col - viewEnd
		}
	}
}
