package backend

import (
	"testing"

	"peruse/internal/renderer/core"
)

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(10, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cell := core.NewStyledCell('x', core.DefaultStyle().Bold())
	b.SetCell(3, 2, cell)

	got := b.GetCell(3, 2)
	if !got.Equals(cell) {
		t.Errorf("GetCell(3,2) = %+v, want %+v", got, cell)
	}

	// Out of bounds writes are ignored, reads return an empty cell.
	b.SetCell(-1, 0, cell)
	b.SetCell(10, 0, cell)
	b.SetCell(0, 5, cell)
	if !b.GetCell(100, 100).Equals(core.EmptyCell()) {
		t.Error("out-of-bounds read should return an empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(10, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cell := core.NewStyledCell('#', core.DefaultStyle())
	b.Fill(core.RectFromSize(1, 2, 2, 3), cell)

	if !b.GetCell(2, 1).Equals(cell) {
		t.Error("cell inside fill region should be set")
	}
	if !b.GetCell(4, 2).Equals(cell) {
		t.Error("cell at fill region corner should be set")
	}
	if b.GetCell(5, 1).Equals(cell) {
		t.Error("cell outside fill region should not be set")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(4, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	b.SetCell(1, 1, core.NewStyledCell('x', core.DefaultStyle()))
	b.Clear()

	if !b.GetCell(1, 1).Equals(core.EmptyCell()) {
		t.Error("Clear should reset all cells")
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(10, 5)

	b.ShowCursor(4, 2)
	x, y, visible := b.CursorPosition()
	if x != 4 || y != 2 || !visible {
		t.Errorf("cursor = (%d,%d,%v), want (4,2,true)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 5)

	b.PostEvent(Event{Type: EventKey, Key: KeyDown})
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyDown {
		t.Errorf("expected Down key event, got %+v", ev)
	}
}

func TestNullBackendResizePostsEvent(t *testing.T) {
	b := NewNullBackend(10, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	b.Resize(20, 8)

	w, h := b.Size()
	if w != 20 || h != 8 {
		t.Errorf("Size() = (%d,%d), want (20,8)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 8 {
		t.Errorf("expected resize event 20x8, got %+v", ev)
	}
}

func TestNullBackendRowText(t *testing.T) {
	b := NewNullBackend(8, 2)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for i, r := range "hi" {
		b.SetCell(i, 0, core.NewStyledCell(r, core.DefaultStyle()))
	}

	if got := b.RowText(0); got != "hi" {
		t.Errorf("RowText(0) = %q, want %q", got, "hi")
	}
	if got := b.RowText(1); got != "" {
		t.Errorf("RowText(1) = %q, want empty", got)
	}
	if got := b.RowText(5); got != "" {
		t.Errorf("RowText out of range = %q, want empty", got)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("mask should contain ctrl and shift")
	}
	if m.Has(ModAlt) {
		t.Error("mask should not contain alt")
	}
}
