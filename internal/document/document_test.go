package document

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestNewEmptyDocument(t *testing.T) {
	d := New()

	if d.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", d.LineCount())
	}
	if d.Name() != NoName {
		t.Errorf("expected %q label, got %q", NoName, d.Name())
	}
	if d.LastLineIndex() != 0 {
		t.Errorf("expected last line index 0, got %d", d.LastLineIndex())
	}
}

func TestLoadSplitsLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"no trailing newline", "abc\nde", []string{"abc", "de"}},
		{"trailing newline", "abc\nde\n", []string{"abc", "de"}},
		{"crlf", "abc\r\nde\r\n", []string{"abc", "de"}},
		{"empty file", "", nil},
		{"blank lines", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(writeFixture(t, tt.content))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if d.LineCount() != len(tt.want) {
				t.Fatalf("expected %d lines, got %d", len(tt.want), d.LineCount())
			}
			for i, want := range tt.want {
				got, ok := d.Slice(i, 0, 1000)
				if !ok {
					t.Fatalf("line %d missing", i)
				}
				if got != want {
					t.Errorf("line %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadSetsLabel(t *testing.T) {
	path := writeFixture(t, "hello\n")
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Name() != "fixture.txt" {
		t.Errorf("expected label fixture.txt, got %q", d.Name())
	}
	if d.Path() != path {
		t.Errorf("expected path %q, got %q", path, d.Path())
	}
}

func TestLineLength(t *testing.T) {
	d, err := Load(writeFixture(t, "abc\n\nx\n日本語テスト\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		row  int
		want int
	}{
		{0, 2},  // "abc": 3 chars, cursor bound 2
		{1, 0},  // empty line clamps to 0
		{2, 0},  // single char
		{3, 5},  // 6 multi-byte chars, counted as characters not bytes
		{-1, 0}, // out of range
		{4, 0},  // out of range
	}

	for _, tt := range tests {
		if got := d.LineLength(tt.row); got != tt.want {
			t.Errorf("LineLength(%d) = %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	d, err := Load(writeFixture(t, "hello world\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name            string
		row, start, width int
		want            string
		ok              bool
	}{
		{"full line", 0, 0, 100, "hello world", true},
		{"window", 0, 6, 5, "world", true},
		{"truncated", 0, 0, 5, "hello", true},
		{"past end of line", 0, 50, 10, "", true},
		{"zero width", 0, 3, 0, "", true},
		{"missing row", 1, 0, 10, "", false},
		{"negative row", -1, 0, 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Slice(tt.row, tt.start, tt.width)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Slice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSliceMultiByte(t *testing.T) {
	d, err := Load(writeFixture(t, "aé日b\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Slicing is by character index, never splitting a multi-byte rune.
	got, ok := d.Slice(0, 1, 2)
	if !ok {
		t.Fatal("expected line to exist")
	}
	if got != "é日" {
		t.Errorf("Slice(0,1,2) = %q, want %q", got, "é日")
	}
}
