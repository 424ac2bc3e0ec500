package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.k", []byte("first\nsecond line\nthird\n"))

	tests := []struct {
		name     string
		span     Span
		expected LineCol
	}{
		{
			name:     "start of file",
			span:     Span{File: id, Start: 0, End: 1},
			expected: LineCol{Line: 1, Col: 1},
		},
		{
			name:     "middle of first line",
			span:     Span{File: id, Start: 3, End: 4},
			expected: LineCol{Line: 1, Col: 4},
		},
		{
			name:     "start of second line",
			span:     Span{File: id, Start: 6, End: 7},
			expected: LineCol{Line: 2, Col: 1},
		},
		{
			name:     "middle of second line",
			span:     Span{File: id, Start: 13, End: 17},
			expected: LineCol{Line: 2, Col: 8},
		},
		{
			name:     "start of third line",
			span:     Span{File: id, Start: 18, End: 19},
			expected: LineCol{Line: 3, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(tt.span)
			if start != tt.expected {
				t.Fatalf("Resolve(%v) start = %+v, want %+v", tt.span, start, tt.expected)
			}
		})
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// α is 2 bytes; columns count bytes, not runes.
	id := fs.AddVirtual("test.k", []byte("α\n"))
	start, end := fs.Resolve(Span{File: id, Start: 0, End: 1})

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Fatalf("start = %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Fatalf("end = %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.k", []byte("schema Person:\n    name: str\nperson = Person {}\n"))
	f := fs.Get(id)

	tests := []struct {
		line     uint32
		expected string
	}{
		{1, "schema Person:"},
		{2, "    name: str"},
		{3, "person = Person {}"},
		{4, ""},  // past the end
		{0, ""},  // lines are 1-based
		{99, ""}, // far past the end
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.expected {
			t.Fatalf("GetLine(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.k")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1\r\nb = 2\r\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	f := fs.Get(id)
	if string(f.Content) != "a = 1\nb = 2\n" {
		t.Fatalf("content = %q", string(f.Content))
	}
	if f.Flags&FileHadBOM == 0 {
		t.Fatal("FileHadBOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatal("FileNormalizedCRLF flag not set")
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.k", []byte("version 1"), 0)
	id2 := fs.Add("test.k", []byte("version 2"), 0)
	if id1 == id2 {
		t.Fatal("expected a fresh FileID for the second Add")
	}

	// The path index points at the latest version.
	f, ok := fs.GetByPath("test.k")
	if !ok {
		t.Fatal("GetByPath missed a loaded file")
	}
	if string(f.Content) != "version 2" {
		t.Fatalf("latest content = %q", string(f.Content))
	}

	// Earlier versions stay reachable by ID.
	if string(fs.Get(id1).Content) != "version 1" {
		t.Fatalf("first version content = %q", string(fs.Get(id1).Content))
	}
}
