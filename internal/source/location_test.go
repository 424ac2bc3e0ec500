package source

import (
	"testing"
)

func TestLocationString(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{
			name:     "line only",
			loc:      Location{Path: "main.k", Line: 10},
			expected: "main.k:10",
		},
		{
			name:     "line and column",
			loc:      Location{Path: "main.k", Line: 12, Col: 3},
			expected: "main.k:12:3",
		},
		{
			name:     "nested path",
			loc:      Location{Path: "pkg/schemas.k", Line: 5},
			expected: "pkg/schemas.k:5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.expected {
				t.Fatalf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLocationValid(t *testing.T) {
	if (Location{Path: "main.k", Line: 1}).Valid() == false {
		t.Fatal("valid location reported invalid")
	}
	if (Location{Path: "", Line: 1}).Valid() {
		t.Fatal("empty path reported valid")
	}
	if (Location{Path: "main.k", Line: 0}).Valid() {
		t.Fatal("zero line reported valid")
	}
}

func TestFileSetLocation(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.k", []byte("first\nsecond line\nthird\n"))

	// Offset of "line" inside "second line".
	loc := fs.Location(Span{File: id, Start: 13, End: 17})
	if loc.Path != "main.k" || loc.Line != 2 || loc.Col != 8 {
		t.Fatalf("Location = %+v, want main.k:2:8", loc)
	}
}
