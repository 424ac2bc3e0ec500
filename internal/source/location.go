package source

import (
	"fmt"
	"strconv"
)

// Location pins a diagnostic to a place in a source file. It is the
// human-facing counterpart of Span: paths instead of FileIDs, lines instead
// of byte offsets. Line is 1-based. Col is 1-based; zero means the location
// carries no column information.
//
// Locations are plain values. Once handed to a diagnostic they are never
// modified.
type Location struct {
	Path string
	Line uint32
	Col  uint32
}

// Valid reports whether the location names a file and a positive line.
func (l Location) Valid() bool {
	return l.Path != "" && l.Line > 0
}

// String renders the location as "path:line" or "path:line:col".
func (l Location) String() string {
	if l.Col == 0 {
		return l.Path + ":" + strconv.FormatUint(uint64(l.Line), 10)
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Col)
}

// Location resolves the start of span into a Location. The file's stored
// path is used verbatim; callers that want relative or basename paths go
// through File.FormatPath first.
func (fileSet *FileSet) Location(span Span) Location {
	f := fileSet.Get(span.File)
	start, _ := fileSet.Resolve(span)
	return Location{Path: f.Path, Line: start.Line, Col: start.Col}
}
