package diagfmt

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"konf/internal/diag"
	"konf/internal/source"
)

// Pretty renders a diagnostic with source context. For each location it
// prints:
//
//	<path>:<line>[:<col>]: <severity> <ID>: <message>
//
// followed by the source line (when the file is present in fs) and a caret
// under the reported column. Secondary locations repeat the header without
// the message. The layout is wider than the fixed golden format and is
// meant for terminals, not for golden comparison.
func Pretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	var b strings.Builder

	for i, loc := range d.Locations {
		b.WriteString(prettyPath(loc.Path, fs, opts.PathMode))
		b.WriteByte(':')
		writeUint(&b, loc.Line)
		if loc.Col > 0 {
			b.WriteByte(':')
			writeUint(&b, loc.Col)
		}
		if i == 0 {
			b.WriteString(": ")
			b.WriteString(severityLabel(d.Severity, opts.Color))
			b.WriteByte(' ')
			b.WriteString(d.Kind.ID())
			b.WriteString(": ")
			b.WriteString(d.Message)
		}
		b.WriteByte('\n')

		writeSnippet(&b, loc, fs)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}

// writeSnippet appends the offending source line and a caret marker.
// Nothing is written when the file or line is unknown.
func writeSnippet(b *strings.Builder, loc source.Location, fs *source.FileSet) {
	if fs == nil {
		return
	}
	f, ok := fs.GetByPath(loc.Path)
	if !ok {
		return
	}
	line := f.GetLine(loc.Line)
	if line == "" {
		return
	}

	b.WriteString("    ")
	b.WriteString(line)
	b.WriteByte('\n')

	if loc.Col == 0 || int(loc.Col) > len(line)+1 {
		return
	}
	// The caret has to line up with what the terminal shows, so the
	// prefix width is measured in display cells, not bytes.
	prefix := line[:loc.Col-1]
	b.WriteString("    ")
	b.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
	b.WriteString("^\n")
}

func prettyPath(path string, fs *source.FileSet, mode PathMode) string {
	if fs == nil || mode == PathModeVerbatim {
		return path
	}
	f, ok := fs.GetByPath(path)
	if !ok {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	}
	return path
}

func writeUint(b *strings.Builder, v uint32) {
	b.WriteString(strconv.FormatUint(uint64(v), 10))
}
