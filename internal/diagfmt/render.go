package diagfmt

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"konf/internal/diag"
)

// SinkWriteError reports that the output destination rejected a write.
// Unlike the construction faults in package diag this one has
// environmental causes (disk full, closed pipe) and is surfaced to the
// caller untouched; any retry policy belongs there.
type SinkWriteError struct {
	Err error
}

func (e *SinkWriteError) Error() string {
	return "diagfmt: sink write failed: " + e.Err.Error()
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

var (
	warningLabel = color.New(color.FgYellow, color.Bold)
	errorLabel   = color.New(color.FgRed, color.Bold)
)

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.Label()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorLabel.Sprint(label)
	case diag.SevWarning:
		return warningLabel.Sprint(label)
	}
	return label
}

// layout renders the fixed textual layout: one line per location in
// attachment order, a blank separator, then "<severity>: <message>".
func layout(d diag.Diagnostic, colored bool) string {
	var b strings.Builder
	for _, loc := range d.Locations {
		b.WriteString(loc.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(severityLabel(d.Severity, colored))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')
	return b.String()
}

// Write renders d to w in the fixed layout. The text is assembled fully
// before the single write so a failing sink never receives half a
// diagnostic. Rendering never mutates d; repeated calls with the same
// diagnostic produce byte-identical output.
func Write(w io.Writer, d diag.Diagnostic) error {
	if _, err := io.WriteString(w, layout(d, false)); err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}

// Renderer serializes writes to one shared sink: the lines of one
// diagnostic are never interleaved with another's. The mutex is held for
// the duration of a single Render call, never across calls.
type Renderer struct {
	mu   sync.Mutex
	w    io.Writer
	opts Options
}

func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// Render writes one diagnostic to the sink.
func (r *Renderer) Render(d diag.Diagnostic) error {
	return r.RenderContext(context.Background(), d)
}

// RenderContext is Render with caller cancellation: when ctx is already
// done the sink is not touched and the cancellation surfaces as a
// SinkWriteError.
func (r *Renderer) RenderContext(ctx context.Context, d diag.Diagnostic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &SinkWriteError{Err: err}
	}
	if _, err := io.WriteString(r.w, layout(d, r.opts.Color)); err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}
