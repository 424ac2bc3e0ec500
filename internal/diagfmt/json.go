package diagfmt

import (
	"encoding/json"
	"io"

	"konf/internal/diag"
	"konf/internal/source"
)

// LocationJSON represents one file location in JSON output.
type LocationJSON struct {
	File string `json:"file"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col,omitempty"`
}

// DiagnosticJSON represents one diagnostic in JSON output.
type DiagnosticJSON struct {
	Severity  string         `json:"severity"`
	Kind      string         `json:"kind"`
	Message   string         `json:"message"`
	Locations []LocationJSON `json:"locations"`
}

// DiagnosticsOutput is the root structure of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(loc source.Location) LocationJSON {
	return LocationJSON{
		File: loc.Path,
		Line: loc.Line,
		Col:  loc.Col,
	}
}

func makeDiagnostic(d diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity:  d.Severity.Label(),
		Kind:      d.Kind.ID(),
		Message:   d.Message,
		Locations: make([]LocationJSON, 0, len(d.Locations)),
	}
	for _, loc := range d.Locations {
		out.Locations = append(out.Locations, makeLocation(loc))
	}
	return out
}

// WriteJSON renders diagnostics as indented JSON. Count always reflects the
// full input even when Max truncates the emitted list.
func WriteJSON(w io.Writer, diags []diag.Diagnostic, opts JSONOpts) error {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
		Count:       len(diags),
	}
	for i, d := range diags {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		out.Diagnostics = append(out.Diagnostics, makeDiagnostic(d))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}
