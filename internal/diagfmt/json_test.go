package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"konf/internal/diag"
	"konf/internal/source"
)

func TestWriteJSON(t *testing.T) {
	diags := []diag.Diagnostic{
		buildDiag(t, diag.Deprecated,
			[]source.Location{{Path: "main.k", Line: 10}},
			"name", "since version 1.16, use firstName and lastName instead"),
		buildDiag(t, diag.EvaluationError,
			[]source.Location{{Path: "main.k", Line: 9}},
			"attribute 'type' of WithComponent is required and can't be None or Undefined"),
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, diags, JSONOpts{}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("Count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Severity != "warning" || first.Kind != "WRN4001" {
		t.Fatalf("first diagnostic = %+v", first)
	}
	if first.Locations[0].File != "main.k" || first.Locations[0].Line != 10 || first.Locations[0].Col != 0 {
		t.Fatalf("first location = %+v", first.Locations[0])
	}
}

func TestWriteJSONTruncation(t *testing.T) {
	diags := []diag.Diagnostic{
		buildDiag(t, diag.CompileError, []source.Location{{Path: "a.k", Line: 1}}, "one"),
		buildDiag(t, diag.CompileError, []source.Location{{Path: "b.k", Line: 1}}, "two"),
		buildDiag(t, diag.CompileError, []source.Location{{Path: "c.k", Line: 1}}, "three"),
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, diags, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Diagnostics) != 2 {
		t.Fatalf("emitted %d diagnostics, want 2", len(out.Diagnostics))
	}
	// Count reflects the untruncated input.
	if out.Count != 3 {
		t.Fatalf("Count = %d, want 3", out.Count)
	}
}
