// Package diagtest runs golden-file cases against the diagnostic
// subsystem. A case is a directory holding a case.toml that names an error
// kind, its message arguments and its locations; the harness builds the
// diagnostic, renders it, and compares the bytes against expected.golden
// in the same directory.
package diagtest

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"konf/internal/diag"
	"konf/internal/source"
)

// CaseLocation mirrors one [[locations]] entry in a case file.
type CaseLocation struct {
	File string `toml:"file"`
	Line uint32 `toml:"line"`
	Col  uint32 `toml:"col"`
}

// Case describes one diagnostic to construct: the kind by its exported
// name, the template arguments, and the locations in attachment order.
type Case struct {
	Kind      string         `toml:"kind"`
	Args      []string       `toml:"args"`
	Locations []CaseLocation `toml:"locations"`
}

// LoadCase decodes a case file.
func LoadCase(path string) (*Case, error) {
	var c Case
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &c, nil
}

// Build resolves the kind name and constructs the diagnostic. Construction
// faults (unknown kind, empty locations, arity mismatch) come back as
// errors so a broken case file fails its test instead of panicking the
// harness.
func (c *Case) Build() (diag.Diagnostic, error) {
	kind, ok := diag.KindByName(c.Kind)
	if !ok {
		return diag.Diagnostic{}, fmt.Errorf("diagtest: unknown kind name %q", c.Kind)
	}

	locs := make([]source.Location, 0, len(c.Locations))
	for _, cl := range c.Locations {
		loc := source.Location{Path: cl.File, Line: cl.Line, Col: cl.Col}
		if !loc.Valid() {
			return diag.Diagnostic{}, fmt.Errorf("diagtest: invalid location %q:%d", cl.File, cl.Line)
		}
		locs = append(locs, loc)
	}

	return diag.Build(kind, locs, c.Args...)
}
