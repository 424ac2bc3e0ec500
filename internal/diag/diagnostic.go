package diag

import (
	"slices"

	"konf/internal/source"
)

// Diagnostic is the fully formed, immutable description of one detected
// compiler fault, ready for rendering. Locations keep their attachment
// order; the first one is the primary site.
type Diagnostic struct {
	Kind      Kind
	Severity  Severity
	Message   string
	Locations []source.Location
}

// Primary returns the first attached location.
func (d Diagnostic) Primary() source.Location {
	return d.Locations[0]
}

// Build constructs a Diagnostic from a kind, its locations and the
// kind-specific message arguments. It is pure: no IO, no shared state.
//
// Build fails with UnknownKindError for tags outside the registry,
// EmptyLocationListError when locs is empty, and propagates
// ArgumentCountMismatchError from message formatting unchanged.
func Build(kind Kind, locs []source.Location, args ...string) (Diagnostic, error) {
	info, err := lookup(kind)
	if err != nil {
		return Diagnostic{}, err
	}
	if len(locs) == 0 {
		return Diagnostic{}, &EmptyLocationListError{Kind: kind}
	}

	msg, err := Format(kind, args)
	if err != nil {
		return Diagnostic{}, err
	}

	return Diagnostic{
		Kind:     kind,
		Severity: info.severity,
		Message:  msg,
		// Own copy: the diagnostic must not alias the caller's slice.
		Locations: slices.Clone(locs),
	}, nil
}

// MustBuild is Build for call sites where a failure is a bug in the
// calling phase. It panics instead of returning an error so malformed
// construction aborts the compilation unit loudly.
func MustBuild(kind Kind, locs []source.Location, args ...string) Diagnostic {
	d, err := Build(kind, locs, args...)
	if err != nil {
		panic(err)
	}
	return d
}
