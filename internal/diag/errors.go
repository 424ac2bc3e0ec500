package diag

import "fmt"

// The three construction faults below are programmer errors in the calling
// phase, not user-facing conditions. Callers that cannot recover should
// use MustBuild and let the panic abort the compilation unit.

// UnknownKindError reports a kind tag outside the closed registry.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("diag: unknown kind %d", uint16(e.Kind))
}

// EmptyLocationListError reports a diagnostic built with no locations.
type EmptyLocationListError struct {
	Kind Kind
}

func (e *EmptyLocationListError) Error() string {
	return fmt.Sprintf("diag: %s built with empty location list", e.Kind.ID())
}

// ArgumentCountMismatchError reports a template arity violation: the kind's
// template wants Want arguments but the caller supplied Got.
type ArgumentCountMismatchError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ArgumentCountMismatchError) Error() string {
	return fmt.Sprintf("diag: %s expects %d argument(s), got %d", e.Kind.ID(), e.Want, e.Got)
}
