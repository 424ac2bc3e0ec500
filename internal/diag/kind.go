package diag

import (
	"fmt"
)

// Kind is the closed tag identifying what went wrong. Kinds live in banded
// numeric ranges so the ID prefix can be derived from the value alone.
type Kind uint16

const (
	UnknownKind Kind = 0

	// Syntax faults
	InvalidSyntax    Kind = 1001
	TabError         Kind = 1002
	IndentationError Kind = 1003

	// Compile-time faults
	CannotFindModule      Kind = 2001
	CompileError          Kind = 2002
	TypeError             Kind = 2003
	ImmutableError        Kind = 2004
	UniqueKeyError        Kind = 2005
	IllegalInheritError   Kind = 2006
	CycleInheritError     Kind = 2007
	IllegalAttributeError Kind = 2008
	IndexSignatureError   Kind = 2009

	// Evaluation faults
	EvaluationError    Kind = 3001
	NameError          Kind = 3002
	ValueError         Kind = 3003
	KeyError           Kind = 3004
	AttributeError     Kind = 3005
	AssertionFailure   Kind = 3006
	RecursionError     Kind = 3007
	IntOverflow        Kind = 3008
	FloatOverflow      Kind = 3009
	SchemaCheckFailure Kind = 3010

	// Warnings
	Deprecated         Kind = 4001
	UnusedImport       Kind = 4002
	ReassignedVariable Kind = 4003
)

// kindInfo is the registry entry behind a Kind: its fixed severity, the
// short human title, and the canonical message template. An empty template
// marks a direct-message kind: the single caller-supplied argument is used
// verbatim.
type kindInfo struct {
	severity Severity
	title    string
	template string
}

// kindRegistry is read-only after package init and may be read concurrently
// without locking.
var kindRegistry = map[Kind]kindInfo{
	InvalidSyntax:    {SevError, "Invalid syntax", ""},
	TabError:         {SevError, "Tab error", ""},
	IndentationError: {SevError, "Indentation error", ""},

	CannotFindModule:      {SevError, "Cannot find module", "Cannot find the module {}"},
	CompileError:          {SevError, "Compile error", ""},
	TypeError:             {SevError, "Type error", ""},
	ImmutableError:        {SevError, "Immutable error", ""},
	UniqueKeyError:        {SevError, "Unique key error", "Unique key error name '{}'"},
	IllegalInheritError:   {SevError, "Illegal inherit error", ""},
	CycleInheritError:     {SevError, "Cycle inherit error", "There is a circular reference between schema {} and {}"},
	IllegalAttributeError: {SevError, "Illegal attribute error", ""},
	IndexSignatureError:   {SevError, "Index signature error", ""},

	EvaluationError:    {SevError, "Evaluation error", ""},
	NameError:          {SevError, "Name error", ""},
	ValueError:         {SevError, "Value error", ""},
	KeyError:           {SevError, "Key error", ""},
	AttributeError:     {SevError, "Attribute error", ""},
	AssertionFailure:   {SevError, "Assertion failure", ""},
	RecursionError:     {SevError, "Recursion error", ""},
	IntOverflow:        {SevError, "Integer overflow", "{}: A {} bit integer overflow"},
	FloatOverflow:      {SevError, "Float overflow", "{}: A {} bit floating point overflow"},
	SchemaCheckFailure: {SevError, "Schema check failure", ""},

	Deprecated:         {SevWarning, "Deprecated", "{} was deprecated {}"},
	UnusedImport:       {SevWarning, "Unused import", "Module '{}' imported but unused"},
	ReassignedVariable: {SevWarning, "Reassigned variable", "Variable '{}' is reassigned here"},
}

// kindNames maps the exported constant names onto their values. Used by the
// golden harness and CLI, which address kinds by name in case files.
var kindNames = map[string]Kind{
	"InvalidSyntax":         InvalidSyntax,
	"TabError":              TabError,
	"IndentationError":      IndentationError,
	"CannotFindModule":      CannotFindModule,
	"CompileError":          CompileError,
	"TypeError":             TypeError,
	"ImmutableError":        ImmutableError,
	"UniqueKeyError":        UniqueKeyError,
	"IllegalInheritError":   IllegalInheritError,
	"CycleInheritError":     CycleInheritError,
	"IllegalAttributeError": IllegalAttributeError,
	"IndexSignatureError":   IndexSignatureError,
	"EvaluationError":       EvaluationError,
	"NameError":             NameError,
	"ValueError":            ValueError,
	"KeyError":              KeyError,
	"AttributeError":        AttributeError,
	"AssertionFailure":      AssertionFailure,
	"RecursionError":        RecursionError,
	"IntOverflow":           IntOverflow,
	"FloatOverflow":         FloatOverflow,
	"SchemaCheckFailure":    SchemaCheckFailure,
	"Deprecated":            Deprecated,
	"UnusedImport":          UnusedImport,
	"ReassignedVariable":    ReassignedVariable,
}

func lookup(k Kind) (kindInfo, error) {
	info, ok := kindRegistry[k]
	if !ok {
		return kindInfo{}, &UnknownKindError{Kind: k}
	}
	return info, nil
}

// KindByName resolves an exported kind name ("EvaluationError") to its tag.
func KindByName(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// KindNames returns all registered kind names in unspecified order.
func KindNames() []string {
	out := make([]string, 0, len(kindNames))
	for name := range kindNames {
		out = append(out, name)
	}
	return out
}

// SeverityOf returns the fixed severity of a kind.
func SeverityOf(k Kind) (Severity, error) {
	info, err := lookup(k)
	if err != nil {
		return 0, err
	}
	return info.severity, nil
}

// Template returns the canonical message template of a kind, or an empty
// string for direct-message kinds.
func Template(k Kind) (string, error) {
	info, err := lookup(k)
	if err != nil {
		return "", err
	}
	return info.template, nil
}

// ID returns the stable band-prefixed identifier, e.g. "EVL3001".
func (k Kind) ID() string {
	switch ik := int(k); {
	case ik >= 1000 && ik < 2000:
		return fmt.Sprintf("SYN%04d", ik)
	case ik >= 2000 && ik < 3000:
		return fmt.Sprintf("CMP%04d", ik)
	case ik >= 3000 && ik < 4000:
		return fmt.Sprintf("EVL%04d", ik)
	case ik >= 4000 && ik < 5000:
		return fmt.Sprintf("WRN%04d", ik)
	}
	return "E0000"
}

// Title returns the short human title of the kind.
func (k Kind) Title() string {
	info, ok := kindRegistry[k]
	if !ok {
		return "Unknown error"
	}
	return info.title
}

func (k Kind) String() string {
	return fmt.Sprintf("[%s]: %s", k.ID(), k.Title())
}
