package diag

import (
	"strings"
)

// placeholder is the positional substitution marker in kind templates.
// Substitution is textual only: no re-entrant formatting, no logic.
const placeholder = "{}"

// Arity returns how many arguments a kind's message requires: the number of
// placeholders in its template, or exactly one for direct-message kinds.
func Arity(k Kind) (int, error) {
	info, err := lookup(k)
	if err != nil {
		return 0, err
	}
	if info.template == "" {
		return 1, nil
	}
	return strings.Count(info.template, placeholder), nil
}

// Format produces the final message text for a kind. Identical kind and
// args always yield identical text.
//
// Templated kinds substitute args positionally, one per placeholder.
// Direct-message kinds use the single argument verbatim. Any arity
// mismatch fails with ArgumentCountMismatchError.
func Format(k Kind, args []string) (string, error) {
	info, err := lookup(k)
	if err != nil {
		return "", err
	}

	if info.template == "" {
		if len(args) != 1 {
			return "", &ArgumentCountMismatchError{Kind: k, Want: 1, Got: len(args)}
		}
		return args[0], nil
	}

	want := strings.Count(info.template, placeholder)
	if len(args) != want {
		return "", &ArgumentCountMismatchError{Kind: k, Want: want, Got: len(args)}
	}

	var b strings.Builder
	b.Grow(len(info.template))
	rest := info.template
	for _, arg := range args {
		i := strings.Index(rest, placeholder)
		b.WriteString(rest[:i])
		b.WriteString(arg)
		rest = rest[i+len(placeholder):]
	}
	b.WriteString(rest)
	return b.String(), nil
}
