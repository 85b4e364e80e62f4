package schema

import (
	"errors"
	"strings"
)

// Message codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMismatch       = "mismatch"
	CodeInstanceOf     = "instance_of"
	CodePredicateFalse = "predicate_false"
	CodeHostFailure    = "host_failure"
	CodeMissingKeys    = "missing_keys"
	CodeWrongKeys      = "wrong_keys"
	CodeNoMatch        = "no_match"
)

// Error is the single failure kind raised by validation. It carries two
// parallel diagnostic chains assembled while a failure unwinds through nested
// Validate calls: Autos holds system-generated messages and Customs holds
// user-supplied overrides. Each wrapping level prepends exactly one entry to
// each chain; an empty string marks a gap at that level. The key slices carry
// structured detail for mapping failures.
//
// An Error is never mutated after being raised; wrapping allocates a new one.
type Error struct {
	Autos   []string
	Customs []string

	MissingKeys []any // Required mapping keys absent from the input.
	InvalidKeys []any // Input keys whose value failed its schema.
	WrongKeys   []any // Input keys with no schema counterpart (disallow policy).
}

// Error renders the failure chain as a single newline-joined string. Custom
// overrides win: if any level supplied one, only the deduplicated custom
// chain is shown; otherwise the deduplicated auto chain is.
func (e *Error) Error() string {
	if msg := joinUniq(e.Customs); msg != "" {
		return msg
	}
	return joinUniq(e.Autos)
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// newError starts a fresh single-level chain. custom may be "" for no override.
func newError(auto, custom string) *Error {
	return &Error{Autos: []string{auto}, Customs: []string{custom}}
}

// wrap prepends one auto and one custom entry, returning a new Error.
// Key detail does not survive wrapping; only the raising level carries it.
func (e *Error) wrap(auto, custom string) *Error {
	return &Error{
		Autos:   prepend(auto, e.Autos),
		Customs: prepend(custom, e.Customs),
	}
}

// withInvalidKeys returns a copy of e tagged with the offending input keys.
func (e *Error) withInvalidKeys(keys ...any) *Error {
	ne := *e
	ne.InvalidKeys = keys
	return &ne
}

func prepend(head string, tail []string) []string {
	out := make([]string, 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}

// joinUniq drops gaps, removes duplicates preserving first occurrence, and
// joins the rest with newlines.
func joinUniq(msgs []string) string {
	seen := make(map[string]struct{}, len(msgs))
	b := &strings.Builder{}
	for _, m := range msgs {
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m)
	}
	return b.String()
}
