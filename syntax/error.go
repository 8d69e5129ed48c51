package syntax

import (
	"errors"
	"fmt"
)

// Structural parse errors. Each is wrapped in a *ParseError carrying the
// pattern text and the byte offset of the problem; test with errors.Is.
var (
	// ErrUnterminatedClass indicates a '[' with no matching ']'.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrUnterminatedGroup indicates a '(' with no matching ')'.
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrUnrecognizedEscape indicates a '\' followed by an unsupported
	// byte, or a trailing bare '\'. Unknown escapes are never silently
	// treated as literals.
	ErrUnrecognizedEscape = errors.New("unrecognized escape")

	// ErrDanglingQuantifier indicates a '?' or '+' with no quantifiable
	// atom before it. Anchors are not quantifiable.
	ErrDanglingQuantifier = errors.New("dangling quantifier")

	// ErrEmptyBranch indicates an alternation branch with no elements,
	// as in "(a|)" or "()".
	ErrEmptyBranch = errors.New("empty alternation branch")
)

// ParseError wraps a structural parse error with the pattern and the byte
// offset at which it was detected.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("regrep: parse error in %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
