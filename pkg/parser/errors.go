package parser

import (
	"errors"
	"fmt"
)

// errNoMatch signals a clean non-match: the alternative consumed nothing and
// ordered alternation should move on to the next candidate.
var errNoMatch = errors.New("no match")

// SyntaxError reports input that matches none of the literal or name
// alternatives.
type SyntaxError struct {
	Input    string
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: expected %s", e.Offset, e.Expected)
}

// TrailingInputError reports a valid literal or name followed by unconsumed
// characters at the top-level entry point. Offset is the byte offset of the
// first unconsumed character.
type TrailingInputError struct {
	Input  string
	Offset int
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("trailing input at offset %d: %q", e.Offset, e.Input[e.Offset:])
}

// DomainError reports input that is lexically well formed but semantically
// invalid: an impossible calendar date, integer overflow, malformed base64
// padding. Offset points just past the offending component.
type DomainError struct {
	Offset  int
	Message string

	// rem is the remaining input past the offending component; the entry
	// point derives Offset from it before returning the error.
	rem string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid literal at offset %d: %s", e.Offset, e.Message)
}

func domainErrf(rem string, format string, args ...any) *DomainError {
	return &DomainError{rem: rem, Message: fmt.Sprintf(format, args...)}
}

func asDomain(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
