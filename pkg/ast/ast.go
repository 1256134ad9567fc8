// Package ast defines the value types produced by parsing OData primitive
// literals and qualified names.
//
// All values are immutable once constructed: a parse call is the only way to
// obtain one, payload data never aliases the parsed input, and equality is
// plain value equality (with the usual caveat that Float NaN never compares
// equal to itself).
package ast

import (
	"time"

	"github.com/google/uuid"
)

// Expr is anything a top-level parse can produce: a primitive literal or a
// (qualified) name. String returns the canonical OData textual rendering.
type Expr interface {
	String() string
	exprNode()
}

// Literal is a primitive literal value (the primitiveLiteral production).
type Literal interface {
	Expr
	literalNode()
}

// Name is an identifier or a dot-separated qualified name.
type Name interface {
	Expr
	nameNode()
}

// Null is the null literal.
type Null struct{}

// Boolean is a true/false literal.
type Boolean struct {
	Value bool
}

// Integer is a signed 64-bit integer literal. Out-of-range tokens are
// rejected by the parser, never truncated or wrapped.
type Integer struct {
	Value int64
}

// Float is an IEEE 754 double literal, including NaN and the infinities.
// Test NaN with math.IsNaN, not equality.
type Float struct {
	Value float64
}

// String is a fully unescaped string literal. May be empty.
type String struct {
	Value string
}

// GUID is a 36-character hyphenated GUID literal, stored verbatim with the
// case the input used.
type GUID struct {
	Value string
}

// UUID parses the literal into its 128-bit binary form for callers that need
// more than the text.
func (g GUID) UUID() (uuid.UUID, error) {
	return uuid.Parse(g.Value)
}

// Date is a proleptic Gregorian calendar date. Year may be negative.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a time of day with nanosecond resolution. Hour 24 is representable;
// the grammar accepts it without forcing minute and second to zero.
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// DateTimeOffset is a date and time with a UTC offset in minutes east of UTC.
// A literal with no offset defaults to UTC.
type DateTimeOffset struct {
	Date   Date
	Time   Time
	Offset int
}

// Duration is a signed elapsed time with sub-second precision. It is a scalar
// quantity, not a calendar-relative interval.
type Duration struct {
	Value time.Duration
}

// Binary is a decoded binary literal.
type Binary struct {
	Data []byte
}

// Identifier is a single-segment name.
type Identifier struct {
	Name string
}

// Qualified is a dot-separated name of two or more identifiers, in source
// order. A single-segment path is an Identifier, never a Qualified.
type Qualified struct {
	Parts []string
}

func (Null) exprNode()           {}
func (Boolean) exprNode()        {}
func (Integer) exprNode()        {}
func (Float) exprNode()          {}
func (String) exprNode()         {}
func (GUID) exprNode()           {}
func (Date) exprNode()           {}
func (Time) exprNode()           {}
func (DateTimeOffset) exprNode() {}
func (Duration) exprNode()       {}
func (Binary) exprNode()         {}
func (Identifier) exprNode()     {}
func (Qualified) exprNode()      {}

func (Null) literalNode()           {}
func (Boolean) literalNode()        {}
func (Integer) literalNode()        {}
func (Float) literalNode()          {}
func (String) literalNode()         {}
func (GUID) literalNode()           {}
func (Date) literalNode()           {}
func (Time) literalNode()           {}
func (DateTimeOffset) literalNode() {}
func (Duration) literalNode()       {}
func (Binary) literalNode()         {}

func (Identifier) nameNode() {}
func (Qualified) nameNode()  {}
