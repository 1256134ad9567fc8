// Package parser parses OData primitive literal and qualified name tokens
// (the primitiveLiteral and qualifiedName productions of the OData URL
// conventions) into the value types of pkg/ast.
//
// Every sub-parser is a stateless pure function from remaining input to a
// value plus unconsumed remainder; a failed parser consumes nothing, which is
// what makes the dispatcher's ordered backtracking alternation correct. There
// is no shared cursor and no package state, so independent parse calls are
// safe to run concurrently.
//
// The Golden Rule: pkg/parser imports only pkg/ast and stdlib.
package parser
