package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/odataq/pkg/ast"
)

// parseIdentifier matches one leading letter-or-underscore rune followed by
// any number of letter, digit or underscore runes.
func parseIdentifier(in string) (string, string, bool) {
	r, size := utf8.DecodeRuneInString(in)
	if size == 0 || !isIdentLeading(r) {
		return "", in, false
	}
	i := size
	for i < len(in) {
		r, size = utf8.DecodeRuneInString(in[i:])
		if !isIdentPart(r) {
			break
		}
		i += size
	}
	return in[:i], in[i:], true
}

// parseName matches a dot-separated qualified name, greedily left to right.
// A single segment collapses to Identifier; a trailing '.' with no identifier
// after it is left unconsumed.
func parseName(in string) (ast.Name, string, bool) {
	first, rest, ok := parseIdentifier(in)
	if !ok {
		return nil, in, false
	}
	parts := []string{first}
	for strings.HasPrefix(rest, ".") {
		seg, r, ok := parseIdentifier(rest[1:])
		if !ok {
			break
		}
		parts = append(parts, seg)
		rest = r
	}
	if len(parts) == 1 {
		return ast.Identifier{Name: first}, rest, true
	}
	return ast.Qualified{Parts: parts}, rest, true
}
