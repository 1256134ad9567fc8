package parser

import (
	"github.com/leapstack-labs/odataq/pkg/ast"
)

// Parse parses a complete primitive literal or qualified name token. The
// whole input must be consumed: an alternative that matches only a prefix
// does not win over one that matches the full input, so an identifier such
// as true_flag is a name even though it starts like a boolean.
func Parse(input string) (ast.Expr, error) {
	lit, litRest, domain, litOK := parseLiteral(input)
	if litOK && litRest == "" {
		return lit, nil
	}
	name, nameRest, nameOK := parseName(input)
	if nameOK && nameRest == "" {
		return name, nil
	}
	return nil, pickError(input, "primitive literal or name", domain,
		consumed(input, litRest, litOK), consumed(input, nameRest, nameOK))
}

// ParseLiteral parses a complete primitive literal token.
func ParseLiteral(input string) (ast.Literal, error) {
	lit, rest, domain, ok := parseLiteral(input)
	if ok && rest == "" {
		return lit, nil
	}
	return nil, pickError(input, "primitive literal", domain, consumed(input, rest, ok))
}

// ParseName parses a complete identifier or qualified name token.
func ParseName(input string) (ast.Name, error) {
	name, rest, ok := parseName(input)
	if ok && rest == "" {
		return name, nil
	}
	return nil, pickError(input, "name", nil, consumed(input, rest, ok))
}

// consumed returns how many bytes a partial match consumed, or -1 for no
// match at all.
func consumed(input, rest string, ok bool) int {
	if !ok {
		return -1
	}
	return len(input) - len(rest)
}

// pickError reports the failure detected deepest into the input: a domain
// error beats a trailing-input error at the same offset, and a syntax error
// is reported only when nothing matched at all.
func pickError(input, expected string, domain *DomainError, offsets ...int) error {
	best := -1
	for _, off := range offsets {
		if off > best {
			best = off
		}
	}
	if domain != nil {
		domain.Offset = len(input) - len(domain.rem)
		if domain.Offset >= best {
			return domain
		}
	}
	if best >= 0 {
		return &TrailingInputError{Input: input, Offset: best}
	}
	return &SyntaxError{Input: input, Offset: 0, Expected: expected}
}
