package parser

import (
	"encoding/base64"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/odataq/pkg/ast"
)

// literalParser is one alternative of the literal grammar: it returns the
// parsed literal and the unconsumed remainder, or fails without consuming
// anything.
type literalParser func(in string) (ast.Literal, string, error)

// literalAlternatives is the fixed priority order of the primitiveLiteral
// grammar. Because duration ranks before string, a bare quoted token whose
// content matches the duration pattern ('P1D') parses as a Duration, never as
// a String. That ambiguity comes with the grammar's ordering.
var literalAlternatives = []literalParser{
	parseNull,
	parseDuration,
	parseBoolean,
	parseString,
	parseDateTimeOffset,
	parseDate,
	parseTime,
	parseGUID,
	parseFloat,
	parseInteger,
	parseBinary,
}

// parseLiteral tries each literal alternative in priority order and returns
// the first match together with its unconsumed remainder. Domain errors from
// alternatives that matched lexically but failed validation are retained so
// the entry points can report them when nothing fully matches; the deepest
// one wins.
func parseLiteral(in string) (ast.Literal, string, *DomainError, bool) {
	var domain *DomainError
	for _, alt := range literalAlternatives {
		v, rest, err := alt(in)
		if err == nil {
			return v, rest, domain, true
		}
		if de := asDomain(err); de != nil {
			if domain == nil || len(de.rem) < len(domain.rem) {
				domain = de
			}
		}
	}
	return nil, in, domain, false
}

// parseNull matches the null literal, case-sensitively.
func parseNull(in string) (ast.Literal, string, error) {
	if !strings.HasPrefix(in, "null") {
		return nil, in, errNoMatch
	}
	return ast.Null{}, in[len("null"):], nil
}

// parseBoolean matches true or false, case-insensitively.
func parseBoolean(in string) (ast.Literal, string, error) {
	if hasPrefixFold(in, "true") {
		return ast.Boolean{Value: true}, in[len("true"):], nil
	}
	if hasPrefixFold(in, "false") {
		return ast.Boolean{Value: false}, in[len("false"):], nil
	}
	return nil, in, errNoMatch
}

// parseInteger matches an optionally signed run of digits as a signed 64-bit
// integer. Overflow is a DomainError, not wraparound.
func parseInteger(in string) (ast.Literal, string, error) {
	rest := in
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	_, rest, ok := takeDigits1(rest)
	if !ok {
		return nil, in, errNoMatch
	}
	tok := in[:len(in)-len(rest)]
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, in, domainErrf(rest, "integer %s overflows 64 bits", tok)
	}
	return ast.Integer{Value: v}, rest, nil
}

// parseFloat matches a decimal with a mandatory fraction and/or exponent, or
// one of the special tokens NaN, INF, -INF (exact case, no +INF form).
func parseFloat(in string) (ast.Literal, string, error) {
	if f, rest, ok := parseDecimal(in); ok {
		return ast.Float{Value: f}, rest, nil
	}
	switch {
	case strings.HasPrefix(in, "NaN"):
		return ast.Float{Value: math.NaN()}, in[len("NaN"):], nil
	case strings.HasPrefix(in, "INF"):
		return ast.Float{Value: math.Inf(1)}, in[len("INF"):], nil
	case strings.HasPrefix(in, "-INF"):
		return ast.Float{Value: math.Inf(-1)}, in[len("-INF"):], nil
	}
	return nil, in, errNoMatch
}

// parseDecimal scans the numeric float form. A bare digit run without '.' or
// exponent is left for the integer parser, keeping the two disjoint.
func parseDecimal(in string) (float64, string, bool) {
	rest := in
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	_, rest, ok := takeDigits1(rest)
	if !ok {
		return 0, in, false
	}
	var hasFrac, hasExp bool
	if strings.HasPrefix(rest, ".") {
		hasFrac = true
		_, rest, _ = takeWhileMN(rest[1:], 0, len(rest), isDigit)
	}
	if len(rest) > 0 && (rest[0] == 'e' || rest[0] == 'E') {
		expRest := rest[1:]
		if len(expRest) > 0 && (expRest[0] == '+' || expRest[0] == '-') {
			expRest = expRest[1:]
		}
		// An exponent marker with no digits is not taken as an exponent.
		if _, r, ok := takeDigits1(expRest); ok {
			hasExp = true
			rest = r
		}
	}
	if !hasFrac && !hasExp {
		return 0, in, false
	}
	tok := in[:len(in)-len(rest)]
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, in, false
	}
	// Out-of-range magnitudes collapse to the infinities, as IEEE 754 wants.
	return f, rest, true
}

// parseString matches an apostrophe-delimited string. The only escape is a
// doubled apostrophe resolving to a single one.
func parseString(in string) (ast.Literal, string, error) {
	if len(in) == 0 || in[0] != '\'' {
		return nil, in, errNoMatch
	}
	var b strings.Builder
	i := 1
	for i < len(in) {
		if in[i] != '\'' {
			b.WriteByte(in[i])
			i++
			continue
		}
		if i+1 < len(in) && in[i+1] == '\'' {
			b.WriteByte('\'')
			i += 2
			continue
		}
		return ast.String{Value: b.String()}, in[i+1:], nil
	}
	// Unterminated.
	return nil, in, errNoMatch
}

var guidGroups = [5]int{8, 4, 4, 4, 12}

// parseGUID matches the canonical 8-4-4-4-12 hyphenated hex form, stored
// verbatim without case normalization.
func parseGUID(in string) (ast.Literal, string, error) {
	rest := in
	for i, n := range guidGroups {
		if i > 0 {
			if !strings.HasPrefix(rest, "-") {
				return nil, in, errNoMatch
			}
			rest = rest[1:]
		}
		var ok bool
		if _, rest, ok = takeWhileMN(rest, n, n, isHexDigit); !ok {
			return nil, in, errNoMatch
		}
	}
	return ast.GUID{Value: in[:len(in)-len(rest)]}, rest, nil
}

// parseBinary matches binary'...' with a URL-safe base64 payload.
func parseBinary(in string) (ast.Literal, string, error) {
	if !hasPrefixFold(in, "binary'") {
		return nil, in, errNoMatch
	}
	rest := in[len("binary'"):]
	encoded, rest, _ := takeWhileMN(rest, 0, len(rest), isBase64urlChar)
	if !strings.HasPrefix(rest, "'") {
		return nil, in, errNoMatch
	}
	data, err := decodeBase64url(encoded)
	if err != nil {
		return nil, in, domainErrf(rest, "invalid base64 payload: %v", err)
	}
	return ast.Binary{Data: data}, rest[1:], nil
}

// decodeBase64url decodes URL-safe base64, accepting padded and unpadded
// input equivalently. Padding must be absent or canonical; '=' anywhere else
// is an error.
func decodeBase64url(s string) ([]byte, error) {
	trimmed := strings.TrimRight(s, "=")
	if strings.ContainsRune(trimmed, '=') {
		return nil, errors.New("padding inside payload")
	}
	if pad := len(s) - len(trimmed); pad > 0 && (pad > 2 || len(s)%4 != 0) {
		return nil, errors.New("inconsistent padding")
	}
	return base64.RawURLEncoding.DecodeString(trimmed)
}
