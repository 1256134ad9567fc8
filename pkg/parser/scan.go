package parser

import (
	"strconv"
	"strings"
)

// Low-level scanning helpers shared by the literal and name parsers. Each
// returns the matched prefix and the remainder; on failure the remainder is
// the untouched input.

// takeWhileMN consumes at least min and at most max leading bytes satisfying
// pred.
func takeWhileMN(in string, min, max int, pred func(byte) bool) (string, string, bool) {
	i := 0
	for i < len(in) && i < max && pred(in[i]) {
		i++
	}
	if i < min {
		return "", in, false
	}
	return in[:i], in[i:], true
}

// takeDigits1 consumes one or more leading decimal digits.
func takeDigits1(in string) (string, string, bool) {
	return takeWhileMN(in, 1, len(in), isDigit)
}

// hasPrefixFold reports whether in begins with keyword, ASCII
// case-insensitively.
func hasPrefixFold(in, keyword string) bool {
	return len(in) >= len(keyword) && strings.EqualFold(in[:len(keyword)], keyword)
}

// nDigitsBetween parses exactly n digits and range-checks the value. A wrong
// digit count is a non-match; a correct count with an out-of-range value is a
// DomainError naming the component.
func nDigitsBetween(in string, n, lo, hi int, component string) (int, string, error) {
	digits, rest, ok := takeWhileMN(in, n, n, isDigit)
	if !ok {
		return 0, in, errNoMatch
	}
	v, _ := strconv.Atoi(digits)
	if v < lo || v > hi {
		return 0, in, domainErrf(rest, "%s %d out of range (%d..%d)", component, v, lo, hi)
	}
	return v, rest, nil
}
