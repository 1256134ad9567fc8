package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/odataq/pkg/ast"
)

// Temporal literal parsers: date, time, datetime with offset, and duration.
// Component grammars follow the OData ABNF: fixed-width digit runs with range
// checks, then calendar validation on top.

// parseYear matches an optional '-' and exactly 4 digits. Years outside 4
// digits are not representable in this grammar.
func parseYear(in string) (int, string, error) {
	rest := in
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	digits, rest, ok := takeWhileMN(rest, 4, 4, isDigit)
	if !ok {
		return 0, in, errNoMatch
	}
	y, _ := strconv.Atoi(digits)
	if neg {
		y = -y
	}
	return y, rest, nil
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func daysInMonth(y, m int) int {
	if m == 2 && isLeapYear(y) {
		return 29
	}
	return monthDays[m]
}

// parseDateValue matches year '-' month '-' day and validates the day against
// the proleptic Gregorian calendar.
func parseDateValue(in string) (ast.Date, string, error) {
	y, rest, err := parseYear(in)
	if err != nil {
		return ast.Date{}, in, err
	}
	if !strings.HasPrefix(rest, "-") {
		return ast.Date{}, in, errNoMatch
	}
	m, rest, err := nDigitsBetween(rest[1:], 2, 1, 12, "month")
	if err != nil {
		return ast.Date{}, in, err
	}
	if !strings.HasPrefix(rest, "-") {
		return ast.Date{}, in, errNoMatch
	}
	d, rest, err := nDigitsBetween(rest[1:], 2, 1, 31, "day")
	if err != nil {
		return ast.Date{}, in, err
	}
	if max := daysInMonth(y, m); d > max {
		return ast.Date{}, in, domainErrf(rest, "day %d out of range for month %d of year %d", d, m, y)
	}
	return ast.Date{Year: y, Month: m, Day: d}, rest, nil
}

func parseDate(in string) (ast.Literal, string, error) {
	d, rest, err := parseDateValue(in)
	if err != nil {
		return nil, in, err
	}
	return d, rest, nil
}

// parseSecond matches a 2-digit second with an optional fractional part of
// 1 to 12 digits, converted to nanoseconds.
func parseSecond(in string) (int, int, string, error) {
	sec, rest, err := nDigitsBetween(in, 2, 0, 59, "second")
	if err != nil {
		return 0, 0, in, err
	}
	nanos := 0
	if strings.HasPrefix(rest, ".") {
		// A '.' without digits is left unconsumed.
		if frac, r, ok := takeWhileMN(rest[1:], 1, 12, isDigit); ok {
			nanos = fracToNanos(frac)
			rest = r
		}
	}
	return sec, nanos, rest, nil
}

// fracToNanos converts fractional-second digits to nanoseconds: right-padded
// with zeros to 9 digits, truncated (not rounded) past 9.
func fracToNanos(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n, _ := strconv.Atoi(digits)
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return n
}

// parseTimeValue matches hour ':' minute, optionally followed by ':' second
// with fraction. Hour 24 is accepted as the grammar writes it, without
// forcing minute and second to zero.
func parseTimeValue(in string) (ast.Time, string, error) {
	h, rest, err := nDigitsBetween(in, 2, 0, 24, "hour")
	if err != nil {
		return ast.Time{}, in, err
	}
	if !strings.HasPrefix(rest, ":") {
		return ast.Time{}, in, errNoMatch
	}
	m, rest, err := nDigitsBetween(rest[1:], 2, 0, 59, "minute")
	if err != nil {
		return ast.Time{}, in, err
	}
	t := ast.Time{Hour: h, Minute: m}
	if strings.HasPrefix(rest, ":") {
		sec, nanos, r, err := parseSecond(rest[1:])
		switch {
		case err == nil:
			t.Second, t.Nanosecond = sec, nanos
			rest = r
		case !errors.Is(err, errNoMatch):
			return ast.Time{}, in, err
		}
		// A ':' not followed by a second is left unconsumed.
	}
	return t, rest, nil
}

func parseTime(in string) (ast.Literal, string, error) {
	t, rest, err := parseTimeValue(in)
	if err != nil {
		return nil, in, err
	}
	return t, rest, nil
}

// parseTZOffset matches Z (either case) or a signed hh:mm offset, returned
// in minutes east of UTC.
func parseTZOffset(in string) (int, string, error) {
	if len(in) > 0 && (in[0] == 'Z' || in[0] == 'z') {
		return 0, in[1:], nil
	}
	if len(in) == 0 || (in[0] != '+' && in[0] != '-') {
		return 0, in, errNoMatch
	}
	sign := 1
	if in[0] == '-' {
		sign = -1
	}
	h, rest, err := nDigitsBetween(in[1:], 2, 0, 24, "offset hour")
	if err != nil {
		return 0, in, err
	}
	if !strings.HasPrefix(rest, ":") {
		return 0, in, errNoMatch
	}
	m, rest, err := nDigitsBetween(rest[1:], 2, 0, 59, "offset minute")
	if err != nil {
		return 0, in, err
	}
	return sign * (h*60 + m), rest, nil
}

// parseDateTimeOffset matches date 'T' time with an optional UTC offset,
// defaulting to UTC when the offset is omitted.
func parseDateTimeOffset(in string) (ast.Literal, string, error) {
	d, rest, err := parseDateValue(in)
	if err != nil {
		return nil, in, err
	}
	if !hasPrefixFold(rest, "t") {
		return nil, in, errNoMatch
	}
	t, rest, err := parseTimeValue(rest[1:])
	if err != nil {
		return nil, in, err
	}
	dto := ast.DateTimeOffset{Date: d, Time: t}
	off, r, err := parseTZOffset(rest)
	switch {
	case err == nil:
		dto.Offset = off
		rest = r
	case !errors.Is(err, errNoMatch):
		return nil, in, err
	}
	return dto, rest, nil
}

// parseDuration matches duration'...' or the bare quoted form '...'; both
// yield the identical signed duration.
func parseDuration(in string) (ast.Literal, string, error) {
	rest := in
	if hasPrefixFold(rest, "duration") {
		rest = rest[len("duration"):]
	}
	if !strings.HasPrefix(rest, "'") {
		return nil, in, errNoMatch
	}
	d, rest, err := parseDurationValue(rest[1:])
	if err != nil {
		return nil, in, err
	}
	if !strings.HasPrefix(rest, "'") {
		return nil, in, errNoMatch
	}
	return ast.Duration{Value: d}, rest[1:], nil
}

// parseDurationValue matches the ISO-ish duration body: optional sign, 'P',
// optional days, optional 'T' part with hours, minutes and fractional
// seconds. Missing components default to zero; the sum is negated when the
// overall sign is '-'.
func parseDurationValue(in string) (time.Duration, string, error) {
	rest := in
	neg := false
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	if !hasPrefixFold(rest, "p") {
		return 0, in, errNoMatch
	}
	rest = rest[1:]

	var total time.Duration
	n, r, err := parseDurComponent(rest, 'd')
	switch {
	case err == nil:
		days, derr := scaleDuration(n, 24*time.Hour, r)
		if derr != nil {
			return 0, in, derr
		}
		total = days
		rest = r
	case !errors.Is(err, errNoMatch):
		return 0, in, err
	}

	if hasPrefixFold(rest, "t") {
		rest = rest[1:]
		for _, unit := range []struct {
			suffix byte
			scale  time.Duration
		}{{'h', time.Hour}, {'m', time.Minute}} {
			n, r, err := parseDurComponent(rest, unit.suffix)
			switch {
			case err == nil:
				part, derr := scaleDuration(n, unit.scale, r)
				if derr != nil {
					return 0, in, derr
				}
				if total, derr = addDuration(total, part, r); derr != nil {
					return 0, in, derr
				}
				rest = r
			case !errors.Is(err, errNoMatch):
				return 0, in, err
			}
		}
		secs, r, err := parseDurSeconds(rest)
		switch {
		case err == nil:
			var derr *DomainError
			if total, derr = addDuration(total, secs, r); derr != nil {
				return 0, in, derr
			}
			rest = r
		case !errors.Is(err, errNoMatch):
			return 0, in, err
		}
	}

	if neg {
		total = -total
	}
	return total, rest, nil
}

// parseDurComponent matches a digit run followed by the given unit letter,
// case-insensitively. The digits are not consumed unless the letter follows.
func parseDurComponent(in string, unit byte) (int64, string, error) {
	digits, rest, ok := takeDigits1(in)
	if !ok || len(rest) == 0 || !foldEqual(rest[0], unit) {
		return 0, in, errNoMatch
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, in, domainErrf(rest[1:], "duration component %s%c out of range", digits, unit)
	}
	return n, rest[1:], nil
}

// parseDurSeconds matches seconds with an optional fractional part, ending
// in 's' or 'S'.
func parseDurSeconds(in string) (time.Duration, string, error) {
	whole, rest, ok := takeDigits1(in)
	if !ok {
		return 0, in, errNoMatch
	}
	frac := ""
	if strings.HasPrefix(rest, ".") {
		f, r, ok := takeDigits1(rest[1:])
		if !ok {
			return 0, in, errNoMatch
		}
		frac, rest = f, r
	}
	if len(rest) == 0 || !foldEqual(rest[0], 's') {
		return 0, in, errNoMatch
	}
	rest = rest[1:]
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, in, domainErrf(rest, "duration seconds %s out of range", whole)
	}
	secs, derr := scaleDuration(n, time.Second, rest)
	if derr != nil {
		return 0, in, derr
	}
	return secs + time.Duration(fracToNanos(frac)), rest, nil
}

// scaleDuration multiplies a non-negative component count by its unit,
// rejecting values outside the representable range instead of wrapping.
func scaleDuration(n int64, unit time.Duration, rem string) (time.Duration, *DomainError) {
	if n > math.MaxInt64/int64(unit) {
		return 0, domainErrf(rem, "duration out of range")
	}
	return time.Duration(n) * unit, nil
}

// addDuration sums two non-negative components with the same overflow rule.
func addDuration(a, b time.Duration, rem string) (time.Duration, *DomainError) {
	if int64(a) > math.MaxInt64-int64(b) {
		return 0, domainErrf(rem, "duration out of range")
	}
	return a + b, nil
}
