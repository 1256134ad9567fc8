package parser_test

import (
	"testing"
	"time"

	"github.com/leapstack-labs/odataq/pkg/ast"
	"github.com/leapstack-labs/odataq/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Date
	}{
		{"2023-01-01", ast.Date{Year: 2023, Month: 1, Day: 1}},
		{"2024-02-29", ast.Date{Year: 2024, Month: 2, Day: 29}},
		{"2000-02-29", ast.Date{Year: 2000, Month: 2, Day: 29}},
		{"-0001-01-01", ast.Date{Year: -1, Month: 1, Day: 1}},
		{"0000-12-31", ast.Date{Year: 0, Month: 12, Day: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input))
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a leap year", "2023-02-29"},
		{"century non-leap", "1900-02-29"},
		{"thirty-day month", "2023-04-31"},
		{"month thirteen", "2023-13-01"},
		{"day zero", "2023-01-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseLiteral(tt.input)
			var domain *parser.DomainError
			require.ErrorAs(t, err, &domain, "input %q", tt.input)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Time
	}{
		{"01:02", ast.Time{Hour: 1, Minute: 2}},
		{"01:02:03", ast.Time{Hour: 1, Minute: 2, Second: 3}},
		{"01:02:03.1", ast.Time{Hour: 1, Minute: 2, Second: 3, Nanosecond: 100000000}},
		{"01:02:03.000000001", ast.Time{Hour: 1, Minute: 2, Second: 3, Nanosecond: 1}},
		// Digits past the ninth are truncated, not rounded.
		{"01:02:03.000000001234", ast.Time{Hour: 1, Minute: 2, Second: 3, Nanosecond: 1}},
		{"01:02:03.999999999", ast.Time{Hour: 1, Minute: 2, Second: 3, Nanosecond: 999999999}},
		// Hour 24 is representable without forcing minute and second to zero.
		{"24:00", ast.Time{Hour: 24}},
		{"24:01:02", ast.Time{Hour: 24, Minute: 1, Second: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input))
		})
	}
}

func TestParseTimeOutOfRange(t *testing.T) {
	for _, input := range []string{"25:00", "10:60", "10:30:60"} {
		t.Run(input, func(t *testing.T) {
			_, err := parser.ParseLiteral(input)
			var domain *parser.DomainError
			require.ErrorAs(t, err, &domain, "input %q", input)
		})
	}
}

func TestParseDateTimeOffset(t *testing.T) {
	date := ast.Date{Year: 2023, Month: 1, Day: 1}

	tests := []struct {
		input string
		want  ast.DateTimeOffset
	}{
		{"2023-01-01T00:00", ast.DateTimeOffset{Date: date}},
		{"2023-01-01T00:00Z", ast.DateTimeOffset{Date: date}},
		{"2023-01-01t00:00z", ast.DateTimeOffset{Date: date}},
		{
			"2023-01-01T00:00:01.1",
			ast.DateTimeOffset{Date: date, Time: ast.Time{Second: 1, Nanosecond: 100000000}},
		},
		{"2023-01-01T00:00+02:00", ast.DateTimeOffset{Date: date, Offset: 120}},
		{"2023-01-01T00:00-05:30", ast.DateTimeOffset{Date: date, Offset: -330}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParse(t, tt.input))
		})
	}
}

func TestParseDateTimeOffsetBadMinute(t *testing.T) {
	_, err := parser.ParseLiteral("2023-01-01T00:00+10:99")
	var domain *parser.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Contains(t, domain.Message, "offset minute")
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"duration'P1D'", 24 * time.Hour},
		{"duration'PT1H'", time.Hour},
		{"duration'PT1M'", time.Minute},
		{"duration'PT1S'", time.Second},
		{"duration'PT1.2S'", 1200 * time.Millisecond},
		{"duration'P1DT2H3M4.5S'", 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond},
		{"duration'-P1D'", -24 * time.Hour},
		{"duration'+P1D'", 24 * time.Hour},
		// The keyword is optional and case-insensitive; the bare quoted form
		// yields the identical value.
		{"'P1D'", 24 * time.Hour},
		{"'-P1D'", -24 * time.Hour},
		{"DURATION'p1d'", 24 * time.Hour},
		// Every component is optional and defaults to zero.
		{"duration'P'", 0},
		{"duration'PT'", 0},
		{"duration'P1DT'", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, ast.Duration{Value: tt.want}, mustParse(t, tt.input))
		})
	}
}

func TestParseDurationOverflow(t *testing.T) {
	_, err := parser.ParseLiteral("duration'P99999999999999999999D'")
	var domain *parser.DomainError
	require.ErrorAs(t, err, &domain)
}

func TestParseDurationMalformed(t *testing.T) {
	// A malformed duration body falls back to the string alternative.
	assert.Equal(t, ast.String{Value: "1D"}, mustParse(t, "'1D'"))

	// With the keyword there is no fallback.
	_, err := parser.ParseLiteral("duration'1D'")
	require.Error(t, err)
}
