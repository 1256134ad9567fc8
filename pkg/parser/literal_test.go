package parser_test

import (
	"encoding/base64"
	"math"
	"testing"
	"time"

	"github.com/leapstack-labs/odataq/pkg/ast"
	"github.com/leapstack-labs/odataq/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) ast.Literal {
	t.Helper()
	lit, err := parser.ParseLiteral(input)
	require.NoError(t, err, "input %q", input)
	return lit
}

func TestParseNull(t *testing.T) {
	assert.Equal(t, ast.Null{}, mustParse(t, "null"))

	// null is case-sensitive; NULL is not a literal.
	_, err := parser.ParseLiteral("NULL")
	require.Error(t, err)
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"True", true},
		{"TRUE", true},
		{"false", false},
		{"False", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, ast.Boolean{Value: tt.want}, mustParse(t, tt.input))
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"123456789", 123456789},
		{"+123456789", 123456789},
		{"-123456789", -123456789},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, ast.Integer{Value: tt.want}, mustParse(t, tt.input))
		})
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	_, err := parser.ParseLiteral("9223372036854775808")
	var domain *parser.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Contains(t, domain.Message, "overflows")
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0.1", 0.1},
		{"-0.1", -0.1},
		{"1e10", 1e10},
		{"-1e10", -1e10},
		{"1e-10", 1e-10},
		{"1E-10", 1e-10},
		{"123.456e10", 123.456e10},
		{"123.0", 123.0},
		{"INF", math.Inf(1)},
		{"-INF", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, ast.Float{Value: tt.want}, mustParse(t, tt.input))
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	// NaN never compares equal to itself; test with the predicate.
	lit := mustParse(t, "NaN")
	f, ok := lit.(ast.Float)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f.Value))
}

func TestIntegerFloatDisjoint(t *testing.T) {
	// A bare digit run is an Integer, never a Float; a fraction or exponent
	// makes it a Float, never an Integer.
	assert.IsType(t, ast.Integer{}, mustParse(t, "123"))
	assert.IsType(t, ast.Float{}, mustParse(t, "123.0"))
	assert.IsType(t, ast.Float{}, mustParse(t, "1e5"))
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "'hello world'", "hello world"},
		{"empty", "''", ""},
		{"escaped quote", "'g''day sir'", "g'day sir"},
		{"only escapes", "''''", "'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ast.String{Value: tt.want}, mustParse(t, tt.input))
		})
	}
}

func TestParseStringUnterminated(t *testing.T) {
	_, err := parser.ParseLiteral("'unterminated")
	require.Error(t, err)
}

func TestParseGUID(t *testing.T) {
	lower := "d13efbec-aa20-47f4-8756-c38852488b6e"
	upper := "D13EFBEC-AA20-47F4-8756-C38852488B6E"

	// Case is preserved verbatim, not normalized.
	assert.Equal(t, ast.GUID{Value: lower}, mustParse(t, lower))
	assert.Equal(t, ast.GUID{Value: upper}, mustParse(t, upper))
}

func TestGUIDToUUID(t *testing.T) {
	g := mustParse(t, "d13efbec-aa20-47f4-8756-c38852488b6e").(ast.GUID)
	u, err := g.UUID()
	require.NoError(t, err)
	assert.Equal(t, "d13efbec-aa20-47f4-8756-c38852488b6e", u.String())
}

func TestParseBinary(t *testing.T) {
	data := []byte("Definitely not a virus")

	// Padded and unpadded encodings decode to identical bytes.
	padded := base64.URLEncoding.EncodeToString(data)
	unpadded := base64.RawURLEncoding.EncodeToString(data)

	assert.Equal(t, ast.Binary{Data: data}, mustParse(t, "binary'"+padded+"'"))
	assert.Equal(t, ast.Binary{Data: data}, mustParse(t, "binary'"+unpadded+"'"))

	// The keyword is case-insensitive.
	assert.Equal(t, ast.Binary{Data: data}, mustParse(t, "BINARY'"+padded+"'"))

	// Empty payload is valid.
	assert.Equal(t, ast.Binary{Data: []byte{}}, mustParse(t, "binary''"))
}

func TestParseBinaryBadPadding(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-canonical padding", "binary'QQ='"},
		{"padding inside payload", "binary'Q=Q='"},
		{"impossible length", "binary'QQQQQ'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseLiteral(tt.input)
			var domain *parser.DomainError
			require.ErrorAs(t, err, &domain, "input %q", tt.input)
		})
	}
}

func TestParseBinaryBadAlphabet(t *testing.T) {
	// '!' is outside the alphabet, so the payload never reaches its closing
	// quote and no alternative matches at all.
	_, err := parser.ParseLiteral("binary'!!'")
	var syntax *parser.SyntaxError
	require.ErrorAs(t, err, &syntax)
}

func TestDurationBeforeString(t *testing.T) {
	// Duration ranks before string in the alternation, so a bare quoted
	// token matching the duration pattern is a Duration, not a String.
	lit := mustParse(t, "'P1D'")
	assert.Equal(t, ast.Duration{Value: 24 * time.Hour}, lit)

	// A quoted token that is not a duration stays a String.
	assert.Equal(t, ast.String{Value: "P1X"}, mustParse(t, "'P1X'"))
}
