package parser

import "unicode"

// isDigit returns true if ch is a decimal digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit returns true if ch is a hexadecimal digit of either case.
func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isBase64urlChar returns true for the URL-safe base64 alphabet plus '='
// padding.
func isBase64urlChar(ch byte) bool {
	return isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		ch == '-' || ch == '_' || ch == '='
}

// isIdentLeading returns true if r may start an identifier.
func isIdentLeading(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart returns true if r may continue an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// foldEqual compares two ASCII letters case-insensitively.
func foldEqual(a, b byte) bool {
	return a|0x20 == b|0x20
}
