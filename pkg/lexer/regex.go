package lexer

import (
	"regexp"
	"strings"
)

var (
	labelRegex  = regexp.MustCompile(`^\((.*)\)$`)
	numberRegex = regexp.MustCompile(`^[0-9]+$`)
	symbolRegex = regexp.MustCompile(`^[A-Za-z_.$:][A-Za-z0-9_.$:]*$`)
)

// CommentMarker starts a comment that runs to the end of the line
const CommentMarker = "//"

// AddressMarker prefixes an address instruction
const AddressMarker = '@'

// Classify determines the kind of a normalized line from its shape
func Classify(text string) LineKind {
	switch {
	case len(text) > 0 && text[0] == AddressMarker:
		return ADDRESS
	case labelRegex.MatchString(text):
		return LABEL
	default:
		return COMPUTE
	}
}

// LabelName extracts NAME from a "(NAME)" declaration
func LabelName(text string) (string, bool) {
	m := labelRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// IsNumber checks if s is a decimal literal
func IsNumber(s string) bool {
	return numberRegex.MatchString(s)
}

// IsSymbol checks if s is a valid symbol name (cannot start with a digit)
func IsSymbol(s string) bool {
	return symbolRegex.MatchString(s)
}

// stripComment removes everything from the first comment marker on
func stripComment(s string) string {
	if i := strings.Index(s, CommentMarker); i >= 0 {
		return s[:i]
	}

	return s
}
