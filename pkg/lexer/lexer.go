package lexer

import (
	"strings"
	"unicode"
)

type Lexer struct {
	input    string // input string to be normalized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // current line number for error reporting
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
	}
}

// Lex normalizes the whole source into an ordered list of code lines
func Lex(s string) []Line {
	return NewLexer(s).Lines()
}

// Lines consumes the remaining input and returns every code line.
// The returned slice can be traversed any number of times.
func (l *Lexer) Lines() []Line {
	lines := make([]Line, 0)
	for l.HasMore() {
		if line, ok := l.NextLine(); ok {
			lines = append(lines, line)
		}
	}

	return lines
}

// NextLine reads one raw line and normalizes it.
// ok is false for blank and comment-only lines.
func (l *Lexer) NextLine() (Line, bool) {
	start := l.position
	end := strings.IndexByte(l.input[start:], '\n')
	if end < 0 {
		end = l.length
	} else {
		end += start
	}

	raw := l.input[start:end]
	lineNo := l.line

	l.position = end + 1
	l.line++

	code := strings.TrimRightFunc(stripComment(raw), unicode.IsSpace)
	trimmed := strings.TrimLeftFunc(code, unicode.IsSpace)
	if trimmed == "" {
		return Line{}, false
	}

	lead := len(code) - len(trimmed)
	pos := NewPosition(lineNo, lead+1, start+lead)

	return NewLine(Classify(trimmed), trimmed, pos), true
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}
