package output

import (
	"fmt"
	"hackasm/pkg/parser/codegen"
)

// Output renders encoded words and commits them to a destination file.
type Output interface {
	Generate() error
	GetCode() []byte
	Build() error
}

// Format names an output encoding
type Format string

const (
	FormatHack   Format = "hack" // one 16-digit binary string per line
	FormatBinary Format = "bin"  // big-endian 16-bit words
)

// ParseFormat checks a format name, an empty name meaning FormatHack
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatHack, nil
	case FormatHack, FormatBinary:
		return f, nil
	}

	return "", fmt.Errorf("unknown output format %q", name)
}

// Extension returns the file extension used for the format
func (f Format) Extension() string {
	switch f {
	case FormatBinary:
		return ".bin"
	default:
		return ".hack"
	}
}

// New creates the Output for a format
func New(f Format, words []codegen.Word, path string) (Output, error) {
	switch f {
	case FormatHack:
		return NewHackText(words, path), nil
	case FormatBinary:
		return NewHackBinary(words, path), nil
	}

	return nil, fmt.Errorf("unknown output format %q", string(f))
}
