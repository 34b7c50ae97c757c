package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// WordSize is the number of bits in a machine word
const WordSize = 16

// Word is one encoded instruction as a string of '0' and '1'
type Word string

// NewWord renders a 16-bit value as a word
func NewWord(v uint16) Word {
	return Word(fmt.Sprintf("%016b", v))
}

// Valid checks the word has exactly 16 binary digits
func (w Word) Valid() bool {
	return len(w) == WordSize && strings.Trim(string(w), "01") == ""
}

// Uint16 parses the word into its numeric value
func (w Word) Uint16() (uint16, error) {
	if !w.Valid() {
		return 0, fmt.Errorf("malformed word %q", string(w))
	}

	v, err := strconv.ParseUint(string(w), 2, WordSize)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil
}

// IsCompute reports whether the word encodes a compute instruction
func (w Word) IsCompute() bool {
	return strings.HasPrefix(string(w), "111")
}

func (w Word) String() string {
	return string(w)
}
