package output

import (
	"bytes"
	"hackasm/pkg/parser/codegen"
)

type hackText struct {
	words  []codegen.Word
	output string
	text   bytes.Buffer
}

// NewHackText creates a .hack text output
func NewHackText(words []codegen.Word, output string) Output {
	return &hackText{words: words, output: output}
}

// Generate writes one word per line without a trailing newline
func (h *hackText) Generate() error {
	h.text.Reset()
	for i, w := range h.words {
		if !w.Valid() {
			return errMalformedWord(i, w)
		}
		if i > 0 {
			h.text.WriteByte('\n')
		}
		h.text.WriteString(string(w))
	}

	return nil
}

// GetCode returns the generated text
func (h *hackText) GetCode() []byte {
	return h.text.Bytes()
}

// Build commits the generated text to the output path
func (h *hackText) Build() error {
	return commit(h.output, h.GetCode())
}
