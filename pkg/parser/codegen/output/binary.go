package output

import (
	"bytes"
	"encoding/binary"
	"hackasm/pkg/parser/codegen"
)

type hackBinary struct {
	words  []codegen.Word
	output string
	data   bytes.Buffer
}

// NewHackBinary creates a packed binary output
func NewHackBinary(words []codegen.Word, output string) Output {
	return &hackBinary{words: words, output: output}
}

// Generate packs every word as two bytes, high byte first
func (h *hackBinary) Generate() error {
	h.data.Reset()
	for i, w := range h.words {
		v, err := w.Uint16()
		if err != nil {
			return errMalformedWord(i, w)
		}
		h.data.Write(binary.BigEndian.AppendUint16(nil, v))
	}

	return nil
}

// GetCode returns the packed bytes
func (h *hackBinary) GetCode() []byte {
	return h.data.Bytes()
}

// Build commits the packed bytes to the output path
func (h *hackBinary) Build() error {
	return commit(h.output, h.GetCode())
}
