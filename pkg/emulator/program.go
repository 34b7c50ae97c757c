package emulator

import (
	"bufio"
	"fmt"
	"hackasm/pkg/parser/codegen"
	"io"
	"strings"
)

// ReadHack parses .hack text, one 16-digit word per line
func ReadHack(r io.Reader) ([]uint16, error) {
	rom := make([]uint16, 0)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := codegen.Word(text).Uint16()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rom = append(rom, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rom, nil
}

// FromWords converts encoded words into ROM contents
func FromWords(words []codegen.Word) ([]uint16, error) {
	rom := make([]uint16, len(words))
	for i, w := range words {
		v, err := w.Uint16()
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		rom[i] = v
	}

	return rom, nil
}
