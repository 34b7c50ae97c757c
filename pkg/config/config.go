package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// NullMnemonic is the table key used for an absent dest or jump field
const NullMnemonic = "null"

const (
	destWidth = 3
	jumpWidth = 3
	compWidth = 6
	maxSymbol = 1<<15 - 1
)

//go:embed constants.json
var defaultConstants []byte

// Constants holds the static mnemonic and symbol tables of the platform
type Constants struct {
	Dest    map[string]string `json:"DEST"`    // dest mnemonic -> 3-bit code
	Jump    map[string]string `json:"JUMP"`    // jump mnemonic -> 3-bit code
	Comp0   map[string]string `json:"COMP0"`   // comp mnemonic (a=0) -> 6-bit code
	Comp1   map[string]string `json:"COMP1"`   // comp mnemonic (a=1) -> 6-bit code
	Symbols map[string]int    `json:"SYMBOLS"` // predefined symbol -> address
}

// Default returns the built-in tables
func Default() *Constants {
	c, err := Parse(defaultConstants)
	if err != nil {
		panic(fmt.Sprintf("embedded constants are invalid: %v", err))
	}

	return c
}

// Load reads and validates a constants file.
// An empty path yields the built-in tables.
func Load(path string) (*Constants, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constants: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes constants from JSON and validates them
func Parse(data []byte) (*Constants, error) {
	var c Constants
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid constants: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks code widths, the null entries and the disjointness of
// the two comp tables
func (c *Constants) Validate() error {
	if err := checkTable("DEST", c.Dest, destWidth, 8); err != nil {
		return err
	}
	if err := checkTable("JUMP", c.Jump, jumpWidth, 8); err != nil {
		return err
	}
	if err := checkTable("COMP0", c.Comp0, compWidth, 0); err != nil {
		return err
	}
	if err := checkTable("COMP1", c.Comp1, compWidth, 0); err != nil {
		return err
	}

	if _, ok := c.Dest[NullMnemonic]; !ok {
		return fmt.Errorf("DEST table has no %q entry", NullMnemonic)
	}
	if _, ok := c.Jump[NullMnemonic]; !ok {
		return fmt.Errorf("JUMP table has no %q entry", NullMnemonic)
	}

	for m := range c.Comp0 {
		if _, ok := c.Comp1[m]; ok {
			return fmt.Errorf("comp mnemonic %q is in both COMP0 and COMP1", m)
		}
	}

	for name, v := range c.Symbols {
		if v < 0 || v > maxSymbol {
			return fmt.Errorf("symbol %s=%d does not fit in 15 bits", name, v)
		}
	}

	return nil
}

// checkTable verifies every code is a binary string of the given width
func checkTable(name string, t map[string]string, width, size int) error {
	if len(t) == 0 {
		return fmt.Errorf("%s table is empty", name)
	}
	if size > 0 && len(t) != size {
		return fmt.Errorf("%s table has %d entries, want %d", name, len(t), size)
	}

	for m, code := range t {
		if len(code) != width || strings.Trim(code, "01") != "" {
			return fmt.Errorf("%s code for %q is %q, want %d binary digits", name, m, code, width)
		}
	}

	return nil
}
