package symbols

import (
	"errors"
	"slices"
)

const (
	VariableBase = 16        // first address handed out to variables
	MaxAddress   = 1<<15 - 1 // largest value an address instruction can carry
)

var ErrAddressSpaceExhausted = errors.New("no free variable address left")

type Table struct {
	symbols    map[string]int // name -> address
	predefined map[string]bool
	next       int // next free variable address
}

// New creates a symbol table seeded with the predefined platform symbols
func New(predefined map[string]int) *Table {
	t := &Table{
		symbols:    make(map[string]int, len(predefined)),
		predefined: make(map[string]bool, len(predefined)),
		next:       VariableBase,
	}

	for name, value := range predefined {
		t.symbols[name] = value
		t.predefined[name] = true
	}

	return t
}

// Bind adds name only if it is not bound yet and reports whether it did.
// An existing binding is never altered.
func (t *Table) Bind(name string, value int) bool {
	if _, ok := t.symbols[name]; ok {
		return false
	}

	t.symbols[name] = value
	return true
}

// Resolve looks up a name without modifying the table
func (t *Table) Resolve(name string) (int, bool) {
	value, ok := t.symbols[name]
	return value, ok
}

// Allocate returns the address of a variable, binding it to the next free
// address on first use
func (t *Table) Allocate(name string) (int, error) {
	if value, ok := t.symbols[name]; ok {
		return value, nil
	}

	if t.next > MaxAddress {
		return 0, ErrAddressSpaceExhausted
	}

	value := t.next
	t.symbols[name] = value
	t.next++

	return value, nil
}

// IsPredefined reports whether name is one of the platform symbols
func (t *Table) IsPredefined(name string) bool {
	return t.predefined[name]
}

// NextFree returns the address the next new variable will receive
func (t *Table) NextFree() int {
	return t.next
}

// Len returns the number of bound symbols
func (t *Table) Len() int {
	return len(t.symbols)
}

// Names returns every bound name in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
