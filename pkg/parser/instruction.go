package parser

import (
	"fmt"
	"hackasm/pkg/lexer"
)

// Instruction is a decoded, non-label source line. The only
// implementations are *AddressInstruction and *ComputeInstruction.
type Instruction interface {
	Position() lexer.Position
	String() string
	instruction()
}

// AddressInstruction is "@operand" with the operand already resolved
type AddressInstruction struct {
	Operand string // literal or symbol as written
	Value   int    // resolved address, 0..32767
	Pos     lexer.Position
}

// ComputeInstruction is "dest=comp;jump". Absent dest and jump are empty.
type ComputeInstruction struct {
	Dest string
	Comp string
	Jump string
	Pos  lexer.Position
}

func (*AddressInstruction) instruction() {}
func (*ComputeInstruction) instruction() {}

func (a *AddressInstruction) Position() lexer.Position { return a.Pos }
func (c *ComputeInstruction) Position() lexer.Position { return c.Pos }

// String returns a string representation of the instruction
func (a *AddressInstruction) String() string {
	if a.Operand == fmt.Sprint(a.Value) {
		return fmt.Sprintf("@%d", a.Value)
	}

	return fmt.Sprintf("@%s (%d)", a.Operand, a.Value)
}

// String returns a string representation of the instruction
func (c *ComputeInstruction) String() string {
	s := c.Comp
	if c.Dest != "" {
		s = c.Dest + "=" + s
	}
	if c.Jump != "" {
		s += ";" + c.Jump
	}

	return s
}
