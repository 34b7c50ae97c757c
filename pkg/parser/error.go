package parser

import (
	"fmt"
	"hackasm/pkg/color"
	"hackasm/pkg/lexer"
)

// SyntaxError reports a malformed line
type SyntaxError struct {
	Pos    lexer.Position
	Text   string // offending line
	Reason string
}

func (e *SyntaxError) Error() string {
	msg := color.RedText(e.Reason) + " `" + color.BlueText(e.Text) + "`"
	msg += " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
	return msg
}

// AddressRangeError reports a value that does not fit the 15-bit address field
type AddressRangeError struct {
	Pos     lexer.Position
	Operand string
	Value   int
}

func (e *AddressRangeError) Error() string {
	msg := color.RedText("Address out of range") + " `" + color.BlueText(e.Operand) + "`"
	if e.Value >= 0 {
		msg += fmt.Sprintf(" (%d > %d)", e.Value, maxAddress)
	}
	msg += " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
	return msg
}

func newSyntaxError(line lexer.Line, reason string) error {
	return &SyntaxError{Pos: line.Pos, Text: line.Text, Reason: reason}
}

func newAddressRangeError(line lexer.Line, operand string, value int) error {
	return &AddressRangeError{Pos: line.Pos, Operand: operand, Value: value}
}
