package codegen

import (
	"fmt"
	"hackasm/pkg/color"
	"hackasm/pkg/lexer"
)

// UndefinedMnemonicError reports a comp, dest or jump mnemonic missing from its table
type UndefinedMnemonicError struct {
	Pos      lexer.Position
	Field    string // "comp", "dest" or "jump"
	Mnemonic string
}

func (e *UndefinedMnemonicError) Error() string {
	msg := color.RedText("Undefined "+e.Field+" mnemonic") + " `" + color.BlueText(e.Mnemonic) + "`"
	msg += " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", e.Pos.Line, e.Pos.Column))
	return msg
}

func newUndefinedMnemonicError(pos lexer.Position, field, mnemonic string) error {
	return &UndefinedMnemonicError{Pos: pos, Field: field, Mnemonic: mnemonic}
}
