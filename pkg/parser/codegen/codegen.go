package codegen

import (
	"fmt"
	"hackasm/pkg/config"
	"hackasm/pkg/parser"
	"hackasm/pkg/symbols"

	"github.com/charmbracelet/log"
)

const computePrefix = "111"

type Encoder struct {
	dest  map[string]string // dest mnemonic -> 3-bit code
	jump  map[string]string // jump mnemonic -> 3-bit code
	comp0 map[string]string // comp mnemonic operating on A -> 6-bit code
	comp1 map[string]string // comp mnemonic operating on M -> 6-bit code
}

// NewEncoder creates an encoder over validated constants
func NewEncoder(c *config.Constants) *Encoder {
	return &Encoder{
		dest:  c.Dest,
		jump:  c.Jump,
		comp0: c.Comp0,
		comp1: c.Comp1,
	}
}

// Encode translates one decoded instruction into a machine word
func (e *Encoder) Encode(in parser.Instruction) (Word, error) {
	switch in := in.(type) {
	case *parser.AddressInstruction:
		return e.encodeAddress(in)
	case *parser.ComputeInstruction:
		return e.encodeCompute(in)
	}

	return "", fmt.Errorf("cannot encode instruction of type %T", in)
}

// EncodeAll encodes a program, word i corresponding to instruction i
func (e *Encoder) EncodeAll(pb []parser.Instruction) ([]Word, error) {
	words := make([]Word, 0, len(pb))
	for _, in := range pb {
		w, err := e.Encode(in)
		if err != nil {
			return nil, err
		}

		log.Debug("Encoded", "pos", in.Position(), "instruction", in, "word", w)
		words = append(words, w)
	}

	return words, nil
}

// encodeAddress emits '0' followed by the 15-bit value
func (e *Encoder) encodeAddress(in *parser.AddressInstruction) (Word, error) {
	if in.Value < 0 || in.Value > symbols.MaxAddress {
		return "", &parser.AddressRangeError{Pos: in.Pos, Operand: in.Operand, Value: in.Value}
	}

	return Word(fmt.Sprintf("0%015b", in.Value)), nil
}

// encodeCompute emits "111" a cccccc ddd jjj
func (e *Encoder) encodeCompute(in *parser.ComputeInstruction) (Word, error) {
	a, comp, err := e.lookupComp(in)
	if err != nil {
		return "", err
	}

	dest, err := lookupOptional(e.dest, in, "dest", in.Dest)
	if err != nil {
		return "", err
	}

	jump, err := lookupOptional(e.jump, in, "jump", in.Jump)
	if err != nil {
		return "", err
	}

	return Word(computePrefix + a + comp + dest + jump), nil
}

// lookupComp finds the comp code and the a-bit implied by the table it came from
func (e *Encoder) lookupComp(in *parser.ComputeInstruction) (string, string, error) {
	if code, ok := e.comp0[in.Comp]; ok {
		return "0", code, nil
	}
	if code, ok := e.comp1[in.Comp]; ok {
		return "1", code, nil
	}

	return "", "", newUndefinedMnemonicError(in.Pos, "comp", in.Comp)
}

// lookupOptional maps an absent field to the null entry. The null key
// itself is not a source mnemonic.
func lookupOptional(table map[string]string, in *parser.ComputeInstruction, field, mnemonic string) (string, error) {
	if mnemonic == "" {
		mnemonic = config.NullMnemonic
	} else if mnemonic == config.NullMnemonic {
		return "", newUndefinedMnemonicError(in.Pos, field, mnemonic)
	}

	code, ok := table[mnemonic]
	if !ok {
		return "", newUndefinedMnemonicError(in.Pos, field, mnemonic)
	}

	return code, nil
}
