package parser

import (
	"hackasm/pkg/lexer"
	"hackasm/pkg/symbols"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	jumpSeparator   = ";"
	assignSeparator = "="
	maxAddress      = symbols.MaxAddress
)

type Parser struct {
	lines []lexer.Line   // normalized source, shared read-only by both passes
	table *symbols.Table // symbol table populated by the passes
	pb    []Instruction  // decoded program
}

// NewParser creates a new parser instance
func NewParser(lines []lexer.Line, table *symbols.Table) *Parser {
	return &Parser{
		lines: lines,
		table: table,
	}
}

// Parse runs the label pass to completion and then decodes every instruction
func (p *Parser) Parse() error {
	if err := ResolveLabels(p.lines, p.table); err != nil {
		return err
	}

	pb, err := Decode(p.lines, p.table)
	if err != nil {
		return err
	}

	p.pb = pb
	return nil
}

// Program returns the decoded instructions in source order
func (p *Parser) Program() []Instruction {
	return p.pb
}

// ResolveLabels binds every "(NAME)" to the index of the next instruction
func ResolveLabels(lines []lexer.Line, table *symbols.Table) error {
	counter := 0

	for _, line := range lines {
		if !line.IsLabel() {
			counter++
			continue
		}

		name, _ := lexer.LabelName(line.Text)
		if name == "" {
			return newSyntaxError(line, "Missing label name")
		}
		if !lexer.IsSymbol(name) {
			return newSyntaxError(line, "Invalid label name")
		}
		if counter > maxAddress {
			return newAddressRangeError(line, name, counter)
		}

		if table.Bind(name, counter) {
			log.Debug("Label bound", "label", name, "address", counter, "pos", line.Pos)
		} else {
			log.Warn("Symbol already bound, declaration ignored", "label", name, "pos", line.Pos)
		}
	}

	return nil
}

// Decode classifies and resolves every non-label line. Labels must have
// been resolved beforehand so forward references work.
func Decode(lines []lexer.Line, table *symbols.Table) ([]Instruction, error) {
	pb := make([]Instruction, 0, len(lines))

	for _, line := range lines {
		var (
			in  Instruction
			err error
		)

		switch line.Kind {
		case lexer.LABEL:
			continue
		case lexer.ADDRESS:
			in, err = decodeAddress(line, table)
		default:
			in, err = decodeCompute(line)
		}

		if err != nil {
			return nil, err
		}

		pb = append(pb, in)
	}

	return pb, nil
}

// decodeAddress resolves the operand of "@operand"
func decodeAddress(line lexer.Line, table *symbols.Table) (*AddressInstruction, error) {
	operand := strings.TrimSpace(line.Text[1:])
	if operand == "" {
		return nil, newSyntaxError(line, "Missing address operand")
	}

	if lexer.IsNumber(operand) {
		value, err := strconv.Atoi(operand)
		if err != nil || value > maxAddress {
			return nil, newAddressRangeError(line, operand, clampOverflow(value, err))
		}
		return &AddressInstruction{Operand: operand, Value: value, Pos: line.Pos}, nil
	}

	if !lexer.IsSymbol(operand) {
		return nil, newSyntaxError(line, "Invalid symbol")
	}

	if value, ok := table.Resolve(operand); ok {
		return &AddressInstruction{Operand: operand, Value: value, Pos: line.Pos}, nil
	}

	value, err := table.Allocate(operand)
	if err != nil {
		return nil, newAddressRangeError(line, operand, table.NextFree())
	}
	log.Debug("Variable allocated", "variable", operand, "address", value, "pos", line.Pos)

	return &AddressInstruction{Operand: operand, Value: value, Pos: line.Pos}, nil
}

// decodeCompute splits "dest=comp;jump" into its fields
func decodeCompute(line lexer.Line) (*ComputeInstruction, error) {
	text := line.Text

	if strings.Count(text, jumpSeparator) > 1 {
		return nil, newSyntaxError(line, "More than one jump separator")
	}

	body, jump, hasJump := strings.Cut(text, jumpSeparator)
	jump = strings.TrimSpace(jump)
	if hasJump && jump == "" {
		return nil, newSyntaxError(line, "Missing jump mnemonic")
	}

	if strings.Count(body, assignSeparator) > 1 {
		return nil, newSyntaxError(line, "More than one assignment separator")
	}

	dest, comp, hasDest := strings.Cut(body, assignSeparator)
	if !hasDest {
		dest, comp = "", dest
	}

	dest = strings.TrimSpace(dest)
	comp = strings.TrimSpace(comp)

	if hasDest && dest == "" {
		return nil, newSyntaxError(line, "Missing destination")
	}
	if comp == "" {
		return nil, newSyntaxError(line, "Empty comp field")
	}

	return &ComputeInstruction{Dest: dest, Comp: comp, Jump: jump, Pos: line.Pos}, nil
}

// clampOverflow reports -1 when the literal overflowed int
func clampOverflow(value int, err error) int {
	if err != nil {
		return -1
	}

	return value
}
