package emulator

import (
	"fmt"
)

const (
	computeMask = 0xE000 // the three opcode bits of a compute word
	aBit        = 1 << 12

	destA = 1 << 5
	destD = 1 << 4
	destM = 1 << 3

	jumpLT = 1 << 2
	jumpEQ = 1 << 1
	jumpGT = 1 << 0
)

// coreStep fetches and executes the instruction at PC.
// It halts when PC leaves ROM or the program enters its final tight loop.
func coreStep(e *Emulator) (bool, error) {
	pc := e.pc
	if pc < 0 || pc >= len(e.rom) {
		return true, nil
	}

	in := e.rom[pc]
	e.trace(pc, in)

	if in&0x8000 == 0 {
		e.a = in
		e.pc = pc + 1
		return false, nil
	}

	if in&computeMask != computeMask {
		return false, fmt.Errorf("%w %016b at %d", ErrIllegalInstruction, in, pc)
	}

	y := e.a
	if in&aBit != 0 {
		v, err := e.Peek(int(e.a))
		if err != nil {
			return false, fmt.Errorf("at %d: %w", pc, err)
		}
		y = v
	}

	out := alu(uint16(in>>6)&0x3F, e.d, y)
	target := e.a

	if in&destM != 0 {
		if err := e.Poke(int(e.a), out); err != nil {
			return false, fmt.Errorf("at %d: %w", pc, err)
		}
	}
	if in&destA != 0 {
		e.a = out
	}
	if in&destD != 0 {
		e.d = out
	}

	if !jumps(in, int16(out)) {
		e.pc = pc + 1
		return false, nil
	}

	if e.isEndLoop(pc, in, target) {
		return true, nil
	}

	e.pc = int(target)
	return false, nil
}

// alu evaluates the six control bits zx nx zy ny f no over x=D and y
func alu(c uint16, x, y uint16) uint16 {
	if c&0x20 != 0 {
		x = 0
	}
	if c&0x10 != 0 {
		x = ^x
	}
	if c&0x08 != 0 {
		y = 0
	}
	if c&0x04 != 0 {
		y = ^y
	}

	var out uint16
	if c&0x02 != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if c&0x01 != 0 {
		out = ^out
	}

	return out
}

// jumps checks the jump bits against the ALU output
func jumps(in uint16, out int16) bool {
	switch {
	case out < 0:
		return in&jumpLT != 0
	case out == 0:
		return in&jumpEQ != 0
	default:
		return in&jumpGT != 0
	}
}

// isEndLoop detects "(END) @END 0;JMP": a jump without side effects back
// to the address instruction that loaded its own target
func (e *Emulator) isEndLoop(pc int, in, target uint16) bool {
	if in&(destA|destD|destM) != 0 {
		return false
	}

	return int(target) == pc-1 && e.rom[pc-1] == target
}

func (e *Emulator) trace(pc int, in uint16) {
	if e.out == nil {
		return
	}

	fmt.Fprintf(e.out, "%5d  %016b  A=%d D=%d\n", pc, in, e.a, int16(e.d))
}
