package emulator

import (
	"errors"
	"fmt"
	"io"
)

const RAMSize = 1 << 15

// Emulator executes Hack machine words
type Emulator struct {
	rom []uint16 // program memory
	ram []uint16 // data memory
	a   uint16   // address register
	d   uint16   // data register
	pc  int      // program counter

	out io.Writer // trace writer, nil disables tracing

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
}

type Option func(*Emulator)

// WithWriter traces every executed instruction to w
func WithWriter(w io.Writer) Option {
	return func(e *Emulator) { e.out = w }
}

// WithMaxSteps sets a maximum number of steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(e *Emulator) { e.maxSteps = n }
}

// NewEmulator creates a new Emulator instance with rom loaded at address 0
func NewEmulator(rom []uint16, opts ...Option) *Emulator {
	e := &Emulator{
		rom:      append([]uint16(nil), rom...),
		ram:      make([]uint16, RAMSize),
		maxSteps: 0, // 0 => unlimited
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// Load replaces the program, resetting state
func (e *Emulator) Load(rom []uint16) {
	e.rom = append([]uint16(nil), rom...)
	e.Reset()
}

// Reset clears registers, RAM and the step counter
func (e *Emulator) Reset() {
	e.a, e.d, e.pc = 0, 0, 0
	clear(e.ram)
	e.steps = 0
}

// Step executes a single instruction, returning (halted, error)
func (e *Emulator) Step() (bool, error) {
	if e.maxSteps > 0 && e.steps >= e.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := coreStep(e)
	if !halted {
		e.steps++
	}

	return halted, err
}

// Run executes until halt or error
func (e *Emulator) Run() error {
	for {
		halted, err := e.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// PC returns the program counter
func (e *Emulator) PC() int {
	return e.pc
}

// A returns the address register
func (e *Emulator) A() uint16 {
	return e.a
}

// D returns the data register
func (e *Emulator) D() uint16 {
	return e.d
}

// Steps returns the number of executed instructions
func (e *Emulator) Steps() int {
	return e.steps
}

// Peek reads a RAM cell
func (e *Emulator) Peek(addr int) (uint16, error) {
	if addr < 0 || addr >= len(e.ram) {
		return 0, fmt.Errorf("%w: %d", ErrAddressOutOfRange, addr)
	}

	return e.ram[addr], nil
}

// Poke writes a RAM cell, e.g. to preset inputs or the keyboard register
func (e *Emulator) Poke(addr int, v uint16) error {
	if addr < 0 || addr >= len(e.ram) {
		return fmt.Errorf("%w: %d", ErrAddressOutOfRange, addr)
	}

	e.ram[addr] = v
	return nil
}

var (
	ErrMaxStepsExceeded   = errors.New("maximum steps exceeded")
	ErrIllegalInstruction = errors.New("illegal instruction")
	ErrAddressOutOfRange  = errors.New("memory address out of range")
)
