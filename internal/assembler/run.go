package assembler

import (
	"fmt"
	"hackasm/pkg/color"
	"hackasm/pkg/emulator"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type Runner struct {
	ProgramFile   string    // .hack program, or .asm source assembled in memory
	ConstantsFile string    // Optional JSON tables used when assembling
	MaxSteps      int       // Step limit, 0 for unlimited
	Dump          int       // Number of RAM cells printed after the run
	Trace         bool      // Print every executed instruction
	Stdout        io.Writer // os.Stdout if nil
}

// Run loads the program into the emulator and executes it until it halts
func (r *Runner) Run() error {
	w := r.Stdout
	if w == nil {
		w = os.Stdout
	}

	rom, err := r.load()
	if err != nil {
		return err
	}

	opts := []emulator.Option{emulator.WithMaxSteps(r.MaxSteps)}
	if r.Trace {
		opts = append(opts, emulator.WithWriter(w))
	}

	e := emulator.NewEmulator(rom, opts...)
	if err := e.Run(); err != nil {
		return fmt.Errorf("execution failed after %d steps: %w", e.Steps(), err)
	}
	log.Info("Program halted", "steps", e.Steps(), "pc", e.PC(), "a", e.A(), "d", int16(e.D()))

	if r.Dump > 0 {
		fmt.Fprintln(w, color.GreenText("=== RAM ==="))
		for addr := 0; addr < r.Dump && addr < emulator.RAMSize; addr++ {
			v, _ := e.Peek(addr)
			fmt.Fprintf(w, "%s %d\n", color.CyanText(fmt.Sprintf("%5d", addr)), int16(v))
		}
	}

	return nil
}

// load reads a .hack file, or assembles an .asm file without writing output
func (r *Runner) load() ([]uint16, error) {
	f, err := os.Open(r.ProgramFile)
	if err != nil {
		return nil, &ResourceError{Op: "read", Path: r.ProgramFile, Err: err}
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(r.ProgramFile), ".asm") {
		rom, err := emulator.ReadHack(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.ProgramFile, err)
		}
		return rom, nil
	}

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, &ResourceError{Op: "read", Path: r.ProgramFile, Err: err}
	}

	constants, err := loadConstants(r.ConstantsFile)
	if err != nil {
		return nil, err
	}

	res, err := Translate(string(src), constants)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.ProgramFile, err)
	}

	return emulator.FromWords(res.Words)
}
