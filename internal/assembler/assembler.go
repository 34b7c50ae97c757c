package assembler

import (
	"errors"
	"fmt"
	"hackasm/pkg/color"
	"hackasm/pkg/config"
	"hackasm/pkg/lexer"
	"hackasm/pkg/parser"
	"hackasm/pkg/parser/codegen"
	"hackasm/pkg/parser/codegen/output"
	"hackasm/pkg/symbols"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
)

type Assembler struct {
	Verbose       bool      // Print listing and symbol table
	NoColor       bool      // Disable colored output
	Format        string    // Output format ("hack" or "bin")
	ConstantsFile string    // Optional JSON file replacing the built-in tables
	SourceFile    string    // Path to the source file
	OutputFile    string    // Path to the output file, derived from SourceFile if empty
	Stdout        io.Writer // Destination of the verbose listing, os.Stdout if nil
}

// Result is the outcome of translating one source text
type Result struct {
	Lines        []lexer.Line
	Instructions []parser.Instruction
	Words        []codegen.Word
	Symbols      *symbols.Table
}

// Assemble translates SourceFile and commits the output only when every
// instruction was translated.
func (opts *Assembler) Assemble() error {
	log.Info("Processing file", "file", opts.SourceFile)

	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	constants, err := loadConstants(opts.ConstantsFile)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return &ResourceError{Op: "read", Path: opts.SourceFile, Err: err}
	}

	res, err := Translate(string(input), constants)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.SourceFile, err)
	}

	if opts.Verbose {
		opts.printListing(res)
	}

	dest := opts.OutputFile
	if dest == "" {
		dest = OutputPath(opts.SourceFile, format)
	}

	out, err := output.New(format, res.Words, dest)
	if err != nil {
		return err
	}

	if err := out.Generate(); err != nil {
		return fmt.Errorf("output generation failed: %w", err)
	}

	if err := out.Build(); err != nil {
		return &ResourceError{Op: "write", Path: dest, Err: err}
	}

	log.Info("Wrote output", "file", dest, "words", len(res.Words))
	return nil
}

// Translate runs both passes and the encoder over source text
func Translate(src string, constants *config.Constants) (*Result, error) {
	lines := lexer.Lex(src)
	table := symbols.New(constants.Symbols)

	p := parser.NewParser(lines, table)
	if err := p.Parse(); err != nil {
		return nil, err
	}

	words, err := codegen.NewEncoder(constants).EncodeAll(p.Program())
	if err != nil {
		return nil, err
	}

	return &Result{
		Lines:        lines,
		Instructions: p.Program(),
		Words:        words,
		Symbols:      table,
	}, nil
}

// loadConstants reports unreadable files as ResourceError and invalid
// contents as they are
func loadConstants(path string) (*config.Constants, error) {
	c, err := config.Load(path)
	if err == nil {
		return c, nil
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return nil, &ResourceError{Op: "load constants", Path: path, Err: err}
	}

	return nil, err
}

// OutputPath replaces the extension of source with the one of format
func OutputPath(source string, format output.Format) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + format.Extension()
}

// printListing shows each instruction next to its word, then the user symbols
func (opts *Assembler) printListing(res *Result) {
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, color.GreenText("=== Listing ==="))
	if len(res.Words) == 0 {
		fmt.Fprintln(w, color.GrayText("No code generated."))
	}

	for i, in := range res.Instructions {
		fmt.Fprintf(w, "%s %s  %-24s %s\n",
			color.CyanText(fmt.Sprintf("%5d", i)),
			color.GrayText(fmt.Sprintf("%-7s", in.Position())),
			in,
			color.Word(string(res.Words[i])))
	}

	user := make(map[string]int)
	for _, name := range res.Symbols.Names() {
		if !res.Symbols.IsPredefined(name) {
			user[name], _ = res.Symbols.Resolve(name)
		}
	}

	fmt.Fprintln(w, color.GreenText("\n=== Symbols ==="))
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(!opts.NoColor && color.IsColorEnabled())
	printer.Println(user)
}
