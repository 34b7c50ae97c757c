package main

import (
	"fmt"
	"hackasm/internal/assembler"
	"hackasm/internal/logger"
	"hackasm/pkg/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Main entry point for the Hack assembler.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := assembler.Assembler{}

	rootCmd := &cobra.Command{
		Use:   "hackasm [flags] <file.asm>",
		Short: "Assembler for the Hack 16-bit computer",
		Long: `Hackasm translates Hack assembly into Hack machine code.

The output is written next to the source file with the extension replaced
by .hack (or .bin for the packed binary format). Nothing is written when
the source contains an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(options.Verbose, options.NoColor)
			if options.NoColor {
				color.EnableColor(false)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.SourceFile = args[0]
			return report("Assembly failed", options.Assemble())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&options.NoColor, "no-color", "n", false, "No color")
	flags.StringVarP(&options.ConstantsFile, "constants", "c", "", "JSON file replacing the built-in mnemonic and symbol tables")

	rootCmd.Flags().StringVarP(&options.OutputFile, "output", "o", "", "Output file (default: source name with the format's extension)")
	rootCmd.Flags().StringVarP(&options.Format, "format", "f", "hack", "Output format (hack, bin)")

	rootCmd.AddCommand(newRunCmd(&options))

	return rootCmd
}

func newRunCmd(options *assembler.Assembler) *cobra.Command {
	runner := assembler.Runner{}

	runCmd := &cobra.Command{
		Use:   "run [flags] <file.hack|file.asm>",
		Short: "Execute a Hack program on the emulator",
		Long: `Run loads a .hack program (or assembles an .asm source in memory)
and executes it until the program counter leaves ROM or the program
reaches its final "@END 0;JMP" loop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.ProgramFile = args[0]
			runner.ConstantsFile = options.ConstantsFile
			return report("Run failed", runner.Run())
		},
	}

	runCmd.Flags().IntVar(&runner.MaxSteps, "max-steps", 1_000_000, "Maximum number of instructions to execute (0 for unlimited)")
	runCmd.Flags().IntVar(&runner.Dump, "dump", 16, "Number of RAM cells to print after the run")
	runCmd.Flags().BoolVarP(&runner.Trace, "trace", "t", false, "Print every executed instruction")

	return runCmd
}

// report prints a failed run's error the way the user sees it
func report(title string, err error) error {
	if err == nil {
		return nil
	}

	fmt.Fprintln(os.Stderr, color.BrightRedText("=== "+title+" ==="))
	log.Error(title, "error", err)

	return err
}
