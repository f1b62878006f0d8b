package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psilLang/advent/pkg/intcode"
	"github.com/psilLang/advent/pkg/parser"
)

type programFlags struct {
	asm bool
}

func (f *programFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.asm, "asm", false, "Input is Intcode assembly instead of comma separated integers")
}

// load reads and parses (or assembles) the program in filename.
func (f *programFlags) load(cmd *cobra.Command, filename string) (intcode.Tape, error) {
	source, err := readInput(cmd, filename)
	if err != nil {
		return nil, err
	}
	if f.asm {
		tape, err := intcode.NewAssembler().Assemble(source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return tape, nil
	}
	return parser.ParseProgram(filename, source)
}

func (a *app) intcodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intcode",
		Short: "Run, inspect and search Intcode programs (2019 day 2)",
	}
	cmd.AddCommand(a.intcodeRunCmd(), a.intcodeDisasmCmd(), a.intcodeSearchCmd())
	return cmd
}

func (a *app) intcodeRunCmd() *cobra.Command {
	var (
		prog     programFlags
		patches  map[string]int
		noPatch  bool
		maxSteps int
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program and print the value left at address 0",
		Long: `Runs an Intcode program to completion.

By default the patch from aoc.toml is applied first (1=12, 2=2: the
"1202 program alarm" state). --patch adds or replaces entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := prog.load(cmd, args[0])
			if err != nil {
				return err
			}

			patch := intcode.Patch{}
			if !noPatch {
				patch = a.cfg.PatchMap()
			}
			for k, v := range patches {
				addr, err := strconv.Atoi(k)
				if err != nil {
					return fmt.Errorf("--patch: invalid address %q", k)
				}
				patch[addr] = v
			}

			if !cmd.Flags().Changed("max-steps") {
				maxSteps = a.cfg.Intcode.MaxSteps
			}

			vm := intcode.New(tape, intcode.WithMaxSteps(maxSteps), intcode.WithLogger(a.logger))
			if err := vm.Patch(patch); err != nil {
				return err
			}
			a.logger.Info("running intcode", zap.String("file", args[0]), zap.Int("cells", len(tape)), zap.Int("patches", len(patch)))

			if err := vm.RunContext(cmd.Context()); err != nil {
				return fmt.Errorf("runtime error after %d steps: %w", vm.Steps, err)
			}

			out := cmd.OutOrStdout()
			if dump {
				fmt.Fprintln(out, formatTape(vm.Tape))
			}
			fmt.Fprintln(out, vm.Result())
			return nil
		},
	}

	prog.register(cmd)
	cmd.Flags().StringToIntVarP(&patches, "patch", "p", nil, "Overwrite address=value before running (repeatable)")
	cmd.Flags().BoolVar(&noPatch, "no-patch", false, "Ignore the configured patch")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Instruction budget (0 = unlimited; default from config)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the final tape before the result")
	return cmd
}

func (a *app) intcodeDisasmCmd() *cobra.Command {
	var prog programFlags

	cmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Print a program listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := prog.load(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), intcode.Disassemble(tape))
			return nil
		},
	}

	prog.register(cmd)
	return cmd
}

func (a *app) intcodeSearchCmd() *cobra.Command {
	var (
		prog   programFlags
		target int
	)

	cmd := &cobra.Command{
		Use:   "search [file]",
		Short: "Find the noun and verb that leave the target at address 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := prog.load(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("target") {
				target = a.cfg.Search.Target
			}

			opts := a.cfg.SearchOptions()
			opts.Logger = a.logger
			noun, verb, err := intcode.Search(cmd.Context(), tape, target, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "noun: %d\nverb: %d\nanswer: %d\n", noun, verb, 100*noun+verb)
			return nil
		},
	}

	prog.register(cmd)
	cmd.Flags().IntVar(&target, "target", 0, "Value wanted at address 0 (default from config)")
	return cmd
}

func formatTape(t intcode.Tape) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
