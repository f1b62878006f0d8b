// aoc runs the Advent of Code solvers and the Intcode computer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/psilLang/advent/pkg/config"
)

// app carries state shared by every subcommand.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solvers and an Intcode computer",
		Long: `aoc solves the 2018 and 2019 puzzles it knows about.

Each subcommand reads one input file (or "-" for stdin) and prints its answer.
Run limits and Intcode patches come from aoc.toml; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (traces every Intcode instruction)")
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to aoc.toml")

	root.AddCommand(
		a.intcodeCmd(),
		a.fuelCmd(),
		a.frequencyCmd(),
		a.boxidCmd(),
		a.fabricCmd(),
		a.guardCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if cmd.Flags().Changed("config") {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadOrDefault(a.configPath)
	}
	if err != nil {
		return err
	}

	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Sampling = nil
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration loaded", zap.String("path", a.configPath), zap.String("command", cmd.CommandPath()))
	return nil
}

// readInput returns the contents of filename, or stdin for "-".
func readInput(cmd *cobra.Command, filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(data), nil
}

// lines splits input into trimmed, non-empty lines.
func lines(source string) []string {
	var out []string
	for _, line := range strings.Split(source, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
