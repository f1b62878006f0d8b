package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psilLang/advent/pkg/boxid"
	"github.com/psilLang/advent/pkg/fabric"
	"github.com/psilLang/advent/pkg/frequency"
	"github.com/psilLang/advent/pkg/fuel"
	"github.com/psilLang/advent/pkg/guard"
	"github.com/psilLang/advent/pkg/parser"
)

func (a *app) fuelCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "fuel [file]",
		Short: "Total fuel for the listed module masses (2019 day 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			masses, err := parser.ParseMasses(args[0], source)
			if err != nil {
				return err
			}
			a.logger.Debug("masses parsed", zap.Int("modules", len(masses)))

			total := fuel.Total(masses)
			if recursive {
				total = fuel.TotalRecursive(masses)
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include fuel for the fuel")
	return cmd
}

func (a *app) frequencyCmd() *cobra.Command {
	var repeat bool

	cmd := &cobra.Command{
		Use:   "frequency [file]",
		Short: "Resulting frequency after all changes (2018 day 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			changes, err := parser.ParseChanges(args[0], source)
			if err != nil {
				return err
			}

			if !repeat {
				fmt.Fprintln(cmd.OutOrStdout(), frequency.Sum(changes))
				return nil
			}
			f, err := frequency.FirstRepeat(changes, a.cfg.Frequency.MaxPasses)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&repeat, "repeat", false, "Print the first frequency reached twice instead")
	return cmd
}

func (a *app) boxidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxid",
		Short: "Box ID checksum and prototype search (2018 day 2)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "checksum [file]",
		Short: "Doubled-letter count times tripled-letter count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), boxid.Checksum(lines(source)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search [file]",
		Short: "Common letters of the two IDs that differ by one character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			x, y, common, err := boxid.FindPrototype(lines(source))
			if err != nil {
				return err
			}
			a.logger.Info("prototype boxes found", zap.String("a", x), zap.String("b", y))
			fmt.Fprintln(cmd.OutOrStdout(), common)
			return nil
		},
	})

	return cmd
}

func (a *app) fabricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fabric [file]",
		Short: "Overlapping square inches and the intact claim (2018 day 3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			claims, err := parser.ParseClaims(args[0], source)
			if err != nil {
				return err
			}

			f := fabric.Build(claims)
			a.logger.Debug("fabric populated", zap.Int("claims", len(claims)), zap.Int("inches", f.Count()))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "overlapping: %d\n", f.Overlapping())

			intact, err := fabric.Intact(claims)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "intact: %d\n", intact.ID)
			return nil
		},
	}
}

func (a *app) guardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guard [file]",
		Short: "Sleepiest guard and minute by both strategies (2018 day 4)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			events, err := parser.ParseGuardLog(args[0], source)
			if err != nil {
				return err
			}
			report, err := guard.Analyze(events)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, strategy := range []func() (int, int, error){report.Strategy1, report.Strategy2} {
				id, minute, err := strategy()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "strategy %d: guard #%d minute %d answer %d\n", i+1, id, minute, id*minute)
			}
			return nil
		},
	}
}
