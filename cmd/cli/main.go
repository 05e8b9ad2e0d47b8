package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/suitey/go-example/arith"
	"github.com/suitey/go-example/combined"
	"github.com/suitey/go-example/internal/cases"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "suitey-example",
		Short:   "Example arithmetic CLI fixture",
		Long:    `A minimal CLI over the example arithmetic library, used to exercise Suitey's binary detection.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(multiplyCmd())
	rootCmd.AddCommand(isEvenCmd())
	rootCmd.AddCommand(combinedAddCmd())
	rootCmd.AddCommand(evalCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print the sum of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arith.Add(a, b))
			return nil
		},
	}
}

func multiplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <a> <b>",
		Short: "Print the product of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arith.Multiply(a, b))
			return nil
		},
	}
}

func isEvenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-even <n>",
		Short: "Print whether an integer is even",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt32(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), arith.IsEven(n))
			return nil
		},
	}
}

func combinedAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combined-add <a> <b>",
		Short: "Print the sum via the combined fixture package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), combined.CombinedAdd(a, b))
			return nil
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <cases.yaml>",
		Short: "Run a YAML case file and report pass/fail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cases.Load(args[0])
			if err != nil {
				return err
			}

			failed := 0
			for _, c := range f.Cases {
				if err := cases.Run(c); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", c.Name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", c.Name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d cases, %d failed\n", len(f.Cases), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(f.Cases))
			}
			return nil
		},
	}
}

func parseOperands(args []string) (int32, int32, error) {
	a, err := parseInt32(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseInt32(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int32(n), nil
}
