// Command backronym expands acronyms into backronyms from the terminal.
//
// Usage:
//
//	backronym expand NASA --count 3 [--seed 42]
//	backronym stats
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	backronym "github.com/wordworks/backronym"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "backronym",
		Short:         "Generate backronyms from part-of-speech templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "data", "path to the data directory")
	root.AddCommand(newExpandCmd(&dataDir), newStatsCmd(&dataDir))
	return root
}

func newExpandCmd(dataDir *string) *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "expand ACRONYM",
		Short: "Expand an acronym into one or more backronyms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []backronym.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, backronym.WithSeed(seed))
			}
			gen, err := backronym.New(*dataDir, opts...)
			if err != nil {
				return err
			}
			phrases, err := gen.ExpandN(args[0], count)
			if err != nil {
				return err
			}
			for _, p := range phrases {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of phrases to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic output")
	return cmd
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print word and template counts for the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := backronym.New(*dataDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "words:               %d\n", gen.WordCount())
			fmt.Fprintf(cmd.OutOrStdout(), "templates:           %d\n", gen.TemplateCount())
			fmt.Fprintf(cmd.OutOrStdout(), "max template length: %d\n", gen.MaxTemplateLength())
			return nil
		},
	}
}
