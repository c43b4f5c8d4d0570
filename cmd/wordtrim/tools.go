package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/textris/wordtrim/internal/cli"
	"github.com/textris/wordtrim/internal/dictionary"
	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/logger"
	"github.com/textris/wordtrim/internal/modules/filter"
	"github.com/textris/wordtrim/internal/weights"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Explain whether words pass the filter",
		Long: `Print, for each argument, whether it would be kept in the curated list
and, if not, the first rule it breaks: too_short, too_long, non_letter or
uppercase.

Examples:
  wordtrim check cat Cat ab abcdef a1c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts := make([]filter.Verdict, len(args))
			for i, word := range args {
				verdicts[i] = filter.Evaluate(word)
			}
			cli.PrintVerdicts(cmd.OutOrStdout(), verdicts)
			return nil
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <list-file> <word>...",
		Short: "Look words up in a curated list",
		Long: `Load a curated word list and report which of the given words it contains.
Matching is exact.

Examples:
  wordtrim lookup Twordlist.txt cat fox`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(cmd, args[0])
			if err != nil {
				return err
			}

			words := args[1:]
			found := make([]bool, len(words))
			for i, word := range words {
				found[i] = dict.Contains(word)
			}
			cli.PrintLookups(cmd.OutOrStdout(), words, found)

			if opts.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %d words loaded (sorted: %t)\n", dict.Len(), dict.Sorted())
			}
			return nil
		},
	}
}

func newWeightsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights <list-file>",
		Short: "Compute cumulative letter weights",
		Long: `Count the letters a-z in a curated word list and print 26 cumulative
bounds over 0..9999, one per line. A number drawn uniformly from 0..9999
maps to the first letter whose bound is at least that number.

Examples:
  wordtrim weights Twordlist.txt
  wordtrim weights Twordlist.txt -o weightsCumulative.txt
  wordtrim weights Twordlist.txt --verify weightsCumulative.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(cmd, args[0])
			if err != nil {
				return err
			}

			table, err := weights.Compute(dict.Words())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
				return &exitError{code: ExitRuntimeError, err: err}
			}

			if opts.weightsVerify != "" {
				return verifyWeightsFile(cmd, opts, table)
			}

			if opts.weightsOut == "" {
				if err := weights.Write(cmd.OutOrStdout(), table); err != nil {
					return &exitError{code: ExitRuntimeError, err: err}
				}
				return nil
			}

			if err := writeWeightsFile(opts.weightsOut, table); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
				return &exitError{code: ExitRuntimeError, err: err}
			}
			if !opts.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Weights written to %s\n", opts.weightsOut)
				if opts.verbose {
					cli.PrintWeights(cmd.OutOrStdout(), table)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.weightsOut, "output", "o", "", "Write the table to this file instead of stdout")
	cmd.Flags().StringVar(&opts.weightsVerify, "verify", "", "Compare the computed table with an existing weights file")
	cmd.MarkFlagsMutuallyExclusive("output", "verify")
	return cmd
}

func loadDictionary(cmd *cobra.Command, path string) (*dictionary.Dictionary, error) {
	dict, err := dictionary.Load(cmd.Context(), path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ Failed to load word list: %v\n", err)
		return nil, &exitError{code: exitCodeFor(err), err: err}
	}
	return dict, nil
}

func writeWeightsFile(path string, table weights.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errhandling.NewIOError(path, "creating weights file", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errhandling.NewIOError(path, "closing weights file", cerr)
		}
	}()

	if err := weights.Write(f, table); err != nil {
		return errhandling.NewIOError(path, "writing weights file", err)
	}
	logger.Debug("weights written", slog.String("path", path))
	return nil
}

// verifyWeightsFile checks that the weights file named by --verify holds
// exactly the table computed from the word list.
func verifyWeightsFile(cmd *cobra.Command, opts *options, want weights.Table) error {
	path := opts.weightsVerify
	got, err := readWeightsFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
		return &exitError{code: exitCodeFor(err), err: err}
	}

	for i := range want {
		if got[i] != want[i] {
			err := fmt.Errorf("%s is stale: bound for %q is %d, want %d", path, rune('a'+i), got[i], want[i])
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
			return &exitError{code: ExitValidationError, err: err}
		}
	}

	if !opts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s matches the word list\n", path)
	}
	return nil
}

func readWeightsFile(path string) (weights.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return weights.Table{}, errhandling.NewNotFoundError(path, err)
		}
		return weights.Table{}, errhandling.NewIOError(path, "opening weights file", err)
	}
	defer f.Close()

	table, err := weights.Read(f)
	if err != nil {
		if errors.Is(err, weights.ErrInvalidTable) {
			return weights.Table{}, errhandling.NewConfigError(fmt.Sprintf("%s: %v", path, err))
		}
		return weights.Table{}, errhandling.NewIOError(path, "reading weights file", err)
	}
	return table, nil
}
