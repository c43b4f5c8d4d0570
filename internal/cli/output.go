package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/textris/wordtrim/internal/logger"
	"github.com/textris/wordtrim/internal/modules/filter"
	"github.com/textris/wordtrim/internal/weights"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// OutputOptions configures CLI output behavior.
type OutputOptions struct {
	Verbose bool
	Quiet   bool
}

// PrintRunResult displays the result of a run. Summaries go to w, which
// must not be the stream carrying the word list.
func PrintRunResult(w io.Writer, result *wordlist.RunResult, err error, opts OutputOptions) {
	if result == nil {
		fmt.Fprintln(w, "✗ No run result available")
		return
	}

	if err != nil {
		fmt.Fprintln(w, "✗ Run failed")
		if result.Error != nil {
			if result.Error.Module != "" {
				fmt.Fprintf(w, "  Module: %s\n", result.Error.Module)
			}
			fmt.Fprintf(w, "  Error: %s\n", result.Error.Message)
			if opts.Verbose {
				fmt.Fprintf(w, "  Code: %s\n", result.Error.Code)
				fmt.Fprintf(w, "  Category: %s\n", result.Error.Category)
			}
		}
		return
	}

	if opts.Quiet {
		return
	}

	if result.DryRun {
		fmt.Fprintln(w, "✓ Dry run completed (nothing written)")
	} else {
		fmt.Fprintln(w, "✓ Word list curated")
	}
	fmt.Fprintf(w, "  Lines read: %d\n", result.LinesRead)
	fmt.Fprintf(w, "  Words kept: %d\n", result.WordsKept)
	if !result.DryRun {
		fmt.Fprintf(w, "  Words written: %d\n", result.WordsWritten)
	}
	if result.WordsRejected > 0 {
		fmt.Fprintf(w, "  Words rejected: %d\n", result.WordsRejected)
		for _, reason := range filter.Reasons {
			if n := result.Rejections[string(reason)]; n > 0 {
				fmt.Fprintf(w, "    %s: %d\n", reason, n)
			}
		}
	}
	if opts.Verbose {
		fmt.Fprintf(w, "  Duration: %s\n", logger.FormatDuration(result.Duration().Round(time.Millisecond)))
	}
}

// PrintVerdicts prints one line per checked word: the trimmed word and
// "kept" or the rejection reason.
func PrintVerdicts(w io.Writer, verdicts []filter.Verdict) {
	for _, v := range verdicts {
		if v.Kept() {
			fmt.Fprintf(w, "✓ %q kept\n", v.Word)
			continue
		}
		fmt.Fprintf(w, "✗ %q rejected: %s\n", v.Word, v.Reason)
	}
}

// PrintLookups prints dictionary membership for each word.
func PrintLookups(w io.Writer, words []string, found []bool) {
	for i, word := range words {
		if found[i] {
			fmt.Fprintf(w, "✓ %s\n", word)
		} else {
			fmt.Fprintf(w, "✗ %s (not in list)\n", word)
		}
	}
}

// PrintWeights prints a compact letter-to-bound summary of a weight table.
func PrintWeights(w io.Writer, table weights.Table) {
	for i, bound := range table {
		fmt.Fprintf(w, "  %c %5d  (%d)\n", 'a'+i, bound, table.Width(i))
	}
}
