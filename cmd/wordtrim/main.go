// Package main provides the CLI entry point for wordtrim.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/textris/wordtrim/internal/config"
	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/logger"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitValidationError = 1
	ExitParseError      = 2
	ExitRuntimeError    = 3
)

var (
	// Build information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// options holds flag values shared by the commands of one invocation.
type options struct {
	verbose   bool
	quiet     bool
	logFormat string
	logFile   string

	// run
	inputPath  string
	outputPath string
	dryRun     bool

	// weights
	weightsOut    string
	weightsVerify string
}

// exitError carries the process exit code of a failed command. Its message
// has already been shown to the user.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logger.CloseLogFile()

	root := newRootCmd(&options{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Usage errors: unknown flags, wrong argument counts.
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitValidationError
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordtrim",
		Short: "wordtrim - curate a raw word list for Textris",
		Long: `wordtrim filters a raw word list into the curated list used by the
Textris dictionary.

A word is kept when, after trimming surrounding whitespace, it has 3 to 5
characters, every character is a letter and none is uppercase. Survivors
are written in their original order. The rules are fixed.

Examples:
  # Curate wordsRaw.txt into Twordlist.txt
  wordtrim run

  # Use other files
  wordtrim run -i raw.txt -o words.txt

  # Run a job file
  wordtrim run job.yaml

  # Explain why words are kept or rejected
  wordtrim check cat Cat ab`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogging(cmd, opts, config.Logging{})
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "human", "Log format: json or human")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")

	root.AddCommand(
		newRunCmd(opts),
		newValidateCmd(opts),
		newSchemaCmd(),
		newCheckCmd(),
		newLookupCmd(opts),
		newWeightsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// configureLogging applies the logging flags, falling back to the job
// file's logging section for every flag the user did not set.
func configureLogging(cmd *cobra.Command, opts *options, fromJob config.Logging) error {
	flags := cmd.Flags()

	level := slog.LevelInfo
	switch {
	case opts.verbose:
		level = slog.LevelDebug
	case opts.quiet:
		level = slog.LevelError
	case fromJob.Level != "":
		parsed, err := logger.ParseLevel(fromJob.Level)
		if err != nil {
			return usageError(cmd, err)
		}
		level = parsed
	}

	formatName := opts.logFormat
	if !flags.Changed("log-format") && fromJob.Format != "" {
		formatName = fromJob.Format
	}
	format, err := logger.ParseFormat(formatName)
	if err != nil {
		return usageError(cmd, err)
	}

	logger.SetOutput(cmd.ErrOrStderr(), level, format)

	logFile := opts.logFile
	if !flags.Changed("log-file") && fromJob.File != "" {
		logFile = fromJob.File
	}
	if logFile != "" {
		if err := logger.SetLogFile(logFile, level, format); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
			return &exitError{code: ExitRuntimeError, err: err}
		}
	}
	return nil
}

func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
	return &exitError{code: ExitValidationError, err: err}
}

// exitCodeFor maps a failure to an exit code: configuration problems are
// validation errors, everything else is a runtime error.
func exitCodeFor(err error) int {
	if errhandling.GetErrorCategory(err) == errhandling.CategoryConfig {
		return ExitValidationError
	}
	return ExitRuntimeError
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version, commit hash, and build date information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version: %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Build Date: %s\n", buildDate)
			return nil
		},
	}
}
