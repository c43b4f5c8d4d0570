package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textris/wordtrim/internal/cli"
	"github.com/textris/wordtrim/internal/config"
	"github.com/textris/wordtrim/internal/factory"
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/internal/runtime"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// stdioPath selects stdin or stdout in place of a file path.
const stdioPath = "-"

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [job-file]",
		Short: "Curate a raw word list",
		Long: `Read the raw word list, keep the words that pass the filter and write
them to the curated list.

Without a job file, wordtrim reads wordsRaw.txt and writes Twordlist.txt in
the current directory. A job file (JSON or YAML) may choose other paths, a
job name and logging settings. --input and --output override it; "-" means
stdin or stdout.

Flags:
  --dry-run   Read and filter without writing the curated list

Exit codes:
  0 - Run completed
  1 - Validation errors
  2 - Parse errors
  3 - Runtime errors

Examples:
  wordtrim run
  wordtrim run -i raw.txt -o -
  wordtrim run --dry-run job.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", wordlist.DefaultInputPath, `Raw word list ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", wordlist.DefaultOutputPath, `Curated word list ("-" for stdout)`)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Read and filter without writing the curated list")
	return cmd
}

func runJob(cmd *cobra.Command, opts *options, args []string) error {
	stderr := cmd.ErrOrStderr()

	job := wordlist.DefaultJob()
	if len(args) == 1 {
		jf, _, err := loadJobFile(cmd, opts, args[0])
		if err != nil {
			return err
		}
		job = jf.Job
		if err := configureLogging(cmd, opts, jf.Logging); err != nil {
			return err
		}
	}

	applyRunFlags(cmd, opts, job)

	mods, err := factory.CreateModules(job)
	if err != nil {
		fmt.Fprintf(stderr, "✗ Failed to create modules: %v\n", err)
		return &exitError{code: exitCodeFor(err), err: err}
	}

	executor := runtime.NewExecutorWithModules(mods.Input, mods.Filters(), mods.Output, job.DryRun)
	result, err := executor.Execute(cmd.Context(), job)

	cli.PrintRunResult(stderr, result, err, cli.OutputOptions{Verbose: opts.verbose, Quiet: opts.quiet})
	if err != nil {
		return &exitError{code: ExitRuntimeError, err: err}
	}
	return nil
}

// loadJobFile parses, validates and converts a job file, printing any
// errors it finds.
func loadJobFile(cmd *cobra.Command, opts *options, path string) (*config.JobFile, *config.Result, error) {
	stderr := cmd.ErrOrStderr()

	jf, result, err := config.Load(path)
	switch {
	case len(result.ParseErrors) > 0:
		cli.PrintParseErrors(stderr, result.ParseErrors, opts.verbose)
		return nil, result, &exitError{code: ExitParseError, err: err}
	case len(result.ValidationErrors) > 0:
		cli.PrintValidationErrors(stderr, result.ValidationErrors, opts.verbose, opts.quiet)
		return nil, result, &exitError{code: ExitValidationError, err: err}
	case err != nil:
		fmt.Fprintf(stderr, "✗ Failed to convert job file: %v\n", err)
		return nil, result, &exitError{code: ExitValidationError, err: err}
	}
	return jf, result, nil
}

// applyRunFlags lets explicit command-line flags override the job.
func applyRunFlags(cmd *cobra.Command, opts *options, job *wordlist.Job) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		job.Input = sourceFor(opts.inputPath)
	}
	if flags.Changed("output") {
		job.Output = sinkFor(opts.outputPath)
	}
	if opts.dryRun {
		job.DryRun = true
	}
}

func sourceFor(path string) *wordlist.SourceConfig {
	if path == stdioPath {
		return &wordlist.SourceConfig{Type: input.ModuleTypeStdin}
	}
	return &wordlist.SourceConfig{Type: input.ModuleTypeFile, Path: path}
}

func sinkFor(path string) *wordlist.SinkConfig {
	if path == stdioPath {
		return &wordlist.SinkConfig{Type: output.ModuleTypeStdout}
	}
	return &wordlist.SinkConfig{Type: output.ModuleTypeFile, Path: path}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <job-file>",
		Short: "Validate a job file",
		Long: `Validate a job file against the job schema.

Supports both JSON and YAML formats. The format is auto-detected
based on file extension (.json, .yaml, .yml) or content.

Exit codes:
  0 - Job file is valid
  1 - Validation errors (schema violations)
  2 - Parse errors (invalid JSON/YAML syntax)

Examples:
  wordtrim validate job.json
  wordtrim validate --verbose job.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			if !opts.quiet {
				fmt.Fprintf(out, "Validating job file: %s\n", path)
			}

			jf, result, err := loadJobFile(cmd, opts, path)
			if err != nil {
				return err
			}

			if !opts.quiet {
				fmt.Fprintf(out, "✓ Job file is valid (format: %s)\n", result.Format)
				if opts.verbose {
					printJobSummary(cmd, jf.Job)
				}
			}
			return nil
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the job file JSON schema",
		Long: `Print the JSON schema that run and validate check job files against.
Useful for editor completion and for validating job files in other tools.

Examples:
  wordtrim schema > job-schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := cmd.OutOrStdout().Write(config.GetEmbeddedSchema()); err != nil {
				return &exitError{code: ExitRuntimeError, err: err}
			}
			return nil
		},
	}
}

func printJobSummary(cmd *cobra.Command, job *wordlist.Job) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Job: %s\n", job.Name)
	fmt.Fprintf(out, "  Input: %s %s\n", job.Input.Type, job.Input.Path)
	fmt.Fprintf(out, "  Output: %s %s\n", job.Output.Type, job.Output.Path)
	if job.DryRun {
		fmt.Fprintln(out, "  Dry run: yes")
	}
}
