// Package logger provides structured logging functionality.
// It wraps the standard log/slog package for consistent logging across wordtrim.
//
// This package provides execution context helpers for consistent job logging,
// including helpers for execution start/end, stage start/end, and error logging.
// All helpers use structured logging with consistent field names (snake_case).
//
// The package supports two output formats:
//   - JSON (default): Machine-readable structured logging
//   - Human: Human-readable console output with colors and prefixes
//
// Logs go to stderr so that the stdout sink can carry the curated word list.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger is the default logger instance.
var Logger *slog.Logger

// console is the writer used for console log output.
var console io.Writer = os.Stderr

func init() {
	Logger = slog.New(slog.NewJSONHandler(console, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// WithJob returns a logger with job context, for messages outside any stage.
func WithJob(jobName string) *slog.Logger {
	return Logger.With("job_name", jobName)
}

// WithModule returns a logger with module context, for per-word messages
// emitted inside a stage.
func WithModule(stage string, moduleType string) *slog.Logger {
	return Logger.With("stage", stage, "module_type", moduleType)
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// =============================================================================
// Execution Context Types
// =============================================================================

// ExecutionContext contains context information for job execution logging.
type ExecutionContext struct {
	// JobName is the name of the job (required)
	JobName string
	// Stage is the current execution stage (input, filter, output)
	Stage string
	// ModuleType is the type of module being executed (file, stdin, word, ...)
	ModuleType string
	// DryRun indicates if this is a dry-run execution
	DryRun bool
}

// ExecutionError contains structured error information for stage logging.
type ExecutionError struct {
	// Code is the error code (e.g., INPUT_FAILED)
	Code string
	// Message is the human-readable error message
	Message string
}

// ErrorContext contains structured context for error logging.
// Use this with LogError() for consistent, actionable error logs.
type ErrorContext struct {
	JobName    string
	Stage      string
	ModuleType string

	ErrorCode    string
	ErrorMessage string
	Err          error

	Path     string
	Duration time.Duration

	// Additional context as key-value pairs
	Extra map[string]interface{}
}

// ExecutionMetrics contains the counters reported when a run completes.
type ExecutionMetrics struct {
	TotalDuration  time.Duration
	InputDuration  time.Duration
	FilterDuration time.Duration
	OutputDuration time.Duration
	LinesRead      int
	WordsKept      int
	WordsRejected  int
}

// =============================================================================
// Execution Context Helpers
// =============================================================================

// WithExecution returns a logger with execution context attached.
// Only non-empty fields are included in the log output.
func WithExecution(ctx ExecutionContext) *slog.Logger {
	return Logger.With(buildContextAttrs(ctx)...)
}

// LogExecutionStart logs the start of a job execution.
func LogExecutionStart(ctx ExecutionContext) {
	WithExecution(ctx).Info("execution started")
}

// LogExecutionEnd logs the completion of a job execution.
func LogExecutionEnd(ctx ExecutionContext, status string, wordsKept int, duration time.Duration) {
	attrs := buildContextAttrs(ctx)
	attrs = append(attrs,
		slog.String("status", status),
		slog.Int("words_kept", wordsKept),
		slog.Duration("duration", duration),
	)
	Logger.Info("execution completed", attrs...)
}

// LogStageStart logs the start of a stage (input, filter, output).
func LogStageStart(ctx ExecutionContext) {
	WithExecution(ctx).Info("stage started")
}

// LogStageEnd logs the completion of a stage.
// If err is non-nil, logs as an error with error details.
func LogStageEnd(ctx ExecutionContext, recordCount int, duration time.Duration, err *ExecutionError) {
	attrs := buildContextAttrs(ctx)
	attrs = append(attrs,
		slog.Int("record_count", recordCount),
		slog.Duration("duration", duration),
	)

	if err != nil {
		attrs = append(attrs,
			slog.String("error_code", err.Code),
			slog.String("error", err.Message),
		)
		Logger.Error("stage failed", attrs...)
		return
	}
	Logger.Info("stage completed", attrs...)
}

// LogMetrics logs the counters and stage timings of a finished run.
func LogMetrics(ctx ExecutionContext, metrics ExecutionMetrics) {
	attrs := buildContextAttrs(ctx)
	attrs = append(attrs,
		slog.Duration("total_duration", metrics.TotalDuration),
		slog.Duration("input_duration", metrics.InputDuration),
		slog.Duration("filter_duration", metrics.FilterDuration),
		slog.Duration("output_duration", metrics.OutputDuration),
		slog.Int("lines_read", metrics.LinesRead),
		slog.Int("words_kept", metrics.WordsKept),
		slog.Int("words_rejected", metrics.WordsRejected),
	)
	Logger.Info("execution metrics", attrs...)
}

// LogError logs an error with full execution context, including the
// unwrapped error chain.
func LogError(message string, errCtx ErrorContext) {
	attrs := make([]any, 0, 12)

	if errCtx.JobName != "" {
		attrs = append(attrs, slog.String("job_name", errCtx.JobName))
	}
	if errCtx.Stage != "" {
		attrs = append(attrs, slog.String("stage", errCtx.Stage))
	}
	if errCtx.ModuleType != "" {
		attrs = append(attrs, slog.String("module_type", errCtx.ModuleType))
	}
	if errCtx.ErrorCode != "" {
		attrs = append(attrs, slog.String("error_code", errCtx.ErrorCode))
	}
	if errCtx.ErrorMessage != "" {
		attrs = append(attrs, slog.String("error", errCtx.ErrorMessage))
	}
	if errCtx.Err != nil {
		attrs = append(attrs, slog.String("error_type", fmt.Sprintf("%T", errCtx.Err)))

		errorChain := []string{errCtx.Err.Error()}
		for current := errors.Unwrap(errCtx.Err); current != nil; current = errors.Unwrap(current) {
			errorChain = append(errorChain, current.Error())
		}
		if len(errorChain) > 1 {
			attrs = append(attrs, slog.String("error_chain", strings.Join(errorChain, " -> ")))
		}
	}
	if errCtx.Path != "" {
		attrs = append(attrs, slog.String("path", errCtx.Path))
	}
	if errCtx.Duration > 0 {
		attrs = append(attrs, slog.Duration("duration", errCtx.Duration))
	}
	for k, v := range errCtx.Extra {
		attrs = append(attrs, slog.Any(k, v))
	}

	Logger.Error(message, attrs...)
}

// buildContextAttrs builds a slice of slog attributes from an ExecutionContext.
// Only non-empty fields are included.
func buildContextAttrs(ctx ExecutionContext) []any {
	attrs := make([]any, 0, 4)

	attrs = append(attrs, slog.String("job_name", ctx.JobName))
	if ctx.Stage != "" {
		attrs = append(attrs, slog.String("stage", ctx.Stage))
	}
	if ctx.ModuleType != "" {
		attrs = append(attrs, slog.String("module_type", ctx.ModuleType))
	}
	if ctx.DryRun {
		attrs = append(attrs, slog.Bool("dry_run", true))
	}

	return attrs
}
