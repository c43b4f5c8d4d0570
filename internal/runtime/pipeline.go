// Package runtime provides the job execution engine.
// It runs the stages of a job in order: Input → Filters → Output.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/logger"
	"github.com/textris/wordtrim/internal/modules/filter"
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// Error codes for job execution errors
const (
	ErrCodeInputFailed  = "INPUT_FAILED"
	ErrCodeFilterFailed = "FILTER_FAILED"
	ErrCodeOutputFailed = "OUTPUT_FAILED"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Execution status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// CompletionMessage is logged once a run has finished successfully.
const CompletionMessage = "Done."

// Common errors
var (
	// ErrNilJob is returned when the job configuration is nil
	ErrNilJob = errors.New("job configuration is nil")

	// ErrNilInputModule is returned when input module is nil
	ErrNilInputModule = errors.New("input module is nil")

	// ErrNilOutputModule is returned when output module is nil outside dry-run
	ErrNilOutputModule = errors.New("output module is nil")
)

// statsReporter is implemented by filters that count their rejections.
type statsReporter interface {
	Stats() filter.Stats
}

// Executor runs a job through its modules. It only sees the module
// interfaces, never concrete module types.
type Executor struct {
	inputModule   input.Module
	filterModules []filter.Module
	outputModule  output.Module
	dryRun        bool
}

// NewExecutorWithModules creates a new executor with all modules configured.
// outputModule may be nil in dry-run mode.
func NewExecutorWithModules(
	inputModule input.Module,
	filterModules []filter.Module,
	outputModule output.Module,
	dryRun bool,
) *Executor {
	return &Executor{
		inputModule:   inputModule,
		filterModules: filterModules,
		outputModule:  outputModule,
		dryRun:        dryRun,
	}
}

// stageTimings holds timing measurements for each execution stage
type stageTimings struct {
	input  time.Duration
	filter time.Duration
	output time.Duration
}

// Execute runs job once, synchronously:
//  1. Validate the job and modules
//  2. Fetch candidate lines from the input module, then close it
//  3. Run the filter modules in order
//  4. Send survivors to the output module (skipped in dry-run)
//  5. Return a RunResult with status and counters
//
// Modules are closed on every exit path. Every error is fatal; the returned
// result always describes the failure.
func (e *Executor) Execute(ctx context.Context, job *wordlist.Job) (*wordlist.RunResult, error) {
	startedAt := time.Now()
	result := &wordlist.RunResult{
		StartedAt: startedAt,
		Status:    StatusError,
		DryRun:    e.dryRun,
	}

	if err := e.validateExecution(job, result); err != nil {
		e.closeAll(job)
		return result, err
	}
	result.JobName = job.Name

	execCtx := logger.ExecutionContext{JobName: job.Name, DryRun: e.dryRun}
	logger.LogExecutionStart(execCtx)

	if e.outputModule != nil {
		defer e.closeModule(job.Name, "output", e.outputModule)
	}

	var timings stageTimings
	lines, err := e.executeInput(ctx, job, result, &timings)
	e.closeModule(job.Name, "input", e.inputModule)
	if err != nil {
		logger.LogExecutionEnd(execCtx, StatusError, 0, time.Since(startedAt))
		return result, err
	}
	result.LinesRead = len(lines)

	words, err := e.executeFilters(ctx, job, lines, result, &timings)
	if err != nil {
		logger.LogExecutionEnd(execCtx, StatusError, 0, time.Since(startedAt))
		return result, err
	}
	result.WordsKept = len(words)
	result.WordsRejected = len(lines) - len(words)

	if err := e.executeOutput(ctx, job, words, result, &timings); err != nil {
		logger.LogExecutionEnd(execCtx, StatusError, result.WordsKept, time.Since(startedAt))
		return result, err
	}

	e.finalizeSuccess(execCtx, result, startedAt, timings)
	return result, nil
}

// validateExecution validates the job and modules before execution.
func (e *Executor) validateExecution(job *wordlist.Job, result *wordlist.RunResult) error {
	if job == nil {
		logger.Error("job execution failed: nil job configuration")
		e.fail(result, ErrCodeInvalidInput, "", ErrNilJob)
		return ErrNilJob
	}
	if e.inputModule == nil {
		logger.WithJob(job.Name).Error("job execution failed: input module is nil")
		e.fail(result, ErrCodeInvalidInput, "input", ErrNilInputModule)
		return ErrNilInputModule
	}
	if e.outputModule == nil && !e.dryRun {
		logger.WithJob(job.Name).Error("job execution failed: output module is nil")
		e.fail(result, ErrCodeInvalidInput, "output", ErrNilOutputModule)
		return ErrNilOutputModule
	}
	return nil
}

// fail records a classified error on result.
func (e *Executor) fail(result *wordlist.RunResult, code, module string, err error) {
	result.Status = StatusError
	result.CompletedAt = time.Now()
	result.Error = &wordlist.RunError{
		Code:     code,
		Message:  err.Error(),
		Module:   module,
		Category: string(errhandling.ClassifyError(err).Category),
	}
}

// executeInput fetches every candidate line.
func (e *Executor) executeInput(ctx context.Context, job *wordlist.Job, result *wordlist.RunResult, timings *stageTimings) ([]string, error) {
	stageCtx := logger.ExecutionContext{JobName: job.Name, Stage: "input", ModuleType: moduleType(job.Input), DryRun: e.dryRun}
	logger.LogStageStart(stageCtx)

	start := time.Now()
	lines, err := e.inputModule.Fetch(ctx)
	timings.input = time.Since(start)

	if err != nil {
		e.fail(result, ErrCodeInputFailed, "input", err)
		logger.LogStageEnd(stageCtx, 0, timings.input, &logger.ExecutionError{Code: ErrCodeInputFailed, Message: err.Error()})
		logger.LogError("reading word list failed", logger.ErrorContext{
			JobName:   job.Name,
			Stage:     "input",
			ErrorCode: ErrCodeInputFailed,
			Err:       err,
			Path:      sourcePath(job.Input),
		})
		return nil, fmt.Errorf("executing input module: %w", err)
	}

	logger.LogStageEnd(stageCtx, len(lines), timings.input, nil)
	return lines, nil
}

// executeFilters runs every filter module in sequence.
func (e *Executor) executeFilters(ctx context.Context, job *wordlist.Job, lines []string, result *wordlist.RunResult, timings *stageTimings) ([]string, error) {
	stageCtx := logger.ExecutionContext{JobName: job.Name, Stage: "filter", ModuleType: filter.ModuleTypeWord, DryRun: e.dryRun}
	logger.LogStageStart(stageCtx)

	start := time.Now()
	current := lines
	for i, m := range e.filterModules {
		if m == nil {
			logger.WithExecution(stageCtx).Warn("nil filter module encountered; skipping",
				slog.Int("filter_index", i),
			)
			continue
		}

		var err error
		current, err = m.Process(ctx, current)
		if err != nil {
			timings.filter = time.Since(start)
			e.fail(result, ErrCodeFilterFailed, "filter", fmt.Errorf("filter module %d failed: %w", i, err))
			logger.LogStageEnd(stageCtx, len(lines), timings.filter, &logger.ExecutionError{Code: ErrCodeFilterFailed, Message: err.Error()})
			return nil, fmt.Errorf("executing filter module %d: %w", i, err)
		}

		if r, ok := m.(statsReporter); ok {
			mergeRejections(result, r.Stats())
		}
	}
	timings.filter = time.Since(start)

	logger.LogStageEnd(stageCtx, len(current), timings.filter, nil)
	return current, nil
}

// executeOutput writes the curated list. In dry-run mode it only logs what
// would have been written.
func (e *Executor) executeOutput(ctx context.Context, job *wordlist.Job, words []string, result *wordlist.RunResult, timings *stageTimings) error {
	if e.dryRun {
		logger.WithJob(job.Name).Debug("dry-run mode: skipping output module",
			slog.Int("words_would_write", len(words)),
		)
		return nil
	}

	stageCtx := logger.ExecutionContext{JobName: job.Name, Stage: "output", ModuleType: sinkType(job.Output)}
	logger.LogStageStart(stageCtx)

	start := time.Now()
	written, err := e.outputModule.Send(ctx, words)
	timings.output = time.Since(start)
	result.WordsWritten = written

	if err != nil {
		e.fail(result, ErrCodeOutputFailed, "output", err)
		logger.LogStageEnd(stageCtx, written, timings.output, &logger.ExecutionError{Code: ErrCodeOutputFailed, Message: err.Error()})
		logger.LogError("writing word list failed", logger.ErrorContext{
			JobName:   job.Name,
			Stage:     "output",
			ErrorCode: ErrCodeOutputFailed,
			Err:       err,
			Path:      sinkPath(job.Output),
		})
		return fmt.Errorf("executing output module: %w", err)
	}

	logger.LogStageEnd(stageCtx, written, timings.output, nil)
	return nil
}

// finalizeSuccess marks the run successful and logs metrics and the
// completion message.
func (e *Executor) finalizeSuccess(execCtx logger.ExecutionContext, result *wordlist.RunResult, startedAt time.Time, timings stageTimings) {
	result.Status = StatusSuccess
	result.CompletedAt = time.Now()
	result.Error = nil

	total := time.Since(startedAt)
	logger.LogExecutionEnd(execCtx, StatusSuccess, result.WordsKept, total)
	logger.LogMetrics(execCtx, logger.ExecutionMetrics{
		TotalDuration:  total,
		InputDuration:  timings.input,
		FilterDuration: timings.filter,
		OutputDuration: timings.output,
		LinesRead:      result.LinesRead,
		WordsKept:      result.WordsKept,
		WordsRejected:  result.WordsRejected,
	})
	logger.Info(CompletionMessage)
}

// closeAll releases whatever modules were handed to the executor when it
// fails before running.
func (e *Executor) closeAll(job *wordlist.Job) {
	name := ""
	if job != nil {
		name = job.Name
	}
	if e.inputModule != nil {
		e.closeModule(name, "input", e.inputModule)
	}
	if e.outputModule != nil {
		e.closeModule(name, "output", e.outputModule)
	}
}

// moduleCloser interface for modules that can be closed.
type moduleCloser interface {
	Close() error
}

// closeModule closes a module and logs any error.
func (e *Executor) closeModule(jobName, moduleName string, m moduleCloser) {
	if err := m.Close(); err != nil {
		logger.WithJob(jobName).Warn("failed to close module",
			slog.String("module", moduleName),
			slog.String("error", err.Error()),
		)
	}
}

func mergeRejections(result *wordlist.RunResult, stats filter.Stats) {
	if len(stats.Rejected) == 0 {
		return
	}
	if result.Rejections == nil {
		result.Rejections = make(map[string]int, len(stats.Rejected))
	}
	for reason, n := range stats.Rejected {
		result.Rejections[string(reason)] += n
	}
}

func moduleType(cfg *wordlist.SourceConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Type
}

func sourcePath(cfg *wordlist.SourceConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Path
}

func sinkType(cfg *wordlist.SinkConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Type
}

func sinkPath(cfg *wordlist.SinkConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Path
}
