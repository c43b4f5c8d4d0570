// Package wordlist provides public types for word list filtering jobs.
// This package is intended to be importable by external projects (the game
// client, build tooling) that need to run or inspect a wordtrim job.
package wordlist

import "time"

// Default locations used when a job does not name its own files.
const (
	DefaultInputPath  = "wordsRaw.txt"
	DefaultOutputPath = "Twordlist.txt"
	DefaultJobName    = "wordtrim"
)

// Job represents a complete filtering job: where the raw words come from
// and where the curated list goes. The filter rules themselves are fixed.
type Job struct {
	// Name is the human-readable name of the job
	Name string `json:"name"`

	// Input defines the raw word source
	Input *SourceConfig `json:"input"`

	// Output defines the curated list destination
	Output *SinkConfig `json:"output"`

	// DryRun filters without writing the output
	DryRun bool `json:"dryRun,omitempty"`
}

// SourceConfig configures an input module.
type SourceConfig struct {
	// Type identifies the input module ("file", "stdin")
	Type string `json:"type"`

	// Path is the file to read (ignored by stdin)
	Path string `json:"path,omitempty"`
}

// SinkConfig configures an output module.
type SinkConfig struct {
	// Type identifies the output module ("file", "stdout")
	Type string `json:"type"`

	// Path is the file to write (ignored by stdout)
	Path string `json:"path,omitempty"`
}

// DefaultJob returns the standard job:
// wordsRaw.txt in, Twordlist.txt out.
func DefaultJob() *Job {
	return &Job{
		Name:   DefaultJobName,
		Input:  &SourceConfig{Type: "file", Path: DefaultInputPath},
		Output: &SinkConfig{Type: "file", Path: DefaultOutputPath},
	}
}

// RunResult represents the result of a job execution.
type RunResult struct {
	// JobName is the name of the executed job
	JobName string `json:"jobName"`

	// Status is the execution status ("success", "error")
	Status string `json:"status"`

	// StartedAt is when execution started
	StartedAt time.Time `json:"startedAt"`

	// CompletedAt is when execution completed
	CompletedAt time.Time `json:"completedAt"`

	// LinesRead is the number of candidate lines read from the input
	LinesRead int `json:"linesRead"`

	// WordsKept is the number of words that passed every predicate
	WordsKept int `json:"wordsKept"`

	// WordsWritten is the number of words written by the output module
	// (zero in dry-run mode)
	WordsWritten int `json:"wordsWritten"`

	// WordsRejected is the number of candidates that failed a predicate
	WordsRejected int `json:"wordsRejected"`

	// Rejections counts rejected candidates per reason
	Rejections map[string]int `json:"rejections,omitempty"`

	// DryRun reports whether the output stage was skipped
	DryRun bool `json:"dryRun,omitempty"`

	// Error contains error details if execution failed
	Error *RunError `json:"error,omitempty"`
}

// Duration returns how long the run took.
func (r *RunResult) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// RunError contains details about an execution failure.
type RunError struct {
	// Code is the error code (INPUT_FAILED, OUTPUT_FAILED, ...)
	Code string `json:"code"`

	// Message is the human-readable error message
	Message string `json:"message"`

	// Module is the stage where the error occurred
	Module string `json:"module,omitempty"`

	// Category is the classified error category (not_found, permission, io, ...)
	Category string `json:"category,omitempty"`
}
