package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textris/wordtrim/internal/logger"
	"github.com/textris/wordtrim/internal/modules/filter"
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// MockInputModule is a test double for input modules
type MockInputModule struct {
	lines  []string
	err    error
	closed bool
}

func (m *MockInputModule) Fetch(_ context.Context) ([]string, error) {
	return m.lines, m.err
}

func (m *MockInputModule) Close() error {
	m.closed = true
	return nil
}

// MockOutputModule is a test double for output modules
type MockOutputModule struct {
	sent   []string
	err    error
	closed bool
}

func (m *MockOutputModule) Send(_ context.Context, words []string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.sent = append([]string(nil), words...)
	return len(words), nil
}

func (m *MockOutputModule) Close() error {
	m.closed = true
	return nil
}

// failingFilter always returns an error
type failingFilter struct{}

func (failingFilter) Process(_ context.Context, _ []string) ([]string, error) {
	return nil, errors.New("filter exploded")
}

// stickyInput is an input module whose Close fails.
type stickyInput struct {
	MockInputModule
}

func (m *stickyInput) Close() error {
	m.closed = true
	return errors.New("handle still busy")
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logger.Logger
	t.Cleanup(func() { logger.Logger = original })
	logger.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf
}

func testJob() *wordlist.Job {
	job := wordlist.DefaultJob()
	job.Name = "test-job"
	return job
}

func TestExecutor_Execute_Success(t *testing.T) {
	logs := captureLogs(t)

	in := &MockInputModule{lines: []string{"cat", "Cat", "ab", "abcdef", "a1c", "  fox  "}}
	out := &MockOutputModule{}
	e := NewExecutorWithModules(in, []filter.Module{filter.NewWordModule()}, out, false)

	result, err := e.Execute(context.Background(), testJob())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Status != StatusSuccess {
		t.Errorf("Status = %q, want %q", result.Status, StatusSuccess)
	}
	if diff := cmp.Diff([]string{"cat", "fox"}, out.sent); diff != "" {
		t.Errorf("sent mismatch (-want +got):\n%s", diff)
	}
	if result.LinesRead != 6 || result.WordsKept != 2 || result.WordsRejected != 4 || result.WordsWritten != 2 {
		t.Errorf("counters = %+v", result)
	}
	wantRejections := map[string]int{"uppercase": 1, "too_short": 1, "too_long": 1, "non_letter": 1}
	if diff := cmp.Diff(wantRejections, result.Rejections); diff != "" {
		t.Errorf("Rejections mismatch (-want +got):\n%s", diff)
	}
	if !in.closed || !out.closed {
		t.Errorf("modules not closed: input=%v output=%v", in.closed, out.closed)
	}
	if result.CompletedAt.Before(result.StartedAt) {
		t.Error("CompletedAt before StartedAt")
	}
	if !strings.Contains(logs.String(), `"msg":"Done."`) {
		t.Errorf("completion message not logged:\n%s", logs.String())
	}
}

func TestExecutor_Execute_EmptyInput(t *testing.T) {
	captureLogs(t)

	out := &MockOutputModule{}
	e := NewExecutorWithModules(&MockInputModule{}, []filter.Module{filter.NewWordModule()}, out, false)

	result, err := e.Execute(context.Background(), testJob())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.sent) != 0 || result.WordsKept != 0 {
		t.Errorf("expected empty output, got %v", out.sent)
	}
	if result.Status != StatusSuccess {
		t.Errorf("Status = %q", result.Status)
	}
}

func TestExecutor_Execute_InputFailure(t *testing.T) {
	captureLogs(t)

	in := &MockInputModule{err: os.ErrNotExist}
	out := &MockOutputModule{}
	e := NewExecutorWithModules(in, []filter.Module{filter.NewWordModule()}, out, false)

	result, err := e.Execute(context.Background(), testJob())
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if result.Status != StatusError || result.Error == nil {
		t.Fatalf("result = %+v", result)
	}
	if result.Error.Code != ErrCodeInputFailed || result.Error.Module != "input" {
		t.Errorf("Error = %+v", result.Error)
	}
	if result.Error.Category != "not_found" {
		t.Errorf("Category = %q, want not_found", result.Error.Category)
	}
	if out.sent != nil {
		t.Error("output should not be called after input failure")
	}
	if !in.closed || !out.closed {
		t.Errorf("modules not closed: input=%v output=%v", in.closed, out.closed)
	}
}

func TestExecutor_Execute_FilterFailure(t *testing.T) {
	captureLogs(t)

	out := &MockOutputModule{}
	e := NewExecutorWithModules(&MockInputModule{lines: []string{"cat"}}, []filter.Module{failingFilter{}}, out, false)

	result, err := e.Execute(context.Background(), testJob())
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if result.Error == nil || result.Error.Code != ErrCodeFilterFailed {
		t.Errorf("Error = %+v", result.Error)
	}
	if !strings.Contains(result.Error.Message, "filter module 0") {
		t.Errorf("Message = %q", result.Error.Message)
	}
}

func TestExecutor_Execute_OutputFailure(t *testing.T) {
	captureLogs(t)

	out := &MockOutputModule{err: errors.New("disk full")}
	e := NewExecutorWithModules(&MockInputModule{lines: []string{"cat"}}, []filter.Module{filter.NewWordModule()}, out, false)

	result, err := e.Execute(context.Background(), testJob())
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if result.Error == nil || result.Error.Code != ErrCodeOutputFailed {
		t.Errorf("Error = %+v", result.Error)
	}
	if result.WordsKept != 1 {
		t.Errorf("WordsKept = %d, want 1", result.WordsKept)
	}
	if !out.closed {
		t.Error("output module not closed")
	}
}

func TestExecutor_Execute_DryRun(t *testing.T) {
	captureLogs(t)

	e := NewExecutorWithModules(&MockInputModule{lines: []string{"cat", "dog"}}, []filter.Module{filter.NewWordModule()}, nil, true)

	result, err := e.Execute(context.Background(), testJob())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.DryRun || result.WordsKept != 2 || result.WordsWritten != 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestExecutor_Execute_Validation(t *testing.T) {
	captureLogs(t)

	tests := []struct {
		name    string
		e       *Executor
		job     *wordlist.Job
		wantErr error
	}{
		{"nil job", NewExecutorWithModules(&MockInputModule{}, nil, &MockOutputModule{}, false), nil, ErrNilJob},
		{"nil input", NewExecutorWithModules(nil, nil, &MockOutputModule{}, false), testJob(), ErrNilInputModule},
		{"nil output", NewExecutorWithModules(&MockInputModule{}, nil, nil, false), testJob(), ErrNilOutputModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.e.Execute(context.Background(), tt.job)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if result.Error == nil || result.Error.Code != ErrCodeInvalidInput {
				t.Errorf("Error = %+v", result.Error)
			}
		})
	}
}

func TestExecutor_Execute_FileRoundTrip(t *testing.T) {
	captureLogs(t)

	dir := t.TempDir()
	inPath := filepath.Join(dir, "wordsRaw.txt")
	outPath := filepath.Join(dir, "Twordlist.txt")
	raw := []string{"aardvark", "abbey", "ABC", "abide", "ab", "able ", " ably", "o'er", "Zulu", "zoo"}
	if err := os.WriteFile(inPath, []byte(strings.Join(raw, "\r\n")+"\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	in, _ := input.NewFileModule(inPath)
	out, _ := output.NewFileModule(outPath)
	job := &wordlist.Job{
		Name:   "round-trip",
		Input:  &wordlist.SourceConfig{Type: "file", Path: inPath},
		Output: &wordlist.SinkConfig{Type: "file", Path: outPath},
	}

	if _, err := NewExecutorWithModules(in, []filter.Module{filter.NewWordModule()}, out, false).Execute(context.Background(), job); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join(filter.Apply(raw), "\n") + "\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
	if string(data) != "abbey\nabide\nable\nably\nzoo\n" {
		t.Errorf("unexpected curated list %q", data)
	}
}

func TestExecutor_Execute_WarningsCarryJobContext(t *testing.T) {
	buf := captureLogs(t)

	in := &stickyInput{MockInputModule{lines: []string{"cat", "Dog"}}}
	e := NewExecutorWithModules(in, []filter.Module{nil, filter.NewWordModule()}, &MockOutputModule{}, false)

	result, err := e.Execute(context.Background(), testJob())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.WordsKept != 1 || !in.closed {
		t.Errorf("result = %+v, input closed = %v", result, in.closed)
	}

	warnings := map[string]map[string]interface{}{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry["level"] == "WARN" {
			warnings[entry["msg"].(string)] = entry
		}
	}

	skipped, ok := warnings["nil filter module encountered; skipping"]
	if !ok {
		t.Fatalf("missing nil filter warning in %q", buf.String())
	}
	if skipped["job_name"] != "test-job" || skipped["stage"] != "filter" || skipped["filter_index"] != float64(0) {
		t.Errorf("nil filter warning = %v", skipped)
	}

	closing, ok := warnings["failed to close module"]
	if !ok {
		t.Fatalf("missing close warning in %q", buf.String())
	}
	if closing["job_name"] != "test-job" || closing["module"] != "input" || closing["error"] != "handle still busy" {
		t.Errorf("close warning = %v", closing)
	}
}
