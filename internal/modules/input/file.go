package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/logger"
)

// FileModule reads candidates from a file on disk.
type FileModule struct {
	path   string
	closed bool
}

// NewFileModule creates an input module reading path.
func NewFileModule(path string) (*FileModule, error) {
	if path == "" {
		return nil, errhandling.NewConfigError("file input requires a path")
	}
	return &FileModule{path: path}, nil
}

// Path returns the file the module reads.
func (m *FileModule) Path() string {
	return m.path
}

// Fetch opens the file, reads every line and closes it again.
func (m *FileModule) Fetch(ctx context.Context) ([]string, error) {
	if m.closed {
		return nil, ErrClosed
	}

	f, err := os.Open(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errhandling.NewNotFoundError(m.path, err)
		}
		return nil, fmt.Errorf("opening %s: %w", m.path, err)
	}
	defer f.Close()

	lines, err := ReadLines(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", m.path, err)
	}

	logger.Debug("input file read",
		slog.String("path", m.path),
		slog.Int("lines", len(lines)),
	)
	return lines, nil
}

// Close marks the module closed. The file itself is closed by Fetch.
func (m *FileModule) Close() error {
	m.closed = true
	return nil
}

// ReaderModule reads candidates from an already open stream such as stdin.
type ReaderModule struct {
	name   string
	r      io.Reader
	closed bool
}

// NewStdinModule creates an input module reading os.Stdin.
func NewStdinModule() *ReaderModule {
	return NewReaderModule("stdin", os.Stdin)
}

// NewReaderModule creates an input module over r; name is used in logs.
func NewReaderModule(name string, r io.Reader) *ReaderModule {
	return &ReaderModule{name: name, r: r}
}

// Fetch reads every remaining line from the stream.
func (m *ReaderModule) Fetch(ctx context.Context) ([]string, error) {
	if m.closed {
		return nil, ErrClosed
	}
	lines, err := ReadLines(ctx, m.r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", m.name, err)
	}
	logger.Debug("input stream read",
		slog.String("source", m.name),
		slog.Int("lines", len(lines)),
	)
	return lines, nil
}

// Close marks the module closed. The stream is owned by the caller.
func (m *ReaderModule) Close() error {
	m.closed = true
	return nil
}

var (
	_ Module = (*FileModule)(nil)
	_ Module = (*ReaderModule)(nil)
)
