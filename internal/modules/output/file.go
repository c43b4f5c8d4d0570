package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/logger"
)

// FileModule writes the curated list to a file, replacing any previous
// contents. The file is created even when there is nothing to write.
type FileModule struct {
	path   string
	closed bool
}

// NewFileModule creates an output module writing path.
func NewFileModule(path string) (*FileModule, error) {
	if path == "" {
		return nil, errhandling.NewConfigError("file output requires a path")
	}
	return &FileModule{path: path}, nil
}

// Path returns the file the module writes.
func (m *FileModule) Path() string {
	return m.path
}

// Send creates or truncates the file and writes every word to it.
func (m *FileModule) Send(ctx context.Context, words []string) (n int, err error) {
	if m.closed {
		return 0, ErrClosed
	}

	f, err := os.Create(m.path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", m.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, errhandling.NewIOError(m.path, "closing output file", cerr)
		}
	}()

	n, err = WriteLines(ctx, f, words)
	if err != nil {
		return n, errhandling.NewIOError(m.path, "writing output file", err)
	}

	logger.Debug("output file written",
		slog.String("path", m.path),
		slog.Int("words", n),
	)
	return n, nil
}

// Close marks the module closed. Send closes the file itself.
func (m *FileModule) Close() error {
	m.closed = true
	return nil
}

// WriterModule writes the curated list to an open stream such as stdout.
type WriterModule struct {
	name   string
	w      io.Writer
	closed bool
}

// NewStdoutModule creates an output module writing os.Stdout.
func NewStdoutModule() *WriterModule {
	return NewWriterModule("stdout", os.Stdout)
}

// NewWriterModule creates an output module over w; name is used in logs.
func NewWriterModule(name string, w io.Writer) *WriterModule {
	return &WriterModule{name: name, w: w}
}

// Send writes every word to the stream.
func (m *WriterModule) Send(ctx context.Context, words []string) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	n, err := WriteLines(ctx, m.w, words)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", m.name, err)
	}
	return n, nil
}

// Close marks the module closed. The stream is owned by the caller.
func (m *WriterModule) Close() error {
	m.closed = true
	return nil
}

var (
	_ Module = (*FileModule)(nil)
	_ Module = (*WriterModule)(nil)
)
