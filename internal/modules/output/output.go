// Package output provides implementations for output modules.
// Output modules write the curated word list, one word per line.
package output

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// Module types provided by this package.
const (
	ModuleTypeFile   = "file"
	ModuleTypeStdout = "stdout"
)

// ErrClosed is returned when Send is called on a closed module.
var ErrClosed = errors.New("output module is closed")

// Module represents an output module that writes the curated list.
type Module interface {
	// Send writes words in order, each on its own line.
	// Returns the number of words written and any error.
	Send(ctx context.Context, words []string) (int, error)

	// Close releases any resources held by the module.
	Close() error
}

// WriteLines writes each word followed by "\n" to w through a buffer and
// flushes it. It returns the number of complete lines handed to the buffer
// before the first error.
func WriteLines(ctx context.Context, w io.Writer, words []string) (int, error) {
	bw := bufio.NewWriter(w)
	for i, word := range words {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
		if _, err := bw.WriteString(word); err != nil {
			return i, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return i, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(words), nil
}
