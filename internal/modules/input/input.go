// Package input provides implementations for input modules.
// Input modules read the raw word list, one candidate per line.
package input

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Module types provided by this package.
const (
	ModuleTypeFile  = "file"
	ModuleTypeStdin = "stdin"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ErrClosed is returned when Fetch is called on a closed module.
var ErrClosed = errors.New("input module is closed")

// Module represents an input module that fetches raw candidate lines.
type Module interface {
	// Fetch reads every line from the source, in order, with the line
	// terminator removed. The context is checked between lines.
	Fetch(ctx context.Context) ([]string, error)
	// Close releases any resources held by the module.
	Close() error
}

// ReadLines reads all lines from r. Lines end at "\n", "\r\n" or a lone
// "\r", and the terminator is stripped; a final line without terminator is
// still returned.
func ReadLines(ctx context.Context, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	var lines []string
	for scanner.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}

// scanLines is a bufio.SplitFunc like bufio.ScanLines that also accepts a
// lone '\r' as a terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
