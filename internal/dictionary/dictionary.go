// Package dictionary loads a curated word list and answers membership
// queries against it.
package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/textris/wordtrim/internal/logger"
	"github.com/textris/wordtrim/internal/modules/input"
)

// Dictionary is an immutable set of words. Lookups binary-search the list
// when it is sorted and use a hash set otherwise.
type Dictionary struct {
	words  []string
	sorted bool
	set    map[string]struct{}
}

// New builds a dictionary from words. Each word is trimmed; blank entries
// are dropped. The order of words is kept.
func New(words []string) *Dictionary {
	d := &Dictionary{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		d.words = append(d.words, w)
	}

	d.sorted = slices.IsSorted(d.words)
	if !d.sorted {
		d.set = make(map[string]struct{}, len(d.words))
		for _, w := range d.words {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Load reads the word list at path, one word per line.
func Load(ctx context.Context, path string) (*Dictionary, error) {
	in, err := input.NewFileModule(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.Warn("failed to close word list", slog.String("path", path), slog.String("error", cerr.Error()))
		}
	}()

	lines, err := in.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	d := New(lines)
	logger.Debug("dictionary loaded",
		slog.String("path", path),
		slog.Int("words", d.Len()),
		slog.Bool("sorted", d.sorted),
	)
	return d, nil
}

// Contains reports whether word is in the dictionary. The word is matched
// exactly, without trimming or case folding.
func (d *Dictionary) Contains(word string) bool {
	if d.sorted {
		_, found := slices.BinarySearch(d.words, word)
		return found
	}
	_, found := d.set[word]
	return found
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Sorted reports whether the list was loaded in ascending byte order.
func (d *Dictionary) Sorted() bool {
	return d.sorted
}

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}
