// Package weights derives cumulative letter weights from a curated word
// list. A table maps a uniform number in [0, UpperBound) to a letter with
// probability proportional to how often that letter occurs in the list.
package weights

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// UpperBound is the exclusive upper limit of the numbers a table maps.
const UpperBound = 10000

// Letters is the number of entries in a table, one per letter a..z.
const Letters = 26

// ErrNoLetters is returned when the word list contains no letter a..z.
var ErrNoLetters = errors.New("word list contains no letters a-z")

// ErrInvalidTable is returned by Read for malformed tables.
var ErrInvalidTable = errors.New("invalid weight table")

// Table holds the inclusive upper bound of each letter's region, in letter
// order. Bounds never decrease and the last one is UpperBound-1. A letter
// whose bound equals its predecessor's (or -1 for 'a') has an empty region.
type Table [Letters]int

// Compute counts the letters a..z in words (case-folded; other runes are
// ignored) and returns the cumulative table.
func Compute(words []string) (Table, error) {
	var counts [Letters]int64
	var total int64
	for _, w := range words {
		for _, r := range w {
			r = unicode.ToLower(r)
			if r < 'a' || r > 'z' {
				continue
			}
			counts[r-'a']++
			total++
		}
	}
	if total == 0 {
		return Table{}, ErrNoLetters
	}

	var table Table
	var cumulative int64
	for i, n := range counts {
		cumulative += n
		// ceil(cumulative * UpperBound / total) - 1
		table[i] = int((cumulative*UpperBound+total-1)/total) - 1
	}
	return table, nil
}

// Letter returns the letter whose region contains n, the first letter with
// a bound >= n. n must be in [0, UpperBound).
func Letter(table Table, n int) (rune, error) {
	if n < 0 || n >= UpperBound {
		return 0, fmt.Errorf("number %d out of range [0, %d)", n, UpperBound)
	}
	i := sort.SearchInts(table[:], n)
	if i == Letters {
		return 0, fmt.Errorf("%w: no bound covers %d", ErrInvalidTable, n)
	}
	return rune('a' + i), nil
}

// Width returns the size of the region of letter i.
func (t Table) Width(i int) int {
	if i == 0 {
		return t[0] + 1
	}
	return t[i] - t[i-1]
}

// Write emits one bound per line.
func Write(w io.Writer, table Table) error {
	bw := bufio.NewWriter(w)
	for _, bound := range table {
		if _, err := bw.WriteString(strconv.Itoa(bound) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a table written by Write. Blank lines are ignored.
func Read(r io.Reader) (Table, error) {
	var table Table
	scanner := bufio.NewScanner(r)
	i := 0
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if i == Letters {
			return Table{}, fmt.Errorf("%w: more than %d bounds", ErrInvalidTable, Letters)
		}
		bound, err := strconv.Atoi(text)
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
		}
		if bound < -1 || bound >= UpperBound || (i > 0 && bound < table[i-1]) {
			return Table{}, fmt.Errorf("%w: line %d: bound %d out of order or range", ErrInvalidTable, line, bound)
		}
		table[i] = bound
		i++
	}
	if err := scanner.Err(); err != nil {
		return Table{}, err
	}
	if i != Letters {
		return Table{}, fmt.Errorf("%w: got %d bounds, want %d", ErrInvalidTable, i, Letters)
	}
	if table[Letters-1] != UpperBound-1 {
		return Table{}, fmt.Errorf("%w: last bound is %d, want %d", ErrInvalidTable, table[Letters-1], UpperBound-1)
	}
	return table, nil
}
