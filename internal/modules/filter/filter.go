// Package filter provides the word filter that turns a raw word list into a
// curated list for the game.
//
// A candidate line is kept when, after trimming surrounding whitespace, it is
// three to five characters long, every character is a letter, and no
// character is uppercase. The rules are fixed; there is no configuration.
package filter

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length bounds, both exclusive.
const (
	minExclusiveLength = 2
	maxExclusiveLength = 6
)

// Module represents a filter module that transforms a word list.
type Module interface {
	// Process returns the words that survive the filter, in input order.
	Process(ctx context.Context, words []string) ([]string, error)
}

// Reason explains why a candidate was rejected. The zero value means kept.
type Reason string

// Rejection reasons, reported in predicate order.
const (
	ReasonNone      Reason = ""
	ReasonTooShort  Reason = "too_short"
	ReasonTooLong   Reason = "too_long"
	ReasonNonLetter Reason = "non_letter"
	ReasonUppercase Reason = "uppercase"
)

// Reasons lists every rejection reason in evaluation order.
var Reasons = []Reason{ReasonTooShort, ReasonTooLong, ReasonNonLetter, ReasonUppercase}

// Verdict is the outcome of evaluating one candidate.
type Verdict struct {
	// Word is the trimmed candidate.
	Word string
	// Reason is the first failing predicate, or ReasonNone.
	Reason Reason
}

// Kept reports whether the candidate passed every predicate.
func (v Verdict) Kept() bool {
	return v.Reason == ReasonNone
}

// Evaluate trims line and runs the length, letter and case predicates.
// The reported reason is the first one that fails; the kept set does not
// depend on that order.
func Evaluate(line string) Verdict {
	word := strings.TrimFunc(line, isSpace)
	v := Verdict{Word: word}

	switch n := utf8.RuneCountInString(word); {
	case n <= minExclusiveLength:
		v.Reason = ReasonTooShort
	case n >= maxExclusiveLength:
		v.Reason = ReasonTooLong
	case !allLetters(word):
		v.Reason = ReasonNonLetter
	case hasUpper(word):
		v.Reason = ReasonUppercase
	}
	return v
}

// isSpace reports whether r is trimmed from candidates: Unicode white space
// plus the ASCII separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Keep returns the trimmed candidate and whether it belongs in the curated list.
func Keep(line string) (string, bool) {
	v := Evaluate(line)
	return v.Word, v.Kept()
}

// Apply filters lines and returns the trimmed survivors in input order.
// An empty input yields an empty, non-nil slice.
func Apply(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if word, ok := Keep(line); ok {
			kept = append(kept, word)
		}
	}
	return kept
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
