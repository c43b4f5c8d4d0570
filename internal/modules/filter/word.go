package filter

import (
	"context"
	"log/slog"

	"github.com/textris/wordtrim/internal/logger"
)

// ModuleTypeWord names the word filter in stage logs.
const ModuleTypeWord = "word"

// cancelCheckInterval is how many lines are processed between context checks.
const cancelCheckInterval = 4096

// Stats summarizes one Process call.
type Stats struct {
	// Read is the number of candidate lines evaluated
	Read int
	// Kept is the number of candidates that passed
	Kept int
	// Rejected counts rejected candidates per reason
	Rejected map[Reason]int
}

// RejectedTotal returns the number of rejected candidates.
func (s Stats) RejectedTotal() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// WordModule applies the word predicates as a pipeline filter module and
// keeps per-reason counts of the last run.
type WordModule struct {
	stats Stats
}

// NewWordModule creates a word filter module.
func NewWordModule() *WordModule {
	return &WordModule{}
}

// Process evaluates every line in order and returns the trimmed survivors.
// The only error it can return is the context's.
func (m *WordModule) Process(ctx context.Context, lines []string) ([]string, error) {
	stats := Stats{Rejected: make(map[Reason]int)}
	kept := make([]string, 0, len(lines))
	log := logger.WithModule("filter", ModuleTypeWord)

	for i, line := range lines {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		v := Evaluate(line)
		stats.Read++
		if v.Kept() {
			kept = append(kept, v.Word)
			continue
		}
		stats.Rejected[v.Reason]++
		log.Debug("word rejected",
			slog.Int("line", i+1),
			slog.String("word", v.Word),
			slog.String("reason", string(v.Reason)),
		)
	}

	stats.Kept = len(kept)
	m.stats = stats
	return kept, nil
}

// Stats returns the counters of the most recent Process call.
func (m *WordModule) Stats() Stats {
	return m.stats
}

var _ Module = (*WordModule)(nil)
