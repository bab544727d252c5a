// Package history keeps the ordered log of completed test runs.
//
// The log always holds at least one entry: the results it was created with.
// Entries are never removed or modified; a cursor selects the entry being
// looked at and navigation wraps around at both ends.
package history

import (
	"time"

	"github.com/google/uuid"

	"yamori/internal/runner"
	"yamori/pkg/logging"
)

// Entry is one completed run.
type Entry struct {
	ID        string              `json:"id"`
	Timestamp time.Time           `json:"timestamp"`
	Results   []runner.TestResult `json:"results"`
	Release   bool                `json:"release"`
}

// Stats summarises an entry for the statistics view.
func (e Entry) Stats() EntryStats {
	s := runner.Summarize(e.Results)
	return EntryStats{
		Timestamp: e.Timestamp,
		Passed:    s.Passed,
		Total:     s.Total,
		Release:   e.Release,
	}
}

func (e Entry) clone() Entry {
	out := e
	out.Results = runner.CloneResults(e.Results)
	return out
}

// EntryStats is the per-run tuple shown by the statistics view.
type EntryStats struct {
	Timestamp time.Time `json:"timestamp"`
	Passed    int       `json:"passed"`
	Total     int       `json:"total"`
	Release   bool      `json:"release"`
}

// Log is the run history. It is not safe for concurrent use.
type Log struct {
	entries  []Entry
	selected int
	clock    func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock sets the time source used to stamp entries.
func WithClock(clock func() time.Time) Option {
	return func(l *Log) { l.clock = clock }
}

// New creates a log seeded with one debug-mode entry holding seed.
func New(seed []runner.TestResult, opts ...Option) *Log {
	l := &Log{clock: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	l.entries = []Entry{l.newEntry(seed, false)}
	return l
}

func (l *Log) newEntry(results []runner.TestResult, release bool) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: l.clock(),
		Results:   runner.CloneResults(results),
		Release:   release,
	}
}

// Append records a completed run and selects it.
func (l *Log) Append(results []runner.TestResult, release bool) Entry {
	e := l.newEntry(results, release)
	l.entries = append(l.entries, e)
	l.selected = len(l.entries) - 1
	logging.Debug("History", "Recorded run %s (%d results, release=%v), %d entries", e.ID, len(e.Results), release, len(l.entries))
	return e.clone()
}

// Len is the number of entries, never less than one.
func (l *Log) Len() int { return len(l.entries) }

// SelectedIndex is the cursor position.
func (l *Log) SelectedIndex() int { return l.selected }

// Selected returns a copy of the entry under the cursor.
func (l *Log) Selected() Entry { return l.entries[l.selected].clone() }

// Latest returns a copy of the most recent entry.
func (l *Log) Latest() Entry { return l.entries[len(l.entries)-1].clone() }

// Select moves the cursor to i. Out of range indices are ignored and false
// is returned.
func (l *Log) Select(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	l.selected = i
	return true
}

// Next moves the cursor forward, wrapping to the first entry.
func (l *Log) Next() Entry {
	l.selected = (l.selected + 1) % len(l.entries)
	return l.Selected()
}

// Previous moves the cursor back, wrapping to the last entry.
func (l *Log) Previous() Entry {
	if l.selected == 0 {
		l.selected = len(l.entries) - 1
	} else {
		l.selected--
	}
	return l.Selected()
}

// Entries returns copies of all entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.clone()
	}
	return out
}

// Stats returns one tuple per entry, oldest first.
func (l *Log) Stats() []EntryStats {
	out := make([]EntryStats, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Stats()
	}
	return out
}
