// ABOUTME: In-memory invocation journal recording one ULID-stamped entry per tool call.
// ABOUTME: Bounded ring semantics; oldest records are dropped once capacity is reached.

package journal

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID using crypto/rand entropy.
func NewULID() ulid.ULID {
	return ulid.MustNew(ulid.Now(), rand.Reader)
}

// Record is one tool invocation: what ran, whether it succeeded, and how long it took.
type Record struct {
	ID       ulid.ULID
	Tool     string
	OK       bool
	Duration time.Duration
	Summary  string
}

// Journal is a bounded, thread-safe record of tool invocations.
type Journal struct {
	mu      sync.Mutex
	cap     int
	records []Record
}

// New creates a journal holding at most capacity records.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = 256
	}
	return &Journal{cap: capacity}
}

// Append records one invocation, assigning it a fresh ULID.
func (j *Journal) Append(tool string, ok bool, duration time.Duration, summary string) Record {
	rec := Record{
		ID:       NewULID(),
		Tool:     tool,
		OK:       ok,
		Duration: duration,
		Summary:  summary,
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.records = append(j.records, rec)
	if len(j.records) > j.cap {
		j.records = j.records[len(j.records)-j.cap:]
	}
	return rec
}

// Records returns a copy of the journal's records, oldest first.
func (j *Journal) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Record, len(j.records))
	copy(out, j.records)
	return out
}

// Len returns the number of records currently held.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.records)
}
