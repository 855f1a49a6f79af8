package log

import (
	"fmt"
	"io"
	"sync"
)

// DefaultBacklogSize is used by [NewBacklog] for non-positive sizes.
const DefaultBacklogSize = 100

// Backlog keeps the most recent log records in memory while the terminal is
// owned by the UI. It implements [io.Writer]; each Write is one record.
type Backlog struct {
	records [][]byte
	next    int
	dropped int
	mu      sync.Mutex
	full    bool
}

// NewBacklog creates a [Backlog] holding up to size records.
func NewBacklog(size int) *Backlog {
	if size <= 0 {
		size = DefaultBacklogSize
	}

	return &Backlog{records: make([][]byte, size)}
}

// Write stores a copy of p, replacing the oldest record when full.
func (b *Backlog) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.full {
		b.dropped++
	}

	b.records[b.next] = append([]byte(nil), p...)
	b.next = (b.next + 1) % len(b.records)
	if b.next == 0 {
		b.full = true
	}

	return len(p), nil
}

// Records returns copies of the stored records, oldest first.
func (b *Backlog) Records() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	var order []int
	if b.full {
		for i := range len(b.records) {
			order = append(order, (b.next+i)%len(b.records))
		}
	} else {
		for i := range b.next {
			order = append(order, i)
		}
	}

	out := make([][]byte, 0, len(order))
	for _, i := range order {
		out = append(out, append([]byte(nil), b.records[i]...))
	}

	return out
}

// Len returns the number of stored records.
func (b *Backlog) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.full {
		return len(b.records)
	}

	return b.next
}

// Cap returns the maximum number of stored records.
func (b *Backlog) Cap() int {
	return len(b.records)
}

// Dropped returns how many records were overwritten.
func (b *Backlog) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}

// WriteTo writes the stored records to w, oldest first.
func (b *Backlog) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, r := range b.Records() {
		n, err := w.Write(r)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write record: %w", err)
		}
	}

	return total, nil
}
