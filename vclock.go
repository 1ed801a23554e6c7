package vclock

import (
	"fmt"
	"sort"
	"strings"
)

// TemporalRelation classifies the causal relationship between two clocks.
type TemporalRelation int

const (
	// Equal indicates the clocks agree on every host's counter.
	Equal TemporalRelation = iota
	// Caused indicates this clock happened before the other.
	Caused
	// EffectOf indicates the other clock happened before this one.
	EffectOf
	// Concurrent indicates the clocks have no causal relationship.
	Concurrent
)

// String returns the relation name.
func (r TemporalRelation) String() string {
	switch r {
	case Equal:
		return "Equal"
	case Caused:
		return "Caused"
	case EffectOf:
		return "EffectOf"
	case Concurrent:
		return "Concurrent"
	default:
		return fmt.Sprintf("TemporalRelation(%d)", int(r))
	}
}

// Entry is one explicit (host, count) pair of a clock, used for bulk
// construction and export.
type Entry[H comparable] struct {
	Host  H
	Count uint64
}

// VectorClock maps host IDs to event counters. Hosts absent from the map
// are at an implicit zero; stored counters are always >= 1. The zero value
// is the empty clock. Clocks are immutable: Incremented and MergeWith
// return new values and never modify their inputs.
type VectorClock[H comparable] struct {
	entries map[H]uint64
}

// New creates an empty vector clock with every host at zero.
func New[H comparable]() VectorClock[H] {
	return VectorClock[H]{}
}

// FromEntries builds a clock from a list of (host, count) pairs. If a host
// appears more than once, the last pair wins. A zero count leaves the host
// at its implicit zero, erasing any earlier pair for that host.
func FromEntries[H comparable](entries []Entry[H]) VectorClock[H] {
	m := make(map[H]uint64, len(entries))
	for _, e := range entries {
		if e.Count == 0 {
			delete(m, e.Host)
			continue
		}
		m[e.Host] = e.Count
	}
	return VectorClock[H]{entries: m}
}

// Entries returns the explicit (non-zero) entries in unspecified order.
func (vc VectorClock[H]) Entries() []Entry[H] {
	out := make([]Entry[H], 0, len(vc.entries))
	for host, n := range vc.entries {
		out = append(out, Entry[H]{Host: host, Count: n})
	}
	return out
}

// Get returns the counter for the given host, or 0 if not present.
func (vc VectorClock[H]) Get(host H) uint64 {
	return vc.entries[host]
}

// Len returns the number of hosts with a non-zero counter.
func (vc VectorClock[H]) Len() int {
	return len(vc.entries)
}

// clone copies the entry map with room for one extra host.
func (vc VectorClock[H]) clone() map[H]uint64 {
	m := make(map[H]uint64, len(vc.entries)+1)
	for host, n := range vc.entries {
		m[host] = n
	}
	return m
}

// Incremented returns a copy of the clock with the counter for the given
// host advanced by one. A first increment for a host yields 1.
func (vc VectorClock[H]) Incremented(host H) VectorClock[H] {
	m := vc.clone()
	m[host]++
	return VectorClock[H]{entries: m}
}

// MergeWith returns the pointwise maximum of the two clocks: for every
// host in either input, the result holds the larger counter. The result
// causally succeeds (or equals) both inputs.
func (vc VectorClock[H]) MergeWith(other VectorClock[H]) VectorClock[H] {
	m := vc.clone()
	for host, n := range other.entries {
		if m[host] < n {
			m[host] = n
		}
	}
	return VectorClock[H]{entries: m}
}

// Relation classifies the causal relationship between two clocks.
// Returns:
//   - Equal: all counters agree
//   - Caused: this clock happened before other (all counters <=, at least one <)
//   - EffectOf: other happened before this clock
//   - Concurrent: neither dominates the other
func (vc VectorClock[H]) Relation(other VectorClock[H]) TemporalRelation {
	switch {
	case vc.Equal(other):
		return Equal
	case vc.supersededBy(other):
		return Caused
	case other.supersededBy(vc):
		return EffectOf
	default:
		return Concurrent
	}
}

// supersededBy reports whether every counter in vc is <= the matching
// counter in other, with at least one strictly smaller. Both entry maps
// must be walked: a host present only in other is invisible to the first
// loop, with vc implicitly at zero for it.
func (vc VectorClock[H]) supersededBy(other VectorClock[H]) bool {
	hasSmaller := false

	for host, n := range vc.entries {
		otherN := other.Get(host)
		if n > otherN {
			return false
		}
		if n < otherN {
			hasSmaller = true
		}
	}

	for host, otherN := range other.entries {
		n := vc.Get(host)
		if n > otherN {
			return false
		}
		if n < otherN {
			hasSmaller = true
		}
	}

	return hasSmaller
}

// Equal checks if two vector clocks agree on every host's counter.
func (vc VectorClock[H]) Equal(other VectorClock[H]) bool {
	if len(vc.entries) != len(other.entries) {
		return false
	}
	for host, n := range vc.entries {
		if other.entries[host] != n {
			return false
		}
	}
	return true
}

// Dominates returns true if this clock happened after the other.
func (vc VectorClock[H]) Dominates(other VectorClock[H]) bool {
	return vc.Relation(other) == EffectOf
}

// IsConcurrent returns true if this clock is concurrent with the other.
func (vc VectorClock[H]) IsConcurrent(other VectorClock[H]) bool {
	return vc.Relation(other) == Concurrent
}

// String returns a string representation of the vector clock.
func (vc VectorClock[H]) String() string {
	if len(vc.entries) == 0 {
		return "{}"
	}

	// Sort for deterministic output
	parts := make([]string, 0, len(vc.entries))
	for host, n := range vc.entries {
		parts = append(parts, fmt.Sprintf("%v:%d", host, n))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}
