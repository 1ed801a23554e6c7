// Package vclock provides an immutable vector clock for tracking causality
// between events produced by independent hosts. Each operation returns a new
// clock value, so any clock a caller holds is a stable snapshot that can be
// shared across goroutines without synchronization.
package vclock
