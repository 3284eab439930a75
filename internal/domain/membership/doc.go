// Package membership is the client membership lifecycle engine: date
// arithmetic, status derivation, filtering, dashboard aggregation, renewal
// and notification generation.
//
// Every function is a pure computation over a snapshot of clients and an
// explicit "now". Nothing here reads the clock, performs I/O or keeps state,
// so callers may use it from any goroutine on independent snapshots.
package membership
