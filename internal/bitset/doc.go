// Package bitset provides a fixed-capacity, single-owner bitset.
//
// Used internally for:
//   - Aliveness tracking during a greedy sweep (one bit per candidate)
//   - Membership checks while verifying a solution
//
// A Set is not safe for concurrent use. Each greedy run allocates its own.
package bitset
