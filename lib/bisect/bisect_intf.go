// Package bisect implements a reusable, type-generic binary search
// engine. The engine bisects an inclusive interval of signed integer
// indexes; what the indexes mean is entirely up to the caller's
// SearchTarget, so the same loop serves sorted slices, virtual domains
// (integer square roots) and non-linear layouts (rotated sorted arrays).
//
// Every exported value is immutable after construction. Distinct
// goroutines may run queries against the same Interval or Searcher
// concurrently without coordination, as long as the backing data a
// SearchTarget reads is not mutated during a query.
package bisect

import (
	"github.com/benz9527/xsearch/lib/infra"
)

// SearchTarget locates the search target relative to mid, the middle
// point of the current search window [low, high].
//
// Returns 0 if mid is the target; negative to continue in the lower
// window [low, mid); positive to continue in the upper window
// (mid, high]. It is guaranteed that low <= mid <= high.
//
// The target function must be monotonic across the interval, i.e. it
// must never report "lower" at one index and "upper" at a smaller
// index. The engine does not validate this; with a non-monotonic
// target the result is unspecified, although every query still
// terminates in O(log n) invocations.
type SearchTarget[I infra.Signed] func(low, mid, high I) int64

// Searcher is a bisection engine bound to a key type K. Adapters such
// as InSortedSlice construct one from an Interval plus a function that
// turns a key into a SearchTarget; MapKey re-binds an existing
// Searcher to another key type.
type Searcher[K any, I infra.Signed] interface {
	// Find searches for the index of key, reporting false if no index
	// matches.
	Find(key K) (I, bool)
	// FindRangeOf computes the contiguous closed span of all indexes
	// matching key, or an empty span positioned at the insertion point.
	FindRangeOf(key K) Span[I]
	// InsertionPointFor locates where key is, or would be inserted
	// in order.
	InsertionPointFor(key K) InsertionPoint[I]
	// InsertionPointBefore locates the gap immediately before the
	// first index greater than or equal to key. Never exact.
	InsertionPointBefore(key K) InsertionPoint[I]
	// InsertionPointAfter locates the gap immediately after the last
	// index less than or equal to key. Never exact.
	InsertionPointAfter(key K) InsertionPoint[I]
}
