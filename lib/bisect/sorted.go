package bisect

import (
	"github.com/samber/lo"

	"github.com/benz9527/xsearch/lib/infra"
)

// By binds an interval to a key type. The locate adapter turns each
// queried key into the SearchTarget that steers the bisection; it runs
// once per query and must not retain state across queries.
func By[K any, I infra.Signed](iv Interval[I], locate func(key K) SearchTarget[I]) Searcher[K, I] {
	if locate == nil {
		panic("[bisect] nil locate adapter")
	}
	return keyedSearcher[K, I]{iv: iv, locate: locate}
}

// MapKey re-binds a searcher to key type E by mapping every queried
// key through mapper before delegating. Pure composition, no new
// state, no extra predicate invocations.
func MapKey[E, K any, I infra.Signed](next Searcher[K, I], mapper func(key E) K) Searcher[E, I] {
	if next == nil || mapper == nil {
		panic("[bisect] nil searcher or key mapper")
	}
	return mappedSearcher[E, K, I]{next: next, mapper: mapper}
}

// InSortedSlice builds a searcher over a slice sorted ascending by the
// natural order of its elements. The slice is neither copied nor
// retained beyond the closures bound to it; mutating it between
// queries is the caller's responsibility, mutating it during a query
// is a data race.
func InSortedSlice[E infra.OrderedKey](s []E) Searcher[E, int] {
	return By(sliceInterval(s), func(key E) SearchTarget[int] {
		return func(low, mid, high int) int64 {
			return infra.OrderedCompare(key, s[mid])
		}
	})
}

// InSortedSliceFunc is InSortedSlice for a slice sorted by an explicit
// comparator. cmp receives the queried key first and the probed
// element second.
func InSortedSliceFunc[E any](s []E, cmp func(key, elem E) int64) Searcher[E, int] {
	if cmp == nil {
		panic("[bisect] nil comparator")
	}
	return By(sliceInterval(s), func(key E) SearchTarget[int] {
		return func(low, mid, high int) int64 {
			return cmp(key, s[mid])
		}
	})
}

// InSortedSliceBy searches a slice sorted ascending by the sortedBy
// key of each element; queries are by key, not by element.
func InSortedSliceBy[K infra.OrderedKey, E any](s []E, sortedBy func(elem E) K) Searcher[K, int] {
	if sortedBy == nil {
		panic("[bisect] nil sort key extractor")
	}
	return By(sliceInterval(s), func(key K) SearchTarget[int] {
		return func(low, mid, high int) int64 {
			return infra.OrderedCompare(key, sortedBy(s[mid]))
		}
	})
}

// [0, len-1] is valid for every slice; the empty slice binds the
// permitted empty interval.
func sliceInterval[E any](s []E) Interval[int] {
	return lo.Must(InRange(0, len(s)-1))
}

type keyedSearcher[K any, I infra.Signed] struct {
	iv     Interval[I]
	locate func(key K) SearchTarget[I]
}

func (ks keyedSearcher[K, I]) Find(key K) (I, bool) {
	return ks.iv.Find(ks.locate(key))
}

func (ks keyedSearcher[K, I]) FindRangeOf(key K) Span[I] {
	return ks.iv.FindRangeOf(ks.locate(key))
}

func (ks keyedSearcher[K, I]) InsertionPointFor(key K) InsertionPoint[I] {
	return ks.iv.InsertionPointFor(ks.locate(key))
}

func (ks keyedSearcher[K, I]) InsertionPointBefore(key K) InsertionPoint[I] {
	return ks.iv.InsertionPointBefore(ks.locate(key))
}

func (ks keyedSearcher[K, I]) InsertionPointAfter(key K) InsertionPoint[I] {
	return ks.iv.InsertionPointAfter(ks.locate(key))
}

type mappedSearcher[E, K any, I infra.Signed] struct {
	next   Searcher[K, I]
	mapper func(key E) K
}

func (ms mappedSearcher[E, K, I]) Find(key E) (I, bool) {
	return ms.next.Find(ms.mapper(key))
}

func (ms mappedSearcher[E, K, I]) FindRangeOf(key E) Span[I] {
	return ms.next.FindRangeOf(ms.mapper(key))
}

func (ms mappedSearcher[E, K, I]) InsertionPointFor(key E) InsertionPoint[I] {
	return ms.next.InsertionPointFor(ms.mapper(key))
}

func (ms mappedSearcher[E, K, I]) InsertionPointBefore(key E) InsertionPoint[I] {
	return ms.next.InsertionPointBefore(ms.mapper(key))
}

func (ms mappedSearcher[E, K, I]) InsertionPointAfter(key E) InsertionPoint[I] {
	return ms.next.InsertionPointAfter(ms.mapper(key))
}
