package bisect

import (
	"errors"
	"fmt"

	"github.com/benz9527/xsearch/lib/infra"
)

var (
	// ErrInvalidRange reports interval bounds inverted by more than the
	// single step that denotes an empty interval.
	ErrInvalidRange = errors.New("[bisect] invalid search range")
	// ErrInvalidTolerance reports a negative or NaN fuzzy tolerance.
	ErrInvalidTolerance = errors.New("[bisect] invalid tolerance")
)

// Interval is an inclusive index domain [from, to] that bisection
// queries run against. The zero value is unusable; construct with
// InRange.
type Interval[I infra.Signed] struct {
	from, to I
	empty    bool
}

// InRange builds the search interval [from, to], both bounds
// inclusive. The interval is empty exactly when to == from-1; bounds
// inverted any further are rejected with ErrInvalidRange. The full
// representable range of I is a valid interval.
func InRange[I infra.Signed](from, to I) (Interval[I], error) {
	if from > to {
		// Wrapping subtraction on purpose: [MaxI, MinI] must be
		// rejected, not trapped.
		if from-to != 1 {
			return Interval[I]{}, infra.WrapErrorStack(
				fmt.Errorf("%w: from (%v) vs. to (%v)", ErrInvalidRange, from, to))
		}
		return Interval[I]{from: from, to: to, empty: true}, nil
	}
	return Interval[I]{from: from, to: to}, nil
}

// From is the interval's lower bound.
func (iv Interval[I]) From() I {
	return iv.from
}

// To is the interval's upper bound. For an empty interval, To() == From()-1.
func (iv Interval[I]) To() I {
	return iv.to
}

func (iv Interval[I]) IsEmpty() bool {
	return iv.empty
}

// Find searches for the index of target, reporting false if no index
// matches. Shorthand for InsertionPointFor(target).Exact().
func (iv Interval[I]) Find(target SearchTarget[I]) (I, bool) {
	return iv.InsertionPointFor(target).Exact()
}

// InsertionPointFor runs the bisection and locates where the target
// is, or would have to be inserted to keep the domain ordered. An
// empty interval yields Before(from) without ever invoking target.
//
// A nil target panics before any bisection step runs.
func (iv Interval[I]) InsertionPointFor(target SearchTarget[I]) InsertionPoint[I] {
	if target == nil {
		panic("[bisect] nil search target")
	}
	if iv.empty {
		return Before(iv.from)
	}
	for low, high := iv.from, iv.to; ; {
		mid := safeMid(low, high)
		if where := target(low, mid, high); where > 0 {
			if mid == high { // mid is the floor
				return After(mid)
			}
			low = mid + 1
		} else if where < 0 {
			if mid == low { // mid is the ceiling
				return Before(mid)
			}
			high = mid - 1
		} else {
			return At(mid)
		}
	}
}

// InsertionPointBefore locates the gap immediately before the first
// index classified at-or-above the target; everything at or after the
// returned point is >= target. The result is never exact.
func (iv Interval[I]) InsertionPointBefore(target SearchTarget[I]) InsertionPoint[I] {
	return iv.InsertionPointFor(lowerBoundOf(target))
}

// InsertionPointAfter locates the gap immediately after the last index
// classified at-or-below the target. The result is never exact.
func (iv Interval[I]) InsertionPointAfter(target SearchTarget[I]) InsertionPoint[I] {
	return iv.InsertionPointFor(upperBoundOf(target))
}

// FindRangeOf computes the span of all indexes matching the target by
// combining the before and after insertion points. With no match the
// span is empty and sits at the insertion point, saturated to the
// index type's maximum when the point is above the whole domain.
func (iv Interval[I]) FindRangeOf(target SearchTarget[I]) Span[I] {
	left := iv.InsertionPointBefore(target)
	right := iv.InsertionPointAfter(target)
	if left != right {
		return Closed(left.Ceiling(), right.Floor())
	}
	if right.IsAboveAll() {
		return EmptyAt(right.Floor())
	}
	return EmptyAt(right.Ceiling())
}

// lowerBoundOf degrades an exact target into one that is never
// satisfied and steers the loop to the gap before the leftmost match.
func lowerBoundOf[I infra.Signed](target SearchTarget[I]) SearchTarget[I] {
	if target == nil {
		panic("[bisect] nil search target")
	}
	return func(low, mid, high I) int64 {
		if target(low, mid, high) <= 0 {
			return -1
		}
		return 1
	}
}

// upperBoundOf is the mirror of lowerBoundOf for the gap after the
// rightmost match.
func upperBoundOf[I infra.Signed](target SearchTarget[I]) SearchTarget[I] {
	if target == nil {
		panic("[bisect] nil search target")
	}
	return func(low, mid, high I) int64 {
		if target(low, mid, high) < 0 {
			return -1
		}
		return 1
	}
}

// safeMid halves [low, high] without overflowing at the index type's
// limits: same-sign bounds keep the sum out of the formula entirely,
// and opposite-sign bounds cannot overflow a plain sum.
func safeMid[I infra.Signed](low, high I) I {
	if (low >= 0) == (high >= 0) {
		return low + (high-low)/2
	}
	return (low + high) / 2
}
