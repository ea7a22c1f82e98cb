package bisect

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/benz9527/xsearch/lib/infra"
)

// FuzzyCompare orders a against b with equality relaxed to an absolute
// tolerance: 0 when |a-b| <= tolerance, otherwise the sign of a-b.
//
// Special cases are a deliberate policy, not an accident:
//   - a +Inf tolerance makes every pair of reals equal;
//   - equal infinities compare equal under any tolerance;
//   - NaN compares above every real value, and two NaNs compare equal;
//   - a NaN tolerance relaxes nothing (|a-b| <= NaN is always false),
//     so distinct values keep their exact ordering. The slice adapters
//     reject NaN tolerance up front; this primitive does not validate.
func FuzzyCompare[F infra.Float](a, b, tolerance F) int64 {
	if a == b || F(math.Abs(float64(a-b))) <= tolerance {
		return 0
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	// At least one NaN.
	aNaN, bNaN := a != a, b != b
	if aNaN && bNaN {
		return 0
	}
	if aNaN {
		return 1
	}
	return -1
}

// InSortedSliceWithTolerance builds a searcher over a sorted
// floating-point slice where a key matches an element when they are
// within the absolute tolerance of each other (per FuzzyCompare).
// The tolerance must be non-negative; +Inf is allowed and collapses
// the whole slice into one equivalence class, NaN is not.
func InSortedSliceWithTolerance[F infra.Float](s []F, tolerance F) (Searcher[F, int], error) {
	if tolerance < 0 || math.IsNaN(float64(tolerance)) {
		return nil, infra.WrapErrorStack(
			fmt.Errorf("%w: (%v) must be non-negative and not NaN", ErrInvalidTolerance, tolerance))
	}
	return By(sliceInterval(s), func(key F) SearchTarget[int] {
		return func(low, mid, high int) int64 {
			return FuzzyCompare(key, s[mid], tolerance)
		}
	}), nil
}

// MustInSortedSliceWithTolerance is InSortedSliceWithTolerance for a
// tolerance already known to be valid.
func MustInSortedSliceWithTolerance[F infra.Float](s []F, tolerance F) Searcher[F, int] {
	return lo.Must(InSortedSliceWithTolerance(s, tolerance))
}
