package bisect

import (
	"fmt"

	"github.com/benz9527/xsearch/lib/infra"
)

// Span is a set of consecutive indexes: either a closed interval
// [lo, hi], or an empty half-open interval [at, at) positioned where a
// missing target would be inserted. Immutable, comparable with ==.
type Span[I infra.Signed] struct {
	lo, hi I
	empty  bool
}

// Closed is the span of every index in [lo, hi]. Requires lo <= hi.
func Closed[I infra.Signed](lo, hi I) Span[I] {
	if lo > hi {
		panic("[bisect] closed span with lo > hi")
	}
	return Span[I]{lo: lo, hi: hi}
}

// EmptyAt is the empty span [at, at).
func EmptyAt[I infra.Signed](at I) Span[I] {
	return Span[I]{lo: at, hi: at, empty: true}
}

// Lo is the span's lower endpoint. For an empty span it is the
// insertion point.
func (s Span[I]) Lo() I {
	return s.lo
}

// Hi is the span's upper endpoint, inclusive for a non-empty span.
func (s Span[I]) Hi() I {
	return s.hi
}

func (s Span[I]) IsEmpty() bool {
	return s.empty
}

func (s Span[I]) Contains(i I) bool {
	return !s.empty && s.lo <= i && i <= s.hi
}

func (s Span[I]) String() string {
	if s.empty {
		return fmt.Sprintf("[%v, %v)", s.lo, s.hi)
	}
	return fmt.Sprintf("[%v, %v]", s.lo, s.hi)
}
