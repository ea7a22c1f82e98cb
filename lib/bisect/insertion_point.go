package bisect

import (
	"fmt"
	"unsafe"

	"github.com/benz9527/xsearch/lib/infra"
)

type pointKind int8

const (
	exactPoint pointKind = iota
	beforePoint
	afterPoint
)

// InsertionPoint is a position inside an ordered index domain: either
// an exact index (At), or a gap next to one (Before, After). It is an
// immutable value, comparable with ==.
//
// Before(i) and After(i-1) denote the same logical gap but compare
// unequal; they differ only in which neighbour anchors the
// representation.
type InsertionPoint[I infra.Signed] struct {
	index I
	kind  pointKind
}

// At is the insertion point of an exact match at index i.
func At[I infra.Signed](i I) InsertionPoint[I] {
	return InsertionPoint[I]{index: i, kind: exactPoint}
}

// Before is the gap preceding index i: everything at or after i is
// greater than the target.
func Before[I infra.Signed](i I) InsertionPoint[I] {
	return InsertionPoint[I]{index: i, kind: beforePoint}
}

// After is the gap following index i: everything at or before i is
// smaller than the target.
func After[I infra.Signed](i I) InsertionPoint[I] {
	return InsertionPoint[I]{index: i, kind: afterPoint}
}

// Exact reports the matched index, or false for a gap.
func (p InsertionPoint[I]) Exact() (I, bool) {
	if p.kind != exactPoint {
		var zero I
		return zero, false
	}
	return p.index, true
}

// Floor is the nearest index at or below the point, saturating at the
// index type's minimum.
func (p InsertionPoint[I]) Floor() I {
	if p.kind == beforePoint && p.index != minIndex[I]() {
		return p.index - 1
	}
	return p.index
}

// Ceiling is the nearest index at or above the point, saturating at
// the index type's maximum.
func (p InsertionPoint[I]) Ceiling() I {
	if p.kind == afterPoint && p.index != maxIndex[I]() {
		return p.index + 1
	}
	return p.index
}

// IsBelowAll reports whether the point precedes the whole representable
// index domain.
func (p InsertionPoint[I]) IsBelowAll() bool {
	return p.kind == beforePoint && p.index == minIndex[I]()
}

// IsAboveAll reports whether the point follows the whole representable
// index domain.
func (p InsertionPoint[I]) IsAboveAll() bool {
	return p.kind == afterPoint && p.index == maxIndex[I]()
}

func (p InsertionPoint[I]) String() string {
	switch p.kind {
	case beforePoint:
		return fmt.Sprintf("before %v", p.index)
	case afterPoint:
		return fmt.Sprintf("after %v", p.index)
	default:
		return fmt.Sprintf("at %v", p.index)
	}
}

func minIndex[I infra.Signed]() I {
	var one I = 1
	return one << (unsafe.Sizeof(one)*8 - 1)
}

func maxIndex[I infra.Signed]() I {
	return ^minIndex[I]()
}
