// Package almanac maps integer intervals through layers of range translations
// without enumerating the values they contain.
package almanac

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Interval represents a closed-open range of integers [Start, Start+Length).
//
// A valid Interval always has a Length of at least 1. Operations that would
// produce an empty interval report the result as absent instead.
type Interval struct {
	// Start is the first value in the interval.
	Start uint64

	// Length is the number of values in the interval.
	Length uint64
}

// NewInterval returns the interval [start, start+length).
func NewInterval(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, errors.Wrapf(ErrZeroLength, "interval at %d", start)
	}
	if start > math.MaxUint64-length {
		return Interval{}, errors.Wrapf(ErrOverflow, "interval at %d with length %d", start, length)
	}
	return Interval{Start: start, Length: length}, nil
}

// Last is the inclusive end of the interval.
func (i Interval) Last() uint64 {
	return i.Start + i.Length - 1
}

// End is the exclusive end of the interval: the first value not in it.
func (i Interval) End() uint64 {
	return i.Start + i.Length
}

// Contains reports whether point lies in the interval.
func (i Interval) Contains(point uint64) bool {
	return point >= i.Start && point < i.End()
}

// Overlaps reports whether the two intervals share at least one value.
func (i Interval) Overlaps(other Interval) bool {
	return i.Contains(other.Start) || other.Contains(i.Start)
}

// Intersection returns the values present in both intervals.
// The second return value is false when they do not overlap.
func (i Interval) Intersection(other Interval) (Interval, bool) {
	if !i.Overlaps(other) {
		return Interval{}, false
	}

	start := max(i.Start, other.Start)
	end := min(i.End(), other.End())
	return Interval{Start: start, Length: end - start}, true
}

// RelativeComplement returns the parts of other that fall outside i: the
// piece before i.Start and the piece at or after i.End(). Together with
// i.Intersection(other) they partition other exactly.
func (i Interval) RelativeComplement(other Interval) (left Interval, hasLeft bool, right Interval, hasRight bool) {
	if other.Start < i.Start {
		end := min(i.Start, other.End())
		left, hasLeft = Interval{Start: other.Start, Length: end - other.Start}, true
	}

	if other.End() > i.End() {
		start := max(i.End(), other.Start)
		right, hasRight = Interval{Start: start, Length: other.End() - start}, true
	}

	return left, hasLeft, right, hasRight
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End())
}

// Lowest returns the smallest Start among intervals, or math.MaxUint64 when
// intervals is empty.
func Lowest(intervals []Interval) uint64 {
	lowest := uint64(math.MaxUint64)
	for _, interval := range intervals {
		lowest = min(lowest, interval.Start)
	}
	return lowest
}
