package almanac

import "github.com/pkg/errors"

var (
	// ErrZeroLength is returned when an interval or mapping entry would be empty.
	ErrZeroLength = errors.New("interval length must be at least 1")

	// ErrOverflow is returned when an interval would extend past the largest uint64.
	ErrOverflow = errors.New("interval end overflows uint64")

	// ErrLengthMismatch is returned when an entry's source and destination differ in length.
	ErrLengthMismatch = errors.New("source and destination lengths differ")

	// ErrOverlap is returned when an entry's source overlaps an entry already in the layer.
	ErrOverlap = errors.New("source interval overlaps an existing entry")

	// ErrNoSeeds is returned when a pipeline is asked to solve an empty set of intervals.
	ErrNoSeeds = errors.New("no initial intervals")
)
