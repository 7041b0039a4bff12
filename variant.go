package almanac

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant selects how the seeds line turns into initial intervals.
type Variant int

const (
	// Values treats every seed as a single value.
	Values Variant = iota

	// Ranges reads seeds as (start, length) pairs.
	Ranges
)

func (v Variant) String() string {
	switch v {
	case Values:
		return "values"
	case Ranges:
		return "ranges"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name. The empty string selects Ranges.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "values", "value", "part1":
		return Values, nil
	case "", "ranges", "range", "part2":
		return Ranges, nil
	}
	return 0, errors.Errorf("unknown variant %q", name)
}

// SeedIntervals turns the numbers of a seeds line into initial intervals.
func SeedIntervals(seeds []uint64, variant Variant) ([]Interval, error) {
	switch variant {
	case Values:
		intervals := make([]Interval, 0, len(seeds))
		for _, seed := range seeds {
			interval, err := NewInterval(seed, 1)
			if err != nil {
				return nil, err
			}
			intervals = append(intervals, interval)
		}
		return intervals, nil

	case Ranges:
		if len(seeds)%2 != 0 {
			return nil, errors.Errorf("seed ranges need an even count of numbers, got %d", len(seeds))
		}
		intervals := make([]Interval, 0, len(seeds)/2)
		for i := 0; i < len(seeds); i += 2 {
			interval, err := NewInterval(seeds[i], seeds[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "seed range %d", i/2+1)
			}
			intervals = append(intervals, interval)
		}
		return intervals, nil
	}

	return nil, errors.Errorf("unknown variant %d", int(variant))
}
