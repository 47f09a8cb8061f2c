package almanac

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Seeds holds the numbers from the seeds line as written.
type Seeds []int64

// Values reads the seeds line as a flat list of seed numbers.
func (s Seeds) Values() iter.Seq[int64] {
	return slices.Values(s)
}

// Ranges reads the seeds line as (start, length) pairs. Every range must
// end at or below math.MaxInt64.
func (s Seeds) Ranges() ([]SeedRange, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedRanges, len(s))
	}
	ranges := make([]SeedRange, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		if s[i] > math.MaxInt64-s[i+1] {
			return nil, fmt.Errorf("%w: seed range %d %d", ErrRangeOverflow, s[i], s[i+1])
		}
		ranges = append(ranges, SeedRange{Start: s[i], Length: s[i+1]})
	}
	return ranges, nil
}

// SeedRange is the half-open interval [Start, Start+Length).
type SeedRange struct {
	Start  int64
	Length int64
}

// End is the first value past the range.
func (r SeedRange) End() int64 {
	return r.Start + r.Length
}

// All yields every value in the range in ascending order. The sequence can
// be ranged over any number of times and never holds more than one value.
func (r SeedRange) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := r.Start; v < r.End(); v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Expand concatenates the values of every range, in order.
func Expand(ranges []SeedRange) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, r := range ranges {
			for v := range r.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}
