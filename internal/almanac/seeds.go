package almanac

import (
	"fmt"
	"math"

	"almanac/internal/common"
	"almanac/internal/interval"
)

// ExpandSeedRanges groups flat in (start, length) pairs and returns one
// interval per pair. Zero length pairs yield nothing; overlapping pairs are
// kept as given.
func ExpandSeedRanges(flat []uint64) (interval.Set, error) {
	if common.IsOdd(flat) {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedList, len(flat))
	}

	ranges := make([]interval.Interval, 0, len(flat)/2)
	for i, pair := range common.Pairs(flat) {
		start, length := pair[0], pair[1]
		if length > math.MaxUint64-start {
			return nil, fmt.Errorf("%w: pair %d (%d %d)", ErrSeedRangeOverflow, i+1, start, length)
		}

		ranges = append(ranges, interval.New(start, length))
	}

	return interval.Of(ranges...), nil
}
