package interval

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

// ErrEmptySet is returned when an answer is requested from a set with no intervals.
var ErrEmptySet = errors.New("empty interval set")

// Set is a collection of intervals.
type Set []Interval

// Of builds a set from the given intervals, dropping empty ones.
func Of(intervals ...Interval) Set {
	s := make(Set, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			s = append(s, iv)
		}
	}

	return s
}

// TotalLen returns the sum of the lengths of all intervals in the set.
func (s Set) TotalLen() uint64 {
	var total uint64
	for _, iv := range s {
		total += iv.Len()
	}

	return total
}

// MinStart returns the smallest lower bound in the set.
func (s Set) MinStart() (uint64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySet
	}

	lowest := s[0].Start
	for _, iv := range s[1:] {
		lowest = min(lowest, iv.Start)
	}

	return lowest, nil
}

// Merge returns a sorted copy of the set where overlapping and adjacent
// intervals are coalesced and empty intervals are dropped.
func (s Set) Merge() Set {
	sorted := Of(s...)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	merged := sorted[:0]
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, iv.End)
			continue
		}

		merged = append(merged, iv)
	}

	return merged
}

// String returns the intervals joined by spaces.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, iv := range s {
		parts = append(parts, iv.String())
	}

	return "{" + strings.Join(parts, " ") + "}"
}
