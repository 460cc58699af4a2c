package mapping

import (
	"fmt"

	"almanac/internal/interval"
)

// Rule shifts the source range [Source, Source+Length) onto
// [Destination, Destination+Length).
type Rule struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// SourceRange returns the range of values the rule applies to.
func (r Rule) SourceRange() interval.Interval {
	return interval.New(r.Source, r.Length)
}

// DestinationRange returns the range the source range is moved to.
func (r Rule) DestinationRange() interval.Interval {
	return interval.New(r.Destination, r.Length)
}

// Contains reports whether the rule applies to v.
func (r Rule) Contains(v uint64) bool {
	return r.SourceRange().Contains(v)
}

// Apply maps v, which must lie inside the source range.
func (r Rule) Apply(v uint64) uint64 {
	return r.Destination + (v - r.Source)
}

// ApplyRange maps an interval lying inside the source range.
func (r Rule) ApplyRange(iv interval.Interval) interval.Interval {
	return iv.Translate(r.Source, r.Destination)
}

// String returns the rule in almanac notation.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination, r.Source, r.Length)
}
