package interval

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	// Start is the inclusive lower bound.
	Start uint64
	// End is the exclusive upper bound.
	End uint64
}

// New returns the interval [start, start+length).
func New(start, length uint64) Interval {
	return Interval{Start: start, End: start + length}
}

// Len returns the number of integers in the interval.
func (i Interval) Len() uint64 {
	if i.End <= i.Start {
		return 0
	}

	return i.End - i.Start
}

// IsEmpty reports whether the interval holds no integers.
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(v uint64) bool {
	return i.Start <= v && v < i.End
}

// Overlaps reports whether i and o share at least one integer.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End && !i.IsEmpty() && !o.IsEmpty()
}

// Intersect returns the intersection of i and o. When they do not overlap
// the result has unspecified bounds but IsEmpty reports true.
func (i Interval) Intersect(o Interval) Interval {
	if i.Start < o.Start {
		i.Start = o.Start
	}

	if i.End > o.End {
		i.End = o.End
	}

	if i.End < i.Start {
		i.End = i.Start
	}

	return i
}

// Subtract returns the parts of i not covered by o, in ascending order.
// There are zero, one or two of them and none is empty.
func (i Interval) Subtract(o Interval) []Interval {
	if !i.Overlaps(o) {
		if i.IsEmpty() {
			return nil
		}

		return []Interval{i}
	}

	var rest []Interval
	if i.Start < o.Start {
		rest = append(rest, Interval{Start: i.Start, End: o.Start})
	}

	if o.End < i.End {
		rest = append(rest, Interval{Start: o.End, End: i.End})
	}

	return rest
}

// Translate moves the interval so that the point from lands on to.
// Relative order inside the interval is kept.
func (i Interval) Translate(from, to uint64) Interval {
	return Interval{Start: to + (i.Start - from), End: to + (i.End - from)}
}

// String returns the interval in "[start, end)" notation.
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
