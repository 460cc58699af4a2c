package mapping

import (
	"almanac/internal/interval"
)

// Table is one stage of the almanac: an ordered list of rules with
// pairwise disjoint source ranges.
type Table struct {
	// Name is the block label, e.g. "seed-to-soil".
	Name  string
	Rules []Rule
}

// NewTable creates a table from its rules.
func NewTable(name string, rules ...Rule) Table {
	return Table{Name: name, Rules: rules}
}

// MapValue returns the destination of v. The first rule containing v wins;
// values outside every rule map to themselves.
func (t Table) MapValue(v uint64) uint64 {
	for _, r := range t.Rules {
		if r.Contains(v) {
			return r.Apply(v)
		}
	}

	return v
}

// Propagate maps every interval of in through the table.
//
// Each interval is split at rule boundaries. A covered part is shifted and
// goes straight to the result; uncovered parts go on to the following rules
// and pass through unchanged once all rules have been tried. Before merging,
// the result holds exactly as many values as the input.
func (t Table) Propagate(in interval.Set, opts ...Option) interval.Set {
	o := newOptions(opts)

	out := make(interval.Set, 0, len(in))
	for _, iv := range in {
		out = append(out, t.propagate(iv)...)
	}

	if o.merge {
		return out.Merge()
	}

	return out
}

func (t Table) propagate(iv interval.Interval) []interval.Interval {
	if iv.IsEmpty() {
		return nil
	}

	var mapped []interval.Interval

	pending := []interval.Interval{iv}
	for _, r := range t.Rules {
		src := r.SourceRange()

		var unmatched []interval.Interval
		for _, w := range pending {
			overlap := w.Intersect(src)
			if overlap.IsEmpty() {
				unmatched = append(unmatched, w)
				continue
			}

			mapped = append(mapped, r.ApplyRange(overlap))
			unmatched = append(unmatched, w.Subtract(overlap)...)
		}

		pending = unmatched
		if len(pending) == 0 {
			break
		}
	}

	return append(mapped, pending...)
}
