// Package interval provides half-open integer ranges and sets of them.
//
// An Interval is the range [Start, End) of non-negative integers. A Set is a
// plain slice of intervals that, once built through Of or Merge, never holds
// an empty interval. Sets are values: operations return new sets instead of
// changing the receiver.
package interval
