// Package mapping provides remap rules, mapping tables and the chain of
// tables that carries almanac values from seeds to locations.
//
// # Rules and tables
//
// A Rule is the triple (destination, source, length) read verbatim from an
// almanac block. It shifts every value of [source, source+length) by the
// constant destination-source. A Table is an ordered list of rules whose
// source ranges do not overlap; values outside every rule map to themselves.
//
// # Propagation
//
// Table.Propagate carries whole interval sets through a table instead of
// single values. Every input interval is split at rule boundaries: the
// covered parts are shifted once and never rescanned, the uncovered parts
// keep being matched against the remaining rules, and whatever is left after
// the last rule passes through unchanged. The total length of the set is
// preserved.
//
// Because each rule is an order preserving shift, the smallest value of a
// mapped interval is always its start, so the minimum over a set of values
// equals the minimum lower bound of the propagated set.
//
// # Chains
//
// A Chain folds Propagate (or MapValue for single values) over its stages in
// order. Stages are identified by position; their names are labels used by
// validation and diagnostics only.
package mapping
