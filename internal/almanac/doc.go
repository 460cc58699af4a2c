// Package almanac parses seed almanacs and finds the lowest location number
// reachable from their seeds.
//
// An almanac starts with a "seeds:" line followed by blank line separated
// "<name> map:" blocks of "destination source length" rules:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The seeds line is read in one of two ways, selected by Part. PartSeeds
// takes every number as a seed. PartRanges groups the numbers in
// (start, length) pairs, each describing a range of seeds; those ranges can
// hold billions of values and are carried through the chain as intervals.
package almanac
