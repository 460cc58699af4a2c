package almanac

import "errors"

var (
	// ErrMissingSeeds is returned when the almanac does not start with a seeds line.
	ErrMissingSeeds = errors.New("missing seeds line")
	// ErrMalformedRule is returned for rule lines that are not three numbers
	// inside a map block.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrOddSeedList is returned when seed ranges are requested from an odd
	// number of seed values.
	ErrOddSeedList = errors.New("odd number of seed values")
	// ErrSeedRangeOverflow is returned when start+length of a seed range does not fit in 64 bits.
	ErrSeedRangeOverflow = errors.New("seed range overflows")
	// ErrNoAnswer is returned when no seed reaches a location.
	ErrNoAnswer = errors.New("no answer")
)
