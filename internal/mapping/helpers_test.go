package mapping

import "almanac/internal/interval"

// sampleChain is the seven stage chain of the canonical small almanac.
func sampleChain() Chain {
	return NewChain(
		NewTable("seed-to-soil",
			Rule{50, 98, 2}, Rule{52, 50, 48}),
		NewTable("soil-to-fertilizer",
			Rule{0, 15, 37}, Rule{37, 52, 2}, Rule{39, 0, 15}),
		NewTable("fertilizer-to-water",
			Rule{49, 53, 8}, Rule{0, 11, 42}, Rule{42, 0, 7}, Rule{57, 7, 4}),
		NewTable("water-to-light",
			Rule{88, 18, 7}, Rule{18, 25, 70}),
		NewTable("light-to-temperature",
			Rule{45, 77, 23}, Rule{81, 45, 19}, Rule{68, 64, 13}),
		NewTable("temperature-to-humidity",
			Rule{0, 69, 1}, Rule{1, 0, 69}),
		NewTable("humidity-to-location",
			Rule{60, 56, 37}, Rule{56, 93, 4}),
	)
}

func seedToSoil() Table {
	return sampleChain().Stages[0]
}

// disjointSets returns a few disjoint interval sets spanning the sample
// rule boundaries.
func disjointSets() []interval.Set {
	return []interval.Set{
		{},
		interval.Of(interval.New(79, 14), interval.New(55, 13)),
		interval.Of(interval.New(0, 200)),
		interval.Of(interval.New(0, 1), interval.New(49, 2), interval.New(97, 3)),
		interval.Of(interval.New(10, 5), interval.New(20, 60), interval.New(95, 10)),
		interval.Of(interval.New(1_000_000, 4_000_000_000)),
	}
}
