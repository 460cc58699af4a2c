package almanac

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"almanac/internal/common"
	"almanac/internal/interval"
	"almanac/internal/mapping"
)

// Almanac is a parsed seed almanac.
type Almanac struct {
	// Seeds holds the numbers of the seeds line in input order.
	Seeds []uint64
	// Chain holds one table per map block.
	Chain mapping.Chain
}

// Locations maps every seed to its location.
func (a *Almanac) Locations() []uint64 {
	locations := make([]uint64, 0, len(a.Seeds))
	for _, seed := range a.Seeds {
		locations = append(locations, a.Chain.MapValue(seed))
	}

	return locations
}

// SeedRanges returns the seeds line read as (start, length) pairs.
func (a *Almanac) SeedRanges() (interval.Set, error) {
	return ExpandSeedRanges(a.Seeds)
}

// Solve returns the lowest location reachable from the seeds read as part.
func (a *Almanac) Solve(part Part, opts ...SolveOption) (uint64, error) {
	o := newSolveOptions(opts)

	if o.validate {
		if err := a.check(o.logger); err != nil {
			return 0, err
		}
	}

	var (
		lowest uint64
		err    error
	)

	switch part {
	case PartSeeds:
		lowest, err = a.lowestSeedLocation()
	case PartRanges:
		lowest, err = a.lowestRangeLocation(o)
	default:
		return 0, fmt.Errorf("unknown part %s", part)
	}

	if err != nil {
		return 0, fmt.Errorf("%s: %w", part, err)
	}

	o.logger.Info("solved", zap.Stringer("part", part), zap.Uint64("location", lowest))

	return lowest, nil
}

func (a *Almanac) lowestSeedLocation() (uint64, error) {
	if common.IsEmpty(a.Seeds) {
		return 0, ErrNoAnswer
	}

	return slices.Min(a.Locations()), nil
}

func (a *Almanac) lowestRangeLocation(o solveOptions) (uint64, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	o.logger.Debug("seed ranges expanded",
		zap.Int("ranges", len(seeds)),
		zap.Uint64("seeds", seeds.TotalLen()))

	locations := a.Chain.Run(seeds, o.mappingOptions()...)

	lowest, err := locations.MinStart()
	if errors.Is(err, interval.ErrEmptySet) {
		return 0, ErrNoAnswer
	}

	return lowest, err
}

func (a *Almanac) check(logger *zap.Logger) error {
	diags, err := a.Chain.Check()
	for _, w := range diags.Warnings {
		logger.Warn("almanac warning", zap.String("diagnostic", w.String()))
	}

	for _, i := range diags.Infos {
		logger.Debug("almanac info", zap.String("diagnostic", i.String()))
	}

	return err
}
