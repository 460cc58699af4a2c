package mapping

import (
	"go.uber.org/zap"

	"almanac/internal/interval"
)

// Chain is the ordered sequence of stages from seed to location.
type Chain struct {
	Stages []Table
}

// NewChain creates a chain from its stages in pipeline order.
func NewChain(stages ...Table) Chain {
	return Chain{Stages: stages}
}

// Len returns the number of stages.
func (c Chain) Len() int {
	return len(c.Stages)
}

// MapValue carries a single value through every stage.
func (c Chain) MapValue(v uint64) uint64 {
	for _, t := range c.Stages {
		v = t.MapValue(v)
	}

	return v
}

// Trace returns v followed by its value after each stage.
func (c Chain) Trace(v uint64) []uint64 {
	trace := make([]uint64, 0, len(c.Stages)+1)
	trace = append(trace, v)

	for _, t := range c.Stages {
		v = t.MapValue(v)
		trace = append(trace, v)
	}

	return trace
}

// Run propagates in through every stage in order. A chain without stages
// returns in unchanged.
func (c Chain) Run(in interval.Set, opts ...Option) interval.Set {
	o := newOptions(opts)

	current := in
	for i, t := range c.Stages {
		current = t.Propagate(current, opts...)

		o.logger.Debug("stage propagated",
			zap.Int("stage", i),
			zap.String("name", t.Name),
			zap.Int("intervals", len(current)),
			zap.Uint64("values", current.TotalLen()))
	}

	return current
}
