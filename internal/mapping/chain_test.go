package mapping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"almanac/internal/interval"
)

func TestChainMapValue(t *testing.T) {
	chain := sampleChain()

	seeds := []uint64{79, 14, 55, 13}
	want := []uint64{82, 43, 86, 35}

	for i, seed := range seeds {
		assert.Equal(t, want[i], chain.MapValue(seed), "seed %d", seed)
	}
}

func TestChainTrace(t *testing.T) {
	trace := sampleChain().Trace(79)

	// seed, soil, fertilizer, water, light, temperature, humidity, location
	assert.Equal(t, []uint64{79, 81, 81, 81, 74, 78, 78, 82}, trace)
	assert.Equal(t, []uint64{5}, NewChain().Trace(5))
}

func TestChainRunSeedRanges(t *testing.T) {
	got := sampleChain().Run(interval.Of(interval.New(79, 14), interval.New(55, 13)))

	lowest, err := got.MinStart()
	require.NoError(t, err)
	assert.Equal(t, uint64(46), lowest)
	assert.Equal(t, uint64(27), got.TotalLen())
}

func TestChainRunSingleSeeds(t *testing.T) {
	chain := sampleChain()

	for _, seed := range []uint64{79, 14, 55, 13} {
		got := chain.Run(interval.Of(interval.New(seed, 1)))
		require.Len(t, got, 1)
		assert.Equal(t, chain.MapValue(seed), got[0].Start)
	}
}

func TestChainRunWithoutStages(t *testing.T) {
	in := interval.Set{{Start: 20, End: 30}, {Start: 0, End: 5}}

	assert.Equal(t, in, NewChain().Run(in))
}

func TestChainComposition(t *testing.T) {
	stages := sampleChain().Stages

	for i := 0; i+1 < len(stages); i++ {
		t1, t2 := stages[i], stages[i+1]
		for _, s := range disjointSets() {
			want := t2.Propagate(t1.Propagate(s))
			got := NewChain(t1, t2).Run(s)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s then %s on %s (-want +got):\n%s", t1.Name, t2.Name, s, diff)
			}
		}
	}
}

func TestChainRunLogsStages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	sampleChain().Run(interval.Of(interval.New(79, 14)), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("stage propagated").All()
	require.Len(t, entries, 7)
	assert.Equal(t, "humidity-to-location", entries[6].ContextMap()["name"])
}
