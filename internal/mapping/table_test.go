package mapping

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/interval"
)

func TestRule(t *testing.T) {
	r := Rule{Destination: 52, Source: 50, Length: 48}

	assert.Equal(t, interval.Interval{Start: 50, End: 98}, r.SourceRange())
	assert.Equal(t, interval.Interval{Start: 52, End: 100}, r.DestinationRange())
	assert.True(t, r.Contains(50))
	assert.False(t, r.Contains(98))
	assert.Equal(t, uint64(57), r.Apply(55))
	assert.Equal(t, interval.Interval{Start: 57, End: 70}, r.ApplyRange(interval.New(55, 13)))
	assert.Equal(t, "52 50 48", r.String())
}

func TestTableMapValue(t *testing.T) {
	table := seedToSoil()

	tests := []struct {
		source uint64
		want   uint64
	}{
		{source: 79, want: 81},
		{source: 14, want: 14},
		{source: 55, want: 57},
		{source: 13, want: 13},
		{source: 1, want: 1},
		{source: 49, want: 49},
		{source: 98, want: 50},
		{source: 99, want: 51},
		{source: 50, want: 52},
		{source: 60, want: 62},
		{source: 97, want: 99},
		{source: 100, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.MapValue(tt.source), "source %d", tt.source)
	}
}

func TestTablePropagate(t *testing.T) {
	table := seedToSoil()

	tests := []struct {
		name string
		in   interval.Set
		want interval.Set
	}{
		{
			name: "empty input",
			in:   interval.Set{},
			want: interval.Set{},
		},
		{
			name: "outside every rule",
			in:   interval.Of(interval.New(0, 50)),
			want: interval.Of(interval.New(0, 50)),
		},
		{
			name: "inside one rule",
			in:   interval.Of(interval.New(79, 14)),
			want: interval.Of(interval.New(81, 14)),
		},
		{
			name: "exact rule source",
			in:   interval.Of(interval.New(98, 2)),
			want: interval.Of(interval.New(50, 2)),
		},
		{
			name: "straddles lower boundary",
			in:   interval.Of(interval.Interval{Start: 45, End: 55}),
			want: interval.Set{{Start: 45, End: 50}, {Start: 52, End: 57}},
		},
		{
			name: "spans every rule",
			in:   interval.Of(interval.Interval{Start: 40, End: 110}),
			// [40,50) identity, [50,98) -> [52,100), [98,100) -> [50,52), [100,110) identity
			want: interval.Set{{Start: 40, End: 110}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, table.Propagate(tt.in)); diff != "" {
				t.Errorf("Propagate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTablePropagateWithoutMerge(t *testing.T) {
	got := seedToSoil().Propagate(interval.Of(interval.Interval{Start: 40, End: 110}), WithoutMerge())

	// mapped parts come first, in rule order, then the unmatched remainders
	want := interval.Set{
		{Start: 50, End: 52},
		{Start: 52, End: 100},
		{Start: 40, End: 50},
		{Start: 100, End: 110},
	}
	assert.Equal(t, want, got)
}

func TestPropagateIdentityOnEmptyTable(t *testing.T) {
	empty := NewTable("empty")

	for _, s := range disjointSets() {
		for _, iv := range s {
			assert.Equal(t, interval.Set{iv}, empty.Propagate(interval.Set{iv}))
		}
	}
}

func TestPropagateMatchesMapValue(t *testing.T) {
	for _, table := range sampleChain().Stages {
		for v := uint64(0); v < 120; v++ {
			got := table.Propagate(interval.Of(interval.New(v, 1)))
			require.Len(t, got, 1, "%s: value %d", table.Name, v)

			mapped := table.MapValue(v)
			assert.Equal(t, interval.New(mapped, 1), got[0], "%s: value %d", table.Name, v)
		}
	}
}

func TestPropagateConservesCoverage(t *testing.T) {
	for _, table := range sampleChain().Stages {
		for _, s := range disjointSets() {
			got := table.Propagate(s, WithoutMerge())
			assert.Equal(t, s.TotalLen(), got.TotalLen(), "%s: %s -> %s", table.Name, s, got)

			for _, iv := range got {
				assert.False(t, iv.IsEmpty(), "%s produced an empty interval", table.Name)
			}
		}
	}
}

func TestPropagatePreservesOrder(t *testing.T) {
	for _, table := range sampleChain().Stages {
		for _, r := range table.Rules {
			src := r.SourceRange()
			for a := src.Start; a+1 < src.End; a++ {
				if table.MapValue(a) >= table.MapValue(a+1) {
					t.Fatalf("%s: order broken at %d inside rule %s\n%s",
						table.Name, a, r, spew.Sdump(table))
				}
			}
		}
	}
}

func TestPropagatePreservesOrderOutsideRules(t *testing.T) {
	unmatched := func(table Table, v uint64) bool {
		for _, r := range table.Rules {
			if r.Contains(v) {
				return false
			}
		}

		return true
	}

	soil := seedToSoil()
	for _, v := range []uint64{0, 25, 48, 100, 110, 119} {
		require.True(t, unmatched(soil, v) && unmatched(soil, v+1), "value %d", v)
	}

	for _, table := range sampleChain().Stages {
		for a := uint64(0); a < 150; a++ {
			if !unmatched(table, a) || !unmatched(table, a+1) {
				continue
			}

			if table.MapValue(a) >= table.MapValue(a+1) {
				t.Fatalf("%s: order broken at %d outside every rule\n%s",
					table.Name, a, spew.Sdump(table))
			}

			got := table.Propagate(interval.Of(interval.New(a, 2)))
			assert.Equal(t, interval.Set{interval.New(a, 2)}, got, "%s: value %d", table.Name, a)
		}
	}
}
