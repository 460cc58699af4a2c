package almanac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/interval"
)

func TestExpandSeedRanges(t *testing.T) {
	tests := []struct {
		name string
		flat []uint64
		want interval.Set
	}{
		{
			name: "sample",
			flat: []uint64{79, 14, 55, 13},
			want: interval.Set{{Start: 79, End: 93}, {Start: 55, End: 68}},
		},
		{
			name: "empty",
			flat: nil,
			want: interval.Set{},
		},
		{
			name: "zero length pair dropped",
			flat: []uint64{5, 0, 10, 2},
			want: interval.Set{{Start: 10, End: 12}},
		},
		{
			name: "overlapping pairs kept as given",
			flat: []uint64{10, 10, 15, 10},
			want: interval.Set{{Start: 10, End: 20}, {Start: 15, End: 25}},
		},
		{
			name: "huge range",
			flat: []uint64{3_000_000_000, 1_000_000_000},
			want: interval.Set{{Start: 3_000_000_000, End: 4_000_000_000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandSeedRanges(tt.flat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandSeedRangesErrors(t *testing.T) {
	_, err := ExpandSeedRanges([]uint64{79, 14, 55})
	require.ErrorIs(t, err, ErrOddSeedList)

	_, err = ExpandSeedRanges([]uint64{math.MaxUint64 - 1, 2})
	require.ErrorIs(t, err, ErrSeedRangeOverflow)

	got, err := ExpandSeedRanges([]uint64{math.MaxUint64 - 1, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.TotalLen())
}
