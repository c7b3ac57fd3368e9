package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeRange(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Range
	}{
		{
			name: "mid scroll with buffer",
			in:   Input{ScrollOffset: 1000, ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 10000},
			want: Range{Start: 15, End: 33},
		},
		{
			name: "few items clamp to count",
			in:   Input{ScrollOffset: 0, ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 3},
			want: Range{Start: 0, End: 3},
		},
		{
			name: "empty sequence",
			in:   Input{ScrollOffset: 1000, ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 0},
			want: Range{},
		},
		{
			name: "zero viewport zero buffer is empty",
			in:   Input{ScrollOffset: 100, ViewportHeight: 0, ItemHeight: 50, Buffer: 0, Count: 100},
			want: Range{Start: 2, End: 2},
		},
		{
			name: "offset past track clamps",
			in:   Input{ScrollOffset: 1e12, ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 100},
			want: Range{Start: 100, End: 100},
		},
		{
			name: "negative offset clamps to top",
			in:   Input{ScrollOffset: -500, ViewportHeight: 100, ItemHeight: 10, Buffer: 2, Count: 100},
			want: Range{Start: 0, End: 12},
		},
		{
			name: "no buffer exact viewport",
			in:   Input{ScrollOffset: 0, ViewportHeight: 100, ItemHeight: 10, Buffer: 0, Count: 100},
			want: Range{Start: 0, End: 10},
		},
		{
			name: "partial item at both edges",
			in:   Input{ScrollOffset: 5, ViewportHeight: 100, ItemHeight: 10, Buffer: 0, Count: 100},
			want: Range{Start: 0, End: 11},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeRange(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestComputeRangeInvalidItemHeight(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ComputeRange(Input{ItemHeight: h, Count: 10, ViewportHeight: 100})
		require.ErrorIs(t, err, ErrInvalidItemHeight)
		_, err = ComputePlan(Input{ItemHeight: h, Count: 10, ViewportHeight: 100})
		require.ErrorIs(t, err, ErrInvalidItemHeight)
	}
}

// The range must stay inside [0, Count] for any input, and both ends
// must be monotonic in the scroll offset.
func TestRangeBoundsAndMonotonicity(t *testing.T) {
	in := Input{ViewportHeight: 37, ItemHeight: 3, Buffer: 4, Count: 500}

	prev := Range{}
	for off := 0.0; off < 2000; off += 7.5 {
		in.ScrollOffset = off
		got, err := ComputeRange(in)
		require.NoError(t, err)

		require.GreaterOrEqual(t, got.Start, 0)
		require.LessOrEqual(t, got.Start, got.End)
		require.LessOrEqual(t, got.End, in.Count)

		require.GreaterOrEqual(t, got.Start, prev.Start, "start regressed at offset %v", off)
		require.GreaterOrEqual(t, got.End, prev.End, "end regressed at offset %v", off)
		prev = got
	}
}

func TestComputePlan(t *testing.T) {
	in := Input{ScrollOffset: 1000, ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 10000}

	p, err := ComputePlan(in)
	require.NoError(t, err)
	require.Equal(t, Range{Start: 15, End: 33}, p.Range)
	require.Equal(t, 750.0, p.Offset)
	require.Equal(t, 500000.0, p.TrackHeight)

	// Offset and track height are exact products, never drifting.
	require.Equal(t, float64(p.Range.Start)*in.ItemHeight, p.Offset)
	require.Equal(t, float64(in.Count)*in.ItemHeight, p.TrackHeight)

	// Pure function: same input, identical output.
	again, err := ComputePlan(in)
	require.NoError(t, err)
	require.Equal(t, p, again)
}

func TestIndexOffset(t *testing.T) {
	require.Equal(t, 5000.0, IndexOffset(100, 50))
	require.Equal(t, 0.0, IndexOffset(0, 50))

	// Scroll-to-index lands on the same range as a user scroll to
	// the equivalent offset.
	in := Input{ViewportHeight: 400, ItemHeight: 50, Buffer: 5, Count: 10000}
	in.ScrollOffset = IndexOffset(100, in.ItemHeight)
	fromIndex, err := ComputeRange(in)
	require.NoError(t, err)
	in.ScrollOffset = 5000
	fromScroll, err := ComputeRange(in)
	require.NoError(t, err)
	require.Equal(t, fromScroll, fromIndex)
}

func TestMaxOffset(t *testing.T) {
	cases := []struct {
		in   Input
		want float64
	}{
		{Input{ViewportHeight: 400, ItemHeight: 50, Count: 10000}, 499600},
		{Input{ViewportHeight: 400, ItemHeight: 50, Count: 3}, 0},
		{Input{ViewportHeight: 0, ItemHeight: 1, Count: 10}, 10},
		{Input{ViewportHeight: 400, ItemHeight: 50, Count: 0}, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MaxOffset(tc.in))
	}
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Start: 15, End: 33}
	require.Equal(t, 18, r.Len())
	require.True(t, r.Contains(15))
	require.True(t, r.Contains(32))
	require.False(t, r.Contains(33))
	require.False(t, r.Contains(14))
	require.Equal(t, 0, Range{Start: 7, End: 7}.Len())
}
