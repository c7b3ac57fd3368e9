// Package window computes the index window a virtual scroller must
// materialize: given a scroll offset, viewport extent, fixed item
// height, overscan buffer, and total item count, it yields the
// half-open index range to render and where to place it on the track.
//
// All computations are pure. Offsets and heights share one unit
// (terminal rows, pixels, ...); the package never touches the items
// themselves.
package window

import (
	"errors"
	"math"
)

// ErrInvalidItemHeight reports an Input whose ItemHeight is not a
// positive finite number. Everything else (negative offsets, zero
// viewport, zero count) clamps to a valid result instead of erroring.
var ErrInvalidItemHeight = errors.New("window: item height must be a positive finite number")

// Input is the complete set of values a window computation depends on.
type Input struct {
	ScrollOffset   float64 // distance scrolled from the top of the track
	ViewportHeight float64 // visible extent of the viewport
	ItemHeight     float64 // per-item extent, must be > 0
	Buffer         int     // extra items materialized on each side of the viewport
	Count          int     // total items in the backing sequence
}

// Range is a half-open index interval [Start, End) into the backing
// sequence. Start == End is a valid empty range, not an error.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes in the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Plan is a full render plan: the window to materialize, its distance
// from the top of the track, and the total track extent.
type Plan struct {
	Range       Range
	Offset      float64 // Range.Start * ItemHeight
	TrackHeight float64 // Count * ItemHeight
}

// ComputeRange returns the index window covering the viewport at the
// given scroll offset, padded by Buffer items on both sides and
// clamped to [0, Count]. The window is always a superset of the
// visually covered interval so fast scrolling does not expose gaps
// before the next recompute lands.
func ComputeRange(in Input) (Range, error) {
	if err := validate(in); err != nil {
		return Range{}, err
	}
	if in.Count <= 0 {
		return Range{}, nil
	}

	off := sanitize(in.ScrollOffset)
	view := sanitize(in.ViewportHeight)
	buf := float64(max(0, in.Buffer))
	count := float64(in.Count)

	// Clamp in float space before converting, so absurd offsets from
	// programmatic scroll jumps cannot overflow int.
	rawStart := math.Floor(off/in.ItemHeight) - buf
	rawEnd := math.Ceil((off+view)/in.ItemHeight) + buf

	start := min(math.Max(rawStart, 0), count)
	end := min(math.Max(rawEnd, 0), count)
	if end < start {
		end = start
	}
	return Range{Start: int(start), End: int(end)}, nil
}

// ComputePlan wraps ComputeRange and derives the placement offset and
// total track height. Identical input yields identical output.
func ComputePlan(in Input) (Plan, error) {
	r, err := ComputeRange(in)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Range:       r,
		Offset:      float64(r.Start) * in.ItemHeight,
		TrackHeight: float64(max(0, in.Count)) * in.ItemHeight,
	}, nil
}

// IndexOffset returns the track offset of the item at index, used to
// implement scroll-to-index by setting the scroll position directly.
// The index is not validated; callers clamp to [0, Count).
func IndexOffset(index int, itemHeight float64) float64 {
	return float64(index) * itemHeight
}

// MaxOffset returns the largest useful scroll offset for the input:
// the track height minus the viewport, or 0 when the whole track fits.
// Hosts clamp user-driven offsets to [0, MaxOffset].
func MaxOffset(in Input) float64 {
	track := float64(max(0, in.Count)) * in.ItemHeight
	m := track - sanitize(in.ViewportHeight)
	if m < 0 || math.IsNaN(m) {
		return 0
	}
	return m
}

func validate(in Input) error {
	if in.ItemHeight <= 0 || math.IsNaN(in.ItemHeight) || math.IsInf(in.ItemHeight, 0) {
		return ErrInvalidItemHeight
	}
	return nil
}

// sanitize maps NaN and negative values to 0. Negative offsets can
// reach us from in-flight scroll events during a programmatic jump.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
