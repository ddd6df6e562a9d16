// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides index ranges and word segmentation
// over rune text.
package textpos

import "fmt"

// Range defines a range with a start and end index, where end is typically
// exclusive, as in standard slice indexing and for loop conventions.
// A Range with End < Start is reversed, which is meaningful for
// selections where End is the caret.
type Range struct {
	// Start is the starting index of the range.
	Start int

	// End is the ending index of the range.
	End int
}

// R returns a new [Range] from the given start and end.
func R(start, end int) Range {
	return Range{start, end}
}

// RangeAt returns an empty [Range] at the given position.
func RangeAt(pos int) Range {
	return Range{pos, pos}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Len returns the length of the range: End - Start,
// negative when reversed.
func (r Range) Len() int {
	return r.End - r.Start
}

// Min returns the lower of Start and End.
func (r Range) Min() int {
	return min(r.Start, r.End)
}

// Max returns the higher of Start and End.
func (r Range) Max() int {
	return max(r.Start, r.End)
}

// Abs returns the length of the range regardless of direction.
func (r Range) Abs() int {
	return r.Max() - r.Min()
}

// IsEmpty returns true if Start == End.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsReversed returns true if End < Start.
func (r Range) IsReversed() bool {
	return r.End < r.Start
}

// IsValid returns false for a range with a negative endpoint.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.End >= 0
}

// Canon returns the range with Start <= End.
func (r Range) Canon() Range {
	return Range{r.Min(), r.Max()}
}

// Reversed returns the range with Start and End swapped.
func (r Range) Reversed() Range {
	return Range{r.End, r.Start}
}

// Contains returns true if range contains given index,
// treating the range as [Min, Max).
func (r Range) Contains(i int) bool {
	return i >= r.Min() && i < r.Max()
}

// ContainsRange returns true if the other range is inside this one.
func (r Range) ContainsRange(o Range) bool {
	return r.Min() <= o.Min() && r.Max() >= o.Max()
}

// Intersect returns the intersection of the two ranges, as canonical
// ranges. If they do not overlap, the result is empty with Start at the
// higher of the two starts.
func (r Range) Intersect(o Range) Range {
	s := max(r.Min(), o.Min())
	e := min(r.Max(), o.Max())
	if e < s {
		e = s
	}
	return Range{s, e}
}

// Intersects returns true if the two ranges share at least one index.
// An empty range never intersects.
func (r Range) Intersects(o Range) bool {
	return !r.Intersect(o).IsEmpty()
}

// Clamp returns the range with both endpoints clamped to [0, n].
func (r Range) Clamp(n int) Range {
	return Range{max(0, min(r.Start, n)), max(0, min(r.End, n))}
}

// RangeF is a range of float32 values, typically a horizontal extent
// in layout coordinates.
type RangeF struct {
	Start float32
	End   float32
}

// RF returns a new [RangeF].
func RF(start, end float32) RangeF {
	return RangeF{Start: start, End: end}
}

func (r RangeF) String() string {
	return fmt.Sprintf("[%g,%g)", r.Start, r.End)
}

// Len returns End - Start.
func (r RangeF) Len() float32 {
	return r.End - r.Start
}

// Min returns the lower of Start and End.
func (r RangeF) Min() float32 {
	return min(r.Start, r.End)
}

// Max returns the higher of Start and End.
func (r RangeF) Max() float32 {
	return max(r.Start, r.End)
}

// IsEmpty returns true if Start == End.
func (r RangeF) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if v is in [Min, Max).
func (r RangeF) Contains(v float32) bool {
	return v >= r.Min() && v < r.Max()
}

// Union returns the smallest range containing both ranges,
// ignoring an empty receiver.
func (r RangeF) Union(o RangeF) RangeF {
	if r.IsEmpty() {
		return o
	}
	return RangeF{min(r.Min(), o.Min()), max(r.Max(), o.Max())}
}

// Offset returns the range shifted by d.
func (r RangeF) Offset(d float32) RangeF {
	return RangeF{r.Start + d, r.End + d}
}
