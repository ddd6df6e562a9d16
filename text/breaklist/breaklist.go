// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package breaklist provides BreakList, a sparse step function that
// assigns a value to every index of the range [0, Max), as used for
// text attributes such as colors and styles.
package breaklist

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"cogentcore.org/textlayout/text/textpos"
)

// Breakpoint is a position where the value of a [BreakList] changes.
type Breakpoint[T comparable] struct {
	// Pos is the index where Value starts to apply.
	Pos int

	// Value applies from Pos until the next breakpoint or the max.
	Value T
}

// BreakList is an ordered list of [Breakpoint]s with a max bound.
// The first breakpoint is always at 0, positions are strictly
// increasing, adjacent breakpoints have different values, and the last
// position is below max unless there is only one breakpoint.
type BreakList[T comparable] struct {
	breaks []Breakpoint[T]
	max    int
}

// New returns a new [BreakList] with the given value over an
// unbounded range.
func New[T comparable](value T) *BreakList[T] {
	return NewMax(value, math.MaxInt)
}

// NewMax returns a new [BreakList] with the given value
// over [0, max).
func NewMax[T comparable](value T, max int) *BreakList[T] {
	return &BreakList[T]{breaks: []Breakpoint[T]{{0, value}}, max: max}
}

// SetValue clears the list and sets the given value over the
// whole range.
func (bl *BreakList[T]) SetValue(value T) {
	bl.breaks = bl.breaks[:0]
	bl.breaks = append(bl.breaks, Breakpoint[T]{0, value})
}

// SetBreaks replaces all breakpoints. The caller must
// pass a valid sequence.
func (bl *BreakList[T]) SetBreaks(breaks []Breakpoint[T]) {
	bl.breaks = slices.Clone(breaks)
}

// ApplyValue sets value over the range r. Empty, reversed, or
// out of bounds ranges are ignored.
func (bl *BreakList[T]) ApplyValue(value T, r textpos.Range) {
	if r.Start < 0 || r.End <= r.Start || r.Start >= bl.max {
		return
	}
	r.End = min(r.End, bl.max)

	// first breakpoint that starts at or after r.Start
	start := bl.GetBreak(r.Start)
	if bl.breaks[start].Pos < r.Start {
		start++
	}
	// breakpoint that holds the value at r.End, which is overwritten
	// up to r.End and then has to resume there.
	var end int
	if r.End == bl.max {
		end = len(bl.breaks) - 1
	} else {
		end = bl.GetBreak(r.End)
	}
	trailing := bl.breaks[end].Value
	if start <= end {
		bl.breaks = slices.Delete(bl.breaks, start, end+1)
	}
	at := start
	if r.Start == 0 || bl.breaks[start-1].Value != value {
		bl.breaks = slices.Insert(bl.breaks, at, Breakpoint[T]{r.Start, value})
		at++
	}
	if trailing != value && r.End != bl.max {
		bl.breaks = slices.Insert(bl.breaks, at, Breakpoint[T]{r.End, trailing})
	}
}

// SetMax sets the max bound, trimming breakpoints at or beyond it.
// The first breakpoint is never removed.
func (bl *BreakList[T]) SetMax(m int) {
	if len(bl.breaks) > 0 {
		i := bl.GetBreak(m)
		if i == 0 || bl.breaks[i].Pos < m {
			i++
		}
		bl.breaks = bl.breaks[:i]
	}
	bl.max = m
}

// Max returns the max bound.
func (bl *BreakList[T]) Max() int {
	return bl.max
}

// Len returns the number of breakpoints.
func (bl *BreakList[T]) Len() int {
	return len(bl.breaks)
}

// Breaks returns the breakpoints. The result must not be modified.
func (bl *BreakList[T]) Breaks() []Breakpoint[T] {
	return bl.breaks
}

// Value returns the value of breakpoint i.
func (bl *BreakList[T]) Value(i int) T {
	return bl.breaks[i].Value
}

// GetBreak returns the index of the breakpoint with the greatest
// position <= pos. Positions at or beyond the max return the
// last breakpoint.
func (bl *BreakList[T]) GetBreak(pos int) int {
	n := len(bl.breaks)
	if pos >= bl.max {
		return n - 1
	}
	// first breakpoint with Pos > pos, minus one.
	i, _ := slices.BinarySearchFunc(bl.breaks, pos+1, func(b Breakpoint[T], p int) int {
		return b.Pos - p
	})
	return max(i-1, 0)
}

// ValueAt returns the value that applies at pos.
func (bl *BreakList[T]) ValueAt(pos int) T {
	return bl.breaks[bl.GetBreak(pos)].Value
}

// Range returns the range covered by breakpoint i:
// from its position to the next one or the max.
func (bl *BreakList[T]) Range(i int) textpos.Range {
	end := bl.max
	if i+1 < len(bl.breaks) {
		end = bl.breaks[i+1].Pos
	}
	return textpos.Range{Start: bl.breaks[i].Pos, End: end}
}

// Equal returns true if both lists have the same breakpoints and max.
func (bl *BreakList[T]) Equal(o *BreakList[T]) bool {
	return bl.max == o.max && slices.Equal(bl.breaks, o.breaks)
}

// EqualValues returns true if the breakpoints equal the given ones,
// regardless of max.
func (bl *BreakList[T]) EqualValues(breaks []Breakpoint[T]) bool {
	return slices.Equal(bl.breaks, breaks)
}

// Clone returns a copy of the list.
func (bl *BreakList[T]) Clone() *BreakList[T] {
	return &BreakList[T]{breaks: slices.Clone(bl.breaks), max: bl.max}
}

// IsValid checks the list invariants.
func (bl *BreakList[T]) IsValid() bool {
	if len(bl.breaks) == 0 || bl.breaks[0].Pos != 0 {
		return false
	}
	for i := 1; i < len(bl.breaks); i++ {
		p, b := bl.breaks[i-1], bl.breaks[i]
		if b.Pos <= p.Pos || b.Value == p.Value {
			return false
		}
	}
	return len(bl.breaks) == 1 || bl.breaks[len(bl.breaks)-1].Pos < bl.max
}

func (bl *BreakList[T]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, bp := range bl.breaks {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %v)", bp.Pos, bp.Value)
	}
	fmt.Fprintf(&b, "} max: %d", bl.max)
	return b.String()
}
