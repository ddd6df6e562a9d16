// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textstyle holds the per-index text attributes, stored as
// break lists, and an Iterator that walks them in lock-step.
package textstyle

import (
	"image/color"

	"cogentcore.org/textlayout/text/breaklist"
	"cogentcore.org/textlayout/text/textpos"
)

// Attributes are the styling break lists over a text.
type Attributes struct {
	// Colors are the text foreground colors.
	Colors *breaklist.BreakList[color.RGBA]

	// Baselines are the baseline styles.
	Baselines *breaklist.BreakList[Baselines]

	// FontSizes are font size overrides, 0 means the default size.
	FontSizes *breaklist.BreakList[float32]

	// Weights are the font weights.
	Weights *breaklist.BreakList[Weights]

	// Styles are the boolean styles.
	Styles [StylesN]*breaklist.BreakList[bool]
}

// NewAttributes returns attributes with the given default color
// and normal values over [0, max).
func NewAttributes(clr color.RGBA, max int) *Attributes {
	at := &Attributes{
		Colors:    breaklist.NewMax(clr, max),
		Baselines: breaklist.NewMax(NormalBaseline, max),
		FontSizes: breaklist.NewMax[float32](0, max),
		Weights:   breaklist.NewMax(Normal, max),
	}
	for s := range StylesN {
		at.Styles[s] = breaklist.NewMax(false, max)
	}
	return at
}

// SetMax sets the max of every list.
func (at *Attributes) SetMax(max int) {
	at.Colors.SetMax(max)
	at.Baselines.SetMax(max)
	at.FontSizes.SetMax(max)
	at.Weights.SetMax(max)
	for _, st := range at.Styles {
		st.SetMax(max)
	}
}

// Collapse resets each list to its first value over the whole range.
func (at *Attributes) Collapse() {
	at.Colors.SetValue(at.Colors.Value(0))
	at.Baselines.SetValue(at.Baselines.Value(0))
	at.FontSizes.SetValue(at.FontSizes.Value(0))
	at.Weights.SetValue(at.Weights.Value(0))
	for _, st := range at.Styles {
		st.SetValue(st.Value(0))
	}
}

// Clone returns a deep copy.
func (at *Attributes) Clone() *Attributes {
	cl := &Attributes{
		Colors:    at.Colors.Clone(),
		Baselines: at.Baselines.Clone(),
		FontSizes: at.FontSizes.Clone(),
		Weights:   at.Weights.Clone(),
	}
	for s, st := range at.Styles {
		cl.Styles[s] = st.Clone()
	}
	return cl
}

// Equal returns true if all lists are equal.
func (at *Attributes) Equal(o *Attributes) bool {
	if !at.Colors.Equal(o.Colors) || !at.Baselines.Equal(o.Baselines) ||
		!at.FontSizes.Equal(o.FontSizes) || !at.Weights.Equal(o.Weights) {
		return false
	}
	for s, st := range at.Styles {
		if !st.Equal(o.Styles[s]) {
			return false
		}
	}
	return true
}

// Max returns the max shared by the lists.
func (at *Attributes) Max() int {
	return at.Colors.Max()
}

// WidenToBoundaries sets the max of each list to max and extends any
// range whose end is not a boundary up to the next boundary, so that no
// style change splits a grapheme.
func (at *Attributes) WidenToBoundaries(max int, isBoundary func(int) bool, next func(int) int) {
	widen(at.Colors, max, isBoundary, next)
	widen(at.Baselines, max, isBoundary, next)
	widen(at.FontSizes, max, isBoundary, next)
	widen(at.Weights, max, isBoundary, next)
	for _, st := range at.Styles {
		widen(st, max, isBoundary, next)
	}
}

func widen[T comparable](bl *breaklist.BreakList[T], max int, isBoundary func(int) bool, next func(int) int) {
	bl.SetMax(max)
	var r textpos.Range
	for r.End < max {
		i := bl.GetBreak(r.End)
		r = bl.Range(i)
		if r.End < max && !isBoundary(r.End) {
			r.End = next(r.End)
			bl.ApplyValue(bl.Value(i), r)
		}
	}
}
