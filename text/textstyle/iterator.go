// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textstyle

import (
	"image/color"

	"cogentcore.org/textlayout/text/breaklist"
	"cogentcore.org/textlayout/text/textpos"
)

// Iterator walks all the lists of an [Attributes] in lock-step,
// with one breakpoint index per list. It only moves forward.
type Iterator struct {
	at       *Attributes
	color    int
	baseline int
	size     int
	weight   int
	styles   [StylesN]int
}

// NewIterator returns an iterator positioned at 0.
func NewIterator(at *Attributes) *Iterator {
	return &Iterator{at: at}
}

func advance[T comparable](bl *breaklist.BreakList[T], i *int, pos int) {
	brk := bl.Breaks()
	for *i+1 < len(brk) && brk[*i+1].Pos <= pos {
		*i++
	}
}

// AdvanceTo moves every list forward until its range contains pos.
// Moving backward is not possible.
func (it *Iterator) AdvanceTo(pos int) {
	advance(it.at.Colors, &it.color, pos)
	advance(it.at.Baselines, &it.baseline, pos)
	advance(it.at.FontSizes, &it.size, pos)
	advance(it.at.Weights, &it.weight, pos)
	for s, st := range it.at.Styles {
		advance(st, &it.styles[s], pos)
	}
}

// Range returns the range over which all attributes are constant.
func (it *Iterator) Range() textpos.Range {
	return it.TextBreakingRange().Intersect(it.at.Colors.Range(it.color))
}

// TextBreakingRange returns the range over which all attributes
// that affect shaping are constant, which excludes colors.
func (it *Iterator) TextBreakingRange() textpos.Range {
	r := it.at.Baselines.Range(it.baseline)
	r = r.Intersect(it.at.FontSizes.Range(it.size))
	r = r.Intersect(it.at.Weights.Range(it.weight))
	for s, st := range it.at.Styles {
		r = r.Intersect(st.Range(it.styles[s]))
	}
	return r
}

// Color returns the current color.
func (it *Iterator) Color() color.RGBA {
	return it.at.Colors.Value(it.color)
}

// Baseline returns the current baseline style.
func (it *Iterator) Baseline() Baselines {
	return it.at.Baselines.Value(it.baseline)
}

// FontSize returns the current font size override, 0 for none.
func (it *Iterator) FontSize() float32 {
	return it.at.FontSizes.Value(it.size)
}

// Weight returns the current font weight.
func (it *Iterator) Weight() Weights {
	return it.at.Weights.Value(it.weight)
}

// Style returns whether the given style is on.
func (it *Iterator) Style(s Styles) bool {
	return it.at.Styles[s].Value(it.styles[s])
}
