// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bidi

import (
	"log/slog"
	"slices"

	"cogentcore.org/textlayout/text/textpos"
	"golang.org/x/text/unicode/bidi"
)

// Run is a logical range of text at a single embedding level.
type Run struct {
	textpos.Range

	// Level is the embedding level: odd levels are RTL.
	Level int
}

// IsRTL returns true for an odd level.
func (r Run) IsRTL() bool {
	return r.Level%2 == 1
}

// Directional marks that set the paragraph direction.
const (
	lrm = '\u200e'
	rlm = '\u200f'
)

// Runs returns the runs of text in logical order for a paragraph with
// the given base direction. Empty text, or text that cannot be resolved,
// yields a single run at the paragraph level.
func Runs(text []rune, dir Direction) []Run {
	base := dir.Level()
	whole := []Run{{textpos.Range{End: len(text)}, base}}
	if len(text) == 0 {
		return whole
	}
	str := string(text)
	offset := 0
	// the default direction only applies to text without a strong
	// character, so a mark is added where the text starts the other way.
	def := bidi.LeftToRight
	first, ok := FirstStrong(text)
	switch {
	case dir == RTL:
		def = bidi.RightToLeft
		if ok && first == LTR {
			str = string(rlm) + str
			offset = 1
		}
	case ok && first == RTL:
		str = string(lrm) + str
		offset = 1
	}
	var p bidi.Paragraph
	if _, err := p.SetString(str, bidi.DefaultDirection(def)); err != nil {
		slog.Debug("bidi: resolving paragraph", "err", err)
		return whole
	}
	ord, err := p.Order()
	if err != nil {
		slog.Debug("bidi: ordering paragraph", "err", err)
		return whole
	}
	var runs []Run
	for i := range ord.NumRuns() {
		r := ord.Run(i)
		start, end := r.Pos()
		start = max(start-offset, 0)
		end = end + 1 - offset
		if end <= start {
			continue
		}
		lvl := base
		rtl := r.Direction() == bidi.RightToLeft
		switch {
		case rtl && base%2 == 0:
			lvl = base + 1
		case !rtl && base%2 == 1:
			lvl = base + 1
		}
		runs = append(runs, Run{textpos.Range{Start: start, End: end}, lvl})
	}
	if len(runs) == 0 {
		return whole
	}
	slices.SortFunc(runs, func(a, b Run) int { return a.Start - b.Start })
	if base == 0 {
		runs = raiseNumbers(text, runs)
	}
	return runs
}

// numberClass returns 2 for European and Arabic numbers, 1 for number
// separators and terminators, and 0 otherwise.
func numberClass(r rune) int {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.EN, bidi.AN:
		return 2
	case bidi.ES, bidi.CS, bidi.ET, bidi.NSM, bidi.BN:
		return 1
	}
	return 0
}

// raiseNumbers moves numbers inside LTR runs of an LTR paragraph to
// level 2 where they follow RTL text (European numbers) or are Arabic
// numbers, so that they reorder together with the surrounding RTL text.
func raiseNumbers(text []rune, runs []Run) []Run {
	var out []Run
	prevStrong := LTR
	for _, run := range runs {
		if run.IsRTL() {
			out = append(out, run)
			if d, ok := LastStrong(text[run.Start:run.End]); ok {
				prevStrong = d
			}
			continue
		}
		levels := make([]int, run.Len())
		for i := run.Start; i < run.End; i++ {
			r := text[i]
			if d, ok := strong(r); ok {
				prevStrong = d
				continue
			}
			p, _ := bidi.LookupRune(r)
			if p.Class() == bidi.AN || (p.Class() == bidi.EN && prevStrong == RTL) {
				levels[i-run.Start] = 2
			}
		}
		// separators between raised numbers are raised too.
		for i := range levels {
			if levels[i] != 0 || numberClass(text[run.Start+i]) != 1 {
				continue
			}
			j := i
			for j < len(levels) && levels[j] == 0 && numberClass(text[run.Start+j]) == 1 {
				j++
			}
			if i > 0 && levels[i-1] == 2 && j < len(levels) && levels[j] == 2 {
				for k := i; k < j; k++ {
					levels[k] = 2
				}
			}
		}
		start := run.Start
		for i := 1; i <= len(levels); i++ {
			if i == len(levels) || levels[i] != levels[i-1] {
				out = append(out, Run{textpos.Range{Start: start, End: run.Start + i}, levels[i-1]})
				start = run.Start + i
			}
		}
	}
	return out
}

// Levels returns the levels of the runs.
func Levels(runs []Run) []int {
	lv := make([]int, len(runs))
	for i, r := range runs {
		lv[i] = r.Level
	}
	return lv
}

// VisualToLogical returns, for each visual position, the logical index
// of the run displayed there, reordering runs with the given levels
// according to rule L2 of the Unicode bidi algorithm: from the highest
// level down to the lowest odd level, every maximal sequence of runs at
// that level or higher is reversed.
func VisualToLogical(levels []int) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}
	hi := slices.Max(levels)
	lowOdd := hi + 1
	for _, l := range levels {
		if l%2 == 1 && l < lowOdd {
			lowOdd = l
		}
	}
	for lvl := hi; lvl >= lowOdd; lvl-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lvl {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	return order
}

// LogicalToVisual returns, for each logical run, its visual position.
func LogicalToVisual(levels []int) []int {
	v2l := VisualToLogical(levels)
	l2v := make([]int, len(v2l))
	for v, l := range v2l {
		l2v[l] = v
	}
	return l2v
}
