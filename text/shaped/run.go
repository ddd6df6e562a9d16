// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"sort"

	"cogentcore.org/textlayout/text/graphemes"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/language"
)

// Run is a maximal range of text with the same bidi level, script,
// font and shaping styles, with its shaped glyphs.
type Run struct {

	// Range is the range of runes in the display text.
	Range textpos.Range

	// Level is the bidi embedding level.
	Level int

	// Script is the script of the text.
	Script language.Script

	// Font is the font actually used, after fallback.
	Font Font

	// Baseline is the baseline style of the run.
	Baseline textstyle.Baselines

	// Strike, Underline and HeavyUnderline are the decorations.
	Strike, Underline, HeavyUnderline bool

	// Glyphs are the glyph ids in visual order.
	Glyphs []uint32

	// Positions are the x positions of each glyph from the start of the run.
	Positions []float32

	// GlyphToChar is the display text index of the cluster of each glyph.
	GlyphToChar []int

	// Width is the total advance of the run.
	Width float32

	// MissingGlyphs is the number of missing glyphs in the chosen font.
	MissingGlyphs int

	// Metrics are the font metrics of the run.
	Metrics Metrics

	// BaselineOffset is the vertical offset of the baseline, positive down.
	BaselineOffset float32

	// PrecedingWidth is the sum of the widths of the runs before
	// this one in visual order.
	PrecedingWidth float32
}

// IsRTL returns true for right-to-left runs.
func (r *Run) IsRTL() bool {
	return r.Level%2 == 1
}

// SetOutput sets the shaping results.
func (r *Run) SetOutput(f Font, out *Output) {
	r.Font = f
	r.Glyphs = out.Glyphs
	r.GlyphToChar = out.GlyphToChar
	r.MissingGlyphs = out.MissingGlyphs
	r.Metrics = out.Metrics
	r.Positions = make([]float32, len(out.Advances))
	x := float32(0)
	for i, a := range out.Advances {
		r.Positions[i] = x
		x += a
	}
	r.Width = x
}

// Ascent returns the ascent above the line baseline including
// the baseline offset.
func (r *Run) Ascent() float32 {
	return r.Metrics.Ascent - r.BaselineOffset
}

// Descent returns the descent below the line baseline including
// the baseline offset.
func (r *Run) Descent() float32 {
	return r.Metrics.Descent + r.BaselineOffset
}

// charAt returns the char of the glyph at index k in logical order.
func (r *Run) charAt(k int) int {
	if r.IsRTL() {
		return r.GlyphToChar[len(r.GlyphToChar)-1-k]
	}
	return r.GlyphToChar[k]
}

// ClusterAt returns the char range and glyph range of the cluster
// containing the display index pos. It returns false, with the whole
// run range and no glyphs, if pos is outside the run or nothing
// was shaped.
func (r *Run) ClusterAt(pos int) (chars, glyphs textpos.Range, ok bool) {
	n := len(r.GlyphToChar)
	if n == 0 || !r.Range.Contains(pos) {
		return r.Range, textpos.Range{}, false
	}
	e := sort.Search(n, func(k int) bool { return r.charAt(k) > pos })
	if e == 0 {
		return r.Range, textpos.Range{}, false
	}
	chars.End = r.Range.End
	if e < n {
		chars.End = r.charAt(e)
	}
	ge := e
	e--
	for e > 0 && r.charAt(e) == r.charAt(e-1) {
		e--
	}
	chars.Start = r.charAt(e)
	if r.IsRTL() {
		glyphs = textpos.R(n-ge, n-e)
	} else {
		glyphs = textpos.R(e, ge)
	}
	return chars, glyphs, true
}

// CharRangeToGlyphRange returns the glyphs of the clusters covering
// the non-empty char range cr.
func (r *Run) CharRangeToGlyphRange(cr textpos.Range) textpos.Range {
	_, sg, _ := r.ClusterAt(cr.Start)
	_, eg, _ := r.ClusterAt(cr.End - 1)
	if r.IsRTL() {
		return textpos.R(eg.Start, sg.End)
	}
	return textpos.R(sg.Start, eg.End)
}

// glyphX returns the x position of glyph i, where the glyph count
// is the end of the run.
func (r *Run) glyphX(i int) float32 {
	if i >= len(r.Positions) {
		return r.Width
	}
	return r.Positions[i]
}

// GlyphWidthForCharRange returns the width of the glyphs
// for the given char range.
func (r *Run) GlyphWidthForCharRange(cr textpos.Range) float32 {
	if cr.IsEmpty() {
		return 0
	}
	gr := r.CharRangeToGlyphRange(cr)
	if gr.Start >= gr.End {
		return 0
	}
	return r.glyphX(gr.End) - r.glyphX(gr.Start)
}

// GraphemeBounds returns the x range, in the space of the whole
// run list, of the grapheme at display index i. Clusters holding
// several graphemes are divided evenly between them.
func (r *Run) GraphemeBounds(bounds graphemes.Bounds, i int) textpos.RangeF {
	if len(r.Glyphs) == 0 {
		return textpos.RF(r.PrecedingWidth, r.PrecedingWidth+r.Width)
	}
	chars, glyphs, _ := r.ClusterAt(i)
	begin := r.glyphX(glyphs.Start)
	end := r.glyphX(glyphs.End)
	if chars.Len() > 1 {
		before, total := 0, 0
		for c := chars.Start; c < chars.End; c++ {
			if bounds.IsBoundary(c) {
				if c < i {
					before++
				}
				total++
			}
		}
		if before == total {
			before--
		}
		if total > 1 {
			if r.IsRTL() {
				before = total - before - 1
			}
			start := r.PrecedingWidth + begin
			avg := (end - begin) / float32(total)
			return textpos.RF(start+avg*float32(before), start+avg*float32(before+1))
		}
	}
	return textpos.RF(r.PrecedingWidth+begin, r.PrecedingWidth+end)
}

// GraphemeSpanForCharRange returns the x range covered by the
// graphemes of the char range, in the space of the whole run list.
func (r *Run) GraphemeSpanForCharRange(bounds graphemes.Bounds, cr textpos.Range) textpos.RangeF {
	if cr.IsEmpty() {
		return textpos.RangeF{}
	}
	left, right := cr.Start, cr.End-1
	if r.IsRTL() {
		left, right = right, left
	}
	span := r.GraphemeBounds(bounds, left)
	if left == right {
		return span
	}
	return textpos.RF(span.Start, r.GraphemeBounds(bounds, right).End)
}
