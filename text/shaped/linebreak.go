// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"slices"
	"strconv"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/graphemes"
	"cogentcore.org/textlayout/text/textpos"
)

// WordWraps are the ways of handling a word wider than the
// available width in multiline text.
type WordWraps int32

const (
	// IgnoreLongWords leaves the word overflowing on its own line.
	IgnoreLongWords WordWraps = iota

	// TruncateLongWords cuts the word at the available width.
	TruncateLongWords

	// ElideLongWords cuts the word and ends it with an ellipsis.
	// The ellipsis is added to the text before line breaking, so
	// here it behaves as [TruncateLongWords].
	ElideLongWords

	// WrapLongWords breaks the word across as many lines as needed,
	// with at least one grapheme per line.
	WrapLongWords

	WordWrapsN
)

var wordWrapsNames = [...]string{"IgnoreLongWords", "TruncateLongWords", "ElideLongWords", "WrapLongWords"}

func (ww WordWraps) String() string {
	if ww >= 0 && ww < WordWrapsN {
		return wordWrapsNames[ww]
	}
	return "WordWraps(" + strconv.Itoa(int(ww)) + ")"
}

// LineBreaker lays out the runs of a display text into lines.
// The first line is started on creation.
type LineBreaker struct {
	maxWidth    float32
	minBaseline float32
	minHeight   float32
	wordWrap    WordWraps
	text        []rune
	bounds      graphemes.Bounds
	runs        *RunList

	lines      []Line
	maxAscent  float32
	maxDescent float32
	available  float32
	total      math32.Vector2
}

// NewLineBreaker returns a line breaker for lines no wider than
// maxWidth, where 0 means unlimited, and with at least the given
// baseline and height.
func NewLineBreaker(maxWidth, minBaseline, minHeight float32, ww WordWraps, text []rune, runs *RunList) *LineBreaker {
	lb := &LineBreaker{minBaseline: minBaseline, minHeight: minHeight, wordWrap: ww, text: text, runs: runs}
	lb.maxWidth = maxWidth
	if maxWidth <= 0 {
		lb.maxWidth = math32.MaxFloat32
	}
	lb.bounds = graphemes.Boundaries(text)
	lb.available = lb.maxWidth
	lb.AdvanceLine()
	return lb
}

// ConstructSingleLine puts every run on one line.
func (lb *LineBreaker) ConstructSingleLine() {
	for i, r := range lb.runs.Runs {
		lb.addLineSegment(LineSegment{Run: i, CharRange: r.Range, Width: r.Width}, false)
	}
}

// ConstructMultiLines fills lines word by word, where words are
// the ranges between line break opportunities. A word that does not
// fit on a line that already has content starts a new line. A word
// ending with a newline ends its line.
//
// This is the word loop of the go-text shaping.LineWrapper, driven
// by the break opportunities of the display text instead of the
// wrapper's own segmentation. Words wider than a line are handled by
// addWordToLine according to the [WordWraps] mode.
func (lb *LineBreaker) ConstructMultiLines(words []textpos.Range) {
	for _, wr := range words {
		segs, width := lb.wordSegments(wr)
		newLine := false
		if n := len(segs); n > 0 && IsNewlineSegment(lb.text, &segs[n-1]) {
			newLine = true
			if n != 1 || lb.available != lb.maxWidth {
				width -= segs[n-1].Width
			}
		}
		if width > lb.available && lb.available != lb.maxWidth {
			lb.AdvanceLine()
		}
		if len(segs) > 0 {
			lb.addWordToLine(segs)
		}
		if newLine {
			lb.AdvanceLine()
		}
	}
}

// Finalize finishes the last line and returns the lines.
// It can only be called once.
func (lb *LineBreaker) Finalize() *ShapedText {
	if ln := &lb.lines[len(lb.lines)-1]; ln.DisplayTextIndex == 0 {
		ln.DisplayTextIndex = len(lb.text)
	}
	lb.AdvanceLine()
	lb.lines = lb.lines[:len(lb.lines)-1]
	return &ShapedText{Lines: lb.lines, Size: lb.total}
}

// AdvanceLine finishes the current line, if any, and starts a new one.
func (lb *LineBreaker) AdvanceLine() {
	if n := len(lb.lines); n > 0 {
		ln := &lb.lines[n-1]
		if len(ln.Segments) > 0 {
			ln.DisplayTextIndex = ln.Segments[0].CharRange.Start
		}
		slices.SortStableFunc(ln.Segments, func(a, b LineSegment) int {
			return lb.runs.LogicalToVisual(a.Run) - lb.runs.LogicalToVisual(b.Run)
		})
		x := float32(0)
		for i := range ln.Segments {
			sg := &ln.Segments[i]
			sg.XRange = textpos.RF(x, x+sg.Width)
			x += sg.Width
		}
		ln.Size.Y = max(lb.minHeight, lb.maxAscent+lb.maxDescent)
		ln.Baseline = max(lb.minBaseline, math32.Round(lb.maxAscent))
		ln.PrecedingHeights = math32.Ceil(lb.total.Y)
		width := ln.Size.X
		if ns := len(ln.Segments); ns > 0 && IsNewlineSegment(lb.text, &ln.Segments[ns-1]) {
			width -= ln.Segments[ns-1].Width
		}
		if len(ln.Segments) > 1 && IsNewlineSegment(lb.text, &ln.Segments[0]) {
			width -= ln.Segments[0].Width
		}
		lb.total.Y += ln.Size.Y
		lb.total.X = max(lb.total.X, width)
	}
	lb.maxAscent = 0
	lb.maxDescent = 0
	lb.available = lb.maxWidth
	lb.lines = append(lb.lines, Line{})
}

// wordSegments splits the word into one segment per run
// and returns them with the total width.
func (lb *LineBreaker) wordSegments(wr textpos.Range) ([]LineSegment, float32) {
	if wr.IsEmpty() {
		return nil, 0
	}
	first := lb.runs.RunIndexAt(wr.Start)
	last := lb.runs.RunIndexAt(wr.End - 1)
	var segs []LineSegment
	width := float32(0)
	for i := first; i <= last && i < lb.runs.Len(); i++ {
		r := lb.runs.Runs[i]
		cr := r.Range.Intersect(wr)
		if cr.IsEmpty() {
			continue
		}
		w := r.GlyphWidthForCharRange(cr)
		width += w
		segs = append(segs, LineSegment{Run: i, CharRange: cr, Width: w})
	}
	return segs, width
}

// addWordToLine adds the segments of a word to the current line,
// applying the word wrap behavior to segments wider than the
// available width.
func (lb *LineBreaker) addWordToLine(segs []LineSegment) {
	truncated := false
	for _, sg := range segs {
		if truncated {
			break
		}
		if IsNewlineSegment(lb.text, &sg) || sg.Width <= lb.available || lb.wordWrap == IgnoreLongWords {
			lb.addLineSegment(sg, true)
			continue
		}
		truncated = lb.wordWrap == TruncateLongWords || lb.wordWrap == ElideLongWords
		run := lb.runs.Runs[sg.Run]
		rest := sg
		for !rest.CharRange.IsEmpty() {
			cut := lb.cutoffPos(&rest)
			cr := textpos.R(rest.CharRange.Start, cut)
			if cut > rest.CharRange.Start {
				lb.addLineSegment(LineSegment{Run: rest.Run, CharRange: cr, Width: run.GlyphWidthForCharRange(cr)}, true)
				rest.CharRange.Start = cut
			}
			if truncated {
				break
			}
			if !rest.CharRange.IsEmpty() {
				lb.AdvanceLine()
			}
		}
	}
}

// cutoffPos returns the end of the longest grapheme-aligned start of
// the segment that fits in the available width. At the start of an
// empty line at least one grapheme is kept.
func (lb *LineBreaker) cutoffPos(sg *LineSegment) int {
	run := lb.runs.Runs[sg.Run]
	end := sg.CharRange.Start
	width := float32(0)
	for end < sg.CharRange.End {
		cw := run.GlyphWidthForCharRange(textpos.R(end, end+1))
		if width+cw > lb.available {
			break
		}
		width += cw
		end++
	}
	if valid := max(sg.CharRange.Start, lb.bounds.ValidBefore(lb.text, end, false)); valid != end {
		end = valid
		width = run.GlyphWidthForCharRange(textpos.R(sg.CharRange.Start, end))
	}
	if width == 0 && lb.available == lb.maxWidth {
		end = min(sg.CharRange.End, lb.bounds.ValidAfter(lb.text, end+1, false))
	}
	return end
}

// addLineSegment adds a segment to the current line, merging it
// with the last segment when they belong to the same run. In
// multiline text, newlines do not count toward the line metrics.
func (lb *LineBreaker) addLineSegment(sg LineSegment, multiline bool) {
	ln := &lb.lines[len(lb.lines)-1]
	run := lb.runs.Runs[sg.Run]
	ln.Size.X += sg.Width
	lb.available -= sg.Width
	if n := len(ln.Segments); n > 0 && ln.Segments[n-1].Run == sg.Run {
		last := &ln.Segments[n-1]
		last.CharRange.End = sg.CharRange.End
		last.Width += sg.Width
		return
	}
	ln.Segments = append(ln.Segments, sg)
	if !multiline || !IsNewlineSegment(lb.text, &sg) {
		lb.maxDescent = max(lb.maxDescent, run.Descent())
		lb.maxAscent = max(lb.maxAscent, run.Ascent())
	}
}
