// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertext

import (
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/selection"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
)

// epsilon is the tolerance of x comparisons between run
// and line coordinates.
const epsilon = 1e-3

// Baseline returns the baseline of the text from the top of the
// display rect, centering the font in the rect height.
func (rt *RenderText) Baseline() float32 {
	if !rt.baselineValid {
		rt.baseline = rt.baselineCenteringText(rt.settings.DisplayRect.Size().Y)
		rt.baselineValid = true
	}
	return rt.baseline
}

// baselineCenteringText returns the baseline that centers the primary
// font vertically in the given height, never moving the text up out
// of it.
func (rt *RenderText) baselineCenteringText(height float32) float32 {
	m := rt.shaper.Metrics(rt.primaryFont())
	fontHeight := m.Height()
	minShift := min(0, height-fontHeight)
	maxShift := math32.Abs(height - fontHeight)
	shift := float32(int(height-fontHeight) / 2)
	return m.Ascent + math32.Clamp(shift, minShift, maxShift)
}

// currentHorizontalAlignment resolves [AlignToHead].
func (rt *RenderText) currentHorizontalAlignment() HorizontalAligns {
	a := rt.settings.HorizontalAlign
	if a != AlignToHead {
		return a
	}
	if rt.DisplayTextDirection() == bidi.RTL {
		return AlignRight
	}
	return AlignLeft
}

// AlignmentOffset returns the offset of a line from the display rect
// given by the horizontal and vertical alignments.
func (rt *RenderText) AlignmentOffset(line int) math32.Vector2 {
	st := rt.ShapedText()
	rect := rt.settings.DisplayRect.Size()
	var off math32.Vector2
	if align := rt.currentHorizontalAlignment(); align != AlignLeft {
		w := rt.ContentWidth()
		if rt.settings.Multiline && line < len(st.Lines) {
			w = math32.Ceil(st.Lines[line].Size.X)
			if rt.settings.CursorEnabled {
				w++
			}
		}
		off.X = rect.X - w
		if align == AlignCenter {
			off.X = float32(int(off.X+1) / 2)
		}
	}
	switch rt.settings.VerticalAlign {
	case AlignMiddle:
		if rt.settings.Multiline {
			off.Y = float32(int(rect.Y-rt.StringSize().Y) / 2)
		} else if len(st.Lines) > 0 {
			off.Y = rt.Baseline() - st.Lines[0].Baseline
		}
	case AlignBottom:
		off.Y = rect.Y - rt.StringSize().Y
	}
	return off
}

// LineOffset returns the view position of the top left of a line.
func (rt *RenderText) LineOffset(line int) math32.Vector2 {
	st := rt.ShapedText()
	off := rt.settings.DisplayRect.Min
	if !rt.settings.Multiline {
		off = off.Add(rt.DisplayOffset())
	} else if line < len(st.Lines) {
		off.Y += st.Lines[line].PrecedingHeights
	}
	return off.Add(rt.AlignmentOffset(line))
}

// DisplayOffset returns the horizontal scroll of single line text,
// updated to keep the cursor in view.
func (rt *RenderText) DisplayOffset() math32.Vector2 {
	rt.updateCachedBoundsAndOffset()
	return rt.displayOffset
}

// UpdatedCursorBounds returns the bounds of the caret after
// scrolling it into view.
func (rt *RenderText) UpdatedCursorBounds() math32.Box2 {
	rt.updateCachedBoundsAndOffset()
	return rt.cursorBounds
}

func (rt *RenderText) updateCachedBoundsAndOffset() {
	if rt.boundsValid {
		return
	}
	dx := float32(0)
	if rt.settings.CursorEnabled {
		rt.boundsValid = true
		rt.cursorBounds = rt.CursorBounds(rt.sel, true)
		r := rt.settings.DisplayRect
		if rt.cursorBounds.Max.X > r.Max.X {
			dx = r.Max.X - rt.cursorBounds.Max.X
		} else if rt.cursorBounds.Min.X < r.Min.X {
			dx = r.Min.X - rt.cursorBounds.Min.X
		}
	}
	rt.SetDisplayOffset(rt.displayOffset.X + dx)
}

// SetDisplayOffset sets the horizontal scroll of single line text,
// clamped so that the text covers as much of the display rect as
// its alignment allows.
func (rt *RenderText) SetDisplayOffset(x float32) {
	extra := rt.ContentWidth() - rt.settings.DisplayRect.Size().X
	cursor := float32(0)
	if rt.settings.CursorEnabled {
		cursor = 1
	}
	var lo, hi float32
	if extra > 0 {
		switch rt.currentHorizontalAlignment() {
		case AlignLeft:
			lo = -extra
		case AlignRight:
			hi = extra
		case AlignCenter:
			lo = -float32(int(extra-cursor+1)/2) - cursor
			hi = float32(int(extra-cursor) / 2)
		}
	}
	rt.boundsValid = true
	rt.displayOffset.X = math32.Clamp(x, lo, hi)
	rt.cursorBounds = rt.CursorBounds(rt.sel, true)
}

// lineX converts an x in the space of the run list to an x from
// the start of a line, using the segment of the line covering it.
func (rt *RenderText) lineX(line int, x float32) float32 {
	st := rt.ShapedText()
	runs := rt.runList()
	ln := &st.Lines[line]
	for si := range ln.Segments {
		sg := &ln.Segments[si]
		if sg.CharRange.IsEmpty() {
			continue
		}
		span := runs.Runs[sg.Run].GraphemeSpanForCharRange(rt.displayBounds, sg.CharRange)
		if x >= span.Min()-epsilon && x <= span.Max()+epsilon {
			return sg.XRange.Start + math32.Clamp(x-span.Min(), 0, span.Len())
		}
	}
	if len(ln.Segments) > 0 {
		first := &ln.Segments[0]
		if !first.CharRange.IsEmpty() && x < runs.Runs[first.Run].GraphemeSpanForCharRange(rt.displayBounds, first.CharRange).Min() {
			return 0
		}
	}
	return ln.Size.X
}

// CursorSpan returns the x range, in the space of the whole run
// list, of the graphemes of the logical range r. The range is
// reversed for right-to-left runs.
func (rt *RenderText) CursorSpan(r textpos.Range) textpos.RangeF {
	rt.ensureLayout()
	runs := rt.runList()
	n := len(rt.text)
	if n == 0 || runs.Len() == 0 {
		return textpos.RangeF{}
	}
	r = r.Canon()
	ri := rt.runContainingCaret(selection.NewCaret(r.Start, selection.Forward))
	if ri >= runs.Len() {
		ri = runs.Len() - 1
		r = textpos.R(n-1, n)
	}
	run := runs.Runs[ri]
	next := r.End
	if !rt.IsValidCursorIndex(next) {
		next = rt.IndexOfAdjacentGrapheme(next, selection.Forward)
	}
	dr := textpos.R(rt.TextIndexToDisplayIndex(r.Start), rt.textEndToDisplayIndex(next)).Intersect(run.Range)
	span := run.GraphemeSpanForCharRange(rt.displayBounds, dr)
	if run.IsRTL() {
		return textpos.RF(span.End, span.Start)
	}
	return span
}

// CursorBounds returns the view rect of the caret of m. In insert
// mode the caret is a line at the edge given by its affinity, and
// in overtype mode it covers the next grapheme.
func (rt *RenderText) CursorBounds(m selection.Model, insert bool) math32.Box2 {
	st := rt.ShapedText()
	pos := m.CaretPos()
	aff := selection.Forward
	if insert {
		aff = m.Affinity()
	}
	line := min(rt.LineContainingCaret(selection.NewCaret(pos, aff)), len(st.Lines)-1)
	ln := &st.Lines[line]
	width := float32(1)
	x := float32(0)

	edge := len(rt.text)
	if aff == selection.Backward {
		edge = 0
	}
	if (insert && pos == 0) || pos == edge {
		rtl := rt.DisplayTextDirection() == bidi.RTL
		if rtl == (pos == 0) {
			x = ln.Size.X
		}
	} else {
		end := rt.IndexOfAdjacentGrapheme(pos, aff)
		span := rt.CursorSpan(textpos.R(min(pos, end), max(pos, end)))
		switch {
		case !insert:
			x = rt.lineX(line, span.Min())
			width = math32.Ceil(rt.lineX(line, span.Max())) - math32.Ceil(x)
		case aff == selection.Backward:
			x = rt.lineX(line, span.End)
		default:
			x = rt.lineX(line, span.Start)
		}
	}
	origin := math32.Vec2(math32.Ceil(x), 0).Add(rt.LineOffset(line))
	return math32.Box2{Min: origin, Max: origin.Add(math32.Vec2(width, math32.Ceil(ln.Size.Y)))}
}

// SubstringBounds returns the view rects covering the graphemes of
// the logical range r, one per line segment.
func (rt *RenderText) SubstringBounds(r textpos.Range) []math32.Box2 {
	st := rt.ShapedText()
	runs := rt.runList()
	r = rt.ExpandRangeToGraphemeBoundary(r.Canon())
	dr := textpos.R(rt.TextIndexToDisplayIndex(r.Start), rt.textEndToDisplayIndex(r.End))
	if r.IsEmpty() || dr.IsEmpty() {
		return nil
	}
	var rects []math32.Box2
	for li := range st.Lines {
		ln := &st.Lines[li]
		for si := range ln.Segments {
			sg := &ln.Segments[si]
			inter := sg.CharRange.Intersect(dr)
			if inter.IsEmpty() {
				continue
			}
			run := runs.Runs[sg.Run]
			span := run.GraphemeSpanForCharRange(rt.displayBounds, inter)
			segSpan := run.GraphemeSpanForCharRange(rt.displayBounds, sg.CharRange)
			x0 := math32.Floor(sg.XRange.Start + span.Min() - segSpan.Min())
			x1 := math32.Ceil(sg.XRange.Start + span.Max() - segSpan.Min())
			rects = append(rects, math32.B2(x0, 0, x1, math32.Ceil(ln.Size.Y)).Translate(rt.LineOffset(li)))
		}
	}
	return rects
}

// lineContainingY returns the line at y from the top of the first
// line, -1 above it, or the number of lines below the last one.
func (rt *RenderText) lineContainingY(y float32) int {
	if y < 0 {
		return -1
	}
	st := rt.ShapedText()
	for i := range st.Lines {
		h := st.Lines[i].Size.Y
		if y <= h {
			return i
		}
		y -= h
	}
	return len(st.Lines)
}

func glyphX(run *shaped.Run, i int) float32 {
	if i >= len(run.Positions) {
		return run.Width
	}
	return run.Positions[i]
}

// FindCursorPosition returns the caret nearest to a view point.
// Points above or below the text go to the first or last line.
func (rt *RenderText) FindCursorPosition(point math32.Vector2) selection.Model {
	st := rt.ShapedText()
	if len(rt.text) == 0 {
		return selection.New()
	}
	runs := rt.runList()
	display := rt.DisplayText()
	li := rt.lineContainingY(point.Y - rt.LineOffset(0).Y)
	li = min(max(li, 0), len(st.Lines)-1)
	ln := &st.Lines[li]
	x := point.X - rt.LineOffset(li).X
	if len(ln.Segments) > 1 && shaped.IsNewlineSegment(display, &ln.Segments[0]) {
		x += ln.Segments[0].Width
	}
	if x < 0 {
		return rt.LineSelectionModel(li, selection.Left)
	}
	si := -1
	for i := range ln.Segments {
		if x < ln.Segments[i].Width {
			si = i
			break
		}
		x -= ln.Segments[i].Width
	}
	if si < 0 {
		return rt.LineSelectionModel(li, selection.Right)
	}
	sg := &ln.Segments[si]
	run := runs.Runs[sg.Run]
	gr := run.CharRangeToGlyphRange(sg.CharRange)
	px := x + glyphX(run, gr.Start)
	rtl := run.IsRTL()
	for i := range run.Glyphs {
		start, end := run.Positions[i], glyphX(run, i+1)
		mid := (start + end) / 2
		c := run.GlyphToChar[i]
		tr := textpos.R(rt.DisplayIndexToTextIndex(c), rt.displayEndToTextIndex(c+1))
		if px < mid {
			if rtl {
				return selection.NewCaret(tr.End, selection.Backward)
			}
			return selection.NewCaret(tr.Start, selection.Forward)
		}
		if px < end {
			if rtl {
				return selection.NewCaret(tr.Start, selection.Forward)
			}
			return selection.NewCaret(tr.End, selection.Backward)
		}
	}
	return rt.LineSelectionModel(li, selection.Right)
}

// IsPointInSelection returns true if the caret nearest to the view
// point is bound to a selected character.
func (rt *RenderText) IsPointInSelection(point math32.Vector2) bool {
	sel := rt.Selection()
	if sel.IsEmpty() {
		return false
	}
	m := rt.FindCursorPosition(point)
	return rangeContainsCaret(sel, m.CaretPos(), m.Affinity())
}
