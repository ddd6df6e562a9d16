// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertext

import (
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/selection"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
)

// SelectionModel returns the selection and caret.
func (rt *RenderText) SelectionModel() selection.Model {
	return rt.sel
}

// Selection returns the primary selection.
func (rt *RenderText) Selection() textpos.Range {
	return rt.sel.Selection()
}

// CursorPosition returns the logical index of the caret.
func (rt *RenderText) CursorPosition() int {
	return rt.sel.CaretPos()
}

func (rt *RenderText) setSelectionModel(m selection.Model) {
	rt.sel = m
	rt.boundsValid = false
	rt.directed = rt.settings.DirectedSelection
}

// SetCursorPosition moves the caret to pos, clamped to the text,
// and clears the selection. Positions inside a grapheme are ignored.
func (rt *RenderText) SetCursorPosition(pos int) {
	pos = min(max(pos, 0), len(rt.text))
	if !rt.IsValidCursorIndex(pos) {
		return
	}
	aff := selection.Backward
	if pos == 0 {
		aff = selection.Forward
	}
	rt.setSelectionModel(selection.NewCaret(pos, aff))
}

// MoveCursorTo sets the primary selection to that of m, clamped
// to the text, and drops the secondary selections. It returns false
// if an end is not a cursor index, and otherwise whether the
// selection changed.
func (rt *RenderText) MoveCursorTo(m selection.Model) bool {
	n := len(rt.text)
	r := m.Selection().Clamp(n)
	if !rt.IsValidCursorIndex(r.Start) || !rt.IsValidCursorIndex(r.End) {
		return false
	}
	sel := selection.NewRange(r, m.Affinity())
	changed := !sel.Equal(&rt.sel)
	rt.setSelectionModel(sel)
	return changed
}

// SetSelection sets all the selections of m, clamped to the text.
// It returns false if any end is not a cursor index, and otherwise
// whether the selection changed.
func (rt *RenderText) SetSelection(m selection.Model) bool {
	all := m.All()
	for i, r := range all {
		r = r.Clamp(len(rt.text))
		if !rt.IsValidCursorIndex(r.Start) || !rt.IsValidCursorIndex(r.End) {
			return false
		}
		all[i] = r
	}
	sel := selection.NewMulti(all, m.Affinity())
	changed := !sel.Equal(&rt.sel)
	rt.setSelectionModel(sel)
	return changed
}

// SelectRange sets the primary selection to r, or adds r as a
// secondary selection. It returns false if r does not start and end
// on cursor indexes, or if a secondary selection overlaps another.
func (rt *RenderText) SelectRange(r textpos.Range, primary bool) bool {
	r = r.Clamp(len(rt.text))
	if !rt.IsValidCursorIndex(r.Start) || !rt.IsValidCursorIndex(r.End) {
		return false
	}
	if !primary {
		rt.boundsValid = false
		return rt.sel.AddSecondarySelection(r)
	}
	aff := selection.Backward
	if r.IsReversed() || r.IsEmpty() {
		aff = selection.Forward
	}
	rt.setSelectionModel(selection.NewRange(r, aff))
	return true
}

// SelectAll selects the whole text, with the caret at the start
// if reversed.
func (rt *RenderText) SelectAll(reversed bool) {
	n := len(rt.text)
	all := textpos.R(0, n)
	aff := selection.Backward
	if reversed {
		all = textpos.R(n, 0)
		aff = selection.Forward
	}
	rt.setSelectionModel(selection.NewRange(all, aff))
}

// SelectWord selects the words around the primary selection.
func (rt *RenderText) SelectWord() {
	r := rt.ExpandRangeToWordBoundary(rt.Selection())
	rt.setSelectionModel(selection.NewRange(r, rt.sel.Affinity()))
}

// ClearSelection collapses the selection to the caret.
func (rt *RenderText) ClearSelection() {
	rt.setSelectionModel(selection.NewCaret(rt.CursorPosition(), rt.sel.Affinity()))
}

// selectionStartModel returns a caret at the start of the selection.
func (rt *RenderText) selectionStartModel() selection.Model {
	sel := rt.Selection()
	if sel.IsEmpty() {
		return rt.sel
	}
	aff := selection.Forward
	if sel.IsReversed() {
		aff = selection.Backward
	}
	return selection.NewCaret(sel.Start, aff)
}

// MoveCursor moves the caret by one unit of the break type in
// the visual direction, changing the selection per behavior.
func (rt *RenderText) MoveCursor(bt selection.BreakType, dir selection.VisualDirection, behavior selection.Behavior) {
	cursor := selection.NewCaret(rt.CursorPosition(), rt.sel.Affinity())
	sel := rt.Selection()

	// an undirected selection is extended from the end
	// nearest to the move
	if (!rt.directed || behavior == selection.SelectionNone) && !sel.IsEmpty() {
		start := rt.CursorBounds(rt.selectionStartModel(), true).Min
		end := rt.CursorBounds(cursor, true).Min
		leading := start.Y > end.Y || (start.Y == end.Y && start.X > end.X)
		trailing := dir == selection.Right || dir == selection.Down
		if leading == trailing {
			cursor = rt.selectionStartModel()
			rt.sel = selection.NewRange(sel.Reversed(), rt.sel.Affinity())
			sel = rt.Selection()
		}
	}

	if bt != selection.FieldBreak && bt != selection.LineBreak && !sel.IsEmpty() && behavior == selection.SelectionNone {
		if bt == selection.WordBreak {
			cursor = rt.adjacentSelectionModel(cursor, bt, dir)
		}
		if !rt.IsValidCursorIndex(cursor.CaretPos()) {
			cursor = rt.adjacentSelectionModel(cursor, selection.CharacterBreak, dir)
		}
	} else {
		cursor = rt.adjacentSelectionModel(cursor, bt, dir)
	}

	start := sel.Start
	lo, hi := min(sel.End, cursor.CaretPos()), max(sel.End, cursor.CaretPos())
	reversed := !sel.IsEmpty() && lo <= start && start <= hi
	switch {
	case behavior == selection.SelectionCaret && reversed:
		cursor = selection.NewCaret(start, rt.sel.Affinity())
	case behavior == selection.SelectionExtend && reversed:
		cursor.SetSelectionStart(sel.End)
	case behavior != selection.SelectionNone:
		cursor.SetSelectionStart(start)
	}
	rt.SetSelection(cursor)
	rt.directed = true
	if dir != selection.Up && dir != selection.Down {
		rt.resetCachedX()
	}
}

// MoveCursorToPoint moves the caret to the position nearest to the
// view point, extending the selection if selectRange. It returns
// whether the selection changed.
func (rt *RenderText) MoveCursorToPoint(point math32.Vector2, selectRange bool) bool {
	rt.resetCachedX()
	m := rt.FindCursorPosition(point)
	if selectRange {
		m.SetSelectionStart(rt.Selection().Start)
	}
	return rt.SetSelection(m)
}

// EdgeSelectionModel returns a caret at the visual edge of the
// text in the given direction.
func (rt *RenderText) EdgeSelectionModel(dir selection.VisualDirection) selection.Model {
	if dir == rt.VisualDirectionOfLogicalEnd() {
		return selection.NewCaret(len(rt.text), selection.Forward)
	}
	return selection.NewCaret(0, selection.Backward)
}

// LineSelectionModel returns a caret at the visual edge of a line
// in the given direction.
func (rt *RenderText) LineSelectionModel(line int, dir selection.VisualDirection) selection.Model {
	st := rt.ShapedText()
	tr := rt.displayTextRange(lineRange(rt.DisplayText(), &st.Lines[line]))
	if dir == rt.VisualDirectionOfLogicalEnd() {
		return selection.NewCaret(tr.End, selection.Backward)
	}
	return selection.NewCaret(tr.Start, selection.Forward)
}

// rangeContainsCaret returns true if the character the caret at
// pos is bound to by its affinity is in r.
func rangeContainsCaret(r textpos.Range, pos int, aff selection.LogicalDirection) bool {
	adj := pos + 1
	if aff == selection.Backward {
		adj = pos - 1
	}
	return r.ContainsRange(textpos.R(pos, adj))
}

// runContainingCaret returns the index of the run holding the
// character the caret is bound to, or the number of runs. A character
// hidden by elision is held by the run of its ellipsis.
func (rt *RenderText) runContainingCaret(m selection.Model) int {
	runs := rt.runList()
	ch := m.CaretPos()
	if m.Affinity() == selection.Backward {
		ch--
	}
	if ch < 0 || ch >= len(rt.text) {
		return runs.Len()
	}
	d := rt.TextIndexToDisplayIndex(ch)
	for i, r := range runs.Runs {
		if r.Range.Contains(d) {
			return i
		}
	}
	return runs.Len()
}

// LineContainingCaret returns the index of the line the caret
// is drawn on.
func (rt *RenderText) LineContainingCaret(m selection.Model) int {
	pos := m.CaretPos()
	if pos == 0 {
		return 0
	}
	st := rt.ShapedText()
	if len(st.Lines) <= 1 {
		return 0
	}
	display := rt.DisplayText()
	dpos := rt.TextIndexToDisplayIndex(pos)
	for li := range st.Lines {
		for si := range st.Lines[li].Segments {
			sg := &st.Lines[li].Segments[si]
			if !rangeContainsCaret(sg.CharRange, dpos, m.Affinity()) {
				continue
			}
			if shaped.IsNewlineSegment(display, sg) && m.Affinity() == selection.Backward {
				return li + 1
			}
			return li
		}
	}
	return len(st.Lines) - 1
}

// adjacentSelectionModel returns the caret moved from m by one unit
// of the break type in the visual direction.
func (rt *RenderText) adjacentSelectionModel(m selection.Model, bt selection.BreakType, dir selection.VisualDirection) selection.Model {
	rt.ensureLayout()
	if dir == selection.Up || dir == selection.Down {
		return rt.adjacentLineSelectionModel(m, dir)
	}
	if bt == selection.FieldBreak || len(rt.text) == 0 {
		return rt.EdgeSelectionModel(dir)
	}
	switch bt {
	case selection.LineBreak:
		return rt.LineSelectionModel(rt.LineContainingCaret(m), dir)
	case selection.CharacterBreak:
		return rt.adjacentCharSelectionModel(m, dir)
	}
	return rt.adjacentWordSelectionModel(m, dir)
}

// adjacentVisibleGrapheme returns the grapheme boundary next to caret
// in the given logical direction, passing over the indexes hidden by
// elision. It stops at limit.
func (rt *RenderText) adjacentVisibleGrapheme(caret, limit int, dir selection.LogicalDirection) int {
	for {
		next := rt.IndexOfAdjacentGrapheme(caret, dir)
		if next == caret || next == limit || rt.isCaretVisible(next) {
			return next
		}
		caret = next
	}
}

func (rt *RenderText) firstModelInsideRun(run *shaped.Run) selection.Model {
	tr := rt.displayTextRange(run.Range)
	return selection.NewCaret(rt.adjacentVisibleGrapheme(tr.Start, tr.End, selection.Forward), selection.Backward)
}

func (rt *RenderText) lastModelInsideRun(run *shaped.Run) selection.Model {
	tr := rt.displayTextRange(run.Range)
	return selection.NewCaret(rt.adjacentVisibleGrapheme(tr.End, tr.Start, selection.Backward), selection.Forward)
}

// adjacentVisualRun returns the logical index of the first run from the
// visual index vi onward in the given direction that shows some of the
// logical text, or -1. Runs of directional marks added by elision show
// none.
func (rt *RenderText) adjacentVisualRun(vi int, dir selection.VisualDirection) int {
	runs := rt.runList()
	step := 1
	if dir == selection.Left {
		step = -1
	}
	for ; vi >= 0 && vi < runs.Len(); vi += step {
		ri := runs.VisualToLogical(vi)
		if !rt.displayTextRange(runs.Runs[ri].Range).IsEmpty() {
			return ri
		}
	}
	return -1
}

func (rt *RenderText) adjacentCharSelectionModel(m selection.Model, dir selection.VisualDirection) selection.Model {
	runs := rt.runList()
	ri := rt.runContainingCaret(m)
	if ri >= runs.Len() {
		edge := rt.EdgeSelectionModel(dir)
		if edge.CaretPos() == m.CaretPos() || runs.Len() == 0 {
			return edge
		}
		vi := 0
		if dir == selection.Left {
			vi = runs.Len() - 1
		}
		ri = rt.adjacentVisualRun(vi, dir)
	} else {
		run := runs.Runs[ri]
		tr := rt.displayTextRange(run.Range)
		caret := m.CaretPos()
		if run.IsRTL() == (dir == selection.Left) {
			if caret < tr.End {
				return selection.NewCaret(rt.adjacentVisibleGrapheme(caret, tr.End, selection.Forward), selection.Backward)
			}
		} else if caret > tr.Start {
			return selection.NewCaret(rt.adjacentVisibleGrapheme(caret, tr.Start, selection.Backward), selection.Forward)
		}
		vi := runs.LogicalToVisual(ri)
		if dir == selection.Left {
			vi--
		} else {
			vi++
		}
		ri = rt.adjacentVisualRun(vi, dir)
	}
	if ri < 0 {
		return rt.EdgeSelectionModel(dir)
	}
	run := runs.Runs[ri]
	if run.IsRTL() == (dir == selection.Left) {
		return rt.firstModelInsideRun(run)
	}
	return rt.lastModelInsideRun(run)
}

func (rt *RenderText) adjacentWordSelectionModel(m selection.Model, dir selection.VisualDirection) selection.Model {
	if rt.settings.Obscured {
		return rt.EdgeSelectionModel(dir)
	}
	words := textpos.NewWords(rt.text)
	runs := rt.runList()
	cur := m
	// each move passes a grapheme or the edge of a run
	for range len(rt.text) + runs.Len() + 1 {
		next := rt.adjacentCharSelectionModel(cur, dir)
		if next.Equal(&cur) {
			break
		}
		cur = next
		ri := rt.runContainingCaret(cur)
		if ri >= runs.Len() {
			break
		}
		pos := cur.CaretPos()
		if rt.settings.WordStop == WordStopStart {
			if words.IsStartOfWord(pos) {
				break
			}
			continue
		}
		if runs.Runs[ri].IsRTL() == (dir == selection.Left) {
			if words.IsEndOfWord(pos) {
				break
			}
		} else if words.IsStartOfWord(pos) {
			break
		}
	}
	return cur
}

func (rt *RenderText) adjacentLineSelectionModel(m selection.Model, dir selection.VisualDirection) selection.Model {
	line := rt.LineContainingCaret(m)
	if line == 0 && dir == selection.Up {
		rt.resetCachedX()
		return selection.NewCaret(0, selection.Backward)
	}
	if line == rt.NumLines()-1 && dir == selection.Down {
		rt.resetCachedX()
		return selection.NewCaret(len(rt.text), selection.Forward)
	}
	if dir == selection.Up {
		line--
	} else {
		line++
	}
	bounds := rt.CursorBounds(m, true)
	target := bounds.Min
	if rt.hasCachedX {
		target.X = rt.cachedX
	} else {
		rt.cachedX, rt.hasCachedX = target.X, true
	}
	h := bounds.Size().Y
	if dir == selection.Up {
		target.Y -= h / 2
	} else {
		target.Y += h * 3 / 2
	}
	next := rt.FindCursorPosition(target)

	// a point on the newline at the end of a line gives a caret
	// drawn on the next line
	if rt.LineContainingCaret(next) == line+1 {
		next = selection.NewCaret(rt.IndexOfAdjacentGrapheme(next.CaretPos(), selection.Backward), next.Affinity())
	}
	return next
}

// NearestWordStartBoundary returns the start of the word at or
// before index, or else the first word start after it, or the text
// length if there is none.
func (rt *RenderText) NearestWordStartBoundary(index int) int {
	n := len(rt.text)
	if rt.settings.Obscured || n == 0 {
		return n
	}
	words := textpos.NewWords(rt.text)
	for i := min(index, n); i >= 0; i-- {
		if words.IsStartOfWord(i) {
			return i
		}
	}
	for i := index + 1; i < n; i++ {
		if words.IsStartOfWord(i) {
			return i
		}
	}
	return n
}

// ExpandRangeToWordBoundary extends r to the nearest word boundaries,
// keeping its direction. Obscured text expands to the whole text.
func (rt *RenderText) ExpandRangeToWordBoundary(r textpos.Range) textpos.Range {
	n := len(rt.text)
	if rt.settings.Obscured {
		if r.IsReversed() {
			return textpos.R(n, 0)
		}
		return textpos.R(0, n)
	}
	words := textpos.NewWords(rt.text)
	lo := min(r.Min(), n)
	if lo == n && lo != 0 {
		lo--
	}
	for ; lo > 0; lo-- {
		if words.IsStartOfWord(lo) || words.IsEndOfWord(lo) {
			break
		}
	}
	hi := min(r.Max(), n)
	if lo == hi && hi != n {
		hi++
	}
	for ; hi < n; hi++ {
		if words.IsEndOfWord(hi) || words.IsStartOfWord(hi) {
			break
		}
	}
	if r.IsReversed() {
		return textpos.R(hi, lo)
	}
	return textpos.R(lo, hi)
}
