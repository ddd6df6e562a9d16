// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertext

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/breaklist"
	"cogentcore.org/textlayout/text/elide"
	"cogentcore.org/textlayout/text/graphemes"
	"cogentcore.org/textlayout/text/selection"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/segmenter"
)

// primaryFont returns the first font, which sets the size
// and metrics of lines.
func (rt *RenderText) primaryFont() shaped.Font {
	if len(rt.settings.Fonts) == 0 {
		return shaped.Font{}
	}
	return rt.settings.Fonts[0]
}

func (rt *RenderText) fontHeight() float32 {
	return rt.shaper.Metrics(rt.primaryFont()).Height()
}

// ensureLayoutText rebuilds the layout text and its index.
func (rt *RenderText) ensureLayoutText() {
	if rt.layoutValid {
		return
	}
	b := graphemes.Builder{
		Obscured:       rt.settings.Obscured,
		RevealIndex:    rt.revealIndex,
		Multiline:      rt.settings.Multiline,
		TruncateLength: rt.settings.TruncateLength,
	}
	rt.layoutText, rt.index = b.Build(rt.text)
	rt.layoutValid = true
}

// layoutAttributes returns the styles in layout text space, where
// each layout grapheme takes the styles at the start of its logical
// grapheme.
func (rt *RenderText) layoutAttributes() *textstyle.Attributes {
	rt.ensureLayoutText()
	if rt.layoutAttrs == nil {
		comp := rt.composition
		var heavy func(i int) bool
		if !comp.IsEmpty() {
			heavy = func(i int) bool { return comp.ContainsRange(textpos.R(i, i+1)) }
		}
		rt.layoutAttrs = mapAttributes(rt.attrs, rt.index, heavy)
	}
	return rt.layoutAttrs
}

// colors returns the colors in layout text space.
func (rt *RenderText) colors() *breaklist.BreakList[color.RGBA] {
	rt.ensureLayoutText()
	if rt.layoutColors == nil {
		rt.layoutColors = mapColors(rt.attrs.Colors, rt.index)
	}
	return rt.layoutColors
}

// displayColors returns the colors in display text space.
func (rt *RenderText) displayColors() *breaklist.BreakList[color.RGBA] {
	cl := rt.colors()
	if rt.displayIndex != nil {
		return mapColors(cl, rt.displayIndex)
	}
	cl = cl.Clone()
	cl.SetMax(len(rt.DisplayText()))
	return cl
}

// displayAttributes returns the styles in display text space.
func (rt *RenderText) displayAttributes() *textstyle.Attributes {
	la := rt.layoutAttributes()
	if rt.displayIndex != nil {
		return mapAttributes(la, rt.displayIndex, nil)
	}
	da := la.Clone()
	da.SetMax(len(rt.displayText))
	return da
}

// mapAttributes returns src moved from the text space to the display
// space of ix. heavy, if set, forces a heavy underline on the
// graphemes whose text start it reports.
func mapAttributes(src *textstyle.Attributes, ix *graphemes.Index, heavy func(i int) bool) *textstyle.Attributes {
	dst := textstyle.NewAttributes(src.Colors.Value(0), ix.DisplayLen)
	it := textstyle.NewIterator(src)
	for k, m := range ix.Mappings {
		r := textpos.R(m.Display, ix.DisplayIndex(k+1))
		it.AdvanceTo(m.Text)
		dst.Colors.ApplyValue(it.Color(), r)
		dst.Baselines.ApplyValue(it.Baseline(), r)
		dst.FontSizes.ApplyValue(it.FontSize(), r)
		dst.Weights.ApplyValue(it.Weight(), r)
		for s := range textstyle.StylesN {
			v := it.Style(s)
			if s == textstyle.HeavyUnderline && heavy != nil && heavy(m.Text) {
				v = true
			}
			dst.Styles[s].ApplyValue(v, r)
		}
	}
	return dst
}

func mapColors(src *breaklist.BreakList[color.RGBA], ix *graphemes.Index) *breaklist.BreakList[color.RGBA] {
	dst := breaklist.NewMax(src.Value(0), ix.DisplayLen)
	bi := 0
	for k, m := range ix.Mappings {
		for bi+1 < src.Len() && src.Breaks()[bi+1].Pos <= m.Text {
			bi++
		}
		dst.ApplyValue(src.Value(bi), textpos.R(m.Display, ix.DisplayIndex(k+1)))
	}
	return dst
}

// LayoutText returns the text as it is shaped before elision:
// control characters are replaced with visible symbols, obscured
// graphemes with bullets and truncated text with an ellipsis.
func (rt *RenderText) LayoutText() []rune {
	rt.ensureLayoutText()
	return rt.layoutText
}

// DisplayText returns the text as it is drawn, which is the layout
// text unless it is elided.
func (rt *RenderText) DisplayText() []rune {
	rt.ensureLayoutRunList()
	if rt.elided {
		return rt.displayText
	}
	return rt.layoutText
}

// TextElided returns true if the display text differs from
// the layout text.
func (rt *RenderText) TextElided() bool {
	rt.ensureLayoutRunList()
	return rt.elided
}

// ensureLayoutRunList shapes the layout text and updates the display
// text.
func (rt *RenderText) ensureLayoutRunList() {
	rt.ensureLayoutText()
	if rt.layoutRuns == nil {
		dir := bidi.TextDirection(rt.layoutText, rt.settings.Directionality)
		rt.layoutRuns = shaped.NewRunList(rt.shaper, rt.layoutText, rt.layoutAttributes(), dir, rt.settings.Fonts)
		rt.displayValid = false
	}
	if !rt.displayValid {
		rt.displayValid = true
		rt.updateDisplayText()
	}
}

// displayWidth is the width available to the text.
func (rt *RenderText) displayWidth() float32 {
	return rt.settings.DisplayRect.Size().X
}

// updateDisplayText elides the layout text into the display text.
func (rt *RenderText) updateDisplayText() {
	s := rt.settings
	rt.displayText = nil
	rt.wordIndex = nil
	rt.displayIndex = nil
	rt.displayRuns = nil
	rt.shapedText = nil
	rt.elided = false

	width := rt.displayWidth()
	text := rt.layoutText
	if s.Multiline && s.WordWrap == shaped.ElideLongWords && width > 0 {
		text, rt.wordIndex = rt.elideLongWords(text, width)
	}
	words := text
	switch {
	case len(rt.layoutText) == 0:
	case s.Multiline && (s.MaxLines == 0 || s.Elide != elide.ElideTail):
	case !s.Multiline && (s.Elide == elide.NoElide || s.Elide == elide.FadeTail):
	case s.Multiline:
		text = rt.elideLines(text, width)
	default:
		textWidth := rt.layoutRuns.Width()
		if textWidth > 0 && textWidth < width {
			break
		}
		text = rt.Elide(text, textWidth, width, s.Elide)
	}
	rt.elided = !slices.Equal(text, rt.layoutText)
	if rt.elided {
		rt.displayText = text
		rt.displayIndex = rt.wordIndex
		if !slices.Equal(text, words) {
			ei := graphemes.NewElisionIndex(words, text)
			if rt.displayIndex != nil {
				ei = rt.displayIndex.Compose(ei)
			}
			rt.displayIndex = ei
		}
		slog.Debug("rendertext: elided", "behavior", s.Elide, "layout", len(rt.layoutText), "display", len(text))
	}
}

// Elide returns text fitted into the available width with the given
// behavior, measuring each candidate as laid out with the styles of
// the text. textWidth is the width of text if known, or 0.
func (rt *RenderText) Elide(text []rune, textWidth, available float32, behavior elide.Behaviors) []rune {
	e := &elide.Elider{
		Measure:           rt.measure,
		Direction:         rt.TextDirection(),
		WhitespaceElision: rt.settings.WhitespaceElision,
	}
	return e.Elide(text, textWidth, available, behavior)
}

// measure returns the content width of text laid out on one line
// with the styles of rt.
func (rt *RenderText) measure(text []rune) float32 {
	return rt.sameStyleFor(text).ContentWidth()
}

// sameStyleFor returns a copy of rt for text, with the style ranges
// widened so that none ends inside a grapheme of text.
func (rt *RenderText) sameStyleFor(text []rune) *RenderText {
	cp := rt.CreateInstanceOfSameStyle(text)
	cp.attrs.WidenToBoundaries(len(text), cp.IsValidCursorIndex, func(i int) int {
		return cp.IndexOfAdjacentGrapheme(i, selection.Forward)
	})
	cp.onLayoutTextAttributeChanged()
	return cp
}

// elideLines limits multiline text to MaxLines lines, eliding the tail
// of the last line.
func (rt *RenderText) elideLines(text []rune, width float32) []rune {
	s := rt.settings
	cp := rt.sameStyleFor(text)
	cp.settings.Multiline = true
	cp.settings.WordWrap = s.WordWrap
	if rt.wordIndex != nil {
		cp.settings.WordWrap = shaped.TruncateLongWords
	}
	cp.settings.DisplayRect = s.DisplayRect
	cp.settings.MinLineHeight = s.MinLineHeight
	cp.onTextAttributeChanged()
	st := cp.ShapedText()
	if len(st.Lines) <= s.MaxLines {
		return text
	}
	lr := lineRange(cp.DisplayText(), &st.Lines[s.MaxLines-1])
	last := append(slices.Clone(text[lr.Start:lr.End]), elide.Ellipsis)
	out := slices.Clone(text[:lr.Start])
	return append(out, rt.Elide(last, 0, width, elide.ElideTail)...)
}

// elideLongWords tail-elides each line break word of the layout text
// that is wider than width. It returns the new text and the index
// from the layout text to it, or a nil index if nothing changed.
func (rt *RenderText) elideLongWords(text []rune, width float32) ([]rune, *graphemes.Index) {
	bounds := graphemes.Boundaries(text)
	ix := &graphemes.Index{TextLen: len(text)}
	out := make([]rune, 0, len(text))
	changed := false
	bi := 0
	for _, w := range lineBreakWords(text) {
		word := text[w.Start:w.End]
		keep := len(word)
		var tail []rune
		if rt.measure(trimTrailingSpace(word)) > width {
			el := rt.Elide(word, 0, width, elide.ElideTail)
			keep = commonPrefix(word, el)
			tail = el[keep:]
			changed = true
		}
		base := len(out)
		for ; bi+1 < len(bounds) && bounds[bi] < w.End; bi++ {
			if bounds[bi+1] <= w.Start+keep {
				ix.Mappings = append(ix.Mappings, graphemes.Mapping{Text: bounds[bi], Display: base + bounds[bi] - w.Start})
			}
		}
		out = append(out, word[:keep]...)
		if len(tail) > 0 {
			ix.Mappings = append(ix.Mappings, graphemes.Mapping{Text: w.Start + keep, Display: len(out)})
			out = append(out, tail...)
		}
	}
	if !changed {
		return text, nil
	}
	ix.DisplayLen = len(out)
	return out, ix
}

func trimTrailingSpace(word []rune) []rune {
	n := len(word)
	for n > 0 && (word[n-1] == ' ' || word[n-1] == '\t' || word[n-1] == '\n' || word[n-1] == '\r') {
		n--
	}
	return word[:n]
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// lineBreakList returns the line break opportunities of text as
// a break list whose value at each break is its position.
func lineBreakList(text []rune) *breaklist.BreakList[int] {
	bl := breaklist.NewMax(0, len(text))
	if len(text) == 0 {
		return bl
	}
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.LineIterator()
	for it.Next() {
		l := it.Line()
		bl.ApplyValue(l.Offset, textpos.R(l.Offset, len(text)))
	}
	return bl
}

// lineBreakWords returns the ranges between line break opportunities.
func lineBreakWords(text []rune) []textpos.Range {
	return breakRanges(lineBreakList(text))
}

// breakRanges returns the non-empty ranges of a line break list.
func breakRanges(bl *breaklist.BreakList[int]) []textpos.Range {
	words := make([]textpos.Range, 0, bl.Len())
	for i := range bl.Len() {
		if r := bl.Range(i); !r.IsEmpty() {
			words = append(words, r)
		}
	}
	return words
}

// LineBreaks returns the line break opportunities of the display
// text, where the value of each range is its start.
func (rt *RenderText) LineBreaks() *breaklist.BreakList[int] {
	rt.ensureLayoutRunList()
	if rt.lineBreaks == nil {
		rt.lineBreaks = lineBreakList(rt.DisplayText())
	}
	return rt.lineBreaks
}

// runList returns the runs of the display text.
func (rt *RenderText) runList() *shaped.RunList {
	rt.ensureLayoutRunList()
	if !rt.elided {
		return rt.layoutRuns
	}
	if rt.displayRuns == nil {
		dir := bidi.TextDirection(rt.displayText, rt.settings.Directionality)
		rt.displayRuns = shaped.NewRunList(rt.shaper, rt.displayText, rt.displayAttributes(), dir, rt.settings.Fonts)
	}
	return rt.displayRuns
}

// RunList returns the shaped runs of the display text.
func (rt *RenderText) RunList() *shaped.RunList {
	rt.ensureLayout()
	return rt.runList()
}

// ensureLayout breaks the runs of the display text into lines.
func (rt *RenderText) ensureLayout() {
	rl := rt.runList()
	if rt.shapedText != nil {
		return
	}
	s := rt.settings
	display := rt.DisplayText()
	height := max(rt.fontHeight(), s.MinLineHeight)
	lb := shaped.NewLineBreaker(rt.displayWidth(), rt.baselineCenteringText(height), height, s.WordWrap, display, rl)
	if s.Multiline {
		lb.ConstructMultiLines(breakRanges(rt.LineBreaks()))
	} else {
		lb.ConstructSingleLine()
	}
	rt.shapedText = lb.Finalize()
	rt.displayBounds = graphemes.Boundaries(display)
}

// ShapedText returns the lines of the display text.
func (rt *RenderText) ShapedText() *shaped.ShapedText {
	rt.ensureLayout()
	return rt.shapedText
}

// NumLines returns the number of lines.
func (rt *RenderText) NumLines() int {
	return len(rt.ShapedText().Lines)
}

// StringSizeF returns the size of the laid out text.
func (rt *RenderText) StringSizeF() math32.Vector2 {
	return rt.ShapedText().Size
}

// StringSize returns the size of the laid out text,
// rounded up to whole pixels.
func (rt *RenderText) StringSize() math32.Vector2 {
	return rt.StringSizeF().Ceil()
}

// ContentWidthF returns the width of the text, including the room
// for the cursor.
func (rt *RenderText) ContentWidthF() float32 {
	w := rt.StringSizeF().X
	if rt.settings.CursorEnabled {
		return math32.Ceil(w) + 1
	}
	return w
}

// ContentWidth returns [RenderText.ContentWidthF] rounded up.
func (rt *RenderText) ContentWidth() float32 {
	return math32.Ceil(rt.ContentWidthF())
}

// TotalLineWidth returns the sum of the line widths.
func (rt *RenderText) TotalLineWidth() float32 {
	w := float32(0)
	for _, ln := range rt.ShapedText().Lines {
		w += ln.Size.X
	}
	return w
}

// lineRange returns the display range of a line, excluding
// a newline at either end.
func lineRange(text []rune, ln *shaped.Line) textpos.Range {
	if len(ln.Segments) == 0 {
		return textpos.RangeAt(ln.DisplayTextIndex)
	}
	r := textpos.R(ln.Segments[0].CharRange.Min(), ln.Segments[0].CharRange.Max())
	for _, sg := range ln.Segments[1:] {
		r.Start = min(r.Start, sg.CharRange.Min())
		r.End = max(r.End, sg.CharRange.Max())
	}
	first, last := &ln.Segments[0], &ln.Segments[len(ln.Segments)-1]
	switch {
	case shaped.IsNewlineSegment(text, last):
		r.End -= last.CharRange.Len()
	case shaped.IsNewlineSegment(text, first):
		r.End -= first.CharRange.Len()
	}
	return r
}

////////  Direction

// TextDirection returns the paragraph direction of the layout text.
func (rt *RenderText) TextDirection() bidi.Direction {
	if !rt.textDirectionValid {
		rt.textDirection = bidi.TextDirection(rt.LayoutText(), rt.settings.Directionality)
		rt.textDirectionValid = true
	}
	return rt.textDirection
}

// DisplayTextDirection returns the paragraph direction of the
// display text.
func (rt *RenderText) DisplayTextDirection() bidi.Direction {
	if !rt.displayDirectionValid {
		rt.displayDirection = bidi.TextDirection(rt.DisplayText(), rt.settings.Directionality)
		rt.displayDirectionValid = true
	}
	return rt.displayDirection
}

// VisualDirectionOfLogicalEnd returns the side of the screen
// the text ends on.
func (rt *RenderText) VisualDirectionOfLogicalEnd() selection.VisualDirection {
	if rt.TextDirection() == bidi.LTR {
		return selection.Right
	}
	return selection.Left
}

// VisualDirectionOfLogicalBeginning returns the side of the screen
// the text starts on.
func (rt *RenderText) VisualDirectionOfLogicalBeginning() selection.VisualDirection {
	if rt.TextDirection() == bidi.LTR {
		return selection.Left
	}
	return selection.Right
}

////////  Index space

// IsGraphemeBoundary returns true if the logical index i is at the
// start of a grapheme or at the end of the text.
func (rt *RenderText) IsGraphemeBoundary(i int) bool {
	rt.ensureLayoutText()
	return rt.index.IsBoundary(i)
}

// IndexOfAdjacentGrapheme returns the grapheme boundary next to the
// logical index i in the given direction.
func (rt *RenderText) IndexOfAdjacentGrapheme(i int, dir selection.LogicalDirection) int {
	if len(rt.text) == 0 {
		return 0
	}
	rt.ensureLayoutText()
	return rt.index.Adjacent(i, dir == selection.Forward)
}

// IsValidLogicalIndex returns true if i is in the text and not past
// the truncation length.
func (rt *RenderText) IsValidLogicalIndex(i int) bool {
	n := len(rt.text)
	tl := rt.settings.TruncateLength
	return i == 0 || i == n || (i >= 0 && i < n && (tl == 0 || i < tl))
}

// IsValidCursorIndex returns true if the caret can be placed at i.
func (rt *RenderText) IsValidCursorIndex(i int) bool {
	return i == 0 || i == len(rt.text) || (rt.IsValidLogicalIndex(i) && rt.IsGraphemeBoundary(i))
}

// TextIndexToDisplayIndex returns the display index of the grapheme
// containing the logical index i.
func (rt *RenderText) TextIndexToDisplayIndex(i int) int {
	rt.ensureLayoutRunList()
	d := rt.index.TextToDisplay(i)
	if rt.displayIndex != nil {
		d = rt.displayIndex.TextToDisplay(d)
	}
	return d
}

// DisplayIndexToTextIndex returns the logical index of the grapheme
// containing the display index i.
func (rt *RenderText) DisplayIndexToTextIndex(i int) int {
	rt.ensureLayoutRunList()
	if rt.displayIndex != nil {
		i = rt.displayIndex.DisplayToText(i)
	}
	return rt.index.DisplayToText(i)
}

// textEndToDisplayIndex returns the display index of the end of the
// grapheme holding the logical index i-1, which is where a logical
// range ending at i ends in the display text.
func (rt *RenderText) textEndToDisplayIndex(i int) int {
	rt.ensureLayoutRunList()
	d := rt.index.TextEndToDisplay(i)
	if rt.displayIndex != nil {
		d = rt.displayIndex.TextEndToDisplay(d)
	}
	return d
}

// displayEndToTextIndex returns the logical index of the end of the
// grapheme holding the display index i-1. The graphemes replaced by
// an ellipsis all end where the ellipsis ends.
func (rt *RenderText) displayEndToTextIndex(i int) int {
	rt.ensureLayoutRunList()
	if rt.displayIndex != nil {
		i = rt.displayIndex.DisplayEndToText(i)
	}
	return rt.index.DisplayEndToText(i)
}

// displayTextRange returns the logical range shown by the display
// range r.
func (rt *RenderText) displayTextRange(r textpos.Range) textpos.Range {
	return textpos.R(rt.displayEndToTextIndex(r.Start), rt.displayEndToTextIndex(r.End))
}

// isCaretVisible returns false for the logical indexes hidden by
// elision or truncation, which display at the same place as the
// grapheme before them.
func (rt *RenderText) isCaretVisible(i int) bool {
	if i <= 0 || i >= len(rt.text) {
		return true
	}
	return rt.TextIndexToDisplayIndex(i) != rt.TextIndexToDisplayIndex(i-1)
}

// ExpandRangeToGraphemeBoundary moves the start of r backward and its
// end forward to the nearest cursor indexes, keeping its direction.
func (rt *RenderText) ExpandRangeToGraphemeBoundary(r textpos.Range) textpos.Range {
	snap := func(i int, dir selection.LogicalDirection) int {
		if rt.IsValidCursorIndex(i) {
			return i
		}
		return rt.IndexOfAdjacentGrapheme(i, dir)
	}
	n := len(rt.text)
	if r.IsReversed() {
		return textpos.R(snap(min(r.Start, n), selection.Forward), snap(min(r.End, n), selection.Backward))
	}
	return textpos.R(snap(min(r.Start, n), selection.Backward), snap(min(r.End, n), selection.Forward))
}
