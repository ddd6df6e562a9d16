// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped_test

import (
	"image/color"
	"testing"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/graphemes"
	. "cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/shaped/shapedtest"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseFont = Font{Family: "Primary", Size: 16, Weight: textstyle.Normal}

func attrsFor(text []rune) *textstyle.Attributes {
	return textstyle.NewAttributes(color.RGBA{A: 255}, len(text))
}

func shapedRun(level int, gtc []int, adv []float32, rng textpos.Range) *Run {
	r := &Run{Range: rng, Level: level}
	r.SetOutput(baseFont, &Output{Glyphs: make([]uint32, len(gtc)), Advances: adv, GlyphToChar: gtc})
	return r
}

func TestClusterAt(t *testing.T) {
	// glyphs 1 and 2 form the cluster of chars 1 and 2
	r := shapedRun(0, []int{0, 1, 1, 3}, []float32{10, 10, 0, 10}, textpos.R(0, 4))
	assert.Equal(t, float32(30), r.Width)

	chars, glyphs, ok := r.ClusterAt(0)
	assert.True(t, ok)
	assert.Equal(t, textpos.R(0, 1), chars)
	assert.Equal(t, textpos.R(0, 1), glyphs)

	chars, glyphs, _ = r.ClusterAt(2)
	assert.Equal(t, textpos.R(1, 3), chars)
	assert.Equal(t, textpos.R(1, 3), glyphs)

	chars, glyphs, _ = r.ClusterAt(3)
	assert.Equal(t, textpos.R(3, 4), chars)
	assert.Equal(t, textpos.R(3, 4), glyphs)

	_, _, ok = r.ClusterAt(5)
	assert.False(t, ok)

	assert.Equal(t, float32(10), r.GlyphWidthForCharRange(textpos.R(1, 3)))
	assert.Equal(t, float32(10), r.GlyphWidthForCharRange(textpos.R(1, 2)))
	assert.Equal(t, float32(30), r.GlyphWidthForCharRange(textpos.R(0, 4)))
	assert.Equal(t, float32(0), r.GlyphWidthForCharRange(textpos.R(2, 2)))
}

func TestClusterAtRTL(t *testing.T) {
	r := shapedRun(1, []int{3, 1, 1, 0}, []float32{10, 0, 10, 10}, textpos.R(0, 4))

	chars, glyphs, ok := r.ClusterAt(0)
	assert.True(t, ok)
	assert.Equal(t, textpos.R(0, 1), chars)
	assert.Equal(t, textpos.R(3, 4), glyphs)

	chars, glyphs, _ = r.ClusterAt(1)
	assert.Equal(t, textpos.R(1, 3), chars)
	assert.Equal(t, textpos.R(1, 3), glyphs)

	assert.Equal(t, textpos.R(0, 4), r.CharRangeToGlyphRange(textpos.R(0, 4)))
	assert.Equal(t, textpos.R(1, 4), r.CharRangeToGlyphRange(textpos.R(0, 2)))
	assert.Equal(t, float32(10), r.GlyphWidthForCharRange(textpos.R(3, 4)))
	assert.Equal(t, float32(20), r.GlyphWidthForCharRange(textpos.R(0, 2)))
}

func TestGraphemeBounds(t *testing.T) {
	// a ligature of two graphemes in one glyph
	text := []rune("fi")
	b := graphemes.Boundaries(text)
	r := shapedRun(0, []int{0}, []float32{20}, textpos.R(0, 2))
	r.PrecedingWidth = 5
	assert.Equal(t, textpos.RF(5, 15), r.GraphemeBounds(b, 0))
	assert.Equal(t, textpos.RF(15, 25), r.GraphemeBounds(b, 1))
	assert.Equal(t, textpos.RF(0, 20), r.GraphemeSpanForCharRange(b, textpos.R(0, 2)))

	r.Level = 1
	assert.Equal(t, textpos.RF(15, 25), r.GraphemeBounds(b, 0))
	assert.Equal(t, textpos.RF(5, 15), r.GraphemeBounds(b, 1))

	// nothing shaped
	e := &Run{Range: textpos.R(0, 2), PrecedingWidth: 7}
	assert.Equal(t, textpos.RF(7, 7), e.GraphemeBounds(b, 0))
}

func runRanges(runs []*Run) []textpos.Range {
	var rs []textpos.Range
	for _, r := range runs {
		rs = append(rs, r.Range)
	}
	return rs
}

func TestItemize(t *testing.T) {
	text := []rune("ab (cd)\n")
	runs := Itemize(text, attrsFor(text), bidi.Runs(text, bidi.LTR), baseFont)
	assert.Equal(t, []textpos.Range{
		textpos.R(0, 2), textpos.R(2, 3), textpos.R(3, 4),
		textpos.R(4, 6), textpos.R(6, 7), textpos.R(7, 8),
	}, runRanges(runs))
	assert.Equal(t, language.Latin, runs[0].Script)
	assert.Equal(t, baseFont, runs[0].Font)
}

func TestItemizeStyles(t *testing.T) {
	text := []rune("abcd")
	at := attrsFor(text)
	at.Weights.ApplyValue(textstyle.Bold, textpos.R(1, 2))
	at.Styles[textstyle.Underline].ApplyValue(true, textpos.R(0, 4))
	// color changes do not break runs
	at.Colors.ApplyValue(color.RGBA{R: 255, A: 255}, textpos.R(2, 3))
	runs := Itemize(text, at, bidi.Runs(text, bidi.LTR), baseFont)
	assert.Equal(t, []textpos.Range{textpos.R(0, 1), textpos.R(1, 2), textpos.R(2, 4)}, runRanges(runs))
	assert.Equal(t, textstyle.Bold, runs[1].Font.Weight)
	assert.Equal(t, textstyle.Normal, runs[2].Font.Weight)
	assert.True(t, runs[0].Underline)

	at = attrsFor(text)
	at.Baselines.ApplyValue(textstyle.Superscript, textpos.R(2, 4))
	runs = Itemize(text, at, bidi.Runs(text, bidi.LTR), baseFont)
	require.Len(t, runs, 2)
	assert.Equal(t, textstyle.Superscript, runs[1].Baseline)
	assert.Less(t, runs[1].Font.Size, baseFont.Size)
}

func TestItemizeScripts(t *testing.T) {
	text := []rune("abc שלום def")
	runs := Itemize(text, attrsFor(text), bidi.Runs(text, bidi.LTR), baseFont)
	assert.Equal(t, []textpos.Range{
		textpos.R(0, 3), textpos.R(3, 4), textpos.R(4, 8),
		textpos.R(8, 9), textpos.R(9, 12),
	}, runRanges(runs))
	assert.Equal(t, language.Hebrew, runs[2].Script)
	assert.Equal(t, 1, runs[2].Level)
	assert.Equal(t, 0, runs[4].Level)
}

func TestItemizeEmoji(t *testing.T) {
	text := []rune("a😀b")
	runs := Itemize(text, attrsFor(text), bidi.Runs(text, bidi.LTR), baseFont)
	assert.Equal(t, []textpos.Range{textpos.R(0, 1), textpos.R(1, 2), textpos.R(2, 3)}, runRanges(runs))

	// a flag is one grapheme and one run
	text = []rune("x🇫🇷")
	runs = Itemize(text, attrsFor(text), bidi.Runs(text, bidi.LTR), baseFont)
	assert.Equal(t, []textpos.Range{textpos.R(0, 1), textpos.R(1, 3)}, runRanges(runs))
}

func TestShapeRunsFallback(t *testing.T) {
	sh := shapedtest.New()
	noX := func(r rune) bool { return r != 'x' }
	sh.Covers = map[string]func(rune) bool{"Primary": noX, "Second": noX}
	sh.FallbackFonts = []Font{{Family: "Fallback"}}

	text := []rune("axa")
	rl := NewRunList(sh, text, attrsFor(text), bidi.LTR, []Font{baseFont, {Family: "Second"}})
	require.Equal(t, 1, rl.Len())
	r := rl.Runs[0]
	assert.Equal(t, "Fallback", r.Font.Family)
	assert.Equal(t, baseFont.Size, r.Font.Size)
	assert.Equal(t, 0, r.MissingGlyphs)
	assert.Equal(t, 3, sh.Calls)
	assert.Equal(t, float32(30), r.Width)

	// no improvement keeps the first font
	sh.Covers["Fallback"] = noX
	sh.Calls = 0
	rl = NewRunList(sh, text, attrsFor(text), bidi.LTR, []Font{baseFont})
	assert.Equal(t, "Primary", rl.Runs[0].Font.Family)
	assert.Equal(t, 1, rl.Runs[0].MissingGlyphs)
	assert.Equal(t, 2, sh.Calls)

	// covered by the primary font: one call
	sh.Calls = 0
	text = []rune("aaa")
	rl = NewRunList(sh, text, attrsFor(text), bidi.LTR, []Font{baseFont})
	assert.Equal(t, 1, sh.Calls)
	assert.Equal(t, "Primary", rl.Runs[0].Font.Family)
}

func TestShapeRunsNewline(t *testing.T) {
	sh := shapedtest.New()
	text := []rune("ab\ncd")
	rl := NewRunList(sh, text, attrsFor(text), bidi.LTR, []Font{baseFont})
	require.Equal(t, 3, rl.Len())
	nl := rl.Runs[1]
	assert.True(t, IsNewline(text, nl.Range))
	assert.Equal(t, float32(0), nl.Width)
	assert.Equal(t, 1, nl.MissingGlyphs)
	assert.Equal(t, []int{2}, nl.GlyphToChar)
	assert.Equal(t, float32(40), rl.Width())

	assert.True(t, IsNewline([]rune("\r\n"), textpos.R(0, 2)))
	assert.False(t, IsNewline([]rune("a\n"), textpos.R(0, 2)))
}

func TestRunList(t *testing.T) {
	sh := shapedtest.New()
	text := []rune("abc שלום def")
	rl := NewRunList(sh, text, attrsFor(text), bidi.LTR, []Font{baseFont})
	require.Equal(t, 5, rl.Len())
	for i := range rl.Len() {
		assert.Equal(t, i, rl.VisualToLogical(i))
	}
	he := rl.Runs[rl.RunIndexAt(5)]
	assert.Equal(t, float32(40), he.PrecedingWidth)
	assert.Equal(t, float32(120), rl.Width())
	assert.Equal(t, rl.Len(), rl.RunIndexAt(12))

	rl = NewRunList(sh, text, attrsFor(text), bidi.RTL, []Font{baseFont})
	first := rl.RunIndexAt(0)
	last := rl.RunIndexAt(9)
	assert.Equal(t, last, rl.VisualToLogical(0))
	assert.Equal(t, rl.Len()-1, rl.LogicalToVisual(first))
	assert.Equal(t, float32(0), rl.Runs[last].PrecedingWidth)
	assert.Equal(t, float32(90), rl.Runs[first].PrecedingWidth)

	assert.Equal(t, 0, NewRunList(sh, nil, attrsFor(nil), bidi.LTR, []Font{baseFont}).Len())
}

func breaker(text string, maxWidth float32, ww WordWraps) (*LineBreaker, []rune) {
	rs := []rune(text)
	rl := NewRunList(shapedtest.New(), rs, attrsFor(rs), bidi.LTR, []Font{baseFont})
	return NewLineBreaker(maxWidth, 0, 0, ww, rs, rl), rs
}

func TestSingleLine(t *testing.T) {
	lb, _ := breaker("ab cd", 0, WrapLongWords)
	lb.ConstructSingleLine()
	st := lb.Finalize()
	require.Len(t, st.Lines, 1)
	ln := st.Lines[0]
	require.Len(t, ln.Segments, 3)
	assert.Equal(t, textpos.RF(0, 20), ln.Segments[0].XRange)
	assert.Equal(t, textpos.RF(20, 30), ln.Segments[1].XRange)
	assert.Equal(t, textpos.RF(30, 50), ln.Segments[2].XRange)
	assert.Equal(t, math32.Vec2(50, 16), ln.Size)
	assert.Equal(t, float32(12), ln.Baseline)
	assert.Equal(t, math32.Vec2(50, 16), st.Size)
}

func TestSingleLineMinimums(t *testing.T) {
	rs := []rune("ab")
	rl := NewRunList(shapedtest.New(), rs, attrsFor(rs), bidi.LTR, []Font{baseFont})
	lb := NewLineBreaker(0, 14, 20, IgnoreLongWords, rs, rl)
	lb.ConstructSingleLine()
	st := lb.Finalize()
	assert.Equal(t, float32(20), st.Lines[0].Size.Y)
	assert.Equal(t, float32(14), st.Lines[0].Baseline)
}

func TestMultiLines(t *testing.T) {
	lb, _ := breaker("ab cd ef", 50, WrapLongWords)
	lb.ConstructMultiLines([]textpos.Range{textpos.R(0, 3), textpos.R(3, 6), textpos.R(6, 8)})
	st := lb.Finalize()
	require.Len(t, st.Lines, 2)
	assert.Equal(t, 0, st.Lines[0].DisplayTextIndex)
	assert.Equal(t, 3, st.Lines[1].DisplayTextIndex)
	assert.Equal(t, float32(30), st.Lines[0].Size.X)
	assert.Equal(t, float32(50), st.Lines[1].Size.X)
	assert.Equal(t, float32(0), st.Lines[0].PrecedingHeights)
	assert.Equal(t, float32(16), st.Lines[1].PrecedingHeights)
	assert.Equal(t, math32.Vec2(50, 32), st.Size)
	assert.Equal(t, 1, st.LineAt(4))
	assert.Equal(t, 0, st.LineAt(2))
}

func TestMultiLinesNewline(t *testing.T) {
	lb, _ := breaker("ab\ncd", 100, WrapLongWords)
	lb.ConstructMultiLines([]textpos.Range{textpos.R(0, 3), textpos.R(3, 5)})
	st := lb.Finalize()
	require.Len(t, st.Lines, 2)
	assert.Equal(t, 3, st.Lines[1].DisplayTextIndex)
	assert.Equal(t, float32(20), st.Size.X)

	lb, _ = breaker("ab\n", 100, WrapLongWords)
	lb.ConstructMultiLines([]textpos.Range{textpos.R(0, 3)})
	st = lb.Finalize()
	require.Len(t, st.Lines, 2)
	assert.Empty(t, st.Lines[1].Segments)
	assert.Equal(t, 3, st.Lines[1].DisplayTextIndex)
}

func TestLongWords(t *testing.T) {
	word := []textpos.Range{textpos.R(0, 10)}

	// ten graphemes of width 10 in a width of 30 take four lines
	lb, _ := breaker("abcdefghij", 30, WrapLongWords)
	lb.ConstructMultiLines(word)
	st := lb.Finalize()
	require.Len(t, st.Lines, 4)
	for i, ln := range st.Lines {
		require.NotEmpty(t, ln.Segments, "line %d", i)
		assert.LessOrEqual(t, ln.Size.X, float32(30))
	}
	assert.Equal(t, textpos.R(9, 10), st.Lines[3].Segments[0].CharRange)

	lb, _ = breaker("abcdefghij", 30, TruncateLongWords)
	lb.ConstructMultiLines(word)
	st = lb.Finalize()
	require.Len(t, st.Lines, 1)
	assert.Equal(t, textpos.R(0, 3), st.Lines[0].Segments[0].CharRange)

	lb, _ = breaker("abcdefghij", 30, IgnoreLongWords)
	lb.ConstructMultiLines(word)
	st = lb.Finalize()
	require.Len(t, st.Lines, 1)
	assert.Equal(t, float32(100), st.Lines[0].Size.X)
}

func TestLongWordNarrowWidth(t *testing.T) {
	// a width narrower than one grapheme still takes one per line
	lb, _ := breaker("abc", 5, WrapLongWords)
	lb.ConstructMultiLines([]textpos.Range{textpos.R(0, 3)})
	st := lb.Finalize()
	require.Len(t, st.Lines, 3)
	for _, ln := range st.Lines {
		assert.Equal(t, 1, ln.Segments[0].CharRange.Len())
	}
}

func TestWordWrapsString(t *testing.T) {
	assert.Equal(t, "WrapLongWords", WrapLongWords.String())
	assert.Equal(t, "WordWraps(9)", WordWraps(9).String())
}
