// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertext lays out a styled, editable string in a display
// rect and answers the questions an editor asks about it: where the
// cursor and selection are drawn, what is under a point, how the
// cursor moves, and how the text is painted. Text is shaped through
// a [shaped.Shaper], so the layout itself is independent of fonts.
//
// A RenderText keeps three views of its text: the logical text set by
// the user, the layout text with control characters replaced and
// obscured or truncated graphemes rewritten, and the display text,
// which is the layout text after elision. Every derived view is
// rebuilt lazily after the edits that invalidate it.
package rendertext

import (
	"image/color"
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
)

// RenderText is a laid out, styled text with a selection.
// It is not safe for concurrent use.
type RenderText struct {

	// shaper shapes the runs of the text.
	shaper shaped.Shaper

	// settings are the display parameters.
	settings *Settings

	// text is the logical text.
	text []rune

	// attrs are the styles over the logical text.
	attrs *textstyle.Attributes

	// composition is the input method composition range,
	// drawn with a heavy underline.
	composition textpos.Range

	// revealIndex is the logical index of the grapheme left visible
	// in obscured text, or -1.
	revealIndex int

	shadows []Shadow
	focused bool

	// sel is the selection and caret.
	sel selection.Model

	// directed is whether the selection keeps its direction
	// when it is extended.
	directed bool

	// cachedX is the x of the caret kept across up and down moves.
	cachedX    float32
	hasCachedX bool

	// layout text and the attributes in its index space.
	layoutValid  bool
	layoutText   []rune
	index        *graphemes.Index
	layoutAttrs  *textstyle.Attributes
	layoutColors *breaklist.BreakList[color.RGBA]

	textDirection         bidi.Direction
	textDirectionValid    bool
	displayDirection      bidi.Direction
	displayDirectionValid bool

	// layoutRuns are the shaped runs of the layout text.
	layoutRuns *shaped.RunList

	// display text, set only when elided.
	displayValid bool
	displayText  []rune
	elided       bool

	// wordIndex maps layout to display indexes when long words are
	// elided before line breaking.
	wordIndex *graphemes.Index

	// displayIndex maps layout to display indexes when elided,
	// including the words of wordIndex.
	displayIndex *graphemes.Index

	// displayRuns are the shaped runs of an elided display text.
	displayRuns *shaped.RunList

	lineBreaks    *breaklist.BreakList[int]
	shapedText    *shaped.ShapedText
	displayBounds graphemes.Bounds

	baseline      float32
	baselineValid bool

	// displayOffset is the horizontal scroll of single line text.
	displayOffset math32.Vector2
	cursorBounds  math32.Box2
	boundsValid   bool
}

// New returns an empty RenderText with default [Settings]
// that shapes with sh.
func New(sh shaped.Shaper) *RenderText {
	rt := &RenderText{shaper: sh, settings: NewSettings(), revealIndex: -1}
	rt.attrs = textstyle.NewAttributes(rt.settings.Color, 0)
	rt.attrs.Weights.SetValue(rt.settings.Fonts[0].Weight)
	rt.directed = rt.settings.DirectedSelection
	return rt
}

// Settings returns a copy of the display settings.
func (rt *RenderText) Settings() *Settings {
	return rt.settings.Clone()
}

// ApplySettings replaces all the display settings.
func (rt *RenderText) ApplySettings(s *Settings) {
	old := rt.settings
	rt.settings = s.Clone()
	if old.Color != s.Color {
		rt.attrs.Colors.SetValue(s.Color)
		rt.layoutColors = nil
	}
	if !slices.Equal(old.Fonts, s.Fonts) && len(s.Fonts) > 0 {
		rt.attrs.Weights.SetValue(s.Fonts[0].Weight)
		rt.attrs.Styles[textstyle.Italic].SetValue(s.Fonts[0].Italic)
	}
	if !s.Obscured {
		rt.revealIndex = -1
	}
	rt.directed = s.DirectedSelection
	rt.baselineValid = false
	rt.displayOffset = math32.Vector2{}
	rt.resetCachedX()
	rt.onTextAttributeChanged()
}

////////  Text

// Text returns the logical text.
func (rt *RenderText) Text() string {
	return string(rt.text)
}

// Runes returns the logical text. It must not be modified.
func (rt *RenderText) Runes() []rune {
	return rt.text
}

// SetText sets the text, resets the styles to their values at the
// start of the text, and moves the caret to the start.
func (rt *RenderText) SetText(text string) {
	rs := []rune(text)
	if slices.Equal(rs, rt.text) {
		return
	}
	rt.text = rs
	rt.attrs.Collapse()
	rt.attrs.SetMax(len(rs))
	rt.revealIndex = -1
	rt.resetCachedX()
	rt.setSelectionModel(selection.New())
	rt.onTextAttributeChanged()
}

// AppendText adds text at the end, styled as the end of the current
// text, keeping the selection.
func (rt *RenderText) AppendText(text string) {
	if text == "" {
		return
	}
	rt.text = append(rt.text, []rune(text)...)
	rt.attrs.SetMax(len(rt.text))
	rt.revealIndex = -1
	rt.boundsValid = false
	rt.onTextAttributeChanged()
}

////////  Attributes

// graphemeRange snaps the ends of r outward to cursor indexes,
// so that no style changes inside a grapheme.
func (rt *RenderText) graphemeRange(r textpos.Range) textpos.Range {
	r = r.Canon().Clamp(len(rt.text))
	if !rt.IsValidCursorIndex(r.Start) {
		r.Start = rt.IndexOfAdjacentGrapheme(r.Start, selection.Backward)
	}
	if !rt.IsValidCursorIndex(r.End) {
		r.End = rt.IndexOfAdjacentGrapheme(r.End, selection.Forward)
	}
	return r
}

// SetColor sets the color of the whole text.
func (rt *RenderText) SetColor(clr color.RGBA) {
	rt.attrs.Colors.SetValue(clr)
	rt.layoutColors = nil
}

// ApplyColor sets the color of a range of the text.
// Colors do not change the layout.
func (rt *RenderText) ApplyColor(clr color.RGBA, r textpos.Range) {
	rt.attrs.Colors.ApplyValue(clr, r.Canon())
	rt.layoutColors = nil
}

// SetBaselineStyle sets the baseline style of the whole text.
func (rt *RenderText) SetBaselineStyle(b textstyle.Baselines) {
	rt.attrs.Baselines.SetValue(b)
	rt.onLayoutTextAttributeChanged()
}

// ApplyBaselineStyle sets the baseline style of a range of the text.
func (rt *RenderText) ApplyBaselineStyle(b textstyle.Baselines, r textpos.Range) {
	rt.attrs.Baselines.ApplyValue(b, rt.graphemeRange(r))
	rt.onLayoutTextAttributeChanged()
}

// ApplyFontSizeOverride sets the font size of a range of the text,
// where 0 restores the size of the primary font.
func (rt *RenderText) ApplyFontSizeOverride(size float32, r textpos.Range) {
	rt.attrs.FontSizes.ApplyValue(size, rt.graphemeRange(r))
	rt.onLayoutTextAttributeChanged()
}

// SetWeight sets the font weight of the whole text.
func (rt *RenderText) SetWeight(w textstyle.Weights) {
	rt.attrs.Weights.SetValue(w)
	rt.onLayoutTextAttributeChanged()
}

// ApplyWeight sets the font weight of a range of the text.
func (rt *RenderText) ApplyWeight(w textstyle.Weights, r textpos.Range) {
	rt.attrs.Weights.ApplyValue(w, rt.graphemeRange(r))
	rt.onLayoutTextAttributeChanged()
}

// SetStyle sets a style of the whole text.
func (rt *RenderText) SetStyle(s textstyle.Styles, value bool) {
	rt.attrs.Styles[s].SetValue(value)
	rt.onLayoutTextAttributeChanged()
}

// ApplyStyle sets a style of a range of the text.
func (rt *RenderText) ApplyStyle(s textstyle.Styles, value bool, r textpos.Range) {
	rt.attrs.Styles[s].ApplyValue(value, rt.graphemeRange(r))
	rt.onLayoutTextAttributeChanged()
}

// Style returns true if the style is set over the whole text.
func (rt *RenderText) Style(s textstyle.Styles) bool {
	st := rt.attrs.Styles[s]
	return st.Len() == 1 && st.Value(0)
}

// Attributes returns the styles of the logical text.
// They must not be modified.
func (rt *RenderText) Attributes() *textstyle.Attributes {
	return rt.attrs
}

////////  Display parameters

// SetFonts sets the fonts, where the first one is the primary font.
// The weight and italic style of the whole text are reset to those
// of the primary font.
func (rt *RenderText) SetFonts(fonts ...shaped.Font) {
	if len(fonts) == 0 {
		return
	}
	rt.settings.Fonts = slices.Clone(fonts)
	rt.attrs.Weights.SetValue(fonts[0].Weight)
	rt.attrs.Styles[textstyle.Italic].SetValue(fonts[0].Italic)
	rt.attrs.Styles[textstyle.HeavyUnderline].SetValue(false)
	rt.baselineValid = false
	rt.onLayoutTextAttributeChanged()
}

// SetFontSize sets the size of all the fonts.
func (rt *RenderText) SetFontSize(size float32) {
	for i := range rt.settings.Fonts {
		rt.settings.Fonts[i].Size = size
	}
	rt.baselineValid = false
	rt.onLayoutTextAttributeChanged()
}

// SetMultiline sets whether the text is laid out on several lines.
func (rt *RenderText) SetMultiline(multiline bool) {
	if rt.settings.Multiline == multiline {
		return
	}
	rt.settings.Multiline = multiline
	rt.onTextAttributeChanged()
}

// SetMaxLines sets the maximum number of lines of multiline text
// elided at its tail. 0 is no limit.
func (rt *RenderText) SetMaxLines(n int) {
	rt.settings.MaxLines = n
	rt.onDisplayTextAttributeChanged()
}

// SetWordWrapBehavior sets the handling of words wider than the
// display width.
func (rt *RenderText) SetWordWrapBehavior(ww shaped.WordWraps) {
	if rt.settings.WordWrap == ww {
		return
	}
	rt.settings.WordWrap = ww
	if rt.settings.Multiline {
		rt.onTextAttributeChanged()
	}
}

// SetElideBehavior sets how text that does not fit is elided.
func (rt *RenderText) SetElideBehavior(b elide.Behaviors) {
	if rt.settings.Elide == b {
		return
	}
	rt.settings.Elide = b
	rt.onDisplayTextAttributeChanged()
}

// SetWhitespaceElision overrides whether white space next to the
// ellipsis is removed. nil restores the default.
func (rt *RenderText) SetWhitespaceElision(v *bool) {
	rt.settings.WhitespaceElision = v
	rt.onDisplayTextAttributeChanged()
}

// SetObscured sets whether the text is drawn as bullets.
func (rt *RenderText) SetObscured(obscured bool) {
	if rt.settings.Obscured == obscured {
		return
	}
	rt.settings.Obscured = obscured
	rt.revealIndex = -1
	rt.onTextAttributeChanged()
}

// SetObscuredRevealIndex sets the logical index of the grapheme to
// show in obscured text, or -1 for none.
func (rt *RenderText) SetObscuredRevealIndex(i int) {
	if rt.revealIndex == i {
		return
	}
	rt.revealIndex = i
	rt.onTextAttributeChanged()
}

// SetTruncateLength sets the maximum layout text length,
// including the ellipsis. 0 is no limit.
func (rt *RenderText) SetTruncateLength(n int) {
	if rt.settings.TruncateLength == n {
		return
	}
	rt.settings.TruncateLength = n
	rt.onTextAttributeChanged()
}

// SetDirectionalityMode sets how the paragraph direction is found.
func (rt *RenderText) SetDirectionalityMode(m bidi.Modes) {
	if rt.settings.Directionality == m {
		return
	}
	rt.settings.Directionality = m
	rt.textDirectionValid = false
	rt.displayDirectionValid = false
	rt.onLayoutTextAttributeChanged()
}

// SetDisplayRect sets the rect the text is laid out in.
func (rt *RenderText) SetDisplayRect(r math32.Box2) {
	if rt.settings.DisplayRect == r {
		return
	}
	rt.settings.DisplayRect = r
	rt.baselineValid = false
	rt.boundsValid = false
	rt.onDisplayTextAttributeChanged()
}

// SetHorizontalAlignment sets the horizontal alignment.
func (rt *RenderText) SetHorizontalAlignment(a HorizontalAligns) {
	if rt.settings.HorizontalAlign == a {
		return
	}
	rt.settings.HorizontalAlign = a
	rt.displayOffset = math32.Vector2{}
	rt.boundsValid = false
}

// SetVerticalAlignment sets the vertical alignment.
func (rt *RenderText) SetVerticalAlignment(a VerticalAligns) {
	if rt.settings.VerticalAlign == a {
		return
	}
	rt.settings.VerticalAlign = a
	rt.displayOffset = math32.Vector2{}
	rt.boundsValid = false
}

// SetCursorEnabled sets whether room is kept for the cursor.
func (rt *RenderText) SetCursorEnabled(enabled bool) {
	rt.settings.CursorEnabled = enabled
	rt.boundsValid = false
}

// SetMinLineHeight sets the minimum height of each line.
func (rt *RenderText) SetMinLineHeight(h float32) {
	if rt.settings.MinLineHeight == h {
		return
	}
	rt.settings.MinLineHeight = h
	rt.onDisplayTextAttributeChanged()
}

// SetWordStop sets where word cursor movement stops.
func (rt *RenderText) SetWordStop(w WordStops) {
	rt.settings.WordStop = w
}

// SetDirectedSelection sets whether selections keep their direction
// when they are extended the other way.
func (rt *RenderText) SetDirectedSelection(directed bool) {
	rt.settings.DirectedSelection = directed
	rt.directed = directed
}

// SetCompositionRange sets the range of text being composed by an
// input method, drawn with a heavy underline. An empty range clears it.
func (rt *RenderText) SetCompositionRange(r textpos.Range) {
	r = r.Canon()
	if r.Start < 0 || r.End > len(rt.text) {
		r = textpos.Range{}
	}
	if rt.composition == r {
		return
	}
	rt.composition = r
	rt.onLayoutTextAttributeChanged()
}

// CompositionRange returns the input method composition range.
func (rt *RenderText) CompositionRange() textpos.Range {
	return rt.composition
}

// SetShadows sets the shadows drawn under the text.
func (rt *RenderText) SetShadows(shadows []Shadow) {
	rt.shadows = slices.Clone(shadows)
}

// SetFocused sets whether the selection is drawn.
func (rt *RenderText) SetFocused(focused bool) {
	rt.focused = focused
}

// Focused returns whether the text has focus.
func (rt *RenderText) Focused() bool {
	return rt.focused
}

////////  Invalidation

// onTextAttributeChanged is called when the layout text changes.
func (rt *RenderText) onTextAttributeChanged() {
	rt.layoutValid = false
	rt.layoutColors = nil
	rt.textDirectionValid = false
	rt.elided = false
	rt.onLayoutTextAttributeChanged()
}

// onLayoutTextAttributeChanged is called when the runs change.
func (rt *RenderText) onLayoutTextAttributeChanged() {
	rt.layoutRuns = nil
	rt.layoutAttrs = nil
	rt.onDisplayTextAttributeChanged()
}

// onDisplayTextAttributeChanged is called when the display text
// or its lines change.
func (rt *RenderText) onDisplayTextAttributeChanged() {
	rt.displayValid = false
	rt.displayRuns = nil
	rt.displayDirectionValid = false
	rt.lineBreaks = nil
	rt.shapedText = nil
	rt.boundsValid = false
}

func (rt *RenderText) resetCachedX() {
	rt.cachedX, rt.hasCachedX = 0, false
}

// CreateInstanceOfSameStyle returns a new RenderText for text with
// the fonts, direction, cursor, truncation and styles of rt. The
// styles keep their ranges, so they may need to be adjusted to text.
func (rt *RenderText) CreateInstanceOfSameStyle(text []rune) *RenderText {
	cp := New(rt.shaper)
	cs := rt.settings.Clone()
	cs.Multiline = false
	cs.MaxLines = 0
	cs.Elide = elide.NoElide
	cs.Obscured = false
	cs.DisplayRect = math32.Box2{}
	cp.settings = cs
	cp.directed = cs.DirectedSelection
	cp.text = slices.Clone(text)
	cp.attrs = rt.attrs.Clone()
	return cp
}
