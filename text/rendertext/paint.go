// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertext

import (
	"image/color"
	"slices"
	"strconv"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/elide"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
)

// Line decoration metrics relative to the font size.
const (
	lineThicknessFactor = 1.0 / 18.0
	underlineOffset     = 1.0 / 9.0
	strikeOffset        = 65.0 / 252.0

	// fadeAlphaAtZeroWidth is the alpha of the faded end of
	// text narrower than four characters.
	fadeAlphaAtZeroWidth = 51
)

// Decorations are the lines drawn with text.
type Decorations int32

const (
	DecorationUnderline Decorations = iota
	DecorationHeavyUnderline
	DecorationStrike
	DecorationsN
)

var decorationsNames = [...]string{"DecorationUnderline", "DecorationHeavyUnderline", "DecorationStrike"}

func (d Decorations) String() string {
	if d >= 0 && d < DecorationsN {
		return decorationsNames[d]
	}
	return "Decorations(" + strconv.Itoa(int(d)) + ")"
}

// Shadow is a drop shadow under the text.
type Shadow struct {

	// Offset is the offset of the shadow from the text.
	Offset math32.Vector2

	// Blur is the blur radius.
	Blur float32

	// Color is the shadow color.
	Color color.RGBA
}

// FadeParams describe a horizontal gradient of the text alpha,
// used to fade out the ends of text that does not fit.
type FadeParams struct {

	// TextRect is the rect the gradient positions are relative to.
	TextRect math32.Box2

	// Left and Right are the faded parts; either may be empty.
	Left, Right math32.Box2

	// Positions are the gradient stops, from 0 to 1 across TextRect.
	Positions []float32

	// Colors are the colors at each of Positions.
	Colors []color.RGBA
}

// TextEffects are the effects applied to the glyphs of a draw.
type TextEffects struct {

	// Fade is the fade gradient, or nil.
	Fade *FadeParams

	// Shadows are drawn under the text.
	Shadows []Shadow
}

// Painter draws the parts of a laid out text.
type Painter interface {

	// SetTextEffects sets the effects for the following glyphs,
	// where nil means none.
	SetTextEffects(e *TextEffects)

	// FillRect fills a rect, as for the selection background.
	FillRect(r math32.Box2, clr color.RGBA)

	// DrawGlyphs draws glyphs at baseline positions.
	DrawGlyphs(font shaped.Font, glyphs []uint32, positions []math32.Vector2, clr color.RGBA)

	// DrawDecoration draws an underline or strike-through line.
	DrawDecoration(d Decorations, r math32.Box2, clr color.RGBA)
}

// Draw paints the selection backgrounds and the text. The
// selections are drawn when the text is focused, or the whole
// text is drawn selected if selectAll.
func (rt *RenderText) Draw(p Painter, selectAll bool) {
	rt.ensureLayout()
	var sels []textpos.Range
	switch {
	case selectAll:
		sels = []textpos.Range{textpos.R(0, len(rt.text))}
	case rt.focused:
		sels = rt.sel.All()
	}
	if len(rt.text) > 0 {
		for _, sel := range sels {
			if sel.IsEmpty() {
				continue
			}
			for _, r := range rt.SubstringBounds(sel) {
				p.FillRect(r, rt.settings.SelectionBackgroundColor)
			}
		}
	}
	rt.drawVisualText(p, sels)
}

func (rt *RenderText) drawVisualText(p Painter, sels []textpos.Range) {
	st := rt.ShapedText()
	runs := rt.runList()
	display := rt.DisplayText()
	effects := &TextEffects{Fade: rt.fadeParams(), Shadows: slices.Clone(rt.shadows)}
	if effects.Fade == nil && len(effects.Shadows) == 0 {
		effects = nil
	}
	p.SetTextEffects(effects)
	defer p.SetTextEffects(nil)

	colors := rt.displayColors()
	for _, sel := range sels {
		sel = rt.ExpandRangeToGraphemeBoundary(sel.Canon())
		if sel.IsEmpty() {
			continue
		}
		dr := textpos.R(rt.TextIndexToDisplayIndex(sel.Start), rt.textEndToDisplayIndex(sel.End))
		colors.ApplyValue(rt.settings.SelectionColor, dr)
	}

	for li := range st.Lines {
		ln := &st.Lines[li]
		origin := rt.LineOffset(li)
		origin.Y += ln.Baseline
		for si := range ln.Segments {
			sg := &ln.Segments[si]
			if shaped.IsNewlineSegment(display, sg) || sg.CharRange.IsEmpty() {
				continue
			}
			run := runs.Runs[sg.Run]
			gr := run.CharRangeToGlyphRange(sg.CharRange)
			if gr.IsEmpty() {
				continue
			}
			offsetX := origin.X + sg.XRange.Start - run.Positions[gr.Start]
			y := origin.Y + run.BaselineOffset
			positions := make([]math32.Vector2, gr.Len())
			for j := range positions {
				positions[j] = math32.Vec2(offsetX+run.Positions[gr.Start+j], y)
			}
			for bi := colors.GetBreak(sg.CharRange.Start); bi < colors.Len() && colors.Range(bi).Start < sg.CharRange.End; bi++ {
				inter := colors.Range(bi).Intersect(sg.CharRange)
				if inter.IsEmpty() {
					continue
				}
				cg := run.CharRangeToGlyphRange(inter)
				if cg.IsEmpty() {
					continue
				}
				clr := colors.Value(bi)
				p.DrawGlyphs(run.Font, run.Glyphs[cg.Start:cg.End], positions[cg.Start-gr.Start:cg.End-gr.Start], clr)

				startX := math32.Round(positions[cg.Start-gr.Start].X)
				endX := origin.X + sg.XRange.Start + sg.Width
				if cg.End < gr.End {
					endX = positions[cg.End-gr.Start].X
				}
				endX = math32.Round(endX)
				rt.drawDecorations(p, run, startX, origin.Y, endX-startX, clr)
			}
		}
	}
}

// drawDecorations draws the lines of a run from x at the baseline y.
func (rt *RenderText) drawDecorations(p Painter, run *shaped.Run, x, y, width float32, clr color.RGBA) {
	size := run.Font.Size
	if run.HeavyUnderline || run.Underline {
		d, factor := DecorationUnderline, float32(1)
		if run.HeavyUnderline {
			d, factor = DecorationHeavyUnderline, 2
		}
		top := y + size*underlineOffset
		p.DrawDecoration(d, math32.B2(x, top, x+width, top+size*lineThicknessFactor*factor), clr)
	}
	if run.Strike {
		h := size * rt.settings.StrikeThicknessFactor
		top := y - size*strikeOffset - h/2
		p.DrawDecoration(DecorationStrike, math32.B2(x, top, x+width, top+h), clr)
	}
}

// expectedTextWidth returns the width of n average characters
// of the primary font.
func (rt *RenderText) expectedTextWidth(n int) float32 {
	in := &shaped.Input{Text: []rune{'x'}, Range: textpos.R(0, 1), Font: rt.primaryFont()}
	out := rt.shaper.Shape(in)
	return math32.Round(float32(n) * out.Width())
}

// fadeParams returns the fade of single line text that overflows
// with [elide.FadeTail], or nil.
func (rt *RenderText) fadeParams() *FadeParams {
	s := rt.settings
	rect := s.DisplayRect
	width := rect.Size().X
	if s.Multiline || s.Elide != elide.FadeTail || rt.ContentWidth() <= width {
		return nil
	}
	gw := min(rt.expectedTextWidth(3), math32.Round(width/3))
	if gw <= 0 {
		return nil
	}
	align := rt.currentHorizontalAlignment()
	solid := rect
	var left, right math32.Box2
	if align != AlignLeft {
		left = math32.B2(solid.Min.X, solid.Min.Y, solid.Min.X+gw, solid.Max.Y)
		solid.Min.X += gw
	}
	if align != AlignRight {
		right = math32.B2(solid.Max.X-gw, solid.Min.Y, solid.Max.X, solid.Max.Y)
		solid.Max.X -= gw
	}
	textRect := rect
	textRect.Min.X += rt.AlignmentOffset(0).X
	clr := rt.attrs.Colors.Value(0)
	clr.A = 0xff

	fraction := textRect.Size().X / rt.expectedTextWidth(4)
	fade := clr
	fade.A = 0
	if fraction < 1 {
		fade.A = uint8(math32.Round((1 - fraction) * fadeAlphaAtZeroWidth))
	}
	fp := &FadeParams{TextRect: textRect, Left: left, Right: right}
	if left.Size().X > 0 {
		fp.addStop(left, fade, clr)
	}
	if right.Size().X > 0 {
		fp.addStop(right, clr, fade)
	}
	if n := len(fp.Positions); n > 0 && fp.Positions[n-1] != 1 {
		fp.Positions = append(fp.Positions, 1)
		fp.Colors = append(fp.Colors, fp.Colors[n-1])
	}
	return fp
}

// addStop adds the gradient stops of a faded part going from c0 to c1.
func (fp *FadeParams) addStop(part math32.Box2, c0, c1 color.RGBA) {
	w := fp.TextRect.Size().X
	left := part.Min.X - fp.TextRect.Min.X
	p0 := left / w
	p1 := (left + part.Size().X) / w
	if len(fp.Positions) == 0 && p0 != 0 {
		fp.Positions = append(fp.Positions, 0)
		fp.Colors = append(fp.Colors, c0)
	}
	fp.Positions = append(fp.Positions, p0, p1)
	fp.Colors = append(fp.Colors, c0, c1)
}

// Recorder is a [Painter] that records what is drawn.
type Recorder struct {
	Effects     []*TextEffects
	Rects       []RecordedRect
	Glyphs      []RecordedGlyphs
	Decorations []RecordedDecoration
}

// RecordedRect is a call to [Painter.FillRect].
type RecordedRect struct {
	Rect  math32.Box2
	Color color.RGBA
}

// RecordedGlyphs is a call to [Painter.DrawGlyphs].
type RecordedGlyphs struct {
	Font      shaped.Font
	Glyphs    []uint32
	Positions []math32.Vector2
	Color     color.RGBA
}

// RecordedDecoration is a call to [Painter.DrawDecoration].
type RecordedDecoration struct {
	Decoration Decorations
	Rect       math32.Box2
	Color      color.RGBA
}

func (r *Recorder) SetTextEffects(e *TextEffects) {
	r.Effects = append(r.Effects, e)
}

func (r *Recorder) FillRect(rect math32.Box2, clr color.RGBA) {
	r.Rects = append(r.Rects, RecordedRect{rect, clr})
}

func (r *Recorder) DrawGlyphs(font shaped.Font, glyphs []uint32, positions []math32.Vector2, clr color.RGBA) {
	r.Glyphs = append(r.Glyphs, RecordedGlyphs{font, slices.Clone(glyphs), slices.Clone(positions), clr})
}

func (r *Recorder) DrawDecoration(d Decorations, rect math32.Box2, clr color.RGBA) {
	r.Decorations = append(r.Decorations, RecordedDecoration{d, rect, clr})
}

// Runes returns the glyphs drawn in each color, in draw order,
// for shapers whose glyph ids are runes.
func (r *Recorder) Runes() map[color.RGBA]string {
	m := map[color.RGBA]string{}
	for _, g := range r.Glyphs {
		for _, id := range g.Glyphs {
			m[g.Color] += string(rune(id))
		}
	}
	return m
}
