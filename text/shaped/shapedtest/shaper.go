// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedtest provides a deterministic [shaped.Shaper]
// for testing, with fixed advances and configurable font coverage.
package shapedtest

import (
	"slices"

	"cogentcore.org/textlayout/text/graphemes"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
)

// Shaper shapes one glyph per rune, where the glyph id is the rune.
// All the runes of a grapheme belong to the cluster of its first
// rune, and only the first rune of a grapheme advances.
type Shaper struct {

	// Advance is the advance of a rune without an entry in Advances.
	Advance float32

	// Advances are per-rune advances.
	Advances map[rune]float32

	// FontMetrics are the metrics of every font.
	FontMetrics shaped.Metrics

	// Covers reports whether a family has a glyph for a rune.
	// Families without an entry cover every rune.
	Covers map[string]func(r rune) bool

	// FallbackFonts are returned by Fallbacks.
	FallbackFonts []shaped.Font

	// Calls counts the calls to Shape.
	Calls int
}

// New returns a shaper with an advance of 10 and metrics
// of 12 ascent and 4 descent.
func New() *Shaper {
	return &Shaper{Advance: 10, FontMetrics: shaped.Metrics{Ascent: 12, Descent: 4}}
}

// Width returns the total advance of the text.
func (sh *Shaper) Width(text string) float32 {
	rs := []rune(text)
	b := graphemes.Boundaries(rs)
	w := float32(0)
	for i := 0; i+1 < len(b); i++ {
		w += sh.advance(rs[b[i]])
	}
	return w
}

func (sh *Shaper) advance(r rune) float32 {
	if a, ok := sh.Advances[r]; ok {
		return a
	}
	return sh.Advance
}

func (sh *Shaper) Shape(in *shaped.Input) shaped.Output {
	sh.Calls++
	runs := in.Text[in.Range.Start:in.Range.End]
	b := graphemes.Boundaries(runs)
	covers := sh.Covers[in.Font.Family]
	out := shaped.Output{Metrics: sh.FontMetrics}
	for gi := 0; gi+1 < len(b); gi++ {
		for i := b[gi]; i < b[gi+1]; i++ {
			r := runs[i]
			gid := uint32(r)
			if covers != nil && !covers(r) {
				gid = 0
				out.MissingGlyphs++
			}
			adv := float32(0)
			if i == b[gi] {
				adv = sh.advance(r)
			}
			out.Glyphs = append(out.Glyphs, gid)
			out.Advances = append(out.Advances, adv)
			out.GlyphToChar = append(out.GlyphToChar, in.Range.Start+b[gi])
		}
	}
	if in.IsRTL() {
		slices.Reverse(out.Glyphs)
		slices.Reverse(out.Advances)
		slices.Reverse(out.GlyphToChar)
	}
	return out
}

func (sh *Shaper) Fallbacks(text []rune, r textpos.Range, f shaped.Font) []shaped.Font {
	return sh.FallbackFonts
}

func (sh *Shaper) Metrics(f shaped.Font) shaped.Metrics {
	return sh.FontMetrics
}
