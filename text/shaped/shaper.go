// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/textlayout/text/textpos"
	"github.com/go-text/typesetting/language"
)

// Input is one run of text to shape with one font.
type Input struct {

	// Text is the entire display text. Only Range is shaped; the rest
	// is context for the shaper.
	Text []rune

	// Range is the range of Text to shape.
	Range textpos.Range

	// Font is the font to shape with.
	Font Font

	// Script is the writing system of the run.
	Script language.Script

	// Level is the bidi embedding level: odd levels are right-to-left.
	Level int
}

// IsRTL returns true for right-to-left input.
func (in *Input) IsRTL() bool {
	return in.Level%2 == 1
}

// Output is the result of shaping an [Input].
// Glyphs are in visual order, left to right.
type Output struct {

	// Glyphs are the glyph ids, where 0 is a missing glyph.
	Glyphs []uint32

	// Advances are the horizontal advances of each glyph.
	Advances []float32

	// GlyphToChar is the index in the Input Text of the first
	// rune of the cluster that each glyph belongs to.
	GlyphToChar []int

	// MissingGlyphs is the number of glyphs the font could not provide.
	MissingGlyphs int

	// Metrics are the vertical metrics of the font used.
	Metrics Metrics
}

// Width returns the sum of the advances.
func (o *Output) Width() float32 {
	w := float32(0)
	for _, a := range o.Advances {
		w += a
	}
	return w
}

// Shaper turns runs of text in one font into positioned glyphs.
// Implementations must not retain the Input Text.
type Shaper interface {

	// Shape shapes the given input. It must report missing glyphs
	// accurately, as font fallback depends on it.
	Shape(in *Input) Output

	// Fallbacks returns the fonts to try, in priority order, when the
	// given range of text has missing glyphs in the font f.
	Fallbacks(text []rune, r textpos.Range, f Font) []Font

	// Metrics returns the vertical metrics of the font.
	Metrics(f Font) Metrics
}
