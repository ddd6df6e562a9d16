// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"testing"

	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SystemFonts = false
}

var goFont = shaped.Font{Family: "Go", Size: 16, Weight: textstyle.Normal}

func TestShape(t *testing.T) {
	sh := NewShaper()
	text := []rune("Hello")
	out := sh.Shape(&shaped.Input{Text: text, Range: textpos.R(0, 5), Font: goFont, Script: language.Latin})
	require.Len(t, out.Glyphs, 5)
	assert.Equal(t, 0, out.MissingGlyphs)
	assert.Greater(t, out.Width(), float32(0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out.GlyphToChar)
	assert.Greater(t, out.Metrics.Ascent, float32(0))
	assert.Greater(t, out.Metrics.Descent, float32(0))

	// a sub-range keeps indexes into the whole text
	out = sh.Shape(&shaped.Input{Text: text, Range: textpos.R(2, 4), Font: goFont, Script: language.Latin})
	assert.Equal(t, []int{2, 3}, out.GlyphToChar)

	// right-to-left glyphs are in visual order
	out = sh.Shape(&shaped.Input{Text: text, Range: textpos.R(0, 3), Font: goFont, Script: language.Latin, Level: 1})
	assert.Equal(t, []int{2, 1, 0}, out.GlyphToChar)
}

func TestShapeMissing(t *testing.T) {
	sh := NewShaper()
	text := []rune("a日")
	out := sh.Shape(&shaped.Input{Text: text, Range: textpos.R(0, 2), Font: goFont, Script: language.Han})
	assert.Equal(t, 1, out.MissingGlyphs)
}

func TestShapeSize(t *testing.T) {
	sh := NewShaper()
	text := []rune("mmmm")
	in := &shaped.Input{Text: text, Range: textpos.R(0, 4), Font: goFont, Script: language.Latin}
	small := sh.Shape(in)
	in.Font.Size = 32
	large := sh.Shape(in)
	assert.InDelta(t, 2*small.Width(), large.Width(), 1)
}

func TestMetrics(t *testing.T) {
	sh := NewShaper()
	m := sh.Metrics(goFont)
	assert.Greater(t, m.Ascent, float32(0))
	assert.Greater(t, m.Descent, float32(0))
	assert.Less(t, m.Height(), float32(2*goFont.Size))
}

func TestFontList(t *testing.T) {
	fl := FontList()
	var families []string
	for _, fi := range fl {
		families = append(families, fi.Family)
	}
	assert.Contains(t, families, "Go")
	assert.Contains(t, families, "Go Mono")
}
