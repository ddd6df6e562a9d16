// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textstyle

import (
	"image/color"
	"testing"

	"cogentcore.org/textlayout/text/breaklist"
	"cogentcore.org/textlayout/text/textpos"
	"github.com/stretchr/testify/assert"
)

type breakpointRGBA = breaklist.Breakpoint[color.RGBA]

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestIterator(t *testing.T) {
	at := NewAttributes(black, 10)
	at.Colors.ApplyValue(red, textpos.R(2, 4))
	at.Weights.ApplyValue(Bold, textpos.R(3, 7))
	at.Styles[Underline].ApplyValue(true, textpos.R(6, 10))

	it := NewIterator(at)
	assert.Equal(t, textpos.R(0, 2), it.Range())
	assert.Equal(t, textpos.R(0, 3), it.TextBreakingRange())
	assert.Equal(t, black, it.Color())

	it.AdvanceTo(2)
	assert.Equal(t, textpos.R(2, 3), it.Range())
	assert.Equal(t, red, it.Color())
	assert.Equal(t, Normal, it.Weight())

	it.AdvanceTo(3)
	assert.Equal(t, textpos.R(3, 4), it.Range())
	assert.Equal(t, textpos.R(3, 6), it.TextBreakingRange())
	assert.Equal(t, Bold, it.Weight())

	it.AdvanceTo(6)
	assert.Equal(t, textpos.R(6, 7), it.Range())
	assert.True(t, it.Style(Underline))
	assert.False(t, it.Style(Italic))

	// never moves backward
	it.AdvanceTo(0)
	assert.Equal(t, textpos.R(6, 7), it.Range())

	it.AdvanceTo(7)
	assert.Equal(t, textpos.R(7, 10), it.Range())
	assert.Equal(t, NormalBaseline, it.Baseline())
	assert.Equal(t, float32(0), it.FontSize())
}

func TestCollapseClone(t *testing.T) {
	at := NewAttributes(black, 10)
	at.Colors.ApplyValue(red, textpos.R(0, 4))
	at.Styles[Italic].ApplyValue(true, textpos.R(3, 4))
	cl := at.Clone()
	assert.True(t, cl.Equal(at))

	at.Collapse()
	assert.Equal(t, 1, at.Colors.Len())
	assert.Equal(t, red, at.Colors.Value(0))
	assert.Equal(t, 1, at.Styles[Italic].Len())
	assert.False(t, cl.Equal(at))
	assert.Equal(t, 2, cl.Colors.Len())
}

func TestWidenToBoundaries(t *testing.T) {
	// boundaries at 0, 2, 5, 6
	bounds := map[int]bool{0: true, 2: true, 5: true, 6: true}
	isb := func(i int) bool { return bounds[i] }
	next := func(i int) int {
		for i++; !bounds[i]; i++ {
		}
		return i
	}
	at := NewAttributes(black, 6)
	at.Colors.ApplyValue(red, textpos.R(1, 3))
	at.WidenToBoundaries(6, isb, next)
	assert.True(t, at.Colors.EqualValues([]breakpointRGBA{{Pos: 0, Value: black}, {Pos: 2, Value: red}, {Pos: 5, Value: black}}), at.Colors.String())
	assert.Equal(t, 6, at.Max())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "HeavyUnderline", HeavyUnderline.String())
	assert.Equal(t, "Superscript", Superscript.String())
	assert.Equal(t, "Bold", Bold.String())
	assert.Equal(t, "450", Weights(450).String())
	assert.Equal(t, float32(1), NormalBaseline.SizeFactor())
	assert.Less(t, Superscript.Offset(12, 10, 3), float32(0))
	assert.Greater(t, Subscript.Offset(12, 10, 3), float32(0))
}
