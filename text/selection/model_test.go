// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"cogentcore.org/textlayout/text/textpos"
	"github.com/stretchr/testify/assert"
)

func TestModel(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.CaretPos())
	assert.Equal(t, Backward, m.Affinity())
	assert.Equal(t, "{0,BACKWARD}", m.String())

	m = NewRange(textpos.R(3, 2), Backward)
	assert.Equal(t, 2, m.CaretPos())
	assert.True(t, m.Selection().IsReversed())
	m.SetSelectionStart(5)
	assert.Equal(t, textpos.R(5, 2), m.Selection())
	assert.Equal(t, "{[5,2),BACKWARD}", m.String())

	c := NewCaret(4, Forward)
	assert.Equal(t, textpos.R(4, 4), c.Selection())
	assert.False(t, c.Equal(&m))
	d := NewCaret(4, Forward)
	assert.True(t, c.Equal(&d))
	d = NewCaret(4, Backward)
	assert.False(t, c.Equal(&d))
}

func TestSecondarySelections(t *testing.T) {
	m := NewRange(textpos.R(2, 5), Forward)
	assert.True(t, m.AddSecondarySelection(textpos.R(6, 8)))
	assert.False(t, m.AddSecondarySelection(textpos.R(4, 6)))
	assert.False(t, m.AddSecondarySelection(textpos.R(7, 9)))
	assert.False(t, m.AddSecondarySelection(textpos.R(10, 5)))
	assert.True(t, m.AddSecondarySelection(textpos.R(5, 6)))
	assert.Equal(t, []textpos.Range{textpos.R(2, 5), textpos.R(6, 8), textpos.R(5, 6)}, m.All())
	assert.Equal(t, "{[2,5),FORWARD,[6,8),[5,6)}", m.String())

	// no two selections intersect after any sequence of additions
	m = NewCaret(0, Backward)
	for i := range 20 {
		m.AddSecondarySelection(textpos.R(i%7, i%7+i%3+1))
	}
	all := m.All()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Intersects(all[j]), "%v %v", all[i], all[j])
		}
	}

	multi := NewMulti([]textpos.Range{textpos.R(0, 2), textpos.R(3, 4), textpos.R(1, 3)}, Forward)
	assert.Equal(t, []textpos.Range{textpos.R(3, 4)}, multi.Secondary())
	empty := NewMulti(nil, Forward)
	assert.Equal(t, 0, empty.CaretPos())
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "FORWARD", Forward.String())
	assert.Equal(t, Backward, Forward.Opposite())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "WordBreak", WordBreak.String())
	assert.Equal(t, "SelectionRetain", SelectionRetain.String())
	assert.Equal(t, "BreakType(9)", BreakType(9).String())
}
