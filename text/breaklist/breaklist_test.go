// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaklist

import (
	"math/rand"
	"testing"

	"cogentcore.org/textlayout/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bp = Breakpoint[bool]

func TestSetValue(t *testing.T) {
	bl := NewMax(false, 10)
	bl.ApplyValue(true, textpos.R(2, 5))
	bl.SetValue(true)
	assert.True(t, bl.EqualValues([]bp{{0, true}}))
}

func TestApplyValueTwice(t *testing.T) {
	bl := NewMax(false, 99)
	want := []bp{{0, false}, {2, true}, {3, false}}
	bl.ApplyValue(true, textpos.R(2, 3))
	assert.True(t, bl.EqualValues(want), bl.String())
	bl.ApplyValue(true, textpos.R(2, 3))
	assert.True(t, bl.EqualValues(want), bl.String())
}

func TestApplyValue(t *testing.T) {
	bl := NewMax(0, 10)
	bl.ApplyValue(1, textpos.R(0, 3))
	assert.True(t, bl.EqualValues([]Breakpoint[int]{{0, 1}, {3, 0}}))
	bl.ApplyValue(2, textpos.R(5, 10))
	assert.True(t, bl.EqualValues([]Breakpoint[int]{{0, 1}, {3, 0}, {5, 2}}))
	bl.ApplyValue(1, textpos.R(2, 6))
	assert.True(t, bl.EqualValues([]Breakpoint[int]{{0, 1}, {6, 2}}), bl.String())
	bl.ApplyValue(0, textpos.R(0, 10))
	assert.True(t, bl.EqualValues([]Breakpoint[int]{{0, 0}}))

	// ignored
	bl.ApplyValue(3, textpos.R(4, 4))
	bl.ApplyValue(3, textpos.R(5, 4))
	bl.ApplyValue(3, textpos.R(10, 12))
	assert.True(t, bl.EqualValues([]Breakpoint[int]{{0, 0}}))
}

func TestSetMax(t *testing.T) {
	bl := NewMax(false, 10)
	bl.ApplyValue(true, textpos.R(2, 4))
	bl.ApplyValue(true, textpos.R(6, 8))
	bl.SetMax(7)
	assert.True(t, bl.EqualValues([]bp{{0, false}, {2, true}, {4, false}, {6, true}}))
	bl.SetMax(6)
	assert.True(t, bl.EqualValues([]bp{{0, false}, {2, true}, {4, false}}))
	bl.SetMax(20)
	assert.True(t, bl.EqualValues([]bp{{0, false}, {2, true}, {4, false}}))
	assert.Equal(t, textpos.R(4, 20), bl.Range(2))
	bl.SetMax(0)
	assert.True(t, bl.EqualValues([]bp{{0, false}}))
	assert.True(t, bl.IsValid())
}

func TestGetBreak(t *testing.T) {
	bl := NewMax(0, 10)
	bl.ApplyValue(1, textpos.R(3, 6))
	assert.Equal(t, 0, bl.GetBreak(0))
	assert.Equal(t, 0, bl.GetBreak(2))
	assert.Equal(t, 1, bl.GetBreak(3))
	assert.Equal(t, 1, bl.GetBreak(5))
	assert.Equal(t, 2, bl.GetBreak(6))
	assert.Equal(t, 2, bl.GetBreak(10))
	assert.Equal(t, 2, bl.GetBreak(50))
	assert.Equal(t, 1, bl.ValueAt(4))
	assert.Equal(t, textpos.R(3, 6), bl.Range(1))
	assert.Equal(t, textpos.R(6, 10), bl.Range(2))
}

func TestClone(t *testing.T) {
	bl := NewMax(0, 10)
	bl.ApplyValue(1, textpos.R(3, 6))
	cl := bl.Clone()
	assert.True(t, bl.Equal(cl))
	cl.ApplyValue(2, textpos.R(0, 1))
	assert.False(t, bl.Equal(cl))
}

// TestRandomInvariants applies random values to random ranges and checks
// that the invariants hold, the ranges partition [0, max), and the values
// match a dense reference.
func TestRandomInvariants(t *testing.T) {
	const max = 40
	rnd := rand.New(rand.NewSource(7))
	for trial := range 50 {
		bl := NewMax(0, max)
		dense := make([]int, max)
		for range 30 {
			s := rnd.Intn(max)
			e := s + 1 + rnd.Intn(max-s)
			v := rnd.Intn(4)
			bl.ApplyValue(v, textpos.R(s, e))
			for i := s; i < e; i++ {
				dense[i] = v
			}
			before := bl.Clone()
			bl.ApplyValue(v, textpos.R(s, e))
			require.True(t, before.Equal(bl), "idempotence trial %d", trial)
			require.True(t, bl.IsValid(), "trial %d: %s", trial, bl.String())

			pos := 0
			for i := range bl.Len() {
				r := bl.Range(i)
				require.Equal(t, pos, r.Start)
				require.Greater(t, r.End, r.Start)
				for j := r.Start; j < r.End; j++ {
					require.Equal(t, dense[j], bl.Value(i))
				}
				pos = r.End
			}
			require.Equal(t, max, pos)
		}
	}
}
