// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	w := NewWords([]rune("ab cd, ef"))
	assert.Equal(t, []Range{{0, 2}, {2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}}, w.Segments)
	assert.Equal(t, []bool{true, false, true, false, false, true}, w.IsWord)

	assert.True(t, w.IsStartOfWord(0))
	assert.False(t, w.IsStartOfWord(2))
	assert.True(t, w.IsStartOfWord(3))
	assert.True(t, w.IsStartOfWord(7))
	assert.False(t, w.IsStartOfWord(1))

	assert.True(t, w.IsEndOfWord(2))
	assert.True(t, w.IsEndOfWord(5))
	assert.False(t, w.IsEndOfWord(6))
	assert.True(t, w.IsEndOfWord(9))
	assert.False(t, w.IsEndOfWord(0))

	assert.True(t, w.IsBoundary(6))
	assert.False(t, w.IsBoundary(4))

	rg, isw := w.WordAt(4)
	assert.Equal(t, R(3, 5), rg)
	assert.True(t, isw)
	rg, isw = w.WordAt(5)
	assert.Equal(t, R(5, 6), rg)
	assert.False(t, isw)
}

func TestWordsEmpty(t *testing.T) {
	w := NewWords(nil)
	assert.Empty(t, w.Segments)
	assert.True(t, w.IsBoundary(0))
	assert.False(t, w.IsStartOfWord(0))
	assert.False(t, w.IsEndOfWord(0))
}
