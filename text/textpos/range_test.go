// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := R(5, 2)
	assert.True(t, r.IsReversed())
	assert.Equal(t, -3, r.Len())
	assert.Equal(t, 3, r.Abs())
	assert.Equal(t, R(2, 5), r.Canon())
	assert.Equal(t, R(2, 5), r.Reversed())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[5,2)", r.String())

	assert.Equal(t, R(3, 5), R(0, 5).Intersect(R(3, 9)))
	assert.True(t, R(0, 5).Intersects(R(4, 9)))
	assert.False(t, R(0, 5).Intersects(R(5, 9)))
	assert.False(t, R(0, 5).Intersects(RangeAt(2)))
	assert.True(t, R(0, 5).ContainsRange(R(1, 4)))
	assert.Equal(t, R(0, 4), R(-2, 9).Clamp(4))
	assert.False(t, R(-1, 2).IsValid())
}

func TestRangeF(t *testing.T) {
	r := RangeF{10, 4}
	assert.Equal(t, float32(4), r.Min())
	assert.Equal(t, float32(10), r.Max())
	assert.True(t, r.Contains(4))
	assert.Equal(t, RangeF{0, 10}, RangeF{}.Union(RangeF{0, 10}))
	assert.Equal(t, RangeF{0, 20}, RangeF{0, 10}.Union(RangeF{15, 20}))
	assert.Equal(t, RangeF{3, 5}, RangeF{1, 3}.Offset(2))
}
