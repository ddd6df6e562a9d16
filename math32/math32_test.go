// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, fixed.I(3), ToFixed(3))
	assert.Equal(t, float32(3.5), FromFixed(fixed.I(3)+32))
	assert.Equal(t, float32(-2.25), FromFixed(-(fixed.I(2) + 16)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, float32(0), Clamp[float32](-1, 0, 3))
	assert.True(t, NearlyEqual(1, 1.0005, 0.001))
	assert.False(t, NearlyEqual(1, 1.01, 0.001))
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 5)
	assert.Equal(t, Vec2(10, 5), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(0, 0)))
	assert.False(t, b.ContainsPoint(Vec2(10, 1)))
	assert.Equal(t, B2(2, 1, 12, 6), b.Translate(Vec2(2, 1)))
	assert.Equal(t, B2(5, 0, 10, 5), b.Intersect(B2(5, -1, 20, 20)))
	assert.Equal(t, B2(0, -1, 20, 20), b.Union(B2(5, -1, 20, 20)))

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e.ExpandByPoint(Vec2(1, 2))
	e.ExpandByPoint(Vec2(3, 1))
	assert.Equal(t, B2(1, 1, 3, 2), e)
}
