// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elide

import (
	"strings"
	"testing"

	"cogentcore.org/textlayout/text/bidi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// measure gives every rune but directional marks a width of 10.
func measure(text []rune) float32 {
	w := float32(0)
	for _, r := range text {
		if r != lrm && r != rlm {
			w += 10
		}
	}
	return w
}

func newElider() *Elider {
	return &Elider{Measure: measure}
}

func TestSlicer(t *testing.T) {
	ell := []rune{Ellipsis}
	text := []rune("Hello, world!")
	tail := NewSlicer(text, ell, false, false, nil)
	assert.True(t, tail.ElideWhitespace)
	assert.Equal(t, "Hello,…", string(tail.Cut(6, true)))
	assert.Equal(t, "Hello,…", string(tail.Cut(7, true)))
	assert.Equal(t, "Hello", string(tail.Cut(5, false)))
	assert.Equal(t, "…", string(tail.Cut(0, true)))

	head := NewSlicer(text, ell, false, true, nil)
	assert.Equal(t, "…world!", string(head.Cut(6, true)))
	assert.Equal(t, "…world!", string(head.Cut(7, true)))

	text = []rune("abcdefgh")
	mid := NewSlicer(text, ell, true, false, nil)
	assert.False(t, mid.ElideWhitespace)
	assert.Equal(t, "ab…gh", string(mid.Cut(4, true)))
	assert.Equal(t, "abc…gh", string(mid.Cut(5, true)))
	assert.Equal(t, "abcdefgh", string(mid.Cut(8, false)))

	text = []rune("ab cd ef")
	mid = NewSlicer(text, ell, true, false, nil)
	assert.Equal(t, "ab … ef", string(mid.Cut(6, true)))
	trim := true
	mid = NewSlicer(text, ell, true, false, &trim)
	assert.Equal(t, "ab…ef", string(mid.Cut(6, true)))
}

func TestSlicerGraphemes(t *testing.T) {
	// three graphemes of two runes each
	text := []rune("e\u0301e\u0301e\u0301")
	s := NewSlicer(text, []rune{Ellipsis}, false, false, nil)
	assert.Equal(t, "e\u0301", string(s.Cut(3, false)))
	s = NewSlicer(text, []rune{Ellipsis}, false, true, nil)
	assert.Equal(t, "e\u0301", string(s.Cut(3, false)))
}

func TestElideTail(t *testing.T) {
	e := newElider()
	text := []rune("Hello, world!")
	got := e.Elide(text, 0, measure([]rune("Hello…")), ElideTail)
	assert.Equal(t, "Hello…", string(got))

	// a width between two cuts gives the shorter one
	got = e.Elide(text, 0, 65, ElideTail)
	assert.Equal(t, "Hello…", string(got))

	assert.Equal(t, text, e.Elide(text, 0, 200, ElideTail))
	assert.Equal(t, text, e.Elide(text, 130, 130, ElideTail))
	assert.Empty(t, e.Elide(text, 0, 0, ElideTail))
	assert.Empty(t, e.Elide(text, 0, 5, ElideTail))
	assert.Equal(t, text, e.Elide(text, 0, 20, NoElide))
	assert.Equal(t, text, e.Elide(text, 0, 20, FadeTail))
}

func TestElideOthers(t *testing.T) {
	e := newElider()
	text := []rune("Hello, world!")
	assert.Equal(t, "Hello", string(e.Elide(text, 0, 55, Truncate)))
	assert.Equal(t, "…world!", string(e.Elide(text, 0, 70, ElideHead)))

	got := e.Elide([]rune("abcdefghijkl"), 0, 70, ElideMiddle)
	s := string(got)
	assert.LessOrEqual(t, measure(got), float32(70))
	assert.Equal(t, 1, strings.Count(s, "…"))
	assert.True(t, strings.HasPrefix(s, "abc"))
	assert.True(t, strings.HasSuffix(s, "kl"))
}

func TestElideDirectionMark(t *testing.T) {
	e := newElider()
	e.Direction = bidi.RTL
	got := e.Elide([]rune("abc def ghi"), 0, 60, ElideTail)
	assert.Equal(t, "abc d…\u200e", string(got))

	e.Direction = bidi.LTR
	got = e.Elide([]rune("abc def ghi"), 0, 60, ElideTail)
	assert.Equal(t, "abc d…", string(got))
}

func TestElideMonotonic(t *testing.T) {
	text := []rune("The quick brown fox jumps over the lazy dog")
	for _, b := range []Behaviors{Truncate, ElideHead, ElideMiddle, ElideTail} {
		e := newElider()
		prev := -1
		for w := float32(0); w <= measure(text)+10; w += 5 {
			got := e.Elide(text, 0, w, b)
			require.GreaterOrEqual(t, len(got), prev, "%v at %g", b, w)
			prev = len(got)
			if len(got) > 0 {
				assert.LessOrEqual(t, measure(got), w, "%v at %g", b, w)
			}
		}
	}
}

func TestElideEmail(t *testing.T) {
	e := newElider()
	email := []rune("verylongusername@example.com")
	for _, w := range []float32{40, 60, 100, 150, 200, 270} {
		got := string(e.ElideEmail(email, w))
		assert.LessOrEqual(t, measure([]rune(got)), w, "width %g", w)
		if got == "…" {
			continue
		}
		require.Equal(t, 1, strings.Count(got, "@"), got)
		user, domain, _ := strings.Cut(got, "@")
		assert.NotEmpty(t, strings.TrimSuffix(user, "…"), got)
		assert.NotEmpty(t, strings.ReplaceAll(domain, "…", ""), got)
	}
	// only the username is elided when that is enough
	assert.Equal(t, "verylong…@example.com", string(e.ElideEmail(email, 210)))
	assert.Equal(t, "…", string(e.ElideEmail(email, 20)))
	assert.Equal(t, email, e.ElideEmail(email, 280))
	assert.Equal(t, email, e.Elide(email, 0, 280, ElideEmail))
}

func TestBehaviorsString(t *testing.T) {
	assert.Equal(t, "ElideMiddle", ElideMiddle.String())
	assert.Equal(t, "Behaviors(20)", Behaviors(20).String())
}
