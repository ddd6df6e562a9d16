// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphemes provides grapheme cluster boundaries, the mapping
// between logical text and layout text indexes, and the rewriting of
// text into layout text.
package graphemes

import (
	"slices"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// Bounds are the grapheme cluster boundaries of a text: the start of
// every cluster, followed by the text length. Empty text has the
// single boundary 0.
type Bounds []int

// Boundaries returns the grapheme cluster boundaries of text.
func Boundaries(text []rune) Bounds {
	b := make(Bounds, 0, len(text)+1)
	if len(text) > 0 {
		var seg segmenter.Segmenter
		seg.Init(text)
		iter := seg.GraphemeIterator()
		for iter.Next() {
			b = append(b, iter.Grapheme().Offset)
		}
	}
	return append(b, len(text))
}

// Len returns the length of the text.
func (b Bounds) Len() int {
	return b[len(b)-1]
}

// IsBoundary returns true if i is a cluster boundary.
func (b Bounds) IsBoundary(i int) bool {
	_, ok := slices.BinarySearch(b, i)
	return ok
}

// Before returns the greatest boundary <= i, clamped to 0.
func (b Bounds) Before(i int) int {
	k, ok := slices.BinarySearch(b, i)
	if ok {
		return b[k]
	}
	if k == 0 {
		return 0
	}
	return b[k-1]
}

// After returns the smallest boundary >= i, clamped to the length.
func (b Bounds) After(i int) int {
	k, _ := slices.BinarySearch(b, i)
	if k == len(b) {
		return b.Len()
	}
	return b[k]
}

// Next returns the smallest boundary > i, clamped to the length.
func (b Bounds) Next(i int) int {
	return b.After(i + 1)
}

// Prev returns the greatest boundary < i, clamped to 0.
func (b Bounds) Prev(i int) int {
	return b.Before(i - 1)
}

// IsWhitespace returns true if all the runes of the cluster
// are white space.
func IsWhitespace(cluster []rune) bool {
	if len(cluster) == 0 {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ValidBefore returns the boundary at or before index. If trim is set,
// it then moves back over whole clusters of white space.
func (b Bounds) ValidBefore(text []rune, index int, trim bool) int {
	i := b.Before(index)
	if trim {
		for i > 0 {
			p := b.Prev(i)
			if !IsWhitespace(text[p:i]) {
				break
			}
			i = p
		}
	}
	return i
}

// ValidAfter returns the boundary at or after index. If trim is set,
// it then moves forward over whole clusters of white space.
func (b Bounds) ValidAfter(text []rune, index int, trim bool) int {
	i := b.After(index)
	if trim {
		for i < b.Len() {
			n := b.Next(i)
			if !IsWhitespace(text[i:n]) {
				break
			}
			i = n
		}
	}
	return i
}

// FindValidBoundaryBefore returns the grapheme boundary at or before
// index in text, optionally skipping back over white space.
func FindValidBoundaryBefore(text []rune, index int, trim bool) int {
	return Boundaries(text).ValidBefore(text, index, trim)
}

// FindValidBoundaryAfter returns the grapheme boundary at or after
// index in text, optionally skipping forward over white space.
func FindValidBoundaryAfter(text []rune, index int, trim bool) int {
	return Boundaries(text).ValidAfter(text, index, trim)
}
