// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Words is the Unicode (UAX #29) word segmentation of a text, with rune
// indexes. Segments partition the whole text; a segment is a word if it
// contains a letter or a number, so spaces and punctuation runs are not.
type Words struct {
	// Segments are the consecutive segments covering the text.
	Segments []Range

	// IsWord records for each segment whether it is a word.
	IsWord []bool

	// Len is the length of the segmented text.
	Len int
}

// NewWords returns the word segmentation of txt.
func NewWords(txt []rune) *Words {
	w := &Words{Len: len(txt)}
	str := string(txt)
	state := -1
	pos := 0
	var word string
	for len(str) > 0 {
		word, str, state = uniseg.FirstWordInString(str, state)
		n := utf8.RuneCountInString(word)
		w.Segments = append(w.Segments, Range{pos, pos + n})
		w.IsWord = append(w.IsWord, isWordSegment(word))
		pos += n
	}
	return w
}

func isWordSegment(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// segmentAt returns the index of the segment starting at pos,
// or -1 if pos is not a segment start.
func (w *Words) segmentAt(pos int) int {
	lo, hi := 0, len(w.Segments)
	for lo < hi {
		m := (lo + hi) / 2
		switch {
		case w.Segments[m].Start == pos:
			return m
		case w.Segments[m].Start < pos:
			lo = m + 1
		default:
			hi = m
		}
	}
	return -1
}

// IsBoundary returns true if pos is 0, the text length,
// or the start of a segment.
func (w *Words) IsBoundary(pos int) bool {
	if pos == 0 || pos == w.Len {
		return true
	}
	return w.segmentAt(pos) >= 0
}

// IsStartOfWord returns true if pos starts a word segment.
func (w *Words) IsStartOfWord(pos int) bool {
	si := w.segmentAt(pos)
	return si >= 0 && w.IsWord[si]
}

// IsEndOfWord returns true if pos ends a word segment.
func (w *Words) IsEndOfWord(pos int) bool {
	if pos == 0 {
		return false
	}
	if pos == w.Len {
		n := len(w.Segments)
		return n > 0 && w.IsWord[n-1]
	}
	si := w.segmentAt(pos)
	return si > 0 && w.IsWord[si-1]
}

// WordAt returns the range of the segment containing pos,
// and whether that segment is a word.
func (w *Words) WordAt(pos int) (Range, bool) {
	for i, sg := range w.Segments {
		if sg.Contains(pos) {
			return sg, w.IsWord[i]
		}
	}
	return RangeAt(pos), false
}
