// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphemes

import "sort"

// Mapping relates the start of a grapheme in the logical text to
// the start of its rewritten form in the layout text.
type Mapping struct {
	// Text is the grapheme start in the logical text.
	Text int

	// Display is the start of the rewritten grapheme in the layout text.
	Display int
}

// Index maps between logical text and layout text indexes, with one
// [Mapping] per grapheme. Both fields are strictly increasing.
// Iterators are indexes into Mappings, where len(Mappings) is the end.
type Index struct {
	Mappings []Mapping

	// TextLen is the length of the logical text.
	TextLen int

	// DisplayLen is the length of the layout text.
	DisplayLen int
}

// End returns the end iterator.
func (ix *Index) End() int {
	return len(ix.Mappings)
}

// TextIterator returns the iterator of the grapheme containing the
// logical index i. The text length returns the end iterator.
func (ix *Index) TextIterator(i int) int {
	if i >= ix.TextLen || len(ix.Mappings) == 0 {
		return ix.End()
	}
	it := sort.Search(len(ix.Mappings), func(k int) bool { return ix.Mappings[k].Text >= i })
	if (it == len(ix.Mappings) || ix.Mappings[it].Text != i) && it > 0 {
		it--
	}
	return it
}

// DisplayIterator returns the iterator of the grapheme containing the
// layout index i. The layout text length returns the end iterator.
func (ix *Index) DisplayIterator(i int) int {
	if i >= ix.DisplayLen || len(ix.Mappings) == 0 {
		return ix.End()
	}
	it := sort.Search(len(ix.Mappings), func(k int) bool { return ix.Mappings[k].Display >= i })
	if (it == len(ix.Mappings) || ix.Mappings[it].Display != i) && it > 0 {
		it--
	}
	return it
}

// TextIndex returns the logical index of an iterator.
func (ix *Index) TextIndex(it int) int {
	if it >= len(ix.Mappings) {
		return ix.TextLen
	}
	return ix.Mappings[it].Text
}

// DisplayIndex returns the layout index of an iterator.
func (ix *Index) DisplayIndex(it int) int {
	if it >= len(ix.Mappings) {
		return ix.DisplayLen
	}
	return ix.Mappings[it].Display
}

// TextToDisplay returns the layout index of the grapheme
// containing the logical index i.
func (ix *Index) TextToDisplay(i int) int {
	return ix.DisplayIndex(ix.TextIterator(i))
}

// DisplayToText returns the logical index of the grapheme
// containing the layout index i.
func (ix *Index) DisplayToText(i int) int {
	return ix.TextIndex(ix.DisplayIterator(i))
}

// IsBoundary returns true if the logical index i starts a grapheme
// or is at or beyond the end of the text.
func (ix *Index) IsBoundary(i int) bool {
	return i >= ix.TextLen || ix.TextIndex(ix.TextIterator(i)) == i
}

// Adjacent returns the logical index of the grapheme boundary next
// to i in the given direction, clamped to [0, TextLen]. It always
// moves unless i is already at that edge of the text. Indexes outside
// the text move to the nearest end. An index inside
// a grapheme moves backward to the start of that grapheme.
func (ix *Index) Adjacent(i int, forward bool) int {
	if ix.TextLen == 0 {
		return 0
	}
	if i > ix.TextLen {
		return ix.TextLen
	}
	if i < 0 {
		return 0
	}
	it := ix.TextIterator(i)
	if forward {
		if it != ix.End() {
			it++
		}
	} else if it > 0 && ix.TextIndex(it) == i {
		it--
	}
	return ix.TextIndex(it)
}

// TextEndToDisplay returns the layout index of the end of the
// grapheme holding the logical index i-1, so that a logical range
// [start, i) maps to the layout graphemes covering it.
func (ix *Index) TextEndToDisplay(i int) int {
	if i <= 0 {
		return 0
	}
	if i > ix.TextLen {
		return ix.DisplayLen
	}
	return ix.DisplayIndex(ix.TextIterator(i-1) + 1)
}

// DisplayEndToText returns the logical index of the end of the
// grapheme holding the layout index i-1. It is the inverse of
// [Index.TextEndToDisplay] on grapheme ends.
func (ix *Index) DisplayEndToText(i int) int {
	if i <= 0 {
		return 0
	}
	if i > ix.DisplayLen {
		return ix.TextLen
	}
	return ix.TextIndex(ix.DisplayIterator(i-1) + 1)
}

// Compose returns the index from the logical text of ix to the
// layout text of next, where the layout text of ix is the logical
// text of next. Graphemes that map into the same grapheme of next
// are merged into the first of them.
func (ix *Index) Compose(next *Index) *Index {
	out := &Index{TextLen: ix.TextLen, DisplayLen: next.DisplayLen}
	for _, m := range ix.Mappings {
		d := next.TextToDisplay(m.Display)
		if n := len(out.Mappings); n > 0 && d <= out.Mappings[n-1].Display {
			continue
		}
		out.Mappings = append(out.Mappings, Mapping{Text: m.Text, Display: d})
	}
	return out
}

// NewElisionIndex returns the index from text to elided, where elided
// is text with one span of graphemes replaced, as by an ellipsis. The
// replaced graphemes all map to the start of their replacement, or
// are merged into the grapheme before them when nothing replaces
// them. The graphemes kept before and after map to their copies.
func NewElisionIndex(text, elided []rune) *Index {
	n, m := len(text), len(elided)
	b := Boundaries(text)
	prefix := 0
	for prefix < n && prefix < m && text[prefix] == elided[prefix] {
		prefix++
	}
	prefix = b.Before(prefix)
	suffix := 0
	for suffix < n-prefix && suffix < m-prefix && text[n-1-suffix] == elided[m-1-suffix] {
		suffix++
	}
	suffixStart := b.After(n - suffix)
	shift := m - n

	ix := &Index{TextLen: n, DisplayLen: m}
	for _, s := range b[:len(b)-1] {
		switch {
		case s < prefix:
			ix.Mappings = append(ix.Mappings, Mapping{Text: s, Display: s})
		case s >= suffixStart:
			ix.Mappings = append(ix.Mappings, Mapping{Text: s, Display: s + shift})
		case s == prefix && suffixStart+shift > prefix:
			ix.Mappings = append(ix.Mappings, Mapping{Text: s, Display: s})
		}
	}
	if len(ix.Mappings) > 0 {
		ix.Mappings[0] = Mapping{}
	}
	return ix
}
