// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection provides the caret and selection state of a text:
// a primary selection whose end is the caret, the logical affinity of
// the caret, and secondary selections.
package selection

import (
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/textlayout/text/textpos"
)

// Model is a primary selection, whose End is the caret, with the
// affinity of the caret and any secondary selections. No two
// selections intersect. The zero value is a caret at 0 with
// [Backward] affinity.
type Model struct {

	// selection is the primary selection, which is reversed
	// when the caret is before its start.
	selection textpos.Range

	// affinity is the direction of the character the caret is bound
	// to, for a caret between two characters that are not visually
	// adjacent, such as at the boundary of two bidi runs.
	affinity LogicalDirection

	// secondary are the other selections, which have no caret.
	secondary []textpos.Range
}

// New returns a caret at 0 with [Backward] affinity.
func New() Model {
	return Model{}
}

// NewCaret returns a caret at pos with the given affinity.
func NewCaret(pos int, affinity LogicalDirection) Model {
	return Model{selection: textpos.RangeAt(pos), affinity: affinity}
}

// NewRange returns a selection of r, with the caret at r.End.
func NewRange(r textpos.Range, affinity LogicalDirection) Model {
	return Model{selection: r, affinity: affinity}
}

// NewMulti returns a model with the first range as the primary
// selection and the rest as secondary selections. Overlapping
// secondary selections are dropped.
func NewMulti(rs []textpos.Range, affinity LogicalDirection) Model {
	if len(rs) == 0 {
		return NewCaret(0, affinity)
	}
	m := NewRange(rs[0], affinity)
	for _, r := range rs[1:] {
		m.AddSecondarySelection(r)
	}
	return m
}

// Selection returns the primary selection.
func (m *Model) Selection() textpos.Range {
	return m.selection
}

// CaretPos returns the position of the caret, the end of the primary selection.
func (m *Model) CaretPos() int {
	return m.selection.End
}

// Affinity returns the affinity of the caret.
func (m *Model) Affinity() LogicalDirection {
	return m.affinity
}

// Secondary returns the secondary selections.
func (m *Model) Secondary() []textpos.Range {
	return m.secondary
}

// All returns the primary selection followed by the secondary ones.
func (m *Model) All() []textpos.Range {
	return append([]textpos.Range{m.selection}, m.secondary...)
}

// SetSelectionStart sets the start of the primary selection,
// keeping the caret.
func (m *Model) SetSelectionStart(start int) {
	m.selection.Start = start
}

// AddSecondarySelection adds a secondary selection. It returns false,
// leaving the model unchanged, if r intersects another selection.
func (m *Model) AddSecondarySelection(r textpos.Range) bool {
	if m.selection.Intersects(r) {
		return false
	}
	for _, s := range m.secondary {
		if s.Intersects(r) {
			return false
		}
	}
	m.secondary = append(m.secondary, r)
	return true
}

// Equal returns true if both models have the same selections
// and affinity.
func (m *Model) Equal(o *Model) bool {
	return m.selection == o.selection && m.affinity == o.affinity && slices.Equal(m.secondary, o.secondary)
}

func rangeString(r textpos.Range) string {
	if r.IsEmpty() {
		return strconv.Itoa(r.End)
	}
	return r.String()
}

// String returns the model as {selection,AFFINITY,secondary...},
// where an empty selection is written as its position.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(rangeString(m.selection))
	b.WriteString(",")
	b.WriteString(m.affinity.String())
	for _, s := range m.secondary {
		b.WriteString(",")
		b.WriteString(rangeString(s))
	}
	b.WriteString("}")
	return b.String()
}
