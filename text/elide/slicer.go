// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elide fits text into an available width by cutting it at
// the head, middle or tail, with an optional ellipsis.
package elide

import (
	"strconv"

	"cogentcore.org/textlayout/text/graphemes"
)

// Ellipsis is the horizontal ellipsis character.
const Ellipsis = '…'

// Behaviors are the ways of fitting text that is too wide.
type Behaviors int32

const (
	// NoElide leaves the text as is.
	NoElide Behaviors = iota

	// Truncate cuts the end of the text without an ellipsis.
	Truncate

	// ElideHead replaces the start of the text with an ellipsis.
	ElideHead

	// ElideMiddle replaces the middle of the text with an ellipsis.
	ElideMiddle

	// ElideTail replaces the end of the text with an ellipsis.
	ElideTail

	// ElideEmail elides the username and domain of an email address
	// while keeping the @.
	ElideEmail

	// FadeTail keeps the text and fades it out at the edge when painted.
	FadeTail

	BehaviorsN
)

var behaviorsNames = [...]string{"NoElide", "Truncate", "ElideHead", "ElideMiddle", "ElideTail", "ElideEmail", "FadeTail"}

func (b Behaviors) String() string {
	if b >= 0 && b < BehaviorsN {
		return behaviorsNames[b]
	}
	return "Behaviors(" + strconv.Itoa(int(b)) + ")"
}

// Slicer cuts a text to a given length at the head, middle or tail,
// never splitting a grapheme.
type Slicer struct {

	// Text is the text to cut.
	Text []rune

	// Ellipsis is inserted at the cut.
	Ellipsis []rune

	// InMiddle cuts the middle of the text.
	InMiddle bool

	// AtBeginning cuts the start of the text.
	AtBeginning bool

	// ElideWhitespace removes the white space next to the cut.
	ElideWhitespace bool

	bounds graphemes.Bounds
}

// NewSlicer returns a slicer for text. If whitespace is nil, white
// space is elided for head and tail cuts and kept for middle cuts.
func NewSlicer(text, ellipsis []rune, inMiddle, atBeginning bool, whitespace *bool) *Slicer {
	s := &Slicer{Text: text, Ellipsis: ellipsis, InMiddle: inMiddle, AtBeginning: atBeginning}
	if whitespace != nil {
		s.ElideWhitespace = *whitespace
	} else {
		s.ElideWhitespace = atBeginning || !inMiddle
	}
	s.bounds = graphemes.Boundaries(text)
	return s
}

// Cut returns the text with about length runes kept, adjusted to
// grapheme boundaries, and the ellipsis at the cut if insertEllipsis.
// In the middle, the extra rune of an odd length goes before the cut.
func (s *Slicer) Cut(length int, insertEllipsis bool) []rune {
	var ell []rune
	if insertEllipsis {
		ell = s.Ellipsis
	}
	n := len(s.Text)
	length = min(max(length, 0), n)
	var out []rune
	switch {
	case s.AtBeginning:
		start := s.bounds.ValidAfter(s.Text, n-length, s.ElideWhitespace)
		out = append(out, ell...)
		out = append(out, s.Text[start:]...)
	case !s.InMiddle:
		end := s.bounds.ValidBefore(s.Text, length, s.ElideWhitespace)
		out = append(out, s.Text[:end]...)
		out = append(out, ell...)
	default:
		half := length / 2
		prefix := s.bounds.ValidBefore(s.Text, length-half, s.ElideWhitespace)
		suffix := s.bounds.ValidAfter(s.Text, n-half, s.ElideWhitespace)
		out = append(out, s.Text[:prefix]...)
		out = append(out, ell...)
		out = append(out, s.Text[suffix:]...)
	}
	return out
}
