// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bidi provides text direction detection, paragraph runs with
// their embedding levels, and the visual reordering of runs.
package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is a text direction.
type Direction int32

const (
	// LTR is left to right.
	LTR Direction = iota

	// RTL is right to left.
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "RTL"
	}
	return "LTR"
}

// Level returns the paragraph embedding level of the direction.
func (d Direction) Level() int {
	return int(d)
}

// Modes determine how the base direction of a text is chosen.
type Modes int32

const (
	// FromText uses the direction of the first strong character,
	// LTR if there is none.
	FromText Modes = iota

	// FromUI uses the direction of the user interface locale.
	FromUI

	// ForceLTR always uses LTR.
	ForceLTR

	// ForceRTL always uses RTL.
	ForceRTL

	// AsURL treats the text as a URL, which is always LTR.
	AsURL
)

var modesNames = [...]string{"FromText", "FromUI", "ForceLTR", "ForceRTL", "AsURL"}

func (m Modes) String() string {
	if m >= 0 && int(m) < len(modesNames) {
		return modesNames[m]
	}
	return "Modes(?)"
}

// strong returns the direction of a strong character, and false
// for weak and neutral characters.
func strong(r rune) (Direction, bool) {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.L:
		return LTR, true
	case bidi.R, bidi.AL:
		return RTL, true
	}
	return LTR, false
}

// FirstStrong returns the direction of the first strong character,
// and false if there is none.
func FirstStrong(text []rune) (Direction, bool) {
	for _, r := range text {
		if d, ok := strong(r); ok {
			return d, true
		}
	}
	return LTR, false
}

// LastStrong returns the direction of the last strong character,
// and false if there is none.
func LastStrong(text []rune) (Direction, bool) {
	for i := len(text) - 1; i >= 0; i-- {
		if d, ok := strong(text[i]); ok {
			return d, true
		}
	}
	return LTR, false
}

// FirstStrongDirection returns the direction of the first strong
// character, LTR if there is none.
func FirstStrongDirection(text []rune) Direction {
	d, _ := FirstStrong(text)
	return d
}

// LastStrongDirection returns the direction of the last strong
// character, LTR if there is none.
func LastStrongDirection(text []rune) Direction {
	d, _ := LastStrong(text)
	return d
}

// TextDirection returns the base direction of text for the given mode.
func TextDirection(text []rune, mode Modes) Direction {
	switch mode {
	case FromText:
		return FirstStrongDirection(text)
	case FromUI:
		return UIDirection()
	case ForceRTL:
		return RTL
	}
	return LTR
}
