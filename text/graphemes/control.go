// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphemes

import (
	"unicode"
	"unicode/utf8"
)

const (
	// ReplacementChar replaces runes that cannot be displayed.
	ReplacementChar = '�'

	// controlPictures is the start of the Control Pictures block,
	// which has a symbol for each C0 control at the same offset.
	controlPictures = 0x2400

	// PasswordChar replaces obscured graphemes.
	PasswordChar = '•'

	// Ellipsis marks truncated or elided text.
	Ellipsis = '…'
)

// IsNoncharacter returns true for the Unicode noncharacters:
// U+FDD0..U+FDEF and the last two code points of every plane.
func IsNoncharacter(r rune) bool {
	return (r >= 0xFDD0 && r <= 0xFDEF) || r&0xFFFE == 0xFFFE
}

// ReplaceControlCharacter returns the visible replacement for r:
// C0 controls and DEL map to their Control Pictures symbols, and
// noncharacters, surrogates, out of range values, private use,
// unassigned and other control runes map to U+FFFD. Other runes are
// returned as is.
func ReplaceControlCharacter(r rune) rune {
	switch {
	case r >= 0 && r <= 0x1F:
		return controlPictures + r
	case r == 0x7F:
		return controlPictures + 0x21
	case !utf8.ValidRune(r) || IsNoncharacter(r):
		return ReplacementChar
	case r > 0x7F && (unicode.Is(unicode.Co, r) || unicode.Is(unicode.Cc, r)):
		return ReplacementChar
	case !isAssigned(r):
		return ReplacementChar
	}
	return r
}

// isAssigned returns true if r has a general category other than Cn.
func isAssigned(r rune) bool {
	return unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

// IsNewline returns true if the grapheme is "\r", "\n" or "\r\n".
func IsNewline(cluster []rune) bool {
	switch len(cluster) {
	case 1:
		return cluster[0] == '\r' || cluster[0] == '\n'
	case 2:
		return cluster[0] == '\r' && cluster[1] == '\n'
	}
	return false
}
