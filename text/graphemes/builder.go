// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphemes

// Builder rewrites logical text into layout text, one grapheme at a
// time, recording the [Index] between them.
type Builder struct {
	// Obscured replaces every grapheme with [PasswordChar],
	// except the one containing RevealIndex.
	Obscured bool

	// RevealIndex is the logical index of the grapheme to leave
	// visible when Obscured, or -1 for none.
	RevealIndex int

	// Multiline keeps newline graphemes as is, neither obscured
	// nor replaced by control pictures.
	Multiline bool

	// TruncateLength is the maximum layout text length, including
	// the [Ellipsis] marking the truncation. 0 means no limit.
	TruncateLength int
}

// Build returns the layout text for text and the index mapping them.
// Control characters are replaced with [ReplaceControlCharacter].
// When the layout text reaches the truncation length, the current
// grapheme is replaced by an ellipsis and the rest is dropped.
func (b *Builder) Build(text []rune) ([]rune, *Index) {
	bounds := Boundaries(text)
	ix := &Index{TextLen: len(text), Mappings: make([]Mapping, 0, len(bounds))}
	layout := make([]rune, 0, len(text))

	reveal := len(text)
	if b.RevealIndex >= 0 {
		reveal = b.RevealIndex
	}
	truncated := false
	for gi := 0; gi+1 < len(bounds) && !truncated; gi++ {
		start, end := bounds[gi], bounds[gi+1]
		cluster := text[start:end]
		layoutStart := len(layout)
		ix.Mappings = append(ix.Mappings, Mapping{start, layoutStart})

		newline := IsNewline(cluster)
		if b.Obscured && (reveal < start || reveal >= end) && (!newline || !b.Multiline) {
			cluster = []rune{PasswordChar}
		}
		more := end < len(text)
		for _, r := range cluster {
			if !b.Multiline || !newline {
				r = ReplaceControlCharacter(r)
			}
			n := len(layout) + 1
			truncated = b.TruncateLength != 0 && (n > b.TruncateLength || (more && n == b.TruncateLength))
			if truncated {
				layout = append(layout[:layoutStart], Ellipsis)
				break
			}
			layout = append(layout, r)
		}
	}
	ix.DisplayLen = len(layout)
	return layout, ix
}
