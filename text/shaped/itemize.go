// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/graphemes"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/unicodedata"
	xbidi "golang.org/x/text/unicode/bidi"
)

// Itemize splits text into runs: first at the given bidi runs, then
// at script changes, then at the shaping style boundaries of attrs
// and at graphemes that must be shaped on their own (spaces, newlines,
// brackets, emoji). The font of each run is derived from base and the
// run styles. Runs are returned in logical order, unshaped.
//
// It plays the role of shaping.Segmenter in go-text, which splits
// at bidi, script and face changes only; here runs also split at
// style boundaries and at graphemes that are shaped alone, so each
// run can be measured and cut independently by [LineBreaker].
func Itemize(text []rune, attrs *textstyle.Attributes, runs []bidi.Run, base Font) []*Run {
	it := textstyle.NewIterator(attrs)
	bounds := graphemes.Boundaries(text)
	var out []*Run
	for _, br := range runs {
		for ss := br.Start; ss < br.End; {
			script, se := scriptInterval(text, ss, br.End)
			for bs := ss; bs < se; {
				it.AdvanceTo(bs)
				be := runBreak(text, bounds, bs, it.TextBreakingRange().End, se)
				run := &Run{Range: textpos.R(bs, be), Level: br.Level, Script: script}
				run.Baseline = it.Baseline()
				run.Strike = it.Style(textstyle.Strike)
				run.Underline = it.Style(textstyle.Underline)
				run.HeavyUnderline = it.Style(textstyle.HeavyUnderline)
				size := it.FontSize()
				if run.Baseline != textstyle.NormalBaseline {
					size = base.Size * run.Baseline.SizeFactor()
				}
				run.Font = base.Derive(size, it.Weight(), it.Style(textstyle.Italic))
				out = append(out, run)
				bs = be
			}
			ss = se
		}
	}
	return out
}

// scriptInterval returns the script of the longest sequence of runes
// starting at start with a single strong script, and its end.
// Common and Inherited runes join the sequence they are in.
func scriptInterval(text []rune, start, end int) (language.Script, int) {
	script := language.LookupScript(text[start])
	for i := start + 1; i < end; i++ {
		s := language.LookupScript(text[i])
		if !s.Strong() {
			continue
		}
		if !script.Strong() {
			script = s
			continue
		}
		if s != script {
			return script, i
		}
	}
	return script, end
}

// clusterProps are the properties of a grapheme that decide
// whether it can be shaped with its neighbors.
type clusterProps struct {
	control      bool
	bracket      bool
	pictographic bool
	emoji        bool
}

func propsOf(cluster []rune) clusterProps {
	var p clusterProps
	for _, r := range cluster {
		if r == '\n' || r == ' ' {
			p.control = true
		}
		if bp, _ := xbidi.LookupRune(r); bp.IsBracket() {
			p.bracket = true
		}
		if unicode.Is(unicodedata.Extended_Pictographic, r) && r > unicode.MaxLatin1 {
			p.pictographic = true
		}
		if isEmojiComponent(r) {
			p.emoji = true
		}
	}
	return p
}

// isEmojiComponent returns true for regional indicators, skin tone
// modifiers and the emoji presentation selector.
func isEmojiComponent(r rune) bool {
	return unicode.Is(unicodedata.GraphemeBreakRegional_Indicator, r) ||
		(r >= 0x1F3FB && r <= 0x1F3FF) || r == 0xFE0F || r == 0x20E3
}

func (p clusterProps) compatible(o clusterProps) bool {
	return !p.control && !o.control && p == o
}

// runBreak returns the end of the run starting at start: the first
// grapheme that is not compatible with the first one, or the first
// grapheme starting at or after styleEnd, or end.
func runBreak(text []rune, bounds graphemes.Bounds, start, styleEnd, end int) int {
	first := propsOf(text[start:min(bounds.Next(start), end)])
	for g := bounds.Next(start); g < end; g = bounds.Next(g) {
		if !first.compatible(propsOf(text[g:min(bounds.Next(g), end)])) {
			return g
		}
		if g >= styleEnd {
			return g
		}
	}
	return end
}
