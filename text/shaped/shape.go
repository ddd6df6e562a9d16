// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"log/slog"
	"math"

	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/textpos"
	"cogentcore.org/textlayout/text/textstyle"
)

// IsNewline returns true if the range of text is a single newline:
// "\n", "\r" or "\r\n".
func IsNewline(text []rune, r textpos.Range) bool {
	switch r.Len() {
	case 1:
		return text[r.Start] == '\n' || text[r.Start] == '\r'
	case 2:
		return text[r.Start] == '\r' && text[r.Start+1] == '\n'
	}
	return false
}

// NewRunList itemizes text into runs with the paragraph direction
// dir, shapes them with the fonts, where the first font is the
// primary font, and computes their visual order and positions.
func NewRunList(sh Shaper, text []rune, attrs *textstyle.Attributes, dir bidi.Direction, fonts []Font) *RunList {
	rl := &RunList{}
	if len(text) == 0 || len(fonts) == 0 {
		return rl
	}
	base := fonts[0]
	rl.Runs = Itemize(text, attrs, bidi.Runs(text, dir), base)
	ShapeRuns(sh, text, rl.Runs, fonts, base)
	rl.InitIndexMap()
	rl.ComputePrecedingRunWidths()
	return rl
}

// ShapeRuns shapes each run. Newline runs are not shaped: they get one
// missing glyph of zero width. Other runs try each of the fonts and
// then the fallbacks of the shaper, keeping the result with the fewest
// missing glyphs, and stop as soon as nothing is missing. The run
// font sets the size, weight and italic style of every attempt.
func ShapeRuns(sh Shaper, text []rune, runs []*Run, fonts []Font, base Font) {
	bm := sh.Metrics(base)
	for _, run := range runs {
		run.BaselineOffset = run.Baseline.Offset(base.Size, bm.Ascent, bm.Descent)
		if IsNewline(text, run.Range) {
			run.Glyphs = []uint32{0}
			run.Positions = []float32{0}
			run.GlyphToChar = []int{run.Range.Start}
			run.Width = 0
			run.MissingGlyphs = 1
			run.Metrics = sh.Metrics(run.Font)
			continue
		}
		shapeRun(sh, text, run, fonts)
	}
}

func shapeRun(sh Shaper, text []rune, run *Run, fonts []Font) {
	tmpl := run.Font
	in := &Input{Text: text, Range: run.Range, Script: run.Script, Level: run.Level}
	best := math.MaxInt
	tried := map[string]bool{}
	try := func(f Font) bool {
		f = f.Derive(tmpl.Size, tmpl.Weight, tmpl.Italic)
		if tried[f.Family] {
			return false
		}
		tried[f.Family] = true
		in.Font = f
		out := sh.Shape(in)
		if out.MissingGlyphs < best {
			best = out.MissingGlyphs
			run.SetOutput(f, &out)
		}
		return best == 0
	}
	for _, f := range fonts {
		if try(f) {
			return
		}
	}
	for _, f := range sh.Fallbacks(text, run.Range, tmpl) {
		if try(f) {
			slog.Debug("shaped: fallback font", "family", f.Family, "range", run.Range)
			return
		}
	}
	if best == math.MaxInt {
		run.Font = tmpl
		run.Glyphs, run.Positions, run.GlyphToChar = nil, nil, nil
		run.Width = 0
		run.Metrics = sh.Metrics(tmpl)
		return
	}
	slog.Debug("shaped: missing glyphs", "family", run.Font.Family, "range", run.Range, "missing", best)
}
