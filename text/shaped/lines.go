// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/textpos"
)

// LineSegment is a piece of one run placed on one line.
type LineSegment struct {

	// XRange is the horizontal extent of the segment from the start
	// of its line.
	XRange textpos.RangeF

	// CharRange is the range of the display text in the segment.
	CharRange textpos.Range

	// Run is the index of the run in the [RunList].
	Run int

	// Width is the width of the glyphs of the segment.
	Width float32
}

func (ls *LineSegment) String() string {
	return fmt.Sprintf("run %d chars %v x %v", ls.Run, ls.CharRange, ls.XRange)
}

// Line is one line of shaped text, with its segments in visual order.
type Line struct {

	// Segments are the segments of the line, left to right.
	Segments []LineSegment

	// Size is the size of the line.
	Size math32.Vector2

	// Baseline is the distance from the top of the line to its baseline.
	Baseline float32

	// PrecedingHeights is the sum of the heights of the lines above.
	PrecedingHeights float32

	// DisplayTextIndex is the display index of the start of the line.
	DisplayTextIndex int
}

// ShapedText is the result of laying out a display text into lines.
type ShapedText struct {

	// Lines are the lines, top to bottom.
	Lines []Line

	// Size is the size of all the lines, excluding the width of
	// newlines.
	Size math32.Vector2
}

// IsNewlineSegment returns true if the segment holds a newline.
func IsNewlineSegment(text []rune, seg *LineSegment) bool {
	return IsNewline(text, seg.CharRange)
}

// LineAt returns the index of the line containing the display index
// pos, or the last line if pos is past the last line start.
func (st *ShapedText) LineAt(pos int) int {
	for i := len(st.Lines) - 1; i > 0; i-- {
		if st.Lines[i].DisplayTextIndex <= pos {
			return i
		}
	}
	return 0
}
