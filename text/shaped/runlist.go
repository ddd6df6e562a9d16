// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/textlayout/text/bidi"
)

// RunList is the list of runs of a display text in logical order,
// with the mapping between logical and visual run order. It is
// rebuilt as a whole whenever the display text changes, and runs
// are referred to by their index.
type RunList struct {

	// Runs are the runs in logical order.
	Runs []*Run

	visualToLogical []int
	logicalToVisual []int
	width           float32
}

// Reset removes all runs.
func (rl *RunList) Reset() {
	rl.Runs = rl.Runs[:0]
	rl.visualToLogical = nil
	rl.logicalToVisual = nil
	rl.width = 0
}

// Add adds a run at the end of the logical order.
func (rl *RunList) Add(r *Run) {
	rl.Runs = append(rl.Runs, r)
}

// Len returns the number of runs.
func (rl *RunList) Len() int {
	return len(rl.Runs)
}

// InitIndexMap computes the visual order of the runs from their levels.
func (rl *RunList) InitIndexMap() {
	if len(rl.Runs) == 1 {
		rl.visualToLogical = []int{0}
		rl.logicalToVisual = []int{0}
		return
	}
	levels := make([]int, len(rl.Runs))
	for i, r := range rl.Runs {
		levels[i] = r.Level
	}
	rl.visualToLogical = bidi.VisualToLogical(levels)
	rl.logicalToVisual = bidi.LogicalToVisual(levels)
}

// VisualToLogical returns the logical index of the run at visual position i.
func (rl *RunList) VisualToLogical(i int) int {
	return rl.visualToLogical[i]
}

// LogicalToVisual returns the visual position of the run at logical index i.
func (rl *RunList) LogicalToVisual(i int) int {
	return rl.logicalToVisual[i]
}

// ComputePrecedingRunWidths sets the PrecedingWidth of every run,
// walking the runs in visual order, and the total width.
func (rl *RunList) ComputePrecedingRunWidths() {
	rl.width = 0
	for _, li := range rl.visualToLogical {
		r := rl.Runs[li]
		r.PrecedingWidth = rl.width
		rl.width += r.Width
	}
}

// Width returns the total width of all the runs.
func (rl *RunList) Width() float32 {
	return rl.width
}

// RunIndexAt returns the index of the run containing the display
// index pos, or Len if there is none.
func (rl *RunList) RunIndexAt(pos int) int {
	for i, r := range rl.Runs {
		if r.Range.Start <= pos && r.Range.End > pos {
			return i
		}
	}
	return len(rl.Runs)
}
