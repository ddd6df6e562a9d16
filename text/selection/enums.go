// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import "strconv"

// LogicalDirection is a direction in logical text order.
type LogicalDirection int32

const (
	// Backward is toward the start of the text.
	Backward LogicalDirection = iota

	// Forward is toward the end of the text.
	Forward
)

func (d LogicalDirection) String() string {
	switch d {
	case Backward:
		return "BACKWARD"
	case Forward:
		return "FORWARD"
	}
	return "LogicalDirection(" + strconv.Itoa(int(d)) + ")"
}

// Opposite returns the other direction.
func (d LogicalDirection) Opposite() LogicalDirection {
	if d == Forward {
		return Backward
	}
	return Forward
}

// VisualDirection is a direction on the screen.
type VisualDirection int32

const (
	Left VisualDirection = iota
	Right
	Up
	Down
	VisualDirectionN
)

var visualDirectionNames = [...]string{"Left", "Right", "Up", "Down"}

func (d VisualDirection) String() string {
	if d >= 0 && d < VisualDirectionN {
		return visualDirectionNames[d]
	}
	return "VisualDirection(" + strconv.Itoa(int(d)) + ")"
}

// BreakType is the unit of a cursor move.
type BreakType int32

const (
	// CharacterBreak moves by one grapheme.
	CharacterBreak BreakType = iota

	// WordBreak moves to the next word boundary.
	WordBreak

	// LineBreak moves to the visual start or end of the line,
	// or to the line above or below.
	LineBreak

	// FieldBreak moves to the start or end of the text.
	FieldBreak

	BreakTypeN
)

var breakTypeNames = [...]string{"CharacterBreak", "WordBreak", "LineBreak", "FieldBreak"}

func (b BreakType) String() string {
	if b >= 0 && b < BreakTypeN {
		return breakTypeNames[b]
	}
	return "BreakType(" + strconv.Itoa(int(b)) + ")"
}

// Behavior is how a cursor move changes the selection.
type Behavior int32

const (
	// SelectionNone moves the caret and clears the selection.
	SelectionNone Behavior = iota

	// SelectionCaret extends the selection, but collapses it to a
	// caret instead of reversing its direction.
	SelectionCaret

	// SelectionExtend extends the selection, swapping its start and
	// end when the move crosses the start.
	SelectionExtend

	// SelectionRetain extends the selection, always keeping its start.
	SelectionRetain

	BehaviorN
)

var behaviorNames = [...]string{"SelectionNone", "SelectionCaret", "SelectionExtend", "SelectionRetain"}

func (b Behavior) String() string {
	if b >= 0 && b < BehaviorN {
		return behaviorNames[b]
	}
	return "Behavior(" + strconv.Itoa(int(b)) + ")"
}
