// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertext

import (
	"image/color"
	"path/filepath"
	"strconv"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/base/iox/tomlx"
	"cogentcore.org/textlayout/base/iox/yamlx"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/elide"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/jinzhu/copier"
)

// HorizontalAligns are the horizontal alignments of text
// within the display rect.
type HorizontalAligns int32

const (
	AlignLeft HorizontalAligns = iota
	AlignCenter
	AlignRight

	// AlignToHead aligns to the left for left-to-right text
	// and to the right for right-to-left text.
	AlignToHead

	HorizontalAlignsN
)

var horizontalAlignsNames = [...]string{"AlignLeft", "AlignCenter", "AlignRight", "AlignToHead"}

func (a HorizontalAligns) String() string {
	if a >= 0 && a < HorizontalAlignsN {
		return horizontalAlignsNames[a]
	}
	return "HorizontalAligns(" + strconv.Itoa(int(a)) + ")"
}

// VerticalAligns are the vertical alignments of text
// within the display rect.
type VerticalAligns int32

const (
	AlignTop VerticalAligns = iota

	// AlignMiddle centers single line text on its cap height,
	// and multiline text on its total height.
	AlignMiddle

	AlignBottom

	VerticalAlignsN
)

var verticalAlignsNames = [...]string{"AlignTop", "AlignMiddle", "AlignBottom"}

func (a VerticalAligns) String() string {
	if a >= 0 && a < VerticalAlignsN {
		return verticalAlignsNames[a]
	}
	return "VerticalAligns(" + strconv.Itoa(int(a)) + ")"
}

// WordStops are where word cursor movement stops.
type WordStops int32

const (
	// WordStopEnd stops at the end of words when moving forward
	// and at their start when moving backward.
	WordStopEnd WordStops = iota

	// WordStopStart always stops at the start of words.
	WordStopStart

	WordStopsN
)

var wordStopsNames = [...]string{"WordStopEnd", "WordStopStart"}

func (w WordStops) String() string {
	if w >= 0 && w < WordStopsN {
		return wordStopsNames[w]
	}
	return "WordStops(" + strconv.Itoa(int(w)) + ")"
}

// Settings are the display parameters of a [RenderText] that are
// independent of its text, and can be saved and loaded as TOML or YAML.
type Settings struct {

	// Fonts are the fonts to shape with, where the first one is the
	// primary font that sets the size and metrics.
	Fonts []shaped.Font

	// Color is the default text color.
	Color color.RGBA

	// SelectionColor is the color of selected text.
	SelectionColor color.RGBA

	// SelectionBackgroundColor fills the bounds of the selection.
	SelectionBackgroundColor color.RGBA

	// Multiline lays out the text in as many lines as needed,
	// breaking at newlines and to fit the display width.
	Multiline bool

	// MaxLines limits multiline text with [elide.ElideTail]
	// to this many lines. 0 is no limit.
	MaxLines int

	// WordWrap is the handling of words wider than the display width.
	WordWrap shaped.WordWraps

	// Elide is how text that does not fit is elided.
	Elide elide.Behaviors `default:"NoElide"`

	// WhitespaceElision, if set, overrides whether white space
	// next to an ellipsis is removed.
	WhitespaceElision *bool

	// Obscured replaces the text with bullets, as for passwords.
	Obscured bool

	// TruncateLength is the maximum length of the layout text,
	// including a trailing ellipsis. 0 is no limit.
	TruncateLength int

	// Directionality is how the paragraph direction is determined.
	Directionality bidi.Modes

	// HorizontalAlign is the horizontal alignment of the text.
	HorizontalAlign HorizontalAligns

	// VerticalAlign is the vertical alignment of the text.
	VerticalAlign VerticalAligns `default:"AlignMiddle"`

	// CursorEnabled adds room for the cursor at the end of the text
	// and keeps the cursor in view.
	CursorEnabled bool `default:"true"`

	// MinLineHeight is the minimum height of each line.
	MinLineHeight float32

	// DisplayRect is the area the text is laid out in.
	DisplayRect math32.Box2

	// WordStop is where word cursor movement stops.
	WordStop WordStops

	// StrikeThicknessFactor is the thickness of strike-through
	// lines relative to the font size.
	StrikeThicknessFactor float32 `default:"0.0556"`

	// DirectedSelection keeps the direction of a selection when it
	// is extended the other way, as on macOS.
	DirectedSelection bool
}

// NewSettings returns new settings with default values.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets default values.
func (s *Settings) Defaults() {
	s.Fonts = []shaped.Font{{Family: "Go", Size: 16, Weight: textstyle.Normal}}
	s.Color = color.RGBA{0, 0, 0, 255}
	s.SelectionColor = color.RGBA{255, 255, 255, 255}
	s.SelectionBackgroundColor = color.RGBA{51, 103, 214, 255}
	s.WordWrap = shaped.IgnoreLongWords
	s.Elide = elide.NoElide
	s.Directionality = bidi.FromText
	s.HorizontalAlign = AlignLeft
	s.VerticalAlign = AlignMiddle
	s.CursorEnabled = true
	s.WordStop = WordStopEnd
	s.StrikeThicknessFactor = 1.0 / 18.0
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	cp := &Settings{}
	errors.Log(copier.CopyWithOption(cp, s, copier.Option{DeepCopy: true}))
	return cp
}

// FontSize returns the size of the primary font.
func (s *Settings) FontSize() float32 {
	if len(s.Fonts) == 0 {
		return 0
	}
	return s.Fonts[0].Size
}

// Open reads the settings from a .toml, .yaml or .yml file.
func (s *Settings) Open(filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Open(s, filename)
	case ".yaml", ".yml":
		return yamlx.Open(s, filename)
	}
	return errors.New("rendertext: unknown settings file type: " + filename)
}

// Save writes the settings to a .toml, .yaml or .yml file.
func (s *Settings) Save(filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	}
	return errors.New("rendertext: unknown settings file type: " + filename)
}
