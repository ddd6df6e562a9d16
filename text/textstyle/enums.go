// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textstyle

import "strconv"

// Styles are the boolean text styles, each of which
// has its own break list in [Attributes].
type Styles int32

const (
	// Italic is a slanted font style.
	Italic Styles = iota

	// Strike draws a line through the text.
	Strike

	// Underline draws a line under the text.
	Underline

	// HeavyUnderline draws a thicker underline, as used for
	// input method composition ranges.
	HeavyUnderline

	StylesN
)

var stylesNames = [...]string{"Italic", "Strike", "Underline", "HeavyUnderline"}

func (s Styles) String() string {
	if s >= 0 && s < StylesN {
		return stylesNames[s]
	}
	return "Styles(" + strconv.Itoa(int(s)) + ")"
}

// Baselines are the vertical positioning styles of text
// relative to the line baseline.
type Baselines int32

const (
	// NormalBaseline is the regular baseline.
	NormalBaseline Baselines = iota

	// Superscript raises the text with a smaller font.
	Superscript

	// Superior raises the text to cap height with a smaller font.
	Superior

	// Subscript lowers the text with a smaller font.
	Subscript

	// Inferior lowers the text slightly with a smaller font.
	Inferior

	BaselinesN
)

var baselinesNames = [...]string{"NormalBaseline", "Superscript", "Superior", "Subscript", "Inferior"}

func (b Baselines) String() string {
	if b >= 0 && b < BaselinesN {
		return baselinesNames[b]
	}
	return "Baselines(" + strconv.Itoa(int(b)) + ")"
}

// SizeFactor is the font size multiplier for the baseline style.
func (b Baselines) SizeFactor() float32 {
	if b == NormalBaseline {
		return 1
	}
	return 2.0 / 3.0
}

// Offset returns the vertical offset of the baseline for the given
// font size, ascent and descent. Positive values are lower.
func (b Baselines) Offset(size, ascent, descent float32) float32 {
	switch b {
	case Superscript:
		return -size / 3
	case Superior:
		return -ascent / 3
	case Subscript:
		return size / 5
	case Inferior:
		return descent / 3
	}
	return 0
}

// Weights are CSS font weights.
type Weights int32

const (
	Invisible  Weights = 0
	Thin       Weights = 100
	ExtraLight Weights = 200
	Light      Weights = 300
	Normal     Weights = 400
	Medium     Weights = 500
	Semibold   Weights = 600
	Bold       Weights = 700
	ExtraBold  Weights = 800
	Black      Weights = 900
)

func (w Weights) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case Semibold:
		return "Semibold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	}
	return strconv.Itoa(int(w))
}
