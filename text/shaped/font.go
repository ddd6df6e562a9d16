// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"cogentcore.org/textlayout/text/textstyle"
)

// Font specifies a font face to shape text with.
type Font struct {

	// Family is the font family name, e.g., "Go" or "Latin Modern Roman".
	Family string

	// Size is the font size in pixels.
	Size float32

	// Weight is the CSS weight of the face.
	Weight textstyle.Weights

	// Italic selects an italic or oblique face.
	Italic bool
}

func (f Font) String() string {
	s := fmt.Sprintf("%s %g %s", f.Family, f.Size, f.Weight)
	if f.Italic {
		s += " italic"
	}
	return s
}

// Derive returns a copy of the font with the given size, weight and
// italic flag. A zero size keeps the current size.
func (f Font) Derive(size float32, weight textstyle.Weights, italic bool) Font {
	if size > 0 {
		f.Size = size
	}
	f.Weight = weight
	f.Italic = italic
	return f
}

// Metrics are the vertical metrics of a font, both positive
// distances from the baseline.
type Metrics struct {

	// Ascent is the distance above the baseline.
	Ascent float32

	// Descent is the distance below the baseline.
	Descent float32
}

// Height returns the total line height.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent
}

// FontInfo contains basic font information for choosing a given font.
type FontInfo struct {

	// Family is the regularized family name.
	Family string

	// Weight is the weight of the face.
	Weight textstyle.Weights

	// Italic is whether the face is italic.
	Italic bool
}

// Font returns a [Font] for this face at the given size.
func (fi FontInfo) Font(size float32) Font {
	return Font{Family: fi.Family, Size: size, Weight: fi.Weight, Italic: fi.Italic}
}
