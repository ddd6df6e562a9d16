// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt provides a [shaped.Shaper] using the go-text
// HarfBuzz shaper and font map.
package shapedgt

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textpos"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Shaper is the text shaper from go-text/shaping. It is safe to use
// from several goroutines: shaping is serialized.
type Shaper struct {
	mu      sync.Mutex
	shaper  shaping.HarfbuzzShaper
	fontMap *fontscan.FontMap
	faces   map[shaped.Font]*font.Face
}

// EmbeddedFonts are the font files loaded by every new [Shaper],
// in priority order. By default, this is Go Regular, Go Mono and
// Latin Modern Roman. Use [AddEmbeddedFonts] to add to this.
// This must be done before [NewShaper] to have an effect.
var EmbeddedFonts = [][]byte{goregular.TTF, gomono.TTF, lmroman10regular.TTF}

// AddEmbeddedFonts adds to [EmbeddedFonts] for font loading.
func AddEmbeddedFonts(ttf ...[]byte) {
	EmbeddedFonts = append(EmbeddedFonts, ttf...)
}

// SystemFonts is whether a new [Shaper] also indexes the fonts
// installed on the system, which are cached in the user cache directory.
var SystemFonts = true

// NewShaper returns a new shaper with the [EmbeddedFonts],
// and system fonts if [SystemFonts] is set.
func NewShaper() *Shaper {
	sh := &Shaper{faces: map[shaped.Font]*font.Face{}}
	sh.fontMap = fontscan.NewFontMap(nil)
	if SystemFonts {
		dir, err := os.UserCacheDir()
		if errors.Log(err) == nil {
			errors.Log(sh.fontMap.UseSystemFonts(dir))
		}
	}
	for i, ttf := range EmbeddedFonts {
		errors.Log(sh.addFont(ttf, fmt.Sprintf("embedded-%d", i)))
	}
	sh.shaper.SetFontCacheSize(32)
	return sh
}

func (sh *Shaper) addFont(ttf []byte, id string) error {
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("shapedgt: parsing font %s: %w", id, err)
	}
	for i, face := range faces {
		sh.fontMap.AddFace(face, fontscan.Location{File: id, Index: uint16(i)}, face.Describe())
	}
	return nil
}

// FontToQuery translates the font to go-text fontscan.Query parameters.
func FontToQuery(f shaped.Font) fontscan.Query {
	return fontscan.Query{Families: []string{f.Family}, Aspect: FontToAspect(f)}
}

// FontToAspect translates the font to go-text font.Aspect parameters.
func FontToAspect(f shaped.Font) font.Aspect {
	as := font.Aspect{Style: font.StyleNormal, Weight: font.Weight(f.Weight), Stretch: font.StretchNormal}
	if f.Italic {
		as.Style = font.StyleItalic
	}
	if f.Weight == 0 {
		as.Weight = font.WeightNormal
	}
	return as
}

// face returns the face for the font, ignoring its size.
// It must be called with the lock held.
func (sh *Shaper) face(f shaped.Font) *font.Face {
	key := f
	key.Size = 0
	if fc, ok := sh.faces[key]; ok {
		return fc
	}
	sh.fontMap.SetQuery(FontToQuery(f))
	fc := sh.fontMap.ResolveFace(' ')
	sh.faces[key] = fc
	return fc
}

func (sh *Shaper) Shape(in *shaped.Input) shaped.Output {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	var out shaped.Output
	face := sh.face(in.Font)
	if face == nil {
		n := in.Range.Len()
		out.MissingGlyphs = n
		for i := range n {
			out.Glyphs = append(out.Glyphs, 0)
			out.Advances = append(out.Advances, 0)
			out.GlyphToChar = append(out.GlyphToChar, in.Range.Start+i)
		}
		return out
	}
	dir := di.DirectionLTR
	if in.IsRTL() {
		dir = di.DirectionRTL
	}
	o := sh.shaper.Shape(shaping.Input{
		Text:      in.Text,
		RunStart:  in.Range.Start,
		RunEnd:    in.Range.End,
		Direction: dir,
		Face:      face,
		Size:      math32.ToFixed(in.Font.Size),
		Script:    in.Script,
	})
	out.Glyphs = make([]uint32, len(o.Glyphs))
	out.Advances = make([]float32, len(o.Glyphs))
	out.GlyphToChar = make([]int, len(o.Glyphs))
	for i, g := range o.Glyphs {
		out.Glyphs[i] = uint32(g.GlyphID)
		out.Advances[i] = math32.FromFixed(g.XAdvance)
		out.GlyphToChar[i] = g.ClusterIndex
		if g.GlyphID == 0 {
			out.MissingGlyphs++
		}
	}
	out.Metrics = shaped.Metrics{Ascent: math32.FromFixed(o.LineBounds.Ascent), Descent: -math32.FromFixed(o.LineBounds.Descent)}
	return out
}

// Fallbacks returns the fonts of the faces resolved by the font map
// for the runes of the range that the face of f does not have.
func (sh *Shaper) Fallbacks(text []rune, r textpos.Range, f shaped.Font) []shaped.Font {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	primary := sh.face(f)
	var fonts []shaped.Font
	seen := map[string]bool{f.Family: true}
	sh.fontMap.SetQuery(FontToQuery(f))
	for _, rn := range text[r.Start:r.End] {
		if primary != nil {
			if _, ok := primary.NominalGlyph(rn); ok {
				continue
			}
		}
		fc := sh.fontMap.ResolveFace(rn)
		if fc == nil {
			continue
		}
		family, _ := sh.fontMap.FontMetadata(fc.Font)
		if seen[family] {
			continue
		}
		seen[family] = true
		fonts = append(fonts, shaped.Font{Family: family, Size: f.Size, Weight: f.Weight, Italic: f.Italic})
	}
	return fonts
}

func (sh *Shaper) Metrics(f shaped.Font) shaped.Metrics {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	face := sh.face(f)
	if face == nil {
		return shaped.Metrics{Ascent: f.Size * 0.8, Descent: f.Size * 0.2}
	}
	ext, ok := face.FontHExtents()
	if !ok {
		return shaped.Metrics{Ascent: f.Size * 0.8, Descent: f.Size * 0.2}
	}
	scale := f.Size / float32(face.Upem())
	return shaped.Metrics{Ascent: ext.Ascender * scale, Descent: -ext.Descender * scale}
}
