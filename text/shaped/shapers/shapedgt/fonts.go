// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapedgt

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"cogentcore.org/textlayout/base/errors"
	"cogentcore.org/textlayout/text/shaped"
	"cogentcore.org/textlayout/text/textstyle"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// FontList returns the faces of the [EmbeddedFonts], followed by
// the system fonts if [SystemFonts] is set, sorted by family.
func FontList() []shaped.FontInfo {
	var fi []shaped.FontInfo
	for _, ttf := range EmbeddedFonts {
		faces, err := font.ParseTTC(bytes.NewReader(ttf))
		if errors.Log(err) != nil {
			continue
		}
		for _, face := range faces {
			fi = append(fi, infoFromDescription(face.Describe()))
		}
	}
	if SystemFonts {
		dir := errors.Log1(os.UserCacheDir())
		ft := errors.Log1(fontscan.SystemFonts(nil, dir))
		for i := range ft {
			fi = append(fi, infoFromDescription(font.Description{Family: ft[i].Family, Aspect: ft[i].Aspect}))
		}
	}
	sort.SliceStable(fi, func(i, j int) bool { return fi[i].Family < fi[j].Family })
	return fi
}

func infoFromDescription(d font.Description) shaped.FontInfo {
	return shaped.FontInfo{
		Family: d.Family,
		Weight: textstyle.Weights(d.Aspect.Weight),
		Italic: d.Aspect.Style == font.StyleItalic,
	}
}

// FontDebug prints the face actually resolved for each family.
func (sh *Shaper) FontDebug(families ...string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	for _, fam := range families {
		f := shaped.Font{Family: fam, Weight: textstyle.Normal}
		face := sh.face(f)
		if face == nil {
			fmt.Println(fam, "### no face")
			continue
		}
		family, aspect := sh.fontMap.FontMetadata(face.Font)
		fmt.Println(fam, "### Actual:", family, aspect)
	}
}
