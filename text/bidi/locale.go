// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bidi

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

var (
	uiOnce      sync.Once
	uiDirection Direction
	uiOverride  *Direction
	uiMu        sync.Mutex
)

// rtlScripts are the scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true,
	"Nkoo": true, "Adlm": true, "Rohg": true, "Mand": true, "Samr": true,
}

// LocaleDirection returns the direction of the script of the given
// BCP 47 locale, such as "en-US", "ar" or "ku-Arab".
func LocaleDirection(loc string) Direction {
	tag, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil {
		return LTR
	}
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// UIDirection returns the direction of the user interface locale.
// It is read once from the system.
func UIDirection() Direction {
	uiMu.Lock()
	defer uiMu.Unlock()
	if uiOverride != nil {
		return *uiOverride
	}
	uiOnce.Do(func() {
		loc, err := locale.GetLocale()
		if err != nil {
			slog.Debug("bidi: reading user locale", "err", err)
			return
		}
		uiDirection = LocaleDirection(loc)
	})
	return uiDirection
}

// SetUIDirection overrides the direction returned by [UIDirection].
// Passing nil restores the system locale.
func SetUIDirection(d *Direction) {
	uiMu.Lock()
	uiOverride = d
	uiMu.Unlock()
}
