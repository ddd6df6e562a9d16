// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elide

import (
	"log/slog"
	"slices"

	"cogentcore.org/textlayout/math32"
	"cogentcore.org/textlayout/text/bidi"
	"cogentcore.org/textlayout/text/graphemes"
)

const (
	lrm = '\u200e'
	rlm = '\u200f'
)

// Elider fits text into a width, measuring each candidate
// with Measure.
type Elider struct {

	// Measure returns the width of the text as it would be laid out.
	// The whole candidate is measured so that kerning and ligatures
	// across the cut are accounted for.
	Measure func(text []rune) float32

	// Direction is the direction of the whole text. A tail ellipsis
	// following text of the other direction gets a directional mark.
	Direction bidi.Direction

	// WhitespaceElision, if set, overrides the default removal of
	// white space next to the cut.
	WhitespaceElision *bool
}

// Elide returns text fitted into the available width with the given
// behavior. textWidth is the width of text if known, or 0. The result
// is empty if available is not positive or the ellipsis alone does
// not fit.
func (e *Elider) Elide(text []rune, textWidth, available float32, behavior Behaviors) []rune {
	if available <= 0 || len(text) == 0 {
		return nil
	}
	switch behavior {
	case NoElide, FadeTail:
		return text
	case ElideEmail:
		return e.ElideEmail(text, available)
	}
	if textWidth > 0 && textWidth <= available {
		return text
	}
	if textWidth == 0 {
		textWidth = e.Measure(text)
	}
	if textWidth <= available {
		return text
	}

	ellipsis := []rune{Ellipsis}
	insert := behavior != Truncate
	tail := insert && behavior == ElideTail
	if insert && e.Measure(ellipsis) > available {
		return nil
	}
	slicer := NewSlicer(text, ellipsis, behavior == ElideMiddle, behavior == ElideHead, e.WhitespaceElision)

	var best []rune
	bestGuess := -1
	lo, hi := 0, len(text)-1
	loWidth, hiWidth := float32(0), textWidth
	guess := -1
	iter := 0
	for lo <= hi && iter <= len(text) {
		iter++
		last := guess
		if hiWidth != loWidth {
			guess = lo + int(math32.Round((available-loWidth)*float32(hi-lo)/(hiWidth-loWidth)))
		}
		guess = min(max(guess, lo), hi)
		if guess == last {
			guess = (lo + hi) / 2
		}

		cand := slicer.Cut(guess, insert && !tail)
		if tail {
			cand = e.appendTailEllipsis(slicer, cand, guess, len(text))
		}

		w := e.Measure(cand)
		if w <= available && guess > bestGuess {
			best, bestGuess = cand, guess
		}
		if w == available {
			break
		}
		if w > available {
			hi = guess - 1
			hiWidth = w
			if hi < lo {
				lo = hi
				loWidth = w
			}
		} else {
			lo = guess + 1
			loWidth = w
		}
		if hi < 0 {
			break
		}
	}
	slog.Debug("elide: search", "behavior", behavior, "length", len(text), "iterations", iter, "result", len(best))
	return best
}

// appendTailEllipsis adds the ellipsis after a tail cut, followed by a
// directional mark when the text before it has the other direction.
// The result is never longer than the original text length n.
func (e *Elider) appendTailEllipsis(s *Slicer, cand []rune, guess, n int) []rune {
	trailing := bidi.LastStrongDirection(cand)
	if trailing != e.Direction && len(cand)+2 > n && guess >= 1 {
		cand = s.Cut(guess-1, false)
	}
	cand = append(cand, Ellipsis)
	if trailing != e.Direction {
		if trailing == bidi.LTR {
			cand = append(cand, lrm)
		} else {
			cand = append(cand, rlm)
		}
	}
	return cand
}

// ElideEmail elides an email address, keeping at least one grapheme
// other than the ellipsis on each side of the last @, or returns a
// single ellipsis when that is impossible. The username is elided
// first; the domain is elided in the middle only when it does not
// fit next to a minimal username.
func (e *Elider) ElideEmail(email []rune, available float32) []rune {
	if e.Measure(email) <= available {
		return email
	}
	split := -1
	for i := len(email) - 1; i >= 0; i-- {
		if email[i] == '@' {
			split = i
			break
		}
	}
	if split <= 0 || split == len(email)-1 {
		return e.Elide(email, 0, available, ElideTail)
	}
	username := email[:split]
	domain := email[split+1:]

	available -= e.Measure([]rune{'@'})
	userWidth := e.Measure(username)
	minUser := append(slices.Clone(username[:graphemes.Boundaries(username).Next(0)]), Ellipsis)
	domainAvailable := available - min(userWidth, e.Measure(minUser))
	if e.Measure(domain) > domainAvailable {
		desired := min(domainAvailable, max(available-userWidth, available/2))
		domain = e.Elide(domain, 0, desired, ElideMiddle)
		if len(graphemes.Boundaries(domain)) <= 2 {
			return []rune{Ellipsis}
		}
	}
	available -= e.Measure(domain)
	username = e.Elide(username, 0, available, ElideTail)
	out := slices.Clone(username)
	out = append(out, '@')
	return append(out, domain...)
}
