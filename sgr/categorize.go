// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/categorize.go
// Summary: Converts scanned control sequences into styled text slices.

package sgr

import "fmt"

// sgrFinal is the final byte of an SGR sequence.
const sgrFinal = 'm'

// Slice is a run of plain text and the style active over it.
type Slice struct {
	// Text is input[Start:End].
	Text string
	// Start and End are byte offsets into the categorized input.
	Start, End int
	Style
}

// Sub returns the part of s between byte offsets lo and hi of s.Text, with
// the same style. Start and End stay relative to the original input.
func (s Slice) Sub(lo, hi int) Slice {
	return Slice{
		Text:  s.Text[lo:hi],
		Start: s.Start + lo,
		End:   s.Start + hi,
		Style: s.Style,
	}
}

// WithStyle returns s carrying style instead of its own.
func (s Slice) WithStyle(style Style) Slice {
	s.Style = style
	return s
}

func (s Slice) String() string {
	return fmt.Sprintf("[%d,%d) %q %s", s.Start, s.End, s.Text, s.Style)
}

// Len returns the length of the slice in bytes.
func (s Slice) Len() int {
	return s.End - s.Start
}

// Categorize splits text into the plain-text runs between control
// sequences, each tagged with the style in effect. Empty runs are dropped,
// so the result holds at most len(Scan(text))+1 slices.
//
// Sequences that are not SGR (final byte other than 'm') are removed from
// the text but leave the style untouched.
func Categorize(text string) []Slice {
	matches := Scan(text)
	slices := make([]Slice, 0, len(matches)+1)

	style := DefaultStyle()
	lo := 0
	for _, m := range matches {
		if m.Start > lo {
			slices = append(slices, Slice{Text: text[lo:m.Start], Start: lo, End: m.Start, Style: style})
		}
		if m.Final() == sgrFinal {
			style.applyParams(m.Params())
		}
		lo = m.End
	}

	if lo < len(text) {
		slices = append(slices, Slice{Text: text[lo:], Start: lo, End: len(text), Style: style})
	}

	return slices
}
