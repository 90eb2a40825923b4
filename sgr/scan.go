// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/scan.go
// Summary: Locates CSI control sequences in text.

package sgr

import (
	"strings"
	"unicode/utf8"
)

// csi is the Control Sequence Introducer, ESC [.
const csi = "\x1b["

// Match is a control sequence located by Scan.
type Match struct {
	// Start is the byte offset of the ESC byte.
	Start int
	// End is one past the final byte.
	End int
	// Text is text[Start:End].
	Text string
}

// Final returns the terminating byte of the sequence.
func (m Match) Final() byte {
	return m.Text[len(m.Text)-1]
}

// Params returns the parameter bytes between the introducer and the final byte.
func (m Match) Params() string {
	return m.Text[len(csi) : len(m.Text)-1]
}

func isFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// Scan returns every CSI sequence in text, in order. A sequence runs from
// ESC [ through the first byte in 0x40..0x7E that follows the introducer.
// A sequence with no final byte before the end of text is not reported.
func Scan(text string) []Match {
	matches := make([]Match, 0, 8)

	start := 0
	for start+len(csi) <= len(text) {
		if !strings.HasPrefix(text[start:], csi) {
			_, size := utf8.DecodeRuneInString(text[start:])
			start += size
			continue
		}

		end := start + len(csi)
		for end < len(text) && !isFinal(text[end]) {
			end++
		}
		if end == len(text) {
			// Unterminated: nothing after this point can close it either.
			break
		}
		end++

		matches = append(matches, Match{Start: start, End: end, Text: text[start:end]})
		start = end
	}

	return matches
}
