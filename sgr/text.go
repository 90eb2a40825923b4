// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/text.go
// Summary: Plain-text reconstruction from categorized slices.

package sgr

import "strings"

// Strip concatenates the text of slices.
func Strip(slices []Slice) string {
	n := 0
	for _, s := range slices {
		n += len(s.Text)
	}

	var b strings.Builder
	b.Grow(n)
	for _, s := range slices {
		b.WriteString(s.Text)
	}
	return b.String()
}

// StripString returns text with every control sequence removed.
func StripString(text string) string {
	return Strip(Categorize(text))
}
