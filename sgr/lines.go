// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/lines.go
// Summary: Splits categorized slices at line boundaries, keeping styles.
// Usage: it := sgr.Lines(slices); for line, ok := it.Next(); ok; line, ok = it.Next() {}

package sgr

import "strings"

// LineIterator yields one group of slices per line of the categorized text.
// Lines end at "\n" or "\r\n"; a lone "\r" is ordinary text. A slice that
// spans a break is split and both parts keep its style.
type LineIterator struct {
	slices []Slice
	idx    int

	// pending is the unconsumed tail of a slice after a break.
	pending    Slice
	hasPending bool
}

// Lines returns an iterator over the lines of slices.
func Lines(slices []Slice) *LineIterator {
	return &LineIterator{slices: slices}
}

// SplitLines collects every line of slices.
func SplitLines(slices []Slice) [][]Slice {
	var lines [][]Slice
	it := Lines(slices)
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		lines = append(lines, line)
	}
	return lines
}

// Next returns the next line. ok is false once the slices are exhausted.
func (it *LineIterator) Next() (line []Slice, ok bool) {
	if it.hasPending {
		prev := it.pending
		first, rest, broke := splitLine(prev)
		line = append(line, first)
		if broke {
			// The remainder may itself start another line, even when empty.
			it.pending = rest
			return line, true
		}
		it.hasPending = false
	}

	for it.idx < len(it.slices) {
		s := it.slices[it.idx]
		it.idx++

		first, rest, broke := splitLine(s)
		if first.Len() > 0 || len(line) == 0 {
			line = append(line, first)
		}
		if broke {
			if rest.Len() > 0 {
				it.pending = rest
				it.hasPending = true
			}
			break
		}
	}

	if len(line) == 0 && it.idx >= len(it.slices) {
		return nil, false
	}
	return line, true
}

// splitLine splits s at its first line break. first excludes the break;
// rest starts right after it. broke is false when s holds no "\n".
func splitLine(s Slice) (first, rest Slice, broke bool) {
	nl := strings.IndexByte(s.Text, '\n')
	if nl < 0 {
		return s, Slice{}, false
	}
	end := nl
	if end > 0 && s.Text[end-1] == '\r' {
		end--
	}
	return s.Sub(0, end), s.Sub(nl+1, len(s.Text)), true
}
