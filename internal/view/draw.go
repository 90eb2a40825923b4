// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/view/draw.go
// Summary: Draws categorized lines onto a tcell screen.

package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/sgrcat/sgr"
)

const tabWidth = 8

// advance returns the column after drawing r at col.
func advance(r rune, col int) int {
	if r == '\t' {
		return (col/tabWidth + 1) * tabWidth
	}
	return col + runewidth.RuneWidth(r)
}

// LineWidth returns the number of terminal columns line occupies.
func LineWidth(line []sgr.Slice) int {
	col := 0
	for _, s := range line {
		for _, r := range s.Text {
			col = advance(r, col)
		}
	}
	return col
}

// DrawLine draws line at row y starting at column x, clipped to maxX
// (exclusive). It returns the column after the last drawn cell.
func DrawLine(screen tcell.Screen, x, y, maxX int, line []sgr.Slice) int {
	col := x
	for _, s := range line {
		style := Style(s.Style)
		for _, r := range s.Text {
			next := advance(r, col)
			if next > maxX {
				return col
			}
			switch {
			case r == '\t':
				for c := col; c < next; c++ {
					screen.SetContent(c, y, ' ', nil, style)
				}
			case next > col:
				screen.SetContent(col, y, r, nil, style)
			}
			col = next
		}
	}
	return col
}
