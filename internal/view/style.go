// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/view/style.go
// Summary: Maps categorized SGR styles onto tcell styles.

package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/sgrcat/sgr"
)

// Color converts an SGR palette color to a tcell palette color.
func Color(c sgr.Color) tcell.Color {
	return tcell.PaletteColor(int(c))
}

// Style converts s to a tcell style. The baseline colors (white on black)
// become the terminal defaults so unstyled text follows the user's theme.
func Style(s sgr.Style) tcell.Style {
	base := sgr.DefaultStyle()

	fg := tcell.ColorDefault
	if s.Fg != base.Fg {
		fg = Color(s.Fg)
	}
	bg := tcell.ColorDefault
	if s.Bg != base.Bg {
		bg = Color(s.Bg)
	}
	if s.Hidden {
		fg = bg
	}

	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	switch s.Intensity {
	case sgr.Bold:
		style = style.Bold(true)
	case sgr.Faint:
		style = style.Dim(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	if s.Blink {
		style = style.Blink(true)
	}
	if s.Reversed {
		style = style.Reverse(true)
	}
	if s.Strikethrough {
		style = style.StrikeThrough(true)
	}
	return style
}
