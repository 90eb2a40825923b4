// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/style.go
// Summary: SGR style state and the parameter table applied to it.

package sgr

import (
	"strconv"
	"strings"
)

// Color is one of the 16 standard terminal colors. The numeric value is the
// palette index: 0-7 for the normal set, 8-15 for the bright set.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

// Intensity is the emphasis level. Bold and faint are mutually exclusive.
type Intensity uint8

const (
	Normal Intensity = iota
	Bold
	Faint
)

func (i Intensity) String() string {
	switch i {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	}
	return "intensity(" + strconv.Itoa(int(i)) + ")"
}

// Style is the rendering state accumulated from SGR sequences. Every field
// always holds a concrete value; the zero value is not the baseline, use
// DefaultStyle.
type Style struct {
	Fg            Color
	Bg            Color
	Intensity     Intensity
	Italic        bool
	Underline     bool
	Blink         bool
	Reversed      bool
	Hidden        bool
	Strikethrough bool
}

// DefaultStyle returns the baseline style: white on black, normal
// intensity, no toggles.
func DefaultStyle() Style {
	return Style{Fg: White, Bg: Black, Intensity: Normal}
}

// IsDefault reports whether s equals the baseline style.
func (s Style) IsDefault() bool {
	return s == DefaultStyle()
}

// String renders the style as a compact, space separated description,
// e.g. "red/black bold underline".
func (s Style) String() string {
	var b strings.Builder
	b.WriteString(s.Fg.String())
	b.WriteByte('/')
	b.WriteString(s.Bg.String())
	if s.Intensity != Normal {
		b.WriteByte(' ')
		b.WriteString(s.Intensity.String())
	}
	flags := []struct {
		on   bool
		name string
	}{
		{s.Italic, "italic"},
		{s.Underline, "underline"},
		{s.Blink, "blink"},
		{s.Reversed, "reversed"},
		{s.Hidden, "hidden"},
		{s.Strikethrough, "strikethrough"},
	}
	for _, f := range flags {
		if f.on {
			b.WriteByte(' ')
			b.WriteString(f.name)
		}
	}
	return b.String()
}

// paramSeparator splits SGR parameters.
const paramSeparator = ";"

// applyParams applies a semicolon separated SGR parameter list left to
// right. An empty parameter resets, as does 0.
func (s *Style) applyParams(params string) {
	for _, p := range strings.Split(params, paramSeparator) {
		if p == "" {
			*s = DefaultStyle()
			continue
		}
		if code, ok := parseCode(p); ok {
			s.applyCode(code)
		}
	}
}

// parseCode parses an unsigned decimal parameter.
func parseCode(p string) (int, bool) {
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return 0, false
		}
	}
	code, err := strconv.Atoi(p)
	if err != nil {
		return 0, false
	}
	return code, true
}

// applyCode applies one SGR parameter. Unknown codes are ignored.
func (s *Style) applyCode(code int) {
	switch {
	case code == 0:
		*s = DefaultStyle()
	case code == 1:
		s.Intensity = Bold
	case code == 2:
		s.Intensity = Faint
	case code == 3:
		s.Italic = true
	case code == 4:
		s.Underline = true
	case code == 5:
		s.Blink = true
	case code == 7:
		s.Reversed = true
	case code == 8:
		s.Hidden = true
	case code == 9:
		s.Strikethrough = true
	case code == 22:
		s.Intensity = Normal
	case code == 23:
		s.Italic = false
	case code == 24:
		s.Underline = false
	case code == 25:
		s.Blink = false
	case code == 27:
		s.Reversed = false
	case code == 28:
		s.Hidden = false
	case code == 29:
		s.Strikethrough = false
	case code >= 30 && code <= 37:
		s.Fg = Color(code - 30)
	case code >= 40 && code <= 47:
		s.Bg = Color(code - 40)
	case code >= 90 && code <= 97:
		s.Fg = Color(code - 90 + 8)
	case code >= 100 && code <= 107:
		s.Bg = Color(code - 100 + 8)
	}
}
