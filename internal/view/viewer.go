// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/view/viewer.go
// Summary: Scrollable pager over categorized lines.
// Usage: v := view.NewViewer(lines); err := v.Run(screen)

package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/sgrcat/sgr"
)

// Viewer pages through categorized lines on a tcell screen.
type Viewer struct {
	lines [][]sgr.Slice
	top   int
}

// NewViewer creates a viewer positioned at the first line.
func NewViewer(lines [][]sgr.Slice) *Viewer {
	return &Viewer{lines: lines}
}

// Top returns the index of the first visible line.
func (v *Viewer) Top() int { return v.top }

// Scroll moves the view by delta lines, clamped so the last page stays full.
func (v *Viewer) Scroll(delta, height int) {
	v.top += delta
	if maxTop := len(v.lines) - height; v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}
}

// Draw renders the visible lines.
func (v *Viewer) Draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	for row := 0; row < height; row++ {
		idx := v.top + row
		if idx >= len(v.lines) {
			break
		}
		DrawLine(screen, 0, row, width, v.lines[idx])
	}
	screen.Show()
}

// HandleKey applies a key event. It returns false when the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey, height int) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.Scroll(-1, height)
	case tcell.KeyDown, tcell.KeyEnter:
		v.Scroll(1, height)
	case tcell.KeyPgUp:
		v.Scroll(-height, height)
	case tcell.KeyPgDn:
		v.Scroll(height, height)
	case tcell.KeyHome:
		v.top = 0
	case tcell.KeyEnd:
		v.Scroll(len(v.lines), height)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'j':
			v.Scroll(1, height)
		case 'k':
			v.Scroll(-1, height)
		case ' ':
			v.Scroll(height, height)
		case 'g':
			v.top = 0
		case 'G':
			v.Scroll(len(v.lines), height)
		}
	}
	return true
}

// Run draws and processes events until the user quits. The caller owns
// screen initialization and Fini.
func (v *Viewer) Run(screen tcell.Screen) error {
	v.Draw(screen)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			_, height := screen.Size()
			v.Scroll(0, height)
		case *tcell.EventKey:
			_, height := screen.Size()
			if !v.HandleKey(ev, height) {
				return nil
			}
		}
		v.Draw(screen)
	}
}
