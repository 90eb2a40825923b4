// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/doc.go
// Summary: Package documentation for the SGR categorizer.

// Package sgr parses text containing ANSI control sequences and returns the
// plain-text runs between them, each tagged with the SGR (Select Graphic
// Rendition) style in effect.
//
// The package only consumes escaped text. Producing it is left to other tools.
//
//	slices := sgr.Categorize("Hello, \x1b[31mworld\x1b[0m!")
//	for _, s := range slices {
//		fmt.Println(s.Text, s.Fg)
//	}
//
// Slices alias the input string; Start and End are byte offsets into it.
package sgr
