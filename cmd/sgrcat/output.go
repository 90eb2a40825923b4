// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/sgrcat/output.go
// Summary: Output modes for categorized text.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/framegrace/sgrcat/internal/lineindex"
	"github.com/framegrace/sgrcat/sgr"
)

const (
	modeSlices = "slices"
	modeStrip  = "strip"
	modeLines  = "lines"
	modeJSON   = "json"
	modeView   = "view"
)

func validMode(mode string) bool {
	switch mode {
	case modeSlices, modeStrip, modeLines, modeJSON, modeView:
		return true
	}
	return false
}

// writeSlices prints one row per slice: byte span, style, quoted text.
func writeSlices(w io.Writer, slices []sgr.Slice) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range slices {
		fmt.Fprintf(tw, "%d-%d\t%s\t%q\n", s.Start, s.End, s.Style, s.Text)
	}
	return tw.Flush()
}

func writeStrip(w io.Writer, slices []sgr.Slice) error {
	_, err := io.WriteString(w, sgr.Strip(slices))
	return err
}

// writeLines prints each line followed by its styled runs.
func writeLines(w io.Writer, slices []sgr.Slice) error {
	it := sgr.Lines(slices)
	n := 1
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", n, sgr.Strip(line)); err != nil {
			return err
		}
		for _, s := range line {
			if s.Len() == 0 || s.Style.IsDefault() {
				continue
			}
			fmt.Fprintf(w, "      %q %s\n", s.Text, s.Style)
		}
		n++
	}
	return nil
}

type jsonStyle struct {
	Fg            string `json:"fg"`
	Bg            string `json:"bg"`
	Intensity     string `json:"intensity"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Blink         bool   `json:"blink,omitempty"`
	Reversed      bool   `json:"reversed,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

type jsonSlice struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Text  string    `json:"text"`
	Style jsonStyle `json:"style"`
}

func toJSONSlice(s sgr.Slice) jsonSlice {
	return jsonSlice{
		Start: s.Start,
		End:   s.End,
		Text:  s.Text,
		Style: jsonStyle{
			Fg:            s.Fg.String(),
			Bg:            s.Bg.String(),
			Intensity:     s.Intensity.String(),
			Italic:        s.Italic,
			Underline:     s.Underline,
			Blink:         s.Blink,
			Reversed:      s.Reversed,
			Hidden:        s.Hidden,
			Strikethrough: s.Strikethrough,
		},
	}
}

func writeJSON(w io.Writer, slices []sgr.Slice) error {
	out := make([]jsonSlice, len(slices))
	for i, s := range slices {
		out[i] = toJSONSlice(s)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeOutput(w io.Writer, mode string, slices []sgr.Slice) error {
	switch mode {
	case modeStrip:
		return writeStrip(w, slices)
	case modeLines:
		return writeLines(w, slices)
	case modeJSON:
		return writeJSON(w, slices)
	default:
		return writeSlices(w, slices)
	}
}

// writeResults prints search hits as source:line: text.
func writeResults(w io.Writer, results []lineindex.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s:%d: %s\n", r.Source, r.LineNo, r.Text); err != nil {
			return err
		}
	}
	return nil
}
