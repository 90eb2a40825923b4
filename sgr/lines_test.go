// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr

import (
	"strings"
	"testing"
)

func lineTexts(lines [][]Slice) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Strip(l)
	}
	return out
}

func TestLinesStyleCrossesBoundary(t *testing.T) {
	text := "\x1b[32mhello, \x1b[0m\x1b[31mworld\x1b[0m\nhow are you"
	it := Lines(Categorize(text))

	first, ok := it.Next()
	if !ok {
		t.Fatal("expected first line")
	}
	if len(first) != 2 {
		t.Fatalf("first line has %d slices, want 2: %+v", len(first), first)
	}
	if first[0].Text != "hello, " || first[0].Fg != Green {
		t.Errorf("first[0] = %q %v, want green %q", first[0].Text, first[0].Fg, "hello, ")
	}
	if first[1].Text != "world" || first[1].Fg != Red {
		t.Errorf("first[1] = %q %v, want red %q", first[1].Text, first[1].Fg, "world")
	}

	second, ok := it.Next()
	if !ok {
		t.Fatal("expected second line")
	}
	if len(second) != 1 || second[0].Text != "how are you" || !second[0].Style.IsDefault() {
		t.Errorf("second line = %+v", second)
	}

	if extra, ok := it.Next(); ok {
		t.Errorf("unexpected extra line %+v", extra)
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator resumed after exhaustion")
	}
}

func TestLinesCRLF(t *testing.T) {
	text := "\x1b[32mhello, \x1b[0m\x1b[31mworld\x1b[0m\nhow are you\r\ntoday"
	got := lineTexts(SplitLines(Categorize(text)))
	want := []string{"hello, world", "how are you", "today"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestLinesOnlyNewlines(t *testing.T) {
	lines := SplitLines(Categorize("\n\n\n\n"))
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lineTexts(lines))
	}
	for i, l := range lines {
		if len(l) != 1 {
			t.Errorf("line %d has %d slices, want 1", i, len(l))
			continue
		}
		if l[0].Text != "" || !l[0].Style.IsDefault() {
			t.Errorf("line %d = %+v, want empty baseline slice", i, l[0])
		}
	}
}

func TestLinesLoneCarriageReturn(t *testing.T) {
	got := lineTexts(SplitLines(Categorize("a\rb\r\nc\r")))
	want := []string{"a\rb", "c\r"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestLinesTrailingNewline(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"abc\n", []string{"abc"}},
		{"abc\ndef", []string{"abc", "def"}},
		{"\x1b[31mabc\n\x1b[0m", []string{"abc"}},
	}
	for _, tt := range tests {
		got := lineTexts(SplitLines(Categorize(tt.text)))
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLinesSuppressesEmptyLeadingFragment(t *testing.T) {
	// The red slice starts with the break that ends the plain line.
	lines := SplitLines(Categorize("plain\x1b[31m\nred"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lineTexts(lines))
	}
	if len(lines[0]) != 1 || lines[0][0].Text != "plain" {
		t.Errorf("first line = %+v, want only %q", lines[0], "plain")
	}
	if len(lines[1]) != 1 || lines[1][0].Text != "red" || lines[1][0].Fg != Red {
		t.Errorf("second line = %+v", lines[1])
	}
}

func TestLinesMultipleBreaksInOneSlice(t *testing.T) {
	text := "\x1b[1mone\ntwo\nthree\x1b[0m tail\nlast"
	lines := SplitLines(Categorize(text))
	got := lineTexts(lines)
	want := []string{"one", "two", "three tail", "last"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for _, s := range lines[1] {
		if s.Intensity != Bold {
			t.Errorf("line 2 slice %q lost bold", s.Text)
		}
	}
	third := lines[2]
	if len(third) != 2 || third[0].Intensity != Bold || third[1].Intensity != Normal {
		t.Errorf("third line = %+v", third)
	}
}

func TestLinesOffsetsPointIntoInput(t *testing.T) {
	text := "\x1b[33mab\r\ncd\n\x1b[44mef\ngh"
	for _, line := range SplitLines(Categorize(text)) {
		for _, s := range line {
			if text[s.Start:s.End] != s.Text {
				t.Errorf("slice %q has offsets [%d,%d) -> %q", s.Text, s.Start, s.End, text[s.Start:s.End])
			}
		}
	}
}

func TestLinesReconstructText(t *testing.T) {
	inputs := []string{
		"\x1b[32mhello, \x1b[0m\x1b[31mworld\x1b[0m\nhow are you\ntoday",
		"a\nb\n\x1b[1mc\nd",
		"x\x1b[31my\nz",
	}
	for _, text := range inputs {
		slices := Categorize(text)
		joined := strings.Join(lineTexts(SplitLines(slices)), "\n")
		if joined != Strip(slices) {
			t.Errorf("joined lines %q, want %q", joined, Strip(slices))
		}
	}
}
