// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"\x1b[30mH\x1b[31me\x1b[32ml\x1b[33ml\x1b[34mo", "Hello"},
		{"\x1b[?25l\x1b[2J\x1b[m\x1b[HPinging 127.0.0.1\r\n", "Pinging 127.0.0.1\r\n"},
		{"keep \x1b[31", "keep \x1b[31"},
	}
	for _, tt := range tests {
		if got := StripString(tt.input); got != tt.want {
			t.Errorf("StripString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripSubSlices(t *testing.T) {
	slices := []Slice{
		{Text: "ab", Start: 0, End: 2, Style: DefaultStyle()},
		{Text: "", Start: 5, End: 5, Style: DefaultStyle()},
		{Text: "cd", Start: 5, End: 7, Style: DefaultStyle()},
	}
	if got := Strip(slices); got != "abcd" {
		t.Errorf("Strip = %q, want %q", got, "abcd")
	}
	if got := Strip(nil); got != "" {
		t.Errorf("Strip(nil) = %q", got)
	}
}
