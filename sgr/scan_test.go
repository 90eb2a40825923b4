// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package sgr

import (
	"reflect"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Match
	}{
		{
			name: "empty",
			text: "",
			want: []Match{},
		},
		{
			name: "plain text",
			text: "hello",
			want: []Match{},
		},
		{
			name: "two sequences",
			text: "Hello, \x1b[31;4mworld\x1b[0m!",
			want: []Match{
				{Start: 7, End: 14, Text: "\x1b[31;4m"},
				{Start: 19, End: 23, Text: "\x1b[0m"},
			},
		},
		{
			name: "multibyte text around sequences",
			text: "👋, \x1b[31;4m🌍\x1b[0m!",
			want: []Match{
				{Start: 6, End: 13, Text: "\x1b[31;4m"},
				{Start: 17, End: 21, Text: "\x1b[0m"},
			},
		},
		{
			name: "unterminated sequence dropped",
			text: "oops\x1b[\n",
			want: []Match{},
		},
		{
			name: "introducer at end of text",
			text: "abc\x1b[",
			want: []Match{},
		},
		{
			name: "lone escape",
			text: "a\x1bb",
			want: []Match{},
		},
		{
			name: "adjacent sequences",
			text: "\x1b[1m\x1b[2m\x1b[m",
			want: []Match{
				{Start: 0, End: 4, Text: "\x1b[1m"},
				{Start: 4, End: 8, Text: "\x1b[2m"},
				{Start: 8, End: 11, Text: "\x1b[m"},
			},
		},
		{
			name: "non-SGR sequences",
			text: "\x1b[?25l\x1b[2Jx",
			want: []Match{
				{Start: 0, End: 6, Text: "\x1b[?25l"},
				{Start: 6, End: 10, Text: "\x1b[2J"},
			},
		},
		{
			name: "terminated sequence before an unterminated one",
			text: "\x1b[32mok\x1b[1;2",
			want: []Match{
				{Start: 0, End: 5, Text: "\x1b[32m"},
			},
		},
		{
			name: "introducer closes on bracket of a following introducer",
			text: "\x1b[\x1b[31m",
			want: []Match{
				{Start: 0, End: 4, Text: "\x1b[\x1b["},
			},
		},
		{
			name: "invalid utf-8 advances one byte",
			text: "\xff\xfe\x1b[0m",
			want: []Match{
				{Start: 2, End: 6, Text: "\x1b[0m"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Scan(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
			for _, m := range got {
				if tt.text[m.Start:m.End] != m.Text {
					t.Errorf("match text %q does not equal text[%d:%d]", m.Text, m.Start, m.End)
				}
			}
		})
	}
}

func TestScanOrderingAndBound(t *testing.T) {
	inputs := []string{
		"\x1b[30mH\x1b[31me\x1b[32ml\x1b[33ml\x1b[34mo",
		"\x1b\x1b\x1b[1m\x1b",
		"日本\x1b[1m語\x1b[0m\x1b[",
	}
	for _, text := range inputs {
		matches := Scan(text)
		if n := strings.Count(text, "\x1b"); len(matches) > n {
			t.Errorf("Scan(%q) returned %d matches for %d ESC bytes", text, len(matches), n)
		}
		prevEnd := 0
		for _, m := range matches {
			if m.Start < prevEnd {
				t.Errorf("Scan(%q): match at %d overlaps previous end %d", text, m.Start, prevEnd)
			}
			if m.End <= m.Start {
				t.Errorf("Scan(%q): empty match at %d", text, m.Start)
			}
			prevEnd = m.End
		}
	}
}

func TestMatchParamsAndFinal(t *testing.T) {
	m := Scan("x\x1b[31;4my")[0]
	if got := m.Params(); got != "31;4" {
		t.Errorf("Params() = %q, want %q", got, "31;4")
	}
	if got := m.Final(); got != 'm' {
		t.Errorf("Final() = %q, want %q", got, 'm')
	}

	m = Scan("\x1b[m")[0]
	if got := m.Params(); got != "" {
		t.Errorf("Params() = %q, want empty", got)
	}
}
