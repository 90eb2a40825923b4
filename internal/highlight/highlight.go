// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/highlight/highlight.go
// Summary: Renders source text to ANSI-escaped output through Chroma.
// Usage: out, err := highlight.New("monokai", "").Highlight("main.go", src)
//
// Language is resolved from an explicit name, then go-enry detection over
// filename and content, then Chroma's own content analysis.

package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const (
	DefaultStyle     = "monokai"
	DefaultFormatter = "terminal16"
)

// Highlighter renders source with a Chroma style and terminal formatter.
type Highlighter struct {
	Style     string
	Formatter string
	// Language forces a lexer by name; empty means detect.
	Language string
}

// New returns a Highlighter, substituting defaults for empty names.
func New(style, formatter string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	if formatter == "" {
		formatter = DefaultFormatter
	}
	return &Highlighter{Style: style, Formatter: formatter}
}

// Detect returns a Chroma lexer alias for the file, or "" if unknown.
func Detect(filename string, content []byte) string {
	return strings.ToLower(enry.GetLanguage(filename, content))
}

// Highlight tokenizes content and returns it with escape sequences applied.
func (h *Highlighter) Highlight(filename string, content []byte) (string, error) {
	text := string(content)
	lexer := chroma.Coalesce(h.lexer(filename, content, text))

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lexer.Config().Name, err)
	}

	var b strings.Builder
	if err := formatters.Get(h.Formatter).Format(&b, styles.Get(h.Style), it); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return b.String(), nil
}

func (h *Highlighter) lexer(filename string, content []byte, text string) chroma.Lexer {
	if h.Language != "" {
		if l := lexers.Get(h.Language); l != nil {
			return l
		}
	}
	if name := Detect(filename, content); name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}
