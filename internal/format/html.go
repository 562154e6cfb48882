// Package format turns decoded RescueGroups JSON trees into Markdown. Raw
// JSON output, when a caller asks for it, is produced by the tool handlers
// without going through this package. Every function
// here is a pure function of its input: no network, no caching, no
// mutation of the source tree.
package format

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes tags and decodes entities from an upstream description
// field, deterministically and without ever executing markup. Upstream
// animal descriptions are given as HTML; this walks the token stream and
// keeps only text nodes, inserting a blank line between block elements so
// paragraphs don't run together.
func StripHTML(raw string) string {
	if raw == "" {
		return ""
	}
	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(collapseBlankLines(b.String()))
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "p", "br", "div", "li":
				b.WriteByte('\n')
			}
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
