package registry

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//nolint:gochecknoglobals // goldmark.Markdown is safe for concurrent use.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderHTML renders a descriptor's content sections and FAQ as an HTML
// fragment. Empty sections are omitted.
func RenderHTML(d ToolDescriptor) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(d.Title))
	if d.Description != "" {
		fmt.Fprintf(&buf, "<p class=\"description\">%s</p>\n", html.EscapeString(d.Description))
	}

	sections := []struct{ heading, body string }{
		{"What is the " + d.Title + "?", d.Content.What},
		{"How to use it", d.Content.How},
		{"Formula", d.Content.Formula},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&buf, "<h2>%s</h2>\n", html.EscapeString(s.heading))
		if err := markdown.Convert([]byte(s.body), &buf); err != nil {
			return "", fmt.Errorf("rendering %s: %w", s.heading, err)
		}
	}

	if len(d.FAQ) > 0 {
		buf.WriteString("<h2>Frequently Asked Questions</h2>\n")
		for _, q := range d.FAQ {
			fmt.Fprintf(&buf, "<h3>%s</h3>\n", html.EscapeString(q.Question))
			if err := markdown.Convert([]byte(q.Answer), &buf); err != nil {
				return "", fmt.Errorf("rendering FAQ %q: %w", q.Question, err)
			}
		}
	}
	return buf.String(), nil
}

// RenderMarkdown renders the same content as a markdown document.
func RenderMarkdown(d ToolDescriptor) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", d.Title)
	if d.Description != "" {
		fmt.Fprintf(&buf, "%s\n\n", d.Description)
	}
	if d.Content.What != "" {
		fmt.Fprintf(&buf, "## What is the %s?\n\n%s\n\n", d.Title, d.Content.What)
	}
	if d.Content.How != "" {
		fmt.Fprintf(&buf, "## How to use it\n\n%s\n\n", d.Content.How)
	}
	if d.Content.Formula != "" {
		fmt.Fprintf(&buf, "## Formula\n\n%s\n\n", d.Content.Formula)
	}
	for _, q := range d.FAQ {
		fmt.Fprintf(&buf, "**%s**\n\n%s\n\n", q.Question, q.Answer)
	}
	return buf.String()
}
