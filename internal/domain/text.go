package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// TeaserWords is how many words of the description a list card shows
const TeaserWords = 50

// PlainText converts rendered HTML content into plain text. Entities are
// unescaped and tags dropped; whitespace runs collapse to single spaces.
func PlainText(rendered string) string {
	if strings.TrimSpace(rendered) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		// The tokenizer is lenient, so this is rare; fall back to the raw text.
		return strings.Join(strings.Fields(html.UnescapeString(rendered)), " ")
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteString(" ")
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}

// Teaser returns the first limit words of text, with "..." appended when
// anything was cut.
func Teaser(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "..."
}

// Description returns the exhibitor's content as plain text
func (e Exhibitor) Description() string {
	return PlainText(e.ContentHTML)
}
