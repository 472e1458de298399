package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements that imply a line break around their content.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "header": true,
	"footer": true, "ul": true, "ol": true, "li": true, "table": true,
	"tr": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "br": true, "hr": true,
}

// FromHTML converts an HTML resume export into normalized plain text.
// Script, style, and head content is removed; block elements become line
// breaks and list items become bullet lines, so the result feeds the
// extractor the same way a plain-text resume would.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, head").Remove()

	var sb strings.Builder
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	for _, node := range body.Nodes {
		renderNode(&sb, node)
	}

	return CleanText(sb.String()), nil
}

// renderNode walks the node tree collecting text, inserting newlines around
// block elements and a dash marker before list items.
func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(innerSpaceRe.ReplaceAllString(n.Data, " "))
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		if blockTags[n.Data] {
			sb.WriteString("\n")
		}
		if n.Data == "li" {
			sb.WriteString("- ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}
