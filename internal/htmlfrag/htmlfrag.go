// Package htmlfrag implements the small amount of HTML handling the
// heading block needs: reading a pasted element and sanitizing inline
// markup down to an allow-list.
package htmlfrag

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseElement parses fragment and returns the tag name and text
// content of its first element. ok is false when the fragment holds no
// element at all.
func ParseElement(fragment string) (tag, text string, ok bool) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return "", "", false
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n.Data, textContent(n), true
		}
	}
	return "", "", false
}

// TextContent returns the concatenated text of every node in fragment,
// markup stripped.
func TextContent(fragment string) string {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return fragment
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(textContent(n))
	}
	return sb.String()
}

// SanitizeInline strips markup from fragment, keeping the text content
// of every node and re-emitting only the tags present in allowed. Kept
// tags are written in void form (the usual allow-list here is just
// "br"); text is re-escaped on the way out.
func SanitizeInline(fragment string, allowed map[string]bool) string {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return html.EscapeString(fragment)
	}
	var sb strings.Builder
	for _, n := range nodes {
		writeSanitized(&sb, n, allowed)
	}
	return sb.String()
}

func parseFragment(fragment string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(strings.NewReader(fragment), ctx)
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func writeSanitized(sb *strings.Builder, n *html.Node, allowed map[string]bool) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
		if allowed[n.Data] {
			sb.WriteString("<")
			sb.WriteString(n.Data)
			sb.WriteString(">")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeSanitized(sb, c, allowed)
	}
}
