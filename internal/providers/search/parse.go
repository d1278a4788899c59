package search

import (
	"net/url"
	"slices"
	"strings"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/advogado/internal/core"
	"golang.org/x/net/html"
)

// ParseResults extracts organic results from a DuckDuckGo HTML page.
func ParseResults(doc *html.Node, limit int) []core.SearchResult {
	var results []core.SearchResult

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if len(results) >= limit {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, "result__body") {
			if !isAd(n) {
				if r, ok := parseResult(n); ok {
					results = append(results, r)
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return results
}

func parseResult(n *html.Node) (core.SearchResult, bool) {
	titleNode := findByClass(n, "result__a")
	if titleNode == nil {
		return core.SearchResult{}, false
	}

	r := core.SearchResult{
		Title:  textContent(titleNode),
		Source: resolveHref(attr(titleNode, "href")),
	}

	if snippetNode := findByClass(n, "result__snippet"); snippetNode != nil {
		r.Snippet = snippetText(snippetNode)
	}
	if r.Source == "" {
		if urlNode := findByClass(n, "result__url"); urlNode != nil {
			r.Source = textContent(urlNode)
		}
	}

	if r.Title == "" || r.Snippet == "" {
		return core.SearchResult{}, false
	}
	return r, true
}

func isAd(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if hasClass(p, "result--ad") {
			return true
		}
	}
	return false
}

// resolveHref unwraps DuckDuckGo redirect links (//duckduckgo.com/l/?uddg=...).
func resolveHref(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func snippetText(n *html.Node) string {
	text, err := html2text.FromHTMLNode(n, html2text.Options{OmitLinks: true})
	if err != nil {
		return textContent(n)
	}
	return strings.Join(strings.Fields(text), " ")
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
