package registry

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
)

// findAll yields every element under n (inclusive) whose tag is in tags, in
// document order.
func findAll(n *html.Node, tags ...string) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		walk(n, tags, yield)
	}
}

func walk(n *html.Node, tags []string, yield func(*html.Node) bool) bool {
	if n.Type == html.ElementNode {
		for _, tag := range tags {
			if n.Data == tag {
				if !yield(n) {
					return false
				}
				break
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, tags, yield) {
			return false
		}
	}
	return true
}

// findFirst returns the first matching element under n, if any.
func findFirst(n *html.Node, tags ...string) (*html.Node, bool) {
	for found := range findAll(n, tags...) {
		return found, true
	}
	return nil, false
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the element's class attribute contains the given
// class token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attrVal(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// nodeText returns the concatenated text content of n with runs of
// whitespace collapsed to single spaces.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteByte(' ')
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
