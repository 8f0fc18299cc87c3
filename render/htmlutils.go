package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// FindBySelector finds a node in the fragment using a minimal CSS selector:
// #id, .class or a tag name. That covers everything the host page contract
// needs; a full selector engine is not warranted here.
func FindBySelector(n *html.Node, selector string) (*html.Node, error) {
	if strings.HasPrefix(selector, "#") {
		return FindByAttr(n, "id", strings.TrimPrefix(selector, "#"))
	}
	if strings.HasPrefix(selector, ".") {
		return FindByClass(n, strings.TrimPrefix(selector, "."))
	}
	return findByTag(n, selector)
}

// FindByAttr finds the first node, depth first, whose attribute key equals val.
func FindByAttr(n *html.Node, key, val string) (*html.Node, error) {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == key && attr.Val == val {
				return n, nil
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, err := FindByAttr(c, key, val); err == nil {
			return result, nil
		}
	}

	return nil, fmt.Errorf("element with %s '%s' not found", key, val)
}

// FindByClass finds the first node, depth first, carrying the given class.
func FindByClass(n *html.Node, class string) (*html.Node, error) {
	if n.Type == html.ElementNode && HasClass(n, class) {
		return n, nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, err := FindByClass(c, class); err == nil {
			return result, nil
		}
	}

	return nil, fmt.Errorf("element with class '%s' not found", class)
}

func findByTag(n *html.Node, tag string) (*html.Node, error) {
	if n.Type == html.ElementNode && n.Data == tag {
		return n, nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result, err := findByTag(c, tag); err == nil {
			return result, nil
		}
	}

	return nil, fmt.Errorf("element with tag '%s' not found", tag)
}

// HasClass reports whether the node's class attribute contains class as a
// whole word.
func HasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// Attr returns the value of the node's attribute key, or the empty string.
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
