// Package render turns an assembled sidebar tree into the markup the host
// page consumes. The structure is built first and rendered once; no markup is
// rewritten after the fact.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/foomo/workspace-sidebar/sidebar"
)

// CSS hooks and data attributes the host page selects on.
const (
	ClassSection   = "sidebar-section"
	ClassItem      = "sidebar-item"
	ClassAnchor    = "item-anchor"
	ClassChildren  = "sidebar-child-item"
	ClassHidden    = "hidden"
	ClassDropIcon  = "drop-icon"
	ClassItemIcon  = "sidebar-item-icon"
	AttrName       = "data-name"
	AttrParent     = "data-parent"
	AttrPublic     = "data-public"
	AttrItemIsIcon = "data-icon"
)

// Section builds the sidebar fragment for the given forest: one section
// container, per item an anchor plus (for parents) a nested child container.
// Collapsed child containers carry the hidden class; expanded ones do not.
func Section(roots []*sidebar.Node) *html.Node {
	section := element(atom.Div, attribute("class", ClassSection))
	for _, node := range roots {
		section.AppendChild(itemNode(node))
	}
	return section
}

// HTML renders the sidebar fragment to a string.
func HTML(roots []*sidebar.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, Section(roots)); err != nil {
		return "", fmt.Errorf("failed to render sidebar fragment: %w", err)
	}
	return buf.String(), nil
}

func itemNode(node *sidebar.Node) *html.Node {
	item := element(atom.Div,
		attribute("class", ClassItem),
		attribute(AttrName, node.Item.Title),
		attribute(AttrParent, node.Item.ParentPage),
		attribute(AttrPublic, strconv.FormatBool(node.Item.Public)),
	)

	anchor := element(atom.A,
		attribute("class", ClassAnchor),
		attribute("href", node.Item.Link()),
	)
	if node.Item.Icon != "" {
		icon := element(atom.Span,
			attribute("class", ClassItemIcon),
			attribute(AttrItemIsIcon, node.Item.Icon),
		)
		anchor.AppendChild(icon)
	}
	anchor.AppendChild(textNode(node.Item.Title))
	item.AppendChild(anchor)

	// Toggle control and child container only exist on parents.
	if len(node.Children) > 0 {
		anchor.AppendChild(dropIcon(node.Expanded))

		class := ClassChildren
		if !node.Expanded {
			class += " " + ClassHidden
		}
		children := element(atom.Div, attribute("class", class))
		for _, child := range node.Children {
			children.AppendChild(itemNode(child))
		}
		item.AppendChild(children)
	}

	return item
}

func dropIcon(expanded bool) *html.Node {
	direction := "down"
	if !expanded {
		direction = "right"
	}
	return element(atom.Span,
		attribute("class", ClassDropIcon),
		attribute("data-direction", direction),
	)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attribute(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
