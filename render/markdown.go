package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/foomo/workspace-sidebar/sidebar"
)

// Markdown renders the sidebar tree as a nested markdown outline, one linked
// bullet per item. Expansion state does not apply here; the outline always
// shows the full tree.
func Markdown(roots []*sidebar.Node) (string, error) {
	markdown, err := htmltomarkdown.ConvertNode(outline(roots))
	if err != nil {
		return "", fmt.Errorf("failed to convert sidebar outline to markdown: %w", err)
	}
	return string(markdown), nil
}

// outline builds a plain ul/li representation of the forest, which converts
// cleanly to indented markdown bullets.
func outline(roots []*sidebar.Node) *html.Node {
	list := element(atom.Ul)
	for _, node := range roots {
		entry := element(atom.Li)
		anchor := element(atom.A, attribute("href", node.Item.Link()))
		anchor.AppendChild(textNode(node.Item.Title))
		entry.AppendChild(anchor)
		if len(node.Children) > 0 {
			entry.AppendChild(outline(node.Children))
		}
		list.AppendChild(entry)
	}
	return list
}
