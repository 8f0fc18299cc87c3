package sidebar

import "strings"

// PageItem describes a single sidebar entry as delivered by the workspace
// metadata service. Title is unique within a menu. ParentPage is either empty
// (root item) or the Title of another item in the same list.
type PageItem struct {
	Title      string `json:"title"`
	ParentPage string `json:"parent_page"`
	Public     bool   `json:"public"`
	IsEditable bool   `json:"is_editable"`
	Icon       string `json:"icon,omitempty"`
	CustomLink string `json:"custom_link,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
}

// Link returns the target the item's anchor points at. A custom link wins,
// otherwise the workspace route is derived from the title.
func (p PageItem) Link() string {
	if p.CustomLink != "" {
		return p.CustomLink
	}
	return "/workspace/" + slug(p.Title)
}

func slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
