package vo

type Markdown string

// SidebarNode is one sidebar entry with its nested children.
type SidebarNode struct {
	Title      string        `json:"title"`
	Link       string        `json:"link"`
	Icon       string        `json:"icon,omitempty"`
	Public     bool          `json:"public"`
	IsEditable bool          `json:"isEditable"`
	Selected   bool          `json:"selected,omitempty"`
	Expanded   bool          `json:"expanded,omitempty"`
	Children   []SidebarNode `json:"children,omitempty"`
}

// Sidebar is the assembled tree plus the expansion set it was rendered with.
type Sidebar struct {
	Items    []SidebarNode `json:"items"`
	Expanded []string      `json:"expanded"`
}

// ToggleResult reports the outcome of flipping one item's expansion state.
type ToggleResult struct {
	Title    string   `json:"title"`
	Expanded bool     `json:"expanded"`
	Items    []string `json:"expandedItems"`
}
