package sidebar

// Node is one entry in the assembled sidebar tree. A node exclusively owns
// its children; re-parenting during the build moves the whole subtree.
type Node struct {
	Item     PageItem
	Expanded bool
	Children []*Node
}

// BuildTree assembles the flat item list into a forest. Items with an empty
// ParentPage are roots; every other item is attached under the node whose
// title matches its ParentPage, preserving input order among siblings.
// An item whose ParentPage matches no title in the list stays at root level,
// silently. Cycles are an unchecked precondition of the input.
func BuildTree(items []PageItem) []*Node {
	all := make([]*Node, 0, len(items))
	byTitle := make(map[string]*Node, len(items))
	for _, item := range items {
		node := &Node{Item: item}
		all = append(all, node)
		byTitle[item.Title] = node
	}

	attached := make(map[*Node]bool, len(all))
	for _, node := range all {
		if node.Item.ParentPage == "" {
			continue
		}
		parent, ok := byTitle[node.Item.ParentPage]
		if !ok || parent == node {
			// orphan: no matching parent title, keep it at root level
			continue
		}
		parent.Children = append(parent.Children, node)
		attached[node] = true
	}

	roots := make([]*Node, 0, len(all))
	for _, node := range all {
		if !attached[node] {
			roots = append(roots, node)
		}
	}
	return roots
}

// ApplyExpansion marks every node whose title is in the expansion set. Nodes
// without children keep the flag too, so a later rebuild that gives them
// children starts out expanded.
func ApplyExpansion(roots []*Node, expansion Expansion) {
	for _, node := range roots {
		node.Expanded = expansion.Contains(node.Item.Title)
		ApplyExpansion(node.Children, expansion)
	}
}

// Walk visits every node of the forest depth first, parents before children.
func Walk(roots []*Node, visit func(*Node)) {
	for _, node := range roots {
		visit(node)
		Walk(node.Children, visit)
	}
}
