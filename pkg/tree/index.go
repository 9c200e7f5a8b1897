package tree

// Index maps node identifiers to their path from a root. It is built with a
// single traversal so repeated lookups do not walk the tree again.
type Index struct {
	paths map[NodeID]Path
}

// NewIndex indexes every descendant of root. Nodes for which skip returns
// true are neither indexed nor descended into. When the same node is reached
// twice the first pre-order path wins.
func NewIndex(root *Node, skip func(*Node) bool) *Index {
	idx := &Index{paths: make(map[NodeID]Path)}
	Walk(root, func(n *Node, path Path) bool {
		if skip != nil && skip(n) {
			return false
		}
		if _, seen := idx.paths[n.ID()]; !seen {
			idx.paths[n.ID()] = path
		}
		return true
	})
	return idx
}

// PathOf returns the indexed path of n.
func (idx *Index) PathOf(n *Node) (Path, bool) {
	p, ok := idx.paths[n.ID()]
	return p, ok
}

// Len returns the number of indexed nodes.
func (idx *Index) Len() int {
	return len(idx.paths)
}
