package tree

import (
	"sync/atomic"
)

// NodeID is a synthetic identifier handed out the first time a node is
// asked for one. It stays the same for the life of the node.
type NodeID uint64

var lastID atomic.Uint64

// ActionRef is an opaque handle the host can execute to jump to a node.
// The empty ref means "no action".
type ActionRef string

// Node is a single entry of an outline. A nil Children slice means the node
// has no children at all; an empty non-nil slice means it has an empty
// child list. Both are preserved by the document formats.
type Node struct {
	Name     string
	Action   ActionRef
	Open     bool
	Color    Color
	Children []*Node

	id NodeID
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return &Node{Open: true}
}

// ID returns the node's synthetic identifier, assigning one on first use.
func (n *Node) ID() NodeID {
	if n.id == 0 {
		n.id = NodeID(lastID.Add(1))
	}
	return n.id
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// CreateChild creates a new child with the given name and action at index.
// Indexes past the end append; negative indexes insert at the front.
func (n *Node) CreateChild(name string, action ActionRef, index int) *Node {
	child := &Node{Name: name, Action: action, Open: true}
	n.InsertChild(child, index)
	return child
}

// InsertChild places an existing node under n at index. The caller is
// responsible for detaching child from any previous parent first.
func (n *Node) InsertChild(child *Node, index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(n.Children) {
		n.Children = append(n.Children, child)
		return
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
}

// Walk visits every descendant of root in pre-order, passing the node and its
// path from root. Returning false from fn skips that node's subtree.
func Walk(root *Node, fn func(n *Node, path Path) bool) {
	walk(root, nil, fn)
}

func walk(parent *Node, prefix Path, fn func(n *Node, path Path) bool) {
	for i, child := range parent.Children {
		path := prefix.Child(i)
		if !fn(child, path) {
			continue
		}
		walk(child, path, fn)
	}
}

// Count returns the number of descendants of root.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node, Path) bool {
		total++
		return true
	})
	return total
}
