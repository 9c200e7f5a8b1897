package browser

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// FollowFunc resolves a node's action reference against the outline root.
type FollowFunc func(root *tree.Node, ref tree.ActionRef) (*tree.Node, tree.Path, error)

// row is a single visible line of the tree.
type row struct {
	node *tree.Node
	path tree.Path
}

// Model is the bubbletea model for browsing one outline.
type Model struct {
	title    string
	root     *tree.Node
	follow   FollowFunc
	expanded map[tree.NodeID]bool
	rows     []row
	cursor   int
	offset   int
	history  []*tree.Node // cursor positions before each followed action
	status   string
	keys     KeyMap
	help     help.Model
	width    int
	height   int
}

// New creates a browser over root. Nodes start expanded according to their
// open state.
func New(title string, root *tree.Node, follow FollowFunc) Model {
	if follow == nil {
		follow = tree.Follow
	}
	m := Model{
		title:    title,
		root:     root,
		follow:   follow,
		expanded: make(map[tree.NodeID]bool),
		keys:     keys,
		help:     help.New(),
	}
	tree.Walk(root, func(n *tree.Node, _ tree.Path) bool {
		m.expanded[n.ID()] = n.Open
		return true
	})
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the node under the cursor.
func (m Model) Selected() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

// Status returns the current status line message.
func (m Model) Status() string {
	return m.status
}

// rebuild flattens the visible part of the tree into rows, keeping the
// cursor on the same node when it is still visible.
func (m *Model) rebuild() {
	selected := m.Selected()

	m.rows = nil
	tree.Walk(m.root, func(n *tree.Node, p tree.Path) bool {
		m.rows = append(m.rows, row{node: n, path: p})
		return m.expanded[n.ID()]
	})

	if selected != nil && m.moveTo(selected) {
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// moveTo places the cursor on n if it is visible.
func (m *Model) moveTo(n *tree.Node) bool {
	for i, r := range m.rows {
		if r.node == n {
			m.cursor = i
			m.ensureVisible()
			return true
		}
	}
	return false
}

// reveal expands every ancestor on path so the node it leads to is visible.
func (m *Model) reveal(path tree.Path) {
	for i := 1; i < len(path); i++ {
		if n, err := tree.Resolve(m.root, path[:i]); err == nil {
			m.expanded[n.ID()] = true
		}
	}
}

func (m *Model) setAll(open bool) {
	tree.Walk(m.root, func(n *tree.Node, _ tree.Path) bool {
		m.expanded[n.ID()] = open
		return true
	})
}

func (m *Model) viewportHeight() int {
	if m.height == 0 {
		return len(m.rows)
	}
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureVisible() {
	h := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
