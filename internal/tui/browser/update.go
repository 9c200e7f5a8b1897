package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.ensureVisible()

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.ensureVisible()

		case key.Matches(msg, m.keys.GoToTop):
			m.cursor = 0
			m.ensureVisible()

		case key.Matches(msg, m.keys.GoToBottom):
			m.cursor = len(m.rows) - 1
			m.ensureVisible()

		case key.Matches(msg, m.keys.Expand):
			if n := m.Selected(); n != nil && n.HasChildren() {
				m.expanded[n.ID()] = true
				m.rebuild()
			}

		case key.Matches(msg, m.keys.Collapse):
			m.collapseOrParent()

		case key.Matches(msg, m.keys.Toggle):
			if n := m.Selected(); n != nil && n.HasChildren() {
				m.expanded[n.ID()] = !m.expanded[n.ID()]
				m.rebuild()
			}

		case key.Matches(msg, m.keys.ExpandAll):
			m.setAll(true)
			m.rebuild()

		case key.Matches(msg, m.keys.CollapseAll):
			m.setAll(false)
			m.rebuild()

		case key.Matches(msg, m.keys.Follow):
			m.followSelected()

		case key.Matches(msg, m.keys.Back):
			m.back()
		}
	}
	return m, nil
}

func (m *Model) collapseOrParent() {
	n := m.Selected()
	if n == nil {
		return
	}
	if n.HasChildren() && m.expanded[n.ID()] {
		m.expanded[n.ID()] = false
		m.rebuild()
		return
	}

	p := m.rows[m.cursor].path
	if len(p) < 2 {
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if len(m.rows[i].path) == len(p)-1 {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

// followSelected executes the selected node's action: the cursor jumps to
// the node the action points at, expanding its ancestors.
func (m *Model) followSelected() {
	n := m.Selected()
	if n == nil {
		return
	}
	if n.Action == "" {
		m.status = "No action on this bookmark"
		return
	}

	target, path, err := m.follow(m.root, n.Action)
	if err != nil {
		m.status = fmt.Sprintf("Cannot follow action: %v", err)
		return
	}

	m.history = append(m.history, n)
	m.reveal(path)
	m.rebuild()
	m.moveTo(target)
	m.status = fmt.Sprintf("Jumped to %s", path)
}

func (m *Model) back() {
	if len(m.history) == 0 {
		m.status = "Nothing to go back to"
		return
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	if !m.moveTo(prev) {
		m.status = "Previous bookmark is hidden"
	}
}
