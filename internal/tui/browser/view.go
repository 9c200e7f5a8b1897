package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-datesort/pkg/render"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString("  (empty outline)\n")
	}

	end := m.offset + m.viewportHeight()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		expanded := m.expanded[r.node.ID()]
		line := strings.Repeat("  ", len(r.path)-1) + render.Line(r.node, expanded, render.Options{})
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
