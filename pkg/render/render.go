// Package render draws outline trees for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// Options controls how a tree is rendered.
type Options struct {
	Plain       bool // no ANSI styling
	ShowAll     bool // ignore the open state of nodes
	ShowActions bool // append each node's action reference
}

var palette = map[tree.Color]lipgloss.Color{
	tree.ColorBlack:   lipgloss.Color("0"),
	tree.ColorRed:     lipgloss.Color("1"),
	tree.ColorGreen:   lipgloss.Color("2"),
	tree.ColorYellow:  lipgloss.Color("3"),
	tree.ColorBlue:    lipgloss.Color("4"),
	tree.ColorMagenta: lipgloss.Color("5"),
	tree.ColorCyan:    lipgloss.Color("6"),
	tree.ColorWhite:   lipgloss.Color("7"),
	tree.ColorGray:    lipgloss.Color("8"),
	tree.ColorDkGray:  lipgloss.Color("238"),
	tree.ColorLtGray:  lipgloss.Color("250"),
}

var actionStyle = lipgloss.NewStyle().Faint(true)

// Style returns the lipgloss style for a node color.
func Style(c tree.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := palette[c]; ok {
		style = style.Foreground(fg)
	}
	return style
}

// Marker returns the fold marker shown before a node's label.
func Marker(n *tree.Node, expanded bool) string {
	switch {
	case !n.HasChildren():
		return "•"
	case expanded:
		return "▾"
	}
	return "▸"
}

// Line renders a single node without indentation.
func Line(n *tree.Node, expanded bool, opts Options) string {
	label := n.Name
	if !opts.Plain {
		label = Style(n.Color).Render(label)
	}
	line := Marker(n, expanded) + " " + label
	if opts.ShowActions && n.Action != "" {
		action := fmt.Sprintf("→ %s", n.Action)
		if !opts.Plain {
			action = actionStyle.Render(action)
		}
		line += "  " + action
	}
	return line
}

// Tree writes the descendants of root, one per line, indented by depth.
func Tree(w io.Writer, root *tree.Node, opts Options) error {
	var err error
	tree.Walk(root, func(n *tree.Node, p tree.Path) bool {
		if err != nil {
			return false
		}
		expanded := opts.ShowAll || n.Open
		indent := strings.Repeat("  ", len(p)-1)
		_, err = fmt.Fprintln(w, indent+Line(n, expanded, opts))
		return expanded
	})
	return err
}
