package browser

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// sortedOutline mirrors the shape produced by a date sort.
func sortedOutline() *tree.Node {
	root := tree.NewRoot()
	sorted := root.CreateChild("Sorted by Date", "", 0)
	original := root.CreateChild("Original Bookmarks", "", 1)
	sorted.Open = false
	original.Open = false

	notes := original.CreateChild("Notes", "", 0)
	notes.Open = false
	notes.CreateChild("2020-07-15 Summary", "", 0)

	ref := tree.EncodeRef(tree.Path{1, 0, 0})
	entry := sorted.CreateChild("2020-07-15", ref, 0)
	entry.Open = false
	entry.CreateChild("2020-07-15 Summary", ref, 0)
	return root
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyBack  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}
)

func TestNewRespectsOpenState(t *testing.T) {
	m := New("test", sortedOutline(), nil)

	require.Len(t, m.rows, 2)
	assert.Equal(t, "Sorted by Date", m.Selected().Name)
}

func TestExpandCollapseNavigation(t *testing.T) {
	m := New("test", sortedOutline(), nil)

	m = press(t, m, keyRight, keyDown)
	assert.Equal(t, "2020-07-15", m.Selected().Name)
	assert.Len(t, m.rows, 3)

	// Left on a collapsed child moves to its parent, then collapses it.
	m = press(t, m, keyLeft)
	assert.Equal(t, "Sorted by Date", m.Selected().Name)
	m = press(t, m, keyLeft)
	assert.Len(t, m.rows, 2)

	m = press(t, m, keyUp, keyUp)
	assert.Equal(t, 0, m.cursor)
}

func TestUpdateLeavesPreviousModelRows(t *testing.T) {
	m := press(t, New("test", sortedOutline(), nil), keyRight)
	rowNames := func(m Model) []string {
		var out []string
		for _, r := range m.rows {
			out = append(out, r.node.Name)
		}
		return out
	}
	before := rowNames(m)
	require.Equal(t, []string{"Sorted by Date", "2020-07-15", "Original Bookmarks"}, before)

	next := press(t, m, keyLeft)
	assert.Len(t, next.rows, 2)
	assert.Equal(t, before, rowNames(m))
}

func TestFollowJumpsToOriginal(t *testing.T) {
	m := New("test", sortedOutline(), nil)

	m = press(t, m, keyRight, keyDown, keyEnter)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "2020-07-15 Summary", m.Selected().Name)
	assert.Equal(t, tree.Path{1, 0, 0}, m.rows[m.cursor].path)
	assert.Contains(t, m.Status(), "/1/0/0")

	m = press(t, m, keyBack)
	assert.Equal(t, "2020-07-15", m.Selected().Name)
}

func TestFollowWithoutAction(t *testing.T) {
	m := New("test", sortedOutline(), nil)
	m = press(t, m, keyEnter)
	assert.Equal(t, "No action on this bookmark", m.Status())
	assert.Equal(t, "Sorted by Date", m.Selected().Name)
}

func TestFollowError(t *testing.T) {
	failing := func(*tree.Node, tree.ActionRef) (*tree.Node, tree.Path, error) {
		return nil, nil, errors.New("boom")
	}
	m := New("test", sortedOutline(), failing)

	m = press(t, m, keyRight, keyDown, keyEnter)
	assert.Contains(t, m.Status(), "boom")
	assert.Equal(t, "2020-07-15", m.Selected().Name)
}

func TestExpandAllAndView(t *testing.T) {
	m := New("Outline", sortedOutline(), nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'E'}})
	assert.Len(t, m.rows, 6)

	view := m.View()
	assert.Contains(t, view, "Outline")
	assert.Contains(t, view, "2020-07-15 Summary")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'C'}})
	assert.Len(t, m.rows, 2)
}

func TestQuit(t *testing.T) {
	m := New("test", sortedOutline(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
