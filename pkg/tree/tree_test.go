package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Node {
	root := NewRoot()
	a := root.CreateChild("A", "", 0)
	b := root.CreateChild("B", "", 1)
	b.CreateChild("C", "", 0)
	b.CreateChild("D", "", 1).CreateChild("E", "", 0)
	a.Children = []*Node{}
	return root
}

func TestCreateChildPositions(t *testing.T) {
	root := NewRoot()
	root.CreateChild("second", "", 0)
	root.CreateChild("first", "", 0)
	root.CreateChild("last", "", 99)
	root.CreateChild("middle", "", 2)

	var names []string
	for _, c := range root.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"first", "second", "middle", "last"}, names)
}

func TestNodeIDStable(t *testing.T) {
	a := &Node{Name: "a"}
	b := &Node{Name: "a"}

	id := a.ID()
	assert.NotZero(t, id)
	assert.Equal(t, id, a.ID())
	assert.NotEqual(t, id, b.ID())
}

func TestWalkPreOrder(t *testing.T) {
	root := sample()

	var visited []string
	var paths []string
	Walk(root, func(n *Node, p Path) bool {
		visited = append(visited, n.Name)
		paths = append(paths, p.String())
		return true
	})

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, visited)
	assert.Equal(t, []string{"/0", "/1", "/1/0", "/1/1", "/1/1/0"}, paths)
	assert.Equal(t, 5, Count(root))
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := sample()

	var visited []string
	Walk(root, func(n *Node, p Path) bool {
		visited = append(visited, n.Name)
		return n.Name != "D"
	})
	assert.Equal(t, []string{"A", "B", "C", "D"}, visited)
}

func TestRefRoundTrip(t *testing.T) {
	tests := []struct {
		path Path
		ref  ActionRef
	}{
		{Path{}, "this.bookmarkRoot.execute()"},
		{Path{0}, "this.bookmarkRoot.children[0].execute()"},
		{Path{1, 12, 3}, "this.bookmarkRoot.children[1].children[12].children[3].execute()"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ref), func(t *testing.T) {
			assert.Equal(t, tt.ref, EncodeRef(tt.path))
			assert.Equal(t, tt.ref, tt.path.Ref())

			parsed, err := ParseRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.path, parsed)
		})
	}
}

func TestParseRefInvalid(t *testing.T) {
	for _, ref := range []ActionRef{
		"",
		"this.bookmarkRoot.children[0]",
		"root.children[0].execute()",
		"this.bookmarkRoot.children[x].execute()",
		"this.bookmarkRoot.kids[0].execute()",
	} {
		_, err := ParseRef(ref)
		assert.ErrorIs(t, err, ErrInvalidRef, string(ref))
	}
}

func TestResolveAndFollow(t *testing.T) {
	root := sample()

	n, err := Resolve(root, Path{1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "E", n.Name)

	_, err = Resolve(root, Path{2})
	assert.ErrorIs(t, err, ErrNoSuchNode)
	_, err = Resolve(root, Path{0, 0})
	assert.ErrorIs(t, err, ErrNoSuchNode)

	n, p, err := Follow(root, EncodeRef(Path{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, "C", n.Name)
	assert.Equal(t, Path{1, 0}, p)
}

func TestIndex(t *testing.T) {
	root := sample()
	b := root.Children[1]
	d := b.Children[1]
	e := d.Children[0]

	idx := NewIndex(root, nil)
	assert.Equal(t, 5, idx.Len())

	p, ok := idx.PathOf(e)
	require.True(t, ok)
	assert.Equal(t, Path{1, 1, 0}, p)

	_, ok = idx.PathOf(&Node{Name: "E"})
	assert.False(t, ok, "lookup is by identity, not by label")

	skipped := NewIndex(root, func(n *Node) bool { return n == d })
	_, ok = skipped.PathOf(d)
	assert.False(t, ok)
	_, ok = skipped.PathOf(e)
	assert.False(t, ok)
	assert.Equal(t, 3, skipped.Len())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"ltGray", ColorLtGray, true},
		{"LTGRAY", ColorLtGray, true},
		{"Magenta", ColorMagenta, true},
		{"", ColorNone, true},
		{"None", ColorNone, true},
		{"purple", ColorNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
