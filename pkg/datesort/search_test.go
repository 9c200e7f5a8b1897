package datesort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

func TestCollectDateNodesPreOrder(t *testing.T) {
	root := tree.NewRoot()
	a := root.CreateChild("2021-01-01 a", "", 0)
	a.CreateChild("2020-01-01 a.1", "", 0)
	b := root.CreateChild("b", "", 1)
	b.CreateChild("b.1", "", 0).CreateChild("2019-01-01 b.1.1", "", 0)
	b.Children = append(b.Children, &tree.Node{Name: "2018-01-01 b.2", Children: []*tree.Node{}})

	got := names(CollectDateNodes(root))
	assert.Equal(t, []string{"2021-01-01 a", "2020-01-01 a.1", "2019-01-01 b.1.1", "2018-01-01 b.2"}, got)
}

func TestCollectDateNodesIgnoresRoot(t *testing.T) {
	root := &tree.Node{Name: "2020-01-01 root"}
	assert.Empty(t, CollectDateNodes(root))
}

func TestSortByDateStable(t *testing.T) {
	nodes := []*tree.Node{
		{Name: "c 2020-03-03"},
		{Name: "a1 2020-01-01"},
		{Name: "b 2020-02-02"},
		{Name: "a2 2020-01-01"},
	}

	sorted, err := SortByDate(nodes)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1 2020-01-01", "a2 2020-01-01", "b 2020-02-02", "c 2020-03-03"}, names(sorted))
	assert.Equal(t, "c 2020-03-03", nodes[0].Name, "input slice is left alone")
}

func TestSortByDateMalformed(t *testing.T) {
	_, err := SortByDate([]*tree.Node{{Name: "2020-99-99"}})
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestResolvePath(t *testing.T) {
	root := tree.NewRoot()
	sorted := root.CreateChild(DefaultSortedLabel, "", 0)
	original := root.CreateChild(DefaultOriginalLabel, "", 1)
	target := original.CreateChild("x", "", 0).CreateChild("2020-01-01", "", 0)
	sorted.InsertChild(target, 0) // aliased into the excluded subtree on purpose

	p, err := ResolvePath(target, root, sorted)
	require.NoError(t, err)
	assert.Equal(t, tree.Path{1, 0, 0}, p)

	_, err = ResolvePath(&tree.Node{Name: "2020-01-01"}, root, sorted)
	assert.ErrorIs(t, err, ErrPathNotFound)

	onlyInSorted := sorted.CreateChild("ghost", "", 1)
	_, err = ResolvePath(onlyInSorted, root, sorted)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolvePathMatchesBuiltRefs(t *testing.T) {
	root, a, _, c := scenarioTree()
	res, err := newTestSorter(t).Run(root)
	require.NoError(t, err)

	for _, entry := range res.Sorted.Children {
		ref, err := tree.ParseRef(entry.Action)
		require.NoError(t, err)
		target := c
		if entry.Name == "2021-03-01" {
			target = a
		}
		p, err := ResolvePath(target, root, res.Sorted)
		require.NoError(t, err)
		assert.Equal(t, ref, p)
	}
}

func TestBuilderPathNotFound(t *testing.T) {
	root := tree.NewRoot()
	root.CreateChild("kept", "", 0)
	stray := &tree.Node{Name: "2020-01-01 stray"}

	b := &builder{root: root, palette: DefaultPalette(false)}
	_, err := b.buildSortedTree(DefaultSortedLabel, []*tree.Node{stray})
	require.ErrorIs(t, err, ErrPathNotFound)
	assert.False(t, IsPrecondition(err))
}
