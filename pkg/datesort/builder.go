package datesort

import (
	"fmt"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

type builder struct {
	root       *tree.Node
	sortedRoot *tree.Node
	index      *tree.Index
	palette    Palette
	built      int
}

// buildSortedTree creates the sorted holder at the top of root and fills it
// from the chronologically ordered date nodes.
func (b *builder) buildSortedTree(label string, dated []*tree.Node) (*tree.Node, error) {
	b.sortedRoot = b.root.CreateChild(label, "", 0)
	b.index = tree.NewIndex(b.root, excludeNode(b.sortedRoot))

	if err := b.buildChildren(b.sortedRoot, dated); err != nil {
		return b.sortedRoot, err
	}
	return b.sortedRoot, nil
}

func (b *builder) buildChildren(parent *tree.Node, refs []*tree.Node) error {
	atTop := parent == b.sortedRoot

	for _, ref := range refs {
		// Date nodes only live directly under the sorted holder.
		if !atTop && hasDate(ref) {
			continue
		}

		path, ok := b.index.PathOf(ref)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPathNotFound, ref.Name)
		}
		action := path.Ref()

		child := parent.CreateChild(ref.Name, action, len(parent.Children))
		b.built++

		if hasDate(ref) {
			child.Name = dateToken(ref)
			demoted := child.CreateChild(ref.Name, action, 0)
			demoted.Color = b.palette.Demoted
			b.built++
		}

		if ref.Children != nil {
			if err := b.buildChildren(child, ref.Children); err != nil {
				return err
			}
		}

		if atTop && len(child.Children) > 1 {
			child.Color = b.palette.Hierarchy
		}
	}
	return nil
}
