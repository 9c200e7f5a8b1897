package datesort

import (
	"fmt"
	"slices"

	"github.com/mattsolo1/grove-datesort/pkg/datematch"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

func hasDate(n *tree.Node) bool {
	return datematch.HasDate(n.Name)
}

func dateToken(n *tree.Node) string {
	token, _ := datematch.Extract(n.Name)
	return token
}

// CollectDateNodes returns every date-bearing descendant of root in
// pre-order. A date node's own descendants are searched as well.
func CollectDateNodes(root *tree.Node) []*tree.Node {
	return collect(root.Children, nil)
}

func collect(nodes []*tree.Node, out []*tree.Node) []*tree.Node {
	for _, n := range nodes {
		if hasDate(n) {
			out = append(out, n)
		}
		if n.Children != nil {
			out = collect(n.Children, out)
		}
	}
	return out
}

type dateRecord struct {
	node      *tree.Node
	timestamp int64
}

// SortByDate orders nodes chronologically. Nodes sharing a date keep their
// relative order. Every node must carry a date token.
func SortByDate(nodes []*tree.Node) ([]*tree.Node, error) {
	records := make([]dateRecord, 0, len(nodes))
	for _, n := range nodes {
		ts, err := datematch.LabelTimestamp(n.Name)
		if err != nil {
			return nil, fmt.Errorf("sort key for %q: %w", n.Name, err)
		}
		records = append(records, dateRecord{node: n, timestamp: ts})
	}

	slices.SortStableFunc(records, func(a, b dateRecord) int {
		switch {
		case a.timestamp < b.timestamp:
			return -1
		case a.timestamp > b.timestamp:
			return 1
		}
		return 0
	})

	sorted := make([]*tree.Node, len(records))
	for i, r := range records {
		sorted[i] = r.node
	}
	return sorted, nil
}

// ResolvePath returns the path of target under root, matched by identity.
// The excluded node (normally the sorted holder) is never matched or
// descended into. Callers resolving many nodes should build one tree.Index
// with the same skip rule instead.
func ResolvePath(target, root, excluded *tree.Node) (tree.Path, error) {
	idx := tree.NewIndex(root, excludeNode(excluded))
	if p, ok := idx.PathOf(target); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrPathNotFound, target.Name)
}

// excludeNode returns the index skip rule for the sorted holder.
func excludeNode(excluded *tree.Node) func(*tree.Node) bool {
	if excluded == nil {
		return nil
	}
	return func(n *tree.Node) bool {
		return n == excluded
	}
}
