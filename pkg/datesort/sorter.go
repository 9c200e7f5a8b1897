package datesort

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

const (
	DefaultSortedLabel   = "Sorted by Date"
	DefaultOriginalLabel = "Original Bookmarks"
)

// Palette holds the colors applied to nodes created by a run.
type Palette struct {
	Collection tree.Color // both holders
	Hierarchy  tree.Color // date entries with structure beneath them
	Demoted    tree.Color // the original full label kept under a date entry
}

// DefaultPalette returns the stock colors for a light or dark theme.
func DefaultPalette(darkMode bool) Palette {
	if darkMode {
		return Palette{Collection: tree.ColorGreen, Hierarchy: tree.ColorCyan, Demoted: tree.ColorLtGray}
	}
	return Palette{Collection: tree.ColorMagenta, Hierarchy: tree.ColorBlue, Demoted: tree.ColorLtGray}
}

// Options configures a Sorter. Zero values fall back to the defaults.
type Options struct {
	SortedLabel   string
	OriginalLabel string
	Palette       *Palette
	Logger        *logrus.Entry
}

// Result describes a completed run.
type Result struct {
	Sorted    *tree.Node
	Original  *tree.Node
	DateNodes int
	Built     int
}

// Sorter regroups outlines by date.
type Sorter struct {
	sortedLabel   string
	originalLabel string
	palette       Palette
	logger        *logrus.Entry
}

// New creates a Sorter.
func New(opts Options) (*Sorter, error) {
	s := &Sorter{
		sortedLabel:   opts.SortedLabel,
		originalLabel: opts.OriginalLabel,
		logger:        opts.Logger,
	}
	if s.sortedLabel == "" {
		s.sortedLabel = DefaultSortedLabel
	}
	if s.originalLabel == "" {
		s.originalLabel = DefaultOriginalLabel
	}
	if s.sortedLabel == s.originalLabel {
		return nil, fmt.Errorf("sorted and original holder labels must differ, both are %q", s.sortedLabel)
	}
	if opts.Palette != nil {
		s.palette = *opts.Palette
	} else {
		s.palette = DefaultPalette(false)
	}
	if s.logger == nil {
		s.logger = logrus.NewEntry(logrus.New())
	}
	return s, nil
}

// SortedLabel returns the label of the sorted holder.
func (s *Sorter) SortedLabel() string { return s.sortedLabel }

// OriginalLabel returns the label of the original holder.
func (s *Sorter) OriginalLabel() string { return s.originalLabel }

// IsSorted reports whether root already has a sorted holder among its
// top-level children.
func (s *Sorter) IsSorted(root *tree.Node) bool {
	return slices.ContainsFunc(root.Children, func(n *tree.Node) bool {
		return n.Name == s.sortedLabel
	})
}

// Check runs the precondition checks without touching root.
func (s *Sorter) Check(root *tree.Node) error {
	if root == nil || len(root.Children) == 0 {
		return ErrEmptyTree
	}
	if s.IsSorted(root) {
		return ErrAlreadySorted
	}
	for _, n := range root.Children {
		if n.Name == s.originalLabel {
			return fmt.Errorf("%w: %q", ErrLabelCollision, n.Name)
		}
	}
	return nil
}

// Run regroups root in place. After success root has exactly two children:
// the sorted holder at index 0 and the original holder at index 1.
//
// Precondition failures and malformed dates leave root untouched. A failure
// while building leaves the partially built tree in place.
func (s *Sorter) Run(root *tree.Node) (*Result, error) {
	if err := s.Check(root); err != nil {
		return nil, err
	}

	dated := CollectDateNodes(root)
	ordered, err := SortByDate(dated)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("date_nodes", len(dated)).Debug("Collected date nodes")

	originals := slices.Clone(root.Children)
	root.Children = nil
	orgRoot := root.CreateChild(s.originalLabel, "", 0)
	orgRoot.Color = s.palette.Collection
	for _, n := range originals {
		orgRoot.InsertChild(n, len(orgRoot.Children))
	}

	b := &builder{root: root, palette: s.palette}
	sortedRoot, err := b.buildSortedTree(s.sortedLabel, ordered)
	if err != nil {
		s.logger.WithError(err).WithField("built", b.built).Error("Sorted tree left incomplete")
		return nil, err
	}
	sortedRoot.Color = s.palette.Collection

	for _, n := range sortedRoot.Children {
		n.Open = false
	}
	orgRoot.Open = false
	sortedRoot.Open = false

	s.logger.WithFields(logrus.Fields{
		"date_nodes": len(ordered),
		"built":      b.built,
	}).Info("Outline sorted by date")

	return &Result{
		Sorted:    sortedRoot,
		Original:  orgRoot,
		DateNodes: len(ordered),
		Built:     b.built,
	}, nil
}
