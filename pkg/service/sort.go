package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-datesort/pkg/datesort"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

const (
	msgEmptyTree     = "Error. Please open an outline first."
	msgAlreadySorted = "Error. Bookmarks have already been sorted."
)

// alertFor returns the message shown to the user for a failed run.
func alertFor(err error) string {
	switch {
	case errors.Is(err, datesort.ErrEmptyTree):
		return msgEmptyTree
	case errors.Is(err, datesort.ErrAlreadySorted):
		return msgAlreadySorted
	case errors.Is(err, datesort.ErrLabelCollision):
		return fmt.Sprintf("Error. %v.", err)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}

// ReportedError wraps a sort failure that has already been delivered to the
// user through the Notifier.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already shown to the user.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// SortTree runs the sorter on root and notifies the user when it fails.
func (s *Service) SortTree(root *tree.Node) (*datesort.Result, error) {
	res, err := s.sorter.Run(root)
	if err != nil {
		s.Notifier.Alert(alertFor(err))
		entry := s.Logger.WithError(err)
		if datesort.IsPrecondition(err) {
			entry.Debug("Sort refused")
		} else {
			entry.Error("Sort failed")
		}
		return nil, &ReportedError{Err: err}
	}
	return res, nil
}

// Sort loads source, sorts it and writes it back: stored outlines are
// updated in the store, files are rewritten in place unless out is set.
// Nothing is written when the sort fails.
func (s *Service) Sort(source, out string) (*Outline, *datesort.Result, error) {
	o, err := s.Load(source)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.SortTree(o.Root)
	if err != nil {
		return nil, nil, err
	}

	if out != "" {
		o.Name = ""
		o.Path = out
	}
	if err := s.Save(o); err != nil {
		return nil, nil, fmt.Errorf("save sorted outline: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"source":     source,
		"date_nodes": res.DateNodes,
		"built":      res.Built,
	}).Info("Saved sorted outline")

	return o, res, nil
}

// Goto dereferences an action reference against root, the way the host
// executes a bookmark action.
func (s *Service) Goto(root *tree.Node, ref tree.ActionRef) (*tree.Node, tree.Path, error) {
	n, p, err := tree.Follow(root, ref)
	if err != nil {
		return nil, nil, fmt.Errorf("follow %s: %w", ref, err)
	}
	return n, p, nil
}
