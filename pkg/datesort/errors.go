package datesort

import (
	"errors"

	"github.com/mattsolo1/grove-datesort/pkg/datematch"
)

var (
	// ErrEmptyTree is returned when the root has no children.
	ErrEmptyTree = errors.New("outline is empty")
	// ErrAlreadySorted is returned when the root already has a sorted holder.
	ErrAlreadySorted = errors.New("outline has already been sorted")
	// ErrLabelCollision is returned when a top-level node already uses the
	// label reserved for the original holder.
	ErrLabelCollision = errors.New("reserved holder label already in use")
	// ErrPathNotFound is returned when a collected date node cannot be found
	// again in the original tree.
	ErrPathNotFound = errors.New("node not found in original tree")
	// ErrMalformedDate is returned when a date token is not a valid date.
	ErrMalformedDate = datematch.ErrMalformedDate
)

// IsPrecondition reports whether err is a precondition failure. These are
// the only failures guaranteed to leave the tree unmodified.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrEmptyTree) ||
		errors.Is(err, ErrAlreadySorted) ||
		errors.Is(err, ErrLabelCollision)
}
