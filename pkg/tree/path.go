package tree

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRef is returned when an action reference cannot be parsed.
	ErrInvalidRef = errors.New("invalid action reference")
	// ErrNoSuchNode is returned when a path does not lead to a node.
	ErrNoSuchNode = errors.New("no node at path")
)

const (
	refRoot   = "this.bookmarkRoot"
	refSuffix = ".execute()"
)

var refStepPattern = regexp.MustCompile(`^\.children\[(\d+)\]`)

// Path is a sequence of child indexes leading from the root to a node.
type Path []int

// Child returns a new path extended by index. The receiver is not modified.
func (p Path) Child(index int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, index)
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "/" + strings.Join(parts, "/")
}

// Ref returns the action reference that executes the node at p.
func (p Path) Ref() ActionRef {
	return EncodeRef(p)
}

// EncodeRef serializes a path into an action reference of the form
// this.bookmarkRoot.children[0].children[3].execute()
func EncodeRef(p Path) ActionRef {
	var sb strings.Builder
	sb.WriteString(refRoot)
	for _, idx := range p {
		fmt.Fprintf(&sb, ".children[%d]", idx)
	}
	sb.WriteString(refSuffix)
	return ActionRef(sb.String())
}

// ParseRef is the inverse of EncodeRef.
func ParseRef(ref ActionRef) (Path, error) {
	s := string(ref)
	if !strings.HasPrefix(s, refRoot) || !strings.HasSuffix(s, refSuffix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, refRoot), refSuffix)

	path := Path{}
	for s != "" {
		m := refStepPattern.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRef, ref, err)
		}
		path = append(path, idx)
		s = s[len(m[0]):]
	}
	return path, nil
}

// Resolve follows p from root and returns the node it points at.
func Resolve(root *Node, p Path) (*Node, error) {
	current := root
	for depth, idx := range p {
		if idx < 0 || idx >= len(current.Children) {
			return nil, fmt.Errorf("%w: %s (step %d)", ErrNoSuchNode, p, depth)
		}
		current = current.Children[idx]
	}
	return current, nil
}

// Follow parses ref and resolves it against root.
func Follow(root *Node, ref ActionRef) (*Node, Path, error) {
	p, err := ParseRef(ref)
	if err != nil {
		return nil, nil, err
	}
	n, err := Resolve(root, p)
	if err != nil {
		return nil, nil, err
	}
	return n, p, nil
}
