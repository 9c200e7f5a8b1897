package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-datesort/pkg/models"
	"github.com/mattsolo1/grove-datesort/pkg/outline"
	"github.com/mattsolo1/grove-datesort/pkg/store"
	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// Outline is a loaded document together with its tree.
type Outline struct {
	Name  string // store name; empty for files
	Path  string // file path; empty for stored outlines
	Title string
	Root  *tree.Node
}

// NameFromPath derives a store name from a file path.
func NameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Import reads an outline file and stores it under name. An empty name is
// derived from the file name.
func (s *Service) Import(path, name string) (*models.OutlineInfo, error) {
	doc, err := outline.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := doc.ToTree()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if name == "" {
		name = NameFromPath(path)
	}

	o := &Outline{Name: name, Title: doc.Title, Root: root}
	if err := s.Save(o); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"name":  name,
		"path":  path,
		"nodes": tree.Count(root),
	}).Info("Imported outline")

	rec, err := s.Store.Get(name)
	if err != nil {
		return nil, err
	}
	return &rec.OutlineInfo, nil
}

// Export writes a stored outline to path in the format implied by its
// extension.
func (s *Service) Export(name, path string) error {
	o, err := s.Get(name)
	if err != nil {
		return err
	}
	return outline.WriteFile(path, outline.FromTree(o.Title, o.Root))
}

// List returns the stored outlines.
func (s *Service) List() ([]*models.OutlineInfo, error) {
	return s.Store.List()
}

// Delete removes a stored outline.
func (s *Service) Delete(name string) error {
	return s.Store.Delete(name)
}

// Get loads a stored outline.
func (s *Service) Get(name string) (*Outline, error) {
	rec, err := s.Store.Get(name)
	if err != nil {
		return nil, err
	}
	doc, err := outline.Decode(bytes.NewReader(rec.Content), outline.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("decode stored outline %s: %w", name, err)
	}
	root, err := doc.ToTree()
	if err != nil {
		return nil, fmt.Errorf("stored outline %s: %w", name, err)
	}
	return &Outline{Name: name, Title: rec.Title, Root: root}, nil
}

// Load resolves source as a file path when such a file exists, otherwise as
// the name of a stored outline.
func (s *Service) Load(source string) (*Outline, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		doc, err := outline.ReadFile(source)
		if err != nil {
			return nil, err
		}
		root, err := doc.ToTree()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return &Outline{Path: source, Title: doc.Title, Root: root}, nil
	}

	o, err := s.Get(source)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no outline file or stored outline named %q", source)
	}
	return o, err
}

// Save persists o to the store (when it has a name) or to its file.
func (s *Service) Save(o *Outline) error {
	doc := outline.FromTree(o.Title, o.Root)

	if o.Name == "" {
		if o.Path == "" {
			return errors.New("outline has neither a name nor a path")
		}
		return outline.WriteFile(o.Path, doc)
	}

	var buf bytes.Buffer
	if err := outline.Encode(&buf, doc, outline.FormatYAML); err != nil {
		return err
	}
	return s.Store.Put(&store.Record{
		OutlineInfo: models.OutlineInfo{
			Name:      o.Name,
			Title:     o.Title,
			NodeCount: tree.Count(o.Root),
			Sorted:    s.sorter.IsSorted(o.Root),
		},
		Content: buf.Bytes(),
	})
}
