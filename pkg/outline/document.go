package outline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-datesort/pkg/tree"
)

// Format identifies an on-disk outline encoding.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported outline file extension: %q", filepath.Ext(path))
}

// Document is the serialized form of an outline.
type Document struct {
	Title     string   `yaml:"title,omitempty"`
	Bookmarks []*Entry `yaml:"bookmarks"`
}

// Entry is one bookmark. A missing children key and an empty children list
// are kept apart.
type Entry struct {
	Name     string    `yaml:"name"`
	Action   string    `yaml:"action,omitempty"`
	Open     *bool     `yaml:"open,omitempty"`
	Color    string    `yaml:"color,omitempty"`
	Children *[]*Entry `yaml:"children,omitempty"`
}

// ToTree converts the document into a fresh node tree.
func (d *Document) ToTree() (*tree.Node, error) {
	root := tree.NewRoot()
	if d.Bookmarks == nil {
		return root, nil
	}
	children, err := entriesToNodes(d.Bookmarks)
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

func entriesToNodes(entries []*Entry) ([]*tree.Node, error) {
	nodes := make([]*tree.Node, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		color, err := tree.ParseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("bookmark %q: %w", e.Name, err)
		}
		n := &tree.Node{
			Name:   e.Name,
			Action: tree.ActionRef(e.Action),
			Open:   e.Open == nil || *e.Open,
			Color:  color,
		}
		if e.Children != nil {
			children, err := entriesToNodes(*e.Children)
			if err != nil {
				return nil, err
			}
			n.Children = children
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// FromTree builds a document from the children of root.
func FromTree(title string, root *tree.Node) *Document {
	return &Document{
		Title:     title,
		Bookmarks: nodesToEntries(root.Children),
	}
}

func nodesToEntries(nodes []*tree.Node) []*Entry {
	entries := make([]*Entry, 0, len(nodes))
	for _, n := range nodes {
		e := &Entry{
			Name:   n.Name,
			Action: string(n.Action),
			Color:  string(n.Color),
		}
		if !n.Open {
			closed := false
			e.Open = &closed
		}
		if n.Children != nil {
			children := nodesToEntries(n.Children)
			e.Children = &children
		}
		entries = append(entries, e)
	}
	return entries
}

// Decode reads a document in the given format.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}

	switch format {
	case FormatYAML:
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml outline: %w", err)
		}
		return &doc, nil
	case FormatMarkdown:
		return ParseMarkdown(string(data))
	}
	return nil, fmt.Errorf("unsupported outline format %q", format)
}

// Encode writes a document in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml outline: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, BuildMarkdown(doc))
		return err
	}
	return fmt.Errorf("unsupported outline format %q", format)
}

// ReadFile loads a document, choosing the format from the extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// WriteFile stores a document, choosing the format from the extension.
func WriteFile(path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ensure directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
