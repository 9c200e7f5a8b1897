package outline

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?(.*)`)
	bulletPattern      = regexp.MustCompile(`^( *)[-*] (.*)$`)
	indentPattern      = regexp.MustCompile(`^[ \t]*`)

	labelEscaper   = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `(`, `\(`, `)`, `\)`)
	labelUnescaper = strings.NewReplacer(`\\`, `\`, `\[`, `[`, `\]`, `]`, `\(`, `(`, `\)`, `)`)
)

const indentWidth = 2

type frontmatter struct {
	Title string `yaml:"title,omitempty"`
}

// ParseMarkdown reads an outline written as a nested bullet list, optionally
// preceded by YAML frontmatter. Two spaces of indentation open a level.
// Items written as [label](action) carry an action. Labels may escape
// brackets and parentheses with a backslash. Lines that are not bullets are
// ignored.
func ParseMarkdown(content string) (*Document, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	doc := &Document{}

	if m := frontmatterPattern.FindStringSubmatch(content); len(m) == 3 {
		var fm frontmatter
		if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		doc.Title = fm.Title
		content = m[2]
	}

	var stack []*Entry
	for _, line := range strings.Split(content, "\n") {
		indent := indentPattern.FindString(line)
		line = strings.ReplaceAll(indent, "\t", strings.Repeat(" ", indentWidth)) + line[len(indent):]
		m := bulletPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		level := len(m[1]) / indentWidth
		if level > len(stack) {
			level = len(stack)
		}

		entry := parseItem(m[2])

		if level == 0 {
			doc.Bookmarks = append(doc.Bookmarks, entry)
		} else {
			parent := stack[level-1]
			if parent.Children == nil {
				parent.Children = &[]*Entry{}
			}
			*parent.Children = append(*parent.Children, entry)
		}
		stack = append(stack[:level], entry)
	}

	return doc, nil
}

// parseItem splits a bullet's text into label and action. The label of a
// link ends at the first unescaped "]", which must be followed by "(", and
// the action runs to the final ")".
func parseItem(text string) *Entry {
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, ")") {
		if end := closingBracket(text); end > 0 && end+1 < len(text)-1 && text[end+1] == '(' {
			return &Entry{
				Name:   labelUnescaper.Replace(text[1:end]),
				Action: text[end+2 : len(text)-1],
			}
		}
	}
	return &Entry{Name: labelUnescaper.Replace(text)}
}

func closingBracket(text string) int {
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// BuildMarkdown renders a document as frontmatter plus a nested bullet list.
// Open state and colors are not represented.
func BuildMarkdown(doc *Document) string {
	var sb strings.Builder

	if doc.Title != "" {
		data, _ := yaml.Marshal(frontmatter{Title: doc.Title})
		sb.WriteString("---\n")
		sb.Write(data)
		sb.WriteString("---\n\n")
	}

	writeBullets(&sb, doc.Bookmarks, 0)
	return sb.String()
}

func writeBullets(sb *strings.Builder, entries []*Entry, depth int) {
	for _, e := range entries {
		sb.WriteString(strings.Repeat(" ", depth*indentWidth))
		sb.WriteString("- ")
		if e.Action != "" {
			fmt.Fprintf(sb, "[%s](%s)", labelEscaper.Replace(e.Name), e.Action)
		} else {
			sb.WriteString(labelEscaper.Replace(e.Name))
		}
		sb.WriteString("\n")
		if e.Children != nil {
			writeBullets(sb, *e.Children, depth+1)
		}
	}
}
