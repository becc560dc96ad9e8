// Package frontmatter reads and writes markdown files with a YAML
// frontmatter fence, the on-disk format the CLI syncs documents into.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Meta is the YAML frontmatter block of a synced document file. Version
// and UpdatedAt are informational: the server assigns them and push
// writes them back, but never sends them.
type Meta struct {
	ID        string `yaml:"id,omitempty"`
	Slug      string `yaml:"slug,omitempty"`
	Title     string `yaml:"title,omitempty"`
	Summary   string `yaml:"summary,omitempty"`
	Project   string `yaml:"project,omitempty"`
	Version   int    `yaml:"version,omitempty"`
	UpdatedAt string `yaml:"updatedAt,omitempty"`
}

// Doc is a parsed markdown file: frontmatter plus body.
type Doc struct {
	Meta    Meta
	Content string
}

// Parse splits a markdown file into frontmatter and content. A file
// without an opening fence is all content with empty metadata.
func Parse(text string) (*Doc, error) {
	if !strings.HasPrefix(text, fence+"\n") {
		if text == fence {
			return nil, fmt.Errorf("unterminated frontmatter block")
		}
		return &Doc{Content: strings.TrimLeft(text, "\n")}, nil
	}

	block, body, ok := splitFence(strings.TrimPrefix(text, fence+"\n"))
	if !ok {
		return nil, fmt.Errorf("unterminated frontmatter block")
	}

	// Drop any blank lines separating frontmatter from content.
	body = strings.TrimLeft(body, "\n")

	var meta Meta
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	return &Doc{Meta: meta, Content: body}, nil
}

// splitFence scans line by line for the closing fence, which must be
// exactly "---" on its own line. A line that merely starts with the fence
// (a thematic break, or "---" with trailing text) does not close the block.
func splitFence(rest string) (block, body string, ok bool) {
	offset := 0
	for {
		nl := strings.IndexByte(rest[offset:], '\n')
		var line string
		next := len(rest)
		if nl >= 0 {
			line = rest[offset : offset+nl]
			next = offset + nl + 1
		} else {
			line = rest[offset:]
		}

		if line == fence {
			return rest[:offset], rest[next:], true
		}
		if nl < 0 {
			return "", "", false
		}
		offset = next
	}
}

// Render produces the canonical file form: YAML fence, blank line,
// content, trailing newline.
func Render(doc *Doc) (string, error) {
	block, err := yaml.Marshal(&doc.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(fence + "\n")
	b.Write(block)
	b.WriteString(fence + "\n\n")
	b.WriteString(strings.TrimRight(doc.Content, "\n"))
	b.WriteString("\n")
	return b.String(), nil
}
