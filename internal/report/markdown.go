package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"

	"github.com/agentstation/taxamark/pkg/errors"
)

// Markdown wraps the markdown package with the few blocks a report needs.
type Markdown struct {
	md        *md.Markdown
	writer    io.Writer
	buffer    *strings.Builder
	useBuffer bool
}

// NewMarkdown creates a builder that writes to w on Build.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		md:     md.NewMarkdown(w),
		writer: w,
	}
}

// NewMarkdownBuffer creates a builder with an internal buffer.
func NewMarkdownBuffer() *Markdown {
	buffer := &strings.Builder{}
	return &Markdown{
		md:        md.NewMarkdown(buffer),
		writer:    buffer,
		buffer:    buffer,
		useBuffer: true,
	}
}

// String returns the buffered content.
func (m *Markdown) String() string {
	if m.useBuffer && m.buffer != nil {
		return m.buffer.String()
	}
	return ""
}

// FrontMatter is the YAML header of a report.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Source      string `yaml:"source,omitempty"`
	Taxa        int    `yaml:"taxa"`
}

// FrontMatter writes the YAML header straight to the writer. It must be
// called before any block is built.
func (m *Markdown) FrontMatter(fm FrontMatter) error {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	if _, err := fmt.Fprintf(m.writer, "---\n%s---\n\n", data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// H1 adds a level 1 header
func (m *Markdown) H1(text string) *Markdown {
	m.md.H1(text)
	return m
}

// H2 adds a level 2 header
func (m *Markdown) H2(text string) *Markdown {
	m.md.H2(text)
	return m
}

// PlainText adds a paragraph
func (m *Markdown) PlainText(text string) *Markdown {
	m.md.PlainText(text)
	return m
}

// LF adds a line feed
func (m *Markdown) LF() *Markdown {
	m.md.LF()
	return m
}

// BulletList adds a bullet list; nothing is added for no items.
func (m *Markdown) BulletList(items ...string) *Markdown {
	if len(items) == 0 {
		return m
	}
	m.md.BulletList(items...)
	return m
}

// Blockquote adds a blockquote
func (m *Markdown) Blockquote(text string) *Markdown {
	m.md.Blockquote(text)
	return m
}

// HorizontalRule adds a horizontal rule
func (m *Markdown) HorizontalRule() *Markdown {
	m.md.HorizontalRule()
	return m
}

// Build writes the document.
func (m *Markdown) Build() error {
	if err := m.md.Build(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}
