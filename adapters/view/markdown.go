package view

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown turns the free-text profile paragraphs into HTML. Raw HTML in
// the source is escaped.
type markdown struct {
	md goldmark.Markdown
}

func newMarkdown() *markdown {
	return &markdown{md: goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))}
}

func (m *markdown) paragraphs(src []string) ([]string, error) {
	out := make([]string, 0, len(src))
	for i, p := range src {
		var buf bytes.Buffer
		if err := m.md.Convert([]byte(p), &buf); err != nil {
			return nil, fmt.Errorf("convert paragraph %d: %w", i, err)
		}
		out = append(out, buf.String())
	}
	return out, nil
}
