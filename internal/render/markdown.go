package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// newMarkdownEngine builds the goldmark instance used for text blocks. The
// engine is stateless and shared across renders without locking.
func newMarkdownEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// newSanitizerPolicy builds the bluemonday policy applied to authored rich
// text and rendered markdown before either reaches a page.
func newSanitizerPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("div", "span", "table", "th", "td")
	return policy
}

func (r *Renderer) markdownHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render: markdown convert: %w", err)
	}
	return template.HTML(r.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

func (r *Renderer) sanitizedHTML(source string) template.HTML {
	return template.HTML(r.sanitizer.Sanitize(source))
}
