package templates

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

// seedMatter is the frontmatter header of a markdown page seed.
type seedMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Slug        string `yaml:"slug" toml:"slug" json:"slug"`
	Description string `yaml:"description" toml:"description" json:"description"`
	SocialImage string `yaml:"social_image" toml:"social_image" json:"social_image"`
}

// PageFromMarkdown turns a markdown document with frontmatter into a template
// page holding a single markdown text block. The body keeps its authored
// markdown; conversion to HTML happens at render time.
func PageFromMarkdown(source []byte) (TemplatePage, error) {
	var matter seedMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &matter)
	if err != nil {
		return TemplatePage{}, fmt.Errorf("templates: parse page seed: %w", err)
	}

	slug := strings.TrimSpace(matter.Slug)
	if slug == "" {
		return TemplatePage{}, &StructuralError{Issues: []Issue{{Path: "slug", Message: "required key missing"}}}
	}
	title := strings.TrimSpace(matter.Title)
	if title == "" {
		return TemplatePage{}, &StructuralError{Issues: []Issue{{Path: "title", Message: "required key missing"}}}
	}

	page := TemplatePage{
		Title: title,
		Slug:  slug,
		Blocks: blocks.List{{
			ID:   uuid.New(),
			Kind: blocks.KindText,
			Data: blocks.TextData{Markdown: string(body)},
		}},
	}
	if matter.Description != "" || matter.SocialImage != "" {
		page.Meta = &pages.Meta{
			Title:       title,
			Description: matter.Description,
			SocialImage: matter.SocialImage,
		}
	}
	return page, nil
}

// PagesFromMarkdown parses a set of markdown seeds, failing on the first
// malformed document.
func PagesFromMarkdown(sources ...[]byte) ([]TemplatePage, error) {
	out := make([]TemplatePage, 0, len(sources))
	for index, source := range sources {
		page, err := PageFromMarkdown(source)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", index, err)
		}
		out = append(out, page)
	}
	return out, nil
}
