package templates

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

// ParseResult is the importer's outcome. Errors are fatal to the import;
// Warnings document defaults substituted for missing optional fields. A
// best-effort normalized template is returned whenever only warnings are
// present.
type ParseResult struct {
	Template *Template `json:"template,omitempty"`
	Errors   []Issue   `json:"errors,omitempty"`
	Warnings []Issue   `json:"warnings,omitempty"`
}

// Valid reports whether the import produced no fatal errors.
func (r ParseResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err converts fatal issues into a StructuralError, nil when the result is valid.
func (r ParseResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &StructuralError{Issues: r.Errors}
}

// Importer parses template JSON, separating fatal structural errors from
// non-fatal warnings. It needs the block registry to verify the declared
// required-module superset invariant.
type Importer struct {
	registry *blocks.Registry
}

// NewImporter builds an importer bound to a block registry.
func NewImporter(registry *blocks.Registry) *Importer {
	return &Importer{registry: registry}
}

// Parse decodes raw template JSON. Missing required keys and type mismatches
// are fatal; missing optional keys get documented defaults plus a warning.
// The homepage slug must match exactly one page slug.
func (i *Importer) Parse(raw []byte) ParseResult {
	var result ParseResult

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		result.Errors = append(result.Errors, Issue{Path: "", Message: fmt.Sprintf("invalid JSON: %v", err)})
		return result
	}

	tpl := &Template{}
	tpl.ID = requireString(root, "id", &result)
	tpl.Name = requireString(root, "name", &result)
	if value, ok := root["description"]; ok {
		decodeInto(value, &tpl.Description, "description", &result)
	}

	i.parsePages(root, tpl, &result)
	parseSiteSettings(root, tpl, &result)
	i.parseModules(root, tpl, &result)
	parseOptionalSections(root, tpl, &result)

	if len(result.Errors) > 0 {
		return result
	}
	result.Template = tpl
	return result
}

func (i *Importer) parsePages(root map[string]json.RawMessage, tpl *Template, result *ParseResult) {
	raw, ok := root["pages"]
	if !ok {
		result.Errors = append(result.Errors, Issue{Path: "pages", Message: "required key missing"})
		return
	}

	var rawPages []json.RawMessage
	if err := json.Unmarshal(raw, &rawPages); err != nil {
		result.Errors = append(result.Errors, Issue{Path: "pages", Message: "expected an array"})
		return
	}
	if len(rawPages) == 0 {
		result.Errors = append(result.Errors, Issue{Path: "pages", Message: "at least one page is required"})
		return
	}

	slugs := map[string]struct{}{}
	for index, rawPage := range rawPages {
		path := fmt.Sprintf("pages[%d]", index)

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rawPage, &fields); err != nil {
			result.Errors = append(result.Errors, Issue{Path: path, Message: "expected an object"})
			continue
		}

		page := TemplatePage{}
		page.Title = requireStringAt(fields, "title", path, result)
		page.Slug = requireStringAt(fields, "slug", path, result)

		if page.Slug != "" {
			key := strings.ToLower(page.Slug)
			if _, dup := slugs[key]; dup {
				result.Errors = append(result.Errors, Issue{
					Path:    path + ".slug",
					Message: fmt.Sprintf("duplicate page slug %q", page.Slug),
				})
			}
			slugs[key] = struct{}{}
		}

		blocksRaw, hasBlocks := fields["blocks"]
		if !hasBlocks {
			result.Errors = append(result.Errors, Issue{Path: path + ".blocks", Message: "required key missing"})
		} else if err := json.Unmarshal(blocksRaw, &page.Blocks); err != nil {
			result.Errors = append(result.Errors, Issue{Path: path + ".blocks", Message: "expected an array of blocks"})
		}

		if metaRaw, hasMeta := fields["meta"]; hasMeta {
			meta := pages.Meta{}
			if err := json.Unmarshal(metaRaw, &meta); err != nil {
				result.Errors = append(result.Errors, Issue{Path: path + ".meta", Message: "expected an object"})
			} else {
				page.Meta = &meta
			}
		}

		tpl.Pages = append(tpl.Pages, page)
	}
}

func parseSiteSettings(root map[string]json.RawMessage, tpl *Template, result *ParseResult) {
	raw, ok := root["siteSettings"]
	if !ok {
		result.Errors = append(result.Errors, Issue{Path: "siteSettings", Message: "required key missing"})
		return
	}
	if err := json.Unmarshal(raw, &tpl.SiteSettings); err != nil {
		result.Errors = append(result.Errors, Issue{Path: "siteSettings", Message: "expected an object"})
		return
	}

	slug := strings.TrimSpace(tpl.SiteSettings.HomepageSlug)
	if slug == "" {
		result.Errors = append(result.Errors, Issue{Path: "siteSettings.homepageSlug", Message: "required key missing"})
		return
	}
	tpl.SiteSettings.HomepageSlug = slug

	for _, page := range tpl.Pages {
		if strings.EqualFold(page.Slug, slug) {
			return
		}
	}
	result.Errors = append(result.Errors, Issue{
		Path:    "siteSettings.homepageSlug",
		Message: fmt.Sprintf("homepage slug %q does not match any page slug", slug),
	})
}

// parseModules decodes requiredModules and enforces the superset invariant:
// the declared list must cover every module the template's blocks derive.
// An absent key defaults to the derived set, keeping the invariant by
// construction, with a warning so the author knows a default was substituted.
func (i *Importer) parseModules(root map[string]json.RawMessage, tpl *Template, result *ParseResult) {
	derived := DeriveRequiredModules(i.registry, templateBlocks(tpl))

	raw, ok := root["requiredModules"]
	if !ok {
		if len(derived) > 0 {
			tpl.RequiredModules = derived
			result.Warnings = append(result.Warnings, Issue{
				Path:    "requiredModules",
				Message: fmt.Sprintf("missing; defaulted to derived modules %v", derived),
			})
		}
		return
	}

	if err := json.Unmarshal(raw, &tpl.RequiredModules); err != nil {
		result.Errors = append(result.Errors, Issue{Path: "requiredModules", Message: "expected an array of module identifiers"})
		return
	}

	for index, id := range tpl.RequiredModules {
		if !id.Valid() {
			result.Warnings = append(result.Warnings, Issue{
				Path:    fmt.Sprintf("requiredModules[%d]", index),
				Message: fmt.Sprintf("unknown module %q", id),
			})
		}
	}

	check := Validate(i.registry, tpl.RequiredModules, templateBlocks(tpl))
	if !check.Valid {
		result.Errors = append(result.Errors, Issue{
			Path:    "requiredModules",
			Message: fmt.Sprintf("blocks require undeclared modules %v", check.Missing),
		})
	}
}

func parseOptionalSections(root map[string]json.RawMessage, tpl *Template, result *ParseResult) {
	decodeOptional(root, "blogPosts", &tpl.BlogPosts, result)
	decodeOptional(root, "kbCategories", &tpl.KBCategories, result)
	decodeOptional(root, "products", &tpl.Products, result)
	decodeOptional(root, "branding", &tpl.Branding, result)
	decodeOptional(root, "chatSettings", &tpl.ChatSettings, result)
	decodeOptional(root, "headerSettings", &tpl.HeaderSettings, result)
	decodeOptional(root, "footerSettings", &tpl.FooterSettings, result)
	decodeOptional(root, "seoSettings", &tpl.SEOSettings, result)
	decodeOptional(root, "cookieBannerSettings", &tpl.CookieBannerSettings, result)
}

func decodeOptional[T any](root map[string]json.RawMessage, key string, target *T, result *ParseResult) {
	raw, ok := root[key]
	if !ok {
		return
	}
	decodeInto(raw, target, key, result)
}

func decodeInto[T any](raw json.RawMessage, target *T, path string, result *ParseResult) {
	if err := json.Unmarshal(raw, target); err != nil {
		result.Errors = append(result.Errors, Issue{Path: path, Message: "type mismatch"})
	}
}

func requireString(root map[string]json.RawMessage, key string, result *ParseResult) string {
	return requireStringAt(root, key, "", result)
}

func requireStringAt(fields map[string]json.RawMessage, key, prefix string, result *ParseResult) string {
	path := key
	if prefix != "" {
		path = prefix + "." + key
	}

	raw, ok := fields[key]
	if !ok {
		result.Errors = append(result.Errors, Issue{Path: path, Message: "required key missing"})
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		result.Errors = append(result.Errors, Issue{Path: path, Message: "expected a string"})
		return ""
	}
	value = strings.TrimSpace(value)
	if value == "" {
		result.Errors = append(result.Errors, Issue{Path: path, Message: "must not be empty"})
	}
	return value
}

// Export serializes a template to its JSON interchange form. Exporting a
// valid template and re-parsing it yields zero errors with id, pages, and
// homepage slug unchanged.
func Export(t *Template) ([]byte, error) {
	if t == nil {
		return nil, ErrTemplateRequired
	}
	encoded, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("templates: export %s: %w", t.ID, err)
	}
	return encoded, nil
}
