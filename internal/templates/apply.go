package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
	"github.com/goliatone/go-sitebuilder/internal/identity"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/pages"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// ApplyResult reports what applying a template created.
type ApplyResult struct {
	Pages    []*pages.Page
	Homepage *pages.Page
}

// Applier instantiates templates into real pages. Applying is all-or-nothing:
// a failure mid-apply rolls back the pages created so far.
type Applier struct {
	pages    pages.Service
	registry *blocks.Registry
	logger   interfaces.Logger
}

// ApplierOption configures the applier.
type ApplierOption func(*Applier)

// WithApplierLogger injects the applier logger.
func WithApplierLogger(logger interfaces.Logger) ApplierOption {
	return func(a *Applier) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewApplier builds an applier over the page service.
func NewApplier(svc pages.Service, registry *blocks.Registry, opts ...ApplierOption) (*Applier, error) {
	if svc == nil {
		return nil, ErrPageServiceRequired
	}
	a := &Applier{
		pages:    svc,
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Apply creates one page per template page and marks the homepage. Page
// identifiers derive deterministically from template id and slug, so separate
// environments applying the same template agree on ids; applying into an
// occupied slug still fails and rolls back. Block identifiers are reissued so
// applied pages never share block ids with the catalog entry.
func (a *Applier) Apply(ctx context.Context, tpl *Template) (*ApplyResult, error) {
	if tpl == nil {
		return nil, ErrTemplateRequired
	}
	if err := a.check(tpl); err != nil {
		return nil, err
	}

	result := &ApplyResult{}
	for _, page := range tpl.Pages {
		meta := pages.Meta{Title: page.Title}
		if page.Meta != nil {
			meta = *page.Meta
			if meta.Title == "" {
				meta.Title = page.Title
			}
		}

		created, err := a.pages.Create(ctx, pages.CreatePageRequest{
			ID:     identity.TemplatePageUUID(tpl.ID, page.Slug),
			Slug:   page.Slug,
			Status: domain.StatusPublished,
			Blocks: page.Blocks.CloneFresh(),
			Meta:   meta,
		})
		if err != nil {
			a.rollback(ctx, result.Pages)
			return nil, fmt.Errorf("templates: apply %s: create page %q: %w", tpl.ID, page.Slug, err)
		}
		result.Pages = append(result.Pages, created)

		if strings.EqualFold(page.Slug, tpl.SiteSettings.HomepageSlug) {
			result.Homepage = created
		}
	}

	if result.Homepage == nil {
		a.rollback(ctx, result.Pages)
		return nil, &StructuralError{Issues: []Issue{{
			Path:    "siteSettings.homepageSlug",
			Message: fmt.Sprintf("homepage slug %q does not match any page slug", tpl.SiteSettings.HomepageSlug),
		}}}
	}
	if err := a.pages.SetHomepage(ctx, result.Homepage.ID); err != nil {
		a.rollback(ctx, result.Pages)
		return nil, fmt.Errorf("templates: apply %s: set homepage: %w", tpl.ID, err)
	}

	logging.WithFields(a.logger, map[string]any{
		"template_id": tpl.ID,
		"pages":       len(result.Pages),
	}).Info("templates.applied")
	return result, nil
}

// check re-validates the template before any page is written so a broken
// template is refused in full rather than applied partially.
func (a *Applier) check(tpl *Template) error {
	var issues []Issue
	if strings.TrimSpace(tpl.ID) == "" {
		issues = append(issues, Issue{Path: "id", Message: "required key missing"})
	}
	if len(tpl.Pages) == 0 {
		issues = append(issues, Issue{Path: "pages", Message: "at least one page is required"})
	}
	for index, page := range tpl.Pages {
		if strings.TrimSpace(page.Slug) == "" {
			issues = append(issues, Issue{Path: fmt.Sprintf("pages[%d].slug", index), Message: "required key missing"})
		}
	}

	check := Validate(a.registry, tpl.RequiredModules, templateBlocks(tpl))
	if !check.Valid {
		issues = append(issues, Issue{
			Path:    "requiredModules",
			Message: fmt.Sprintf("blocks require undeclared modules %v", check.Missing),
		})
	}

	if len(issues) > 0 {
		return &StructuralError{Issues: issues}
	}
	return nil
}

// rollback hard-removes the pages this apply created. Tombstoning would keep
// their slugs occupied and block a corrected re-import.
func (a *Applier) rollback(ctx context.Context, created []*pages.Page) {
	for _, page := range created {
		if err := a.pages.Purge(ctx, page.ID); err != nil {
			a.logger.Warn("templates.rollback.failed", "page_id", page.ID.String(), "error", err)
		}
	}
}
