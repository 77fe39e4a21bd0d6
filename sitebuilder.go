package sitebuilder

import (
	"context"

	templatescmd "github.com/goliatone/go-sitebuilder/internal/commands/templates"
	"github.com/goliatone/go-sitebuilder/internal/di"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
	"github.com/goliatone/go-sitebuilder/internal/render"
	"github.com/goliatone/go-sitebuilder/internal/templates"
)

// PageService exports the page service contract.
type PageService = pages.Service

// ModuleService exports the module gate service contract.
type ModuleService = modules.Service

// Module is the top-level site builder runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a site builder module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Modules returns the configured module gate service.
func (m *Module) Modules() ModuleService {
	return m.container.ModuleService()
}

// Renderer returns the configured renderer.
func (m *Module) Renderer() *render.Renderer {
	return m.container.Renderer()
}

// Catalog returns the starter template catalog.
func (m *Module) Catalog() *templates.Catalog {
	return m.container.Catalog()
}

// Importer returns the template importer.
func (m *Module) Importer() *templates.Importer {
	return m.container.Importer()
}

// Applier returns the template applier.
func (m *Module) Applier() *templates.Applier {
	return m.container.Applier()
}

// ImportTemplateHandler returns the template import command handler.
func (m *Module) ImportTemplateHandler() *templatescmd.ImportTemplateHandler {
	return m.container.ImportTemplateHandler()
}

// ApplyTemplateHandler returns the template apply command handler.
func (m *Module) ApplyTemplateHandler() *templatescmd.ApplyTemplateHandler {
	return m.container.ApplyTemplateHandler()
}

// RenderPublished looks up a published page by slug and renders it for public
// viewing under a fresh module gate snapshot.
func (m *Module) RenderPublished(ctx context.Context, slug string) (*render.Result, error) {
	page, err := m.Pages().GetPublished(ctx, slug)
	if err != nil {
		return nil, err
	}
	gate, err := m.Modules().Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return m.Renderer().RenderPage(ctx, page, gate, render.ModePublic)
}

// RenderDraft looks up a page in any status and renders it in edit mode, with
// placeholders for gated, unknown, and malformed blocks.
func (m *Module) RenderDraft(ctx context.Context, slug string) (*render.Result, error) {
	page, err := m.Pages().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	gate, err := m.Modules().Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return m.Renderer().RenderPage(ctx, page, gate, render.ModeEdit)
}
