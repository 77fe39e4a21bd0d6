package sitebuilder_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	sitebuilder "github.com/goliatone/go-sitebuilder"
	templatescmd "github.com/goliatone/go-sitebuilder/internal/commands/templates"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

func newTestModule(t *testing.T) *sitebuilder.Module {
	t.Helper()
	cfg := sitebuilder.DefaultConfig()
	cfg.Logging.Provider = "noop"
	module, err := sitebuilder.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func TestApplyCatalogTemplateAndRender(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	err := module.ApplyTemplateHandler().Execute(ctx, templatescmd.ApplyTemplateCommand{
		TemplateID: "launchpad",
	})
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}

	result, err := module.RenderPublished(ctx, "home")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "Launch your idea") {
		t.Fatalf("hero content missing from output: %s", html)
	}
	if len(result.Problems) != 0 || len(result.Skipped) != 0 {
		t.Fatalf("clean template should render cleanly: %#v", result)
	}
}

func TestRenderPublishedHidesDrafts(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	if _, err := module.Pages().Create(ctx, pages.CreatePageRequest{Slug: "wip"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := module.RenderPublished(ctx, "wip"); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("drafts must not render publicly, got %v", err)
	}
	if _, err := module.RenderDraft(ctx, "wip"); err != nil {
		t.Fatalf("draft preview should work: %v", err)
	}
}

func TestModuleToggleGatesRenderedBlocks(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	err := module.ApplyTemplateHandler().Execute(ctx, templatescmd.ApplyTemplateCommand{
		TemplateID: "storefront",
	})
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}

	if _, err := module.Modules().SetEnabled(ctx, modules.ModuleProducts, false); err != nil {
		t.Fatalf("disable products: %v", err)
	}

	result, err := module.RenderPublished(ctx, "shop")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(result.Skipped) == 0 {
		t.Fatal("disabled module should skip its blocks")
	}
	for _, skipped := range result.Skipped {
		if skipped.Module != modules.ModuleProducts {
			t.Fatalf("unexpected skip: %#v", skipped)
		}
	}
	if strings.Contains(string(result.HTML), "block-products") {
		t.Fatal("gated block markup should not appear in public output")
	}
}

func TestImportTemplateEndToEnd(t *testing.T) {
	ctx := context.Background()
	module := newTestModule(t)

	payload := []byte(`{
		"id": "custom",
		"name": "Custom",
		"pages": [{
			"title": "Landing",
			"slug": "landing",
			"blocks": [
				{"type": "hero", "data": {"title": "Hello"}},
				{"type": "text", "data": {"markdown": "# Welcome"}}
			]
		}],
		"siteSettings": {"homepageSlug": "landing"}
	}`)

	err := module.ImportTemplateHandler().Execute(ctx, templatescmd.ImportTemplateCommand{
		Payload: payload,
		Apply:   true,
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	result, err := module.RenderPublished(ctx, "landing")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "Hello") || !strings.Contains(html, "<h1") {
		t.Fatalf("imported blocks missing from output: %s", html)
	}
}
