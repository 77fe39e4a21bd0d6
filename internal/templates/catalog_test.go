package templates_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/templates"
)

func TestDefaultCatalogSatisfiesModuleInvariant(t *testing.T) {
	registry := blocks.Default()
	catalog, err := templates.DefaultCatalog(registry)
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	entries := catalog.List()
	if len(entries) == 0 {
		t.Fatal("default catalog should ship templates")
	}
	for _, tpl := range entries {
		check := templates.Validate(registry, tpl.RequiredModules, pageBlocks(&tpl))
		if !check.Valid {
			t.Fatalf("template %s declares %v but misses %v", tpl.ID, tpl.RequiredModules, check.Missing)
		}
	}
}

func TestCatalogGetReturnsIndependentCopies(t *testing.T) {
	catalog, err := templates.DefaultCatalog(blocks.Default())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	first, err := catalog.Get("launchpad")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first.Pages[0].Blocks[0] = blocks.Block{}
	first.SiteSettings.SiteName = "mutated"

	second, err := catalog.Get("Launchpad")
	if err != nil {
		t.Fatalf("get is case-insensitive: %v", err)
	}
	if second.SiteSettings.SiteName == "mutated" {
		t.Fatal("catalog entries must not share state with returned copies")
	}
	if second.Pages[0].Blocks[0].Kind == "" {
		t.Fatal("catalog entry blocks were mutated through a copy")
	}
}

func TestCatalogGetUnknownTemplate(t *testing.T) {
	catalog, err := templates.DefaultCatalog(blocks.Default())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if _, err := catalog.Get("nope"); !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("expected templates.ErrTemplateNotFound, got %v", err)
	}
}

func TestCatalogRejectsDuplicateRegistration(t *testing.T) {
	catalog := templates.NewCatalog(blocks.Default())
	if err := catalog.Register(builtin(t, "launchpad")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := catalog.Register(builtin(t, "launchpad")); !errors.Is(err, templates.ErrTemplateExists) {
		t.Fatalf("expected templates.ErrTemplateExists, got %v", err)
	}
}

func TestCatalogRejectsInvalidTemplate(t *testing.T) {
	catalog := templates.NewCatalog(blocks.Default())

	broken := builtin(t, "launchpad")
	broken.ID = "broken"
	broken.SiteSettings.HomepageSlug = "does-not-exist"
	if err := catalog.Register(broken); err == nil {
		t.Fatal("homepage mismatch should be rejected at registration")
	}

	undeclared := templates.Template{
		ID:   "undeclared",
		Name: "Undeclared",
		Pages: []templates.TemplatePage{{
			Title:  "Shop",
			Slug:   "shop",
			Blocks: blocks.List{seedBlock(blocks.ProductsData{})},
		}},
		SiteSettings:    templates.SiteSettings{HomepageSlug: "shop"},
		RequiredModules: []modules.ID{modules.ModuleBlog},
	}
	if err := catalog.Register(undeclared); err == nil {
		t.Fatal("undeclared derived module should be rejected at registration")
	}
}
