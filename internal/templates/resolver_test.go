package templates_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/templates"
)

func TestDeriveRequiredModulesIsIdempotent(t *testing.T) {
	registry := blocks.Default()
	list := blocks.List{
		seedBlock(blocks.HeroData{Title: "hi"}),
		seedBlock(blocks.ProductsData{}),
		seedBlock(blocks.ChatData{}),
	}

	first := templates.DeriveRequiredModules(registry, list)
	second := templates.DeriveRequiredModules(registry, list)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("derivation not stable: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(first, []modules.ID{modules.ModuleChat, modules.ModuleProducts}) {
		t.Fatalf("unexpected derived set: %v", first)
	}
}

func TestDeriveRecursesIntoContainers(t *testing.T) {
	registry := blocks.Default()
	list := blocks.List{
		seedBlock(blocks.ColumnsData{
			Left: blocks.List{seedBlock(blocks.ProductGridData{})},
			Right: blocks.List{seedBlock(blocks.TabsData{
				Tabs: []blocks.Tab{{Title: "Support", Blocks: blocks.List{seedBlock(blocks.KBArticlesData{})}}},
			})},
		}),
	}

	derived := templates.DeriveRequiredModules(registry, list)
	want := []modules.ID{modules.ModuleKnowledgeBase, modules.ModuleProducts}
	if !reflect.DeepEqual(derived, want) {
		t.Fatalf("derived %v, want %v", derived, want)
	}
}

func TestDeriveIgnoresBlocksWithoutKind(t *testing.T) {
	registry := blocks.Default()
	list := blocks.List{
		{ID: uuid.New()}, // no kind, no payload
		seedBlock(blocks.TextData{}),
	}
	if derived := templates.DeriveRequiredModules(registry, list); len(derived) != 0 {
		t.Fatalf("expected empty set, got %v", derived)
	}
}

func TestValidateComputesSetDifference(t *testing.T) {
	registry := blocks.Default()
	list := blocks.List{seedBlock(blocks.ProductsData{}), seedBlock(blocks.ChatData{})}

	result := templates.Validate(registry, []modules.ID{modules.ModuleProducts}, list)
	if result.Valid {
		t.Fatal("missing chat module should invalidate")
	}
	if !reflect.DeepEqual(result.Missing, []modules.ID{modules.ModuleChat}) {
		t.Fatalf("unexpected missing set: %v", result.Missing)
	}

	// Extra declared modules are tolerated.
	result = templates.Validate(registry, []modules.ID{modules.ModuleProducts, modules.ModuleChat, modules.ModuleBlog}, list)
	if !result.Valid || len(result.Missing) != 0 {
		t.Fatalf("extra declared modules must not invalidate: %#v", result)
	}
}

func TestValidateHeroOnlyTemplate(t *testing.T) {
	registry := blocks.Default()
	list := blocks.List{seedBlock(blocks.HeroData{Title: "hi"})}

	result := templates.Validate(registry, nil, list)
	if !result.Valid {
		t.Fatal("hero-only template must validate with no declared modules")
	}
	if len(result.Derived) != 0 || len(result.Missing) != 0 {
		t.Fatalf("expected empty sets, got %#v", result)
	}
}
