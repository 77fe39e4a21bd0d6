package main

import (
	"context"
	"fmt"
	"log"

	sitebuilder "github.com/goliatone/go-sitebuilder"
	templatescmd "github.com/goliatone/go-sitebuilder/internal/commands/templates"
	"github.com/goliatone/go-sitebuilder/internal/di"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/render"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// demoProducts serves a fixed product list so the storefront template has
// something to render without a real catalog behind it.
type demoProducts struct{}

func (demoProducts) Products(_ context.Context, query interfaces.ProductQuery) ([]interfaces.Product, error) {
	products := []interfaces.Product{
		{ID: "tote", Name: "Canvas Tote", PriceCents: 2400, Currency: "USD", InStock: true},
		{ID: "mug", Name: "Enamel Mug", PriceCents: 1800, Currency: "USD", InStock: true},
		{ID: "cap", Name: "Wool Cap", PriceCents: 3200, Currency: "USD"},
	}
	if query.Limit > 0 && query.Limit < len(products) {
		products = products[:query.Limit]
	}
	return products, nil
}

func main() {
	ctx := context.Background()

	cfg := sitebuilder.DefaultConfig()
	cfg.Logging.Level = "warn"

	module, err := sitebuilder.New(cfg, di.WithSources(render.Sources{
		Products: demoProducts{},
	}))
	if err != nil {
		log.Fatalf("sitebuilder: %v", err)
	}

	fmt.Println("starter templates:")
	for _, tpl := range module.Catalog().List() {
		fmt.Printf("  %-12s %s\n", tpl.ID, tpl.Description)
	}

	err = module.ApplyTemplateHandler().Execute(ctx, templatescmd.ApplyTemplateCommand{
		TemplateID: "storefront",
	})
	if err != nil {
		log.Fatalf("apply template: %v", err)
	}

	result, err := module.RenderPublished(ctx, "shop")
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println("\n--- shop (all modules enabled) ---")
	fmt.Println(result.HTML)

	// Turning a module off takes effect on the next render snapshot. The
	// product blocks disappear from public output without any page edits.
	if _, err := module.Modules().SetEnabled(ctx, modules.ModuleProducts, false); err != nil {
		log.Fatalf("disable products: %v", err)
	}

	result, err = module.RenderPublished(ctx, "shop")
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println("--- shop (products disabled) ---")
	fmt.Println(result.HTML)
	for _, skipped := range result.Skipped {
		fmt.Printf("skipped block %s (module %s)\n", skipped.BlockID, skipped.Module)
	}
}
