package templates

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

// Catalog holds the starter templates available for instantiation. Every
// registered entry satisfies the declared-modules superset invariant; Register
// refuses entries that do not.
type Catalog struct {
	registry *blocks.Registry
	entries  map[string]Template
	order    []string
}

// NewCatalog builds an empty catalog bound to a block registry.
func NewCatalog(registry *blocks.Registry) *Catalog {
	return &Catalog{
		registry: registry,
		entries:  make(map[string]Template),
	}
}

// Register validates and adds a template to the catalog.
func (c *Catalog) Register(tpl Template) error {
	id := strings.ToLower(strings.TrimSpace(tpl.ID))
	if id == "" {
		return &StructuralError{Issues: []Issue{{Path: "id", Message: "required key missing"}}}
	}
	if _, exists := c.entries[id]; exists {
		return fmt.Errorf("templates: register %q: %w", id, ErrTemplateExists)
	}

	encoded, err := Export(&tpl)
	if err != nil {
		return err
	}
	parsed := NewImporter(c.registry).Parse(encoded)
	if err := parsed.Err(); err != nil {
		return fmt.Errorf("templates: register %q: %w", id, err)
	}

	tpl.ID = id
	c.entries[id] = tpl.Clone()
	c.order = append(c.order, id)
	return nil
}

// Get returns a deep copy of a catalog template.
func (c *Catalog) Get(id string) (Template, error) {
	tpl, ok := c.entries[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Template{}, fmt.Errorf("templates: %q: %w", id, ErrTemplateNotFound)
	}
	return tpl.Clone(), nil
}

// List returns every catalog template in registration order.
func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].Clone())
	}
	return out
}

// DefaultCatalog builds the built-in starter catalog. Registration fails only
// on a programming error in the shipped templates, so failures surface as an
// error for the caller to treat as fatal at startup.
func DefaultCatalog(registry *blocks.Registry) (*Catalog, error) {
	catalog := NewCatalog(registry)
	for _, tpl := range []Template{
		launchpadTemplate(),
		storefrontTemplate(),
		helpdeskTemplate(),
	} {
		if err := catalog.Register(tpl); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func newBlock(data blocks.Data) blocks.Block {
	return blocks.Block{ID: uuid.New(), Kind: data.BlockKind(), Data: data}
}

// launchpadTemplate is a minimal marketing site with no module dependencies.
func launchpadTemplate() Template {
	return Template{
		ID:          "launchpad",
		Name:        "Launchpad",
		Description: "A one-page marketing site: hero, features, pricing, FAQ.",
		Pages: []TemplatePage{
			{
				Title: "Home",
				Slug:  "home",
				Blocks: blocks.List{
					newBlock(blocks.HeroData{
						Title:    "Launch your idea",
						Subtitle: "Everything you need to go from zero to live.",
						CTALabel: "Get started",
						CTAHref:  "/contact",
					}),
					newBlock(blocks.FeaturesData{
						Title: "Why us",
						Items: []blocks.FeatureItem{
							{Title: "Fast", Body: "Pages ship in minutes, not weeks."},
							{Title: "Flexible", Body: "Compose any layout from blocks."},
							{Title: "Focused", Body: "No clutter, just content."},
						},
					}),
					newBlock(blocks.PricingData{
						Title: "Pricing",
						Tiers: []blocks.PricingTier{
							{Name: "Starter", Price: "$0", Period: "mo", Features: []string{"1 site", "Community support"}},
							{Name: "Pro", Price: "$19", Period: "mo", Features: []string{"5 sites", "Priority support"}, Highlight: true},
						},
					}),
					newBlock(blocks.FAQData{
						Title: "Questions",
						Items: []blocks.FAQItem{
							{Question: "Can I cancel anytime?", Answer: "Yes, plans are month to month."},
						},
					}),
					newBlock(blocks.CTAData{Label: "Start building", Href: "/signup", Style: "primary"}),
				},
				Meta: &pages.Meta{Title: "Home", Description: "Launch your idea with a block-built site."},
			},
			{
				Title: "Contact",
				Slug:  "contact",
				Blocks: blocks.List{
					newBlock(blocks.TextData{Markdown: "## Get in touch\n\nWrite to hello@example.com and we will get back within a day."}),
				},
			},
		},
		SiteSettings: SiteSettings{HomepageSlug: "home", SiteName: "Launchpad"},
		Branding:     &Branding{PrimaryColor: "#1f2937", FontFamily: "Inter"},
	}
}

// storefrontTemplate showcases commerce blocks; requires products and newsletter.
func storefrontTemplate() Template {
	return Template{
		ID:          "storefront",
		Name:        "Storefront",
		Description: "A small shop front with a product grid and newsletter capture.",
		Pages: []TemplatePage{
			{
				Title: "Shop",
				Slug:  "shop",
				Blocks: blocks.List{
					newBlock(blocks.HeroData{Title: "New season, new gear", Alignment: "left"}),
					newBlock(blocks.ProductGridData{Title: "Featured", Columns: 3, Limit: 6}),
					newBlock(blocks.ColumnsData{
						Ratio: "2:1",
						Left: blocks.List{
							newBlock(blocks.TextData{Markdown: "### Free shipping\n\nOn every order over $50."}),
						},
						Right: blocks.List{
							newBlock(blocks.NewsletterSignupData{Title: "Get drop alerts", ButtonLabel: "Subscribe"}),
						},
					}),
				},
			},
		},
		SiteSettings:    SiteSettings{HomepageSlug: "shop", SiteName: "Storefront"},
		RequiredModules: []modules.ID{modules.ModuleProducts, modules.ModuleNewsletter},
		Products: []CatalogProduct{
			{Name: "Canvas Tote", PriceCents: 2400, Currency: "USD"},
			{Name: "Enamel Mug", PriceCents: 1800, Currency: "USD"},
		},
	}
}

// helpdeskTemplate showcases support blocks; requires knowledgeBase and chat.
func helpdeskTemplate() Template {
	return Template{
		ID:          "helpdesk",
		Name:        "Helpdesk",
		Description: "A support portal with knowledge-base articles and live chat.",
		Pages: []TemplatePage{
			{
				Title: "Support",
				Slug:  "support",
				Blocks: blocks.List{
					newBlock(blocks.HeroData{Title: "How can we help?"}),
					newBlock(blocks.TabsData{
						Tabs: []blocks.Tab{
							{
								Title: "Articles",
								Blocks: blocks.List{
									newBlock(blocks.KBArticlesData{Title: "Popular articles", Limit: 5}),
								},
							},
							{
								Title: "Chat",
								Blocks: blocks.List{
									newBlock(blocks.ChatData{Greeting: "Hi! Ask us anything."}),
								},
							},
						},
					}),
				},
			},
		},
		SiteSettings:    SiteSettings{HomepageSlug: "support", SiteName: "Helpdesk"},
		RequiredModules: []modules.ID{modules.ModuleKnowledgeBase, modules.ModuleChat},
		KBCategories: []KBCategory{
			{Name: "Getting started", Slug: "getting-started"},
			{Name: "Billing", Slug: "billing"},
		},
	}
}
