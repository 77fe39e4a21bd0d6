package blocks

import "github.com/goliatone/go-sitebuilder/internal/modules"

// Default builds the registry covering the full closed block set, including
// the module dependencies for gated kinds.
func Default() *Registry {
	return NewRegistry(
		Entry{
			Kind:     KindHero,
			Title:    "Hero",
			Category: "marketing",
			Schema: objectSchema(map[string]any{
				"title":     stringSchema(),
				"subtitle":  stringSchema(),
				"imageUrl":  stringSchema(),
				"ctaLabel":  stringSchema(),
				"ctaHref":   stringSchema(),
				"alignment": map[string]any{"type": "string", "enum": []string{"left", "center", "right"}},
			}),
			Defaults: func() Data { return HeroData{Alignment: "center"} },
		},
		Entry{
			Kind:     KindText,
			Title:    "Text",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"markdown": stringSchema(),
			}),
			Defaults: func() Data { return TextData{} },
		},
		Entry{
			Kind:     KindRichText,
			Title:    "Rich Text",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"html": stringSchema(),
			}),
			Defaults: func() Data { return RichTextData{} },
		},
		Entry{
			Kind:     KindImage,
			Title:    "Image",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"url":     stringSchema(),
				"alt":     stringSchema(),
				"caption": stringSchema(),
			}),
			Defaults: func() Data { return ImageData{} },
		},
		Entry{
			Kind:     KindCTA,
			Title:    "Call To Action",
			Category: "marketing",
			Schema: objectSchema(map[string]any{
				"label": stringSchema(),
				"href":  stringSchema(),
				"style": stringSchema(),
			}),
			Defaults: func() Data { return CTAData{Style: "primary"} },
		},
		Entry{
			Kind:     KindFeatures,
			Title:    "Features",
			Category: "marketing",
			Schema: objectSchema(map[string]any{
				"title": stringSchema(),
				"items": arraySchema(objectSchema(map[string]any{
					"icon":  stringSchema(),
					"title": stringSchema(),
					"body":  stringSchema(),
				})),
			}),
			Defaults: func() Data { return FeaturesData{} },
		},
		Entry{
			Kind:     KindPricing,
			Title:    "Pricing",
			Category: "marketing",
			Schema: objectSchema(map[string]any{
				"title": stringSchema(),
				"tiers": arraySchema(objectSchema(map[string]any{
					"name":      stringSchema(),
					"price":     stringSchema(),
					"period":    stringSchema(),
					"features":  arraySchema(stringSchema()),
					"ctaLabel":  stringSchema(),
					"ctaHref":   stringSchema(),
					"highlight": map[string]any{"type": "boolean"},
				})),
			}),
			Defaults: func() Data { return PricingData{} },
		},
		Entry{
			Kind:     KindFAQ,
			Title:    "FAQ",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"title": stringSchema(),
				"items": arraySchema(objectSchema(map[string]any{
					"question": stringSchema(),
					"answer":   stringSchema(),
				})),
			}),
			Defaults: func() Data { return FAQData{} },
		},
		Entry{
			Kind:     KindTestimonials,
			Title:    "Testimonials",
			Category: "marketing",
			Schema: objectSchema(map[string]any{
				"title": stringSchema(),
				"items": arraySchema(objectSchema(map[string]any{
					"quote":  stringSchema(),
					"author": stringSchema(),
					"role":   stringSchema(),
				})),
			}),
			Defaults: func() Data { return TestimonialsData{} },
		},
		Entry{
			Kind:     KindTable,
			Title:    "Table",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"caption": stringSchema(),
				"header":  arraySchema(stringSchema()),
				"rows":    arraySchema(arraySchema(stringSchema())),
			}),
			Defaults: func() Data { return TableData{} },
		},
		Entry{
			Kind:     KindDivider,
			Title:    "Divider",
			Category: "layout",
			Schema: objectSchema(map[string]any{
				"style": stringSchema(),
			}),
			Defaults: func() Data { return DividerData{} },
		},
		Entry{
			Kind:     KindEmbed,
			Title:    "Embed",
			Category: "content",
			Schema: objectSchema(map[string]any{
				"url":    stringSchema(),
				"title":  stringSchema(),
				"height": map[string]any{"type": "integer", "minimum": 0},
			}),
			Defaults: func() Data { return EmbedData{Height: 400} },
		},
		Entry{
			Kind:     KindProducts,
			Title:    "Products",
			Category: "commerce",
			Module:   modules.ModuleProducts,
			Schema: objectSchema(map[string]any{
				"title":      stringSchema(),
				"productIds": arraySchema(stringSchema()),
				"limit":      map[string]any{"type": "integer", "minimum": 0},
			}),
			Defaults: func() Data { return ProductsData{Limit: 4} },
		},
		Entry{
			Kind:     KindProductGrid,
			Title:    "Product Grid",
			Category: "commerce",
			Module:   modules.ModuleProducts,
			Schema: objectSchema(map[string]any{
				"title":    stringSchema(),
				"category": stringSchema(),
				"columns":  map[string]any{"type": "integer", "minimum": 1, "maximum": 6},
				"limit":    map[string]any{"type": "integer", "minimum": 0},
			}),
			Defaults: func() Data { return ProductGridData{Columns: 3, Limit: 9} },
		},
		Entry{
			Kind:     KindChat,
			Title:    "Chat",
			Category: "engagement",
			Module:   modules.ModuleChat,
			Schema: objectSchema(map[string]any{
				"greeting":    stringSchema(),
				"placeholder": stringSchema(),
			}),
			Defaults: func() Data { return ChatData{Greeting: "Hi! How can we help?"} },
		},
		Entry{
			Kind:     KindBlogPosts,
			Title:    "Blog Posts",
			Category: "content",
			Module:   modules.ModuleBlog,
			Schema: objectSchema(map[string]any{
				"title": stringSchema(),
				"tag":   stringSchema(),
				"limit": map[string]any{"type": "integer", "minimum": 0},
			}),
			Defaults: func() Data { return BlogPostsData{Limit: 3} },
		},
		Entry{
			Kind:     KindKBArticles,
			Title:    "Featured Articles",
			Category: "content",
			Module:   modules.ModuleKnowledgeBase,
			Schema: objectSchema(map[string]any{
				"title":      stringSchema(),
				"categoryId": stringSchema(),
				"limit":      map[string]any{"type": "integer", "minimum": 0},
			}),
			Defaults: func() Data { return KBArticlesData{Limit: 3} },
		},
		Entry{
			Kind:     KindNewsletterSignup,
			Title:    "Newsletter Signup",
			Category: "engagement",
			Module:   modules.ModuleNewsletter,
			Schema: objectSchema(map[string]any{
				"title":       stringSchema(),
				"buttonLabel": stringSchema(),
				"disclaimer":  stringSchema(),
			}),
			Defaults: func() Data { return NewsletterSignupData{ButtonLabel: "Subscribe"} },
		},
		Entry{
			Kind:     KindBooking,
			Title:    "Booking",
			Category: "engagement",
			Module:   modules.ModuleBookings,
			Schema: objectSchema(map[string]any{
				"title":     stringSchema(),
				"serviceId": stringSchema(),
			}),
			Defaults: func() Data { return BookingData{} },
		},
		Entry{
			Kind:      KindColumns,
			Title:     "Columns",
			Category:  "layout",
			Container: true,
			Schema: objectSchema(map[string]any{
				"ratio": stringSchema(),
				"left":  arraySchema(map[string]any{"type": "object"}),
				"right": arraySchema(map[string]any{"type": "object"}),
			}),
			Defaults: func() Data { return ColumnsData{Ratio: "1:1"} },
		},
		Entry{
			Kind:      KindTabs,
			Title:     "Tabs",
			Category:  "layout",
			Container: true,
			Schema: objectSchema(map[string]any{
				"tabs": arraySchema(objectSchema(map[string]any{
					"title":  stringSchema(),
					"blocks": arraySchema(map[string]any{"type": "object"}),
				})),
			}),
			Defaults: func() Data { return TabsData{} },
		},
	)
}

func objectSchema(properties map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}

func stringSchema() map[string]any {
	return map[string]any{"type": "string"}
}

func arraySchema(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}
