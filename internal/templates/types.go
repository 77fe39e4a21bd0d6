package templates

import (
	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

// Template bundles the pages, settings, and seed content used to bootstrap a
// site. Templates are interchanged as JSON; the field tags below are the wire
// format.
type Template struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Pages           []TemplatePage `json:"pages"`
	SiteSettings    SiteSettings   `json:"siteSettings"`
	RequiredModules []modules.ID   `json:"requiredModules,omitempty"`

	BlogPosts            []BlogPost            `json:"blogPosts,omitempty"`
	KBCategories         []KBCategory          `json:"kbCategories,omitempty"`
	Products             []CatalogProduct      `json:"products,omitempty"`
	Branding             *Branding             `json:"branding,omitempty"`
	ChatSettings         *ChatSettings         `json:"chatSettings,omitempty"`
	HeaderSettings       *HeaderSettings       `json:"headerSettings,omitempty"`
	FooterSettings       *FooterSettings       `json:"footerSettings,omitempty"`
	SEOSettings          *SEOSettings          `json:"seoSettings,omitempty"`
	CookieBannerSettings *CookieBannerSettings `json:"cookieBannerSettings,omitempty"`
}

// TemplatePage is one page bundled in a template.
type TemplatePage struct {
	Title  string      `json:"title"`
	Slug   string      `json:"slug"`
	Blocks blocks.List `json:"blocks"`
	Meta   *pages.Meta `json:"meta,omitempty"`
}

// SiteSettings carries the site-wide settings a template applies.
type SiteSettings struct {
	HomepageSlug string `json:"homepageSlug"`
	SiteName     string `json:"siteName,omitempty"`
}

// BlogPost is a seed post shipped with a template.
type BlogPost struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Excerpt string   `json:"excerpt,omitempty"`
	Body    string   `json:"body,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// KBCategory is a seed knowledge-base category shipped with a template.
type KBCategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// CatalogProduct is a seed product shipped with a template.
type CatalogProduct struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents,omitempty"`
	Currency    string `json:"currency,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Branding presets applied by a template.
type Branding struct {
	SiteName       string `json:"siteName,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
}

// ChatSettings presets applied by a template.
type ChatSettings struct {
	Greeting  string `json:"greeting,omitempty"`
	AgentName string `json:"agentName,omitempty"`
}

// NavLink is a single navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HeaderSettings presets applied by a template.
type HeaderSettings struct {
	Links    []NavLink `json:"links,omitempty"`
	ShowLogo bool      `json:"showLogo,omitempty"`
}

// FooterSettings presets applied by a template.
type FooterSettings struct {
	Links     []NavLink `json:"links,omitempty"`
	Copyright string    `json:"copyright,omitempty"`
}

// SEOSettings presets applied by a template.
type SEOSettings struct {
	TitleSuffix        string `json:"titleSuffix,omitempty"`
	DefaultDescription string `json:"defaultDescription,omitempty"`
	SocialImage        string `json:"socialImage,omitempty"`
}

// CookieBannerSettings presets applied by a template.
type CookieBannerSettings struct {
	Enabled   bool   `json:"enabled"`
	Message   string `json:"message,omitempty"`
	PolicyURL string `json:"policyUrl,omitempty"`
}

// Clone deep-copies the template so catalog consumers can mutate their copy
// without affecting the registered entry. Block identifiers are preserved;
// fresh identifiers are issued at apply time, not here.
func (t Template) Clone() Template {
	out := t
	out.Pages = make([]TemplatePage, len(t.Pages))
	for i, page := range t.Pages {
		copied := page
		copied.Blocks = page.Blocks.Copy()
		if page.Meta != nil {
			meta := *page.Meta
			copied.Meta = &meta
		}
		out.Pages[i] = copied
	}
	out.RequiredModules = append([]modules.ID(nil), t.RequiredModules...)
	out.BlogPosts = append([]BlogPost(nil), t.BlogPosts...)
	out.KBCategories = append([]KBCategory(nil), t.KBCategories...)
	out.Products = append([]CatalogProduct(nil), t.Products...)
	return out
}
