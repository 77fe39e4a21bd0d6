// Package templates re-exports template interchange, validation, and
// instantiation for library consumers.
package templates

import internal "github.com/goliatone/go-sitebuilder/internal/templates"

type (
	Template             = internal.Template
	TemplatePage         = internal.TemplatePage
	SiteSettings         = internal.SiteSettings
	BlogPost             = internal.BlogPost
	KBCategory           = internal.KBCategory
	CatalogProduct       = internal.CatalogProduct
	Branding             = internal.Branding
	ChatSettings         = internal.ChatSettings
	NavLink              = internal.NavLink
	HeaderSettings       = internal.HeaderSettings
	FooterSettings       = internal.FooterSettings
	SEOSettings          = internal.SEOSettings
	CookieBannerSettings = internal.CookieBannerSettings

	Issue            = internal.Issue
	StructuralError  = internal.StructuralError
	ParseResult      = internal.ParseResult
	Importer         = internal.Importer
	ValidationResult = internal.ValidationResult
	Catalog          = internal.Catalog
	Applier          = internal.Applier
	ApplyResult      = internal.ApplyResult
)

var (
	ErrTemplateRequired    = internal.ErrTemplateRequired
	ErrTemplateInvalid     = internal.ErrTemplateInvalid
	ErrTemplateNotFound    = internal.ErrTemplateNotFound
	ErrTemplateExists      = internal.ErrTemplateExists
	ErrPageServiceRequired = internal.ErrPageServiceRequired

	NewImporter           = internal.NewImporter
	Export                = internal.Export
	Validate              = internal.Validate
	DeriveRequiredModules = internal.DeriveRequiredModules
	NewCatalog            = internal.NewCatalog
	DefaultCatalog        = internal.DefaultCatalog
	NewApplier            = internal.NewApplier
	WithApplierLogger     = internal.WithApplierLogger
	PageFromMarkdown      = internal.PageFromMarkdown
	PagesFromMarkdown     = internal.PagesFromMarkdown
)
