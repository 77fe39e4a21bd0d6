// Package blocks re-exports the block schema and registry for library consumers.
package blocks

import internal "github.com/goliatone/go-sitebuilder/internal/blocks"

type (
	Kind      = internal.Kind
	Data      = internal.Data
	Container = internal.Container
	Block     = internal.Block
	List      = internal.List
	Entry     = internal.Entry
	Registry  = internal.Registry

	HeroData             = internal.HeroData
	TextData             = internal.TextData
	RichTextData         = internal.RichTextData
	ImageData            = internal.ImageData
	CTAData              = internal.CTAData
	FeatureItem          = internal.FeatureItem
	FeaturesData         = internal.FeaturesData
	PricingTier          = internal.PricingTier
	PricingData          = internal.PricingData
	FAQItem              = internal.FAQItem
	FAQData              = internal.FAQData
	Testimonial          = internal.Testimonial
	TestimonialsData     = internal.TestimonialsData
	TableData            = internal.TableData
	DividerData          = internal.DividerData
	EmbedData            = internal.EmbedData
	ProductsData         = internal.ProductsData
	ProductGridData      = internal.ProductGridData
	ChatData             = internal.ChatData
	BlogPostsData        = internal.BlogPostsData
	KBArticlesData       = internal.KBArticlesData
	NewsletterSignupData = internal.NewsletterSignupData
	BookingData          = internal.BookingData
	ColumnsData          = internal.ColumnsData
	Tab                  = internal.Tab
	TabsData             = internal.TabsData
	UnknownData          = internal.UnknownData
	MalformedData        = internal.MalformedData
)

const (
	KindHero             = internal.KindHero
	KindText             = internal.KindText
	KindRichText         = internal.KindRichText
	KindImage            = internal.KindImage
	KindCTA              = internal.KindCTA
	KindFeatures         = internal.KindFeatures
	KindPricing          = internal.KindPricing
	KindFAQ              = internal.KindFAQ
	KindTestimonials     = internal.KindTestimonials
	KindTable            = internal.KindTable
	KindDivider          = internal.KindDivider
	KindEmbed            = internal.KindEmbed
	KindProducts         = internal.KindProducts
	KindProductGrid      = internal.KindProductGrid
	KindChat             = internal.KindChat
	KindBlogPosts        = internal.KindBlogPosts
	KindKBArticles       = internal.KindKBArticles
	KindNewsletterSignup = internal.KindNewsletterSignup
	KindBooking          = internal.KindBooking
	KindColumns          = internal.KindColumns
	KindTabs             = internal.KindTabs
)

var (
	New         = internal.New
	NewRegistry = internal.NewRegistry
	Default     = internal.Default
	Kinds       = internal.Kinds
	KindSlug    = internal.KindSlug
)
