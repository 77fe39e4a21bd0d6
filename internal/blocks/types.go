package blocks

import (
	"github.com/google/uuid"
)

// Kind identifies one block variant out of the closed set the site builder
// understands. The set is fixed at compile time; pages authored against a
// newer set still decode (see UnknownData) but render as placeholders.
type Kind string

const (
	KindHero             Kind = "hero"
	KindText             Kind = "text"
	KindRichText         Kind = "richText"
	KindImage            Kind = "image"
	KindCTA              Kind = "cta"
	KindFeatures         Kind = "features"
	KindPricing          Kind = "pricing"
	KindFAQ              Kind = "faq"
	KindTestimonials     Kind = "testimonials"
	KindTable            Kind = "table"
	KindDivider          Kind = "divider"
	KindEmbed            Kind = "embed"
	KindProducts         Kind = "products"
	KindProductGrid      Kind = "productGrid"
	KindChat             Kind = "chat"
	KindBlogPosts        Kind = "blogPosts"
	KindKBArticles       Kind = "kbArticles"
	KindNewsletterSignup Kind = "newsletterSignup"
	KindBooking          Kind = "booking"
	KindColumns          Kind = "columns"
	KindTabs             Kind = "tabs"
)

// Kinds lists every known block kind in stable order.
func Kinds() []Kind {
	return []Kind{
		KindHero, KindText, KindRichText, KindImage, KindCTA,
		KindFeatures, KindPricing, KindFAQ, KindTestimonials, KindTable,
		KindDivider, KindEmbed,
		KindProducts, KindProductGrid, KindChat, KindBlogPosts,
		KindKBArticles, KindNewsletterSignup, KindBooking,
		KindColumns, KindTabs,
	}
}

// Data is the variant payload carried by a block. Every known kind has
// exactly one payload type; the set is closed within this package.
type Data interface {
	BlockKind() Kind
	deepCopy() Data
}

// Container is implemented by payloads that nest child blocks. Nested-block
// scans (module derivation, re-identification) recurse through this accessor
// instead of enumerating container shapes by name.
type Container interface {
	Data
	Children() []Block
}

// Block is one self-contained unit of page content: a stable identifier, a
// kind tag, and a payload whose shape is determined entirely by the kind.
type Block struct {
	ID   uuid.UUID
	Kind Kind
	Data Data
}

// List is an ordered sequence of blocks; order is render order.
type List []Block

// HeroData is the payload for hero banner blocks.
type HeroData struct {
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CTALabel  string `json:"ctaLabel,omitempty"`
	CTAHref   string `json:"ctaHref,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

func (HeroData) BlockKind() Kind { return KindHero }
func (d HeroData) deepCopy() Data {
	return d
}

// TextData is the payload for markdown text blocks.
type TextData struct {
	Markdown string `json:"markdown,omitempty"`
}

func (TextData) BlockKind() Kind { return KindText }
func (d TextData) deepCopy() Data {
	return d
}

// RichTextData is the payload for pre-rendered rich text blocks. HTML is
// sanitized at render time, never trusted as authored.
type RichTextData struct {
	HTML string `json:"html,omitempty"`
}

func (RichTextData) BlockKind() Kind { return KindRichText }
func (d RichTextData) deepCopy() Data {
	return d
}

// ImageData is the payload for single image blocks.
type ImageData struct {
	URL     string `json:"url,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func (ImageData) BlockKind() Kind { return KindImage }
func (d ImageData) deepCopy() Data {
	return d
}

// CTAData is the payload for call-to-action blocks.
type CTAData struct {
	Label string `json:"label,omitempty"`
	Href  string `json:"href,omitempty"`
	Style string `json:"style,omitempty"`
}

func (CTAData) BlockKind() Kind { return KindCTA }
func (d CTAData) deepCopy() Data {
	return d
}

// FeatureItem is one entry in a features block.
type FeatureItem struct {
	Icon  string `json:"icon,omitempty"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// FeaturesData is the payload for feature grid blocks.
type FeaturesData struct {
	Title string        `json:"title,omitempty"`
	Items []FeatureItem `json:"items,omitempty"`
}

func (FeaturesData) BlockKind() Kind { return KindFeatures }
func (d FeaturesData) deepCopy() Data {
	out := d
	out.Items = append([]FeatureItem(nil), d.Items...)
	return out
}

// PricingTier is one column in a pricing block.
type PricingTier struct {
	Name      string   `json:"name,omitempty"`
	Price     string   `json:"price,omitempty"`
	Period    string   `json:"period,omitempty"`
	Features  []string `json:"features,omitempty"`
	CTALabel  string   `json:"ctaLabel,omitempty"`
	CTAHref   string   `json:"ctaHref,omitempty"`
	Highlight bool     `json:"highlight,omitempty"`
}

// PricingData is the payload for pricing table blocks.
type PricingData struct {
	Title string        `json:"title,omitempty"`
	Tiers []PricingTier `json:"tiers,omitempty"`
}

func (PricingData) BlockKind() Kind { return KindPricing }
func (d PricingData) deepCopy() Data {
	out := d
	out.Tiers = make([]PricingTier, len(d.Tiers))
	for i, tier := range d.Tiers {
		tier.Features = append([]string(nil), tier.Features...)
		out.Tiers[i] = tier
	}
	return out
}

// FAQItem is one question/answer pair in an FAQ block.
type FAQItem struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// FAQData is the payload for FAQ accordion blocks.
type FAQData struct {
	Title string    `json:"title,omitempty"`
	Items []FAQItem `json:"items,omitempty"`
}

func (FAQData) BlockKind() Kind { return KindFAQ }
func (d FAQData) deepCopy() Data {
	out := d
	out.Items = append([]FAQItem(nil), d.Items...)
	return out
}

// Testimonial is one quote in a testimonials block.
type Testimonial struct {
	Quote  string `json:"quote,omitempty"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
}

// TestimonialsData is the payload for testimonial carousel blocks.
type TestimonialsData struct {
	Title string        `json:"title,omitempty"`
	Items []Testimonial `json:"items,omitempty"`
}

func (TestimonialsData) BlockKind() Kind { return KindTestimonials }
func (d TestimonialsData) deepCopy() Data {
	out := d
	out.Items = append([]Testimonial(nil), d.Items...)
	return out
}

// TableData is the payload for comparison table blocks.
type TableData struct {
	Caption string     `json:"caption,omitempty"`
	Header  []string   `json:"header,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

func (TableData) BlockKind() Kind { return KindTable }
func (d TableData) deepCopy() Data {
	out := d
	out.Header = append([]string(nil), d.Header...)
	out.Rows = make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// DividerData is the payload for divider blocks.
type DividerData struct {
	Style string `json:"style,omitempty"`
}

func (DividerData) BlockKind() Kind { return KindDivider }
func (d DividerData) deepCopy() Data {
	return d
}

// EmbedData is the payload for external embed blocks.
type EmbedData struct {
	URL    string `json:"url,omitempty"`
	Title  string `json:"title,omitempty"`
	Height int    `json:"height,omitempty"`
}

func (EmbedData) BlockKind() Kind { return KindEmbed }
func (d EmbedData) deepCopy() Data {
	return d
}

// ProductsData is the payload for curated product list blocks.
// Requires the products module.
type ProductsData struct {
	Title      string   `json:"title,omitempty"`
	ProductIDs []string `json:"productIds,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

func (ProductsData) BlockKind() Kind { return KindProducts }
func (d ProductsData) deepCopy() Data {
	out := d
	out.ProductIDs = append([]string(nil), d.ProductIDs...)
	return out
}

// ProductGridData is the payload for category-driven product grid blocks.
// Requires the products module.
type ProductGridData struct {
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	Columns  int    `json:"columns,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

func (ProductGridData) BlockKind() Kind { return KindProductGrid }
func (d ProductGridData) deepCopy() Data {
	return d
}

// ChatData is the payload for chat widget blocks. Requires the chat module.
type ChatData struct {
	Greeting    string `json:"greeting,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

func (ChatData) BlockKind() Kind { return KindChat }
func (d ChatData) deepCopy() Data {
	return d
}

// BlogPostsData is the payload for blog listing blocks. Requires the blog module.
type BlogPostsData struct {
	Title string `json:"title,omitempty"`
	Tag   string `json:"tag,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

func (BlogPostsData) BlockKind() Kind { return KindBlogPosts }
func (d BlogPostsData) deepCopy() Data {
	return d
}

// KBArticlesData is the payload for knowledge-base article blocks.
// Requires the knowledgeBase module.
type KBArticlesData struct {
	Title      string `json:"title,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func (KBArticlesData) BlockKind() Kind { return KindKBArticles }
func (d KBArticlesData) deepCopy() Data {
	return d
}

// NewsletterSignupData is the payload for newsletter signup blocks.
// Requires the newsletter module.
type NewsletterSignupData struct {
	Title       string `json:"title,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	Disclaimer  string `json:"disclaimer,omitempty"`
}

func (NewsletterSignupData) BlockKind() Kind { return KindNewsletterSignup }
func (d NewsletterSignupData) deepCopy() Data {
	return d
}

// BookingData is the payload for booking blocks. Requires the bookings module.
type BookingData struct {
	Title     string `json:"title,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
}

func (BookingData) BlockKind() Kind { return KindBooking }
func (d BookingData) deepCopy() Data {
	return d
}

// ColumnsData is the payload for two-column layout blocks. Left and right are
// named slots holding nested blocks.
type ColumnsData struct {
	Ratio string `json:"ratio,omitempty"`
	Left  List   `json:"left,omitempty"`
	Right List   `json:"right,omitempty"`
}

func (ColumnsData) BlockKind() Kind { return KindColumns }
func (d ColumnsData) deepCopy() Data {
	out := d
	out.Left = d.Left.deepCopy()
	out.Right = d.Right.deepCopy()
	return out
}

// Children returns every nested block across both column slots.
func (d ColumnsData) Children() []Block {
	out := make([]Block, 0, len(d.Left)+len(d.Right))
	out = append(out, d.Left...)
	out = append(out, d.Right...)
	return out
}

// Tab is one labelled slot inside a tabs block.
type Tab struct {
	Title  string `json:"title,omitempty"`
	Blocks List   `json:"blocks,omitempty"`
}

// TabsData is the payload for tabbed layout blocks; each tab holds nested blocks.
type TabsData struct {
	Tabs []Tab `json:"tabs,omitempty"`
}

func (TabsData) BlockKind() Kind { return KindTabs }
func (d TabsData) deepCopy() Data {
	out := d
	out.Tabs = make([]Tab, len(d.Tabs))
	for i, tab := range d.Tabs {
		tab.Blocks = tab.Blocks.deepCopy()
		out.Tabs[i] = tab
	}
	return out
}

// Children returns every nested block across all tab slots.
func (d TabsData) Children() []Block {
	out := make([]Block, 0)
	for _, tab := range d.Tabs {
		out = append(out, tab.Blocks...)
	}
	return out
}

// UnknownData preserves the raw payload of a block whose kind is not part of
// this registry version. It round-trips losslessly and renders as a
// placeholder in edit mode, nothing in public mode.
type UnknownData struct {
	Kind Kind
	Raw  []byte
}

func (d UnknownData) BlockKind() Kind { return d.Kind }
func (d UnknownData) deepCopy() Data {
	out := d
	out.Raw = append([]byte(nil), d.Raw...)
	return out
}

// MalformedData preserves the raw payload of a known block kind whose data
// did not match its shape contract. The block renders as a flagged
// placeholder in edit mode and nothing in public mode; siblings are
// unaffected.
type MalformedData struct {
	Kind   Kind
	Raw    []byte
	Reason string
}

func (d MalformedData) BlockKind() Kind { return d.Kind }
func (d MalformedData) deepCopy() Data {
	out := d
	out.Raw = append([]byte(nil), d.Raw...)
	return out
}

var (
	_ Container = ColumnsData{}
	_ Container = TabsData{}
)
