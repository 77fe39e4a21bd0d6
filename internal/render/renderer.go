package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const defaultEnablePath = "/admin/modules"

// Renderer turns a page document plus a module gate snapshot into HTML.
//
// All block-level failures are contained at the block boundary: a malformed
// payload, an unknown kind, or a failed fetch degrades that block only and is
// reported through Result.Problems. The renderer itself performs no side
// effects; data-dependent blocks fetch through the injected Sources.
type Renderer struct {
	registry   *blocks.Registry
	sources    Sources
	logger     interfaces.Logger
	markdown   goldmark.Markdown
	sanitizer  *bluemonday.Policy
	templates  *template.Template
	enablePath string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithSources injects the block-scoped data providers.
func WithSources(sources Sources) Option {
	return func(r *Renderer) {
		r.sources = sources
	}
}

// WithLogger injects the renderer logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithEnablePath overrides the admin path used by the edit-mode
// "module required" placeholder link.
func WithEnablePath(path string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			r.enablePath = trimmed
		}
	}
}

// New constructs a renderer bound to a block registry.
func New(registry *blocks.Registry, opts ...Option) *Renderer {
	r := &Renderer{
		registry:   registry,
		logger:     logging.NoOp(),
		markdown:   newMarkdownEngine(),
		sanitizer:  newSanitizerPolicy(),
		templates:  mustParseTemplates(),
		enablePath: defaultEnablePath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderPage renders the page's blocks in list order. Data fetches for all
// surviving data blocks run concurrently; output order is list order
// regardless of fetch completion order.
func (r *Renderer) RenderPage(ctx context.Context, page *pages.Page, gate modules.Gate, mode Mode) (*Result, error) {
	if page == nil {
		return nil, fmt.Errorf("render: page is required")
	}
	if mode == "" {
		mode = ModePublic
	}

	fetches, wg := r.startFetches(ctx, page.Blocks, gate)
	wg.Wait()

	result := &Result{}
	html := r.renderList(page.Blocks, gate, mode, fetches, result)
	result.HTML = html
	return result, nil
}

// RenderBlocks renders a bare block list; used by the editor surface for
// partial re-renders of a container slot.
func (r *Renderer) RenderBlocks(ctx context.Context, list blocks.List, gate modules.Gate, mode Mode) (*Result, error) {
	fetches, wg := r.startFetches(ctx, list, gate)
	wg.Wait()

	result := &Result{}
	result.HTML = r.renderList(list, gate, mode, fetches, result)
	return result, nil
}

func (r *Renderer) renderList(list blocks.List, gate modules.Gate, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	var out bytes.Buffer
	for _, block := range list {
		out.WriteString(string(r.renderBlock(block, gate, mode, fetches, result)))
	}
	return template.HTML(out.String())
}

func (r *Renderer) renderBlock(block blocks.Block, gate modules.Gate, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	if required, ok := r.registry.RequiredModule(block.Kind); ok && !gate.IsEnabled(required) {
		result.Skipped = append(result.Skipped, SkippedBlock{
			BlockID: block.ID,
			Kind:    block.Kind,
			Module:  required,
		})
		if mode == ModeEdit {
			return r.placeholder(block, "module-disabled",
				fmt.Sprintf("This block needs the %s module.", required),
				r.enablePath, "Enable module")
		}
		// Public mode: indistinguishable from the block being absent.
		return ""
	}

	switch data := block.Data.(type) {
	case nil:
		return ""
	case blocks.UnknownData:
		r.problem(result, block, fmt.Sprintf("unknown block type %q", block.Kind))
		if mode == ModeEdit {
			return r.placeholder(block, "unknown",
				fmt.Sprintf("Unknown block type %q. It may come from a newer editor version.", block.Kind), "", "")
		}
		return ""
	case blocks.MalformedData:
		r.problem(result, block, fmt.Sprintf("malformed %s payload: %s", block.Kind, data.Reason))
		if mode == ModeEdit {
			return r.placeholder(block, "malformed",
				fmt.Sprintf("This %s block has invalid data and needs attention.", block.Kind), "", "")
		}
		return ""
	case blocks.HeroData:
		if data.Alignment == "" {
			data.Alignment = "center"
		}
		return r.execute(block, result, "hero", data)
	case blocks.TextData:
		if strings.TrimSpace(data.Markdown) == "" {
			return ""
		}
		html, err := r.markdownHTML(data.Markdown)
		if err != nil {
			r.problem(result, block, err.Error())
			return ""
		}
		return r.execute(block, result, "text", struct{ HTML template.HTML }{html})
	case blocks.RichTextData:
		if strings.TrimSpace(data.HTML) == "" {
			return ""
		}
		return r.execute(block, result, "richText", struct{ HTML template.HTML }{r.sanitizedHTML(data.HTML)})
	case blocks.ImageData:
		if data.URL == "" && data.Caption == "" {
			return ""
		}
		return r.execute(block, result, "image", data)
	case blocks.CTAData:
		return r.execute(block, result, "cta", data)
	case blocks.FeaturesData:
		return r.execute(block, result, "features", data)
	case blocks.PricingData:
		return r.execute(block, result, "pricing", data)
	case blocks.FAQData:
		return r.execute(block, result, "faq", data)
	case blocks.TestimonialsData:
		return r.execute(block, result, "testimonials", data)
	case blocks.TableData:
		if len(data.Header) == 0 && len(data.Rows) == 0 {
			return ""
		}
		return r.execute(block, result, "table", data)
	case blocks.DividerData:
		return r.execute(block, result, "divider", data)
	case blocks.EmbedData:
		return r.execute(block, result, "embed", data)
	case blocks.ProductsData:
		return r.renderProducts(block, data.Title, 0, mode, fetches, result)
	case blocks.ProductGridData:
		return r.renderProducts(block, data.Title, data.Columns, mode, fetches, result)
	case blocks.ChatData:
		return r.renderChat(block, data, mode, fetches, result)
	case blocks.BlogPostsData:
		return r.renderPosts(block, data, mode, fetches, result)
	case blocks.KBArticlesData:
		return r.renderArticles(block, data, mode, fetches, result)
	case blocks.NewsletterSignupData:
		if data.ButtonLabel == "" {
			data.ButtonLabel = "Subscribe"
		}
		return r.execute(block, result, "newsletterSignup", data)
	case blocks.BookingData:
		return r.execute(block, result, "booking", data)
	case blocks.ColumnsData:
		view := struct {
			RatioClass  string
			Left, Right template.HTML
		}{
			RatioClass: ratioClass(data.Ratio),
			Left:       r.renderList(data.Left, gate, mode, fetches, result),
			Right:      r.renderList(data.Right, gate, mode, fetches, result),
		}
		return r.execute(block, result, "columns", view)
	case blocks.TabsData:
		type tabView struct {
			Title   string
			Content template.HTML
		}
		view := struct{ Tabs []tabView }{}
		for _, tab := range data.Tabs {
			view.Tabs = append(view.Tabs, tabView{
				Title:   tab.Title,
				Content: r.renderList(tab.Blocks, gate, mode, fetches, result),
			})
		}
		return r.execute(block, result, "tabs", view)
	default:
		r.problem(result, block, fmt.Sprintf("no renderer bound for block type %q", block.Kind))
		return ""
	}
}

func (r *Renderer) renderProducts(block blocks.Block, title string, columns int, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	fetched, ok := r.takeFetch(block, mode, fetches, result)
	if !ok {
		return ""
	}

	type productView struct {
		Name       string
		PriceLabel string
		ImageURL   string
		URL        string
		InStock    bool
	}
	view := struct {
		Title    string
		Columns  int
		Products []productView
	}{Title: title, Columns: columns}
	for _, product := range fetched.products {
		view.Products = append(view.Products, productView{
			Name:       product.Name,
			PriceLabel: priceLabel(product.PriceCents, product.Currency),
			ImageURL:   product.ImageURL,
			URL:        product.URL,
			InStock:    product.InStock,
		})
	}
	if len(view.Products) == 0 && mode == ModePublic {
		return ""
	}
	return r.execute(block, result, "products", view)
}

func (r *Renderer) renderChat(block blocks.Block, data blocks.ChatData, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	fetched, ok := r.takeFetch(block, mode, fetches, result)
	if !ok {
		return ""
	}

	greeting := data.Greeting
	if fetched.chat.Greeting != "" {
		greeting = fetched.chat.Greeting
	}
	placeholder := data.Placeholder
	if placeholder == "" {
		placeholder = "Type a message"
	}
	view := struct {
		Greeting       string
		Placeholder    string
		Online         bool
		ConversationID string
	}{greeting, placeholder, fetched.chat.Online, fetched.chat.ConversationID}
	return r.execute(block, result, "chat", view)
}

func (r *Renderer) renderPosts(block blocks.Block, data blocks.BlogPostsData, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	fetched, ok := r.takeFetch(block, mode, fetches, result)
	if !ok {
		return ""
	}
	view := struct {
		Title string
		Posts []interfaces.Post
	}{data.Title, fetched.posts}
	if len(view.Posts) == 0 && mode == ModePublic {
		return ""
	}
	return r.execute(block, result, "blogPosts", view)
}

func (r *Renderer) renderArticles(block blocks.Block, data blocks.KBArticlesData, mode Mode, fetches *fetchSet, result *Result) template.HTML {
	fetched, ok := r.takeFetch(block, mode, fetches, result)
	if !ok {
		return ""
	}
	view := struct {
		Title    string
		Articles []interfaces.Article
	}{data.Title, fetched.articles}
	if len(view.Articles) == 0 && mode == ModePublic {
		return ""
	}
	return r.execute(block, result, "kbArticles", view)
}

// takeFetch resolves the fetch outcome for a data block. A missing source or
// a failed fetch degrades to an empty local state; in edit mode the failure
// is additionally surfaced as a placeholder via the returned Problems.
func (r *Renderer) takeFetch(block blocks.Block, mode Mode, fetches *fetchSet, result *Result) (fetchResult, bool) {
	fetched, ok := fetches.get(block.ID)
	if !ok {
		// No source configured for this block kind.
		if mode == ModeEdit {
			r.problem(result, block, fmt.Sprintf("no data source configured for %s blocks", block.Kind))
		}
		return fetchResult{}, mode == ModeEdit
	}
	if fetched.err != nil {
		r.problem(result, block, fmt.Sprintf("data fetch failed: %v", fetched.err))
		return fetchResult{}, false
	}
	return fetched, true
}

func (r *Renderer) execute(block blocks.Block, result *Result, name string, view any) template.HTML {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, view); err != nil {
		r.problem(result, block, fmt.Sprintf("template %s: %v", name, err))
		return ""
	}
	return template.HTML(buf.String())
}

func (r *Renderer) placeholder(block blocks.Block, class, message, actionHref, actionLabel string) template.HTML {
	view := struct {
		Class       string
		BlockID     string
		Message     string
		ActionHref  string
		ActionLabel string
	}{class, block.ID.String(), message, actionHref, actionLabel}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "editPlaceholder", view); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func (r *Renderer) problem(result *Result, block blocks.Block, message string) {
	result.Problems = append(result.Problems, Problem{
		BlockID: block.ID,
		Kind:    block.Kind,
		Message: message,
	})
	logging.WithFields(r.logger, map[string]any{
		"block_id":   block.ID.String(),
		"block_kind": string(block.Kind),
	}).Warn("render.block.degraded", "reason", message)
}

func priceLabel(cents int64, currency string) string {
	if cents <= 0 {
		return ""
	}
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}

func ratioClass(ratio string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(ratio), ":", "-")
	if replaced == "" {
		return "1-1"
	}
	return replaced
}
