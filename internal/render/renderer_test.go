package render_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
	"github.com/goliatone/go-sitebuilder/internal/render"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

type fakeProductSource struct {
	calls    atomic.Int64
	delay    time.Duration
	err      error
	products []interfaces.Product
}

func (f *fakeProductSource) Products(ctx context.Context, _ interfaces.ProductQuery) ([]interfaces.Product, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeChatSource struct {
	bootstrap interfaces.ChatBootstrap
}

func (f *fakeChatSource) Bootstrap(context.Context) (interfaces.ChatBootstrap, error) {
	return f.bootstrap, nil
}

func testPage(list blocks.List) *pages.Page {
	return &pages.Page{
		ID:     uuid.New(),
		Slug:   "test",
		Status: domain.StatusPublished,
		Blocks: list,
	}
}

func allEnabled() modules.Gate {
	return modules.NewGate(modules.DefaultConfig())
}

func gateWith(id modules.ID, enabled bool) modules.Gate {
	cfg := modules.DefaultConfig()
	setting := cfg[id]
	setting.Enabled = enabled
	cfg[id] = setting
	return modules.NewGate(cfg)
}

func TestModuleGatingIsAbsolute(t *testing.T) {
	source := &fakeProductSource{products: []interfaces.Product{{Name: "Mug", PriceCents: 1200}}}
	r := render.New(blocks.Default(), render.WithSources(render.Sources{Products: source}))

	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindProducts, Data: blocks.ProductsData{Title: "Shop"}},
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "plain text"}},
	})

	result, err := r.RenderPage(context.Background(), page, gateWith(modules.ModuleProducts, false), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(result.HTML)
	if strings.Contains(html, "Shop") || strings.Contains(html, "block-products") {
		t.Fatalf("gated block leaked into output: %s", html)
	}
	if !strings.Contains(html, "plain text") {
		t.Fatalf("sibling text block missing: %s", html)
	}
	if got := source.calls.Load(); got != 0 {
		t.Fatalf("disabled module triggered %d fetches, want 0", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Module != modules.ModuleProducts {
		t.Fatalf("skip not recorded: %#v", result.Skipped)
	}
}

func TestGatedBlockRendersPlaceholderInEditMode(t *testing.T) {
	r := render.New(blocks.Default())
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindChat, Data: blocks.ChatData{}},
	})

	result, err := r.RenderPage(context.Background(), page, gateWith(modules.ModuleChat, false), render.ModeEdit)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "placeholder-module-disabled") {
		t.Fatalf("expected disabled placeholder: %s", html)
	}
	if !strings.Contains(html, "/admin/modules") {
		t.Fatalf("placeholder should link to the enable path: %s", html)
	}
}

func TestUnknownKindResilience(t *testing.T) {
	r := render.New(blocks.Default())
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "before"}},
		{ID: uuid.New(), Kind: blocks.Kind("countdown"), Data: blocks.UnknownData{Kind: "countdown"}},
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "after"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "before") || !strings.Contains(html, "after") {
		t.Fatalf("siblings must render around an unknown block: %s", html)
	}
	if len(result.Problems) != 1 {
		t.Fatalf("unknown kind should be flagged once, got %#v", result.Problems)
	}
}

func TestMalformedBlockDegradesLocally(t *testing.T) {
	r := render.New(blocks.Default())
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindHero, Data: blocks.MalformedData{Kind: blocks.KindHero, Reason: "title is not a string"}},
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "survivor"}},
	})

	public, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(public.HTML), "block-hero") {
		t.Fatal("malformed block must render nothing in public mode")
	}
	if !strings.Contains(string(public.HTML), "survivor") {
		t.Fatal("sibling must render")
	}

	edit, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModeEdit)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(edit.HTML), "placeholder-malformed") {
		t.Fatalf("edit mode should flag the malformed block: %s", edit.HTML)
	}
}

func TestOrderPreservedRegardlessOfFetchCompletion(t *testing.T) {
	// The product fetch resolves last; the products block must still render
	// in its authored position between the two text blocks.
	source := &fakeProductSource{
		delay:    30 * time.Millisecond,
		products: []interfaces.Product{{Name: "Tote", PriceCents: 2400, InStock: true}},
	}
	r := render.New(blocks.Default(), render.WithSources(render.Sources{Products: source}))

	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "first"}},
		{ID: uuid.New(), Kind: blocks.KindProducts, Data: blocks.ProductsData{Title: "Middle"}},
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "last"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)

	first := strings.Index(html, "first")
	middle := strings.Index(html, "Middle")
	last := strings.Index(html, "last")
	if first < 0 || middle < 0 || last < 0 {
		t.Fatalf("missing blocks in output: %s", html)
	}
	if !(first < middle && middle < last) {
		t.Fatalf("output order broken: first=%d middle=%d last=%d", first, middle, last)
	}
}

func TestFetchFailureIsLocalToBlock(t *testing.T) {
	source := &fakeProductSource{err: errors.New("inventory offline")}
	r := render.New(blocks.Default(), render.WithSources(render.Sources{Products: source}))

	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindProducts, Data: blocks.ProductsData{Title: "Shop"}},
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "unaffected"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render must not fail for a block fetch error: %v", err)
	}
	if !strings.Contains(string(result.HTML), "unaffected") {
		t.Fatal("sibling must render despite the fetch failure")
	}
	if len(result.Problems) != 1 {
		t.Fatalf("fetch failure should be flagged once, got %#v", result.Problems)
	}
}

func TestGatingAppliesInsideContainers(t *testing.T) {
	source := &fakeProductSource{products: []interfaces.Product{{Name: "Mug"}}}
	r := render.New(blocks.Default(), render.WithSources(render.Sources{Products: source}))

	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindColumns, Data: blocks.ColumnsData{
			Left: blocks.List{
				{ID: uuid.New(), Kind: blocks.KindProducts, Data: blocks.ProductsData{Title: "Nested Shop"}},
			},
			Right: blocks.List{
				{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "nested text"}},
			},
		}},
	})

	result, err := r.RenderPage(context.Background(), page, gateWith(modules.ModuleProducts, false), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if source.calls.Load() != 0 {
		t.Fatal("nested gated block must not fetch")
	}
	html := string(result.HTML)
	if strings.Contains(html, "Nested Shop") {
		t.Fatal("nested gated block leaked")
	}
	if !strings.Contains(html, "nested text") {
		t.Fatal("nested sibling must render")
	}
}

func TestMarkdownIsRenderedAndSanitized(t *testing.T) {
	r := render.New(blocks.Default())
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "# Title\n\n<script>alert(1)</script>ok"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "<h1") {
		t.Fatalf("markdown heading not rendered: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script must be sanitized: %s", html)
	}
}

func TestChatBlockUsesBootstrapState(t *testing.T) {
	r := render.New(blocks.Default(), render.WithSources(render.Sources{
		Chat: &fakeChatSource{bootstrap: interfaces.ChatBootstrap{Greeting: "Hello from ops", Online: true}},
	}))
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindChat, Data: blocks.ChatData{Greeting: "authored greeting"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if !strings.Contains(html, "Hello from ops") {
		t.Fatalf("bootstrap greeting should win: %s", html)
	}
	if !strings.Contains(html, `data-online="true"`) {
		t.Fatalf("online state missing: %s", html)
	}
}

func TestProductPriceFormatting(t *testing.T) {
	source := &fakeProductSource{products: []interfaces.Product{
		{Name: "Tote", PriceCents: 2450, Currency: "EUR", InStock: true},
	}}
	r := render.New(blocks.Default(), render.WithSources(render.Sources{Products: source}))
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindProducts, Data: blocks.ProductsData{}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(result.HTML), "24.50 EUR") {
		t.Fatalf("price label missing: %s", result.HTML)
	}
}

func TestEmptyTitleRendersNoHeading(t *testing.T) {
	r := render.New(blocks.Default())
	page := testPage(blocks.List{
		{ID: uuid.New(), Kind: blocks.KindHero, Data: blocks.HeroData{Subtitle: "only subtitle"}},
	})

	result, err := r.RenderPage(context.Background(), page, allEnabled(), render.ModePublic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(result.HTML)
	if strings.Contains(html, "<h1>") {
		t.Fatalf("empty title must drop the heading: %s", html)
	}
	if !strings.Contains(html, "only subtitle") {
		t.Fatalf("subtitle missing: %s", html)
	}
}
