package render

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// fetchResult holds the outcome of one block-scoped data fetch. Each fetch is
// fully isolated: a failure is recorded against its block only.
type fetchResult struct {
	products []interfaces.Product
	articles []interfaces.Article
	posts    []interfaces.Post
	chat     interfaces.ChatBootstrap
	err      error
}

// fetchSet collects fetch outcomes keyed by block identifier. Deliveries for
// identifiers that were never requested are dropped, which is what discards a
// stale response after a block has been removed or replaced mid-edit.
type fetchSet struct {
	mu      sync.Mutex
	wanted  map[uuid.UUID]struct{}
	results map[uuid.UUID]fetchResult
}

func newFetchSet() *fetchSet {
	return &fetchSet{
		wanted:  make(map[uuid.UUID]struct{}),
		results: make(map[uuid.UUID]fetchResult),
	}
}

func (f *fetchSet) expect(id uuid.UUID) {
	f.mu.Lock()
	f.wanted[id] = struct{}{}
	f.mu.Unlock()
}

func (f *fetchSet) deliver(id uuid.UUID, result fetchResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.wanted[id]; !ok {
		return
	}
	f.results[id] = result
}

func (f *fetchSet) get(id uuid.UUID) (fetchResult, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.results[id]
	return result, ok
}

// startFetches launches one goroutine per data-dependent block that survives
// module gating. Gating is checked before anything is launched so a disabled
// module's block triggers no call at all. Blocks nested in containers are
// included; gating applies at every level.
func (r *Renderer) startFetches(ctx context.Context, list blocks.List, gate modules.Gate) (*fetchSet, *sync.WaitGroup) {
	set := newFetchSet()
	wg := &sync.WaitGroup{}
	r.walkFetchable(ctx, list, gate, set, wg)
	return set, wg
}

func (r *Renderer) walkFetchable(ctx context.Context, list blocks.List, gate modules.Gate, set *fetchSet, wg *sync.WaitGroup) {
	for _, block := range list {
		if required, ok := r.registry.RequiredModule(block.Kind); ok && !gate.IsEnabled(required) {
			continue
		}

		if container, ok := block.Data.(blocks.Container); ok {
			r.walkFetchable(ctx, container.Children(), gate, set, wg)
			continue
		}

		fetch := r.fetcherFor(block)
		if fetch == nil {
			continue
		}

		set.expect(block.ID)
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				set.deliver(id, fetchResult{err: ctx.Err()})
				return
			default:
			}
			set.deliver(id, fetch(ctx))
		}(block.ID)
	}
}

// fetcherFor returns the fetch closure for data-dependent kinds, nil for
// purely presentational ones.
func (r *Renderer) fetcherFor(block blocks.Block) func(context.Context) fetchResult {
	switch data := block.Data.(type) {
	case blocks.ProductsData:
		if r.sources.Products == nil {
			return nil
		}
		return func(ctx context.Context) fetchResult {
			products, err := r.sources.Products.Products(ctx, interfaces.ProductQuery{
				IDs:   data.ProductIDs,
				Limit: data.Limit,
			})
			return fetchResult{products: products, err: err}
		}
	case blocks.ProductGridData:
		if r.sources.Products == nil {
			return nil
		}
		return func(ctx context.Context) fetchResult {
			products, err := r.sources.Products.Products(ctx, interfaces.ProductQuery{
				Category: data.Category,
				Limit:    data.Limit,
			})
			return fetchResult{products: products, err: err}
		}
	case blocks.KBArticlesData:
		if r.sources.Articles == nil {
			return nil
		}
		return func(ctx context.Context) fetchResult {
			articles, err := r.sources.Articles.Articles(ctx, interfaces.ArticleQuery{
				CategoryID: data.CategoryID,
				Limit:      data.Limit,
			})
			return fetchResult{articles: articles, err: err}
		}
	case blocks.BlogPostsData:
		if r.sources.Posts == nil {
			return nil
		}
		return func(ctx context.Context) fetchResult {
			posts, err := r.sources.Posts.Posts(ctx, interfaces.PostQuery{
				Tag:   data.Tag,
				Limit: data.Limit,
			})
			return fetchResult{posts: posts, err: err}
		}
	case blocks.ChatData:
		if r.sources.Chat == nil {
			return nil
		}
		return func(ctx context.Context) fetchResult {
			bootstrap, err := r.sources.Chat.Bootstrap(ctx)
			return fetchResult{chat: bootstrap, err: err}
		}
	default:
		return nil
	}
}
