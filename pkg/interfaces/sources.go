package interfaces

import "context"

// Product is the catalog record surfaced by product blocks.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
	Currency    string  `json:"currency,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	URL         string  `json:"url,omitempty"`
	InStock     bool    `json:"in_stock"`
	Category    string  `json:"category,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// ProductQuery narrows a product source lookup.
type ProductQuery struct {
	IDs      []string
	Category string
	Limit    int
}

// ProductSource resolves live product data for product blocks. Each call is
// scoped to a single block render and must honour context cancellation.
type ProductSource interface {
	Products(ctx context.Context, query ProductQuery) ([]Product, error)
}

// Article is the knowledge-base record surfaced by article blocks.
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary,omitempty"`
	URL      string `json:"url,omitempty"`
	Category string `json:"category,omitempty"`
}

// ArticleQuery narrows a knowledge-base lookup.
type ArticleQuery struct {
	CategoryID string
	Limit      int
}

// ArticleSource resolves knowledge-base articles for article blocks.
type ArticleSource interface {
	Articles(ctx context.Context, query ArticleQuery) ([]Article, error)
}

// Post is the blog entry surfaced by blog listing blocks.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	URL     string `json:"url,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

// PostQuery narrows a blog listing lookup.
type PostQuery struct {
	Tag   string
	Limit int
}

// PostSource resolves published blog posts for blog blocks.
type PostSource interface {
	Posts(ctx context.Context, query PostQuery) ([]Post, error)
}

// ChatBootstrap carries the initial state a chat block needs to mount.
type ChatBootstrap struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Greeting       string `json:"greeting,omitempty"`
	Online         bool   `json:"online"`
}

// ChatSource resolves chat widget bootstrap state for chat blocks.
type ChatSource interface {
	Bootstrap(ctx context.Context) (ChatBootstrap, error)
}
