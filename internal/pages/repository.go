package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListFilter narrows repository reads.
type ListFilter struct {
	// PublishedOnly restricts results to the published status.
	PublishedOnly bool
	// IncludeDeleted includes soft-deleted pages; default excludes them.
	IncludeDeleted bool
}

// Repository stores page documents.
type Repository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string, filter ListFilter) (*Page, error)
	List(ctx context.Context, filter ListFilter) ([]*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Purge removes the record outright, releasing its slug. Rollback paths
	// use this so an aborted write leaves no tombstone behind.
	Purge(ctx context.Context, id uuid.UUID) error
	// SetHomepage flags the page as the homepage and clears the flag from
	// every other non-deleted page, keeping the designation unique.
	SetHomepage(ctx context.Context, id uuid.UUID) error
}

// NewPageRepository wires the bun repository handlers for pages.
func NewPageRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord: func() *Page { return &Page{} },
		GetID: func(p *Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *Page) string {
			return p.Slug
		},
	})
}
