package pages

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
)

// Service describes page management capabilities.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	GetPublished(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Purge removes a page outright instead of tombstoning it. Intended for
	// undoing writes that never should have happened, not for editorial delete.
	Purge(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, req DuplicatePageRequest) (*Page, error)
	SetHomepage(ctx context.Context, id uuid.UUID) error
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	ID     uuid.UUID
	Slug   string
	Status domain.Status
	Blocks blocks.List
	Meta   Meta
}

// UpdatePageRequest captures the mutable fields for an existing page. Slug is
// identity and is intentionally absent.
type UpdatePageRequest struct {
	ID     uuid.UUID
	Status domain.Status
	Blocks blocks.List
	Meta   Meta
}

// DuplicatePageRequest clones a page under a new slug. Block identifiers are
// reissued so the copy never shares ids with its source.
type DuplicatePageRequest struct {
	PageID uuid.UUID
	Slug   string
}
