package pages

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/domain"
)

// BunRepository persists pages through bun.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*Page]
}

// NewBunRepository constructs a page repository backed by bun.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a bun-backed repository with optional caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewPageRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunRepository{db: db, repo: base}
}

// Create inserts the supplied page. The slug must be free among live records;
// tombstoned holders do not block it.
func (r *BunRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	if _, err := r.GetBySlug(ctx, record.Slug, ListFilter{}); err == nil {
		return nil, ErrSlugExists
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.Slug)
	}
	return created, nil
}

// GetByID retrieves a page by identifier, including soft-deleted records.
func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return result, nil
}

// GetBySlug retrieves a page by slug, honouring the filter.
func (r *BunRepository) GetBySlug(ctx context.Context, slug string, filter ListFilter) (*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return applyFilter(q, filter)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, slug)
	}
	if len(records) == 0 {
		return nil, &PageNotFoundError{Key: slug}
	}
	return records[0], nil
}

// List returns pages matching the filter.
func (r *BunRepository) List(ctx context.Context, filter ListFilter) ([]*Page, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return applyFilter(q, filter).Order("slug ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "list")
	}
	return records, nil
}

// Update persists blocks, meta, status, and the homepage flag.
func (r *BunRepository) Update(ctx context.Context, record *Page) (*Page, error) {
	record.UpdatedAt = time.Now().UTC()
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"status",
			"blocks",
			"meta",
			"is_homepage",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.ID.String())
	}
	return updated, nil
}

// SoftDelete tombstones the page.
func (r *BunRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := r.db.NewUpdate().
		Model((*Page)(nil)).
		Set("deleted_at = ?", now).
		Set("is_homepage = ?", false).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		return mapRepositoryError(err, id.String())
	}
	return nil
}

// Purge removes the page outright, releasing its slug for reuse.
func (r *BunRepository) Purge(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*Page)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return mapRepositoryError(err, id.String())
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &PageNotFoundError{Key: id.String()}
	}
	return nil
}

// SetHomepage flags the page and clears the flag everywhere else in one
// transaction so the designation stays unique.
func (r *BunRepository) SetHomepage(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*Page)(nil)).
			Set("is_homepage = ?", false).
			Where("is_homepage = ?", true).
			Exec(ctx); err != nil {
			return mapRepositoryError(err, id.String())
		}
		result, err := tx.NewUpdate().
			Model((*Page)(nil)).
			Set("is_homepage = ?", true).
			Set("updated_at = ?", time.Now().UTC()).
			Where("id = ?", id).
			Where("deleted_at IS NULL").
			Exec(ctx)
		if err != nil {
			return mapRepositoryError(err, id.String())
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return &PageNotFoundError{Key: id.String()}
		}
		return nil
	})
}

func applyFilter(q *bun.SelectQuery, filter ListFilter) *bun.SelectQuery {
	if q == nil {
		return q
	}
	if !filter.IncludeDeleted {
		q = q.Where("?TableAlias.deleted_at IS NULL")
	}
	if filter.PublishedOnly {
		q = q.Where("?TableAlias.status = ?", domain.StatusPublished)
	}
	return q
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &PageNotFoundError{Key: key}
	}
	return fmt.Errorf("page repository error: %w", err)
}
