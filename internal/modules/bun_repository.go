package modules

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

// BunRepository persists module settings through bun.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*ModuleSetting]
}

// NewBunRepository constructs a module setting repository backed by bun.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a bun-backed repository with optional caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewModuleSettingRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunRepository{db: db, repo: base}
}

// List returns every stored module setting.
func (r *BunRepository) List(ctx context.Context) ([]*ModuleSetting, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "list")
	}
	return records, nil
}

// Upsert inserts or updates the setting keyed by module identifier.
func (r *BunRepository) Upsert(ctx context.Context, record *ModuleSetting) (*ModuleSetting, error) {
	if record == nil {
		return nil, ErrSettingRequired
	}
	updated, err := r.repo.Upsert(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.ModuleID)
	}
	return updated, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return fmt.Errorf("module setting %q: %w", key, ErrUnknownModule)
	}
	return fmt.Errorf("module setting repository error: %w", err)
}
