package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

// Migrate creates the tables the site builder persists to. It is idempotent
// and safe to run on every startup.
func Migrate(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*pages.Page)(nil),
		(*modules.ModuleSetting)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}

	// Slug uniqueness only binds live pages: a tombstoned page keeps its slug
	// for history but frees it for new records.
	if _, err := db.NewCreateIndex().
		Model((*pages.Page)(nil)).
		Index("pages_slug_live_idx").
		Column("slug").
		Unique().
		Where("deleted_at IS NULL").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("storage: create slug index: %w", err)
	}
	return nil
}
