package modules

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository stores module settings.
type Repository interface {
	List(ctx context.Context) ([]*ModuleSetting, error)
	Upsert(ctx context.Context, record *ModuleSetting) (*ModuleSetting, error)
}

// NewModuleSettingRepository wires the bun repository handlers for module settings.
func NewModuleSettingRepository(db *bun.DB) repository.Repository[*ModuleSetting] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ModuleSetting]{
		NewRecord: func() *ModuleSetting { return &ModuleSetting{} },
		GetID: func(m *ModuleSetting) uuid.UUID {
			return m.ID
		},
		SetID: func(m *ModuleSetting, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "module_id"
		},
		GetIdentifierValue: func(m *ModuleSetting) string {
			return m.ModuleID
		},
	})
}
