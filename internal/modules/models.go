package modules

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ModuleSetting is the persisted representation of one module toggle.
type ModuleSetting struct {
	bun.BaseModel `bun:"table:module_settings,alias:ms"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ModuleID  string    `bun:"module_id,notnull,unique" json:"module_id"`
	Name      string    `bun:"name" json:"name,omitempty"`
	Enabled   bool      `bun:"enabled,notnull,default:true" json:"enabled"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
