package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
)

// Meta carries SEO and social presentation metadata, independent of blocks.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SocialImage string `json:"socialImage,omitempty"`
}

// Page is the persisted representation of one routable page: an immutable
// slug identity, a status label, an ordered block list, and metadata. Slug
// uniqueness binds live records only; a partial unique index created in
// migrations lets a tombstoned page free its slug for reuse.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID         uuid.UUID     `bun:",pk,type:uuid" json:"id"`
	Slug       string        `bun:"slug,notnull" json:"slug"`
	Status     domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	Blocks     blocks.List   `bun:"blocks,type:jsonb,notnull" json:"blocks"`
	Meta       Meta          `bun:"meta,type:jsonb" json:"meta"`
	IsHomepage bool          `bun:"is_homepage,notnull,default:false" json:"is_homepage"`
	DeletedAt  *time.Time    `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt  time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Clone returns a deep copy of the page record.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	copied := *p
	copied.Blocks = p.Blocks.Copy()
	if p.DeletedAt != nil {
		at := *p.DeletedAt
		copied.DeletedAt = &at
	}
	return &copied
}
