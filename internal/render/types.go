package render

import (
	"html/template"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Mode selects the rendering audience.
type Mode string

const (
	// ModePublic renders for site visitors: gated and broken blocks
	// disappear without a trace.
	ModePublic Mode = "public"
	// ModeEdit renders for the editor surface: gated and broken blocks
	// render visible placeholders so authors can fix them.
	ModeEdit Mode = "edit"
)

// SkippedBlock records a block the renderer suppressed because its required
// module is disabled.
type SkippedBlock struct {
	BlockID uuid.UUID
	Kind    blocks.Kind
	Module  modules.ID
}

// Problem records a non-fatal, block-local rendering issue: an unknown kind,
// a malformed payload, or a failed data fetch. Problems never abort a page.
type Problem struct {
	BlockID uuid.UUID
	Kind    blocks.Kind
	Message string
}

// Result is the outcome of rendering one page.
type Result struct {
	HTML     template.HTML
	Skipped  []SkippedBlock
	Problems []Problem
}

// Sources bundles the block-scoped data providers consulted by
// data-dependent blocks. Nil providers render the matching blocks empty.
type Sources struct {
	Products interfaces.ProductSource
	Articles interfaces.ArticleSource
	Posts    interfaces.PostSource
	Chat     interfaces.ChatSource
}
