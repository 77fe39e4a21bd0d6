// Package pages re-exports the page document model and service for library consumers.
package pages

import internal "github.com/goliatone/go-sitebuilder/internal/pages"

type (
	Page                 = internal.Page
	Meta                 = internal.Meta
	Service              = internal.Service
	Repository           = internal.Repository
	ListFilter           = internal.ListFilter
	CreatePageRequest    = internal.CreatePageRequest
	UpdatePageRequest    = internal.UpdatePageRequest
	DuplicatePageRequest = internal.DuplicatePageRequest
	PageNotFoundError    = internal.PageNotFoundError
)

var (
	ErrSlugRequired   = internal.ErrSlugRequired
	ErrSlugInvalid    = internal.ErrSlugInvalid
	ErrSlugExists     = internal.ErrSlugExists
	ErrSlugImmutable  = internal.ErrSlugImmutable
	ErrPageRequired   = internal.ErrPageRequired
	ErrPageNotFound   = internal.ErrPageNotFound
	ErrStatusInvalid  = internal.ErrStatusInvalid
	ErrPageNotVisible = internal.ErrPageNotVisible

	NewService                = internal.NewService
	NewMemoryRepository       = internal.NewMemoryRepository
	NewBunRepository          = internal.NewBunRepository
	NewBunRepositoryWithCache = internal.NewBunRepositoryWithCache
	WithLogger                = internal.WithLogger
)
