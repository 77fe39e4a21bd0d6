// Package modules re-exports the module gate for library consumers.
package modules

import internal "github.com/goliatone/go-sitebuilder/internal/modules"

type (
	ID            = internal.ID
	Setting       = internal.Setting
	Config        = internal.Config
	Gate          = internal.Gate
	Service       = internal.Service
	Repository    = internal.Repository
	ModuleSetting = internal.ModuleSetting
)

const (
	ModuleBlog          = internal.ModuleBlog
	ModuleChat          = internal.ModuleChat
	ModuleProducts      = internal.ModuleProducts
	ModuleKnowledgeBase = internal.ModuleKnowledgeBase
	ModuleBookings      = internal.ModuleBookings
	ModuleNewsletter    = internal.ModuleNewsletter
)

var (
	ErrUnknownModule = internal.ErrUnknownModule

	Known         = internal.Known
	ParseID       = internal.ParseID
	DefaultConfig = internal.DefaultConfig
	NewGate       = internal.NewGate

	NewService                = internal.NewService
	WithDefaults              = internal.WithDefaults
	WithLogger                = internal.WithLogger
	NewMemoryRepository       = internal.NewMemoryRepository
	NewBunRepository          = internal.NewBunRepository
	NewBunRepositoryWithCache = internal.NewBunRepositoryWithCache
)
