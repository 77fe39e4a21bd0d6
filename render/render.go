// Package render re-exports the page renderer for library consumers.
package render

import internal "github.com/goliatone/go-sitebuilder/internal/render"

type (
	Mode         = internal.Mode
	Result       = internal.Result
	SkippedBlock = internal.SkippedBlock
	Problem      = internal.Problem
	Sources      = internal.Sources
	Renderer     = internal.Renderer
	Option       = internal.Option
)

const (
	ModePublic = internal.ModePublic
	ModeEdit   = internal.ModeEdit
)

var (
	New            = internal.New
	WithSources    = internal.WithSources
	WithLogger     = internal.WithLogger
	WithEnablePath = internal.WithEnablePath
)
