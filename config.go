package sitebuilder

import "github.com/goliatone/go-sitebuilder/internal/runtimeconfig"

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrStorageDriverUnknown   = runtimeconfig.ErrStorageDriverUnknown
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	Features       = runtimeconfig.Features
	RenderConfig   = runtimeconfig.RenderConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the configuration used when the caller supplies none.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
