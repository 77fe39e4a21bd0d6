package runtimeconfig

import (
	"errors"
	"strings"

	"github.com/goliatone/go-sitebuilder/internal/modules"
)

var (
	// ErrLoggingProviderUnknown indicates an unsupported logging provider name.
	ErrLoggingProviderUnknown = errors.New("runtimeconfig: unknown logging provider")
	// ErrLoggingLevelInvalid indicates an unsupported logging level.
	ErrLoggingLevelInvalid = errors.New("runtimeconfig: invalid logging level")
	// ErrLoggingFormatInvalid indicates an unsupported logging format.
	ErrLoggingFormatInvalid = errors.New("runtimeconfig: invalid logging format")
	// ErrStorageDriverUnknown indicates an unsupported storage driver name.
	ErrStorageDriverUnknown = errors.New("runtimeconfig: unknown storage driver")
)

// Config captures the runtime options the site builder is assembled with.
type Config struct {
	Storage  StorageConfig
	Features Features
	Render   RenderConfig
	Commands CommandsConfig
	Logging  LoggingConfig
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Driver is "sqlite", "postgres", or "memory".
	Driver string
	// DSN is the driver-specific connection string; ignored for memory.
	DSN string
	// CacheRepositories wraps repositories with the read-through cache layer.
	CacheRepositories bool
}

// Features holds the module toggles seeding the gate on startup. Admin writes
// through the module service take precedence over these defaults.
type Features struct {
	Blog          bool
	Chat          bool
	Products      bool
	KnowledgeBase bool
	Bookings      bool
	Newsletter    bool
}

// ModuleConfig converts the feature toggles into a module configuration map.
func (f Features) ModuleConfig() modules.Config {
	out := modules.DefaultConfig()
	set := func(id modules.ID, enabled bool) {
		setting := out[id]
		setting.Enabled = enabled
		out[id] = setting
	}
	set(modules.ModuleBlog, f.Blog)
	set(modules.ModuleChat, f.Chat)
	set(modules.ModuleProducts, f.Products)
	set(modules.ModuleKnowledgeBase, f.KnowledgeBase)
	set(modules.ModuleBookings, f.Bookings)
	set(modules.ModuleNewsletter, f.Newsletter)
	return out
}

// RenderConfig captures renderer options.
type RenderConfig struct {
	// ModuleEnablePath is the admin path linked from edit-mode placeholders.
	ModuleEnablePath string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	// TimeoutSeconds bounds command execution; zero keeps the default.
	TimeoutSeconds int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the configuration used when the caller supplies none:
// in-memory storage, every module enabled, console logging at info.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Driver: "memory"},
		Features: Features{
			Blog:          true,
			Chat:          true,
			Products:      true,
			KnowledgeBase: true,
			Bookings:      true,
			Newsletter:    true,
		},
		Render: RenderConfig{ModuleEnablePath: "/admin/modules"},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate checks enumerated fields, leaving zero values to their defaults.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "", "memory", "sqlite", "postgres":
	default:
		return ErrStorageDriverUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
