package di

import (
	"context"
	"fmt"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/commands"
	templatescmd "github.com/goliatone/go-sitebuilder/internal/commands/templates"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/logging/gologger"
	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/pages"
	"github.com/goliatone/go-sitebuilder/internal/render"
	"github.com/goliatone/go-sitebuilder/internal/runtimeconfig"
	"github.com/goliatone/go-sitebuilder/internal/storage"
	"github.com/goliatone/go-sitebuilder/internal/templates"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Container wires the site builder's services and their dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	registry *blocks.Registry
	sources  render.Sources

	pageRepo   pages.Repository
	moduleRepo modules.Repository

	pageSvc   pages.Service
	moduleSvc modules.Service
	renderer  *render.Renderer
	importer  *templates.Importer
	applier   *templates.Applier
	catalog   *templates.Catalog

	importHandler *templatescmd.ImportTemplateHandler
	applyHandler  *templatescmd.ApplyTemplateHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithDB injects an already-open bun database, bypassing the storage driver
// configuration. Required for the postgres driver.
func WithDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithRegistry overrides the default block registry.
func WithRegistry(registry *blocks.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithSources injects the block-scoped data providers consumed by the renderer.
func WithSources(sources render.Sources) Option {
	return func(c *Container) {
		c.sources = sources
	}
}

// WithPageRepository overrides the page repository.
func WithPageRepository(repo pages.Repository) Option {
	return func(c *Container) {
		c.pageRepo = repo
	}
}

// WithModuleRepository overrides the module settings repository.
func WithModuleRepository(repo modules.Repository) Option {
	return func(c *Container) {
		c.moduleRepo = repo
	}
}

// NewContainer validates the configuration and assembles every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	if err := c.configureServices(); err != nil {
		return nil, err
	}
	c.configureCommands()
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "", "noop":
		return nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
		return nil
	default:
		return runtimeconfig.ErrLoggingProviderUnknown
	}
}

func (c *Container) configureStorage() error {
	if c.bunDB != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Storage.Driver)) {
	case "", "memory":
		return nil
	case "sqlite":
		db, err := storage.OpenSQLite(c.Config.Storage.DSN)
		if err != nil {
			return err
		}
		if err := storage.Migrate(context.Background(), db); err != nil {
			return err
		}
		c.bunDB = db
		return nil
	case "postgres":
		return fmt.Errorf("di: postgres driver requires an injected database, use WithDB")
	default:
		return runtimeconfig.ErrStorageDriverUnknown
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Storage.CacheRepositories {
		return
	}
	if c.cacheService == nil {
		service, err := repocache.NewCacheService(repocache.DefaultConfig())
		if err == nil {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.pageRepo == nil {
		if c.bunDB != nil {
			if c.cacheService != nil {
				c.pageRepo = pages.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
			} else {
				c.pageRepo = pages.NewBunRepository(c.bunDB)
			}
		} else {
			c.pageRepo = pages.NewMemoryRepository()
		}
	}

	if c.moduleRepo == nil {
		if c.bunDB != nil {
			if c.cacheService != nil {
				c.moduleRepo = modules.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
			} else {
				c.moduleRepo = modules.NewBunRepository(c.bunDB)
			}
		} else {
			c.moduleRepo = modules.NewMemoryRepository()
		}
	}
}

func (c *Container) configureServices() error {
	if c.registry == nil {
		c.registry = blocks.Default()
	}

	c.pageSvc = pages.NewService(c.pageRepo, c.registry,
		pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
	)

	c.moduleSvc = modules.NewService(c.moduleRepo,
		modules.WithDefaults(c.Config.Features.ModuleConfig()),
		modules.WithLogger(logging.ModulesLogger(c.loggerProvider)),
	)

	renderOpts := []render.Option{
		render.WithSources(c.sources),
		render.WithLogger(logging.RenderLogger(c.loggerProvider)),
	}
	if c.Config.Render.ModuleEnablePath != "" {
		renderOpts = append(renderOpts, render.WithEnablePath(c.Config.Render.ModuleEnablePath))
	}
	c.renderer = render.New(c.registry, renderOpts...)

	c.importer = templates.NewImporter(c.registry)

	applier, err := templates.NewApplier(c.pageSvc, c.registry,
		templates.WithApplierLogger(logging.TemplatesLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.applier = applier

	catalog, err := templates.DefaultCatalog(c.registry)
	if err != nil {
		return err
	}
	c.catalog = catalog
	return nil
}

func (c *Container) configureCommands() {
	logger := logging.ModuleLogger(c.loggerProvider, "sitebuilder.commands")

	var importOpts []commands.HandlerOption[templatescmd.ImportTemplateCommand]
	var applyOpts []commands.HandlerOption[templatescmd.ApplyTemplateCommand]
	if seconds := c.Config.Commands.TimeoutSeconds; seconds > 0 {
		timeout := time.Duration(seconds) * time.Second
		importOpts = append(importOpts, commands.WithTimeout[templatescmd.ImportTemplateCommand](timeout))
		applyOpts = append(applyOpts, commands.WithTimeout[templatescmd.ApplyTemplateCommand](timeout))
	}

	c.importHandler = templatescmd.NewImportTemplateHandler(c.importer, c.applier, logger, importOpts...)
	c.applyHandler = templatescmd.NewApplyTemplateHandler(c.catalog, c.applier, logger, applyOpts...)
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service { return c.pageSvc }

// ModuleService returns the configured module gate service.
func (c *Container) ModuleService() modules.Service { return c.moduleSvc }

// Renderer returns the configured renderer.
func (c *Container) Renderer() *render.Renderer { return c.renderer }

// Importer returns the template importer.
func (c *Container) Importer() *templates.Importer { return c.importer }

// Applier returns the template applier.
func (c *Container) Applier() *templates.Applier { return c.applier }

// Catalog returns the starter template catalog.
func (c *Container) Catalog() *templates.Catalog { return c.catalog }

// Registry returns the block registry.
func (c *Container) Registry() *blocks.Registry { return c.registry }

// LoggerProvider returns the configured logger provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// DB returns the underlying bun database, nil for memory storage.
func (c *Container) DB() *bun.DB { return c.bunDB }

// ImportTemplateHandler returns the template import command handler.
func (c *Container) ImportTemplateHandler() *templatescmd.ImportTemplateHandler {
	return c.importHandler
}

// ApplyTemplateHandler returns the template apply command handler.
func (c *Container) ApplyTemplateHandler() *templatescmd.ApplyTemplateHandler {
	return c.applyHandler
}
