package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-sitebuilder/internal/identity"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Service exposes module gate reads and admin writes.
//
// Reads produce immutable Gate snapshots; an admin toggle takes effect on the
// next snapshot, never on one already handed out. Concurrent admin writes are
// last-write-wins; no optimistic locking is applied.
type Service interface {
	Snapshot(ctx context.Context) (Gate, error)
	Config(ctx context.Context) (Config, error)
	SetEnabled(ctx context.Context, id ID, enabled bool) (Setting, error)
}

type service struct {
	repo     Repository
	defaults Config
	logger   interfaces.Logger
}

// ServiceOption configures the module service.
type ServiceOption func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaults seeds the configuration returned when a module has no stored
// setting yet.
func WithDefaults(cfg Config) ServiceOption {
	return func(s *service) {
		if cfg != nil {
			s.defaults = cfg.Clone()
		}
	}
}

// NewService constructs the module gate service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	svc := &service{
		repo:     repo,
		defaults: DefaultConfig(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Config(ctx context.Context) (Config, error) {
	cfg := s.defaults.Clone()
	if cfg == nil {
		cfg = DefaultConfig()
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("modules: load settings: %w", err)
	}
	for _, record := range records {
		if record == nil {
			continue
		}
		id := ParseID(record.ModuleID)
		if id == "" {
			continue
		}
		name := record.Name
		if name == "" {
			name = displayName(id)
		}
		cfg[id] = Setting{Enabled: record.Enabled, Name: name}
	}
	return cfg, nil
}

func (s *service) Snapshot(ctx context.Context) (Gate, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return Gate{}, err
	}
	return NewGate(cfg), nil
}

func (s *service) SetEnabled(ctx context.Context, id ID, enabled bool) (Setting, error) {
	if !id.Valid() {
		return Setting{}, fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}

	record := &ModuleSetting{
		ID:        identity.ModuleSettingUUID(string(id)),
		ModuleID:  string(id),
		Name:      displayName(id),
		Enabled:   enabled,
		UpdatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return Setting{}, fmt.Errorf("modules: persist setting: %w", err)
	}

	logging.WithFields(s.logger, map[string]any{
		"module_id": stored.ModuleID,
		"enabled":   stored.Enabled,
	}).Info("modules.setting.updated")

	return Setting{Enabled: stored.Enabled, Name: stored.Name}, nil
}
