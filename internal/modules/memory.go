package modules

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-sitebuilder/internal/identity"
	"github.com/google/uuid"
)

// MemoryRepository is an in-memory module setting store for scaffolding/tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*ModuleSetting
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*ModuleSetting),
	}
}

// List returns every stored module setting.
func (m *MemoryRepository) List(_ context.Context) ([]*ModuleSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*ModuleSetting, 0, len(m.records))
	for _, record := range m.records {
		copied := *record
		out = append(out, &copied)
	}
	return out, nil
}

// Upsert inserts or replaces the setting keyed by module identifier.
func (m *MemoryRepository) Upsert(_ context.Context, record *ModuleSetting) (*ModuleSetting, error) {
	if record == nil {
		return nil, ErrSettingRequired
	}
	key := strings.TrimSpace(record.ModuleID)
	if key == "" {
		return nil, ErrModuleIDRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	copied.ModuleID = key
	if copied.ID == uuid.Nil {
		copied.ID = identity.ModuleSettingUUID(key)
	}
	now := time.Now().UTC()
	if existing, ok := m.records[key]; ok {
		copied.CreatedAt = existing.CreatedAt
	} else if copied.CreatedAt.IsZero() {
		copied.CreatedAt = now
	}
	copied.UpdatedAt = now
	m.records[key] = &copied

	result := copied
	return &result, nil
}
