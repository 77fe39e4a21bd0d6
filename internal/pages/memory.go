package pages

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/domain"
)

// MemoryRepository is an in-memory page store for scaffolding/tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	pages     map[uuid.UUID]*Page
	slugIndex map[string]uuid.UUID
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		pages:     make(map[uuid.UUID]*Page),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied page.
func (m *MemoryRepository) Create(_ context.Context, record *Page) (*Page, error) {
	if record == nil {
		return nil, ErrPageRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := slugKey(record.Slug)
	if existing, occupied := m.slugIndex[key]; occupied {
		// A tombstoned holder frees the slug; the record stays reachable by id.
		if holder, ok := m.pages[existing]; ok && holder.DeletedAt == nil {
			return nil, ErrSlugExists
		}
	}

	copied := record.Clone()
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	now := time.Now().UTC()
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = now
	}
	copied.UpdatedAt = now

	m.pages[copied.ID] = copied
	m.slugIndex[key] = copied.ID
	return copied.Clone(), nil
}

// GetByID retrieves a page by identifier, including soft-deleted records.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.pages[id]
	if !ok {
		return nil, &PageNotFoundError{Key: id.String()}
	}
	return page.Clone(), nil
}

// GetBySlug retrieves a page by slug, honouring the filter.
func (m *MemoryRepository) GetBySlug(_ context.Context, slug string, filter ListFilter) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.slugIndex[slugKey(slug)]
	if !ok {
		return nil, &PageNotFoundError{Key: slug}
	}
	page := m.pages[id]
	if !matchesFilter(page, filter) {
		return nil, &PageNotFoundError{Key: slug}
	}
	return page.Clone(), nil
}

// List returns pages matching the filter, ordered by slug.
func (m *MemoryRepository) List(_ context.Context, filter ListFilter) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.pages))
	for _, record := range m.pages {
		if !matchesFilter(record, filter) {
			continue
		}
		out = append(out, record.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// Update persists changes to blocks, meta, and status. Slug is identity and
// never changes.
func (m *MemoryRepository) Update(_ context.Context, record *Page) (*Page, error) {
	if record == nil {
		return nil, ErrPageRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[record.ID]
	if !ok {
		return nil, &PageNotFoundError{Key: record.ID.String()}
	}

	updated := current.Clone()
	updated.Status = record.Status
	updated.Blocks = record.Blocks.Copy()
	updated.Meta = record.Meta
	updated.IsHomepage = record.IsHomepage
	updated.UpdatedAt = time.Now().UTC()
	m.pages[record.ID] = updated
	return updated.Clone(), nil
}

// SoftDelete tombstones the page; the record is retained for history.
func (m *MemoryRepository) SoftDelete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[id]
	if !ok {
		return &PageNotFoundError{Key: id.String()}
	}
	now := time.Now().UTC()
	current.DeletedAt = &now
	current.IsHomepage = false
	current.UpdatedAt = now
	return nil
}

// Purge removes the page outright, releasing its slug. Unlike SoftDelete the
// record is gone afterwards; rollback paths use this so an aborted write
// leaves no trace.
func (m *MemoryRepository) Purge(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[id]
	if !ok {
		return &PageNotFoundError{Key: id.String()}
	}
	key := slugKey(current.Slug)
	if holder, indexed := m.slugIndex[key]; indexed && holder == id {
		delete(m.slugIndex, key)
	}
	delete(m.pages, id)
	return nil
}

// SetHomepage flags the page and clears the flag everywhere else.
func (m *MemoryRepository) SetHomepage(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.pages[id]
	if !ok || target.DeletedAt != nil {
		return &PageNotFoundError{Key: id.String()}
	}
	for _, record := range m.pages {
		record.IsHomepage = record.ID == id
	}
	return nil
}

func matchesFilter(page *Page, filter ListFilter) bool {
	if page == nil {
		return false
	}
	if !filter.IncludeDeleted && page.DeletedAt != nil {
		return false
	}
	if filter.PublishedOnly && page.Status != domain.StatusPublished {
		return false
	}
	return true
}

func slugKey(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
