package blocks

import (
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/modules"
)

// Entry describes one block kind: its editor-facing metadata, the payload
// schema its data must satisfy, the module it depends on (if any), and a
// factory producing the default payload for freshly added blocks.
type Entry struct {
	Kind      Kind
	Title     string
	Category  string
	Module    modules.ID
	Container bool
	Schema    map[string]any
	Defaults  func() Data
}

// Registry is the single source of truth mapping a block kind to its entry.
// It is constructed once at startup and never mutated afterwards; callers
// receive it by injection rather than through package globals.
type Registry struct {
	entries map[Kind]Entry
	order   []Kind
}

// NewRegistry builds a registry from the supplied entries. Entries with an
// empty kind are ignored; later duplicates replace earlier ones.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make(map[Kind]Entry, len(entries)),
		order:   make([]Kind, 0, len(entries)),
	}
	for _, entry := range entries {
		kind := Kind(strings.TrimSpace(string(entry.Kind)))
		if kind == "" {
			continue
		}
		entry.Kind = kind
		if _, exists := r.entries[kind]; !exists {
			r.order = append(r.order, kind)
		}
		r.entries[kind] = entry
	}
	return r
}

// Lookup returns the entry for a kind. Unrecognized kinds return ok=false;
// they must never panic so pages carrying future block kinds stay renderable.
func (r *Registry) Lookup(kind Kind) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	entry, ok := r.entries[kind]
	return entry, ok
}

// RequiredModule returns the module a block kind depends on. Kinds without a
// dependency, and unknown kinds, return ok=false.
func (r *Registry) RequiredModule(kind Kind) (modules.ID, bool) {
	entry, ok := r.Lookup(kind)
	if !ok || entry.Module == "" {
		return "", false
	}
	return entry.Module, true
}

// Kinds returns every registered kind in registration order.
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}
	return append([]Kind(nil), r.order...)
}

// Entries returns every registered entry in registration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.entries[kind])
	}
	return out
}

// NewBlock creates a block of the given kind seeded with the registered
// defaults. Unknown kinds produce an UnknownData placeholder block.
func (r *Registry) NewBlock(kind Kind) Block {
	entry, ok := r.Lookup(kind)
	if !ok || entry.Defaults == nil {
		return New(kind)
	}
	return Block{
		ID:   uuid.New(),
		Kind: kind,
		Data: entry.Defaults(),
	}
}

// KindSlug normalizes a kind for use in asset paths and editor anchors.
func KindSlug(kind Kind) string {
	normalized, err := slug.Normalize(string(kind))
	if err != nil || normalized == "" {
		return strings.ToLower(string(kind))
	}
	return normalized
}
