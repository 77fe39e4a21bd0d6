package templates

import (
	"sort"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/modules"
)

// ValidationResult reports the outcome of checking a declared module list
// against what a block list actually requires.
type ValidationResult struct {
	Valid   bool
	Missing []modules.ID
	Derived []modules.ID
}

// DeriveRequiredModules computes the set of modules a block list needs,
// recursing into every container payload. The recursion is generic over the
// Container interface rather than enumerating container shapes by name, so a
// new container kind is covered the moment its payload exposes Children.
//
// Blocks with an empty kind, and kinds the registry does not know, contribute
// nothing. The result is sorted and duplicate-free, so repeated calls over an
// unchanged list are identical.
func DeriveRequiredModules(registry *blocks.Registry, list blocks.List) []modules.ID {
	seen := map[modules.ID]struct{}{}
	collectModules(registry, list, seen)

	out := make([]modules.ID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func collectModules(registry *blocks.Registry, list blocks.List, seen map[modules.ID]struct{}) {
	for _, block := range list {
		if block.Kind == "" {
			continue
		}
		if required, ok := registry.RequiredModule(block.Kind); ok {
			seen[required] = struct{}{}
		}
		if container, ok := block.Data.(blocks.Container); ok {
			collectModules(registry, container.Children(), seen)
		}
	}
}

// Validate checks that the declared module list covers everything the block
// list derives. Missing is the set difference derived minus declared; extra
// declared-but-unused modules are tolerated.
func Validate(registry *blocks.Registry, declared []modules.ID, list blocks.List) ValidationResult {
	derived := DeriveRequiredModules(registry, list)

	declaredSet := make(map[modules.ID]struct{}, len(declared))
	for _, id := range declared {
		declaredSet[id] = struct{}{}
	}

	var missing []modules.ID
	for _, id := range derived {
		if _, ok := declaredSet[id]; !ok {
			missing = append(missing, id)
		}
	}

	return ValidationResult{
		Valid:   len(missing) == 0,
		Missing: missing,
		Derived: derived,
	}
}

// templateBlocks flattens every page's top-level block list for whole-template
// derivation. Nested blocks are handled by the resolver's own recursion.
func templateBlocks(t *Template) blocks.List {
	var out blocks.List
	for _, page := range t.Pages {
		out = append(out, page.Blocks...)
	}
	return out
}
