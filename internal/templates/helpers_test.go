package templates_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/templates"
)

// builtin fetches one of the shipped starter templates by id.
func builtin(t *testing.T, id string) templates.Template {
	t.Helper()
	catalog, err := templates.DefaultCatalog(blocks.Default())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	tpl, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("catalog get %q: %v", id, err)
	}
	return tpl
}

// builtins returns every shipped starter template.
func builtins(t *testing.T) []templates.Template {
	t.Helper()
	catalog, err := templates.DefaultCatalog(blocks.Default())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return catalog.List()
}

func seedBlock(data blocks.Data) blocks.Block {
	return blocks.Block{ID: uuid.New(), Kind: data.BlockKind(), Data: data}
}

// pageBlocks flattens a template's top-level block lists.
func pageBlocks(tpl *templates.Template) blocks.List {
	var out blocks.List
	for _, page := range tpl.Pages {
		out = append(out, page.Blocks...)
	}
	return out
}
