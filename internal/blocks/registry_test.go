package blocks_test

import (
	"encoding/json"
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/blocks"

	"github.com/goliatone/go-sitebuilder/internal/modules"
)

func TestDefaultRegistryCoversEveryKind(t *testing.T) {
	registry := blocks.Default()
	for _, kind := range blocks.Kinds() {
		if _, ok := registry.Lookup(kind); !ok {
			t.Fatalf("kind %s missing from default registry", kind)
		}
	}
	if got, want := len(registry.Kinds()), len(blocks.Kinds()); got != want {
		t.Fatalf("registry has %d kinds, want %d", got, want)
	}
}

func TestRequiredModuleBindings(t *testing.T) {
	registry := blocks.Default()

	gated := map[blocks.Kind]modules.ID{
		blocks.KindProducts:         modules.ModuleProducts,
		blocks.KindProductGrid:      modules.ModuleProducts,
		blocks.KindChat:             modules.ModuleChat,
		blocks.KindBlogPosts:        modules.ModuleBlog,
		blocks.KindKBArticles:       modules.ModuleKnowledgeBase,
		blocks.KindNewsletterSignup: modules.ModuleNewsletter,
		blocks.KindBooking:          modules.ModuleBookings,
	}
	for kind, want := range gated {
		got, ok := registry.RequiredModule(kind)
		if !ok {
			t.Fatalf("kind %s should require a module", kind)
		}
		if got != want {
			t.Fatalf("kind %s requires %s, want %s", kind, got, want)
		}
	}

	for _, kind := range []blocks.Kind{blocks.KindHero, blocks.KindText, blocks.KindColumns, blocks.KindTabs} {
		if _, ok := registry.RequiredModule(kind); ok {
			t.Fatalf("kind %s should not require a module", kind)
		}
	}
}

func TestLookupUnknownKindDoesNotPanic(t *testing.T) {
	registry := blocks.Default()
	if _, ok := registry.Lookup(blocks.Kind("countdown")); ok {
		t.Fatal("unknown kind should not resolve")
	}
	if _, ok := registry.RequiredModule(blocks.Kind("countdown")); ok {
		t.Fatal("unknown kind should not require a module")
	}
}

func TestNewBlockSeedsDefaults(t *testing.T) {
	registry := blocks.Default()
	block := registry.NewBlock(blocks.KindChat)
	chat, ok := block.Data.(blocks.ChatData)
	if !ok {
		t.Fatalf("expected blocks.ChatData, got %T", block.Data)
	}
	if chat.Greeting == "" {
		t.Fatal("default greeting should be set")
	}
}

func TestValidateDataAcceptsDefaults(t *testing.T) {
	registry := blocks.Default()
	for _, kind := range registry.Kinds() {
		block := registry.NewBlock(kind)
		if err := registry.ValidateData(block); err != nil {
			t.Fatalf("default %s payload should validate: %v", kind, err)
		}
	}
}

func TestValidateRawRejectsWrongShape(t *testing.T) {
	registry := blocks.Default()
	if err := registry.ValidateRaw(blocks.KindHero, json.RawMessage(`{"title":123}`)); err == nil {
		t.Fatal("numeric title should fail hero schema")
	}
	if err := registry.ValidateRaw(blocks.KindHero, json.RawMessage(`{"title":"ok"}`)); err != nil {
		t.Fatalf("valid hero payload rejected: %v", err)
	}
	// Unknown kinds carry no schema and must validate clean.
	if err := registry.ValidateRaw(blocks.Kind("countdown"), json.RawMessage(`{"whatever":1}`)); err != nil {
		t.Fatalf("unknown kind should validate clean: %v", err)
	}
}
