package gologger_test

import (
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/logging/gologger"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

func TestNewProviderRejectsUnknownLevel(t *testing.T) {
	if _, err := gologger.NewProvider(gologger.Config{Level: "loud"}); err == nil {
		t.Fatal("unknown level should be rejected")
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := gologger.NewProvider(gologger.Config{Format: "text"}); err == nil {
		t.Fatal("unknown format should be rejected")
	}
}

func TestGetLoggerHandsOutNamedChildren(t *testing.T) {
	provider, err := gologger.NewProvider(gologger.Config{Level: "error", Format: "json"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	root := provider.GetLogger("")
	if root == nil {
		t.Fatal("empty name should yield the root logger")
	}
	child := provider.GetLogger("pages")
	if child == nil {
		t.Fatal("named lookup should yield a logger")
	}
	withFields, ok := child.(interfaces.FieldsLogger)
	if !ok {
		t.Fatal("named logger should support WithFields")
	}
	if fielded := withFields.WithFields(map[string]any{"slug": "home"}); fielded == nil {
		t.Fatal("WithFields should yield a logger")
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var provider *gologger.Provider
	logger := provider.GetLogger("anything")
	if logger == nil {
		t.Fatal("nil provider should still hand out a logger")
	}
	logger.Info("ignored")
}
