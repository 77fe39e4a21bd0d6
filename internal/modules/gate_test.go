package modules_test

import (
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/modules"
)

func TestGateFailsOpen(t *testing.T) {
	gate := modules.NewGate(nil)
	if !gate.IsEnabled(modules.ModuleChat) {
		t.Fatal("gate without configuration must report enabled")
	}

	gate = modules.NewGate(modules.Config{modules.ModuleChat: {Enabled: false}})
	if !gate.IsEnabled(modules.ModuleProducts) {
		t.Fatal("modules without a configured entry must report enabled")
	}
	if !gate.IsEnabled(modules.ID("someFutureModule")) {
		t.Fatal("unknown module identifiers must report enabled")
	}
}

func TestGateDisablesConfiguredModules(t *testing.T) {
	gate := modules.NewGate(modules.Config{
		modules.ModuleChat:     {Enabled: false},
		modules.ModuleProducts: {Enabled: true},
	})
	if gate.IsEnabled(modules.ModuleChat) {
		t.Fatal("chat should be disabled")
	}
	if !gate.IsEnabled(modules.ModuleProducts) {
		t.Fatal("products should be enabled")
	}
}

func TestGateIsImmutableSnapshot(t *testing.T) {
	cfg := modules.Config{modules.ModuleChat: {Enabled: true}}
	gate := modules.NewGate(cfg)

	cfg[modules.ModuleChat] = modules.Setting{Enabled: false}
	if !gate.IsEnabled(modules.ModuleChat) {
		t.Fatal("mutating the source config must not affect an existing gate")
	}

	settings := gate.Settings()
	settings[modules.ModuleChat] = modules.Setting{Enabled: false}
	if !gate.IsEnabled(modules.ModuleChat) {
		t.Fatal("mutating a settings copy must not affect the gate")
	}
}

func TestDefaultConfigEnablesEveryKnownModule(t *testing.T) {
	cfg := modules.DefaultConfig()
	if len(cfg) != len(modules.Known()) {
		t.Fatalf("default config has %d entries, want %d", len(cfg), len(modules.Known()))
	}
	for _, id := range modules.Known() {
		setting, ok := cfg[id]
		if !ok || !setting.Enabled {
			t.Fatalf("module %s should default to enabled", id)
		}
		if setting.Name == "" {
			t.Fatalf("module %s should have a display name", id)
		}
	}
}
