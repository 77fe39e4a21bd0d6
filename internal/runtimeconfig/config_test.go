package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitebuilder/internal/modules"
	"github.com/goliatone/go-sitebuilder/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"storage driver", func(c *runtimeconfig.Config) { c.Storage.Driver = "etcd" }, runtimeconfig.ErrStorageDriverUnknown},
		{"logging provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "zap" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"logging level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"logging format", func(c *runtimeconfig.Config) { c.Logging.Format = "text" }, runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		cfg := runtimeconfig.DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateAcceptsZeroValues(t *testing.T) {
	if err := (runtimeconfig.Config{}).Validate(); err != nil {
		t.Fatalf("zero config should validate: %v", err)
	}
}

func TestFeaturesModuleConfig(t *testing.T) {
	features := runtimeconfig.Features{Blog: true, Products: true}
	cfg := features.ModuleConfig()

	if len(cfg) != len(modules.Known()) {
		t.Fatalf("every known module needs an entry, got %d", len(cfg))
	}
	if !cfg[modules.ModuleBlog].Enabled || !cfg[modules.ModuleProducts].Enabled {
		t.Fatal("enabled toggles should carry through")
	}
	if cfg[modules.ModuleChat].Enabled || cfg[modules.ModuleBookings].Enabled {
		t.Fatal("disabled toggles should carry through")
	}
	if cfg[modules.ModuleChat].Name == "" {
		t.Fatal("display names should come from the defaults")
	}
}
