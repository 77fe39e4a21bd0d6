// Package gologger adapts goliatone/go-logger to the site builder's logging
// contracts. The runtime config exposes a small slice of go-logger's surface:
// level, output format, source annotation, and focus filters.
package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Config mirrors runtimeconfig.LoggingConfig; the container translates one
// into the other when the gologger provider is selected.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Provider hands out named child loggers from a single go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the provider. Unset fields keep the site builder
// defaults: info level, console output.
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if level, ok := levelFor(cfg.Level); !ok {
		return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
	} else if level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)

	focus := make([]string, 0, len(cfg.Focus))
	for _, name := range cfg.Focus {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			focus = append(focus, trimmed)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// GetLogger satisfies interfaces.LoggerProvider. An empty name yields the
// root logger itself.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &glogLogger{inner: inner}
}

// glogLogger narrows a go-logger Logger to the interfaces.Logger contract.
type glogLogger struct {
	inner glog.Logger
}

func (l *glogLogger) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *glogLogger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *glogLogger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *glogLogger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *glogLogger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *glogLogger) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *glogLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}

	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return adapt(with.WithFields(copied))
	}

	// Loggers without field support get sorted key/value args so output
	// stays deterministic.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	if with, ok := l.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return adapt(with.With(args...))
	}
	return l
}

func (l *glogLogger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return adapt(l.inner.WithContext(ctx))
}

// levelFor maps the runtime config level names onto go-logger levels. The
// empty string defers to go-logger's default. Unknown names are rejected
// rather than silently downgraded.
func levelFor(level string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return "", true
	case "trace":
		return glog.Trace, true
	case "debug":
		return glog.Debug, true
	case "info":
		return glog.Info, true
	case "warn", "warning":
		return glog.Warn, true
	case "error":
		return glog.Error, true
	case "fatal":
		return glog.Fatal, true
	default:
		return "", false
	}
}
