package logging

import (
	"context"

	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const (
	rootModule      = "sitebuilder"
	pagesModule     = "sitebuilder.pages"
	modulesModule   = "sitebuilder.modules"
	renderModule    = "sitebuilder.render"
	templatesModule = "sitebuilder.templates"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so entries can be filtered downstream.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PagesLogger returns the logger namespace reserved for page services.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// ModulesLogger returns the logger namespace reserved for the module gate.
func ModulesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, modulesModule)
}

// RenderLogger returns the logger namespace reserved for the renderer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// TemplatesLogger returns the logger namespace reserved for template workflows.
func TemplatesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, templatesModule)
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services can operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
