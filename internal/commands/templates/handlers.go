package templatescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitebuilder/internal/commands"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/internal/templates"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

const (
	importOperation = "templates.import"
	applyOperation  = "templates.apply"
)

var (
	_ command.Commander[ImportTemplateCommand] = (*ImportTemplateHandler)(nil)
	_ command.Commander[ApplyTemplateCommand]  = (*ApplyTemplateHandler)(nil)
)

// ImportTemplateHandler parses template JSON and optionally applies the result.
type ImportTemplateHandler struct {
	inner *commands.Handler[ImportTemplateCommand]
}

// NewImportTemplateHandler creates a handler bound to the importer and applier.
func NewImportTemplateHandler(importer *templates.Importer, applier *templates.Applier, logger interfaces.Logger, opts ...commands.HandlerOption[ImportTemplateCommand]) *ImportTemplateHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ImportTemplateCommand) error {
		parsed := importer.Parse(msg.Payload)
		if err := parsed.Err(); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"template_id": parsed.Template.ID,
			"pages":       len(parsed.Template.Pages),
			"warnings":    len(parsed.Warnings),
		}).Info("templates.command.import.parsed")

		if !msg.Apply {
			return nil
		}
		_, err := applier.Apply(ctx, parsed.Template)
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportTemplateCommand]{
		commands.WithLogger[ImportTemplateCommand](baseLogger),
		commands.WithOperation[ImportTemplateCommand](importOperation),
		commands.WithMessageFields(func(msg ImportTemplateCommand) map[string]any {
			fields := map[string]any{
				"payload_bytes": len(msg.Payload),
			}
			if msg.Apply {
				fields["apply"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportTemplateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportTemplateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportTemplateCommand].
func (h *ImportTemplateHandler) Execute(ctx context.Context, msg ImportTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ApplyTemplateHandler instantiates a catalog template.
type ApplyTemplateHandler struct {
	inner *commands.Handler[ApplyTemplateCommand]
}

// NewApplyTemplateHandler creates a handler bound to the catalog and applier.
func NewApplyTemplateHandler(catalog *templates.Catalog, applier *templates.Applier, logger interfaces.Logger, opts ...commands.HandlerOption[ApplyTemplateCommand]) *ApplyTemplateHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ApplyTemplateCommand) error {
		tpl, err := catalog.Get(msg.TemplateID)
		if err != nil {
			return err
		}

		result, err := applier.Apply(ctx, &tpl)
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"template_id": tpl.ID,
			"pages":       len(result.Pages),
			"homepage":    result.Homepage.Slug,
		}).Info("templates.command.apply.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ApplyTemplateCommand]{
		commands.WithLogger[ApplyTemplateCommand](baseLogger),
		commands.WithOperation[ApplyTemplateCommand](applyOperation),
		commands.WithMessageFields(func(msg ApplyTemplateCommand) map[string]any {
			return map[string]any{"template_id": msg.TemplateID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ApplyTemplateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ApplyTemplateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ApplyTemplateCommand].
func (h *ApplyTemplateHandler) Execute(ctx context.Context, msg ApplyTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}
