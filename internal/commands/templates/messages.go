package templatescmd

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	importTemplateMessageType = "sitebuilder.templates.import"
	applyTemplateMessageType  = "sitebuilder.templates.apply"
)

// ImportTemplateCommand parses a template from its JSON interchange form and,
// when Apply is set, instantiates it in the same run. Import is fatal on
// structural errors; warnings alone still apply.
type ImportTemplateCommand struct {
	// Payload is the raw template JSON.
	Payload json.RawMessage `json:"payload"`
	// Apply instantiates the template after a clean parse.
	Apply bool `json:"apply,omitempty"`
}

// Type implements command.Message.
func (ImportTemplateCommand) Type() string { return importTemplateMessageType }

// Validate ensures a payload is present before handlers execute.
func (cmd ImportTemplateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Payload, validation.By(func(any) error {
			if len(cmd.Payload) == 0 {
				return validation.NewError("sitebuilder.templates.import.payload_required", "payload is required")
			}
			return nil
		})),
	)
}

// ApplyTemplateCommand instantiates a catalog template by identifier.
type ApplyTemplateCommand struct {
	// TemplateID selects the catalog entry to apply.
	TemplateID string `json:"template_id"`
}

// Type implements command.Message.
func (ApplyTemplateCommand) Type() string { return applyTemplateMessageType }

// Validate ensures a template identifier is present before handlers execute.
func (cmd ApplyTemplateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.TemplateID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("sitebuilder.templates.apply.template_id_required", "template_id is required")
			}
			return nil
		})),
	)
}
