package templates

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateRequired indicates a nil template was supplied.
	ErrTemplateRequired = errors.New("template is required")
	// ErrTemplateInvalid indicates the template failed structural validation.
	ErrTemplateInvalid = errors.New("template is invalid")
	// ErrTemplateNotFound indicates the catalog holds no such template.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateExists indicates a catalog identifier collision.
	ErrTemplateExists = errors.New("template already registered")
	// ErrPageServiceRequired indicates the applier was built without a page service.
	ErrPageServiceRequired = errors.New("page service is required")
)

// Issue is one path-scoped finding from the importer: either a fatal
// structural error or a non-fatal warning.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// StructuralError aggregates the fatal issues that abort an import or apply.
type StructuralError struct {
	Issues []Issue
}

func (e *StructuralError) Error() string {
	if len(e.Issues) == 0 {
		return ErrTemplateInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("template is invalid: %s", strings.Join(parts, "; "))
}

func (e *StructuralError) Unwrap() error {
	return ErrTemplateInvalid
}
