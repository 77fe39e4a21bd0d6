package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by entity type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// TemplateUUID derives the identifier for a catalog template.
func TemplateUUID(templateID string) uuid.UUID {
	return UUID("sitebuilder:template:" + strings.ToLower(strings.TrimSpace(templateID)))
}

// TemplatePageUUID derives the identifier for a page created from a template.
func TemplatePageUUID(templateID, slug string) uuid.UUID {
	return UUID("sitebuilder:template_page:" + strings.ToLower(strings.TrimSpace(templateID)) + ":" + strings.ToLower(strings.TrimSpace(slug)))
}

// ModuleSettingUUID derives the identifier for a module gate record.
func ModuleSettingUUID(moduleID string) uuid.UUID {
	return UUID("sitebuilder:module_setting:" + strings.ToLower(strings.TrimSpace(moduleID)))
}
