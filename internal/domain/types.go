package domain

import "strings"

// Status represents lifecycle labels for site entities.
//
// Statuses are unordered labels, not workflow states: any status may be
// assigned at any time and no transition graph is enforced.
type Status string

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft Status = "draft"
	// StatusReviewing marks content waiting on editorial review.
	StatusReviewing Status = "reviewing"
	// StatusPublished identifies content visible to the public renderer.
	StatusPublished Status = "published"
	// StatusArchived marks content retained for history but not publicly visible.
	StatusArchived Status = "archived"
)

// Valid reports whether the status is part of the known label set.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReviewing, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// ParseStatus normalizes a raw status value, falling back to draft for
// empty input. Unknown labels are returned as-is so callers can reject them.
func ParseStatus(value string) Status {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return StatusDraft
	}
	return Status(trimmed)
}
