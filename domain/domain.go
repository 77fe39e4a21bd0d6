// Package domain re-exports shared domain types for library consumers.
package domain

import internal "github.com/goliatone/go-sitebuilder/internal/domain"

type Status = internal.Status

const (
	StatusDraft     = internal.StatusDraft
	StatusReviewing = internal.StatusReviewing
	StatusPublished = internal.StatusPublished
	StatusArchived  = internal.StatusArchived
)

var ParseStatus = internal.ParseStatus
