package pages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlugRequired   = errors.New("pages: slug is required")
	ErrSlugInvalid    = errors.New("pages: slug contains invalid characters")
	ErrSlugExists     = errors.New("pages: slug already exists")
	ErrSlugImmutable  = errors.New("pages: slug cannot change after creation")
	ErrPageRequired   = errors.New("pages: page id required")
	ErrPageNotFound   = errors.New("pages: page not found")
	ErrStatusInvalid  = errors.New("pages: unknown status label")
	ErrPageNotVisible = errors.New("pages: page is not published")
)

// PageNotFoundError carries the lookup key that missed.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: %s", ErrPageNotFound.Error(), key)
	}
	return ErrPageNotFound.Error()
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}
