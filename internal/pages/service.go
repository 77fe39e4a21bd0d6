package pages

import (
	"context"
	"fmt"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

type service struct {
	repo     Repository
	registry *blocks.Registry
	logger   interfaces.Logger
}

// ServiceOption configures the page service.
type ServiceOption func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the page service. The registry validates block
// payloads on write; the renderer degrades gracefully regardless, so
// validation failures here are advisory warnings, not write rejections.
func NewService(repo Repository, registry *blocks.Registry, opts ...ServiceOption) Service {
	svc := &service{
		repo:     repo,
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrStatusInvalid, status)
	}

	s.warnOnInvalidBlocks(req.Blocks, normalized)

	record := &Page{
		ID:     req.ID,
		Slug:   normalized,
		Status: status,
		Blocks: req.Blocks.Copy(),
		Meta:   req.Meta,
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	logging.WithFields(s.logger, map[string]any{
		"page_id": created.ID.String(),
		"slug":    created.Slug,
		"status":  string(created.Status),
	}).Info("pages.created")
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	return s.repo.GetBySlug(ctx, slug, ListFilter{})
}

func (s *service) GetPublished(ctx context.Context, slug string) (*Page, error) {
	return s.repo.GetBySlug(ctx, slug, ListFilter{PublishedOnly: true})
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.repo.List(ctx, ListFilter{})
}

func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPageRequired
	}
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrStatusInvalid, status)
	}

	s.warnOnInvalidBlocks(req.Blocks, current.Slug)

	current.Status = status
	current.Blocks = req.Blocks.Copy()
	current.Meta = req.Meta
	return s.repo.Update(ctx, current)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrStatusInvalid, status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Any label may replace any other label; no transition graph is enforced.
	current.Status = status
	return s.repo.Update(ctx, current)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageRequired
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	logging.WithFields(s.logger, map[string]any{
		"page_id": id.String(),
	}).Info("pages.deleted")
	return nil
}

func (s *service) Purge(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageRequired
	}
	if err := s.repo.Purge(ctx, id); err != nil {
		return err
	}
	logging.WithFields(s.logger, map[string]any{
		"page_id": id.String(),
	}).Info("pages.purged")
	return nil
}

func (s *service) Duplicate(ctx context.Context, req DuplicatePageRequest) (*Page, error) {
	if req.PageID == uuid.Nil {
		return nil, ErrPageRequired
	}
	source, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	record := &Page{
		ID:     uuid.New(),
		Slug:   normalized,
		Status: domain.StatusDraft,
		Blocks: source.Blocks.CloneFresh(),
		Meta:   source.Meta,
	}
	return s.repo.Create(ctx, record)
}

func (s *service) SetHomepage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageRequired
	}
	return s.repo.SetHomepage(ctx, id)
}

func (s *service) warnOnInvalidBlocks(list blocks.List, pageSlug string) {
	if s.registry == nil {
		return
	}
	for _, block := range list {
		if err := s.registry.ValidateData(block); err != nil {
			logging.WithFields(s.logger, map[string]any{
				"slug":       pageSlug,
				"block_id":   block.ID.String(),
				"block_kind": string(block.Kind),
				"error":      err.Error(),
			}).Warn("pages.block.payload_invalid")
		}
	}
}

func normalizeSlug(value string) (string, error) {
	if value == "" {
		return "", ErrSlugRequired
	}
	normalized, err := slug.Normalize(value)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}
