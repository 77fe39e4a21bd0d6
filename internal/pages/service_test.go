package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitebuilder/internal/blocks"
	"github.com/goliatone/go-sitebuilder/internal/domain"
	"github.com/goliatone/go-sitebuilder/internal/pages"
)

func newTestService() pages.Service {
	return pages.NewService(pages.NewMemoryRepository(), blocks.Default())
}

func TestCreateNormalizesSlug(t *testing.T) {
	svc := newTestService()
	page, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug:   "About Us",
		Status: domain.StatusDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if page.Slug != "about-us" {
		t.Fatalf("slug not normalized: %q", page.Slug)
	}
	if page.ID == uuid.Nil {
		t.Fatal("page should receive an identifier")
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if _, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "Home"}); !errors.Is(err, pages.ErrSlugExists) {
		t.Fatalf("expected pages.ErrSlugExists, got %v", err)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug:   "home",
		Status: domain.Status("frozen"),
	}); !errors.Is(err, pages.ErrStatusInvalid) {
		t.Fatalf("expected pages.ErrStatusInvalid, got %v", err)
	}
}

func TestGetPublishedFiltersDrafts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if _, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "draft-page", Status: domain.StatusDraft}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetPublished(ctx, "draft-page"); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("draft should be invisible to published lookup, got %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "draft-page"); err != nil {
		t.Fatalf("editor lookup should see the draft: %v", err)
	}
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	page, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home", Status: domain.StatusArchived})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Statuses are labels, not workflow states: archived may go back to draft.
	updated, err := svc.UpdateStatus(ctx, page.ID, domain.StatusDraft)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.StatusDraft {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
}

func TestDuplicateIssuesFreshBlockIdentifiers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	block := blocks.Block{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "hi"}}
	source, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home", Blocks: blocks.List{block}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	copy, err := svc.Duplicate(ctx, pages.DuplicatePageRequest{PageID: source.ID, Slug: "home-copy"})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copy.ID == source.ID {
		t.Fatal("duplicate must not share the source page identifier")
	}
	if copy.Status != domain.StatusDraft {
		t.Fatalf("duplicate should start as draft, got %s", copy.Status)
	}
	if copy.Blocks[0].ID == block.ID {
		t.Fatal("duplicated blocks must receive fresh identifiers")
	}
	if copy.Blocks[0].Data.(blocks.TextData).Markdown != "hi" {
		t.Fatal("duplicated block payload must be preserved")
	}
}

func TestSetHomepageIsExclusive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "one", Status: domain.StatusPublished})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "two", Status: domain.StatusPublished})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetHomepage(ctx, first.ID); err != nil {
		t.Fatalf("set homepage: %v", err)
	}
	if err := svc.SetHomepage(ctx, second.ID); err != nil {
		t.Fatalf("set homepage: %v", err)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	flagged := 0
	for _, page := range listed {
		if page.IsHomepage {
			flagged++
			if page.ID != second.ID {
				t.Fatalf("wrong homepage: %s", page.Slug)
			}
		}
	}
	if flagged != 1 {
		t.Fatalf("exactly one homepage expected, got %d", flagged)
	}
}

func TestDeleteTombstones(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "gone", Status: domain.StatusPublished})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, page.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetBySlug(ctx, "gone"); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("deleted page should not resolve by slug, got %v", err)
	}
	// The record is tombstoned, not removed: direct lookup still works.
	if _, err := svc.Get(ctx, page.ID); err != nil {
		t.Fatalf("tombstoned page should resolve by id: %v", err)
	}
}

func TestCreateReusesTombstonedSlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home", Status: domain.StatusPublished})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// A tombstone frees its slug for new records.
	second, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home"})
	if err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("replacement page must be a new record")
	}

	// The replacement owns the slug; the tombstone stays reachable by id.
	resolved, err := svc.GetBySlug(ctx, "home")
	if err != nil {
		t.Fatalf("slug lookup: %v", err)
	}
	if resolved.ID != second.ID {
		t.Fatalf("slug resolves to %s, want the replacement", resolved.ID)
	}
	if _, err := svc.Get(ctx, first.ID); err != nil {
		t.Fatalf("tombstoned page should resolve by id: %v", err)
	}
}

func TestPurgeRemovesRecordEntirely(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "scratch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Purge(ctx, page.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}

	if _, err := svc.Get(ctx, page.ID); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("purged page should not resolve by id, got %v", err)
	}
	if _, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "scratch"}); err != nil {
		t.Fatalf("purged slug should be free again: %v", err)
	}
}

func TestUpdateReplacesBlocksAndMeta(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	page, err := svc.Create(ctx, pages.CreatePageRequest{Slug: "home"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, pages.UpdatePageRequest{
		ID:     page.ID,
		Status: domain.StatusPublished,
		Blocks: blocks.List{{ID: uuid.New(), Kind: blocks.KindText, Data: blocks.TextData{Markdown: "body"}}},
		Meta:   pages.Meta{Title: "Home", Description: "front door"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusPublished {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if len(updated.Blocks) != 1 || updated.Meta.Title != "Home" {
		t.Fatalf("update not applied: %#v", updated)
	}
	if updated.Slug != "home" {
		t.Fatalf("slug must never change, got %q", updated.Slug)
	}
}
