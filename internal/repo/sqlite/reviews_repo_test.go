package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/arsLnD/reviu/internal/domain/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "reviews.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Review{
		UserID:   42,
		Username: "ivan",
		FullName: "Иван Петров",
		Rating:   5,
		Text:     "Great service",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	review, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get review: %v", err)
	}

	if review.UserID != 42 || review.Username != "ivan" || review.FullName != "Иван Петров" {
		t.Fatalf("author fields mismatch: %+v", review)
	}
	if review.Rating != 5 || review.Text != "Great service" {
		t.Fatalf("content mismatch: %+v", review)
	}
	if review.HasPhoto() {
		t.Fatalf("expected no photo, got %q", review.PhotoFileID)
	}
	if review.Approved {
		t.Fatal("new review must not be approved")
	}
	if review.HasReply() || review.AdminReplyAt != nil {
		t.Fatalf("new review must have no reply: %+v", review)
	}
	if review.CreatedAt.IsZero() {
		t.Fatal("created at must be set")
	}
}

func TestListPageOrderingNewestFirst(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	firstID, err := repo.Create(ctx, model.Review{UserID: 1, Rating: 3, Text: "первый", CreatedAt: base})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	secondID, err := repo.Create(ctx, model.Review{UserID: 2, Rating: 4, Text: "второй", CreatedAt: base.Add(time.Minute)})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	page, err := repo.ListPage(ctx, 1, 5, false)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(page))
	}
	if page[0].ID != secondID || page[1].ID != firstID {
		t.Fatalf("expected newest first [%d %d], got [%d %d]", secondID, firstID, page[0].ID, page[1].ID)
	}

	// Same arguments, no mutation in between: identical result.
	again, err := repo.ListPage(ctx, 1, 5, false)
	if err != nil {
		t.Fatalf("list page again: %v", err)
	}
	if len(again) != len(page) || again[0].ID != page[0].ID || again[1].ID != page[1].ID {
		t.Fatalf("listing is not idempotent: %+v vs %+v", page, again)
	}
}

func TestListPendingOrderingNewestFirst(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	firstID, err := repo.Create(ctx, model.Review{UserID: 1, Rating: 3, Text: "первый", CreatedAt: base})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	secondID, err := repo.Create(ctx, model.Review{UserID: 2, Rating: 4, Text: "второй", CreatedAt: base.Add(time.Minute)})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	// The pending list uses the same ordering as the paginated list.
	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending reviews, got %d", len(pending))
	}
	if pending[0].ID != secondID || pending[1].ID != firstID {
		t.Fatalf("expected newest first [%d %d], got [%d %d]", secondID, firstID, pending[0].ID, pending[1].ID)
	}
}

func TestListPageTieBreakByIDDesc(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a, _ := repo.Create(ctx, model.Review{UserID: 1, Rating: 3, Text: "a", CreatedAt: at})
	b, _ := repo.Create(ctx, model.Review{UserID: 1, Rating: 3, Text: "b", CreatedAt: at})

	page, err := repo.ListPage(ctx, 1, 5, false)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].ID != b || page[1].ID != a {
		t.Fatalf("expected id desc tie-break [%d %d], got %+v", b, a, page)
	}
}

func TestListPageBeyondLastIsEmpty(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, model.Review{UserID: 1, Rating: 2, Text: "одинокий"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	page, err := repo.ListPage(ctx, 99, 5, false)
	if err != nil {
		t.Fatalf("out-of-range page must not error: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(page))
	}
}

func TestApproveMovesReviewBetweenLists(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Review{UserID: 7, Rating: 5, Text: "Great service"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	approved, err := repo.ListPage(ctx, 1, 5, true)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("unapproved review leaked into approved list: %+v", approved)
	}

	ok, err := repo.Approve(ctx, id)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !ok {
		t.Fatal("approve must report affected row")
	}

	approved, err = repo.ListPage(ctx, 1, 5, true)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != id {
		t.Fatalf("expected approved review %d, got %+v", id, approved)
	}

	pending, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("approved review still pending: %+v", pending)
	}
}

func TestApproveAndDeleteMissingID(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	ok, err := repo.Approve(ctx, 9999)
	if err != nil {
		t.Fatalf("approve missing: %v", err)
	}
	if ok {
		t.Fatal("approve of missing id must report false")
	}

	ok, err = repo.Delete(ctx, 9999)
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if ok {
		t.Fatal("delete of missing id must report false")
	}

	count, err := repo.Count(ctx, false)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("store changed by missing-id ops, count=%d", count)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	id, _ := repo.Create(ctx, model.Review{UserID: 1, Rating: 1, Text: "удалить"})

	ok, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("delete must report affected row")
	}

	if _, err := repo.GetByID(ctx, id); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestAttachReply(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	id, _ := repo.Create(ctx, model.Review{UserID: 5, Rating: 4, Text: "норм"})

	if err := repo.AttachReply(ctx, id, 100, "admin", "Спасибо!"); err != nil {
		t.Fatalf("attach reply: %v", err)
	}

	review, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if review.AdminReply != "Спасибо!" || review.AdminID != 100 || review.AdminUsername != "admin" {
		t.Fatalf("reply fields mismatch: %+v", review)
	}
	if review.AdminReplyAt == nil {
		t.Fatal("reply timestamp must be set")
	}
	if review.Approved {
		t.Fatal("reply must not change approval flag")
	}

	// Unknown id is a silent no-op.
	if err := repo.AttachReply(ctx, 9999, 100, "admin", "эхо"); err != nil {
		t.Fatalf("attach reply to missing id must not error: %v", err)
	}
}

func TestCountApprovedOnly(t *testing.T) {
	repo := NewReviewsRepo(openTestDB(t))
	ctx := context.Background()

	first, _ := repo.Create(ctx, model.Review{UserID: 1, Rating: 5, Text: "a"})
	if _, err := repo.Create(ctx, model.Review{UserID: 2, Rating: 4, Text: "b"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Approve(ctx, first); err != nil {
		t.Fatalf("approve: %v", err)
	}

	total, err := repo.Count(ctx, false)
	if err != nil {
		t.Fatalf("count all: %v", err)
	}
	approved, err := repo.Count(ctx, true)
	if err != nil {
		t.Fatalf("count approved: %v", err)
	}
	if total != 2 || approved != 1 {
		t.Fatalf("expected total=2 approved=1, got total=%d approved=%d", total, approved)
	}
}
