package test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
	sqliterepo "github.com/arsLnD/reviu/internal/repo/sqlite"
	"github.com/arsLnD/reviu/internal/services/access"
	"github.com/arsLnD/reviu/internal/services/reviews"
	"github.com/arsLnD/reviu/internal/ui"
)

func newReviewsService(t *testing.T) *reviews.Service {
	t.Helper()

	db, err := sqliterepo.Open(context.Background(), filepath.Join(t.TempDir(), "smoke.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return reviews.NewService(sqliterepo.NewReviewsRepo(db))
}

func TestReviewLifecycle(t *testing.T) {
	svc := newReviewsService(t)
	ctx := context.Background()

	id, err := svc.Submit(ctx, model.Review{
		UserID:   42,
		Username: "tester",
		FullName: "Тест Тестов",
		Rating:   5,
		Text:     "Сквозной отзыв",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Hidden from users until moderated.
	userPage, err := svc.BrowsePage(ctx, enums.RoleUser, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userPage.Total != 0 {
		t.Fatalf("expected no visible reviews before approval, got %d", userPage.Total)
	}

	if err := svc.Approve(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userPage, err = svc.BrowsePage(ctx, enums.RoleUser, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userPage.Total != 1 {
		t.Fatalf("expected one visible review after approval, got %d", userPage.Total)
	}

	if err := svc.Reply(ctx, id, 999, "owner", "Спасибо!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	review, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.AdminReply != "Спасибо!" {
		t.Fatalf("expected stored reply, got %q", review.AdminReply)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, reviews.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound after delete, got %v", err)
	}
}

func TestAccessRoles(t *testing.T) {
	svc := access.NewService(999, []int64{1000}, nil)

	if got := svc.RoleFor(999); got != enums.RoleAdmin {
		t.Fatalf("expected owner to be admin, got %s", got)
	}
	if got := svc.RoleFor(1000); got != enums.RoleAdmin {
		t.Fatalf("expected listed admin to be admin, got %s", got)
	}
	if got := svc.RoleFor(42); got != enums.RoleUser {
		t.Fatalf("expected plain user role, got %s", got)
	}
}

func TestStartMenuForAllRoles(t *testing.T) {
	testCases := []struct {
		name        string
		role        enums.Role
		mustHave    []string
		mustNotHave []string
	}{
		{
			name:        "user",
			role:        enums.RoleUser,
			mustHave:    []string{"review:new", "reviews:user:1"},
			mustNotHave: []string{"admin:moderation", "welcome:edit"},
		},
		{
			name:        "admin",
			role:        enums.RoleAdmin,
			mustHave:    []string{"admin:moderation", "welcome:edit", "reviews:admin:1"},
			mustNotHave: []string{"review:new"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tokens []string
			for _, row := range ui.StartMenu(tc.role) {
				for _, button := range row {
					tokens = append(tokens, button.Data)
				}
			}
			joined := strings.Join(tokens, " ")

			for _, want := range tc.mustHave {
				if !strings.Contains(joined, want) {
					t.Errorf("role %s: missing action %q", tc.role, want)
				}
			}
			for _, forbidden := range tc.mustNotHave {
				if strings.Contains(joined, forbidden) {
					t.Errorf("role %s: unexpected action %q", tc.role, forbidden)
				}
			}
		})
	}
}
