package access

import (
	"testing"

	"github.com/arsLnD/reviu/internal/domain/enums"
)

func TestIsAdmin(t *testing.T) {
	svc := NewService(100, []int64{200, 300}, nil)

	cases := []struct {
		tgID int64
		want bool
	}{
		{100, true},
		{200, true},
		{300, true},
		{400, false},
		{0, false},
	}
	for _, tc := range cases {
		if got := svc.IsAdmin(tc.tgID); got != tc.want {
			t.Fatalf("IsAdmin(%d) = %v, want %v", tc.tgID, got, tc.want)
		}
	}
}

func TestRoleFor(t *testing.T) {
	svc := NewService(100, []int64{200}, nil)

	if svc.RoleFor(100) != enums.RoleAdmin {
		t.Fatal("owner must resolve to admin role")
	}
	if svc.RoleFor(999) != enums.RoleUser {
		t.Fatal("unknown user must resolve to user role")
	}
}

func TestRecipientsExcludesAuthor(t *testing.T) {
	svc := NewService(100, []int64{200, 300}, nil)

	recipients := svc.Recipients(200)
	if len(recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %v", recipients)
	}
	for _, id := range recipients {
		if id == 200 {
			t.Fatal("author must be excluded from fan-out")
		}
	}
}

func TestRecipientsDeduplicatesOwner(t *testing.T) {
	// Owner listed in ADMIN_IDS as well must be notified once.
	svc := NewService(100, []int64{100, 200}, nil)

	recipients := svc.Recipients(0)
	if len(recipients) != 2 {
		t.Fatalf("expected deduplicated recipients, got %v", recipients)
	}
}
