package access

import (
	"context"
	"time"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
)

type UsersRepo interface {
	Upsert(context.Context, model.BotUser) error
}

// Service answers the privilege question for every moderation and edit
// operation: an actor is an admin iff it is the configured owner or a member
// of the configured admin set.
type Service struct {
	ownerID   int64
	adminIDs  map[int64]struct{}
	usersRepo UsersRepo
}

func NewService(ownerID int64, adminIDs []int64, usersRepo UsersRepo) *Service {
	set := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		set[id] = struct{}{}
	}
	return &Service{
		ownerID:   ownerID,
		adminIDs:  set,
		usersRepo: usersRepo,
	}
}

func (s *Service) IsAdmin(tgID int64) bool {
	if s.ownerID != 0 && tgID == s.ownerID {
		return true
	}
	_, ok := s.adminIDs[tgID]
	return ok
}

func (s *Service) RoleFor(tgID int64) enums.Role {
	if s.IsAdmin(tgID) {
		return enums.RoleAdmin
	}
	return enums.RoleUser
}

// Recipients lists every admin and the owner except the excluded user,
// for new-review fan-out.
func (s *Service) Recipients(exclude int64) []int64 {
	seen := make(map[int64]struct{}, len(s.adminIDs)+1)
	recipients := make([]int64, 0, len(s.adminIDs)+1)

	add := func(id int64) {
		if id == 0 || id == exclude {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	add(s.ownerID)
	for id := range s.adminIDs {
		add(id)
	}
	return recipients
}

func (s *Service) TouchUser(ctx context.Context, user model.BotUser) error {
	if s.usersRepo == nil {
		return nil
	}
	if user.LastSeenAt.IsZero() {
		user.LastSeenAt = time.Now().UTC()
	}
	return s.usersRepo.Upsert(ctx, user)
}
