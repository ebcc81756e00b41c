package reviews

import (
	"context"
	"errors"
	"strings"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
	sqliterepo "github.com/arsLnD/reviu/internal/repo/sqlite"
)

const PerPage = 5

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyText      = errors.New("review text is empty")
	ErrEmptyReply     = errors.New("reply text is empty")
	ErrReviewNotFound = errors.New("review not found")
)

type Repo interface {
	Create(context.Context, model.Review) (int64, error)
	Count(context.Context, bool) (int, error)
	ListPage(context.Context, int, int, bool) ([]model.Review, error)
	ListPending(context.Context) ([]model.Review, error)
	Approve(context.Context, int64) (bool, error)
	Delete(context.Context, int64) (bool, error)
	GetByID(context.Context, int64) (model.Review, error)
	AttachReply(context.Context, int64, int64, string, string) error
}

// Page is one browser screen: the clamped page of reviews plus the totals the
// header and navigation are rendered from.
type Page struct {
	Reviews    []model.Review
	Number     int
	TotalPages int
	Total      int
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, review model.Review) (int64, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return 0, ErrInvalidRating
	}
	review.Text = strings.TrimSpace(review.Text)
	if review.Text == "" {
		return 0, ErrEmptyText
	}
	review.Approved = false
	return s.repo.Create(ctx, review)
}

// BrowsePage returns the requested page clamped into [1, totalPages].
// Regular users see approved reviews only, admins see everything.
func (s *Service) BrowsePage(ctx context.Context, role enums.Role, page int) (Page, error) {
	approvedOnly := role != enums.RoleAdmin

	total, err := s.repo.Count(ctx, approvedOnly)
	if err != nil {
		return Page{}, err
	}

	totalPages := (total + PerPage - 1) / PerPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	rows, err := s.repo.ListPage(ctx, page, PerPage, approvedOnly)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Reviews:    rows,
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (s *Service) Pending(ctx context.Context) ([]model.Review, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (model.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sqliterepo.ErrReviewNotFound) {
			return model.Review{}, ErrReviewNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (s *Service) Approve(ctx context.Context, id int64) error {
	ok, err := s.repo.Approve(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}
	return nil
}

func (s *Service) Reply(ctx context.Context, id int64, adminID int64, adminUsername, replyText string) error {
	replyText = strings.TrimSpace(replyText)
	if replyText == "" {
		return ErrEmptyReply
	}

	// Callers check existence; AttachReply itself is a no-op on unknown ids.
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.AttachReply(ctx, id, adminID, adminUsername, replyText)
}
