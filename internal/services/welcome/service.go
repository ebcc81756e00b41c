package welcome

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
)

var ErrEmptyText = errors.New("welcome text is empty")

type Repo interface {
	Get(context.Context) (model.WelcomePost, error)
	Update(context.Context, model.WelcomePost) error
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (model.WelcomePost, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, text string, kind enums.MediaKind, fileID string, updatedBy int64) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if kind == enums.MediaKindNone {
		fileID = ""
	}

	return s.repo.Update(ctx, model.WelcomePost{
		Text:        text,
		MediaKind:   kind,
		MediaFileID: fileID,
		UpdatedAt:   time.Now().UTC(),
		UpdatedBy:   updatedBy,
	})
}
