package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arsLnD/reviu/internal/domain/enums"
	"github.com/arsLnD/reviu/internal/domain/model"
)

type WelcomeRepo struct {
	db *sql.DB
}

func NewWelcomeRepo(db *sql.DB) *WelcomeRepo {
	return &WelcomeRepo{db: db}
}

func (r *WelcomeRepo) Get(ctx context.Context) (model.WelcomePost, error) {
	var post model.WelcomePost
	var mediaKind string
	var updatedAt int64

	err := r.db.QueryRowContext(ctx, `
		SELECT text, media_kind, media_file_id, updated_at, updated_by
		FROM welcome_post
		WHERE id = 1
		LIMIT 1
	`).Scan(&post.Text, &mediaKind, &post.MediaFileID, &updatedAt, &post.UpdatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WelcomePost{Text: DefaultWelcomeText}, nil
		}
		return model.WelcomePost{}, fmt.Errorf("get welcome post: %w", err)
	}

	post.MediaKind = enums.MediaKind(mediaKind)
	post.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return post, nil
}

func (r *WelcomeRepo) Update(ctx context.Context, post model.WelcomePost) error {
	updatedAt := post.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE welcome_post
		SET text = ?, media_kind = ?, media_file_id = ?, updated_at = ?, updated_by = ?
		WHERE id = 1
	`, post.Text, string(post.MediaKind), post.MediaFileID, updatedAt.UnixNano(), post.UpdatedBy)
	if err != nil {
		return fmt.Errorf("update welcome post: %w", err)
	}
	return nil
}
