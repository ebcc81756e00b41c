package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arsLnD/reviu/internal/domain/model"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewsRepo struct {
	db *sql.DB
}

func NewReviewsRepo(db *sql.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

func (r *ReviewsRepo) Create(ctx context.Context, review model.Review) (int64, error) {
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (user_id, username, full_name, rating, text, photo_file_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		review.UserID,
		review.Username,
		review.FullName,
		review.Rating,
		review.Text,
		review.PhotoFileID,
		createdAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("review insert id: %w", err)
	}
	return id, nil
}

func (r *ReviewsRepo) Count(ctx context.Context, approvedOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM reviews`
	if approvedOnly {
		query += ` WHERE approved = 1`
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (r *ReviewsRepo) ListPage(ctx context.Context, page, perPage int, approvedOnly bool) ([]model.Review, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		return nil, fmt.Errorf("invalid page size %d", perPage)
	}
	offset := (page - 1) * perPage

	query := `
		SELECT id, user_id, username, full_name, rating, text, photo_file_id,
		       created_at, approved, admin_reply, admin_id, admin_username, admin_reply_at
		FROM reviews`
	if approvedOnly {
		query += `
		WHERE approved = 1`
	}
	query += `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews page: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *ReviewsRepo) ListPending(ctx context.Context) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, username, full_name, rating, text, photo_file_id,
		       created_at, approved, admin_reply, admin_id, admin_username, admin_reply_at
		FROM reviews
		WHERE approved = 0
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pending reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *ReviewsRepo) Approve(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET approved = 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("approve review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for approve review: %w", err)
	}
	return affected > 0, nil
}

func (r *ReviewsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for delete review: %w", err)
	}
	return affected > 0, nil
}

func (r *ReviewsRepo) GetByID(ctx context.Context, id int64) (model.Review, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, username, full_name, rating, text, photo_file_id,
		       created_at, approved, admin_reply, admin_id, admin_username, admin_reply_at
		FROM reviews
		WHERE id = ?
		LIMIT 1
	`, id)

	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, ErrReviewNotFound
		}
		return model.Review{}, fmt.Errorf("get review by id: %w", err)
	}
	return review, nil
}

func (r *ReviewsRepo) AttachReply(ctx context.Context, id int64, adminID int64, adminUsername, replyText string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET admin_reply = ?,
		    admin_id = ?,
		    admin_username = ?,
		    admin_reply_at = ?
		WHERE id = ?
	`, replyText, adminID, adminUsername, time.Now().UTC().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("attach admin reply: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (model.Review, error) {
	var review model.Review
	var createdAt int64
	var approved int
	var replyAt sql.NullInt64

	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.Username,
		&review.FullName,
		&review.Rating,
		&review.Text,
		&review.PhotoFileID,
		&createdAt,
		&approved,
		&review.AdminReply,
		&review.AdminID,
		&review.AdminUsername,
		&replyAt,
	)
	if err != nil {
		return model.Review{}, err
	}

	review.CreatedAt = time.Unix(0, createdAt).UTC()
	review.Approved = approved != 0
	if replyAt.Valid {
		at := time.Unix(0, replyAt.Int64).UTC()
		review.AdminReplyAt = &at
	}
	return review, nil
}

func collectReviews(rows *sql.Rows) ([]model.Review, error) {
	reviews := []model.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
