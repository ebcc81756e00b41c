package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arsLnD/reviu/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Upsert(ctx context.Context, user model.BotUser) error {
	now := user.LastSeenAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, username, full_name, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			full_name = excluded.full_name,
			last_seen = excluded.last_seen
	`, user.TgID, user.Username, user.FullName, now.UnixNano(), now.UnixNano())
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UsersRepo) GetByTgID(ctx context.Context, tgID int64) (model.BotUser, error) {
	var user model.BotUser
	var firstSeen, lastSeen int64

	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, username, full_name, first_seen, last_seen
		FROM users
		WHERE user_id = ?
		LIMIT 1
	`, tgID).Scan(&user.TgID, &user.Username, &user.FullName, &firstSeen, &lastSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BotUser{}, ErrUserNotFound
		}
		return model.BotUser{}, fmt.Errorf("get user by tg id: %w", err)
	}

	user.FirstSeenAt = time.Unix(0, firstSeen).UTC()
	user.LastSeenAt = time.Unix(0, lastSeen).UTC()
	return user, nil
}
