package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultWelcomeText = "Привет! 👋\n\n" +
	"Добро пожаловать в нашего Telegram-бота отзывов. " +
	"Нажмите на кнопку ниже, чтобы оставить отзыв или посмотреть мнения других пользователей."

func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single shared handle: every statement is individually atomic and
	// serialized on the one connection.
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			username TEXT NOT NULL DEFAULT '',
			full_name TEXT NOT NULL DEFAULT '',
			first_seen INTEGER NOT NULL,
			last_seen INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			full_name TEXT NOT NULL DEFAULT '',
			rating INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
			text TEXT NOT NULL,
			photo_file_id TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			approved INTEGER NOT NULL DEFAULT 0,
			admin_reply TEXT NOT NULL DEFAULT '',
			admin_id INTEGER NOT NULL DEFAULT 0,
			admin_username TEXT NOT NULL DEFAULT '',
			admin_reply_at INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS welcome_post (
			id INTEGER PRIMARY KEY CHECK(id = 1),
			text TEXT NOT NULL,
			media_kind TEXT NOT NULL DEFAULT '',
			media_file_id TEXT NOT NULL DEFAULT '',
			updated_at INTEGER NOT NULL,
			updated_by INTEGER NOT NULL DEFAULT 0
		)`,
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	_, err := db.ExecContext(ctx, `
		INSERT OR IGNORE INTO welcome_post (id, text, updated_at)
		VALUES (1, ?, ?)
	`, DefaultWelcomeText, time.Now().UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("seed welcome post: %w", err)
	}

	return nil
}
