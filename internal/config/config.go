package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken           string
	OwnerID            int64
	AdminIDs           []int64
	LogLevel           string
	PollTimeoutSeconds int
	DatabasePath       string
	BackupDir          string
	BackupIntervalHrs  int
	BackupKeep         int
}

func Load() (Config, error) {
	// .env is optional, real env vars win either way.
	_ = godotenv.Load()

	ownerID, err := getInt64("OWNER_ID", 0)
	if err != nil {
		return Config{}, err
	}

	adminIDs, err := getInt64List("ADMIN_IDS")
	if err != nil {
		return Config{}, err
	}

	pollTimeout, err := getInt("POLL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	backupInterval, err := getInt("BACKUP_INTERVAL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}

	backupKeep, err := getInt("BACKUP_KEEP", 10)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		OwnerID:            ownerID,
		AdminIDs:           adminIDs,
		LogLevel:           getString("LOG_LEVEL", "info"),
		PollTimeoutSeconds: pollTimeout,
		DatabasePath:       getString("DATABASE_PATH", "data/reviews.db"),
		BackupDir:          getString("BACKUP_DIR", "backups"),
		BackupIntervalHrs:  backupInterval,
		BackupKeep:         backupKeep,
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}
	if cfg.BackupIntervalHrs <= 0 {
		cfg.BackupIntervalHrs = 24
	}
	if cfg.BackupKeep <= 0 {
		cfg.BackupKeep = 10
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt64(key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getInt64List(key string) ([]int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return []int64{}, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s entry %q: %w", key, part, err)
		}
		values = append(values, value)
	}
	return values, nil
}
