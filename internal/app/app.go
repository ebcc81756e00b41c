package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/arsLnD/reviu/internal/config"
	"github.com/arsLnD/reviu/internal/infra/telegram"
	"github.com/arsLnD/reviu/internal/jobs/backup"
	sqliterepo "github.com/arsLnD/reviu/internal/repo/sqlite"
	"github.com/arsLnD/reviu/internal/services/access"
	reviewssvc "github.com/arsLnD/reviu/internal/services/reviews"
	welcomesvc "github.com/arsLnD/reviu/internal/services/welcome"
	"github.com/arsLnD/reviu/internal/session"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	db     *sql.DB
	tg     *telegram.Client

	accessService  *access.Service
	reviewsService *reviewssvc.Service
	welcomeService *welcomesvc.Service

	sessions  *session.Manager
	backupJob *backup.Job
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqliterepo.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	usersRepo := sqliterepo.NewUsersRepo(db)
	reviewsRepo := sqliterepo.NewReviewsRepo(db)
	welcomeRepo := sqliterepo.NewWelcomeRepo(db)

	app := &App{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		accessService:  access.NewService(cfg.OwnerID, cfg.AdminIDs, usersRepo),
		reviewsService: reviewssvc.NewService(reviewsRepo),
		welcomeService: welcomesvc.NewService(welcomeRepo),
		sessions:       session.NewManager(),
		backupJob:      backup.New(cfg.DatabasePath, cfg.BackupDir, cfg.BackupKeep, logger),
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	go a.runBackupLoop(ctx)

	return a.tg.Start(ctx)
}

// runBackupLoop snapshots the database on a fixed interval. A failed cycle is
// logged and the next tick proceeds as usual.
func (a *App) runBackupLoop(ctx context.Context) {
	interval := time.Duration(a.cfg.BackupIntervalHrs) * time.Hour

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.backupJob.Run(ctx); err != nil {
				a.logger.Warn("database backup cycle failed", "error", err)
			}
		}
	}
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close database", "error", err)
		}
	}
}
