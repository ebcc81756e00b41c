package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const snapshotPrefix = "database_backup_"

// Job copies the database file into the backup directory and prunes old
// snapshots, keeping only the newest ones.
type Job struct {
	dbPath string
	dir    string
	keep   int
	now    func() time.Time
	logger *slog.Logger
}

func New(dbPath, dir string, keep int, logger *slog.Logger) *Job {
	if keep <= 0 {
		keep = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Job{
		dbPath: dbPath,
		dir:    dir,
		keep:   keep,
		now:    time.Now,
		logger: logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	if _, err := os.Stat(j.dbPath); err != nil {
		return fmt.Errorf("stat database file: %w", err)
	}

	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := snapshotPrefix + j.now().UTC().Format("20060102_150405") + ".db"
	target := filepath.Join(j.dir, name)
	if err := copyFile(j.dbPath, target); err != nil {
		return fmt.Errorf("snapshot database: %w", err)
	}
	j.logger.Info("database snapshot created", "path", target)

	if err := j.prune(); err != nil {
		j.logger.Warn("prune old snapshots", "error", err)
	}

	return ctx.Err()
}

func (j *Job) prune() error {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		return err
	}

	type snapshot struct {
		path    string
		modTime time.Time
	}

	snapshots := make([]snapshot, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, snapshot{
			path:    filepath.Join(j.dir, name),
			modTime: info.ModTime(),
		})
	}

	if len(snapshots) <= j.keep {
		return nil
	}

	sort.Slice(snapshots, func(a, b int) bool {
		return snapshots[a].modTime.After(snapshots[b].modTime)
	})

	for _, stale := range snapshots[j.keep:] {
		if err := os.Remove(stale.path); err != nil {
			j.logger.Warn("remove stale snapshot", "error", err, "path", stale.path)
			continue
		}
		j.logger.Info("stale snapshot removed", "path", stale.path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
