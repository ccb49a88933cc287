package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// SQLiteRepository implements ports.UsageRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.UsageRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the usage history database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets a serve session read while another writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&UsageEventModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate usage schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Usage database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements UsageRecorder.Record
func (r *SQLiteRepository) Record(ctx context.Context, events []ports.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]UsageEventModel, 0, len(events))
	for _, e := range events {
		models = append(models, usageEventToModel(e))
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&models).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to insert usage events: %w", err)
	}
	return nil
}

// TopUsed implements UsageReader.TopUsed.
// Bindings are ordered by use count, then by most recent use.
func (r *SQLiteRepository) TopUsed(ctx context.Context, limit int) ([]ports.UsageStat, error) {
	var rows []usageStatRow

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Model(&UsageEventModel{}).
			Select("combo, action, COUNT(*) AS count, MAX(used_at) AS last_used").
			Group("combo, action").
			Order("count DESC, last_used DESC, combo ASC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage stats: %w", err)
	}

	stats := make([]ports.UsageStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, usageStatRowToPort(row))
	}
	return stats, nil
}

// withRetry runs fn again while SQLite reports the database busy or locked,
// backing off a little longer each attempt
func withRetry(fn func() error, attempts int) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !isBusy(err) {
			return err
		}
		time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
	}
	return fmt.Errorf("database still busy after %d attempts: %w", attempts, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
