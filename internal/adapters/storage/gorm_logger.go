package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hypr-showkey/showkey/internal/logging"
)

// slowQuery is the duration above which a statement is logged as a warning
const slowQuery = 200 * time.Millisecond

// gormLogger routes GORM output into logging.Logger
type gormLogger struct {
	level logger.LogLevel
}

// newGormLogger traces every statement when debug logging is on
func newGormLogger() logger.Interface {
	level := logger.Silent
	if os.Getenv(logging.EnvDebug) == "1" {
		level = logger.Info
	}
	return &gormLogger{level: level}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, data)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, data)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, data)
}

func (l *gormLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, data []any) {
	if l.level >= threshold {
		logging.Logger.Log(ctx, level, fmt.Sprintf(msg, data...), "component", "gorm")
	}
}

// Trace logs one statement: failures as errors, slow ones as warnings
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", sql, "rows", rows}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.ErrorContext(ctx, "Usage query failed", append(attrs, "error", err)...)
	case elapsed > slowQuery:
		logging.Logger.WarnContext(ctx, "Slow usage query", attrs...)
	default:
		logging.Logger.DebugContext(ctx, "Usage query", attrs...)
	}
}
