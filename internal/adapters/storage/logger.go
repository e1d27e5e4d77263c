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

	"github.com/trainingops/dealsync/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// storeLogger routes GORM output to the dealsync logger tagged with the
// backend, the redacted target and the issuing sync run
type storeLogger struct {
	backend string
	level   logger.LogLevel
	target  string
}

func newStoreLogger(backend, target string) logger.Interface {
	level := logger.Error
	if os.Getenv("DEALSYNC_DEBUG") == "1" {
		level = logger.Info
	}
	return &storeLogger{backend: backend, level: level, target: target}
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *storeLogger) with(ctx context.Context) *slog.Logger {
	log := logging.Logger.With("store", l.backend, "target", l.target)
	if runID := logging.RunID(ctx); runID != "" {
		log = log.With("run_id", runID)
	}
	return log
}

func (l *storeLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.with(ctx).Info(fmt.Sprintf(msg, data...))
	}
}

func (l *storeLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.with(ctx).Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *storeLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.with(ctx).Error(fmt.Sprintf(msg, data...))
	}
}

// Trace reports failed statements at every level above Silent; slow and
// routine statements only in debug mode. Missing rows are not failures.
func (l *storeLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level == logger.Silent {
		return
	}

	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	if !failed && l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", sql}
	if rows >= 0 {
		attrs = append(attrs, "rows", rows)
	}

	log := l.with(ctx)
	switch {
	case failed && isTransient(err):
		log.Warn("Store busy, statement will be retried", append(attrs, "error", err)...)
	case failed:
		log.Error("Store statement failed", append(attrs, "error", err)...)
	case elapsed > slowQueryThreshold:
		log.Warn("Slow store statement", attrs...)
	default:
		log.Debug("Store statement", attrs...)
	}
}
