package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trainingops/dealsync/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logging.Logger
	logging.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { logging.Logger = previous })
	return &buf
}

func TestStoreLogger_TagsRunAndTarget(t *testing.T) {
	buf := captureLogs(t)
	l := newStoreLogger("postgres", "db.internal:5432").LogMode(logger.Info)
	ctx := logging.WithRunID(context.Background(), "run-42")

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-42"`)
	assert.Contains(t, out, `"store":"postgres"`)
	assert.Contains(t, out, `"target":"db.internal:5432"`)
	assert.Contains(t, out, `"sql":"SELECT 1"`)
}

func TestStoreLogger_DefaultLevelOnlyReportsFailures(t *testing.T) {
	t.Setenv("DEALSYNC_DEBUG", "")
	buf := captureLogs(t)
	l := newStoreLogger("sqlite", "dealsync.db")

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "INSERT", -1 }, errors.New("boom"))
	assert.Contains(t, buf.String(), "Store statement failed")
	assert.NotContains(t, buf.String(), `"rows"`)
}
