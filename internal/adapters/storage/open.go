package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trainingops/dealsync/internal/logging"
)

func gormConfig(backend, target string) *gorm.Config {
	return &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newStoreLogger(backend, target),
	}
}

// IsPostgresURL reports whether databaseURL selects the Postgres driver
func IsPostgresURL(databaseURL string) bool {
	lower := strings.ToLower(strings.TrimSpace(databaseURL))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// NewRepository opens the store named by databaseURL.
// postgres:// and postgresql:// URLs use Postgres; anything else is a SQLite file path.
func NewRepository(databaseURL string) (*Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, errors.New("database url is empty")
	}
	if IsPostgresURL(databaseURL) {
		return NewPostgresRepository(databaseURL)
	}
	return NewSQLiteRepository(databaseURL)
}

// NewPostgresRepository connects to a Postgres database through pgx
func NewPostgresRepository(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig("postgres", redactedHost(dsn)))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logging.Logger.Info("Opened postgres store", "host", redactedHost(dsn))
	return &Repository{db: db}, nil
}

// NewSQLiteRepository opens (creating if needed) a SQLite database file
func NewSQLiteRepository(dbPath string) (*Repository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=on", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig("sqlite", filepath.Base(dbPath)))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One writer at a time; concurrent note and document batches queue here
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Info("Opened sqlite store", "path", dbPath)
	return &Repository{db: db}, nil
}

// redactedHost returns only the host part of a connection URL
func redactedHost(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return ""
	}
	return u.Host
}
