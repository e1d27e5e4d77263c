package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	CRMAccessToken string `name:"crm-access-token" help:"OAuth bearer token for the CRM API" env:"DEALSYNC_CRM_ACCESS_TOKEN"`
	CRMAPIToken    string `name:"crm-api-token" help:"Personal API token for the CRM API" env:"DEALSYNC_CRM_API_TOKEN"`
	CRMBaseURL     string `name:"crm-base-url" help:"CRM REST endpoint" env:"DEALSYNC_CRM_BASE_URL"`
	DatabaseURL    string `name:"database-url" help:"postgres:// URL or SQLite file path" env:"DEALSYNC_DATABASE_URL"`
	TrainingMarker string `help:"Product code substring that marks training lines" env:"DEALSYNC_TRAINING_MARKER"`

	SyncDeal SyncDealCmd `cmd:"sync-deal" help:"Mirror one CRM deal into local storage"`
	Migrate  MigrateCmd  `cmd:"migrate" help:"Create or update the database schema"`
	Show     ShowCmd     `cmd:"show" help:"Show a synced deal and its sessions"`
	Hours    HoursCmd    `cmd:"hours" help:"Infer training duration from labels"`
	Settings SettingsCmd `cmd:"settings" help:"Inspect configuration"`

	// Internal fields (not flags)
	container *Container       `kong:"-"`
	resolved  config.Resolved  `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and resolves configuration
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DEALSYNC_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DEALSYNC_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// GORM's logger reads DEALSYNC_DEBUG
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DEALSYNC_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DEALSYNC_DEBUG_FILE", logFilePath)
		}
	}

	c.resolved = config.Resolve(c.settings, config.Overrides{
		CRMAccessToken: c.CRMAccessToken,
		CRMAPIToken:    c.CRMAPIToken,
		CRMBaseURL:     c.CRMBaseURL,
		DatabaseURL:    c.DatabaseURL,
		TrainingMarker: c.TrainingMarker,
	}, os.LookupEnv)

	return nil
}

// Container builds the dependency container on first use.
// Commands call it only after validating their own input.
func (c *CLI) Container(withCRM bool) (*Container, error) {
	if c.container != nil {
		return c.container, nil
	}

	container, err := NewContainer(c.resolved, withCRM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	c.container = container
	return container, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.container != nil {
		return c.container.Close()
	}
	return nil
}
