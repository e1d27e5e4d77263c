package cmd

import (
	"fmt"

	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/theme"
)

// MigrateCmd provisions the database schema
type MigrateCmd struct{}

// Run executes the migrate command
func (m *MigrateCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing migrate command")

	// The container migrates on open
	if _, err := cli.Container(false); err != nil {
		return err
	}

	fmt.Println(theme.SuccessStyle.Render("✓ Schema is up to date"))
	return nil
}
