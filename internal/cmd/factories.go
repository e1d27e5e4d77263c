package cmd

import (
	"context"

	adapterpipedrive "github.com/trainingops/dealsync/internal/adapters/pipedrive"
	adapterstorage "github.com/trainingops/dealsync/internal/adapters/storage"
	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/ports"
	"github.com/trainingops/dealsync/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	SyncService *services.SyncService

	// Adapters
	Repository ports.SyncRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The CRM client is only built when withCRM is set, so storage-only
// commands work without credentials.
func NewContainer(cfg config.Resolved, withCRM bool) (*Container, error) {
	repo, err := adapterstorage.NewRepository(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := repo.Migrate(context.Background()); err != nil {
		repo.Close()
		return nil, err
	}

	container := &Container{Repository: repo}

	if withCRM {
		crm, err := adapterpipedrive.NewClient(adapterpipedrive.Options{
			AccessToken: cfg.CRMAccessToken,
			APIToken:    cfg.CRMAPIToken,
			BaseURL:     cfg.CRMBaseURL,
		})
		if err != nil {
			repo.Close()
			return nil, err
		}

		container.SyncService = services.NewSyncService(crm, repo, services.SyncOptions{
			FieldKeys:      cfg.Fields,
			TrainingMarker: cfg.TrainingMarker,
		})
	}

	logging.Logger.Debug("Container initialized", "with_crm", withCRM)
	return container, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
