package ports

import (
	"context"

	"github.com/trainingops/dealsync/internal/remote"
)

// CRMClient fetches raw entities from the source-of-truth CRM.
// A missing entity is reported with domain.ErrRemoteNotFound.
type CRMClient interface {
	GetDeal(ctx context.Context, id int64) (*remote.Deal, error)
	GetDealFiles(ctx context.Context, dealID int64) ([]remote.File, error)
	GetDealNotes(ctx context.Context, dealID int64) ([]remote.Note, error)
	GetDealProducts(ctx context.Context, dealID int64) ([]remote.Product, error)
	GetOrganization(ctx context.Context, id int64) (*remote.Organization, error)
	GetPerson(ctx context.Context, id int64) (*remote.Person, error)
}
