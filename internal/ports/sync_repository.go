package ports

import (
	"context"

	"github.com/trainingops/dealsync/internal/domain"
)

// OrganizationWriter upserts organizations keyed by external id
type OrganizationWriter interface {
	UpsertOrganization(ctx context.Context, org domain.Organization) (uint, error)
}

// PersonWriter upserts persons keyed by external id
type PersonWriter interface {
	UpsertPerson(ctx context.Context, person domain.Person) (uint, error)
}

// DealWriter upserts deals keyed by external id
type DealWriter interface {
	UpsertDeal(ctx context.Context, deal domain.Deal) (uint, error)
}

// AttachmentWriter upserts notes and documents keyed by external id
type AttachmentWriter interface {
	UpsertDocument(ctx context.Context, doc domain.Document) (uint, error)
	UpsertNote(ctx context.Context, note domain.Note) (uint, error)
}

// SessionStore counts and appends the derived sessions of a deal.
// It deliberately offers no update or delete.
type SessionStore interface {
	CountSessions(ctx context.Context, dealID uint) (int, error)
	CreateSessions(ctx context.Context, sessions []domain.Session) error
}

// DealReader reads back what a sync stored locally
type DealReader interface {
	GetDeal(ctx context.Context, externalID int64) (*domain.Deal, error)
	ListSessions(ctx context.Context, dealID uint) ([]domain.Session, error)
}

// SyncRepository is the composite interface
type SyncRepository interface {
	DealReader
	OrganizationWriter
	PersonWriter
	DealWriter
	AttachmentWriter
	SessionStore
	Migrate(ctx context.Context) error
	Close() error
}
