package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trainingops/dealsync/internal/domain"
	"github.com/trainingops/dealsync/internal/ports"
)

const maxRetries = 3

// Repository implements ports.SyncRepository using GORM
type Repository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SyncRepository = (*Repository)(nil)

// Migrate creates or updates every table, index and foreign key
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertOrganization implements OrganizationWriter.UpsertOrganization
func (r *Repository) UpsertOrganization(ctx context.Context, org domain.Organization) (uint, error) {
	id, err := upsertByExternalID(ctx, r.db, org.ExternalID, func() *OrganizationModel {
		m := domainToOrganizationModel(org)
		return &m
	}, []string{"name", "tax_id", "phone", "address", "updated_at"})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert organization %d: %w", org.ExternalID, err)
	}
	return id, nil
}

// UpsertPerson implements PersonWriter.UpsertPerson
func (r *Repository) UpsertPerson(ctx context.Context, person domain.Person) (uint, error) {
	id, err := upsertByExternalID(ctx, r.db, person.ExternalID, func() *PersonModel {
		m := domainToPersonModel(person)
		return &m
	}, []string{"first_name", "last_name", "email", "phone", "organization_id", "updated_at"})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert person %d: %w", person.ExternalID, err)
	}
	return id, nil
}

// UpsertDeal implements DealWriter.UpsertDeal
func (r *Repository) UpsertDeal(ctx context.Context, deal domain.Deal) (uint, error) {
	id, err := upsertByExternalID(ctx, r.db, deal.ExternalID, func() *DealModel {
		m := domainToDealModel(deal)
		return &m
	}, []string{
		"title", "organization_id", "person_id", "pipeline_id", "status", "hours",
		"site", "direction", "caes", "fundae", "hotel_night", "training",
		"prod_extra", "products", "updated_at",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert deal %d: %w", deal.ExternalID, err)
	}
	return id, nil
}

// UpsertNote implements AttachmentWriter.UpsertNote
func (r *Repository) UpsertNote(ctx context.Context, note domain.Note) (uint, error) {
	id, err := upsertByExternalID(ctx, r.db, note.ExternalID, func() *NoteModel {
		m := domainToNoteModel(note)
		return &m
	}, []string{"deal_id", "comment", "created_at", "updated_at"})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert note %d: %w", note.ExternalID, err)
	}
	return id, nil
}

// UpsertDocument implements AttachmentWriter.UpsertDocument
func (r *Repository) UpsertDocument(ctx context.Context, doc domain.Document) (uint, error) {
	id, err := upsertByExternalID(ctx, r.db, doc.ExternalID, func() *DocumentModel {
		m := domainToDocumentModel(doc)
		return &m
	}, []string{"deal_id", "name", "url", "created_at", "updated_at"})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert document %d: %w", doc.ExternalID, err)
	}
	return id, nil
}

// CountSessions implements SessionStore.CountSessions
func (r *Repository) CountSessions(ctx context.Context, dealID uint) (int, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&SessionModel{}).Where("deal_id = ?", dealID).Count(&count).Error
	}, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions for deal %d: %w", dealID, err)
	}
	return int(count), nil
}

// CreateSessions implements SessionStore.CreateSessions.
// The batch is inserted in one transaction.
func (r *Repository) CreateSessions(ctx context.Context, sessions []domain.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			models := make([]SessionModel, 0, len(sessions))
			for _, s := range sessions {
				models = append(models, domainToSessionModel(s))
			}
			if err := tx.Omit(clause.Associations).Create(&models).Error; err != nil {
				return fmt.Errorf("failed to create sessions: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// GetDeal implements DealReader.GetDeal
func (r *Repository) GetDeal(ctx context.Context, externalID int64) (*domain.Deal, error) {
	var model DealModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("deal %d: %w", externalID, domain.ErrDealNotFound)
		}
		return nil, fmt.Errorf("failed to get deal %d: %w", externalID, err)
	}

	deal := dealModelToDomain(model)
	return &deal, nil
}

// ListSessions implements DealReader.ListSessions
func (r *Repository) ListSessions(ctx context.Context, dealID uint) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("deal_id = ?", dealID).Order("id ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for deal %d: %w", dealID, err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, sessionModelToDomain(m))
	}
	return sessions, nil
}

// upsertByExternalID inserts the model or, when its external id already
// exists, overwrites the given columns. The local id is always read back
// by external id.
func upsertByExternalID[M any](ctx context.Context, db *gorm.DB, externalID int64, build func() *M, columns []string) (uint, error) {
	var id uint
	err := withRetry(func() error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := build()
			err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns(columns),
			}).Create(model).Error
			if err != nil {
				return err
			}

			var row struct{ ID uint }
			if err := tx.Model(new(M)).Select("id").Where("external_id = ?", externalID).Take(&row).Error; err != nil {
				return fmt.Errorf("failed to read back local id: %w", err)
			}
			id = row.ID
			return nil
		})
	}, maxRetries)
	return id, err
}

// withRetry retries operations on transient lock conflicts with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}

// isTransient reports SQLite busy/locked and Postgres serialization/deadlock errors
func isTransient(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	return false
}
