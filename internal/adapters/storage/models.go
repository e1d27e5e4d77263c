package storage

import (
	"time"

	"gorm.io/datatypes"

	"github.com/trainingops/dealsync/internal/domain"
)

// OrganizationModel is the GORM model for organizations table
type OrganizationModel struct {
	Address    *string `gorm:"default:null"`
	CreatedAt  time.Time
	ExternalID int64   `gorm:"not null;uniqueIndex:idx_organizations_external_id"`
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"not null;default:''"`
	Phone      *string `gorm:"default:null"`
	TaxID      *string `gorm:"default:null"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (OrganizationModel) TableName() string { return "organizations" }

// PersonModel is the GORM model for persons table
type PersonModel struct {
	CreatedAt      time.Time
	Email          *string            `gorm:"default:null"`
	ExternalID     int64              `gorm:"not null;uniqueIndex:idx_persons_external_id"`
	FirstName      *string            `gorm:"default:null"`
	ID             uint               `gorm:"primaryKey"`
	LastName       *string            `gorm:"default:null"`
	Organization   *OrganizationModel `gorm:"constraint:OnDelete:SET NULL"`
	OrganizationID *uint              `gorm:"index:idx_persons_organization_id;default:null"`
	Phone          *string            `gorm:"default:null"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (PersonModel) TableName() string { return "persons" }

// DealModel is the GORM model for deals table
type DealModel struct {
	CAES           bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	Direction      *string                             `gorm:"default:null"`
	ExternalID     int64                               `gorm:"not null;uniqueIndex:idx_deals_external_id"`
	FUNDAE         bool                                `gorm:"column:fundae;not null;default:false"`
	HotelNight     bool                                `gorm:"not null;default:false"`
	Hours          *float64                            `gorm:"default:null"`
	ID             uint                                `gorm:"primaryKey"`
	Organization   *OrganizationModel                  `gorm:"constraint:OnDelete:SET NULL"`
	OrganizationID *uint                               `gorm:"index:idx_deals_organization_id;default:null"`
	Person         *PersonModel                        `gorm:"constraint:OnDelete:SET NULL"`
	PersonID       *uint                               `gorm:"index:idx_deals_person_id;default:null"`
	PipelineID     *int64                              `gorm:"default:null"`
	ProdExtra      string                              `gorm:"not null;default:''"`
	Products       datatypes.JSONSlice[domain.LineItem] `gorm:"not null"`
	Site           *string                             `gorm:"default:null"`
	Status         *string                             `gorm:"default:null"`
	Title          string                              `gorm:"not null;default:''"`
	Training       string                              `gorm:"not null;default:''"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (DealModel) TableName() string { return "deals" }

// NoteModel is the GORM model for notes table
type NoteModel struct {
	Comment    string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	Deal       *DealModel `gorm:"constraint:OnDelete:CASCADE"`
	DealID     uint       `gorm:"not null;index:idx_notes_deal_id"`
	ExternalID int64      `gorm:"not null;uniqueIndex:idx_notes_external_id"`
	ID         uint       `gorm:"primaryKey"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string { return "notes" }

// DocumentModel is the GORM model for documents table
type DocumentModel struct {
	CreatedAt  time.Time
	Deal       *DealModel `gorm:"constraint:OnDelete:CASCADE"`
	DealID     uint       `gorm:"not null;index:idx_documents_deal_id"`
	ExternalID int64      `gorm:"not null;uniqueIndex:idx_documents_external_id"`
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"not null;default:''"`
	UpdatedAt  time.Time
	URL        *string `gorm:"column:url;default:null"`
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string { return "documents" }

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	Address   *string `gorm:"default:null"`
	Comment   string  `gorm:"not null;default:''"`
	CreatedAt time.Time
	Deal      *DealModel `gorm:"constraint:OnDelete:CASCADE"`
	DealID    uint       `gorm:"not null;index:idx_sessions_deal_id"`
	EndAt     *time.Time `gorm:"default:null"`
	ID        uint       `gorm:"primaryKey"`
	Site      *string    `gorm:"default:null"`
	StartAt   *time.Time `gorm:"default:null"`
	Status    string     `gorm:"not null;default:'pending'"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// allModels lists the models in dependency order for migrations
func allModels() []any {
	return []any{
		&OrganizationModel{},
		&PersonModel{},
		&DealModel{},
		&NoteModel{},
		&DocumentModel{},
		&SessionModel{},
	}
}
