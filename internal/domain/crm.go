package domain

import "time"

// Organization is the local copy of a remote organization
type Organization struct {
	Address    *string
	CreatedAt  time.Time
	ExternalID int64
	ID         uint
	Name       string
	Phone      *string
	TaxID      *string
	UpdatedAt  time.Time
}

// Person is the local copy of a remote contact person
type Person struct {
	CreatedAt      time.Time
	Email          *string
	ExternalID     int64
	FirstName      *string
	ID             uint
	LastName       *string
	OrganizationID *uint
	Phone          *string
	UpdatedAt      time.Time
}

// Deal is the local copy of a remote deal.
// OrgExternalID and PersonExternalID are only used while syncing; the
// persisted links are OrganizationID and PersonID.
type Deal struct {
	CAES             bool
	CreatedAt        time.Time
	Direction        *string
	ExternalID       int64
	FUNDAE           bool
	HotelNight       bool
	Hours            *float64
	ID               uint
	OrgExternalID    int64
	OrganizationID   *uint
	PersonExternalID int64
	PersonID         *uint
	PipelineID       *int64
	ProdExtra        string
	Products         []LineItem
	Site             *string
	Status           *string
	Title            string
	Training         string
	UpdatedAt        time.Time
}

// Note is a free-text comment attached to a deal
type Note struct {
	Comment    string
	CreatedAt  time.Time
	DealID     uint
	ExternalID int64
	ID         uint
	UpdatedAt  time.Time
}

// Document is a file attached to a deal
type Document struct {
	CreatedAt  time.Time
	DealID     uint
	ExternalID int64
	ID         uint
	Name       string
	UpdatedAt  time.Time
	URL        *string
}
