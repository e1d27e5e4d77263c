package storage

import (
	"gorm.io/datatypes"

	"github.com/trainingops/dealsync/internal/domain"
)

// domainToOrganizationModel converts a domain.Organization to OrganizationModel (GORM)
func domainToOrganizationModel(o domain.Organization) OrganizationModel {
	return OrganizationModel{
		Address:    o.Address,
		ExternalID: o.ExternalID,
		Name:       o.Name,
		Phone:      o.Phone,
		TaxID:      o.TaxID,
	}
}

// domainToPersonModel converts a domain.Person to PersonModel (GORM)
func domainToPersonModel(p domain.Person) PersonModel {
	return PersonModel{
		Email:          p.Email,
		ExternalID:     p.ExternalID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		OrganizationID: p.OrganizationID,
		Phone:          p.Phone,
	}
}

// domainToDealModel converts a domain.Deal to DealModel (GORM)
func domainToDealModel(d domain.Deal) DealModel {
	products := d.Products
	if products == nil {
		products = []domain.LineItem{}
	}
	return DealModel{
		CAES:           d.CAES,
		Direction:      d.Direction,
		ExternalID:     d.ExternalID,
		FUNDAE:         d.FUNDAE,
		HotelNight:     d.HotelNight,
		Hours:          d.Hours,
		OrganizationID: d.OrganizationID,
		PersonID:       d.PersonID,
		PipelineID:     d.PipelineID,
		ProdExtra:      d.ProdExtra,
		Products:       datatypes.NewJSONSlice(products),
		Site:           d.Site,
		Status:         d.Status,
		Title:          d.Title,
		Training:       d.Training,
	}
}

// dealModelToDomain converts a DealModel (GORM) to domain.Deal
func dealModelToDomain(m DealModel) domain.Deal {
	return domain.Deal{
		CAES:           m.CAES,
		CreatedAt:      m.CreatedAt,
		Direction:      m.Direction,
		ExternalID:     m.ExternalID,
		FUNDAE:         m.FUNDAE,
		HotelNight:     m.HotelNight,
		Hours:          m.Hours,
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		PersonID:       m.PersonID,
		PipelineID:     m.PipelineID,
		ProdExtra:      m.ProdExtra,
		Products:       []domain.LineItem(m.Products),
		Site:           m.Site,
		Status:         m.Status,
		Title:          m.Title,
		Training:       m.Training,
		UpdatedAt:      m.UpdatedAt,
	}
}

// domainToNoteModel converts a domain.Note to NoteModel (GORM)
func domainToNoteModel(n domain.Note) NoteModel {
	return NoteModel{
		Comment:    n.Comment,
		CreatedAt:  n.CreatedAt,
		DealID:     n.DealID,
		ExternalID: n.ExternalID,
		UpdatedAt:  n.UpdatedAt,
	}
}

// domainToDocumentModel converts a domain.Document to DocumentModel (GORM)
func domainToDocumentModel(d domain.Document) DocumentModel {
	return DocumentModel{
		CreatedAt:  d.CreatedAt,
		DealID:     d.DealID,
		ExternalID: d.ExternalID,
		Name:       d.Name,
		UpdatedAt:  d.UpdatedAt,
		URL:        d.URL,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		Address: s.Address,
		Comment: s.Comment,
		DealID:  s.DealID,
		EndAt:   s.EndAt,
		Site:    s.Site,
		StartAt: s.StartAt,
		Status:  string(s.Status),
	}
}

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		Address:   m.Address,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		DealID:    m.DealID,
		EndAt:     m.EndAt,
		ID:        m.ID,
		Site:      m.Site,
		StartAt:   m.StartAt,
		Status:    domain.SessionStatus(m.Status),
		UpdatedAt: m.UpdatedAt,
	}
}
