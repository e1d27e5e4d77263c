// Package mapping projects remote CRM payloads onto local records.
// All shape handling is delegated to the resolvers in package remote.
package mapping

import (
	"strconv"
	"strings"
	"time"

	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/domain"
	"github.com/trainingops/dealsync/internal/remote"
)

// ExtractOrganization maps a remote organization onto its local record
func ExtractOrganization(org remote.Organization, keys config.FieldKeys) domain.Organization {
	return domain.Organization{
		Address:    optional(org.Address),
		ExternalID: org.ID,
		Name:       org.Name,
		Phone:      stringField(org.Fields, keys.OrgPhone),
		TaxID:      stringField(org.Fields, keys.OrgTaxID),
	}
}

// ExtractPerson maps a remote person onto its local record.
// orgID is the local id of the already written organization, if any.
func ExtractPerson(p remote.Person, orgID *uint) domain.Person {
	firstName := p.FirstName
	if firstName == "" && p.LastName == "" {
		firstName = p.Name
	}

	person := domain.Person{
		ExternalID:     p.ID,
		FirstName:      optional(firstName),
		LastName:       optional(p.LastName),
		OrganizationID: orgID,
	}
	if email, ok := remote.ResolvePrimaryValue(p.Email); ok {
		person.Email = &email
	}
	if phone, ok := remote.ResolvePrimaryValue(p.Phone); ok {
		person.Phone = &phone
	}
	return person
}

// ExtractDeal maps a remote deal onto its local record.
// Links to organization and person are left to the caller.
func ExtractDeal(d remote.Deal, keys config.FieldKeys) domain.Deal {
	deal := domain.Deal{
		CAES:             boolField(d.Fields, keys.DealCAES),
		Direction:        stringField(d.Fields, keys.DealDirection),
		ExternalID:       d.ID,
		FUNDAE:           boolField(d.Fields, keys.DealFUNDAE),
		HotelNight:       boolField(d.Fields, keys.DealHotelNight),
		OrgExternalID:    d.OrgID,
		PersonExternalID: d.PersonID,
		Site:             stringField(d.Fields, keys.DealSite),
		Status:           optional(DeriveStatus(d)),
		Title:            d.Title,
	}
	if d.PipelineID > 0 {
		pipelineID := d.PipelineID
		deal.PipelineID = &pipelineID
	}
	if hours, ok := remote.ResolveNumber(lookup(d.Fields, keys.DealHours)); ok {
		deal.Hours = &hours
	}
	return deal
}

// DeriveStatus returns the deal status, falling back to the stage id
// since the CRM may omit a human status while always sending a stage.
func DeriveStatus(d remote.Deal) string {
	if status := strings.TrimSpace(d.Status); status != "" {
		return status
	}
	if d.StageID > 0 {
		return strconv.FormatInt(d.StageID, 10)
	}
	return ""
}

// ExtractLineItems normalizes deal products; unreadable quantities count as zero
func ExtractLineItems(products []remote.Product) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(products))
	for _, p := range products {
		quantity, ok := remote.ResolveNumber(p.Quantity)
		if !ok {
			quantity = 0
		}
		items = append(items, domain.LineItem{
			Code:     p.Code,
			Name:     p.Name,
			Quantity: quantity,
		})
	}
	return items
}

// ExtractNote maps a remote note onto its local record
func ExtractNote(n remote.Note, dealID uint, now time.Time) domain.Note {
	created, updated := ResolveTimestamps(n.AddTime, n.UpdateTime, now)
	return domain.Note{
		Comment:    n.Content,
		CreatedAt:  created,
		DealID:     dealID,
		ExternalID: n.ID,
		UpdatedAt:  updated,
	}
}

// ExtractDocument maps a remote file onto its local record
func ExtractDocument(f remote.File, dealID uint, now time.Time) domain.Document {
	created, updated := ResolveTimestamps(f.AddTime, f.UpdateTime, now)
	return domain.Document{
		CreatedAt:  created,
		DealID:     dealID,
		ExternalID: f.ID,
		Name:       f.DisplayName(),
		UpdatedAt:  updated,
		URL:        optional(f.URL),
	}
}

// ResolveTimestamps applies the fallback rule for remote timestamps:
// a missing created time becomes now, a missing updated time becomes created.
func ResolveTimestamps(created, updated *time.Time, now time.Time) (time.Time, time.Time) {
	c := now
	if created != nil {
		c = *created
	}
	u := c
	if updated != nil {
		u = *updated
	}
	return c, u
}

// lookup returns the first configured key present on the payload
func lookup(fields remote.Fields, keys config.StringArray) remote.Value {
	for _, key := range keys {
		if v := fields.Get(key); !v.IsNull() {
			return v
		}
	}
	return remote.Null()
}

func stringField(fields remote.Fields, keys config.StringArray) *string {
	s, ok := remote.ResolveString(lookup(fields, keys))
	if !ok {
		return nil
	}
	return &s
}

func boolField(fields remote.Fields, keys config.StringArray) bool {
	return remote.ResolveBoolean(lookup(fields, keys))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
