package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainingops/dealsync/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "dealsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func strPtr(s string) *string { return &s }

func TestIsPostgresURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"postgres://user:pw@db:5432/crm", true},
		{"PostgreSQL://db/crm", true},
		{"/var/lib/dealsync/dealsync.db", false},
		{"~/dealsync.db", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPostgresURL(tt.url))
		})
	}
}

func TestNewRepository_EmptyURL(t *testing.T) {
	_, err := NewRepository("  ")
	assert.Error(t, err)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Migrate(context.Background()))

	for _, table := range []string{"organizations", "persons", "deals", "notes", "documents", "sessions"} {
		assert.True(t, repo.db.Migrator().HasTable(table), table)
	}
}

func TestUpsertOrganization_SameExternalIDKeepsLocalID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.UpsertOrganization(ctx, domain.Organization{ExternalID: 55, Name: "Acme", Phone: strPtr("910000000")})
	require.NoError(t, err)

	second, err := repo.UpsertOrganization(ctx, domain.Organization{ExternalID: 55, Name: "Acme SL"})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	var model OrganizationModel
	require.NoError(t, repo.db.First(&model, first).Error)
	assert.Equal(t, "Acme SL", model.Name)
	assert.Nil(t, model.Phone, "unset optionals are written as NULL")

	var count int64
	repo.db.Model(&OrganizationModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertDeal_RoundTripsProductsAndLinks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	orgID, err := repo.UpsertOrganization(ctx, domain.Organization{ExternalID: 1, Name: "Org"})
	require.NoError(t, err)
	personID, err := repo.UpsertPerson(ctx, domain.Person{ExternalID: 2, FirstName: strPtr("Ana"), OrganizationID: &orgID})
	require.NoError(t, err)

	hours := 8.0
	deal := domain.Deal{
		CAES:           true,
		ExternalID:     1001,
		Hours:          &hours,
		OrganizationID: &orgID,
		PersonID:       &personID,
		Products: []domain.LineItem{
			{Category: domain.CategoryTraining, Code: "form-alt", Name: "Altura", Quantity: 2},
		},
		Site:     strPtr("Getafe"),
		Title:    "Brigada",
		Training: "Altura",
	}

	dealID, err := repo.UpsertDeal(ctx, deal)
	require.NoError(t, err)

	got, err := repo.GetDeal(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, dealID, got.ID)
	assert.Equal(t, &orgID, got.OrganizationID)
	assert.Equal(t, &personID, got.PersonID)
	assert.Equal(t, deal.Products, got.Products)
	assert.True(t, got.CAES)
	assert.InDelta(t, 8.0, *got.Hours, 1e-9)

	deal.Site = nil
	deal.Products = nil
	again, err := repo.UpsertDeal(ctx, deal)
	require.NoError(t, err)
	assert.Equal(t, dealID, again)

	got, err = repo.GetDeal(ctx, 1001)
	require.NoError(t, err)
	assert.Nil(t, got.Site)
	assert.Empty(t, got.Products)
}

func TestGetDeal_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetDeal(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrDealNotFound)
}

func TestUpsertNote_OverwritesContentAndTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	dealID, err := repo.UpsertDeal(ctx, domain.Deal{ExternalID: 9, Title: "D"})
	require.NoError(t, err)

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	noteID, err := repo.UpsertNote(ctx, domain.Note{Comment: "v1", CreatedAt: created, DealID: dealID, ExternalID: 300, UpdatedAt: created})
	require.NoError(t, err)

	updated := created.Add(48 * time.Hour)
	again, err := repo.UpsertNote(ctx, domain.Note{Comment: "v2", CreatedAt: created, DealID: dealID, ExternalID: 300, UpdatedAt: updated})
	require.NoError(t, err)
	assert.Equal(t, noteID, again)

	var model NoteModel
	require.NoError(t, repo.db.First(&model, noteID).Error)
	assert.Equal(t, "v2", model.Comment)
	assert.True(t, model.UpdatedAt.Equal(updated))
	assert.True(t, model.CreatedAt.Equal(created))
}

func TestUpsertDocument(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	dealID, err := repo.UpsertDeal(ctx, domain.Deal{ExternalID: 9, Title: "D"})
	require.NoError(t, err)

	now := time.Now().UTC()
	docID, err := repo.UpsertDocument(ctx, domain.Document{CreatedAt: now, DealID: dealID, ExternalID: 8, Name: "oferta.pdf", UpdatedAt: now, URL: strPtr("https://files.example/8")})
	require.NoError(t, err)
	assert.NotZero(t, docID)

	var model DocumentModel
	require.NoError(t, repo.db.First(&model, docID).Error)
	assert.Equal(t, "oferta.pdf", model.Name)
	assert.Equal(t, "https://files.example/8", *model.URL)
}

func TestSessions_CountCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	dealID, err := repo.UpsertDeal(ctx, domain.Deal{ExternalID: 9, Site: strPtr("Getafe"), Title: "D"})
	require.NoError(t, err)

	count, err := repo.CountSessions(ctx, dealID)
	require.NoError(t, err)
	assert.Zero(t, count)

	deal := domain.Deal{ID: dealID, Site: strPtr("Getafe"), Direction: strPtr("Calle Mayor 1")}
	require.NoError(t, repo.CreateSessions(ctx, domain.NewPendingSessions(deal, 3)))
	require.NoError(t, repo.CreateSessions(ctx, nil))

	count, err = repo.CountSessions(ctx, dealID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sessions, err := repo.ListSessions(ctx, dealID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for _, s := range sessions {
		assert.Equal(t, domain.SessionPending, s.Status)
		assert.Equal(t, "Getafe", *s.Site)
		assert.Equal(t, "Calle Mayor 1", *s.Address)
		assert.Empty(t, s.Comment)
		assert.Nil(t, s.StartAt)
		assert.Nil(t, s.EndAt)
	}
}

func TestDeletingDealCascadesToChildren(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	dealID, err := repo.UpsertDeal(ctx, domain.Deal{ExternalID: 9, Title: "D"})
	require.NoError(t, err)
	_, err = repo.UpsertNote(ctx, domain.Note{DealID: dealID, ExternalID: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, repo.CreateSessions(ctx, domain.NewPendingSessions(domain.Deal{ID: dealID}, 2)))

	require.NoError(t, repo.db.Delete(&DealModel{}, dealID).Error)

	var notes, sessions int64
	repo.db.Model(&NoteModel{}).Count(&notes)
	repo.db.Model(&SessionModel{}).Count(&sessions)
	assert.Zero(t, notes)
	assert.Zero(t, sessions)
}

func TestDeletingOrganizationNullsDealLink(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	orgID, err := repo.UpsertOrganization(ctx, domain.Organization{ExternalID: 1, Name: "Org"})
	require.NoError(t, err)
	_, err = repo.UpsertDeal(ctx, domain.Deal{ExternalID: 9, OrganizationID: &orgID, Title: "D"})
	require.NoError(t, err)

	require.NoError(t, repo.db.Delete(&OrganizationModel{}, orgID).Error)

	got, err := repo.GetDeal(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, got.OrganizationID)
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return assert.AnError
	}, 3)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
