package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/domain"
	"github.com/trainingops/dealsync/internal/formation"
	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/mapping"
	"github.com/trainingops/dealsync/internal/ports"
	"github.com/trainingops/dealsync/internal/remote"
)

// defaultBatchLimit caps concurrent note and document writes
const defaultBatchLimit = 8

// SyncOptions configures a SyncService
type SyncOptions struct {
	BatchLimit     int
	FieldKeys      config.FieldKeys
	Now            func() time.Time
	TrainingMarker string
}

// SyncResult summarizes one deal sync
type SyncResult struct {
	DealID          uint
	DocumentsSynced int
	NotesSynced     int
	OrganizationID  *uint
	PersonID        *uint
	RunID           string
	SessionsCreated int
	SessionsNeeded  int
}

// SyncService mirrors one remote deal and its dependents into local storage
type SyncService struct {
	batchLimit     int
	crm            ports.CRMClient
	fieldKeys      config.FieldKeys
	now            func() time.Time
	repo           ports.SyncRepository
	trainingMarker string
}

// NewSyncService creates a new SyncService
func NewSyncService(crm ports.CRMClient, repo ports.SyncRepository, opts SyncOptions) *SyncService {
	s := &SyncService{
		batchLimit:     opts.BatchLimit,
		crm:            crm,
		fieldKeys:      opts.FieldKeys,
		now:            opts.Now,
		repo:           repo,
		trainingMarker: opts.TrainingMarker,
	}
	if s.batchLimit <= 0 {
		s.batchLimit = defaultBatchLimit
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

// remoteSnapshot is everything fetched for a deal before the first write
type remoteSnapshot struct {
	deal     *remote.Deal
	files    []remote.File
	notes    []remote.Note
	org      *remote.Organization
	person   *remote.Person
	products []remote.Product
}

// SyncDeal fetches a deal with its organization, person, products, notes and
// files, then writes organization, person, deal, notes, documents and missing
// sessions in that order. Every remote read happens before the first write, so
// a fetch failure leaves storage untouched.
func (s *SyncService) SyncDeal(ctx context.Context, dealExternalID int64) (*SyncResult, error) {
	if dealExternalID <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDealID, dealExternalID)
	}

	result := &SyncResult{RunID: uuid.New().String()}
	ctx = logging.WithRunID(ctx, result.RunID)
	log := logging.Logger.With("run_id", result.RunID, "deal_external_id", dealExternalID)
	log.Info("Starting deal sync")

	snap, err := s.fetch(ctx, dealExternalID)
	if err != nil {
		log.Error("Failed to fetch remote deal", "error", err)
		return nil, err
	}

	if snap.org != nil {
		orgID, err := s.repo.UpsertOrganization(ctx, mapping.ExtractOrganization(*snap.org, s.fieldKeys))
		if err != nil {
			return nil, err
		}
		result.OrganizationID = &orgID
	}

	if snap.person != nil {
		personID, err := s.repo.UpsertPerson(ctx, mapping.ExtractPerson(*snap.person, result.OrganizationID))
		if err != nil {
			return nil, err
		}
		result.PersonID = &personID
	}

	items := mapping.ExtractLineItems(snap.products)
	classification := domain.ClassifyProducts(items, s.trainingMarker)
	warnIfCapped(log, classification)

	deal := mapping.ExtractDeal(*snap.deal, s.fieldKeys)
	deal.ExternalID = dealExternalID
	deal.OrganizationID = result.OrganizationID
	deal.PersonID = result.PersonID
	deal.Products = classification.Items
	deal.Training = classification.TrainingSummary()
	deal.ProdExtra = classification.ExtraSummary()
	if deal.Hours == nil {
		candidates := append(append([]string{}, classification.TrainingNames...), deal.Title)
		if hours, ok := formation.ResolveHoursFromList(candidates); ok {
			deal.Hours = &hours
			log.Debug("Inferred deal hours from labels", "hours", hours)
		}
	}

	dealID, err := s.repo.UpsertDeal(ctx, deal)
	if err != nil {
		return nil, err
	}
	deal.ID = dealID
	result.DealID = dealID
	log = log.With("deal_id", dealID)

	now := s.now()

	notes := withExternalIDs(log, "note", snap.notes, func(n remote.Note) int64 { return n.ID })
	if err := s.writeNotes(ctx, dealID, notes, now); err != nil {
		log.Error("Note batch failed", "error", err)
		return nil, err
	}
	result.NotesSynced = len(notes)

	files := withExternalIDs(log, "file", snap.files, func(f remote.File) int64 { return f.ID })
	if err := s.writeDocuments(ctx, dealID, files, now); err != nil {
		log.Error("Document batch failed", "error", err)
		return nil, err
	}
	result.DocumentsSynced = len(files)

	created, err := s.reconcile(ctx, log, deal, classification.SessionsNeeded)
	if err != nil {
		return nil, err
	}
	result.SessionsNeeded = classification.SessionsNeeded
	result.SessionsCreated = created

	log.Info("Deal sync completed",
		"notes", result.NotesSynced,
		"documents", result.DocumentsSynced,
		"sessions_needed", result.SessionsNeeded,
		"sessions_created", result.SessionsCreated)

	return result, nil
}

// ReconcileSessions appends the sessions missing for a local deal, computing
// demand from the deal's current remote products. It returns how many were created.
func (s *SyncService) ReconcileSessions(ctx context.Context, dealID uint, dealExternalID int64, deal domain.Deal) (int, error) {
	products, err := s.crm.GetDealProducts(ctx, dealExternalID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch products of deal %d: %w", dealExternalID, err)
	}

	classification := domain.ClassifyProducts(mapping.ExtractLineItems(products), s.trainingMarker)
	deal.ID = dealID
	log := logging.Logger.With("deal_external_id", dealExternalID, "deal_id", dealID)
	warnIfCapped(log, classification)
	return s.reconcile(ctx, log, deal, classification.SessionsNeeded)
}

func warnIfCapped(log *slog.Logger, c domain.ProductClassification) {
	if c.DemandCapped {
		log.Warn("Training quantities exceed the per-deal session limit",
			"limit", domain.MaxSessionsPerDeal,
			"training", c.TrainingSummary())
	}
}

func (s *SyncService) reconcile(ctx context.Context, log *slog.Logger, deal domain.Deal, needed int) (int, error) {
	existing, err := s.repo.CountSessions(ctx, deal.ID)
	if err != nil {
		return 0, err
	}

	toCreate := domain.SessionsToCreate(needed, existing)
	if toCreate == 0 {
		log.Debug("Sessions already satisfied", "needed", needed, "existing", existing)
		return 0, nil
	}

	if err := s.repo.CreateSessions(ctx, domain.NewPendingSessions(deal, toCreate)); err != nil {
		return 0, err
	}
	log.Info("Created sessions", "needed", needed, "existing", existing, "created", toCreate)
	return toCreate, nil
}

func (s *SyncService) fetch(ctx context.Context, dealExternalID int64) (*remoteSnapshot, error) {
	deal, err := s.crm.GetDeal(ctx, dealExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deal %d: %w", dealExternalID, err)
	}

	if deal.ID != 0 && deal.ID != dealExternalID {
		return nil, fmt.Errorf("%w: asked for %d, got %d", domain.ErrDealIDMismatch, dealExternalID, deal.ID)
	}

	snap := &remoteSnapshot{deal: deal}

	if deal.OrgID > 0 {
		snap.org, err = s.crm.GetOrganization(ctx, deal.OrgID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch organization %d: %w", deal.OrgID, err)
		}
	}

	if deal.PersonID > 0 {
		snap.person, err = s.crm.GetPerson(ctx, deal.PersonID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch person %d: %w", deal.PersonID, err)
		}
	}

	// Dependent lists are independent of each other
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.crm.GetDealProducts(gctx, dealExternalID)
		if err != nil {
			return fmt.Errorf("failed to fetch products of deal %d: %w", dealExternalID, err)
		}
		snap.products = products
		return nil
	})
	g.Go(func() error {
		notes, err := s.crm.GetDealNotes(gctx, dealExternalID)
		if err != nil {
			return fmt.Errorf("failed to fetch notes of deal %d: %w", dealExternalID, err)
		}
		snap.notes = notes
		return nil
	})
	g.Go(func() error {
		files, err := s.crm.GetDealFiles(gctx, dealExternalID)
		if err != nil {
			return fmt.Errorf("failed to fetch files of deal %d: %w", dealExternalID, err)
		}
		snap.files = files
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

// withExternalIDs drops items the CRM returned without a usable id,
// since they cannot be keyed for an idempotent upsert
func withExternalIDs[T any](log *slog.Logger, kind string, items []T, id func(T) int64) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) <= 0 {
			log.Warn("Skipping remote item without id", "kind", kind)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// writeNotes upserts every note concurrently; the first failure cancels the rest
func (s *SyncService) writeNotes(ctx context.Context, dealID uint, notes []remote.Note, now time.Time) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for _, n := range notes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := s.repo.UpsertNote(gctx, mapping.ExtractNote(n, dealID, now)); err != nil {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// writeDocuments upserts every document concurrently; the first failure cancels the rest
func (s *SyncService) writeDocuments(ctx context.Context, dealID uint, files []remote.File, now time.Time) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := s.repo.UpsertDocument(gctx, mapping.ExtractDocument(f, dealID, now)); err != nil {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
