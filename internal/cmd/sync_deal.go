package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trainingops/dealsync/internal/domain"
	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/theme"
)

// SyncDealCmd mirrors one remote deal into local storage
type SyncDealCmd struct {
	DealID string `arg:"" name:"deal-id" help:"Remote deal identifier (positive integer)"`
}

// Run executes the sync-deal command
func (s *SyncDealCmd) Run(cli *CLI) error {
	dealID, err := ParseDealID(s.DealID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing sync-deal command", "deal_external_id", dealID)

	container, err := cli.Container(true)
	if err != nil {
		return err
	}

	result, err := container.SyncService.SyncDeal(context.Background(), dealID)
	if err != nil {
		return fmt.Errorf("failed to sync deal %d: %w", dealID, err)
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("✓ Deal %d synced as local deal %d", dealID, result.DealID)))
	printField("Notes", strconv.Itoa(result.NotesSynced))
	printField("Documents", strconv.Itoa(result.DocumentsSynced))
	printField("Sessions", fmt.Sprintf("%d needed, %d created", result.SessionsNeeded, result.SessionsCreated))
	printField("Run", result.RunID)
	return nil
}

// ParseDealID accepts only positive base-10 integers
func ParseDealID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDealID, raw)
	}
	return id, nil
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", theme.LabelStyle.Render(label+":"), theme.ValueStyle.Render(value))
}
