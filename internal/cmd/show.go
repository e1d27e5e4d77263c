package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/theme"
)

// ShowCmd prints what a previous sync stored for a deal
type ShowCmd struct {
	DealID string `arg:"" name:"deal-id" help:"Remote deal identifier (positive integer)"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	dealID, err := ParseDealID(s.DealID)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing show command", "deal_external_id", dealID)

	container, err := cli.Container(false)
	if err != nil {
		return err
	}

	ctx := context.Background()
	deal, err := container.Repository.GetDeal(ctx, dealID)
	if err != nil {
		return err
	}
	sessions, err := container.Repository.ListSessions(ctx, deal.ID)
	if err != nil {
		return err
	}

	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("%s (deal %d, local %d)", deal.Title, deal.ExternalID, deal.ID)))
	printField("Status", deref(deal.Status))
	printField("Site", deref(deal.Site))
	printField("Direction", deref(deal.Direction))
	if deal.Hours != nil {
		printField("Hours", strconv.FormatFloat(*deal.Hours, 'f', -1, 64))
	}
	printField("Training", deal.Training)
	printField("Extras", deal.ProdExtra)
	printField("Flags", fmt.Sprintf("CAES=%t FUNDAE=%t hotel=%t", deal.CAES, deal.FUNDAE, deal.HotelNight))
	printField("Sessions", strconv.Itoa(len(sessions)))
	for _, session := range sessions {
		fmt.Printf("    #%d %s %s\n", session.ID, string(session.Status), theme.MutedStyle.Render(deref(session.Site)))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
