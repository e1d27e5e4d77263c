package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/theme"
)

// SettingsCmd groups settings helpers
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Print an example settings.json"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the effective configuration"`
}

// SettingsExampleCmd prints an example settings file
type SettingsExampleCmd struct{}

// Run executes the settings example command
func (s *SettingsExampleCmd) Run() error {
	data, err := json.MarshalIndent(config.GetSettingsExample(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render example: %w", err)
	}
	fmt.Println(theme.MutedStyle.Render("# " + config.GetSettingsPath()))
	fmt.Println(string(data))
	return nil
}

// SettingsShowCmd prints the resolved configuration with secrets masked
type SettingsShowCmd struct{}

// Run executes the settings show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	r := cli.resolved
	printField("Settings file", config.GetSettingsPath())
	printField("Database", maskDatabaseURL(r.DatabaseURL))
	printField("CRM", r.CRMBaseURL)
	printField("Access token", mask(r.CRMAccessToken))
	printField("API token", mask(r.CRMAPIToken))
	printField("Training marker", r.TrainingMarker)

	fields := map[string]config.StringArray{
		"deal_caes":        r.Fields.DealCAES,
		"deal_direction":   r.Fields.DealDirection,
		"deal_fundae":      r.Fields.DealFUNDAE,
		"deal_hotel_night": r.Fields.DealHotelNight,
		"deal_hours":       r.Fields.DealHours,
		"deal_site":        r.Fields.DealSite,
		"org_phone":        r.Fields.OrgPhone,
		"org_tax_id":       r.Fields.OrgTaxID,
	}
	for _, name := range []string{"deal_caes", "deal_direction", "deal_fundae", "deal_hotel_night", "deal_hours", "deal_site", "org_phone", "org_tax_id"} {
		printField(name, strings.Join(fields[name], ", "))
	}
	return nil
}

func mask(secret string) string {
	if secret == "" {
		return "-"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

// maskDatabaseURL hides the password of a connection URL
func maskDatabaseURL(raw string) string {
	at := strings.LastIndex(raw, "@")
	scheme := strings.Index(raw, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return raw
	}
	userinfo := raw[scheme+3 : at]
	if colon := strings.Index(userinfo, ":"); colon >= 0 {
		userinfo = userinfo[:colon] + ":****"
	}
	return raw[:scheme+3] + userinfo + raw[at:]
}
