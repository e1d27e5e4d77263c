package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// DefaultCRMBaseURL is the CRM REST endpoint used when none is configured
	DefaultCRMBaseURL = "https://api.pipedrive.com/v1"
	// DefaultTrainingMarker identifies training line items by product code
	DefaultTrainingMarker = "form-"
	// DefaultMaxLogFiles is how many rotated log files are kept
	DefaultMaxLogFiles = 100
)

// Settings represents the structure of settings.json
type Settings struct {
	CRMAccessToken string    `json:"crm_access_token,omitempty"`
	CRMAPIToken    string    `json:"crm_api_token,omitempty"`
	CRMBaseURL     string    `json:"crm_base_url,omitempty"`
	DatabaseURL    string    `json:"database_url,omitempty"`
	Debug          *bool     `json:"debug,omitempty"`
	Fields         FieldKeys `json:"fields,omitempty"`
	MaxLogFiles    *int      `json:"max_log_files,omitempty"`
	TrainingMarker string    `json:"training_marker,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetSettingsPath returns the settings file location.
// DEALSYNC_SETTINGS overrides the XDG default.
func GetSettingsPath() string {
	if path := os.Getenv("DEALSYNC_SETTINGS"); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, "dealsync", "settings.json")
}

// GetDefaultDatabasePath returns the SQLite file used when no database URL is set
func GetDefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "dealsync", "dealsync.db")
}

// LoadSettings loads settings from the given path.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// Resolved is the effective configuration after applying every source
type Resolved struct {
	CRMAccessToken string
	CRMAPIToken    string
	CRMBaseURL     string
	DatabaseURL    string
	Fields         FieldKeys
	TrainingMarker string
}

// Overrides carries values that take precedence over settings.json,
// typically CLI flags already merged with their environment variables
type Overrides struct {
	CRMAccessToken string
	CRMAPIToken    string
	CRMBaseURL     string
	DatabaseURL    string
	TrainingMarker string
}

// Resolve merges overrides > environment field keys > settings.json > defaults
func Resolve(settings *Settings, overrides Overrides, lookupEnv func(string) (string, bool)) Resolved {
	if settings == nil {
		settings = &Settings{}
	}

	resolved := Resolved{
		CRMAccessToken: firstNonEmpty(overrides.CRMAccessToken, settings.CRMAccessToken),
		CRMAPIToken:    firstNonEmpty(overrides.CRMAPIToken, settings.CRMAPIToken),
		CRMBaseURL:     firstNonEmpty(overrides.CRMBaseURL, settings.CRMBaseURL, DefaultCRMBaseURL),
		DatabaseURL:    firstNonEmpty(overrides.DatabaseURL, settings.DatabaseURL, GetDefaultDatabasePath()),
		TrainingMarker: firstNonEmpty(overrides.TrainingMarker, settings.TrainingMarker, DefaultTrainingMarker),
	}

	fields := DefaultFieldKeys().Merge(settings.Fields)
	if lookupEnv != nil {
		fields = fields.Merge(FieldKeysFromEnv(lookupEnv))
	}
	resolved.Fields = fields

	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
