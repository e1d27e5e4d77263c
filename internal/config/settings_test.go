package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestLoadSettings_FieldKeysAcceptStringOrArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{
		"database_url": "postgres://localhost/crm",
		"fields": {
			"deal_site": "abc, def",
			"org_tax_id": ["nif_key"]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/crm", settings.DatabaseURL)
	assert.Equal(t, StringArray{"abc", "def"}, settings.Fields.DealSite)
	assert.Equal(t, StringArray{"nif_key"}, settings.Fields.OrgTaxID)
}

func TestResolve_Precedence(t *testing.T) {
	settings := &Settings{
		CRMBaseURL:     "https://settings.example/v1",
		DatabaseURL:    "/tmp/settings.db",
		TrainingMarker: "train-",
		Fields:         FieldKeys{DealSite: StringArray{"from_settings"}},
	}
	overrides := Overrides{DatabaseURL: "/tmp/flag.db"}
	env := envMap(map[string]string{"DEALSYNC_FIELD_DEAL_HOURS": "hours_a,hours_b"})

	resolved := Resolve(settings, overrides, env)

	assert.Equal(t, "/tmp/flag.db", resolved.DatabaseURL)
	assert.Equal(t, "https://settings.example/v1", resolved.CRMBaseURL)
	assert.Equal(t, "train-", resolved.TrainingMarker)
	assert.Equal(t, StringArray{"from_settings"}, resolved.Fields.DealSite)
	assert.Equal(t, StringArray{"hours_a", "hours_b"}, resolved.Fields.DealHours)
	assert.Equal(t, DefaultFieldKeys().DealCAES, resolved.Fields.DealCAES)
}

func TestResolve_Defaults(t *testing.T) {
	resolved := Resolve(nil, Overrides{}, nil)

	assert.Equal(t, DefaultCRMBaseURL, resolved.CRMBaseURL)
	assert.Equal(t, DefaultTrainingMarker, resolved.TrainingMarker)
	assert.Equal(t, GetDefaultDatabasePath(), resolved.DatabaseURL)
	assert.Equal(t, DefaultFieldKeys(), resolved.Fields)
}

func TestFieldKeys_MergeDoesNotMutateReceiver(t *testing.T) {
	base := DefaultFieldKeys()
	merged := base.Merge(FieldKeys{OrgPhone: StringArray{"other"}})

	assert.Equal(t, StringArray{"other"}, merged.OrgPhone)
	assert.Equal(t, DefaultFieldKeys().OrgPhone, base.OrgPhone)
}

func TestGetSettingsExample_CoversEveryKey(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"crm_access_token", "crm_api_token", "crm_base_url", "database_url", "debug", "fields", "max_log_files", "training_marker"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultMaxLogFiles, example["max_log_files"])

	fields, ok := example["fields"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, fields, 8)
	assert.Equal(t, []string{"<custom field key>"}, fields["deal_site"])
}
