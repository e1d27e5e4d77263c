package cmd

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainingops/dealsync/internal/config"
	"github.com/trainingops/dealsync/internal/domain"
)

func TestParseDealID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1001", want: 1001},
		{raw: "0", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "12abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDealID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDealID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	t.Setenv("DEALSYNC_DEBUG", "")
	t.Setenv("DEALSYNC_CRM_API_TOKEN", "")
	t.Setenv("DEALSYNC_CRM_ACCESS_TOKEN", "")

	var cli CLI
	cli.SetSettings(&config.Settings{})
	parser, err := kong.New(&cli, kong.Name("dealsync"), kong.Bind(&cli), kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Close() })
	return &cli, ctx
}

func TestSyncDealCmd_InvalidIDFailsBeforeStorage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero", args: []string{"0"}},
		{name: "negative after separator", args: []string{"--", "-3"}},
		{name: "not numeric", args: []string{"12abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := filepath.Join(t.TempDir(), "never.db")
			args := append([]string{"--database-url", dbPath, "sync-deal"}, tt.args...)
			cli, ctx := newTestCLI(t, args...)

			err := ctx.Run()

			assert.ErrorIs(t, err, domain.ErrInvalidDealID)
			assert.Nil(t, cli.container)
			assert.NoFileExists(t, dbPath)
		})
	}
}

func TestSyncDealCmd_NegativeIDIsRejectedByParser(t *testing.T) {
	t.Setenv("DEALSYNC_DEBUG", "")
	dbPath := filepath.Join(t.TempDir(), "never.db")

	var cli CLI
	cli.SetSettings(&config.Settings{})
	parser, err := kong.New(&cli, kong.Name("dealsync"), kong.Bind(&cli), kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--database-url", dbPath, "sync-deal", "-3"})

	assert.Error(t, err)
	assert.Nil(t, cli.container)
	assert.NoFileExists(t, dbPath)
}

func TestSyncDealCmd_MissingCredentialsClosesStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deals.db")
	cli, ctx := newTestCLI(t, "--database-url", dbPath, "sync-deal", "42")

	err := ctx.Run()

	assert.Error(t, err)
	assert.Nil(t, cli.container)
}

func TestMigrateCmd_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deals.db")
	cli, ctx := newTestCLI(t, "--database-url", dbPath, "migrate")

	require.NoError(t, ctx.Run())

	assert.NotNil(t, cli.container)
	assert.FileExists(t, dbPath)
}

func TestHoursCmd(t *testing.T) {
	_, ctx := newTestCLI(t, "hours", "Curso de reciclaje", "sin pista")

	assert.NoError(t, ctx.Run())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "-", mask(""))
	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "****wxyz", mask("secret-wxyz"))
}

func TestMaskDatabaseURL(t *testing.T) {
	assert.Equal(t, "postgres://app:****@db:5432/crm", maskDatabaseURL("postgres://app:pw@db:5432/crm"))
	assert.Equal(t, "/var/lib/dealsync.db", maskDatabaseURL("/var/lib/dealsync.db"))
}
