package ticketing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticketing.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
	// Community identity.
	"SERVER_NAME": "test cave",
	"MAX_TICKETS_PER_USER": 3,
}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Overridden values take effect, everything else keeps the default.
	require.Equal(t, "test cave", cfg.ServerName)
	require.Equal(t, 3, cfg.MaxTicketsPerUser)
	require.Equal(t, "Tickets", cfg.TicketCategoryName)
	require.Equal(t, "Archived Tickets", cfg.ArchiveCategoryName)
	require.Equal(t, "logs", cfg.LogChannelName)
	require.Equal(t, 0xEAEAEA, cfg.AccentColor)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.jsonc"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "Defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "ZeroCap",
			mutate:  func(c *Config) { c.MaxTicketsPerUser = 0 },
			wantErr: true,
		},
		{
			name:    "EmptyCategory",
			mutate:  func(c *Config) { c.TicketCategoryName = "" },
			wantErr: true,
		},
		{
			name:    "EmptyLogChannel",
			mutate:  func(c *Config) { c.LogChannelName = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
