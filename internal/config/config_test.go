package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "BASE_PUBLIC_URL", "SEED_FILE",
		"GOOGLE_SHEETS_SPREADSHEET_ID", "GOOGLE_SERVICE_ACCOUNT_JSON",
		"TELEGRAM_BOT_TOKEN", "ADMIN_TG_IDS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Empty(t, c.SeedFile)
	assert.False(t, c.SheetsEnabled())
	assert.False(t, c.TelegramEnabled())
	assert.Empty(t, c.AdminTGIDs)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", " :9090 ")
	t.Setenv("BASE_PUBLIC_URL", "https://soc.example.cz/")
	t.Setenv("SEED_FILE", "/etc/soc/seed.yaml")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-1")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "/secrets/sa.json")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_TG_IDS", "42, 7")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "https://soc.example.cz", c.BasePublicURL)
	assert.Equal(t, "/etc/soc/seed.yaml", c.SeedFile)
	assert.True(t, c.SheetsEnabled())
	assert.True(t, c.TelegramEnabled())
	assert.Equal(t, map[int64]bool{42: true, 7: true}, c.AdminTGIDs)
}

func TestFromEnv_HalfConfiguredSheets(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "sheet-1")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SERVICE_ACCOUNT_JSON")

	clearEnv(t)
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "/secrets/sa.json")

	_, err = FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SHEETS_SPREADSHEET_ID")
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		raw  string
		want map[int64]bool
	}{
		{"", map[int64]bool{}},
		{"  ", map[int64]bool{}},
		{"1", map[int64]bool{1: true}},
		{"1,,2", map[int64]bool{1: true, 2: true}},
		{"abc, 3", map[int64]bool{3: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAdminIDs(tt.raw), "raw=%q", tt.raw)
	}
}

func TestTelegramEnabled_RequiresAdmins(t *testing.T) {
	c := Config{TelegramToken: "123:abc", AdminTGIDs: map[int64]bool{}}
	assert.False(t, c.TelegramEnabled())
}
