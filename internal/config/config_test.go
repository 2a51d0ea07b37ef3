package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{"TOKEN": "abc"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "sitedesk.db", cfg.SQLitePath)
	assert.Equal(t, "sitedesk", cfg.StoragePrefix)
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
}

func TestLoadRequiresToken(t *testing.T) {
	setEnv(t, map[string]string{"TOKEN": " "})

	_, err := Load()
	require.ErrorContains(t, err, "TOKEN")
}

func TestLoadParseError(t *testing.T) {
	setEnv(t, map[string]string{"TOKEN": "abc", "REDIS_DB": "zero"})

	_, err := Load()
	require.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "guild id digits", cfg: Config{Token: "t", GuildID: "12a", DefaultLocale: "en", StorageDriver: "memory"}, wantErr: "GUILD_ID"},
		{name: "audit channel digits", cfg: Config{Token: "t", AuditChannelID: "#audit", DefaultLocale: "en", StorageDriver: "memory"}, wantErr: "AUDIT_CHANNEL_ID"},
		{name: "unsupported locale", cfg: Config{Token: "t", DefaultLocale: "de", StorageDriver: "memory"}, wantErr: "DEFAULT_LOCALE"},
		{name: "unknown driver", cfg: Config{Token: "t", DefaultLocale: "en", StorageDriver: "floppy"}, wantErr: "STORAGE_DRIVER"},
		{name: "bad postgres url", cfg: Config{Token: "t", DefaultLocale: "en", StorageDriver: "postgres", DatabaseURL: "localhost"}, wantErr: "DATABASE_URL"},
		{name: "redis addr", cfg: Config{Token: "t", DefaultLocale: "en", StorageDriver: "redis"}, wantErr: "REDIS_ADDR"},
		{name: "ok", cfg: Config{Token: "t", GuildID: "123", DefaultLocale: "FR", StorageDriver: "Memory"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidatePostgresDefaultURL(t *testing.T) {
	cfg := Config{Token: "t", DefaultLocale: "en", StorageDriver: "postgres"}
	require.NoError(t, cfg.validate())
	assert.Equal(t, "postgres://localhost:5432/sitedesk?sslmode=disable", cfg.DatabaseURL)
}
