package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_PORT", "")
	t.Setenv("DAY_TIMEZONE", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "UTC", cfg.Days.Timezone)
	assert.Equal(t, 120*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "5 0 * * *", cfg.Reporting.CronSchedule)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("does-not-exist.env")
	assert.EqualError(t, err, "JWT_SECRET must be provided")
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TTL", "soon")

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "5000"},
			MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "nutrilog"},
			Auth:      AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour},
			Days:      DaysConfig{Timezone: "UTC"},
			Reporting: ReportingConfig{CronSchedule: "5 0 * * *", Timezone: "UTC"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT must be provided"},
		{name: "missing mongo uri", mutate: func(c *Config) { c.MongoDB.URI = "" }, wantErr: "MONGODB_URI must be provided"},
		{name: "unknown timezone", mutate: func(c *Config) { c.Days.Timezone = "Mars/Olympus" }, wantErr: "DAY_TIMEZONE is invalid"},
		{
			name:    "sheets without spreadsheet",
			mutate:  func(c *Config) { c.Sheets.CredentialsPath = "/tmp/creds.json" },
			wantErr: "GOOGLE_SHEET_DATABASE_ID must be provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.EqualError(t, nilCfg.Validate(), "config is nil")
}
