package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SourceModeDatabase, cfg.Source.Mode)
	assert.Equal(t, "USD", cfg.Report.Currency)
	assert.Equal(t, int64(1000), cfg.Report.ChartScale)
	assert.Equal(t, 10, cfg.Report.DefaultPageSize)
	assert.Equal(t, 10*time.Minute, cfg.Cache.ReportTTL)
	assert.Equal(t, 30*time.Second, cfg.Source.SnapshotMaxAge)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SOURCE_MODE", "HTTP")
	t.Setenv("SOURCE_BASE_URL", "http://ledger.internal/api/transactions")
	t.Setenv("SOURCE_TIMEOUT", "3s")
	t.Setenv("SOURCE_SNAPSHOT_MAX_AGE", "0s")
	t.Setenv("REPORT_CURRENCY", "eur")
	t.Setenv("LIST_DEFAULT_PAGE_SIZE", "25")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, SourceModeHTTP, cfg.Source.Mode)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Source.SnapshotMaxAge)
	assert.Equal(t, "EUR", cfg.Report.Currency)
	assert.Equal(t, 25, cfg.Report.DefaultPageSize)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("LIST_DEFAULT_PAGE_SIZE", "ten")
	t.Setenv("SOURCE_TIMEOUT", "soon")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.Report.DefaultPageSize)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.Report.DefaultPageSize = 0 }},
		{"zero chart scale", func(c *Config) { c.Report.ChartScale = 0 }},
		{"unknown currency", func(c *Config) { c.Report.Currency = "XXY" }},
		{"unknown source mode", func(c *Config) { c.Source.Mode = "ftp" }},
		{"http source without url", func(c *Config) {
			c.Source.Mode = SourceModeHTTP
			c.Source.BaseURL = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
