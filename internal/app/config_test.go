package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, "https://project-solar-y8zx.onrender.com/leads", cfg.LeadsSourceURL)
	assert.Equal(t, time.Duration(0), cfg.LeadsSourceTimeout)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LEADS_SOURCE_URL", "http://127.0.0.1:9000/leads")
	t.Setenv("LEADS_SOURCE_TIMEOUT", "5s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "http://127.0.0.1:9000/leads", cfg.LeadsSourceURL)
	assert.Equal(t, 5*time.Second, cfg.LeadsSourceTimeout)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"bad url":    {"LEADS_SOURCE_URL", "not a url"},
		"log format": {"LOG_FORMAT", "xml"},
		"log level":  {"LOG_LEVEL", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestNilConfigIsNotProduction(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsProduction())
}
