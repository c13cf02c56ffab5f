package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triage-kit/support-engine/internal/autoresponse"
	"github.com/triage-kit/support-engine/internal/classify"
	"github.com/triage-kit/support-engine/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "support-engine", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "@every 1m", cfg.Sweep.Schedule)

	budgets := cfg.SLA.Budgets()
	assert.Equal(t, time.Hour, budgets[domain.PriorityCritical])
	assert.Equal(t, 4*time.Hour, budgets[domain.PriorityHigh])
	assert.Equal(t, 12*time.Hour, budgets[domain.PriorityMedium])
	assert.Equal(t, 24*time.Hour, budgets[domain.PriorityLow])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SLA_CRITICAL_MINUTES", "15")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.SLA.Budgets()[domain.PriorityCritical])
	// Unparseable ints fall back to the default.
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestLoadRejectsNonPositiveBudgets(t *testing.T) {
	t.Setenv("SLA_LOW_MINUTES", "-5")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadCatalogsDefaultsWithoutFile(t *testing.T) {
	catalog, responses, err := LoadCatalogs(CatalogConfig{})
	require.NoError(t, err)

	assert.Equal(t, classify.DefaultCatalog(), catalog)
	assert.Equal(t, autoresponse.DefaultResponses(), responses)
}

func TestLoadCatalogsAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `{
		"priority_rules": [
			{"keyword": "outage", "priority": "CRITICAL"},
			{"keyword": "question", "priority": "LOW"}
		],
		"responses": {
			"greeting": ["Hello there"]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	catalog, responses, err := LoadCatalogs(CatalogConfig{File: path})
	require.NoError(t, err)

	require.Len(t, catalog.PriorityRules, 2)
	assert.Equal(t, "outage", catalog.PriorityRules[0].Keyword)
	assert.Equal(t, domain.PriorityCritical, catalog.PriorityRules[0].Priority)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, classify.DefaultCatalog().CategoryKeywords, catalog.CategoryKeywords)
	assert.Equal(t, []string{"Hello there"}, responses[autoresponse.KindGreeting])
}

func TestLoadCatalogsRejectsUnknownPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"priority_rules":[{"keyword":"x","priority":"SEVERE"}]}`), 0o600))

	_, _, err := LoadCatalogs(CatalogConfig{File: path})
	require.Error(t, err)
}
