package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/triage-kit/support-engine/internal/domain"
	"github.com/triage-kit/support-engine/internal/sla"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	SLA          SLAConfig
	Sweep        SweepConfig
	Catalog      CatalogConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SLAConfig holds per-priority budgets in minutes.
type SLAConfig struct {
	CriticalMinutes int
	HighMinutes     int
	MediumMinutes   int
	LowMinutes      int
}

// SweepConfig controls the proactive SLA sweep. An empty schedule disables it.
type SweepConfig struct {
	Schedule string
}

// CatalogConfig points at an optional JSON file overriding the built-in
// classifier keywords and canned responses.
type CatalogConfig struct {
	File string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "support-engine"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		SLA: SLAConfig{
			CriticalMinutes: getEnvAsInt("SLA_CRITICAL_MINUTES", 60),
			HighMinutes:     getEnvAsInt("SLA_HIGH_MINUTES", 240),
			MediumMinutes:   getEnvAsInt("SLA_MEDIUM_MINUTES", 720),
			LowMinutes:      getEnvAsInt("SLA_LOW_MINUTES", 1440),
		},
		Sweep: SweepConfig{
			Schedule: getEnv("SLA_SWEEP_SCHEDULE", "@every 1m"),
		},
		Catalog: CatalogConfig{
			File: os.Getenv("CATALOG_FILE"),
		},
		Notification: NotificationConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		},
	}

	if cfg.SLA.CriticalMinutes <= 0 || cfg.SLA.HighMinutes <= 0 ||
		cfg.SLA.MediumMinutes <= 0 || cfg.SLA.LowMinutes <= 0 {
		return nil, fmt.Errorf("sla budgets must be positive")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Budgets converts the minute settings into an SLA budget table.
func (s SLAConfig) Budgets() sla.Budgets {
	return sla.Budgets{
		domain.PriorityCritical: time.Duration(s.CriticalMinutes) * time.Minute,
		domain.PriorityHigh:     time.Duration(s.HighMinutes) * time.Minute,
		domain.PriorityMedium:   time.Duration(s.MediumMinutes) * time.Minute,
		domain.PriorityLow:      time.Duration(s.LowMinutes) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
