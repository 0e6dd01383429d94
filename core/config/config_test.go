package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := &Config{}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg.Webhook = WebhookConfig{URL: "https://x.example", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
}

func TestNormalizeRejectsBadRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "run_mode") {
		t.Fatalf("expected run_mode error, got %v", err)
	}
}

func TestNormalizeRejectsNegativeSweep(t *testing.T) {
	cfg := validConfig()
	cfg.Sessions.SweepIntervalMinutes = -1
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for negative sweep interval")
	}
}

func TestSweepInterval(t *testing.T) {
	s := SessionsConfig{SweepIntervalMinutes: 45}
	if got := s.SweepInterval(); got != 45*time.Minute {
		t.Fatalf("sweep interval = %v", got)
	}
	if got := (SessionsConfig{}).SweepInterval(); got != 0 {
		t.Fatalf("zero config sweep interval = %v, want 0", got)
	}
}

func TestNormalizeDatabaseDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db", Name: "support"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" || cfg.Database.MaxConnections != 4 {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
}

func TestNormalizeDatabaseRequiresName(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for database host without name")
	}
}

func TestDatabaseEnabled(t *testing.T) {
	if (DatabaseConfig{}).Enabled() {
		t.Fatal("empty database config must be disabled")
	}
	if !(DatabaseConfig{Host: "db"}).Enabled() {
		t.Fatal("host-configured database must be enabled")
	}
}

func TestNormalizeExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclude_updates[0] = %q", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown update kind")
	}
}
