package config

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{
		"ENV", "SERVER_PORT", "STORAGE_DRIVER", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"DOUBLE_BOOKING_RULE", "SCHEDULE_LOOKUP", "CORS_ORIGINS", "REDIS_URL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AccessTokenTTL != 120*time.Minute {
		t.Errorf("expected 120m ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.DoubleBookingRule != appointment.RuleSplit {
		t.Errorf("expected split rule, got %q", cfg.DoubleBookingRule)
	}
	if cfg.ScheduleLookup != appointment.LookupFirst {
		t.Errorf("expected first lookup, got %q", cfg.ScheduleLookup)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
	if cfg.StorageDriver != DriverPostgres {
		t.Errorf("unexpected driver %q", cfg.StorageDriver)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("DOUBLE_BOOKING_RULE", "exact")
	t.Setenv("SCHEDULE_LOOKUP", "by_date")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("expected 15m ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.DoubleBookingRule != appointment.RuleExact {
		t.Errorf("expected exact rule, got %q", cfg.DoubleBookingRule)
	}
	if cfg.ScheduleLookup != appointment.LookupByDate {
		t.Errorf("expected by_date lookup, got %q", cfg.ScheduleLookup)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	cases := map[string]string{
		"ACCESS_TOKEN_EXPIRE_MINUTES": "soon",
		"DOUBLE_BOOKING_RULE":         "fuzzy",
		"STORAGE_DRIVER":              "mysql",
		"RATE_LIMIT_RPS":              "fast",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, val)
			}
		})
	}
}
