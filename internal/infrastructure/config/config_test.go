package config

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "")
		_, err := Load()
		if !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "s")
		t.Setenv("PORT", "eighty")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "s")
		t.Setenv("PORT", "")
		t.Setenv("DATABASE_MAX_CONNS", "")
		t.Setenv("MAINTENANCE_JOB_TYPES", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.DatabaseMaxConns != 10 {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if !cfg.MaintenanceTypes.Contains("service") || cfg.MaintenanceTypes.Contains("Repair") {
			t.Fatalf("unexpected maintenance types: %v", cfg.MaintenanceTypes)
		}
	})

	t.Run("custom maintenance types", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "s")
		t.Setenv("MAINTENANCE_JOB_TYPES", " Inspection , PM ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.MaintenanceTypes.Contains("pm") || cfg.MaintenanceTypes.Contains("Service") {
			t.Fatalf("unexpected maintenance types: %v", cfg.MaintenanceTypes)
		}
	})
}
