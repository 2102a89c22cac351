package database

import (
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(entries))
	}

	raw, err := migrationFS.ReadFile("migrations/0002_completed_jobs.sql")
	if err != nil {
		t.Fatalf("read archive migration: %v", err)
	}
	sql := string(raw)
	for _, table := range []string{
		"completed_jobs",
		"completed_job_notes",
		"completed_job_charges",
		"completed_job_hours",
		"completed_job_parts",
		"completed_job_photos",
		"completed_job_equipment",
	} {
		if !strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Fatalf("archive migration does not create %s", table)
		}
	}
	if !strings.Contains(sql, "UNIQUE (org_id, original_job_id)") {
		t.Fatalf("archive migration must keep one archive per original job")
	}
}
