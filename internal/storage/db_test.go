package storage

import (
	"context"
	"strings"
	"testing"
)

// TestNewRejectsBadDSN verifies a malformed DSN fails at parse time, before
// any connection attempt.
func TestNewRejectsBadDSN(t *testing.T) {
	_, err := New(context.Background(), "://not-a-dsn")
	if err == nil {
		t.Fatal("New() accepted a malformed DSN")
	}
	if !strings.Contains(err.Error(), "parsing archive dsn") {
		t.Errorf("error = %v, want a dsn parse error", err)
	}
}

// TestRunMigrationsMissingDir verifies a missing migrations directory is
// reported as a source error.
func TestRunMigrationsMissingDir(t *testing.T) {
	err := RunMigrations("postgres://localhost:5432/planforge", "testdata/does-not-exist")
	if err == nil {
		t.Fatal("RunMigrations() accepted a missing migrations directory")
	}
}
