package test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/hrygo/meetingmate/internal/profile"
	"github.com/hrygo/meetingmate/store"
	"github.com/hrygo/meetingmate/store/db"
)

// NewTestingStore creates a store backed by a throwaway sqlite database.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	profile := getTestingProfile(t)
	dbDriver, err := db.NewDBDriver(profile)
	if err != nil {
		t.Fatalf("failed to create db driver: %v", err)
	}
	if err := dbDriver.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	ts := store.New(dbDriver, profile)
	t.Cleanup(func() {
		if err := ts.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return ts
}

func getTestingProfile(t *testing.T) *profile.Profile {
	// Get a temporary directory for the test data.
	dir := t.TempDir()
	mode := "dev"
	driver := getDriverFromEnv()
	dsn := fmt.Sprintf("%s/meetingmate_%s.db", dir, mode)
	if driver == "postgres" {
		dsn = os.Getenv("MEETINGMATE_TEST_DSN")
	}
	return &profile.Profile{
		Mode:   mode,
		Data:   dir,
		Driver: driver,
		DSN:    dsn,
	}
}

func getDriverFromEnv() string {
	driver := os.Getenv("MEETINGMATE_TEST_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	return driver
}
