package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifeup.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestSQLiteStoreInitSeedsDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if stats.Name != constants.DefaultUserName || stats.XP != 0 {
		t.Errorf("unexpected default stats: %+v", stats)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("failed to get habits: %v", err)
	}
	if len(habits) != 2 {
		t.Errorf("expected two seed habits, got %d", len(habits))
	}
}

func TestSQLiteStoreInitIdempotent(t *testing.T) {
	store := newTestSQLiteStore(t)

	stats := models.UserStats{Name: "Kim", XP: 120, Coins: 30}
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("failed to save stats: %v", err)
	}

	// A second init must not reseed over existing data.
	if err := store.Init(); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	got, err := store.GetStats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if got.Name != "Kim" || got.XP != 120 {
		t.Errorf("second init clobbered stats: %+v", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	habits := []models.Habit{
		{ID: "h1", Name: "Read", Icon: "📚", Color: "#34d399", CompletedDates: []string{"2024-05-01"}},
	}
	if err := store.SaveHabits(habits); err != nil {
		t.Fatalf("failed to save habits: %v", err)
	}

	// Reopen from disk
	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetHabits()
	if err != nil {
		t.Fatalf("failed to get habits: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Read" || !got[0].CompletedOn("2024-05-01") {
		t.Errorf("habits did not round-trip: %+v", got)
	}
}

func TestSQLiteStoreLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected load of missing database to fail")
	}
}

func TestSQLiteStoreLegacyArticleMigration(t *testing.T) {
	store := newTestSQLiteStore(t)

	// Plant a legacy single-article document and clear the library, then
	// reload to trigger the upgrade.
	legacy := models.LegacyArticle{Title: "A", Content: "B", LastCompletedDate: "2024-01-01"}
	if err := store.saveDocument(CollectionLegacyArticle, legacy); err != nil {
		t.Fatalf("failed to plant legacy document: %v", err)
	}
	if _, err := store.db.Exec("DELETE FROM documents WHERE collection = ?", CollectionLibrary); err != nil {
		t.Fatalf("failed to clear library: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewSQLiteStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reopened.Close()

	library, err := reopened.GetLibrary()
	if err != nil {
		t.Fatalf("failed to get library: %v", err)
	}
	if len(library) != 1 {
		t.Fatalf("expected one migrated article, got %d", len(library))
	}
	if library[0].Title != "A" || library[0].CompletionCount != 1 {
		t.Errorf("migrated article wrong: %+v", library[0])
	}

	// Legacy document must be gone.
	var legacyAgain models.LegacyArticle
	if err := reopened.getDocument(CollectionLegacyArticle, &legacyAgain); err == nil {
		t.Error("expected legacy document removed after migration")
	}
}
