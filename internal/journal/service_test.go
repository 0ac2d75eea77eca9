package journal

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "lifeup.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return NewService(store)
}

func TestSaveRejectsEmptyDraft(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Save("   ", constants.MoodNeutral, nil); !errors.Is(err, ErrEmptyEntry) {
		t.Errorf("expected ErrEmptyEntry, got %v", err)
	}

	entries, _ := svc.List()
	if len(entries) != 0 {
		t.Errorf("rejected save changed entry count: %d", len(entries))
	}
}

func TestSaveWithOnlyImagesSucceeds(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Save("", constants.MoodHappy, []string{"data:image/jpeg;base64,xxx"})
	if err != nil {
		t.Fatalf("image-only save failed: %v", err)
	}
	if len(entry.Images) != 1 {
		t.Errorf("expected one image, got %d", len(entry.Images))
	}
}

func TestSaveRejectsUnknownMood(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Save("hello", "furious", nil); err == nil {
		t.Error("expected unknown mood to be rejected")
	}
}

func TestSavePrependsNewestFirst(t *testing.T) {
	svc := newTestService(t)

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	clock := base
	svc.WithClock(func() time.Time { return clock })

	if _, err := svc.Save("first", constants.MoodNeutral, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	clock = base.Add(time.Minute)
	if _, err := svc.Save("second", constants.MoodExcited, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, _ := svc.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Content != "second" || entries[1].Content != "first" {
		t.Errorf("entries not newest-first: %q then %q", entries[0].Content, entries[1].Content)
	}
}

func TestDeleteEntry(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Save("to be removed", constants.MoodSad, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := svc.Delete(entry.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	entries, _ := svc.List()
	if len(entries) != 0 {
		t.Errorf("expected empty journal, got %d entries", len(entries))
	}

	if err := svc.Delete("nope"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

type saveFailStore struct {
	storage.Provider
	fail bool
}

func (s *saveFailStore) SaveJournal(entries []models.JournalEntry) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.Provider.SaveJournal(entries)
}

func TestDeleteFailedSaveKeepsEntriesIntact(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "lifeup.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	wrapped := &saveFailStore{Provider: store}
	svc := NewService(wrapped)

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	clock := base
	svc.WithClock(func() time.Time { return clock })

	first, _ := svc.Save("first", constants.MoodNeutral, nil)
	clock = base.Add(time.Minute)
	second, _ := svc.Save("second", constants.MoodHappy, nil)

	wrapped.fail = true
	if err := svc.Delete(second.ID); err == nil {
		t.Fatal("expected the failed save to surface")
	}

	entries, _ := svc.List()
	if len(entries) != 2 {
		t.Fatalf("failed delete shrank the journal: got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Error("failed delete reordered the journal")
	}
}

func TestStageImageResizesAndEncodes(t *testing.T) {
	// 1600x900 source: the long edge must come down to 800.
	src := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	dataURL, err := StageImage(&buf)
	if err != nil {
		t.Fatalf("staging failed: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Errorf("expected a JPEG data URL, got prefix %q", dataURL[:min(40, len(dataURL))])
	}
}

func TestStageImageKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	if _, err := StageImage(&buf); err != nil {
		t.Fatalf("staging failed: %v", err)
	}
}

func TestStageImageRejectsGarbage(t *testing.T) {
	if _, err := StageImage(strings.NewReader("not an image")); err == nil {
		t.Error("expected decode failure")
	}
}

func TestRemoveStagedPreservesOrder(t *testing.T) {
	images := []string{"a", "b", "c"}

	got := RemoveStaged(images, 0)
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("expected [b c], got %v", got)
	}

	// Out-of-range indices are no-ops.
	if got := RemoveStaged(images, 3); len(got) != 3 {
		t.Errorf("expected untouched slice, got %v", got)
	}
	if got := RemoveStaged(images, -1); len(got) != 3 {
		t.Errorf("expected untouched slice, got %v", got)
	}
}

func TestGridColumns(t *testing.T) {
	cases := []struct {
		count, cols int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {7, 3},
	}
	for _, tc := range cases {
		if got := GridColumns(tc.count); got != tc.cols {
			t.Errorf("GridColumns(%d) = %d, expected %d", tc.count, got, tc.cols)
		}
	}
}
