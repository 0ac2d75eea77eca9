// Package journal owns the append-mostly entry archive. Entries are
// immutable after save; only creation and confirmed deletion exist.
package journal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/storage"
)

var (
	// ErrEmptyEntry is returned when a save carries neither text nor images.
	ErrEmptyEntry = errors.New("entry needs content or at least one image")
	// ErrEntryNotFound is returned when no entry matches the given id.
	ErrEntryNotFound = errors.New("journal entry not found")
)

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns all entries, newest first.
func (s *Service) List() ([]models.JournalEntry, error) {
	return s.store.GetJournal()
}

// Save creates a new entry from the draft and prepends it. An entry with
// empty content and no staged images is rejected.
func (s *Service) Save(content string, mood constants.Mood, images []string) (models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" && len(images) == 0 {
		return models.JournalEntry{}, ErrEmptyEntry
	}
	if !constants.ValidMood(mood) {
		return models.JournalEntry{}, fmt.Errorf("unknown mood: %s", mood)
	}

	entries, err := s.store.GetJournal()
	if err != nil {
		return models.JournalEntry{}, err
	}

	now := s.now()
	entry := models.JournalEntry{
		ID:      strconv.FormatInt(now.UnixMilli(), 10),
		Date:    now,
		Content: content,
		Mood:    mood,
		Tags:    []string{},
		Images:  append([]string(nil), images...),
	}

	if err := s.store.SaveJournal(append([]models.JournalEntry{entry}, entries...)); err != nil {
		return models.JournalEntry{}, err
	}

	logger.Info("saved journal entry", "images", len(entry.Images))
	return entry, nil
}

// Delete removes an entry permanently. Destructive and irreversible; callers
// must have routed through an explicit confirmation first.
func (s *Service) Delete(id string) error {
	entries, err := s.store.GetJournal()
	if err != nil {
		return err
	}

	// Filter into a fresh slice: the store hands out its own slice, and a
	// failed save must not leave it compacted in place.
	kept := make([]models.JournalEntry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	return s.store.SaveJournal(kept)
}
