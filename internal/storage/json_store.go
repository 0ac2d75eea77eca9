package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/models"
)

// schemaVersion is the current JSON document version. Version 1 stored a
// single english_article document; version 2 stores an article library.
const schemaVersion = 2

type Store struct {
	Version       int                     `json:"version"`
	Stats         models.UserStats        `json:"stats"`
	Habits        []models.Habit          `json:"habits"`
	Journal       []models.JournalEntry   `json:"journal"`
	Library       []models.EnglishArticle `json:"english_library"`
	View          constants.View          `json:"view"`
	LegacyArticle *models.LegacyArticle   `json:"english_article,omitempty"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: schemaVersion,
		Stats:   models.DefaultStats(),
		Habits:  models.DefaultHabits(),
		Journal: []models.JournalEntry{},
		Library: []models.EnglishArticle{},
		View:    constants.ViewHabits,
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifeup init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	// A document that does not parse aborts the load. Corrupt data is never
	// silently discarded or reinitialized.
	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage at %s: %w", s.path, err)
	}

	// Ensure collections are initialized
	if s.store.Habits == nil {
		s.store.Habits = []models.Habit{}
	}
	if s.store.Journal == nil {
		s.store.Journal = []models.JournalEntry{}
	}
	if s.store.Library == nil {
		s.store.Library = []models.EnglishArticle{}
	}

	return s.migrate()
}

// migrate upgrades older document versions in place. Runs once per upgrade;
// the bumped version is persisted immediately.
func (s *JSONStore) migrate() error {
	if s.store.Version >= schemaVersion {
		return nil
	}

	// v1 -> v2: fold the retired single-article record into the library.
	if s.store.LegacyArticle != nil && len(s.store.Library) == 0 {
		article := UpgradeLegacyArticle(*s.store.LegacyArticle, time.Now())
		s.store.Library = []models.EnglishArticle{article}
		logger.Info("migrated legacy article into library", "title", article.Title)
	}
	s.store.LegacyArticle = nil
	s.store.Version = schemaVersion

	return s.save()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetStats() (models.UserStats, error) {
	if s.store == nil {
		return models.UserStats{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Stats, nil
}

func (s *JSONStore) SaveStats(stats models.UserStats) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Stats = stats
	return s.save()
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Habits = habits
	return s.save()
}

func (s *JSONStore) GetJournal() ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Journal, nil
}

func (s *JSONStore) SaveJournal(entries []models.JournalEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Journal = entries
	return s.save()
}

func (s *JSONStore) GetLibrary() ([]models.EnglishArticle, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Library, nil
}

func (s *JSONStore) SaveLibrary(library []models.EnglishArticle) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Library = library
	return s.save()
}

func (s *JSONStore) GetView() (constants.View, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	if s.store.View == "" {
		return constants.ViewHabits, nil
	}
	return s.store.View, nil
}

func (s *JSONStore) SaveView(view constants.View) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !constants.ValidView(view) {
		return fmt.Errorf("unknown view: %s", view)
	}
	s.store.View = view
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
