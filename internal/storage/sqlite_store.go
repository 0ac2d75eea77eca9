package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/migration"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/migrations"
)

// SQLiteStore persists each collection as one JSON document row in a
// documents table. Schema changes run through the embedded migration runner.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed defaults on a fresh database only.
	if _, err := s.GetStats(); errors.Is(err, errNoDocument) {
		if err := s.SaveStats(models.DefaultStats()); err != nil {
			return fmt.Errorf("failed to save default stats: %w", err)
		}
		if err := s.SaveHabits(models.DefaultHabits()); err != nil {
			return fmt.Errorf("failed to save default habits: %w", err)
		}
		if err := s.SaveJournal([]models.JournalEntry{}); err != nil {
			return fmt.Errorf("failed to save empty journal: %w", err)
		}
		if err := s.SaveLibrary([]models.EnglishArticle{}); err != nil {
			return fmt.Errorf("failed to save empty library: %w", err)
		}
		if err := s.SaveView(constants.ViewHabits); err != nil {
			return fmt.Errorf("failed to save default view: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'lifeup init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return s.upgradeLegacyArticle()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(func(msg string) {
		logger.Info(msg)
	})
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

// upgradeLegacyArticle folds a retired single-article document into the
// library. Runs at load, at most once: the legacy row is removed afterwards.
func (s *SQLiteStore) upgradeLegacyArticle() error {
	var legacy models.LegacyArticle
	if err := s.getDocument(CollectionLegacyArticle, &legacy); err != nil {
		if errors.Is(err, errNoDocument) {
			return nil
		}
		return err
	}

	library, err := s.GetLibrary()
	if err != nil && !errors.Is(err, errNoDocument) {
		return err
	}

	if len(library) == 0 {
		article := UpgradeLegacyArticle(legacy, time.Now())
		if err := s.SaveLibrary([]models.EnglishArticle{article}); err != nil {
			return fmt.Errorf("failed to migrate legacy article: %w", err)
		}
		logger.Info("migrated legacy article into library", "title", article.Title)
	}

	_, err = s.db.Exec("DELETE FROM documents WHERE collection = ?", CollectionLegacyArticle)
	if err != nil {
		return fmt.Errorf("failed to remove legacy article document: %w", err)
	}
	return nil
}

var errNoDocument = errors.New("document not found")

func (s *SQLiteStore) getDocument(collection string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow("SELECT data FROM documents WHERE collection = ?", collection).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", errNoDocument, collection)
		}
		return fmt.Errorf("failed to read %s document: %w", collection, err)
	}

	// Corrupt documents abort the read; nothing is silently reinitialized.
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to parse %s document: %w", collection, err)
	}
	return nil
}

func (s *SQLiteStore) saveDocument(collection string, v any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s document: %w", collection, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO documents (collection, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(collection) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s document: %w", collection, err)
	}
	return nil
}

func (s *SQLiteStore) GetStats() (models.UserStats, error) {
	var stats models.UserStats
	if err := s.getDocument(CollectionStats, &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(stats models.UserStats) error {
	return s.saveDocument(CollectionStats, stats)
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.getDocument(CollectionHabits, &habits); err != nil {
		if errors.Is(err, errNoDocument) {
			return []models.Habit{}, nil
		}
		return nil, err
	}
	return habits, nil
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	return s.saveDocument(CollectionHabits, habits)
}

func (s *SQLiteStore) GetJournal() ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.getDocument(CollectionJournal, &entries); err != nil {
		if errors.Is(err, errNoDocument) {
			return []models.JournalEntry{}, nil
		}
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) SaveJournal(entries []models.JournalEntry) error {
	return s.saveDocument(CollectionJournal, entries)
}

func (s *SQLiteStore) GetLibrary() ([]models.EnglishArticle, error) {
	var library []models.EnglishArticle
	if err := s.getDocument(CollectionLibrary, &library); err != nil {
		if errors.Is(err, errNoDocument) {
			return []models.EnglishArticle{}, nil
		}
		return nil, err
	}
	return library, nil
}

func (s *SQLiteStore) SaveLibrary(library []models.EnglishArticle) error {
	return s.saveDocument(CollectionLibrary, library)
}

func (s *SQLiteStore) GetView() (constants.View, error) {
	var view constants.View
	if err := s.getDocument(CollectionView, &view); err != nil {
		if errors.Is(err, errNoDocument) {
			return constants.ViewHabits, nil
		}
		return "", err
	}
	if view == "" {
		return constants.ViewHabits, nil
	}
	return view, nil
}

func (s *SQLiteStore) SaveView(view constants.View) error {
	if !constants.ValidView(view) {
		return fmt.Errorf("unknown view: %s", view)
	}
	return s.saveDocument(CollectionView, view)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
