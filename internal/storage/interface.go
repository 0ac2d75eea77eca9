package storage

import (
	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/models"
)

// Provider is the persistence contract: durable whole-document reads and
// writes per logical collection. Stores own bytes, never semantics; there
// are no partial updates.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Stats
	GetStats() (models.UserStats, error)
	SaveStats(models.UserStats) error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Journal, newest-first
	GetJournal() ([]models.JournalEntry, error)
	SaveJournal([]models.JournalEntry) error

	// Article library
	GetLibrary() ([]models.EnglishArticle, error)
	SaveLibrary([]models.EnglishArticle) error

	// Last-active view
	GetView() (constants.View, error)
	SaveView(constants.View) error

	// Utils
	GetConfigPath() string
}

// Collection names as persisted.
const (
	CollectionStats   = "stats"
	CollectionHabits  = "habits"
	CollectionJournal = "journal"
	CollectionLibrary = "english_library"
	CollectionView    = "view"

	// CollectionLegacyArticle is the retired single-article key. It is only
	// ever read, as input to the one-time library upgrade.
	CollectionLegacyArticle = "english_article"
)
