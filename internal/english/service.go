// Package english owns the study-article library: importing texts,
// tracking recitations, and fetching fresh material.
package english

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/progression"
	"github.com/julianstephens/lifeup/internal/storage"
	"github.com/julianstephens/lifeup/internal/utils"
)

var (
	// ErrEmptyContent is returned when an article carries no text.
	ErrEmptyContent = errors.New("article needs content")
	// ErrArticleNotFound is returned when no article matches the given id.
	ErrArticleNotFound = errors.New("article not found")
)

// PlaceholderTitle is assigned when an imported article has no title.
const PlaceholderTitle = "Untitled Article"

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

// List returns the library, newest first.
func (s *Service) List() ([]models.EnglishArticle, error) {
	return s.store.GetLibrary()
}

// Get returns the article with the given id.
func (s *Service) Get(id string) (models.EnglishArticle, error) {
	library, err := s.store.GetLibrary()
	if err != nil {
		return models.EnglishArticle{}, err
	}
	for _, a := range library {
		if a.ID == id {
			return a, nil
		}
	}
	return models.EnglishArticle{}, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
}

// Add imports a custom article and prepends it to the library. A blank
// title gets a placeholder; empty content is rejected.
func (s *Service) Add(title, content string) (models.EnglishArticle, error) {
	if strings.TrimSpace(content) == "" {
		return models.EnglishArticle{}, ErrEmptyContent
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = PlaceholderTitle
	}

	return s.insert(models.EnglishArticle{
		Title:      title,
		Content:    content,
		Difficulty: "Custom",
	})
}

// AddFetched files a fetched article into the library with a fresh
// recitation history.
func (s *Service) AddFetched(article models.EnglishArticle) (models.EnglishArticle, error) {
	if strings.TrimSpace(article.Content) == "" {
		return models.EnglishArticle{}, ErrEmptyContent
	}
	if strings.TrimSpace(article.Title) == "" {
		article.Title = PlaceholderTitle
	}
	article.LastCompletedDate = ""
	article.CompletionCount = 0
	return s.insert(article)
}

func (s *Service) insert(article models.EnglishArticle) (models.EnglishArticle, error) {
	library, err := s.store.GetLibrary()
	if err != nil {
		return models.EnglishArticle{}, err
	}

	article.ID = uuid.NewString()
	article.AddedDate = s.now()

	if err := s.store.SaveLibrary(append([]models.EnglishArticle{article}, library...)); err != nil {
		return models.EnglishArticle{}, err
	}

	logger.Info("added article", "title", article.Title)
	return article, nil
}

// ReciteResult reports the outcome of a recitation claim.
type ReciteResult struct {
	Article  models.EnglishArticle
	Stats    models.UserStats
	Rewarded bool
}

// Recite records a completed recitation of the article. An article can be
// rewarded once per day; a repeat claim on the same day changes nothing.
func (s *Service) Recite(id string) (ReciteResult, error) {
	library, err := s.store.GetLibrary()
	if err != nil {
		return ReciteResult{}, err
	}
	stats, err := s.store.GetStats()
	if err != nil {
		return ReciteResult{}, err
	}

	idx := -1
	for i, a := range library {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ReciteResult{}, fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}

	today := utils.Day(s.now())
	if library[idx].CompletedOn(today) {
		return ReciteResult{Article: library[idx], Stats: stats}, nil
	}

	stats = progression.Apply(stats, progression.Recitation)
	library[idx].LastCompletedDate = today
	library[idx].CompletionCount++

	if err := s.store.SaveStats(stats); err != nil {
		return ReciteResult{}, err
	}
	if err := s.store.SaveLibrary(library); err != nil {
		return ReciteResult{}, err
	}

	logger.Info("recitation recorded", "title", library[idx].Title, "count", library[idx].CompletionCount)
	return ReciteResult{Article: library[idx], Stats: stats, Rewarded: true}, nil
}

// Delete removes an article permanently. Destructive and irreversible;
// callers must have routed through an explicit confirmation first.
func (s *Service) Delete(id string) error {
	library, err := s.store.GetLibrary()
	if err != nil {
		return err
	}

	// Filter into a fresh slice: the store hands out its own slice, and a
	// failed save must not leave it compacted in place.
	kept := make([]models.EnglishArticle, 0, len(library))
	found := false
	for _, a := range library {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrArticleNotFound, id)
	}

	return s.store.SaveLibrary(kept)
}
