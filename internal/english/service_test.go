package english

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", day)
		return t.Add(12 * time.Hour)
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Add("A Title", "   "); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}

	library, _ := svc.List()
	if len(library) != 0 {
		t.Errorf("rejected add changed library size: %d", len(library))
	}
}

func TestAddAssignsPlaceholderTitle(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.Add("  ", "Practice makes perfect.")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if article.Title != PlaceholderTitle {
		t.Errorf("expected placeholder title, got %q", article.Title)
	}
	if article.Difficulty != "Custom" {
		t.Errorf("expected difficulty Custom, got %q", article.Difficulty)
	}
	if article.ID == "" {
		t.Error("expected an id assigned")
	}
	if article.CompletionCount != 0 || article.LastCompletedDate != "" {
		t.Error("expected a fresh recitation history")
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Add("First", "one"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add("Second", "two"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	library, _ := svc.List()
	if len(library) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(library))
	}
	if library[0].Title != "Second" || library[1].Title != "First" {
		t.Errorf("library not newest-first: %q then %q", library[0].Title, library[1].Title)
	}
}

func TestReciteRewardsOncePerDay(t *testing.T) {
	svc := newTestService(t).WithClock(fixedClock("2026-08-29"))

	article, err := svc.Add("Drill", "Repetition builds memory.")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	res, err := svc.Recite(article.ID)
	if err != nil {
		t.Fatalf("recite failed: %v", err)
	}
	if !res.Rewarded {
		t.Fatal("expected the first recitation rewarded")
	}
	if res.Stats.XP != 50 || res.Stats.Coins != 20 {
		t.Errorf("expected +50/+20, got xp=%d coins=%d", res.Stats.XP, res.Stats.Coins)
	}
	if res.Article.CompletionCount != 1 || res.Article.LastCompletedDate != "2026-08-29" {
		t.Errorf("history not updated: %+v", res.Article)
	}

	// A repeat claim on the same day changes nothing.
	res, err = svc.Recite(article.ID)
	if err != nil {
		t.Fatalf("recite failed: %v", err)
	}
	if res.Rewarded {
		t.Error("expected a same-day repeat to be a no-op")
	}
	if res.Stats.XP != 50 || res.Stats.Coins != 20 || res.Article.CompletionCount != 1 {
		t.Errorf("same-day repeat mutated state: %+v %+v", res.Stats, res.Article)
	}
}

func TestReciteAgainNextDay(t *testing.T) {
	svc := newTestService(t).WithClock(fixedClock("2026-08-29"))

	article, _ := svc.Add("Drill", "Repetition builds memory.")
	if _, err := svc.Recite(article.ID); err != nil {
		t.Fatalf("recite failed: %v", err)
	}

	svc.WithClock(fixedClock("2026-08-30"))
	res, err := svc.Recite(article.ID)
	if err != nil {
		t.Fatalf("recite failed: %v", err)
	}
	if !res.Rewarded || res.Article.CompletionCount != 2 {
		t.Errorf("expected a second rewarded recitation, got %+v", res)
	}
	if res.Stats.XP != 100 || res.Stats.Level() != 2 {
		t.Errorf("expected xp=100 level=2, got xp=%d level=%d", res.Stats.XP, res.Stats.Level())
	}
}

func TestReciteUnknownArticle(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Recite("nope"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestDeleteArticle(t *testing.T) {
	svc := newTestService(t)

	article, _ := svc.Add("Doomed", "short-lived")
	if err := svc.Delete(article.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	library, _ := svc.List()
	if len(library) != 0 {
		t.Errorf("expected empty library, got %d", len(library))
	}

	if err := svc.Delete("nope"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestAddFetchedResetsHistory(t *testing.T) {
	svc := newTestService(t)

	article, err := svc.AddFetched(models.EnglishArticle{
		Title:             "Fetched",
		Content:           "some content",
		Difficulty:        "Intermediate",
		LastCompletedDate: "2020-01-01",
		CompletionCount:   5,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if article.CompletionCount != 0 || article.LastCompletedDate != "" {
		t.Errorf("expected history reset, got %+v", article)
	}
}

type saveFailStore struct {
	storage.Provider
	fail bool
}

func (s *saveFailStore) SaveLibrary(library []models.EnglishArticle) error {
	if s.fail {
		return errors.New("disk full")
	}
	return s.Provider.SaveLibrary(library)
}

func TestDeleteFailedSaveKeepsLibraryIntact(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "lifeup.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	wrapped := &saveFailStore{Provider: store}
	svc := NewService(wrapped)

	first, _ := svc.Add("First", "one")
	second, _ := svc.Add("Second", "two")

	wrapped.fail = true
	if err := svc.Delete(first.ID); err == nil {
		t.Fatal("expected the failed save to surface")
	}

	library, _ := svc.List()
	if len(library) != 2 {
		t.Fatalf("failed delete shrank the library: got %d", len(library))
	}
	if library[0].ID != second.ID || library[1].ID != first.ID {
		t.Error("failed delete reordered the library")
	}
}

type failingFetcher struct{}

func (failingFetcher) FetchArticle(context.Context, string) (models.EnglishArticle, error) {
	return models.EnglishArticle{}, errors.New("boom")
}

type stubFetcher struct{ article models.EnglishArticle }

func (f stubFetcher) FetchArticle(context.Context, string) (models.EnglishArticle, error) {
	return f.article, nil
}

func TestFetchOrFallback(t *testing.T) {
	got := FetchOrFallback(context.Background(), failingFetcher{}, "travel")
	if got.Title != "The Power of Habits" {
		t.Errorf("expected the fallback article, got %q", got.Title)
	}
	if len(got.Vocabulary) != 3 {
		t.Errorf("expected 3 fallback vocabulary items, got %d", len(got.Vocabulary))
	}

	want := models.EnglishArticle{Title: "Fresh", Content: "new text", Difficulty: "Beginner"}
	got = FetchOrFallback(context.Background(), stubFetcher{article: want}, "travel")
	if got.Title != "Fresh" {
		t.Errorf("expected the fetched article, got %q", got.Title)
	}
}
