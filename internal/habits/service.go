// Package habits owns the tracked habit set: completion toggling, streaks,
// and the habit-adjacent progression actions (side quest, shop, profile).
package habits

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/models"
	"github.com/julianstephens/lifeup/internal/progression"
	"github.com/julianstephens/lifeup/internal/storage"
)

var (
	// ErrEmptyName is returned when a habit or user name is blank.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrHabitNotFound is returned when no habit matches the given id.
	ErrHabitNotFound = errors.New("habit not found")
)

// Service is the habit registry. All operations read current persisted
// state, compute new state, and write it back.
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

func (s *Service) today() string {
	return s.now().Format(constants.DateFormat)
}

// List returns all tracked habits.
func (s *Service) List() ([]models.Habit, error) {
	return s.store.GetHabits()
}

// Add registers a new habit with default display metadata.
func (s *Service) Add(name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyName
	}

	habits, err := s.store.GetHabits()
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		Icon:           "✨",
		Color:          "#34d399",
		CompletedDates: []string{},
	}

	if err := s.store.SaveHabits(append(habits, habit)); err != nil {
		return models.Habit{}, err
	}

	logger.Info("added habit", "name", name)
	return habit, nil
}

// Remove deletes a habit permanently. Destructive and irreversible; callers
// must have routed through an explicit confirmation first.
func (s *Service) Remove(id string) error {
	habits, err := s.store.GetHabits()
	if err != nil {
		return err
	}

	// Filter into a fresh slice: the store hands out its own slice, and a
	// failed save must not leave it compacted in place.
	kept := make([]models.Habit, 0, len(habits))
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	return s.store.SaveHabits(kept)
}

// ToggleResult reports the outcome of a completion toggle.
type ToggleResult struct {
	Habit   models.Habit
	Stats   models.UserStats
	Checked bool // true if the toggle marked the day complete
	Today   bool // true if the toggled day was the current day
}

// Toggle flips membership of day in the habit's completion set. Toggling the
// current day also applies the check/uncheck reward; any other day mutates
// only the completion set (browsing history never earns or revokes rewards).
func (s *Service) Toggle(id, day string) (ToggleResult, error) {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return ToggleResult{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	habits, err := s.store.GetHabits()
	if err != nil {
		return ToggleResult{}, err
	}
	stats, err := s.store.GetStats()
	if err != nil {
		return ToggleResult{}, err
	}

	idx := -1
	for i := range habits {
		if habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ToggleResult{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	habit := habits[idx]
	checked := !habit.CompletedOn(day)
	if checked {
		habit.CompletedDates = append(append([]string(nil), habit.CompletedDates...), day)
	} else {
		dates := make([]string, 0, len(habit.CompletedDates))
		for _, d := range habit.CompletedDates {
			if d != day {
				dates = append(dates, d)
			}
		}
		habit.CompletedDates = dates
	}
	habits[idx] = habit

	isToday := day == s.today()
	if isToday {
		if checked {
			stats = progression.Apply(stats, progression.HabitCheck)
		} else {
			stats = progression.Apply(stats, progression.HabitUncheck)
		}
		if err := s.store.SaveStats(stats); err != nil {
			return ToggleResult{}, err
		}
	}

	if err := s.store.SaveHabits(habits); err != nil {
		return ToggleResult{}, err
	}

	return ToggleResult{Habit: habit, Stats: stats, Checked: checked, Today: isToday}, nil
}

// Progress returns how many habits are completed today out of the total.
func (s *Service) Progress() (completed, total int, err error) {
	habits, err := s.store.GetHabits()
	if err != nil {
		return 0, 0, err
	}

	today := s.today()
	for _, h := range habits {
		if h.CompletedOn(today) {
			completed++
		}
	}
	return completed, len(habits), nil
}

// TodaysQuest returns the date-determined side quest text and whether it has
// already been claimed today.
func (s *Service) TodaysQuest() (quest string, done bool, err error) {
	stats, err := s.store.GetStats()
	if err != nil {
		return "", false, err
	}
	today := s.today()
	return progression.QuestForDay(today), stats.LastSideQuestDate == today, nil
}

// CompleteSideQuest claims today's side quest reward, once per calendar day.
func (s *Service) CompleteSideQuest() (models.UserStats, error) {
	stats, err := s.store.GetStats()
	if err != nil {
		return models.UserStats{}, err
	}

	next, err := progression.CompleteSideQuest(stats, s.today())
	if err != nil {
		return stats, err
	}

	if err := s.store.SaveStats(next); err != nil {
		return stats, err
	}
	return next, nil
}

// BuyMysteryBox spends coins for a random XP grant. Rejected purchases leave
// stats untouched.
func (s *Service) BuyMysteryBox(rng *rand.Rand) (models.UserStats, int, error) {
	stats, err := s.store.GetStats()
	if err != nil {
		return models.UserStats{}, 0, err
	}

	next, xp, err := progression.OpenMysteryBox(stats, rng)
	if err != nil {
		return stats, 0, err
	}

	if err := s.store.SaveStats(next); err != nil {
		return stats, 0, err
	}
	return next, xp, nil
}

// Rename updates the user's display name. Blank names are rejected.
func (s *Service) Rename(name string) (models.UserStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserStats{}, ErrEmptyName
	}

	stats, err := s.store.GetStats()
	if err != nil {
		return models.UserStats{}, err
	}

	stats.Name = name
	if err := s.store.SaveStats(stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}
