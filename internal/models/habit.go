package models

import (
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color"`
	CompletedDates []string `json:"completed_dates"` // YYYY-MM-DD, set semantics
	ReminderTime   string   `json:"reminder_time,omitempty"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// Streak returns the number of consecutive days ending at today that are
// present in CompletedDates. It is computed from the completion set rather
// than stored, so back-toggled history can never desynchronize it.
func (h Habit) Streak(today string) int {
	t, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	streak := 0
	for h.CompletedOn(t.Format(constants.DateFormat)) {
		streak++
		t = t.AddDate(0, 0, -1)
	}
	return streak
}

// DefaultHabits returns the two seed habits created on first run.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Morning Run", Icon: "🏃", Color: "#fb923c", CompletedDates: []string{}, ReminderTime: "07:00"},
		{ID: "2", Name: "Drink Water", Icon: "💧", Color: "#60a5fa", CompletedDates: []string{}},
	}
}
