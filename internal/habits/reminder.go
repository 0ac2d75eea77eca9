package habits

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
	"github.com/julianstephens/lifeup/internal/models"
)

// icsTimestamp formats a time as an ICS UTC timestamp (yyyymmddThhmmssZ).
const icsTimestamp = "20060102T150405Z"

// ReminderEvent is a calendar-event payload for a habit reminder, ready for
// an external calendar application to import.
type ReminderEvent struct {
	Filename string
	Payload  string
}

// BuildReminderEvent renders a habit's reminder as an ICS event: a 15-minute
// window at the habit's reminder time (or 09:00 when unset), scheduled for
// tomorrow if today's occurrence has already passed, with a display alarm 5
// minutes before the start.
func BuildReminderEvent(habit models.Habit, now time.Time) (ReminderEvent, error) {
	hour, minute := constants.DefaultReminderHH, constants.DefaultReminderMM
	if habit.ReminderTime != "" {
		parts := strings.SplitN(habit.ReminderTime, ":", 2)
		if len(parts) != 2 {
			return ReminderEvent{}, fmt.Errorf("invalid reminder time: %q", habit.ReminderTime)
		}
		h, err := strconv.Atoi(parts[0])
		if err != nil || h < 0 || h > 23 {
			return ReminderEvent{}, fmt.Errorf("invalid hour in reminder time %q", habit.ReminderTime)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return ReminderEvent{}, fmt.Errorf("invalid minute in reminder time %q", habit.ReminderTime)
		}
		hour, minute = h, m
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if start.Before(now) {
		start = start.AddDate(0, 0, 1)
	}
	end := start.Add(constants.ReminderWindowMin * time.Minute)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"DTSTART:" + start.UTC().Format(icsTimestamp),
		"DTEND:" + end.UTC().Format(icsTimestamp),
		"SUMMARY:LifeUp check-in: " + habit.Name,
		"DESCRIPTION:Keep the streak going!\\nHabit: " + habit.Name,
		"BEGIN:VALARM",
		fmt.Sprintf("TRIGGER:-PT%dM", constants.ReminderAlarmMin),
		"ACTION:DISPLAY",
		"DESCRIPTION:Reminder",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return ReminderEvent{
		Filename: habit.Name + "_reminder.ics",
		Payload:  strings.Join(lines, "\r\n") + "\r\n",
	}, nil
}
