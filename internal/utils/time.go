package utils

import (
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
)

// Today returns the current calendar day string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// Day formats a time as a calendar day string (YYYY-MM-DD).
func Day(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a calendar day string (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// ValidDay reports whether the string is a valid calendar day.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// ParseClock parses a time-of-day string (HH:MM).
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidClock reports whether the string matches the standard time format.
func ValidClock(timeStr string) bool {
	_, err := ParseClock(timeStr)
	return err == nil
}
