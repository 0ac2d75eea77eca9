package models

import "github.com/julianstephens/lifeup/internal/constants"

// UserStats is the single progression record for the installation.
// Level is derived from XP on read and never stored, so it cannot drift.
type UserStats struct {
	Name              string `json:"name"`
	XP                int    `json:"xp"`
	Coins             int    `json:"coins"`
	LastSideQuestDate string `json:"last_side_quest_date,omitempty"` // YYYY-MM-DD
}

// Level returns the current level, one level per 100 XP starting at 1.
func (s UserStats) Level() int {
	return s.XP/constants.XPPerLevel + 1
}

// LevelProgress returns the XP accumulated toward the next level and the
// span of a level.
func (s UserStats) LevelProgress() (current, span int) {
	return s.XP % constants.XPPerLevel, constants.XPPerLevel
}

// DefaultStats returns the stats record created on first launch.
func DefaultStats() UserStats {
	return UserStats{Name: constants.DefaultUserName}
}
