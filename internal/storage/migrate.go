package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeup/internal/models"
)

// UpgradeLegacyArticle converts the retired single-article record into a
// library entry. A record that shows any prior completion starts with a
// completion count of 1, otherwise 0. Both stores run this exactly once, at
// load, when a legacy record exists and no library does.
func UpgradeLegacyArticle(legacy models.LegacyArticle, now time.Time) models.EnglishArticle {
	count := 0
	if legacy.LastCompletedDate != "" {
		count = 1
	}
	return models.EnglishArticle{
		ID:                uuid.New().String(),
		Title:             legacy.Title,
		Content:           legacy.Content,
		Difficulty:        legacy.Difficulty,
		AddedDate:         now,
		LastCompletedDate: legacy.LastCompletedDate,
		CompletionCount:   count,
	}
}
