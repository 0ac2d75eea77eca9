package models

import (
	"time"

	"github.com/julianstephens/lifeup/internal/constants"
)

// JournalEntry is a dated, immutable record. Entries are only ever created
// or deleted, never edited.
type JournalEntry struct {
	ID      string         `json:"id"`
	Date    time.Time      `json:"date"`
	Content string         `json:"content"`
	Mood    constants.Mood `json:"mood"`
	Tags    []string       `json:"tags"`
	Images  []string       `json:"images,omitempty"` // base64 JPEG data URLs
}
