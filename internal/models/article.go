package models

import "time"

// VocabularyItem pairs a word from an article with a translated definition.
type VocabularyItem struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// EnglishArticle is a study text with an independent recitation history.
type EnglishArticle struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Content           string           `json:"content"`
	Difficulty        string           `json:"difficulty,omitempty"`
	AddedDate         time.Time        `json:"added_date"`
	LastCompletedDate string           `json:"last_completed_date,omitempty"` // YYYY-MM-DD
	CompletionCount   int              `json:"completion_count"`
	Vocabulary        []VocabularyItem `json:"vocabulary,omitempty"`
}

// CompletedOn reports whether the article was recited on the given day.
func (a EnglishArticle) CompletedOn(day string) bool {
	return a.LastCompletedDate != "" && a.LastCompletedDate == day
}

// LegacyArticle is the retired single-article storage format. It survives
// only so stores can upgrade it into a one-element library at load time.
type LegacyArticle struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	Difficulty        string `json:"difficulty,omitempty"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
}
