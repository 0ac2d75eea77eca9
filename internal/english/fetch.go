package english

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/julianstephens/lifeup/internal/logger"
	"github.com/julianstephens/lifeup/internal/models"
)

// Fetcher retrieves a fresh study article for a topic hint.
type Fetcher interface {
	FetchArticle(ctx context.Context, topic string) (models.EnglishArticle, error)
}

const defaultFetchModel = "gemini-2.5-flash"

// GeminiFetcher generates short study articles using Google's Gemini API.
type GeminiFetcher struct {
	client *genai.Client
	model  string
}

func NewGeminiFetcher(ctx context.Context, apiKey, model string) (*GeminiFetcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = defaultFetchModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiFetcher{client: client, model: model}, nil
}

var articleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":      {Type: genai.TypeString},
		"content":    {Type: genai.TypeString},
		"difficulty": {Type: genai.TypeString, Enum: []string{"Beginner", "Intermediate", "Advanced"}},
		"vocabulary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"word":       {Type: genai.TypeString},
					"definition": {Type: genai.TypeString},
				},
			},
		},
	},
	Required: []string{"title", "content"},
}

// FetchArticle asks the model for a short study text on the topic, with a
// structured JSON response matching the article shape.
func (f *GeminiFetcher) FetchArticle(ctx context.Context, topic string) (models.EnglishArticle, error) {
	if strings.TrimSpace(topic) == "" {
		topic = "general"
	}

	prompt := fmt.Sprintf("Generate a short, inspiring English learning article (about 80-100 words) "+
		"suitable for an intermediate learner. The topic should be related to: %s. "+
		"Also provide 3 key vocabulary words with short plain-English definitions.", topic)

	resp, err := f.client.Models.GenerateContent(ctx, f.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   articleSchema,
	})
	if err != nil {
		return models.EnglishArticle{}, fmt.Errorf("failed to fetch article: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return models.EnglishArticle{}, fmt.Errorf("empty model response")
	}

	var article models.EnglishArticle
	if err := json.Unmarshal([]byte(text), &article); err != nil {
		return models.EnglishArticle{}, fmt.Errorf("failed to parse article response: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return models.EnglishArticle{}, fmt.Errorf("model returned no article content")
	}

	return article, nil
}

// FetchOrFallback asks the fetcher for an article and substitutes the
// built-in fallback on any failure, so the reader never gets an empty view.
func FetchOrFallback(ctx context.Context, f Fetcher, topic string) models.EnglishArticle {
	article, err := f.FetchArticle(ctx, topic)
	if err != nil {
		logger.Warn("article fetch failed, using fallback", "error", err)
		return FallbackArticle()
	}
	return article
}

// FallbackArticle is the fixed built-in study text used when fetching fails.
func FallbackArticle() models.EnglishArticle {
	return models.EnglishArticle{
		Title: "The Power of Habits",
		Content: "Small habits can make a big difference. When you do something every day, " +
			"it becomes part of who you are. Start with one small change and stick to it.",
		Difficulty: "Intermediate",
		Vocabulary: []models.VocabularyItem{
			{Word: "Habit", Definition: "A behavior repeated regularly, often without thinking."},
			{Word: "Difference", Definition: "The way in which things are not the same."},
			{Word: "Stick", Definition: "To continue doing something; to persist."},
		},
	}
}
