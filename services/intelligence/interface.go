package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dragontravel/models"
)

// ContentGenerator is the narrow surface the language helpers need from the
// underlying model client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SentimentAnalyzer scores a free-text comment for polarity and subjectivity.
type SentimentAnalyzer interface {
	Score(ctx context.Context, comment string) (*models.Sentiment, error)
}

// GeminiTranslator renders Spanish (or mixed) messages into English for the
// English extraction patterns.
type GeminiTranslator struct {
	Client ContentGenerator
}

func (t *GeminiTranslator) ToEnglish(ctx context.Context, text string) (string, error) {
	prompt := "Translate the following message to English. " +
		"Reply with the translation only, no commentary:\n" + text
	out, err := t.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("translate to english: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// GeminiSentimentAnalyzer asks the model for a TextBlob-style score pair.
type GeminiSentimentAnalyzer struct {
	Client ContentGenerator
}

func (a *GeminiSentimentAnalyzer) Score(ctx context.Context, comment string) (*models.Sentiment, error) {
	prompt := "Score the sentiment of the following customer comment. " +
		"Respond with JSON only, exactly of the form " +
		`{"polarity": <float -1..1>, "subjectivity": <float 0..1>}` + ":\n" + comment
	out, err := a.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("score sentiment: %w", err)
	}

	var s models.Sentiment
	if err := json.Unmarshal([]byte(stripCodeFence(out)), &s); err != nil {
		return nil, fmt.Errorf("parse sentiment response %q: %w", out, err)
	}
	s.Polarity = clamp(s.Polarity, -1, 1)
	s.Subjectivity = clamp(s.Subjectivity, 0, 1)
	return &s, nil
}

// stripCodeFence undoes the markdown fencing the model sometimes wraps JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
