// Package nlp provides named-entity extraction over legal brief text.
// Two engines are available: a regex rule engine that works offline and a
// Gemini-backed engine that falls back to the rule engine on failure.
package nlp

import (
	"context"
	"regexp"
	"strings"

	"lexassist-backend/models"
)

// Engine extracts named entities from free text
type Engine interface {
	ExtractEntities(ctx context.Context, text string) ([]models.Entity, error)
}

var sentenceSplit = regexp.MustCompile(`(?m)(?:[.!?])\s+`)

// SplitSentences breaks text into trimmed, non-empty sentences
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(p), ".!?"))
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
