package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"lexassist-backend/models"

	"github.com/google/generative-ai-go/genai"
)

const geminiModel = "gemini-2.0-flash"

// GeminiEngine extracts entities with a Gemini model. Every failure path
// degrades to the fallback engine so analysis never blocks on the API.
type GeminiEngine struct {
	client   *genai.Client
	fallback Engine
}

// NewGeminiEngine creates a Gemini-backed engine. fallback must not be nil.
func NewGeminiEngine(client *genai.Client, fallback Engine) *GeminiEngine {
	return &GeminiEngine{
		client:   client,
		fallback: fallback,
	}
}

type geminiEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const extractionPrompt = `Extract named entities from the following Indian legal brief.
Return ONLY a JSON array of objects with fields "type" and "text".
"type" must be one of: PERSON, ORGANIZATION, DATE, LOCATION, MONEY.
Do not include any other text.

Brief:
%s`

// ExtractEntities asks Gemini for entities and falls back to the rule
// engine when the client is missing, the call fails, or the response
// cannot be parsed
func (e *GeminiEngine) ExtractEntities(ctx context.Context, text string) ([]models.Entity, error) {
	if e.client == nil {
		return e.fallback.ExtractEntities(ctx, text)
	}

	model := e.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		log.Printf("Warning: Gemini entity extraction failed, using rule engine: %v", err)
		return e.fallback.ExtractEntities(ctx, text)
	}

	raw := responseText(resp)
	parsed, err := parseEntities(raw)
	if err != nil {
		log.Printf("Warning: could not parse Gemini entity response, using rule engine: %v", err)
		return e.fallback.ExtractEntities(ctx, text)
	}

	return parsed, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}

var validEntityTypes = map[string]models.EntityType{
	"PERSON":       models.EntityPerson,
	"ORGANIZATION": models.EntityOrganization,
	"ORG":          models.EntityOrganization,
	"DATE":         models.EntityDate,
	"LOCATION":     models.EntityLocation,
	"GPE":          models.EntityLocation,
	"MONEY":        models.EntityMoney,
}

func parseEntities(raw string) ([]models.Entity, error) {
	// Models sometimes wrap JSON in markdown fences
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var items []geminiEntity
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	entities := make([]models.Entity, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		t, ok := validEntityTypes[strings.ToUpper(strings.TrimSpace(item.Type))]
		if !ok {
			continue
		}
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		key := string(t) + "|" + text
		if seen[key] {
			continue
		}
		seen[key] = true
		entities = append(entities, models.Entity{Type: t, Text: text, Relevance: 1.0})
	}

	return entities, nil
}
