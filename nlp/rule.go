package nlp

import (
	"context"
	"regexp"
	"strings"

	"lexassist-backend/models"
)

// RuleEngine is a regex-based entity extractor. It is deterministic, needs
// no network access, and is the fallback for the Gemini engine.
type RuleEngine struct{}

// NewRuleEngine creates a rule-based extraction engine
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{}
}

var (
	honorificPattern = regexp.MustCompile(`(?:Mr|Mrs|Ms|Shri|Smt|Dr|Justice|Adv)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})`)

	orgPattern = regexp.MustCompile(`([A-Z][A-Za-z&.\s]{2,60}?\s(?:Ltd|Limited|Pvt\.?\s*Ltd|Inc|LLP|Corporation|Company|Bank|Authority|Board|Commission|Tribunal|Department|Ministry))\.?`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s*,?\s*\d{4}`),
		regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}\s*,?\s*\d{4}`),
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	}

	moneyPattern = regexp.MustCompile(`(?:Rs\.?|INR|₹)\s?(\d+(?:,\d+)*(?:\.\d+)?(?:\s*(?:lakhs?|crores?))?)|(\d+(?:,\d+)*(?:\.\d+)?)\s?(?:rupees|Rs\.?|INR|₹)`)

	// Gazetteer of cities likely to appear as forum or party locations
	knownLocations = []string{
		"New Delhi", "Delhi", "Mumbai", "Chennai", "Kolkata", "Bengaluru",
		"Bangalore", "Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		"Chandigarh", "Patna", "Bhopal", "Kochi", "Guwahati", "Nagpur",
	}
)

// ExtractEntities extracts persons, organizations, dates, locations and
// monetary values using regex patterns and a location gazetteer
func (e *RuleEngine) ExtractEntities(ctx context.Context, text string) ([]models.Entity, error) {
	var entities []models.Entity
	seen := make(map[string]bool)

	add := func(t models.EntityType, value string, relevance float64) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		key := string(t) + "|" + value
		if seen[key] {
			return
		}
		seen[key] = true
		entities = append(entities, models.Entity{Type: t, Text: value, Relevance: relevance})
	}

	for _, m := range honorificPattern.FindAllStringSubmatch(text, -1) {
		add(models.EntityPerson, m[1], 1.0)
	}

	for _, m := range orgPattern.FindAllStringSubmatch(text, -1) {
		add(models.EntityOrganization, m[1], 1.0)
	}

	for _, pattern := range datePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			add(models.EntityDate, m, 1.0)
		}
	}

	for _, city := range knownLocations {
		if strings.Contains(text, city) {
			add(models.EntityLocation, city, 1.0)
		}
	}

	for _, m := range moneyPattern.FindAllStringSubmatch(text, -1) {
		amount := m[1]
		if amount == "" {
			amount = m[2]
		}
		if amount != "" {
			add(models.EntityMoney, "Rs. "+amount, 1.0)
		}
	}

	return entities, nil
}
