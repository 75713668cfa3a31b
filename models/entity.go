package models

// EntityType classifies an extracted named entity
type EntityType string

const (
	EntityPerson       EntityType = "PERSON"
	EntityOrganization EntityType = "ORGANIZATION"
	EntityDate         EntityType = "DATE"
	EntityLocation     EntityType = "LOCATION"
	EntityMoney        EntityType = "MONEY"
)

// Entity is a single named entity pulled from brief text.
// Relevance is a ranking score in [0,1], not a probability.
type Entity struct {
	Type      EntityType `json:"type"`
	Text      string     `json:"text"`
	Relevance float64    `json:"relevance"`
}

// EntityMap groups entity texts by type, order-preserving and deduplicated
type EntityMap map[EntityType][]string

// BuildEntityMap groups entities by type, dropping exact-text duplicates
// while preserving first-seen order
func BuildEntityMap(entities []Entity) EntityMap {
	m := make(EntityMap)
	seen := make(map[EntityType]map[string]bool)
	for _, e := range entities {
		if seen[e.Type] == nil {
			seen[e.Type] = make(map[string]bool)
		}
		if seen[e.Type][e.Text] {
			continue
		}
		seen[e.Type][e.Text] = true
		m[e.Type] = append(m[e.Type], e.Text)
	}
	return m
}

// PartySet holds the opposing parties recognized in a brief.
// Petitioners covers petitioner/plaintiff/appellant roles; Respondents
// covers respondent/defendant roles.
type PartySet struct {
	Petitioners []string `json:"petitioners"`
	Respondents []string `json:"respondents"`
}

// Petitioner returns the first petitioner, or fallback when none was found
func (p PartySet) Petitioner(fallback string) string {
	if len(p.Petitioners) > 0 {
		return p.Petitioners[0]
	}
	return fallback
}

// Respondent returns the first respondent, or fallback when none was found
func (p PartySet) Respondent(fallback string) string {
	if len(p.Respondents) > 0 {
		return p.Respondents[0]
	}
	return fallback
}
