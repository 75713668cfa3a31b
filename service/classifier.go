package service

import (
	"sort"
	"strings"

	"lexassist-backend/models"
)

// GeneralDomain is the sentinel returned when no domain scores positively.
// It never co-occurs with real domains.
const GeneralDomain = "general"

const (
	actDomainBonus = 3
	maxDomains     = 3
)

// domainKeywords maps each legal domain to its indicator keywords
var domainKeywords = map[string][]string{
	"criminal":              {"murder", "theft", "robbery", "assault", "criminal", "ipc", "bail", "arrest"},
	"civil":                 {"contract", "property", "damages", "breach", "agreement", "specific", "performance"},
	"constitutional":        {"fundamental", "rights", "constitution", "article", "writ", "petition"},
	"corporate":             {"company", "director", "shareholder", "board", "corporate", "sebi"},
	"tax":                   {"income", "tax", "gst", "evasion", "assessment", "return"},
	"family":                {"divorce", "custody", "maintenance", "marriage", "adoption"},
	"intellectual_property": {"patent", "copyright", "trademark", "infringement", "design"},
	"labor":                 {"employee", "employer", "dismissal", "compensation", "industrial", "dispute"},
}

// actDomainHints maps substrings of act names to the domain they indicate
var actDomainHints = []struct {
	Substrings []string
	Domain     string
}{
	{[]string{"penal", "criminal"}, "criminal"},
	{[]string{"contract", "civil"}, "civil"},
	{[]string{"constitution"}, "constitutional"},
	{[]string{"companies"}, "corporate"},
	{[]string{"income tax", "goods and services"}, "tax"},
	{[]string{"marriage", "family"}, "family"},
	{[]string{"patent", "copyright", "trademark"}, "intellectual_property"},
	{[]string{"industrial", "labor", "factory"}, "labor"},
}

// ClassifyDomains scores the text against each domain's keyword list and
// adds a fixed bonus per act whose name hints at the domain. Relevance is
// count/|keywords|*2 capped at 1.0. Returns the top 3 positive-scoring
// domains, or the general sentinel alone when nothing scores.
func ClassifyDomains(text string, acts []string) []models.LegalDomain {
	lower := strings.ToLower(text)

	scores := make(map[string]int)
	for domain, keywords := range domainKeywords {
		for _, kw := range keywords {
			scores[domain] += strings.Count(lower, kw)
		}
	}

	for _, act := range acts {
		actLower := strings.ToLower(act)
		for _, hint := range actDomainHints {
			matched := false
			for _, sub := range hint.Substrings {
				if strings.Contains(actLower, sub) {
					matched = true
					break
				}
			}
			if matched {
				scores[hint.Domain] += actDomainBonus
				break
			}
		}
	}

	var domains []models.LegalDomain
	for name, count := range scores {
		if count <= 0 {
			continue
		}
		relevance := float64(count) / float64(len(domainKeywords[name])) * 2
		if relevance > 1.0 {
			relevance = 1.0
		}
		domains = append(domains, models.LegalDomain{
			Name:           name,
			Relevance:      relevance,
			KeywordMatches: count,
		})
	}

	if len(domains) == 0 {
		return []models.LegalDomain{{Name: GeneralDomain, Relevance: 0, KeywordMatches: 0}}
	}

	sort.SliceStable(domains, func(i, j int) bool {
		if domains[i].Relevance != domains[j].Relevance {
			return domains[i].Relevance > domains[j].Relevance
		}
		return domains[i].Name < domains[j].Name
	})

	if len(domains) > maxDomains {
		domains = domains[:maxDomains]
	}

	return domains
}
