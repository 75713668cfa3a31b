package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lexassist-backend/models"
)

// knownActs is the catalog of recognized Indian acts. Surface is the form
// matched in text; Canonical is the name recorded regardless of which
// surface form appeared.
type actEntry struct {
	Surface   string
	Canonical string
}

var knownActs = []actEntry{
	{"Indian Penal Code", "Indian Penal Code"},
	{"IPC", "Indian Penal Code"},
	{"Code of Criminal Procedure", "Code of Criminal Procedure"},
	{"CrPC", "Code of Criminal Procedure"},
	{"Code of Civil Procedure", "Code of Civil Procedure"},
	{"CPC", "Code of Civil Procedure"},
	{"Indian Contract Act", "Indian Contract Act"},
	{"Indian Evidence Act", "Indian Evidence Act"},
	{"Constitution of India", "Constitution of India"},
	{"Income Tax Act", "Income Tax Act"},
	{"Companies Act", "Companies Act"},
	{"Specific Relief Act", "Specific Relief Act"},
	{"Arbitration and Conciliation Act", "Arbitration and Conciliation Act"},
	{"Consumer Protection Act", "Consumer Protection Act"},
}

const sectionNumberPattern = `(\d+(?:\([a-zA-Z0-9]\))?(?:-\d+)?)`

type actPatterns struct {
	canonical  string
	actSection *regexp.Regexp // "Act, Section N"
	sectionAct *regexp.Regexp // "Section N of the Act"
}

// compiled once at init; the extractor itself is stateless
var compiledActPatterns = buildActPatterns()

func buildActPatterns() []actPatterns {
	patterns := make([]actPatterns, 0, len(knownActs))
	for _, act := range knownActs {
		escaped := regexp.QuoteMeta(act.Surface)
		patterns = append(patterns, actPatterns{
			canonical:  act.Canonical,
			actSection: regexp.MustCompile(`(?i)` + escaped + `\s*(?:,\s*\d{4})?\s*,?\s*(?:section|sec\.|s\.|§)\s*` + sectionNumberPattern),
			sectionAct: regexp.MustCompile(`(?i)(?:section|sec\.|s\.|§)\s*` + sectionNumberPattern + `\s*of\s*the\s*` + escaped),
		})
	}
	return patterns
}

var (
	airCitationRe    = regexp.MustCompile(`AIR\s*(\d{4})\s*SC\s*(\d+)`)
	airAltCitationRe = regexp.MustCompile(`(\d{4})\s*AIR\s*(\d+)`)
	sccCitationRe    = regexp.MustCompile(`\((\d{4})\)\s*(\d+)\s*SCC\s*(\d+)`)
	scrCitationRe    = regexp.MustCompile(`(\d{4})\s*SCR\s*(\d+)`)

	standaloneActRe = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)* Act,? (?:of )?\d{4})`)

	versusRe = regexp.MustCompile(`([A-Z][A-Za-z\s]+?)\s+(?:versus|vs\.?|v\.)\s+([A-Z][A-Za-z\s]+)`)

	petitionerRolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:(?i:petitioner|plaintiff|appellant|applicant))s?(?:\s+is|\s+are|\s*,|\s*:)?\s+([A-Z][A-Za-z\s]+?)(?:,|\.|\s+and\s|$)`),
		regexp.MustCompile(`([A-Z][A-Za-z\s]+?)(?:\s+is|\s+are)?\s+the\s+(?:(?i:petitioner|plaintiff|appellant|applicant))s?`),
	}
	respondentRolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:(?i:respondent|defendant|opposite party))s?(?:\s+is|\s+are|\s*,|\s*:)?\s+([A-Z][A-Za-z\s]+?)(?:,|\.|\s+and\s|$)`),
		regexp.MustCompile(`([A-Z][A-Za-z\s]+?)(?:\s+is|\s+are)?\s+the\s+(?:(?i:respondent|defendant|opposite party))s?`),
	}
)

// ExtractActSections finds statutory references by trying both surface
// forms for every act in the catalog. Results carry the catalog's canonical
// act name and are deduplicated by (act, section).
func ExtractActSections(text string) []models.ActSection {
	var refs []models.ActSection
	seen := make(map[string]bool)

	add := func(canonical, section string) {
		key := canonical + "|" + section
		if seen[key] {
			return
		}
		seen[key] = true
		refs = append(refs, models.ActSection{
			Act:       canonical,
			Section:   section,
			Relevance: 1.0,
		})
	}

	for _, p := range compiledActPatterns {
		for _, m := range p.actSection.FindAllStringSubmatch(text, -1) {
			add(p.canonical, m[1])
		}
		for _, m := range p.sectionAct.FindAllStringSubmatch(text, -1) {
			add(p.canonical, m[1])
		}
	}

	return refs
}

// ExtractActs returns the distinct act names mentioned in the text: catalog
// matches plus "X Act, NNNN" style names not in the catalog
func ExtractActs(text string) []string {
	var acts []string
	seen := make(map[string]bool)

	for _, ref := range ExtractActSections(text) {
		if !seen[ref.Act] {
			seen[ref.Act] = true
			acts = append(acts, ref.Act)
		}
	}

	for _, m := range standaloneActRe.FindAllString(text, -1) {
		name := strings.TrimSpace(m)
		if !seen[name] {
			seen[name] = true
			acts = append(acts, name)
		}
	}

	return acts
}

// ExtractCitations finds AIR, SCC and SCR reporter citations. Both AIR
// surface forms ("AIR 2017 SC 567" and "2017 AIR 567") are recognized.
// Structural duplicates are dropped.
func ExtractCitations(text string) []models.CaseCitation {
	var citations []models.CaseCitation

	add := func(c models.CaseCitation) {
		for _, existing := range citations {
			if existing.Equal(c) {
				return
			}
		}
		citations = append(citations, c)
	}

	for _, m := range airCitationRe.FindAllStringSubmatch(text, -1) {
		add(models.CaseCitation{
			Type: models.CitationAIR,
			Year: mustAtoi(m[1]),
			Page: mustAtoi(m[2]),
			Raw:  m[0],
		})
	}

	for _, m := range airAltCitationRe.FindAllStringSubmatch(text, -1) {
		add(models.CaseCitation{
			Type: models.CitationAIR,
			Year: mustAtoi(m[1]),
			Page: mustAtoi(m[2]),
			Raw:  m[0],
		})
	}

	for _, m := range sccCitationRe.FindAllStringSubmatch(text, -1) {
		add(models.CaseCitation{
			Type:   models.CitationSCC,
			Year:   mustAtoi(m[1]),
			Volume: mustAtoi(m[2]),
			Page:   mustAtoi(m[3]),
			Raw:    m[0],
		})
	}

	for _, m := range scrCitationRe.FindAllStringSubmatch(text, -1) {
		add(models.CaseCitation{
			Type: models.CitationSCR,
			Year: mustAtoi(m[1]),
			Page: mustAtoi(m[2]),
			Raw:  m[0],
		})
	}

	return citations
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ExtractParties runs role-keyword extraction and a "X versus Y" fallback.
// Keyword matches always win; the versus form only fills an empty slot.
func ExtractParties(text string) models.PartySet {
	parties := models.PartySet{}

	parties.Petitioners = matchRoles(text, petitionerRolePatterns)
	parties.Respondents = matchRoles(text, respondentRolePatterns)

	for _, m := range versusRe.FindAllStringSubmatch(text, -1) {
		first := strings.TrimSpace(m[1])
		second := strings.TrimSpace(m[2])

		if len(first) > 3 && len(parties.Petitioners) == 0 {
			parties.Petitioners = append(parties.Petitioners, first)
		}
		if len(second) > 3 && len(parties.Respondents) == 0 {
			parties.Respondents = append(parties.Respondents, second)
		}
	}

	return parties
}

func matchRoles(text string, patterns []*regexp.Regexp) []string {
	var names []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if len(name) <= 3 || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// stopwords filtered out of keyword extraction. Includes legal boilerplate
// terms that carry no search signal.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"has": true, "have": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "shall": true, "should": true, "can": true,
	"could": true, "may": true, "might": true, "must": true, "that": true,
	"this": true, "these": true, "those": true, "it": true, "its": true,
	"he": true, "she": true, "his": true, "her": true, "they": true,
	"them": true, "their": true, "we": true, "our": true, "you": true,
	"your": true, "not": true, "no": true, "nor": true, "any": true,
	"all": true, "each": true, "such": true, "which": true, "who": true,
	"whom": true, "what": true, "when": true, "where": true, "how": true,
	"also": true, "into": true, "under": true, "over": true, "between": true,
	"now": true, "other": true, "than": true,
	"more": true, "most": true, "some": true, "there": true, "here": true,
	"upon": true, "per": true, "however": true, "therefore": true,
	// Legal boilerplate
	"plaintiff": true, "defendant": true, "petitioner": true,
	"respondent": true, "appellant": true, "versus": true, "vs": true,
	"court": true, "judge": true, "justice": true, "honorable": true,
	"case": true, "matter": true, "petition": true, "appeal": true,
}

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// ExtractKeywords returns the most frequent non-stopword terms, capped at
// 20, ranked by frequency with ties broken by first appearance
func ExtractKeywords(text string) []string {
	counts := make(map[string]int)
	order := make(map[string]int)

	for i, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(word) < 3 || stopwords[word] {
			continue
		}
		if _, ok := counts[word]; !ok {
			order[word] = i
		}
		counts[word]++
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return order[keywords[i]] < order[keywords[j]]
	})

	if len(keywords) > 20 {
		keywords = keywords[:20]
	}

	return keywords
}

// legalTerms are common terms of art used when composing query strings
var legalTerms = []string{
	"murder", "theft", "fraud", "negligence", "damages",
	"contract", "breach", "tort", "liability", "compensation",
	"injunction", "specific performance", "arbitration", "appeal",
	"evidence", "testimony", "witness", "jurisdiction", "bail",
	"conviction", "acquittal", "sentence", "punishment", "rights",
}

// ExtractLegalTerms returns the legal terms of art present in the text,
// in catalog order
func ExtractLegalTerms(text string) []string {
	var found []string
	lower := strings.ToLower(text)
	for _, term := range legalTerms {
		if containsWord(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

func containsWord(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isLetter(text[start-1])
		afterOK := end == len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
