package service

import (
	"fmt"
	"strings"

	"lexassist-backend/models"
)

// Output size bounds for the synthesized analysis. The minimums are
// guaranteed by padding with generic text when research is thin.
const (
	minArguments       = 3
	maxArguments       = 5
	minChallenges      = 3
	maxChallenges      = 4
	minRecommendations = 4
	maxRecommendations = 5
	minSummaryLength   = 100
)

var genericArguments = []string{
	"The facts presented establish a prima facie case that meets all statutory requirements.",
	"The opposing party's actions constitute a clear violation of established legal principles.",
	"Procedural irregularities in the opposing party's approach undermine their position.",
}

var genericChallenges = []string{
	"Establishing sufficient evidence to meet the burden of proof may be challenging.",
	"The opposing party may argue that the statute of limitations has expired.",
	"Jurisdictional issues could arise if the matter crosses state boundaries.",
	"Proving the requisite intent element may be difficult without direct evidence.",
	"Quantifying damages precisely could be challenging without expert testimony.",
}

var genericRecommendations = []string{
	"Gather all documentary evidence to support factual assertions in the case.",
	"Consider engaging expert witnesses to strengthen technical aspects of the case.",
	"Prepare detailed affidavits from all relevant witnesses.",
	"Explore alternative dispute resolution options before proceeding to trial.",
	"Conduct thorough research on the presiding judge's previous rulings in similar cases.",
}

// SynthesizeAnalysis produces summary, arguments, challenges and
// recommendations from the brief analysis and ranked research results.
// Every list satisfies its documented minimum regardless of how little
// real research signal was available.
func SynthesizeAnalysis(analysis models.BriefAnalysis, lawSections []models.LawSection, caseHistories []models.CaseHistory) models.AnalysisResult {
	result := models.AnalysisResult{
		Summary:         synthesizeSummary(analysis, lawSections, caseHistories),
		Arguments:       synthesizeArguments(lawSections, caseHistories),
		Challenges:      synthesizeChallenges(analysis.DomainNames()),
		Recommendations: synthesizeRecommendations(analysis.DomainNames(), caseHistories),
	}

	for _, s := range lawSections {
		result.Statutes = append(result.Statutes, s.Label())
	}
	for _, c := range caseHistories {
		result.Precedents = append(result.Precedents, c.Label())
	}

	return result
}

func synthesizeSummary(analysis models.BriefAnalysis, lawSections []models.LawSection, caseHistories []models.CaseHistory) string {
	var parts []string

	domains := analysis.DomainNames()
	if len(domains) > 0 && domains[0] != GeneralDomain {
		parts = append(parts, fmt.Sprintf("This case involves %s law issues.", strings.Join(domains, ", ")))
	}

	if len(analysis.Acts) > 0 {
		acts := analysis.Acts
		actsStr := strings.Join(limitTo(acts, 2), ", ")
		if len(acts) > 2 {
			actsStr += fmt.Sprintf(", and %d other acts", len(acts)-2)
		}
		parts = append(parts, fmt.Sprintf("The relevant legislation includes %s.", actsStr))
	}

	if len(lawSections) > 0 {
		var top []string
		for _, s := range limitSections(lawSections, 2) {
			top = append(top, s.Label())
		}
		sectionsStr := strings.Join(top, ", ")
		if len(lawSections) > 2 {
			sectionsStr += fmt.Sprintf(", and %d other sections", len(lawSections)-2)
		}
		parts = append(parts, fmt.Sprintf("Key applicable provisions include %s.", sectionsStr))
	}

	if len(caseHistories) > 0 {
		casesStr := caseHistories[0].Label()
		if len(caseHistories) > 1 {
			casesStr += fmt.Sprintf(", and %d other relevant precedents", len(caseHistories)-1)
		}
		parts = append(parts, fmt.Sprintf("Relevant case law includes %s.", casesStr))
	}

	summary := strings.Join(parts, " ")
	if len(summary) < minSummaryLength {
		summary += " Based on the analysis of applicable laws and precedents, there are several legal strategies that could be pursued in this matter."
		summary = strings.TrimSpace(summary)
	}

	return summary
}

func synthesizeArguments(lawSections []models.LawSection, caseHistories []models.CaseHistory) []string {
	var arguments []string

	for _, section := range limitSections(lawSections, 3) {
		content := truncateRunes(section.Content, 100)
		arguments = append(arguments, fmt.Sprintf("Under %s Section %s, you can argue that %s",
			section.Act, section.SectionNumber, content))
	}

	for i, c := range caseHistories {
		if i >= 2 {
			break
		}
		arguments = append(arguments, fmt.Sprintf("The precedent established in %s (%s) supports the position that %s",
			c.Parties, c.Citation, c.Holdings))
	}

	arguments = padList(arguments, genericArguments, minArguments)
	return capList(arguments, maxArguments)
}

func synthesizeChallenges(domains []string) []string {
	var challenges []string

	if containsString(domains, "criminal") {
		challenges = append(challenges, "Proving criminal intent beyond reasonable doubt will require substantial evidence.")
	}
	if containsString(domains, "civil") {
		challenges = append(challenges, "Establishing causation between the breach and claimed damages may be difficult.")
	}
	if containsString(domains, "constitutional") {
		challenges = append(challenges, "Constitutional challenges face a high standard of review from the courts.")
	}

	challenges = padList(challenges, genericChallenges, minChallenges)
	return capList(challenges, maxChallenges)
}

func synthesizeRecommendations(domains []string, caseHistories []models.CaseHistory) []string {
	var recommendations []string

	if containsString(domains, "criminal") {
		recommendations = append(recommendations, "Scrutinize the investigation procedure for any procedural lapses that could be challenged.")
	}
	if containsString(domains, "civil") {
		recommendations = append(recommendations, "Quantify damages precisely with supporting documentation and expert opinions.")
	}
	if containsString(domains, "corporate") {
		recommendations = append(recommendations, "Review all corporate governance documents and board resolutions relevant to the matter.")
	}

	if len(caseHistories) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Cite %s prominently in submissions as it establishes favorable precedent.",
			caseHistories[0].Parties))
	}

	recommendations = padList(recommendations, genericRecommendations, minRecommendations)
	return capList(recommendations, maxRecommendations)
}

// truncateRunes shortens s to at most n characters, cutting on a rune
// boundary and marking the cut with an ellipsis. Connector snippets can
// carry multi-byte text, so byte slicing is not safe here.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// padList appends generic entries until the list reaches min length
func padList(list, generics []string, min int) []string {
	for i := 0; len(list) < min && i < len(generics); i++ {
		list = append(list, generics[i])
	}
	return list
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func limitTo(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func limitSections(sections []models.LawSection, n int) []models.LawSection {
	if len(sections) > n {
		return sections[:n]
	}
	return sections
}
