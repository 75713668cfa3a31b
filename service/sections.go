package service

import (
	"fmt"
	"strings"
	"time"

	"lexassist-backend/models"
	"lexassist-backend/nlp"
)

// sectionInput carries everything the section builders draw on. Overrides
// short-circuit generation for any section; every builder checks them first.
type sectionInput struct {
	docType   models.DocumentType
	analysis  models.BriefAnalysis
	law       []models.LawSection
	cases     []models.CaseHistory
	result    models.AnalysisResult
	overrides map[string]string
	court     string
	now       time.Time
}

func (in sectionInput) override(section string) (string, bool) {
	if in.overrides == nil {
		return "", false
	}
	v, ok := in.overrides[section]
	if ok && v != "" {
		return v, true
	}
	return "", false
}

func (in sectionInput) displayDate() string {
	return in.now.Format("02/01/2006")
}

func (in sectionInput) domains() []string {
	return in.analysis.DomainNames()
}

func (in sectionInput) location(fallback string) string {
	if locs := in.analysis.EntityMap[models.EntityLocation]; len(locs) > 0 {
		return locs[0]
	}
	return fallback
}

// generateSections builds every section in the document type's schema.
// Sections never come back empty; missing data degrades to bracketed
// placeholder tokens.
func generateSections(in sectionInput) models.DocumentSections {
	sections := make(models.DocumentSections)

	builders := map[string]func(sectionInput) string{
		"title":                  buildTitle,
		"parties":                buildParties,
		"facts":                  buildFacts,
		"legal_provisions":       buildLegalProvisions,
		"prayer":                 buildPrayer,
		"verification":           buildVerification,
		"jurisdiction":           buildJurisdiction,
		"grounds":                buildGrounds,
		"preliminary_objections": buildPreliminaryObjections,
		"facts_rebuttal":         buildFactsRebuttal,
		"legal_arguments":        buildLegalArguments,
		"rebuttal_to_reply":      buildRebuttalToReply,
		"additional_facts":       buildAdditionalFacts,
		"deponent_details":       buildDeponentDetails,
		"statements":             buildAffidavitStatements,
		"declaration":            buildAffidavitDeclaration,
		"attestation":            buildAttestation,
		"defense_arguments":      buildLegalArguments,
		"sender_details":         buildSenderDetails,
		"recipient_details":      buildRecipientDetails,
		"subject":                buildNoticeSubject,
		"demand":                 buildNoticeDemand,
		"timeline":               buildNoticeTimeline,
		"consequences":           buildNoticeConsequences,
	}

	for _, name := range in.docType.SectionNames() {
		if text, ok := in.override(name); ok {
			sections[name] = text
			continue
		}
		if builder, ok := builders[name]; ok {
			sections[name] = builder(in)
		}
	}

	return sections
}

func buildTitle(in sectionInput) string {
	court := in.court
	if court == "" {
		court = "APPROPRIATE COURT"
	}

	domains := in.domains()
	var caseType string
	switch {
	case containsString(domains, "criminal"):
		caseType = "CRIMINAL CASE"
	case containsString(domains, "civil"):
		caseType = "CIVIL SUIT"
	case containsString(domains, "constitutional"):
		caseType = "WRIT PETITION"
	case containsString(domains, "corporate"):
		caseType = "COMPANY PETITION"
	case containsString(domains, "tax"):
		caseType = "TAX APPEAL"
	default:
		caseType = "PETITION"
	}

	petitioner := in.analysis.Parties.Petitioner("PETITIONER NAME")
	respondent := in.analysis.Parties.Respondent("RESPONDENT NAME")

	switch in.docType {
	case models.DocumentTypePetition:
		return fmt.Sprintf("IN THE %s\n\n%s\n\nIN THE MATTER OF:\n%s ... PETITIONER\n\nVERSUS\n\n%s ... RESPONDENT",
			court, caseType, petitioner, respondent)
	case models.DocumentTypeReply, models.DocumentTypeWrittenStatement:
		return fmt.Sprintf("IN THE %s\n\n%s\n\nIN THE MATTER OF:\n%s ... PETITIONER/PLAINTIFF\n\nVERSUS\n\n%s ... RESPONDENT/DEFENDANT",
			court, caseType, petitioner, respondent)
	case models.DocumentTypeRejoinder:
		return fmt.Sprintf("IN THE %s\n\n%s\n\nIN THE MATTER OF:\n%s ... PETITIONER/PLAINTIFF\n\nVERSUS\n\n%s ... RESPONDENT/DEFENDANT\n\nREJOINDER ON BEHALF OF THE PETITIONER/PLAINTIFF",
			court, caseType, petitioner, respondent)
	default:
		return fmt.Sprintf("IN THE MATTER OF:\n%s ... PETITIONER\n\nVERSUS\n\n%s ... RESPONDENT", petitioner, respondent)
	}
}

func buildParties(in sectionInput) string {
	organizations := in.analysis.EntityMap[models.EntityOrganization]

	isOrg := func(name string) bool {
		for _, org := range organizations {
			if strings.Contains(name, org) || strings.Contains(org, name) {
				return true
			}
		}
		return false
	}

	petitionerLabel := "1. The Plaintiff is "
	respondentLabel := "2. The Defendant is "
	if in.docType == models.DocumentTypePetition || in.docType == models.DocumentTypeRejoinder {
		petitionerLabel = "1. The Petitioner is "
		respondentLabel = "2. The Respondent is "
	}

	var b strings.Builder

	if len(in.analysis.Parties.Petitioners) > 0 {
		petitioner := in.analysis.Parties.Petitioners[0]
		b.WriteString(petitionerLabel)
		if isOrg(petitioner) {
			b.WriteString(fmt.Sprintf("%s, a company/organization registered under the laws of India, having its registered office at [ADDRESS].", petitioner))
		} else {
			b.WriteString(fmt.Sprintf("%s, aged about [AGE] years, resident of [ADDRESS].", petitioner))
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString("1. The Petitioner/Plaintiff details: [TO BE FILLED]\n\n")
	}

	if len(in.analysis.Parties.Respondents) > 0 {
		respondent := in.analysis.Parties.Respondents[0]
		b.WriteString(respondentLabel)
		if isOrg(respondent) {
			b.WriteString(fmt.Sprintf("%s, a company/organization registered under the laws of India, having its registered office at [ADDRESS].", respondent))
		} else {
			b.WriteString(fmt.Sprintf("%s, aged about [AGE] years, resident of [ADDRESS].", respondent))
		}
	} else {
		b.WriteString("2. The Respondent/Defendant details: [TO BE FILLED]")
	}

	return b.String()
}

func buildJurisdiction(in sectionInput) string {
	location := in.location("[LOCATION]")
	domains := in.domains()

	switch {
	case containsString(domains, "criminal"):
		return fmt.Sprintf("This Hon'ble Court has jurisdiction to try and entertain this petition as the alleged offence occurred within the territorial jurisdiction of this Court at %s.", location)
	case containsString(domains, "civil"):
		return fmt.Sprintf("This Hon'ble Court has jurisdiction to try and entertain this suit as the subject matter of the dispute is situated within the territorial jurisdiction of this Court at %s, and the cause of action arose within the jurisdiction of this Court.", location)
	case containsString(domains, "constitutional"):
		return "This Hon'ble Court has jurisdiction to entertain this petition under Article 226 of the Constitution of India as the cause of action arose within the territorial jurisdiction of this Court."
	default:
		return fmt.Sprintf("This Hon'ble Court has jurisdiction to try and entertain this matter as the cause of action arose within the territorial jurisdiction of this Court at %s.", location)
	}
}

func buildFacts(in sectionInput) string {
	summary := in.analysis.Summary
	if summary == "" {
		return "The facts of the case are as follows: [FACTS TO BE FILLED]"
	}

	sentences := nlp.SplitSentences(summary)

	var b strings.Builder
	b.WriteString("The facts of the case are as follows:\n\n")

	for i, sentence := range sentences {
		b.WriteString(fmt.Sprintf("%d. %s.\n\n", i+1, sentence))
	}

	next := len(sentences) + 1

	if dates := in.analysis.EntityMap[models.EntityDate]; len(dates) > 0 {
		b.WriteString(fmt.Sprintf("%d. The relevant dates in this matter are: %s.\n\n",
			next, strings.Join(limitTo(dates, 3), ", ")))
		next++
	}

	money := in.analysis.EntityMap[models.EntityMoney]
	if len(money) > 0 && (containsString(in.domains(), "civil") || strings.Contains(strings.ToLower(summary), "contract")) {
		b.WriteString(fmt.Sprintf("%d. The monetary value involved in this dispute is approximately %s.\n\n",
			next, strings.Join(limitTo(money, 2), " and ")))
	}

	return b.String()
}

func buildLegalProvisions(in sectionInput) string {
	if len(in.law) == 0 {
		return "The following legal provisions are applicable to this case: [TO BE FILLED]"
	}

	var b strings.Builder
	b.WriteString("The following legal provisions are applicable to this case:\n\n")

	for i, section := range in.law {
		b.WriteString(fmt.Sprintf("%d. %s - Section %s:\n", i+1, section.Act, section.SectionNumber))
		b.WriteString(fmt.Sprintf("   %s\n\n", section.Content))
	}

	return b.String()
}

func buildGrounds(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The petition is filed on the following grounds:\n\n")

	n := 1
	for _, argument := range in.result.Arguments {
		b.WriteString(fmt.Sprintf("%d. %s\n\n", n, argument))
		n++
	}

	for _, section := range limitSections(in.law, 2) {
		content := truncateRunes(section.Content, 150)
		b.WriteString(fmt.Sprintf("%d. As per %s Section %s, which states that '%s', the petitioner has a valid claim.\n\n",
			n, section.Act, section.SectionNumber, content))
		n++
	}

	for i, c := range in.cases {
		if i >= 2 {
			break
		}
		b.WriteString(fmt.Sprintf("%d. The Hon'ble Court in the case of %s (%s) has held that %s This precedent directly applies to the present case.\n\n",
			n, c.Parties, c.Citation, c.Holdings))
		n++
	}

	return b.String()
}

func buildPrayer(in sectionInput) string {
	domains := in.domains()
	isPetition := in.docType == models.DocumentTypePetition
	isDefense := in.docType == models.DocumentTypeReply || in.docType == models.DocumentTypeWrittenStatement

	var b strings.Builder
	b.WriteString("In light of the facts and circumstances of the case, it is most respectfully prayed that this Hon'ble Court may be pleased to:\n\n")

	n := 1
	write := func(line string) {
		b.WriteString(fmt.Sprintf("%d. %s\n\n", n, line))
		n++
	}

	switch {
	case containsString(domains, "criminal"):
		if isPetition {
			write("Direct the respondent to register an FIR and conduct a fair investigation into the matter;")
			write("Grant compensation to the petitioner for the losses suffered;")
		} else if isDefense {
			write("Dismiss the petition/complaint as it is devoid of merits;")
			write("Exonerate the respondent/defendant from all charges;")
		}
	case containsString(domains, "civil"):
		if isPetition {
			write("Declare that the petitioner is entitled to the reliefs claimed;")
			write("Direct the respondent to pay damages/compensation as deemed fit by this Hon'ble Court;")
		} else if isDefense {
			write("Dismiss the suit with costs as it is devoid of merits;")
			write("Declare that the plaintiff is not entitled to any of the reliefs claimed;")
		}
	case containsString(domains, "constitutional"):
		if isPetition {
			write("Issue a writ of mandamus or any other appropriate writ directing the respondent to perform its statutory duties;")
			write("Declare the actions of the respondent as illegal, arbitrary, and violative of the petitioner's fundamental rights;")
		} else if isDefense {
			write("Dismiss the writ petition as it is not maintainable;")
			write("Declare that the respondent has acted within the framework of law;")
		}
	default:
		if isPetition {
			write("Grant the reliefs as prayed for in the petition;")
			write("Award costs of the proceedings to the petitioner;")
		} else if isDefense {
			write("Dismiss the petition/suit with costs;")
			write("Grant such other relief as deemed fit in favor of the respondent/defendant;")
		}
	}

	// Relief-flavored recommendations from the analysis
	for _, rec := range limitTo(in.result.Recommendations, 2) {
		lower := strings.ToLower(rec)
		if strings.Contains(lower, "prayer") || strings.Contains(lower, "relief") {
			write(rec)
		}
	}

	write("Pass any other order or direction as this Hon'ble Court may deem fit and proper in the interest of justice.")

	return strings.TrimSuffix(b.String(), "\n\n")
}

func buildVerification(in sectionInput) string {
	location := in.location("[PLACE]")
	today := in.displayDate()

	switch in.docType {
	case models.DocumentTypePetition, models.DocumentTypeRejoinder:
		verifier := in.analysis.Parties.Petitioner("[PETITIONER NAME]")
		return fmt.Sprintf("Verified at %s on this %s that the contents of the above petition are true and correct to the best of my knowledge and belief and nothing material has been concealed therefrom.\n\n%s\nPETITIONER",
			location, today, verifier)
	case models.DocumentTypeReply, models.DocumentTypeWrittenStatement:
		verifier := in.analysis.Parties.Respondent("[RESPONDENT NAME]")
		return fmt.Sprintf("Verified at %s on this %s that the contents of the above reply are true and correct to the best of my knowledge and belief and nothing material has been concealed therefrom.\n\n%s\nRESPONDENT",
			location, today, verifier)
	default:
		return fmt.Sprintf("Verified at %s on this %s that the contents of the above document are true and correct to the best of my knowledge and belief and nothing material has been concealed therefrom.\n\n[NAME]\n[DESIGNATION]",
			location, today)
	}
}

func buildPreliminaryObjections(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The respondent/defendant raises the following preliminary objections:\n\n")

	if len(in.result.Challenges) > 0 {
		for i, challenge := range in.result.Challenges {
			b.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, challenge))
		}
	} else {
		b.WriteString("1. The petition/plaint is not maintainable in law and on facts.\n\n")
		b.WriteString("2. The petition/plaint is barred by limitation.\n\n")
		b.WriteString("3. The petitioner/plaintiff has no locus standi to file the present petition/suit.\n\n")
		b.WriteString("4. The petition/plaint does not disclose any cause of action against the respondent/defendant.\n\n")
	}

	return b.String()
}

func buildFactsRebuttal(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The respondent/defendant submits the following in response to the alleged facts:\n\n")
	b.WriteString("1. The facts stated in the petition/plaint are denied as incorrect and misleading, except those that are specifically admitted herein.\n\n")
	b.WriteString("2. The respondent/defendant denies all allegations of wrongdoing or liability as alleged in the petition/plaint.\n\n")

	domains := in.domains()
	switch {
	case containsString(domains, "criminal"):
		b.WriteString("3. The allegations of criminal conduct are vehemently denied as false and baseless. The respondent/defendant has not committed any offense as alleged.\n\n")
		b.WriteString("4. The complaint is filed with malafide intentions to harass and pressurize the respondent/defendant.\n\n")
	case containsString(domains, "civil"):
		b.WriteString("3. The alleged breach of contract/agreement is denied. The respondent/defendant has fulfilled all obligations as per the terms of the agreement.\n\n")
		b.WriteString("4. The petitioner/plaintiff has failed to disclose material facts and has approached this Hon'ble Court with unclean hands.\n\n")
	case containsString(domains, "constitutional"):
		b.WriteString("3. The respondent has acted within the framework of law and constitutional provisions. No fundamental right of the petitioner has been violated.\n\n")
		b.WriteString("4. The petitioner has alternative remedies available which have not been exhausted before approaching this Hon'ble Court.\n\n")
	}

	return b.String()
}

// counterArgumentReplacer softens affirmative argument phrasing into the
// defensive register used in replies
var counterArgumentReplacer = strings.NewReplacer(
	"establishes", "fails to establish",
	"clearly", "allegedly",
	"proves", "attempts to prove",
	"demonstrates", "claims to demonstrate",
)

func buildLegalArguments(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The following legal arguments are submitted for consideration:\n\n")

	n := 1
	for i, arg := range in.result.Arguments {
		if i >= 3 {
			break
		}
		b.WriteString(fmt.Sprintf("%d. %s\n\n", n, counterArgumentReplacer.Replace(arg)))
		n++
	}

	for _, section := range limitSections(in.law, 2) {
		b.WriteString(fmt.Sprintf("%d. With respect to %s Section %s, the correct interpretation does not support the petitioner's/plaintiff's claim because [SPECIFIC LEGAL REASONING].\n\n",
			n, section.Act, section.SectionNumber))
		n++
	}

	for i, c := range in.cases {
		if i >= 2 {
			break
		}
		b.WriteString(fmt.Sprintf("%d. The case of %s (%s) cited by the petitioner/plaintiff is distinguishable from the present case because the facts and circumstances are materially different.\n\n",
			n, c.Parties, c.Citation))
		n++
	}

	return b.String()
}

func buildRebuttalToReply(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The petitioner/plaintiff submits the following in response to the reply/written statement:\n\n")
	b.WriteString("1. The preliminary objections raised in the reply/written statement are misconceived and liable to be rejected.\n\n")
	b.WriteString("2. The respondent/defendant has failed to specifically deny the material allegations in the petition/plaint, which amounts to admission of those facts.\n\n")

	n := 3
	for _, challenge := range limitTo(in.result.Challenges, 2) {
		b.WriteString(fmt.Sprintf("%d. The respondent's/defendant's contention that %s is incorrect and misleading because [SPECIFIC REBUTTAL].\n\n",
			n, challenge))
		n++
	}

	return b.String()
}

func buildAdditionalFacts(in sectionInput) string {
	var b strings.Builder
	b.WriteString("The petitioner/plaintiff submits the following additional facts that have come to light:\n\n")
	b.WriteString("1. After filing the petition/plaint, the petitioner/plaintiff has discovered additional evidence that further strengthens the case.\n\n")
	b.WriteString("2. The respondent/defendant has continued with the alleged illegal activities even after notice of this proceeding.\n\n")

	domains := in.domains()
	switch {
	case containsString(domains, "criminal"):
		b.WriteString("3. New witnesses have come forward who can testify to the respondent's/defendant's involvement in the alleged offense.\n\n")
	case containsString(domains, "civil"):
		b.WriteString("3. Additional documents have been discovered that conclusively prove the breach of contract/agreement by the respondent/defendant.\n\n")
	case containsString(domains, "constitutional"):
		b.WriteString("3. Recent actions by the respondent further demonstrate the pattern of constitutional violations alleged in the petition.\n\n")
	}

	return b.String()
}

func buildDeponentDetails(in sectionInput) string {
	deponent := in.analysis.Parties.Petitioner("")
	if deponent == "" {
		if persons := in.analysis.EntityMap[models.EntityPerson]; len(persons) > 0 {
			deponent = persons[0]
		} else {
			deponent = "[DEPONENT NAME]"
		}
	}

	location := in.location("[ADDRESS]")

	return fmt.Sprintf("I, %s, aged about [AGE] years, [OCCUPATION], [NATIONALITY], resident of %s, do hereby solemnly affirm and declare as under:",
		deponent, location)
}

func buildAffidavitStatements(in sectionInput) string {
	sentences := nlp.SplitSentences(in.analysis.Summary)

	var b strings.Builder
	for i, sentence := range sentences {
		b.WriteString(fmt.Sprintf("%d. %s.\n\n", i+1, sentence))
	}

	n := len(sentences) + 1
	b.WriteString(fmt.Sprintf("%d. I am well conversant with the facts and circumstances of the case and am competent to swear this affidavit.\n\n", n))
	b.WriteString(fmt.Sprintf("%d. I have read and understood the contents of the accompanying petition/application and the same are true and correct to my knowledge.\n\n", n+1))
	b.WriteString(fmt.Sprintf("%d. The annexures attached to the petition/application are true copies of their respective originals.\n\n", n+2))

	return b.String()
}

func buildAffidavitDeclaration(in sectionInput) string {
	return "I, the deponent above named, do hereby verify that the contents of this affidavit are true and correct to my knowledge, no part of it is false and nothing material has been concealed therefrom."
}

func buildAttestation(in sectionInput) string {
	return fmt.Sprintf("Solemnly affirmed and signed before me on this %s at [PLACE].\n\nNOTARY PUBLIC/OATH COMMISSIONER", in.displayDate())
}

func buildSenderDetails(in sectionInput) string {
	sender := in.analysis.Parties.Petitioner("")
	if sender == "" {
		if persons := in.analysis.EntityMap[models.EntityPerson]; len(persons) > 0 {
			sender = persons[0]
		} else {
			sender = "[SENDER NAME]"
		}
	}

	return fmt.Sprintf("FROM:\n%s\n[ADDRESS]\n[CONTACT DETAILS]\n\nTHROUGH:\n[ADVOCATE NAME]\n[ADVOCATE ADDRESS]\n[ADVOCATE CONTACT DETAILS]", sender)
}

func buildRecipientDetails(in sectionInput) string {
	recipient := in.analysis.Parties.Respondent("[RECIPIENT NAME]")
	return fmt.Sprintf("TO:\n%s\n[ADDRESS]\n[CONTACT DETAILS]", recipient)
}

func buildNoticeSubject(in sectionInput) string {
	domains := in.domains()

	subject := "SUBJECT: "
	switch {
	case containsString(domains, "criminal"):
		subject += "LEGAL NOTICE FOR FILING CRIMINAL COMPLAINT"
	case containsString(domains, "civil"):
		subject += "LEGAL NOTICE FOR BREACH OF CONTRACT AND RECOVERY OF DAMAGES"
	case containsString(domains, "corporate"):
		subject += "LEGAL NOTICE FOR CORPORATE DISPUTE"
	default:
		subject += "LEGAL NOTICE"
	}

	if len(in.analysis.Acts) > 0 {
		subject += fmt.Sprintf(" UNDER %s", in.analysis.Acts[0])
	}

	return subject
}

func buildNoticeDemand(in sectionInput) string {
	var b strings.Builder
	b.WriteString("In view of the above facts and circumstances, you are hereby called upon to:\n\n")

	if len(in.result.Recommendations) > 0 {
		for i, rec := range limitTo(in.result.Recommendations, 3) {
			b.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, rec))
		}
	} else {
		b.WriteString("1. [SPECIFIC DEMAND 1]\n\n")
		b.WriteString("2. [SPECIFIC DEMAND 2]\n\n")
		b.WriteString("3. Pay the legal costs of this notice.\n\n")
	}

	return b.String()
}

func buildNoticeTimeline(in sectionInput) string {
	return "You are hereby given [NUMBER] days from the receipt of this notice to comply with the above demands, failing which my client will be constrained to initiate appropriate legal proceedings against you, both civil and criminal, in the appropriate forum, at your risk and cost."
}

func buildNoticeConsequences(in sectionInput) string {
	var b strings.Builder
	b.WriteString("Please note that if you fail to comply with the above demands within the stipulated time, you will be liable for the following consequences:\n\n")

	cited := limitSections(in.law, 2)
	for i, section := range cited {
		b.WriteString(fmt.Sprintf("%d. Legal action under %s Section %s.\n\n", i+1, section.Act, section.SectionNumber))
	}

	b.WriteString(fmt.Sprintf("%d. Payment of damages, compensation, and legal costs.\n\n", len(cited)+1))
	b.WriteString(fmt.Sprintf("%d. Any other legal remedy available under the law.\n\n", len(cited)+2))

	return b.String()
}
