package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"lexassist-backend/models"
)

// TemplateStore loads document templates from an optional directory and
// falls back to the built-in defaults. Template load failure is never
// fatal.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a template store. dir may be empty, in which
// case only the built-in defaults are served.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// Load returns the template for a document type: the on-disk override if
// present, otherwise the built-in default
func (t *TemplateStore) Load(docType models.DocumentType) string {
	if t.dir != "" {
		path := filepath.Join(t.dir, string(docType)+".txt")
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data)
		}
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read template %s, using default: %v", path, err)
		}
	}

	if tpl, ok := defaultTemplates[docType]; ok {
		return tpl
	}
	return genericTemplate(docType)
}

var (
	leftoverPlaceholderRe = regexp.MustCompile(`\[\w+_PLACEHOLDER\]`)
	multiNewlineRe        = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe          = regexp.MustCompile(` {2,}`)
)

// FillTemplate substitutes section content into the template's
// [NAME_PLACEHOLDER] tokens, blanks any leftover placeholders, resolves
// [DATE], and normalizes whitespace. The whitespace pass is idempotent.
func FillTemplate(template string, sections models.DocumentSections, now time.Time) string {
	for name, content := range sections {
		placeholder := fmt.Sprintf("[%s_PLACEHOLDER]", strings.ToUpper(name))
		template = strings.ReplaceAll(template, placeholder, content)
	}

	// Unresolved placeholders are a defect in output, never pass them through
	template = leftoverPlaceholderRe.ReplaceAllString(template, "")

	template = strings.ReplaceAll(template, "[DATE]", now.Format("02/01/2006"))

	template = multiNewlineRe.ReplaceAllString(template, "\n\n")
	template = multiSpaceRe.ReplaceAllString(template, " ")

	return strings.TrimSpace(template)
}

func genericTemplate(docType models.DocumentType) string {
	return fmt.Sprintf(`[TITLE OF THE %s]

[TITLE_PLACEHOLDER]

[CONTENT_PLACEHOLDER]

[DATE]

[SIGNATURE]
`, strings.ToUpper(string(docType)))
}

var defaultTemplates = map[models.DocumentType]string{
	models.DocumentTypePetition: `IN THE [COURT NAME]

[TITLE_PLACEHOLDER]

MOST RESPECTFULLY SHOWETH:

1. PARTIES:
[PARTIES_PLACEHOLDER]

2. JURISDICTION:
[JURISDICTION_PLACEHOLDER]

3. FACTS OF THE CASE:
[FACTS_PLACEHOLDER]

4. GROUNDS:
[GROUNDS_PLACEHOLDER]

5. LEGAL PROVISIONS APPLICABLE:
[LEGAL_PROVISIONS_PLACEHOLDER]

6. PRAYER:
[PRAYER_PLACEHOLDER]

VERIFICATION:

[VERIFICATION_PLACEHOLDER]
`,
	models.DocumentTypeReply: `[TITLE_PLACEHOLDER]

REPLY ON BEHALF OF THE RESPONDENT/DEFENDANT

MOST RESPECTFULLY SHOWETH:

1. PARTIES:
[PARTIES_PLACEHOLDER]

2. PRELIMINARY OBJECTIONS:
[PRELIMINARY_OBJECTIONS_PLACEHOLDER]

3. REPLY TO FACTS:
[FACTS_REBUTTAL_PLACEHOLDER]

4. LEGAL ARGUMENTS:
[LEGAL_ARGUMENTS_PLACEHOLDER]

5. PRAYER:
[PRAYER_PLACEHOLDER]

VERIFICATION:

[VERIFICATION_PLACEHOLDER]
`,
	models.DocumentTypeRejoinder: `[TITLE_PLACEHOLDER]

MOST RESPECTFULLY SHOWETH:

1. PARTIES:
[PARTIES_PLACEHOLDER]

2. REBUTTAL TO REPLY:
[REBUTTAL_TO_REPLY_PLACEHOLDER]

3. ADDITIONAL FACTS:
[ADDITIONAL_FACTS_PLACEHOLDER]

4. LEGAL ARGUMENTS:
[LEGAL_ARGUMENTS_PLACEHOLDER]

5. PRAYER:
[PRAYER_PLACEHOLDER]

VERIFICATION:

[VERIFICATION_PLACEHOLDER]
`,
	models.DocumentTypeAffidavit: `BEFORE THE [COURT/AUTHORITY NAME]

AFFIDAVIT

[TITLE_PLACEHOLDER]

[DEPONENT_DETAILS_PLACEHOLDER]

[STATEMENTS_PLACEHOLDER]

VERIFICATION:

[DECLARATION_PLACEHOLDER]

[VERIFICATION_PLACEHOLDER]

DEPONENT

ATTESTATION:

[ATTESTATION_PLACEHOLDER]
`,
	models.DocumentTypeLegalNotice: `LEGAL NOTICE

[SENDER_DETAILS_PLACEHOLDER]

[RECIPIENT_DETAILS_PLACEHOLDER]

[SUBJECT_PLACEHOLDER]

Dear Sir/Madam,

Under instructions from and on behalf of my client, I hereby serve upon you the following notice:

FACTS:
[FACTS_PLACEHOLDER]

LEGAL PROVISIONS:
[LEGAL_PROVISIONS_PLACEHOLDER]

DEMAND:
[DEMAND_PLACEHOLDER]

TIMELINE:
[TIMELINE_PLACEHOLDER]

CONSEQUENCES:
[CONSEQUENCES_PLACEHOLDER]

Dated: [DATE]

[ADVOCATE NAME]
`,
	models.DocumentTypeWrittenStatement: `[TITLE_PLACEHOLDER]

WRITTEN STATEMENT ON BEHALF OF THE DEFENDANT

MOST RESPECTFULLY SHOWETH:

1. PARTIES:
[PARTIES_PLACEHOLDER]

2. PRELIMINARY OBJECTIONS:
[PRELIMINARY_OBJECTIONS_PLACEHOLDER]

3. FACTS:
[FACTS_PLACEHOLDER]

4. DEFENSE ARGUMENTS:
[DEFENSE_ARGUMENTS_PLACEHOLDER]

5. LEGAL PROVISIONS:
[LEGAL_PROVISIONS_PLACEHOLDER]

6. PRAYER:
[PRAYER_PLACEHOLDER]

VERIFICATION:

[VERIFICATION_PLACEHOLDER]
`,
}
