package models

import "time"

// DocumentType identifies one of the supported legal filing templates
type DocumentType string

const (
	DocumentTypePetition         DocumentType = "petition"
	DocumentTypeReply            DocumentType = "reply"
	DocumentTypeRejoinder        DocumentType = "rejoinder"
	DocumentTypeAffidavit        DocumentType = "affidavit"
	DocumentTypeLegalNotice      DocumentType = "legal_notice"
	DocumentTypeWrittenStatement DocumentType = "written_statement"
)

// documentStructures maps each document type to its ordered section schema.
// The order here is the order sections appear in the assembled document.
var documentStructures = map[DocumentType][]string{
	DocumentTypePetition: {
		"title", "jurisdiction", "parties", "facts", "grounds",
		"legal_provisions", "prayer", "verification",
	},
	DocumentTypeReply: {
		"title", "parties", "preliminary_objections", "facts_rebuttal",
		"legal_arguments", "prayer", "verification",
	},
	DocumentTypeRejoinder: {
		"title", "parties", "rebuttal_to_reply", "additional_facts",
		"legal_arguments", "prayer", "verification",
	},
	DocumentTypeAffidavit: {
		"title", "deponent_details", "verification", "statements",
		"declaration", "attestation",
	},
	DocumentTypeLegalNotice: {
		"sender_details", "recipient_details", "subject", "facts",
		"legal_provisions", "demand", "timeline", "consequences",
	},
	DocumentTypeWrittenStatement: {
		"title", "parties", "preliminary_objections", "facts",
		"defense_arguments", "legal_provisions", "prayer", "verification",
	},
}

// SectionNames returns the ordered section schema for the document type,
// or nil for an unknown type.
func (t DocumentType) SectionNames() []string {
	return documentStructures[t]
}

// Valid reports whether the document type is one of the supported templates
func (t DocumentType) Valid() bool {
	_, ok := documentStructures[t]
	return ok
}

// DocumentTypes lists the supported document types
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypePetition,
		DocumentTypeReply,
		DocumentTypeRejoinder,
		DocumentTypeAffidavit,
		DocumentTypeLegalNotice,
		DocumentTypeWrittenStatement,
	}
}

// DocumentSections maps section names to their generated text
type DocumentSections map[string]string

// DraftMetadata describes the provenance of a drafted document
type DraftMetadata struct {
	DocumentType        DocumentType `json:"document_type"`
	GeneratedAt         time.Time    `json:"generated_at"`
	BasedOnBriefExcerpt string       `json:"based_on_brief_excerpt,omitempty"`
	Domains             []string     `json:"domains"`
	ActsReferenced      []string     `json:"acts_referenced"`
	CasesCited          []string     `json:"cases_cited"`
}

// DraftedDocument is the output of the document generator
type DraftedDocument struct {
	Content  string           `json:"content"`
	Metadata DraftMetadata    `json:"metadata"`
	Sections DocumentSections `json:"sections"`
}
