package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

func TestFillTemplate(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	template := "TITLE: [TITLE_PLACEHOLDER]\n\nFACTS: [FACTS_PLACEHOLDER]\n\nDated: [DATE]"
	sections := models.DocumentSections{
		"title": "IN THE HIGH COURT",
		"facts": "The facts are brief.",
	}

	out := FillTemplate(template, sections, now)

	assert.Contains(t, out, "TITLE: IN THE HIGH COURT")
	assert.Contains(t, out, "FACTS: The facts are brief.")
	assert.Contains(t, out, "Dated: 15/06/2024")
}

func TestFillTemplateBlanksLeftoverPlaceholders(t *testing.T) {
	template := "A: [TITLE_PLACEHOLDER]\nB: [UNKNOWN_PLACEHOLDER]"
	out := FillTemplate(template, models.DocumentSections{"title": "done"}, time.Now())

	assert.Contains(t, out, "A: done")
	assert.NotContains(t, out, "_PLACEHOLDER")
	assert.Contains(t, out, "B:")
}

func TestFillTemplateNormalizesWhitespace(t *testing.T) {
	template := "line one\n\n\n\n\nline two  with   spaces"
	out := FillTemplate(template, nil, time.Now())

	assert.Equal(t, "line one\n\nline two with spaces", out)
}

func TestFillTemplateTrimsResult(t *testing.T) {
	out := FillTemplate("\n\n  content  \n\n", nil, time.Now())
	assert.Equal(t, "content", out)
}

func TestFillTemplateIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	template := "X: [TITLE_PLACEHOLDER]\n\n\n\nY: [DATE]   end"

	once := FillTemplate(template, models.DocumentSections{"title": "v"}, now)
	twice := FillTemplate(once, models.DocumentSections{"title": "v"}, now)
	assert.Equal(t, once, twice)
}

func TestTemplateStoreBuiltinDefaults(t *testing.T) {
	store := NewTemplateStore("")

	for _, docType := range models.DocumentTypes() {
		tpl := store.Load(docType)
		assert.NotEmpty(t, tpl, string(docType))
	}

	assert.Contains(t, store.Load(models.DocumentTypePetition), "MOST RESPECTFULLY SHOWETH")
}

func TestTemplateStoreUnknownTypeGetsGenericTemplate(t *testing.T) {
	store := NewTemplateStore("")

	tpl := store.Load(models.DocumentType("memo"))
	assert.Contains(t, tpl, "MEMO")
	assert.Contains(t, tpl, "[CONTENT_PLACEHOLDER]")
}

func TestTemplateStoreDiskOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "CUSTOM PETITION\n\n[TITLE_PLACEHOLDER]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "petition.txt"), []byte(custom), 0o644))

	store := NewTemplateStore(dir)

	assert.Equal(t, custom, store.Load(models.DocumentTypePetition))
	// Types without an override still fall back to the defaults
	assert.Contains(t, store.Load(models.DocumentTypeAffidavit), "AFFIDAVIT")
}
