package connector

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

// kanoonServer fakes the Indian Kanoon search API, dispatching on the
// formInput query. Unknown queries get an empty result set.
func kanoonServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		body, ok := responses[r.URL.Query().Get("formInput")]
		if !ok {
			body = `{"docs": []}`
		}
		if body == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, body)
	}))
}

func testKanoonConnector(srv *httptest.Server) *IndianKanoonConnector {
	c := NewIndianKanoonConnector("test-key")
	c.baseURL = srv.URL
	return c
}

func TestIndianKanoonLawSectionRelevanceTiers(t *testing.T) {
	srv := kanoonServer(t, map[string]string{
		"Indian Contract Act section 73": `{"docs": [
			{"tid": 1001, "title": "Indian Contract Act, Section 73", "headline": "Compensation for <b>breach</b> of contract"}
		]}`,
		"breach": `{"docs": [
			{"tid": 1002, "title": "Indian Penal Code, Section 420", "headline": "Cheating and dishonestly inducing delivery"}
		]}`,
	})
	defer srv.Close()

	c := testKanoonConnector(srv)
	sections, err := c.SearchLawSections(context.Background(), SearchParams{
		ActSections: []models.ActSection{{Act: "Indian Contract Act", Section: "73"}},
		Keywords:    []string{"breach"},
	})
	require.NoError(t, err)
	require.Len(t, sections, 2)

	// The act+section lookup comes back at the exact-match tier, with
	// highlight markup stripped from the snippet
	assert.Equal(t, "Indian Contract Act", sections[0].Act)
	assert.Equal(t, "73", sections[0].SectionNumber)
	assert.Equal(t, models.RelevanceExactMatch, sections[0].Relevance)
	assert.Equal(t, "Compensation for breach of contract", sections[0].Content)
	assert.Equal(t, "1001", sections[0].SourceDocID)
	assert.Equal(t, "Indian Kanoon", sections[0].Source)

	// The keyword hit is a concept match, with act and section parsed
	// out of the document title
	assert.Equal(t, "Indian Penal Code", sections[1].Act)
	assert.Equal(t, "420", sections[1].SectionNumber)
	assert.Equal(t, models.RelevanceConceptMatch, sections[1].Relevance)

	assert.Greater(t, sections[0].Relevance, sections[1].Relevance)
}

func TestIndianKanoonLawSectionBareActQuery(t *testing.T) {
	srv := kanoonServer(t, map[string]string{
		"Limitation Act": `{"docs": [
			{"tid": 2001, "title": "The Limitation Act, 1963", "headline": "Bar of limitation"}
		]}`,
	})
	defer srv.Close()

	c := testKanoonConnector(srv)
	sections, err := c.SearchLawSections(context.Background(), SearchParams{
		Acts: []string{"Limitation Act"},
	})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Limitation Act", sections[0].Act)
	assert.Equal(t, "N/A", sections[0].SectionNumber)
}

func TestIndianKanoonLawSectionFailedQuerySkipped(t *testing.T) {
	srv := kanoonServer(t, map[string]string{
		"Indian Penal Code section 420": "",
		"Indian Contract Act section 73": `{"docs": [
			{"tid": 3001, "title": "Indian Contract Act, Section 73", "headline": "Compensation for loss"}
		]}`,
	})
	defer srv.Close()

	c := testKanoonConnector(srv)
	sections, err := c.SearchLawSections(context.Background(), SearchParams{
		ActSections: []models.ActSection{
			{Act: "Indian Penal Code", Section: "420"},
			{Act: "Indian Contract Act", Section: "73"},
		},
	})
	require.NoError(t, err)

	// The failed first query must not empty the result set
	require.Len(t, sections, 1)
	assert.Equal(t, "Indian Contract Act", sections[0].Act)
}

func TestIndianKanoonCaseHistoryCitationTier(t *testing.T) {
	srv := kanoonServer(t, map[string]string{
		"AIR 2017 SC 567": `{"docs": [
			{"tid": 4001, "title": "Mehta vs Patel, AIR 2017 SC 567", "headline": "Damages must be <b>proved</b>", "docdate": "2017-03-15"}
		]}`,
		"breach of contract damages": `{"docs": [
			{"tid": 4002, "title": "Sharma vs State of Maharashtra", "headline": "Compensation principles restated", "docdate": "2019-08-01"}
		]}`,
	})
	defer srv.Close()

	c := testKanoonConnector(srv)
	cases, err := c.SearchCaseHistory(context.Background(), SearchParams{
		Queries: []string{"AIR 2017 SC 567", "breach of contract damages"},
	})
	require.NoError(t, err)
	require.Len(t, cases, 2)

	// A citation query scores at the exact-match tier and the citation
	// is lifted out of the title
	assert.Equal(t, "AIR 2017 SC 567", cases[0].Citation)
	assert.Equal(t, "Mehta vs Patel, AIR 2017 SC 567", cases[0].Parties)
	assert.Equal(t, "Damages must be proved", cases[0].Holdings)
	assert.Equal(t, models.RelevanceExactMatch, cases[0].Relevance)
	assert.Equal(t, "2017-03-15", cases[0].Date)

	// A plain query stays at the concept tier; the title stands in for
	// a missing citation
	assert.Equal(t, "Sharma vs State of Maharashtra", cases[1].Citation)
	assert.Equal(t, models.RelevanceConceptMatch, cases[1].Relevance)
}

func TestIndianKanoonCaseHistoryFallsBackToKeywords(t *testing.T) {
	srv := kanoonServer(t, map[string]string{
		"fraud": `{"docs": [
			{"tid": 5001, "title": "Gupta vs Union of India", "headline": "Fraud vitiates everything"}
		]}`,
	})
	defer srv.Close()

	c := testKanoonConnector(srv)
	cases, err := c.SearchCaseHistory(context.Background(), SearchParams{
		Keywords: []string{"fraud"},
	})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "Gupta vs Union of India", cases[0].Citation)
}

func TestParseActSectionFromTitle(t *testing.T) {
	tests := []struct {
		title   string
		act     string
		section string
	}{
		{"Indian Penal Code, Section 420", "Indian Penal Code", "420"},
		{"Indian Contract Act Sec. 73", "Indian Contract Act", "73"},
		{"Code of Civil Procedure, Section 11(a)", "Code of Civil Procedure", "11(a)"},
		{"Some judgment about fraud", "Some judgment about fraud", "N/A"},
		{"", "Unknown Act", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			act, section := parseActSectionFromTitle(tt.title)
			assert.Equal(t, tt.act, act)
			assert.Equal(t, tt.section, section)
		})
	}
}

func TestCitationFromTitle(t *testing.T) {
	assert.Equal(t, "AIR 2017 SC 567", citationFromTitle("Mehta vs Patel, AIR 2017 SC 567"))
	assert.Equal(t, "(2019) 3 SCC 123", citationFromTitle("State vs Rao (2019) 3 SCC 123"))
	assert.Equal(t, "Plain case title", citationFromTitle("Plain case title"))
}

func TestLooksLikeCitation(t *testing.T) {
	assert.True(t, looksLikeCitation("AIR 2017 SC 567"))
	assert.True(t, looksLikeCitation("(2019) 3 SCC 123"))
	assert.False(t, looksLikeCitation("breach of contract damages"))
}

func TestCleanSnippet(t *testing.T) {
	assert.Equal(t, "breach of contract", cleanSnippet(" <b>breach</b> of <i>contract</i> "))
	assert.Equal(t, "no markup", cleanSnippet("no markup"))
}
