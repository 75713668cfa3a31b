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

func manupatraServer(t *testing.T, paths map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, ok := paths[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, body)
	}))
}

func testManupatraConnector(srv *httptest.Server) *ManupatraConnector {
	c := NewManupatraConnector("test-key")
	c.baseURL = srv.URL
	return c
}

func TestManupatraSearchLawSections(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"results": [
			{"title": "Indian Contract Act", "sectionNumber": "73", "content": "Compensation for loss", "relevance": 8, "docId": "mp-1"}
		]}`)
	}))
	defer srv.Close()

	c := testManupatraConnector(srv)
	sections, err := c.SearchLawSections(context.Background(), SearchParams{
		Keywords: []string{"breach", "damages"},
		Acts:     []string{"Indian Contract Act"},
		Sections: []string{"73"},
		Domains:  []string{"civil"},
	})
	require.NoError(t, err)
	require.Len(t, sections, 1)

	assert.Equal(t, "Indian Contract Act", sections[0].Act)
	assert.Equal(t, "73", sections[0].SectionNumber)
	assert.Equal(t, 8, sections[0].Relevance)
	assert.Equal(t, "Manupatra", sections[0].Source)
	assert.Equal(t, "mp-1", sections[0].SourceDocID)

	assert.Contains(t, gotQuery, "keywords=breach%2Cdamages")
	assert.Contains(t, gotQuery, "domains=civil")
}

func TestManupatraLawRelevanceClamped(t *testing.T) {
	srv := manupatraServer(t, map[string]string{
		"/laws/search": `{"results": [
			{"title": "Indian Penal Code", "sectionNumber": "420", "content": "Cheating", "relevance": 42, "docId": "mp-2"},
			{"title": "Indian Penal Code", "sectionNumber": "415", "content": "Definition of cheating", "relevance": 0, "docId": "mp-3"}
		]}`,
	})
	defer srv.Close()

	c := testManupatraConnector(srv)
	sections, err := c.SearchLawSections(context.Background(), SearchParams{Keywords: []string{"cheating"}})
	require.NoError(t, err)
	require.Len(t, sections, 2)

	// Out-of-range scores collapse to the concept tier
	assert.Equal(t, models.RelevanceConceptMatch, sections[0].Relevance)
	assert.Equal(t, models.RelevanceConceptMatch, sections[1].Relevance)
}

func TestManupatraSearchCaseHistory(t *testing.T) {
	srv := manupatraServer(t, map[string]string{
		"/cases/search": `{"results": [
			{"citation": "AIR 2017 SC 567", "parties": "Mehta vs Patel", "holdings": "Damages must be proved", "relevance": 9, "date": "2017-03-15", "docId": "mp-4"}
		]}`,
	})
	defer srv.Close()

	c := testManupatraConnector(srv)
	cases, err := c.SearchCaseHistory(context.Background(), SearchParams{Keywords: []string{"damages"}})
	require.NoError(t, err)
	require.Len(t, cases, 1)

	assert.Equal(t, "AIR 2017 SC 567", cases[0].Citation)
	assert.Equal(t, "Mehta vs Patel", cases[0].Parties)
	assert.Equal(t, 9, cases[0].Relevance)
	assert.Equal(t, "2017-03-15", cases[0].Date)
	assert.Equal(t, "Manupatra", cases[0].Source)
}

func TestManupatraAPIErrorSurfaces(t *testing.T) {
	srv := manupatraServer(t, map[string]string{})
	defer srv.Close()

	c := testManupatraConnector(srv)
	_, err := c.SearchLawSections(context.Background(), SearchParams{Keywords: []string{"anything"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}