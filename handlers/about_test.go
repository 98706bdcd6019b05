package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAboutNotFound(t *testing.T) {
	h := &AboutHandler{DB: &fakeAboutStore{}}
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/about", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"About content not found"}`, rec.Body.String())
}

// First PATCH creates the singleton (upsert); the following GET sees the data.
func TestAboutUpsertThenGet(t *testing.T) {
	h := &AboutHandler{DB: &fakeAboutStore{}}

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPatch, "/api/about",
		strings.NewReader(`{"intro":{"name":"Jane Doe"}}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/about", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	intro, ok := body["intro"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", intro["name"])
	// Omitted nested fields default to zero values
	assert.Equal(t, "", intro["role"])
	// The internal singleton key never reaches clients
	_, hasKey := body["key"]
	assert.False(t, hasKey)
}

func TestAboutPatchReplacesSection(t *testing.T) {
	h := &AboutHandler{DB: &fakeAboutStore{}}

	first := `{"intro":{"name":"Jane Doe","role":"Engineer"},"stats":[{"value":"5+","label":"years"}]}`
	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPatch, "/api/about", strings.NewReader(first)))
	require.Equal(t, http.StatusOK, rec.Code)

	// Patching intro alone replaces the whole section but leaves stats intact
	rec = httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPatch, "/api/about",
		strings.NewReader(`{"intro":{"name":"Jane Doe"}}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	intro := body["intro"].(map[string]interface{})
	assert.Equal(t, "", intro["role"])
	stats := body["stats"].([]interface{})
	require.Len(t, stats, 1)
}

func TestAboutUpdateStoreFailure(t *testing.T) {
	h := &AboutHandler{DB: &fakeAboutStore{err: errStoreDown}}
	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPatch, "/api/about", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to update about content"}`, rec.Body.String())
}
