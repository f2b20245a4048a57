package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/cpapmaskselector/internal/api/handlers"
	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
)

func newCatalogHandler(t *testing.T) *handlers.CatalogHandler {
	t.Helper()
	c, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)
	return handlers.NewCatalogHandler(c)
}

type listBody struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Masks    []struct {
		Brand    string `json:"brand"`
		Model    string `json:"model"`
		Category string `json:"category"`
	} `json:"masks"`
}

func TestCatalogHandler_ListAll(t *testing.T) {
	w := httptest.NewRecorder()
	newCatalogHandler(t).ListCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body listBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 19, body.Count)
	assert.Len(t, body.Masks, 19)
}

func TestCatalogHandler_ListByCategoryAlias(t *testing.T) {
	w := httptest.NewRecorder()
	newCatalogHandler(t).ListCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog?category=nasal+pillows", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body listBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "NASAL_PILLOWS", body.Category)
	assert.Equal(t, 4, body.Count)
	for _, m := range body.Masks {
		assert.Equal(t, "NASAL_PILLOWS", m.Category)
	}
}

func TestCatalogHandler_ListUnknownCategory(t *testing.T) {
	w := httptest.NewRecorder()
	newCatalogHandler(t).ListCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog?category=helmet", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_Query(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/query?category=FULL_FACE&nonMagnetic=true&sleepPosition=side", nil)
	w := httptest.NewRecorder()
	newCatalogHandler(t).QueryCatalog(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
		Results  []struct {
			Mask struct {
				Model         string `json:"model"`
				MagneticClips bool   `json:"magneticClips"`
			} `json:"mask"`
			Score int `json:"score"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "FULL_FACE", body.Category)
	assert.Equal(t, 6, body.Count)
	for i, r := range body.Results {
		assert.False(t, r.Mask.MagneticClips, r.Mask.Model)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, body.Results[i-1].Score)
		}
	}
}

func TestCatalogHandler_QueryValidation(t *testing.T) {
	h := newCatalogHandler(t)

	w := httptest.NewRecorder()
	h.QueryCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog/query", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.QueryCatalog(w, httptest.NewRequest(http.MethodGet, "/api/catalog/query?category=nasal&tubeUp=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tubeUp")
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.NewHealthHandler(19).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"CPAP Mask Selector API is running","catalogEntries":19}`, w.Body.String())
}
