package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// CatalogReader is the read side of the loaded mask catalog
type CatalogReader interface {
	ByCategory(category entities.MaskCategory) []entities.CatalogEntry
	Query(category entities.MaskCategory, criteria entities.CatalogCriteria) []entities.ScoredEntry
}

// CatalogHandler exposes the mask catalog
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type catalogListResponse struct {
	Category entities.MaskCategory   `json:"category,omitempty"`
	Count    int                     `json:"count"`
	Masks    []entities.CatalogEntry `json:"masks"`
}

type scoredMask struct {
	Mask    entities.CatalogEntry `json:"mask"`
	Score   int                   `json:"score"`
	Reasons []string              `json:"reasons"`
}

type catalogQueryResponse struct {
	Category entities.MaskCategory `json:"category"`
	Count    int                   `json:"count"`
	Results  []scoredMask          `json:"results"`
}

// ListCatalog handles GET /api/catalog. The optional category parameter
// accepts any common spelling ("nasal pillows", "FULL_FACE", ...).
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	var category entities.MaskCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = entities.ParseMaskCategory(raw)
		if category == "" {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unknown mask category %q", raw))
			return
		}
	}

	masks := h.catalog.ByCategory(category)
	if masks == nil {
		masks = []entities.CatalogEntry{}
	}
	respondWithJSON(w, http.StatusOK, catalogListResponse{
		Category: category,
		Count:    len(masks),
		Masks:    masks,
	})
}

// QueryCatalog handles GET /api/catalog/query. It runs the catalog filter
// and scoring for one category with criteria taken from query parameters.
func (h *CatalogHandler) QueryCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := entities.ParseMaskCategory(query.Get("category"))
	if category == "" {
		respondWithError(w, http.StatusBadRequest, "A valid category is required")
		return
	}

	criteria, err := criteriaFromQuery(query)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	scored := h.catalog.Query(category, criteria)
	results := make([]scoredMask, 0, len(scored))
	for _, s := range scored {
		results = append(results, scoredMask{Mask: s.Entry, Score: s.Score, Reasons: s.Reasons})
	}

	respondWithJSON(w, http.StatusOK, catalogQueryResponse{
		Category: category,
		Count:    len(results),
		Results:  results,
	})
}

func criteriaFromQuery(query url.Values) (entities.CatalogCriteria, error) {
	criteria := entities.CatalogCriteria{
		SleepPosition: entities.SleepPosition(query.Get("sleepPosition")),
		Breathing:     entities.BreathingPattern(query.Get("breathing")),
		Nasal:         entities.NasalStatus(query.Get("nasal")),
		SleepMovement: entities.SleepMovement(query.Get("sleepMovement")),
	}

	if raw := query.Get("tubeUp"); raw != "" {
		tubeUp, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid boolean for tubeUp: %q", raw)
		}
		criteria.TubeUp = &tubeUp
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"skinFriendly", &criteria.SkinFriendly},
		{"facialHairCompatible", &criteria.FacialHairCompatible},
		{"nonMagnetic", &criteria.NonMagnetic},
		{"claustrophobic", &criteria.Claustrophobic},
		{"skinSensitivity", &criteria.SkinSensitivity},
		{"facialHair", &criteria.FacialHair},
		{"assistant", &criteria.Assistant},
		{"adjustment", &criteria.Adjustment},
		{"implant", &criteria.Implant},
	}
	for _, f := range flags {
		raw := query.Get(f.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid boolean for %s: %q", f.name, raw)
		}
		*f.dst = value
	}
	return criteria, nil
}
