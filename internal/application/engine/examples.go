package engine

import (
	"strings"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
)

// MaxMaskExamples is how many ranked catalog entries are presented
const MaxMaskExamples = 4

// CriteriaFor builds the catalog criteria implied by the responses
func CriteriaFor(r entities.PatientResponses) entities.CatalogCriteria {
	criteria := entities.CatalogCriteria{
		SkinFriendly:         r.SkinSensitivity,
		FacialHairCompatible: r.FacialHair,
		NonMagnetic:          r.Implant,
		SleepPosition:        r.SleepPosition,
		Claustrophobic:       r.Claustrophobic,
		SkinSensitivity:      r.SkinSensitivity,
		FacialHair:           r.FacialHair,
		Breathing:            r.Breathing,
		Nasal:                r.Nasal,
		SleepMovement:        r.SleepMovement,
		Assistant:            r.Assistant,
		Adjustment:           r.Adjustment,
		Implant:              r.Implant,
	}
	if r.SleepPosition.IsSideOrStomach() {
		tubeUp := true
		criteria.TubeUp = &tubeUp
	}
	return criteria
}

// findExamples queries the catalog, relaxing the tube-up and then the
// facial-hair filter when nothing survives. The non-magnetic filter is
// never relaxed.
func findExamples(catalog providers.CatalogQuerier, category entities.MaskCategory, criteria entities.CatalogCriteria) []entities.ScoredEntry {
	if catalog == nil || !category.IsValid() {
		return nil
	}

	results := catalog.Query(category, criteria)
	if len(results) == 0 && criteria.TubeUp != nil {
		criteria.TubeUp = nil
		results = catalog.Query(category, criteria)
	}
	if len(results) == 0 && criteria.FacialHairCompatible {
		criteria.FacialHairCompatible = false
		results = catalog.Query(category, criteria)
	}
	return results
}

// GroupExamples keeps the top entries and groups them by brand in first-seen order
func GroupExamples(scored []entities.ScoredEntry, r entities.PatientResponses, limit int) []entities.MaskGroup {
	if len(scored) > limit {
		scored = scored[:limit]
	}

	groups := []entities.MaskGroup{}
	index := map[string]int{}
	for _, s := range scored {
		example := entities.MaskExample{
			Brand:                s.Entry.Brand,
			Model:                s.Entry.Name(),
			Category:             s.Entry.Category,
			Description:          s.Entry.Description,
			KeyFeatures:          s.Entry.KeyFeatures,
			BestFor:              s.Entry.BestFor,
			ImageRef:             s.Entry.ImageRef,
			ExternalLink:         s.Entry.ExternalLink,
			Score:                s.Score,
			SelectionReasons:     append([]string{}, s.Reasons...),
			SelectionExplanation: ExplainSelection(s, r),
		}

		i, ok := index[s.Entry.Brand]
		if !ok {
			i = len(groups)
			index[s.Entry.Brand] = i
			groups = append(groups, entities.MaskGroup{Brand: s.Entry.Brand})
		}
		groups[i].Masks = append(groups[i].Masks, example)
	}
	return groups
}

// ExplainSelection produces the natural-language reason a mask was picked
func ExplainSelection(s entities.ScoredEntry, r entities.PatientResponses) string {
	entry := s.Entry
	category := strings.ToLower(strings.ReplaceAll(string(entry.Category), "_", " "))
	explanations := []string{"Selected because it matches your " + category + " needs"}
	explanations = append(explanations, s.Reasons...)

	if r.SleepPosition.IsSideOrStomach() && entry.TubeUp {
		explanations = append(explanations, "Tube-up design prevents mask displacement when sleeping on your side or stomach")
	}
	if r.Claustrophobic && entry.Category == entities.CategoryNasalPillows {
		explanations = append(explanations, "Nasal pillows provide the least invasive option for claustrophobic patients")
	}
	if r.FacialHair && entry.FacialHairCompatible {
		explanations = append(explanations, "This mask design works well with facial hair, avoiding seal issues common with traditional cushions")
	}
	if r.SkinSensitivity && entry.SkinFriendly {
		explanations = append(explanations, "Skin-friendly materials reduce the risk of irritation and allergic reactions")
	}
	if r.Implant && !entry.MagneticClips {
		explanations = append(explanations, "Headgear uses no magnetic clips, which is required with medical implants")
	}

	return strings.Join(explanations, ". ") + "."
}
