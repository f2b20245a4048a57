package engine

import (
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// SelectCategory is stage 2. Breathing produces the baseline; the nasal
// answer is evaluated afterwards and may replace the category.
func SelectCategory(s State, r entities.PatientResponses) State {
	next := s.clone()
	canUseFullFace := next.Constraints.CanUseFullFace
	mask := entities.MaskRecommendation{
		SpecificModels:    []string{},
		AlternativeModels: []string{},
		Notes:             []string{},
	}

	switch {
	case r.Breathing == entities.BreathingNoseOnly &&
		(r.Nasal == entities.NasalNoObstruction || r.Nasal == ""):
		mask.Category = entities.CategoryNasalMask
		mask.SuccessRate = "85-90%"
		mask.SpecificModels = menu(entities.CategoryNasalMask, MenuBaseline)
		mask.Notes = append(mask.Notes, "Nose-only breathing with no nasal obstruction - ideal for nasal masks")
		next.influence(entities.BucketMaskType, "breathing", string(r.Breathing), "Nose-only breathing suits a nasal mask")

	case r.Breathing == entities.BreathingMouthOnly:
		if canUseFullFace {
			mask.Category = entities.CategoryFullFace
			mask.SuccessRate = "80-85%"
			mask.SpecificModels = menu(entities.CategoryFullFace, MenuBaseline)
			mask.Notes = append(mask.Notes, "Mouth breathing requires full face mask for effective therapy")
			next.influence(entities.BucketMaskType, "breathing", string(r.Breathing), "Mouth breathing requires a full face mask")
		} else {
			mask.Category = entities.CategoryNasalMask
			mask.SuccessRate = "60-70%"
			mask.SpecificModels = menu(entities.CategoryNasalMask, MenuChinStrap)
			mask.Notes = append(mask.Notes, "WARNING: Mouth breathing but full face contraindicated. Nasal mask with chin strap required.")
			next.influence(entities.BucketMaskType, "breathing", string(r.Breathing), "Mouth breathing with full face contraindicated: nasal mask plus chin strap")
		}

	case r.Breathing == entities.BreathingMixed:
		if canUseFullFace {
			mask.Category = entities.CategoryFullFace
			mask.SuccessRate = "75-85%"
			mask.SpecificModels = menu(entities.CategoryFullFace, MenuBaseline)
			mask.Notes = append(mask.Notes, "Mixed breathing - full face recommended, or nasal with chin strap")
			next.influence(entities.BucketMaskType, "breathing", string(r.Breathing), "Mixed breathing favours a full face mask")
		} else {
			mask.Category = entities.CategoryNasalMask
			mask.SuccessRate = "70-80%"
			mask.SpecificModels = menu(entities.CategoryNasalMask, MenuChinStrap)
			mask.Notes = append(mask.Notes, "Mixed breathing but full face contraindicated. Nasal mask with chin strap or mouth tape required.")
			next.influence(entities.BucketMaskType, "breathing", string(r.Breathing), "Mixed breathing with full face contraindicated: nasal mask plus chin strap or tape")
		}
	}

	switch r.Nasal {
	case entities.NasalSevereObstruction:
		if canUseFullFace {
			mask.Category = entities.CategoryFullFace
			mask.SuccessRate = "80-85%"
			mask.SpecificModels = menu(entities.CategoryFullFace, MenuBaseline)
			mask.Notes = append(mask.Notes, "Severe nasal obstruction requires full face mask")
			next.influence(entities.BucketMaskType, "nasal", string(r.Nasal), "Severe obstruction forces a full face mask")
		}
	case entities.NasalMildObstruction:
		if mask.Category == entities.CategoryNasalMask {
			mask.Notes = append(mask.Notes, "Mild obstruction - consider dual approach or full face")
		}
	case entities.NasalDeviatedSeptum:
		if canUseFullFace {
			mask.Category = entities.CategoryFullFace
			mask.Notes = append(mask.Notes, "Deviated septum - full face preferred")
			next.influence(entities.BucketMaskType, "nasal", string(r.Nasal), "Deviated septum favours a full face mask")
		}
	case entities.NasalSeasonalAllergies:
		mask.Notes = append(mask.Notes, "Seasonal allergies - consider heated humidifier")
	}

	next.Mask = mask
	return next
}
