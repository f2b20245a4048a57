package engine

import (
	"fmt"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

const (
	weightClaustrophobic = 80
	weightFacialHair     = 75
	weightSleepPosition  = 70
)

// ApplyStrongModifiers is stage 3. Claustrophobia, facial hair and sleep
// position run in that order, each reading the category left by the one
// before it. Every rule that fires replaces the model list wholesale, so the
// last one wins.
func ApplyStrongModifiers(s State, r entities.PatientResponses) State {
	next := s.clone()
	next = applyClaustrophobia(next, r)
	next = applyFacialHair(next, r)
	next = applySleepPosition(next, r)
	return next
}

func applyClaustrophobia(s State, r entities.PatientResponses) State {
	if !r.Claustrophobic {
		return s
	}

	switch s.Mask.Category {
	case entities.CategoryNasalMask:
		s.Mask.Category = entities.CategoryNasalPillows
		s.Mask.SpecificModels = menu(entities.CategoryNasalPillows, MenuClaustrophobic)
		s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
			Factor:    "Claustrophobic",
			Weight:    weightClaustrophobic,
			Change:    "Switched from Nasal Mask to Nasal Pillows (minimal contact)",
			Rationale: "Claustrophobic patients strongly prefer minimal facial contact",
		})
		s.influence(entities.BucketMaskType, "claustrophobic", "true", "Switched to nasal pillows for minimal facial contact")
	case entities.CategoryFullFace:
		s.Mask.SpecificModels = menu(entities.CategoryFullFace, MenuClaustrophobic)
		s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
			Factor:    "Claustrophobic",
			Weight:    weightClaustrophobic,
			Change:    "Selected minimal-contact full face models",
			Rationale: "Full face required but chose least invasive designs",
			Warning:   "May need extra support/reassurance due to claustrophobia + full face conflict",
		})
		s.influence(entities.BucketMaskType, "claustrophobic", "true", "Selected minimal-contact full face models")
	}
	return s
}

func applyFacialHair(s State, r entities.PatientResponses) State {
	if !r.FacialHair {
		return s
	}

	switch s.Mask.Category {
	case entities.CategoryNasalMask:
		s.Mask.Category = entities.CategoryNasalPillows
		s.Mask.SpecificModels = menu(entities.CategoryNasalPillows, MenuFacialHair)
		s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
			Factor:           "Facial Hair",
			Weight:           weightFacialHair,
			Change:           "REQUIRED switch from Nasal Mask to Nasal Pillows",
			Rationale:        "Traditional nasal cushions fail to seal with facial hair (20-30% success)",
			Contraindication: "AVOID: Traditional nasal cushion masks (AirFit N20, Wisp Nasal)",
		})
		s.influence(entities.BucketMaskType, "facialHair", "true", "Nasal cushions cannot seal over facial hair; switched to nasal pillows")
	case entities.CategoryFullFace:
		s.Mask.SpecificModels = menu(entities.CategoryFullFace, MenuFacialHair)
		s.Mask.RequiredAccessories = append(s.Mask.RequiredAccessories, "Fabric Cushion Liners or Covers")
		s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
			Factor:    "Facial Hair",
			Weight:    weightFacialHair,
			Change:    "Selected facial-hair-compatible full face designs",
			Rationale: "Total face seal or fabric liners improve seal with facial hair",
		})
		s.influence(entities.BucketMaskType, "facialHair", "true", "Selected facial-hair-compatible full face designs")
		s.influence(entities.BucketAccessories, "facialHair", "true", "Fabric liners required to seal over facial hair")
	}
	return s
}

func applySleepPosition(s State, r entities.PatientResponses) State {
	switch {
	case r.SleepPosition.IsSideOrStomach():
		switch s.Mask.Category {
		case entities.CategoryNasalPillows, entities.CategoryNasalMask:
			s.Mask.SpecificModels = menu(s.Mask.Category, MenuTubeUp)
			s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
				Factor:    "Sleep Position",
				Weight:    weightSleepPosition,
				Change:    "Prioritized tube-up designs",
				Rationale: fmt.Sprintf("%s sleepers benefit from top-of-head tubing (pillow-friendly)", r.SleepPosition),
			})
			s.influence(entities.BucketMaskType, "sleepPosition", string(r.SleepPosition), "Tube-up designs keep the hose off the pillow")
		case entities.CategoryFullFace:
			s.Mask.SpecificModels = menu(entities.CategoryFullFace, MenuTubeUp)
			s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
				Factor:    "Sleep Position",
				Weight:    weightSleepPosition,
				Change:    "Selected tube-up full face designs",
				Rationale: fmt.Sprintf("%s sleepers need pillow-compatible design", r.SleepPosition),
			})
			s.influence(entities.BucketMaskType, "sleepPosition", string(r.SleepPosition), "Tube-up full face designs are pillow compatible")
		}
	case r.SleepPosition == entities.SleepSitting:
		s.ModificationNotes = append(s.ModificationNotes, entities.ModificationNote{
			Factor:    "Sleep Position",
			Weight:    weightSleepPosition,
			Change:    "No mask modification",
			Rationale: "Sitting upright may indicate orthopnea or other condition",
			Warning:   "Consider evaluation for underlying sleep disorder (CHF, COPD)",
		})
	}
	return s
}
