package engine

import (
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

const (
	weightSleepMovement   = 60
	weightSkinSensitivity = 55
	weightAdjustment      = 50

	AttachmentEnhancedHeadgear = "ENHANCED_HEADGEAR"
	AttachmentAutoAdjusting    = "AUTO_ADJUSTING"
	DesignSimplified           = "SIMPLIFIED"
)

var skinFriendlyAccessories = []string{
	"Gel Cushions or Memory Foam",
	"Hypoallergenic Silicone (latex-free)",
	"Fabric Cushion Covers",
}

// ApplyModerateModifiers is stage 4. It refines models, attachment and
// material hints but never changes the category.
func ApplyModerateModifiers(s State, r entities.PatientResponses) State {
	next := s.clone()

	if r.SleepMovement == entities.MovementAllTheTime {
		if next.Mask.Category == entities.CategoryNasalMask {
			next.Mask.AlternativeCategory = entities.CategoryNasalPillows
			next.Mask.AlternativeModels = menu(entities.CategoryNasalPillows, MenuMovementAlternative)
			next.RefinementNotes = append(next.RefinementNotes, entities.ModificationNote{
				Factor:         "Sleep Movement",
				Weight:         weightSleepMovement,
				Suggestion:     "Consider Nasal Pillows instead of Nasal Mask",
				Rationale:      "Nasal pillows maintain seal better during frequent position changes",
				Implementation: "Enhanced headgear + over-the-head design recommended",
			})
			next.influence(entities.BucketMaskType, "sleepMovement", string(r.SleepMovement), "Nasal pillows proposed as an alternative for frequent movement")
		}

		next.Mask.AttachmentRequirement = AttachmentEnhancedHeadgear
		next.RefinementNotes = append(next.RefinementNotes, entities.ModificationNote{
			Factor:    "Sleep Movement",
			Weight:    weightSleepMovement,
			Change:    "Enhanced 4-point headgear required",
			Rationale: "High movement requires superior seal stability",
		})
		next.influence(entities.BucketAttachment, "sleepMovement", string(r.SleepMovement), "High movement requires enhanced 4-point headgear")
	}

	if r.SkinSensitivity {
		if models, ok := Models(next.Mask.Category, MenuSkinFriendly); ok {
			next.Mask.SpecificModels = models
			next.Mask.RequiredAccessories = append(next.Mask.RequiredAccessories, skinFriendlyAccessories...)
			next.RefinementNotes = append(next.RefinementNotes, entities.ModificationNote{
				Factor:    "Skin Sensitivity",
				Weight:    weightSkinSensitivity,
				Change:    "Selected skin-sensitive materials",
				Rationale: "Gel/fabric/memory foam reduce irritation and allergic reactions",
				Priority:  "HIGHLY RECOMMENDED accessories",
			})
			next.influence(entities.BucketMaskType, "skinSensitivity", "true", "Selected skin-friendly cushion materials")
		}
	}

	if r.Adjustment {
		next.Mask.AttachmentPreference = AttachmentAutoAdjusting
		next.Mask.DesignPreference = DesignSimplified
		next.RefinementNotes = append(next.RefinementNotes, entities.ModificationNote{
			Factor:         "Adjustment Issues",
			Weight:         weightAdjustment,
			Change:         "Auto-adjusting headgear recommended",
			Rationale:      "Minimizes manual strap adjustments for patients with arthritis/dexterity issues",
			Implementation: "Look for magnetic clips, auto-adjusting frames, fewer adjustment points",
		})
		next.influence(entities.BucketAttachment, "adjustment", "true", "Dexterity issues favour auto-adjusting headgear")

		// Only the combination of both answers triggers this note
		if r.Assistant {
			next.RefinementNotes = append(next.RefinementNotes, entities.ModificationNote{
				Factor:      "Adjustment Issues + Assistant",
				Weight:      weightAdjustment,
				Change:      "Magnetic quick-release is IDEAL (easy removal + no manual adjustment)",
				Rationale:   "Solves both problems simultaneously",
				Priority:    string(entities.SeverityCritical),
				Interaction: true,
			})
		}
	}

	return next
}
