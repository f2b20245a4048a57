package catalog

import (
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// Builtin returns the default mask catalog shipped with the service
func Builtin() []entities.CatalogEntry {
	return []entities.CatalogEntry{
		// Nasal masks
		{
			Brand:           "ResMed",
			Model:           "AirFit N20",
			Category:        entities.CategoryNasalMask,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			MagneticClips:   true,
			Description:     "Traditional nasal mask with memory foam cushion option, provides comfortable seal with minimal contact",
			KeyFeatures:     []string{"Memory foam cushion available", "Traditional design", "Comfortable seal", "Minimal contact"},
			BestFor:         []string{"Nose-only breathing", "No nasal obstruction", "Back sleepers", "Standard headgear"},
			AvoidIf:         []string{"Facial hair (20-30% success rate)", "Claustrophobic (prefer pillows)", "Side/stomach sleepers (prefer tube-up)"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirFit N30i",
			Category:        entities.CategoryNasalMask,
			TubeUp:          true,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Tube-up nasal mask with soft cradle design, ideal for side and stomach sleepers",
			KeyFeatures:     []string{"Tube-up design", "Soft cradle", "Pillow-friendly", "Side/stomach sleeper friendly"},
			BestFor:         []string{"Side sleepers", "Stomach sleepers", "Nose-only breathing", "No nasal obstruction"},
			AvoidIf:         []string{"Facial hair", "Claustrophobic"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirTouch N30i",
			Category:        entities.CategoryNasalMask,
			TubeUp:          true,
			CushionMaterial: entities.CushionFabric,
			SkinFriendly:    true,
			Description:     "Fabric-wrapped nasal mask - BEST for sensitive skin, tube-up design",
			KeyFeatures:     []string{"Fabric-wrapped cushion", "Tube-up design", "Hypoallergenic", "Sensitive skin friendly"},
			BestFor:         []string{"Sensitive skin", "Allergies", "Side sleepers", "Skin sensitivity issues"},
			AvoidIf:         []string{"Facial hair"},
		},
		{
			Brand:           "Philips",
			Model:           "DreamWear Nasal",
			Category:        entities.CategoryNasalMask,
			TubeUp:          true,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Under-the-nose nasal mask with tube-up design, minimal contact",
			KeyFeatures:     []string{"Under-the-nose", "Tube-up design", "Minimal contact", "Pillow-friendly"},
			BestFor:         []string{"Side sleepers", "Stomach sleepers", "Claustrophobic patients", "Minimal contact preference"},
			AvoidIf:         []string{"Facial hair"},
		},
		{
			Brand:           "Philips",
			Model:           "Wisp Nasal",
			Category:        entities.CategoryNasalMask,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Lightweight nasal mask with minimal contact, traditional design",
			KeyFeatures:     []string{"Lightweight", "Minimal contact", "Traditional design", "Comfortable"},
			BestFor:         []string{"Back sleepers", "Nose-only breathing", "Lightweight preference"},
			AvoidIf:         []string{"Facial hair", "Side/stomach sleepers", "Claustrophobic"},
		},
		{
			Brand:           "Philips",
			Model:           "DreamWear Gel Nasal",
			Category:        entities.CategoryNasalMask,
			TubeUp:          true,
			CushionMaterial: entities.CushionGel,
			SkinFriendly:    true,
			Description:     "Gel cushion nasal mask, gentle on sensitive skin",
			KeyFeatures:     []string{"Gel cushion", "Sensitive skin friendly", "Tube-up design"},
			BestFor:         []string{"Sensitive skin", "Side sleepers", "Gel preference"},
			AvoidIf:         []string{"Facial hair"},
		},

		// Nasal pillows
		{
			Brand:                "ResMed",
			Model:                "AirFit P10",
			Category:             entities.CategoryNasalPillows,
			CushionMaterial:      entities.CushionSilicone,
			FacialHairCompatible: true,
			SkinFriendly:         true,
			Description:          "Ultra-minimal nasal pillows, lightweight and quiet - best for claustrophobic patients",
			KeyFeatures:          []string{"Ultra-minimal", "Lightweight", "Quiet", "Minimal contact"},
			BestFor:              []string{"Claustrophobic", "Minimal contact preference", "Back sleepers", "Facial hair"},
			AvoidIf:              []string{"Side/stomach sleepers (prefer P30i)"},
		},
		{
			Brand:                "ResMed",
			Model:                "AirFit P30i",
			Category:             entities.CategoryNasalPillows,
			TubeUp:               true,
			CushionMaterial:      entities.CushionSilicone,
			FacialHairCompatible: true,
			SkinFriendly:         true,
			Description:          "Tube-up nasal pillows, perfect for side/stomach sleepers, maintains seal with movement",
			KeyFeatures:          []string{"Tube-up design", "Side/stomach sleeper friendly", "Seal retention", "Soft pillows"},
			BestFor:              []string{"Side sleepers", "Stomach sleepers", "High movement", "Facial hair", "Claustrophobic"},
			AvoidIf:              []string{},
		},
		{
			Brand:                "Philips",
			Model:                "DreamWear Silicone Pillows",
			Category:             entities.CategoryNasalPillows,
			TubeUp:               true,
			CushionMaterial:      entities.CushionSilicone,
			FacialHairCompatible: true,
			SkinFriendly:         true,
			Description:          "Soft silicone pillows with tube-up frame, excellent for sensitive skin and side sleepers",
			KeyFeatures:          []string{"Soft silicone", "Tube-up design", "Sensitive skin friendly", "Side sleeper friendly"},
			BestFor:              []string{"Sensitive skin", "Side sleepers", "Claustrophobic", "Facial hair", "Soft material preference"},
			AvoidIf:              []string{},
		},
		{
			Brand:                "Philips",
			Model:                "Nuance Pro",
			Category:             entities.CategoryNasalPillows,
			CushionMaterial:      entities.CushionGel,
			FacialHairCompatible: true,
			SkinFriendly:         true,
			Description:          "Gel nasal pillows with minimal contact, comfortable for sensitive users",
			KeyFeatures:          []string{"Gel pillows", "Minimal contact", "Sensitive skin friendly"},
			BestFor:              []string{"Sensitive skin", "Gel preference", "Minimal contact"},
			AvoidIf:              []string{"Side/stomach sleepers (prefer tube-up)"},
		},

		// Full face masks
		{
			Brand:           "ResMed",
			Model:           "AirFit F20",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			MagneticClips:   true,
			Description:     "Full face mask with memory foam or silicone cushion options, standard design",
			KeyFeatures:     []string{"Memory foam option", "Silicone option", "Standard design", "Comfortable seal"},
			BestFor:         []string{"Mouth breathing", "Mixed breathing", "Back sleepers", "Standard use"},
			AvoidIf:         []string{"Facial hair (needs liners)", "Claustrophobic (prefer F30/F40)", "Side sleepers (prefer F30i)"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirFit F30",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Under-the-nose full face mask, less invasive than traditional full face",
			KeyFeatures:     []string{"Under-the-nose", "Less invasive", "Open field of vision", "Minimal contact"},
			BestFor:         []string{"Claustrophobic + mouth breathing", "Minimal contact preference", "Open vision needed"},
			AvoidIf:         []string{"Side sleepers (prefer F30i)", "Facial hair (needs liners)"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirFit F30i",
			Category:        entities.CategoryFullFace,
			TubeUp:          true,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Tube-up full face mask for side sleepers, under-the-nose design",
			KeyFeatures:     []string{"Tube-up design", "Under-the-nose", "Side sleeper friendly", "Pillow-friendly"},
			BestFor:         []string{"Side sleepers", "Stomach sleepers", "Mouth breathing", "Mixed breathing"},
			AvoidIf:         []string{"Facial hair (needs liners)"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirFit F40",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			MagneticClips:   true,
			Description:     "Smallest full face mask, minimal contact - best for claustrophobic patients who need full face",
			KeyFeatures:     []string{"Smallest size", "Minimal contact", "Claustrophobic friendly", "Compact design"},
			BestFor:         []string{"Claustrophobic + mouth breathing", "Minimal contact preference", "Smaller face"},
			AvoidIf:         []string{"Facial hair (needs liners)", "Side sleepers (prefer F30i)"},
		},
		{
			Brand:           "ResMed",
			Model:           "AirTouch F20",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionMemoryFoam,
			SkinFriendly:    true,
			MagneticClips:   true,
			Description:     "Memory foam cushion full face mask - BEST for sensitive skin",
			KeyFeatures:     []string{"Memory foam cushion", "Sensitive skin friendly", "Hypoallergenic", "Comfortable"},
			BestFor:         []string{"Sensitive skin", "Allergies", "Skin sensitivity", "Memory foam preference"},
			AvoidIf:         []string{"Facial hair (needs liners)", "Side sleepers (prefer F30i)"},
		},
		{
			Brand:           "Philips",
			Model:           "DreamWear Full Face",
			Category:        entities.CategoryFullFace,
			TubeUp:          true,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Under-the-nose full face with tube-up design, pillow-friendly",
			KeyFeatures:     []string{"Under-the-nose", "Tube-up design", "Pillow-friendly", "Side sleeper friendly"},
			BestFor:         []string{"Side sleepers", "Stomach sleepers", "Mouth breathing", "Mixed breathing"},
			AvoidIf:         []string{"Facial hair (needs liners)"},
		},
		{
			Brand:           "Philips",
			Model:           "Amara View",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionSilicone,
			SkinFriendly:    true,
			Description:     "Open field of vision full face mask, minimal contact - good for claustrophobic patients",
			KeyFeatures:     []string{"Open field of vision", "Minimal contact", "Claustrophobic friendly", "Under-the-nose"},
			BestFor:         []string{"Claustrophobic + mouth breathing", "Open vision needed", "Minimal contact"},
			AvoidIf:         []string{"Facial hair (needs liners)", "Side sleepers (prefer DreamWear)"},
		},
		{
			Brand:           "Philips",
			Model:           "Amara Gel",
			Category:        entities.CategoryFullFace,
			CushionMaterial: entities.CushionGel,
			SkinFriendly:    true,
			Description:     "Gel cushion full face mask, gentle on sensitive skin",
			KeyFeatures:     []string{"Gel cushion", "Sensitive skin friendly", "Comfortable seal"},
			BestFor:         []string{"Sensitive skin", "Gel preference", "Skin sensitivity"},
			AvoidIf:         []string{"Facial hair (needs liners)", "Side sleepers"},
		},
		{
			Brand:                "Philips",
			Model:                "FitLife Total Face",
			Category:             entities.CategoryFullFace,
			CushionMaterial:      entities.CushionSilicone,
			FacialHairCompatible: true,
			SkinFriendly:         true,
			Description:          "Total face mask - BEST for facial hair, covers entire face for superior seal",
			KeyFeatures:          []string{"Total face coverage", "Facial hair compatible", "Superior seal", "No facial contact issues"},
			BestFor:              []string{"Facial hair", "Beard/mustache", "Seal issues with other masks", "Full coverage needed"},
			AvoidIf:              []string{"Claustrophobic", "Minimal contact preference"},
		},
	}
}
