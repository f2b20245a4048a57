package engine

import (
	"sort"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

const (
	AccessoryHumidifier = "Heated Humidifier"
	AccessoryChinStrap  = "Chin Strap"
	AccessoryMouthTape  = "Mouth Tape (MyoTape)"

	// requiredAccessoryWeight places modifier-required items just below ESSENTIAL ones
	requiredAccessoryWeight = 95
)

// SelectAccessories is stage 6. The returned list is sorted by weight
// descending; merging with required accessories happens at assembly.
func SelectAccessories(s State, r entities.PatientResponses) State {
	next := s.clone()
	accessories := []entities.AccessoryRecommendation{}

	if r.Breathing == entities.BreathingMouthOnly || r.Nasal == entities.NasalSeasonalAllergies {
		reason := "Reduces nasal congestion"
		factor, value := "nasal", string(r.Nasal)
		if r.Breathing == entities.BreathingMouthOnly {
			reason = "Mouth breathing causes severe dryness"
			factor, value = "breathing", string(r.Breathing)
		}
		accessories = append(accessories, entities.AccessoryRecommendation{
			Item:          AccessoryHumidifier,
			Priority:      entities.PriorityEssential,
			Justification: reason,
			Weight:        100,
		})
		next.influence(entities.BucketAccessories, factor, value, "Heated humidifier: "+reason)
	}

	if r.SkinSensitivity {
		accessories = append(accessories,
			entities.AccessoryRecommendation{
				Item:          "Gel Cushions or Memory Foam",
				Priority:      entities.PriorityHighlyRecommended,
				Justification: "Gentle on sensitive skin, reduces pressure points",
				Weight:        90,
			},
			entities.AccessoryRecommendation{
				Item:          "Hypoallergenic Silicone (latex-free)",
				Priority:      entities.PriorityHighlyRecommended,
				Justification: "Prevents allergic reactions",
				Weight:        90,
			},
			entities.AccessoryRecommendation{
				Item:          "Fabric Cushion Covers",
				Priority:      entities.PriorityRecommended,
				Justification: "Barrier between skin and silicone",
				Weight:        80,
			},
		)
		next.influence(entities.BucketAccessories, "skinSensitivity", "true", "Soft cushions and fabric covers reduce irritation")
	}

	// skin sensitivity already added a fabric cover entry
	if r.FacialHair && !r.SkinSensitivity {
		accessories = append(accessories, entities.AccessoryRecommendation{
			Item:          "Fabric Cushion Covers",
			Priority:      entities.PriorityHighlyRecommended,
			Justification: "Improves seal with facial hair",
			Weight:        85,
		})
		next.influence(entities.BucketAccessories, "facialHair", "true", "Fabric covers improve the seal over facial hair")
	}

	if r.Breathing == entities.BreathingMixed {
		accessories = append(accessories, entities.AccessoryRecommendation{
			Item:          AccessoryChinStrap,
			Priority:      entities.PriorityRecommended,
			Justification: "Helps keep mouth closed during nasal mask trial (trial approach B)",
			Weight:        70,
		})
		next.influence(entities.BucketAccessories, "breathing", string(r.Breathing), "Chin strap keeps the mouth closed during a nasal trial")

		if r.MouthTapeSafe() {
			accessories = append(accessories, entities.AccessoryRecommendation{
				Item:          AccessoryMouthTape,
				Priority:      entities.PriorityRecommended,
				Justification: "Direct mouth closure, alternative to chin strap (trial approach B-ALT)",
				SafetyNote:    "Use only CPAP-safe tape with emergency opening",
				Weight:        70,
			})
		}
	}

	sortByWeight(accessories)
	next.Accessories = accessories
	return next
}

// MergeAccessories injects required items as REQUIRED with weight 95, sorts
// the combined list by weight descending and keeps the first entry per item.
func MergeAccessories(required []string, selected []entities.AccessoryRecommendation) []entities.AccessoryRecommendation {
	combined := make([]entities.AccessoryRecommendation, 0, len(required)+len(selected))
	for _, item := range required {
		combined = append(combined, entities.AccessoryRecommendation{
			Item:          item,
			Priority:      entities.PriorityRequired,
			Justification: "Required for the selected mask configuration",
			Weight:        requiredAccessoryWeight,
		})
	}
	combined = append(combined, selected...)
	sortByWeight(combined)

	seen := make(map[string]struct{}, len(combined))
	unique := make([]entities.AccessoryRecommendation, 0, len(combined))
	for _, accessory := range combined {
		if _, dup := seen[accessory.Item]; dup {
			continue
		}
		seen[accessory.Item] = struct{}{}
		unique = append(unique, accessory)
	}
	return unique
}

func sortByWeight(accessories []entities.AccessoryRecommendation) {
	sort.SliceStable(accessories, func(i, j int) bool {
		return accessories[i].Weight > accessories[j].Weight
	})
}
