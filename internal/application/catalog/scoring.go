package catalog

import (
	"strings"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

type scorer struct {
	score   int
	reasons []string
}

func (s *scorer) add(points int, reason string) {
	s.score += points
	if reason != "" {
		s.reasons = append(s.reasons, reason)
	}
}

// Score computes the additive bonus for one entry along with the reason
// behind every bonus that carries one.
func Score(entry entities.CatalogEntry, c entities.CatalogCriteria) (int, []string) {
	s := &scorer{reasons: []string{}}

	switch {
	case c.SleepPosition.IsSideOrStomach():
		if entry.TubeUp {
			s.add(30, "Tube-up design ideal for side/stomach sleepers")
		}
		if anyContains(entry.BestFor, "Side", "Stomach") {
			s.add(20, "Specifically designed for side/stomach sleepers")
		}
	case c.SleepPosition == entities.SleepBack:
		if !entry.TubeUp {
			s.add(10, "")
		}
	}

	if c.Claustrophobic {
		if entry.Category == entities.CategoryNasalPillows {
			s.add(25, "Nasal pillows provide minimal contact for claustrophobic patients")
		}
		if anyContains(entry.BestFor, "Claustrophobic") {
			s.add(20, "Specifically designed for claustrophobic patients")
		}
		if anyContains(entry.KeyFeatures, "Minimal contact") {
			s.add(15, "Minimal contact design reduces claustrophobia")
		}
	}

	if c.SkinSensitivity {
		if entry.SkinFriendly {
			s.add(20, "Skin-friendly materials reduce irritation")
		}
		if anyContains(entry.BestFor, "Sensitive skin") {
			s.add(25, "Specifically designed for sensitive skin")
		}
		if entry.CushionMaterial.IsSoft() || anyContains(entry.KeyFeatures, "Memory foam", "Gel", "Fabric") {
			s.add(15, "Soft materials (memory foam/gel/fabric) gentle on sensitive skin")
		}
	}

	if c.FacialHair {
		if entry.FacialHairCompatible {
			s.add(30, "Compatible with facial hair for proper seal")
		}
		if strings.Contains(entry.Name(), "Total Face") {
			s.add(40, "Total face mask provides best seal with facial hair")
		}
	}

	switch c.Breathing {
	case entities.BreathingMouthOnly, entities.BreathingMixed:
		if anyContains(entry.BestFor, "Mouth breathing", "Mixed breathing", "mouth breathing") {
			s.add(15, "Designed for mouth or mixed breathing")
		}
	case entities.BreathingNoseOnly:
		if anyContains(entry.BestFor, "Nose-only breathing") {
			s.add(15, "Designed for nose-only breathing")
		}
	}

	if c.Nasal == entities.NasalSeasonalAllergies && anyContains(entry.BestFor, "Allergies") {
		s.add(10, "Hypoallergenic materials suit seasonal allergies")
	}

	if c.SleepMovement == entities.MovementAllTheTime &&
		(anyContains(entry.BestFor, "High movement") || anyContains(entry.KeyFeatures, "Seal retention")) {
		s.add(15, "Maintains its seal through frequent movement")
	}

	if (c.Assistant || c.Adjustment) && !c.Implant && entry.MagneticClips {
		s.add(15, "Magnetic clips make the mask easy to put on and remove")
	}

	return s.score, s.reasons
}

func anyContains(values []string, needles ...string) bool {
	for _, v := range values {
		for _, n := range needles {
			if strings.Contains(v, n) {
				return true
			}
		}
	}
	return false
}
