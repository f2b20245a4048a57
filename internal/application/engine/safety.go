package engine

import (
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// CheckSafety derives the hard constraints. The three checks are independent
// and any combination of flags may be raised.
func CheckSafety(r entities.PatientResponses) entities.SafetyConstraints {
	constraints := entities.SafetyConstraints{
		CanUseFullFace: true,
		CanUseMagnetic: true,
		SafetyFlags:    []entities.SafetyFlag{},
	}

	if r.Eye || r.Drug {
		constraints.CanUseFullFace = false
		constraints.SafetyFlags = append(constraints.SafetyFlags, entities.SafetyFlag{
			Severity:    entities.SeverityCritical,
			Message:     "Full face contraindicated - aspiration risk",
			Restriction: "NASAL_ONLY",
		})
	}

	if r.Assistant {
		constraints.RequiresEasyRemoval = true
		constraints.SafetyFlags = append(constraints.SafetyFlags, entities.SafetyFlag{
			Severity:    entities.SeverityCritical,
			Message:     "Easy removal mechanism required for safety",
			Requirement: "MAGNETIC_OR_EASY_REMOVAL",
		})
	}

	if r.Implant {
		constraints.CanUseMagnetic = false
		constraints.SafetyFlags = append(constraints.SafetyFlags, entities.SafetyFlag{
			Severity:    entities.SeverityModerate,
			Message:     "Magnetic headgear contraindicated",
			Restriction: "NON_MAGNETIC_ONLY",
		})
	}

	return constraints
}

// EvaluateSafety is stage 1
func EvaluateSafety(s State, r entities.PatientResponses) State {
	next := s.clone()
	next.Constraints = CheckSafety(r)

	if r.Eye {
		next.influence(entities.BucketMaskType, "eye", "true", "Eye condition rules out full face masks (aspiration risk)")
	}
	if r.Drug {
		next.influence(entities.BucketMaskType, "drug", "true", "Reflux/vomiting risk rules out full face masks (aspiration risk)")
	}
	if r.Assistant {
		next.influence(entities.BucketAttachment, "assistant", "true", "An assistant must be able to remove the mask quickly")
	}
	if r.Implant {
		next.influence(entities.BucketAttachment, "implant", "true", "Implants contraindicate magnetic headgear")
	}
	return next
}
