package evaluation

import (
	"fmt"

	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// Violation is one broken safety or structural rule
type Violation struct {
	Rule   string
	Detail string
}

func (v Violation) String() string {
	return v.Rule + ": " + v.Detail
}

// Guardrails checks the rules every recommendation must satisfy,
// whatever the answers were.
type Guardrails struct {
	magnetic map[string]bool
}

// NewGuardrails creates the checker. The catalog is used to recognise
// magnetic mask examples; with a nil catalog that check is skipped.
func NewGuardrails(catalog []entities.CatalogEntry) *Guardrails {
	magnetic := make(map[string]bool, len(catalog))
	for _, e := range catalog {
		magnetic[e.Name()] = e.MagneticClips
	}
	return &Guardrails{magnetic: magnetic}
}

// Check returns every rule the recommendation breaks for the given answers
func (g *Guardrails) Check(r entities.PatientResponses, rec *entities.Recommendation) []Violation {
	var violations []Violation
	add := func(rule, format string, args ...any) {
		violations = append(violations, Violation{Rule: rule, Detail: fmt.Sprintf(format, args...)})
	}

	if r.Eye || r.Drug {
		if rec.MaskType == entities.CategoryFullFace {
			add("aspiration", "full face recommended despite aspiration risk")
		}
		if rec.AlternativeCategory == entities.CategoryFullFace {
			add("aspiration", "full face offered as alternative despite aspiration risk")
		}
		if !hasCriticalFlag(rec, func(f entities.SafetyFlag) bool { return f.Restriction == "NASAL_ONLY" }) {
			add("aspiration", "missing CRITICAL aspiration-risk flag")
		}
	}

	if r.Implant {
		for _, opt := range rec.AttachmentOptions {
			if opt.Type == engine.AttachmentMagneticQuickRelease && opt.Score != 0 {
				add("implant", "magnetic attachment scored %d", opt.Score)
			}
		}
		for _, group := range rec.MaskExamples {
			for _, mask := range group.Masks {
				if g.magnetic[mask.Model] {
					add("implant", "magnetic mask %s suggested", mask.Model)
				}
			}
		}
	}

	if r.Assistant && !hasCriticalFlag(rec, func(f entities.SafetyFlag) bool { return f.Requirement != "" }) {
		add("easy-removal", "missing CRITICAL easy-removal flag")
	}

	if len(rec.AttachmentOptions) != engine.AttachmentCandidateCount {
		add("attachments", "%d attachment candidates, want %d", len(rec.AttachmentOptions), engine.AttachmentCandidateCount)
	}
	for i := 1; i < len(rec.AttachmentOptions); i++ {
		if rec.AttachmentOptions[i].Score > rec.AttachmentOptions[i-1].Score {
			add("attachments", "ranking not descending at position %d", i)
			break
		}
	}

	seen := make(map[string]bool, len(rec.Accessories))
	for _, acc := range rec.Accessories {
		if seen[acc.Item] {
			add("accessories", "duplicate item %q", acc.Item)
		}
		seen[acc.Item] = true
	}
	if !r.MouthTapeSafe() && seen[engine.AccessoryMouthTape] {
		add("accessories", "mouth tape suggested without the mouth-tape-safe gate")
	}

	return violations
}

func hasCriticalFlag(rec *entities.Recommendation, match func(entities.SafetyFlag) bool) bool {
	for _, flag := range rec.SafetyFlags {
		if flag.Severity == entities.SeverityCritical && match(flag) {
			return true
		}
	}
	return false
}
