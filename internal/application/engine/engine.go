package engine

import (
	"slices"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

// DefaultSuccessRate is reported when no rule produced an estimate
const DefaultSuccessRate = "75-85%"

// Engine assembles a full recommendation from the staged pipeline and the catalog
type Engine struct {
	catalog  providers.CatalogQuerier
	pipeline Pipeline
}

// New creates an engine over the given catalog. A nil catalog yields
// recommendations without concrete mask examples.
func New(catalog providers.CatalogQuerier) *Engine {
	return &Engine{
		catalog:  catalog,
		pipeline: DefaultPipeline(),
	}
}

// Recommend computes the recommendation for one set of responses. Only a
// missing response record is rejected; sparse records are valid.
func (e *Engine) Recommend(responses *entities.PatientResponses) (*entities.Recommendation, error) {
	if responses == nil {
		return nil, apperrors.NewValidationError("No responses provided")
	}
	r := *responses

	state := e.pipeline.Run(r)
	mask := state.Mask

	successRate := mask.SuccessRate
	if successRate == "" {
		successRate = DefaultSuccessRate
	}

	rec := &entities.Recommendation{
		MaskType:              mask.Category,
		MaskTypeLabel:         mask.Category.Label(),
		SuccessRate:           successRate,
		SpecificModels:        nonNil(mask.SpecificModels),
		AlternativeCategory:   mask.AlternativeCategory,
		AlternativeModels:     nonNil(mask.AlternativeModels),
		AttachmentOptions:     state.Attachments,
		AttachmentRequirement: mask.AttachmentRequirement,
		AttachmentPreference:  mask.AttachmentPreference,
		DesignPreference:      mask.DesignPreference,
		Accessories:           MergeAccessories(mask.RequiredAccessories, state.Accessories),
		SafetyFlags:           state.Constraints.SafetyFlags,
		Notes:                 nonNil(mask.Notes),
		ModificationNotes:     append(slices.Clone(state.ModificationNotes), state.RefinementNotes...),
		FactorInfluence:       SummarizeInfluence(state.Trace),
		Constraints:           state.Constraints,
	}
	if rec.ModificationNotes == nil {
		rec.ModificationNotes = []entities.ModificationNote{}
	}

	if len(state.Attachments) > 0 {
		rec.Attachment = state.Attachments[0]
		rec.AttachmentAlternatives = slices.Clone(state.Attachments[1:min(4, len(state.Attachments))])
	}

	scored := findExamples(e.catalog, mask.Category, CriteriaFor(r))
	rec.MaskExamples = GroupExamples(scored, r, MaxMaskExamples)

	return rec, nil
}

// SummarizeInfluence groups fired-rule records by bucket and counts the
// distinct factors in each.
func SummarizeInfluence(trace []Influence) entities.FactorInfluence {
	summary := entities.FactorInfluence{
		Details: entities.FactorInfluenceBreakdown{
			MaskType:    []entities.FactorInfluenceDetail{},
			Attachment:  []entities.FactorInfluenceDetail{},
			Accessories: []entities.FactorInfluenceDetail{},
		},
	}

	seen := map[entities.InfluenceBucket]map[string]struct{}{
		entities.BucketMaskType:    {},
		entities.BucketAttachment:  {},
		entities.BucketAccessories: {},
	}

	for _, inf := range trace {
		factors, ok := seen[inf.Bucket]
		if !ok {
			continue
		}
		_, counted := factors[inf.Detail.Factor]
		factors[inf.Detail.Factor] = struct{}{}

		switch inf.Bucket {
		case entities.BucketMaskType:
			summary.Details.MaskType = append(summary.Details.MaskType, inf.Detail)
			if !counted {
				summary.Counts.MaskType++
			}
		case entities.BucketAttachment:
			summary.Details.Attachment = append(summary.Details.Attachment, inf.Detail)
			if !counted {
				summary.Counts.Attachment++
			}
		case entities.BucketAccessories:
			summary.Details.Accessories = append(summary.Details.Accessories, inf.Detail)
			if !counted {
				summary.Counts.Accessories++
			}
		}
	}
	return summary
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
