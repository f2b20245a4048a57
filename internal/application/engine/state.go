package engine

import (
	"slices"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// Influence ties a fired rule to the output dimension it shaped
type Influence struct {
	Bucket entities.InfluenceBucket
	Detail entities.FactorInfluenceDetail
}

// State is the value threaded through the stages. A stage never mutates the
// State it receives; it works on a clone and returns it.
type State struct {
	Constraints       entities.SafetyConstraints
	Mask              entities.MaskRecommendation
	ModificationNotes []entities.ModificationNote
	RefinementNotes   []entities.ModificationNote
	Attachments       []entities.AttachmentOption
	Accessories       []entities.AccessoryRecommendation
	Trace             []Influence
}

// Stage is one step of the recommendation pipeline
type Stage func(State, entities.PatientResponses) State

// Pipeline is an ordered list of stages applied left to right
type Pipeline []Stage

// DefaultPipeline returns stages 1-6 in their required order
func DefaultPipeline() Pipeline {
	return Pipeline{
		EvaluateSafety,
		SelectCategory,
		ApplyStrongModifiers,
		ApplyModerateModifiers,
		ScoreAttachments,
		SelectAccessories,
	}
}

// Run folds the responses through every stage starting from the zero State
func (p Pipeline) Run(responses entities.PatientResponses) State {
	var state State
	for _, stage := range p {
		state = stage(state, responses)
	}
	return state
}

func (s State) clone() State {
	next := s
	next.Constraints.SafetyFlags = slices.Clone(s.Constraints.SafetyFlags)
	next.Mask.SpecificModels = slices.Clone(s.Mask.SpecificModels)
	next.Mask.AlternativeModels = slices.Clone(s.Mask.AlternativeModels)
	next.Mask.RequiredAccessories = slices.Clone(s.Mask.RequiredAccessories)
	next.Mask.Notes = slices.Clone(s.Mask.Notes)
	next.ModificationNotes = slices.Clone(s.ModificationNotes)
	next.RefinementNotes = slices.Clone(s.RefinementNotes)
	next.Attachments = slices.Clone(s.Attachments)
	next.Accessories = slices.Clone(s.Accessories)
	next.Trace = slices.Clone(s.Trace)
	return next
}

func (s *State) influence(bucket entities.InfluenceBucket, factor, value, reason string) {
	s.Trace = append(s.Trace, Influence{
		Bucket: bucket,
		Detail: entities.FactorInfluenceDetail{Factor: factor, Value: value, Reason: reason},
	})
}
