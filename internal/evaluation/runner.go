package evaluation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// Recommender computes a recommendation for one set of answers
type Recommender interface {
	Recommend(responses *entities.PatientResponses) (*entities.Recommendation, error)
}

// Runner runs evaluation across a set of golden scenarios.
type Runner struct {
	recommender Recommender
	guardrails  *Guardrails
}

func NewRunner(recommender Recommender, guardrails *Guardrails) *Runner {
	return &Runner{recommender: recommender, guardrails: guardrails}
}

// Run evaluates every scenario and aggregates the results
func (r *Runner) Run(scenarios []GoldenScenario) *EvalSummary {
	summary := &EvalSummary{
		TotalScenarios: len(scenarios),
		ByCategory:     make(map[entities.MaskCategory]*CategorySummary),
		Results:        make([]EvalResult, 0, len(scenarios)),
	}

	for _, s := range scenarios {
		result := r.evaluate(s)
		summary.Results = append(summary.Results, result)
		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	return summary
}

func (r *Runner) evaluate(s GoldenScenario) EvalResult {
	result := EvalResult{ScenarioID: s.ID, ExpectedCategory: s.Expect.Category}

	responses := s.Responses
	start := time.Now()
	rec, err := r.recommender.Recommend(&responses)
	result.Latency = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}

	result.ActualCategory = rec.MaskType
	result.Mismatches = compare(s.Expect, rec)
	if r.guardrails != nil {
		result.Violations = r.guardrails.Check(s.Responses, rec)
	}
	return result
}

func compare(want Expectation, rec *entities.Recommendation) []string {
	var mismatches []string
	mismatch := func(format string, args ...any) {
		mismatches = append(mismatches, fmt.Sprintf(format, args...))
	}

	if want.Category != nil && *want.Category != rec.MaskType {
		mismatch("category: want %q, got %q", *want.Category, rec.MaskType)
	}
	if want.SuccessRate != "" && want.SuccessRate != rec.SuccessRate {
		mismatch("success rate: want %s, got %s", want.SuccessRate, rec.SuccessRate)
	}
	if want.CanUseFullFace != nil && *want.CanUseFullFace != rec.Constraints.CanUseFullFace {
		mismatch("canUseFullFace: want %t", *want.CanUseFullFace)
	}
	if want.CanUseMagnetic != nil && *want.CanUseMagnetic != rec.Constraints.CanUseMagnetic {
		mismatch("canUseMagnetic: want %t", *want.CanUseMagnetic)
	}
	if want.RequiresEasyRemoval != nil && *want.RequiresEasyRemoval != rec.Constraints.RequiresEasyRemoval {
		mismatch("requiresEasyRemoval: want %t", *want.RequiresEasyRemoval)
	}
	if want.CriticalFlags != nil {
		critical := 0
		for _, flag := range rec.SafetyFlags {
			if flag.Severity == entities.SeverityCritical {
				critical++
			}
		}
		if critical != *want.CriticalFlags {
			mismatch("critical flags: want %d, got %d", *want.CriticalFlags, critical)
		}
	}
	if want.MagneticScore != nil {
		for _, opt := range rec.AttachmentOptions {
			if opt.Type == engine.AttachmentMagneticQuickRelease && opt.Score != *want.MagneticScore {
				mismatch("magnetic score: want %d, got %d", *want.MagneticScore, opt.Score)
			}
		}
	}

	items := make([]string, 0, len(rec.Accessories))
	for _, acc := range rec.Accessories {
		items = append(items, acc.Item)
	}
	for _, item := range want.AccessoriesInclude {
		if !slices.Contains(items, item) {
			mismatch("accessories: missing %q", item)
		}
	}
	for _, item := range want.AccessoriesExclude {
		if slices.Contains(items, item) {
			mismatch("accessories: unexpected %q", item)
		}
	}

	notes := noteText(rec)
	for _, fragment := range want.NotesContain {
		if !strings.Contains(notes, fragment) {
			mismatch("notes: missing %q", fragment)
		}
	}

	return mismatches
}

// noteText flattens the notes and modification notes for substring checks
func noteText(rec *entities.Recommendation) string {
	var b strings.Builder
	for _, n := range rec.Notes {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	for _, n := range rec.ModificationNotes {
		for _, field := range []string{n.Factor, n.Change, n.Suggestion, n.Rationale, n.Implementation, n.Warning, n.Contraindication} {
			if field != "" {
				b.WriteString(field)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgLatency += res.Latency
	if res.Passed() {
		s.Passed++
	}

	var category entities.MaskCategory
	if res.ExpectedCategory != nil {
		category = *res.ExpectedCategory
	}
	if _, ok := s.ByCategory[category]; !ok {
		s.ByCategory[category] = &CategorySummary{}
	}
	cs := s.ByCategory[category]
	cs.Count++
	if res.Passed() {
		cs.Passed++
	}
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	if s.TotalScenarios > 0 {
		s.AvgLatency /= time.Duration(s.TotalScenarios)
	}
	s.PassRate = PassRate(s.Results)
	s.CategoryAccuracy = CategoryAccuracy(s.Results)
}

// SweepResult is the outcome of checking guardrails over the answer space
type SweepResult struct {
	Checked    int
	Errors     int
	Violations map[string]int
	// Examples keeps the first offending answers per rule
	Examples map[string]entities.PatientResponses
}

// Sweep runs the guardrails over every combination of answers, including
// the unanswered value of each field.
func (r *Runner) Sweep() *SweepResult {
	result := &SweepResult{
		Violations: make(map[string]int),
		Examples:   make(map[string]entities.PatientResponses),
	}
	guardrails := r.guardrails
	if guardrails == nil {
		guardrails = NewGuardrails(nil)
	}

	ForEachResponses(func(responses entities.PatientResponses) {
		result.Checked++
		answers := responses
		rec, err := r.recommender.Recommend(&answers)
		if err != nil {
			result.Errors++
			return
		}
		for _, v := range guardrails.Check(responses, rec) {
			if result.Violations[v.Rule] == 0 {
				result.Examples[v.Rule] = responses
			}
			result.Violations[v.Rule]++
		}
	})
	return result
}

var (
	breathingValues = []entities.BreathingPattern{"", entities.BreathingNoseOnly, entities.BreathingMouthOnly, entities.BreathingMixed}
	nasalValues     = []entities.NasalStatus{"", entities.NasalNoObstruction, entities.NasalMildObstruction, entities.NasalSevereObstruction, entities.NasalDeviatedSeptum, entities.NasalSeasonalAllergies}
	positionValues  = []entities.SleepPosition{"", entities.SleepBack, entities.SleepSide, entities.SleepStomach, entities.SleepSitting}
	movementValues  = []entities.SleepMovement{"", entities.MovementNone, entities.MovementSome, entities.MovementAllTheTime}
)

// booleanAnswers is the number of yes/no questions
const booleanAnswers = 8

// ForEachResponses calls fn once for every combination of answers
func ForEachResponses(fn func(entities.PatientResponses)) {
	for _, breathing := range breathingValues {
		for _, nasal := range nasalValues {
			for _, position := range positionValues {
				for _, movement := range movementValues {
					for mask := 0; mask < 1<<booleanAnswers; mask++ {
						bit := func(i int) bool { return mask&(1<<i) != 0 }
						fn(entities.PatientResponses{
							Breathing:       breathing,
							Nasal:           nasal,
							SleepPosition:   position,
							SleepMovement:   movement,
							Claustrophobic:  bit(0),
							FacialHair:      bit(1),
							Adjustment:      bit(2),
							Implant:         bit(3),
							Eye:             bit(4),
							Drug:            bit(5),
							Assistant:       bit(6),
							SkinSensitivity: bit(7),
						})
					}
				}
			}
		}
	}
}

// ResponseSpaceSize is the number of combinations ForEachResponses visits
func ResponseSpaceSize() int {
	return len(breathingValues) * len(nasalValues) * len(positionValues) * len(movementValues) * (1 << booleanAnswers)
}
