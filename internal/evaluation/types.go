package evaluation

import (
	"time"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// GoldenScenario is a labeled set of answers with the expected outcome.
// Unset expectation fields are not checked.
type GoldenScenario struct {
	ID          string                    `json:"id"`
	Description string                    `json:"description"`
	Responses   entities.PatientResponses `json:"responses"`
	Expect      Expectation               `json:"expect"`
}

// Expectation lists what a scenario asserts about the recommendation
type Expectation struct {
	Category            *entities.MaskCategory `json:"category,omitempty"`
	SuccessRate         string                 `json:"successRate,omitempty"`
	CanUseFullFace      *bool                  `json:"canUseFullFace,omitempty"`
	CanUseMagnetic      *bool                  `json:"canUseMagnetic,omitempty"`
	RequiresEasyRemoval *bool                  `json:"requiresEasyRemoval,omitempty"`
	CriticalFlags       *int                   `json:"criticalFlags,omitempty"`
	MagneticScore       *int                   `json:"magneticScore,omitempty"`
	AccessoriesInclude  []string               `json:"accessoriesInclude,omitempty"`
	AccessoriesExclude  []string               `json:"accessoriesExclude,omitempty"`
	NotesContain        []string               `json:"notesContain,omitempty"`
}

// EvalResult holds the evaluation outcome for a single scenario.
type EvalResult struct {
	ScenarioID       string
	ExpectedCategory *entities.MaskCategory
	ActualCategory   entities.MaskCategory
	Mismatches       []string
	Violations       []Violation
	Err              error
	Latency          time.Duration
}

// Passed reports whether the scenario met every expectation and guardrail
func (r EvalResult) Passed() bool {
	return r.Err == nil && len(r.Mismatches) == 0 && len(r.Violations) == 0
}

// EvalSummary holds aggregate results across all golden scenarios.
type EvalSummary struct {
	TotalScenarios   int
	Passed           int
	PassRate         float64
	CategoryAccuracy float64
	AvgLatency       time.Duration
	ByCategory       map[entities.MaskCategory]*CategorySummary
	Results          []EvalResult
}

// CategorySummary groups results by the expected category
type CategorySummary struct {
	Count  int
	Passed int
}
