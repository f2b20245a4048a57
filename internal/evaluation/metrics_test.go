package evaluation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

func category(c entities.MaskCategory) *entities.MaskCategory {
	return &c
}

func TestPassRate(t *testing.T) {
	assert.Equal(t, 0.0, PassRate(nil))

	results := []EvalResult{
		{ScenarioID: "a"},
		{ScenarioID: "b", Mismatches: []string{"category"}},
		{ScenarioID: "c", Violations: []Violation{{Rule: "implant"}}},
		{ScenarioID: "d"},
	}
	assert.InDelta(t, 0.5, PassRate(results), 1e-9)
}

func TestCategoryAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, CategoryAccuracy([]EvalResult{{ScenarioID: "no-category"}}))

	results := []EvalResult{
		{ExpectedCategory: category(entities.CategoryNasalMask), ActualCategory: entities.CategoryNasalMask},
		{ExpectedCategory: category(entities.CategoryFullFace), ActualCategory: entities.CategoryNasalMask},
		{ExpectedCategory: category(entities.CategoryFullFace), Err: errors.New("boom")},
		{ExpectedCategory: category(""), ActualCategory: ""},
		{ScenarioID: "unchecked"},
	}
	assert.InDelta(t, 0.5, CategoryAccuracy(results), 1e-9)
}
