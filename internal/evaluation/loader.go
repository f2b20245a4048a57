package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadGoldenScenarios reads and parses a golden scenario set from a JSON file.
func LoadGoldenScenarios(path string) ([]GoldenScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden scenarios file: %w", err)
	}

	var scenarios []GoldenScenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse golden scenarios: %w", err)
	}

	return scenarios, nil
}

// ValidateGoldenScenarios checks that every scenario has an id and at least
// one expectation, and that expected categories are known.
func ValidateGoldenScenarios(scenarios []GoldenScenario) error {
	seen := make(map[string]struct{}, len(scenarios))

	for i, s := range scenarios {
		if s.ID == "" {
			return fmt.Errorf("scenario at index %d: missing id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("scenario at index %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Expect.isEmpty() {
			return fmt.Errorf("scenario %q: no expectations", s.ID)
		}
		if c := s.Expect.Category; c != nil && *c != "" && !c.IsValid() {
			return fmt.Errorf("scenario %q: invalid category %q", s.ID, *c)
		}
	}

	return nil
}

func (e Expectation) isEmpty() bool {
	return e.Category == nil && e.SuccessRate == "" &&
		e.CanUseFullFace == nil && e.CanUseMagnetic == nil && e.RequiresEasyRemoval == nil &&
		e.CriticalFlags == nil && e.MagneticScore == nil &&
		len(e.AccessoriesInclude) == 0 && len(e.AccessoriesExclude) == 0 && len(e.NotesContain) == 0
}
