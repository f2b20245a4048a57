package evaluation

// PassRate is the fraction of results that met every expectation and
// guardrail. Returns 0.0 for no results.
func PassRate(results []EvalResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}
	return float64(passed) / float64(len(results))
}

// CategoryAccuracy is the fraction of results with an expected category
// whose recommended category matched it. Returns 0.0 if no result
// expected a category.
func CategoryAccuracy(results []EvalResult) float64 {
	expected, matched := 0, 0
	for _, r := range results {
		if r.ExpectedCategory == nil || r.Err != nil {
			if r.ExpectedCategory != nil {
				expected++
			}
			continue
		}
		expected++
		if *r.ExpectedCategory == r.ActualCategory {
			matched++
		}
	}
	if expected == 0 {
		return 0.0
	}
	return float64(matched) / float64(expected)
}
