package nmr

import "sync"

// GenerateScenariosParallel is GenerateScenarios with one goroutine per
// scenario. Each task owns its inputs and writes to a distinct slot, so no
// synchronization beyond the final join is needed. Worth it only for large
// scenario sets; the sequential path is fine for the usual three.
func GenerateScenariosParallel(t2 Milliseconds, scenarios []Scenario, domain TimeDomain) (ScenarioCurves, error) {
	if t2 <= 0 {
		return nil, invalidParam("t2", float64(t2))
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	out := make(ScenarioCurves, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(idx int, sc Scenario) {
			defer wg.Done()
			curve, err := DecayCurve(t2, sc.Porosity, domain)
			out[idx] = ScenarioCurve{Scenario: sc, Curve: curve}
			errs[idx] = err
		}(i, sc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
