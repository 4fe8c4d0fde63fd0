package nmr

// Scenario is one assumed initial porosity whose decay is modeled
// independently against a shared T2.
type Scenario struct {
	Label    string
	Porosity Percent
}

// ScenarioCurve pairs a scenario with its computed decay curve.
type ScenarioCurve struct {
	Scenario
	Curve Curve
}

// ScenarioCurves preserves scenario order for downstream tables and plots.
type ScenarioCurves []ScenarioCurve

// Get looks a curve up by scenario label.
func (s ScenarioCurves) Get(label string) (Curve, bool) {
	for _, sc := range s {
		if sc.Label == label {
			return sc.Curve, true
		}
	}
	return nil, false
}

// GenerateScenarios applies DecayCurve once per scenario, reusing the same
// t2 and time domain. Scenarios do not interact; each curve is scaled only
// by its own porosity.
func GenerateScenarios(t2 Milliseconds, scenarios []Scenario, domain TimeDomain) (ScenarioCurves, error) {
	out := make(ScenarioCurves, len(scenarios))
	for i, sc := range scenarios {
		curve, err := DecayCurve(t2, sc.Porosity, domain)
		if err != nil {
			return nil, err
		}
		out[i] = ScenarioCurve{Scenario: sc, Curve: curve}
	}
	return out, nil
}

// PoreCurve is the result of one radius in a pore-size sweep: its own
// geometry-driven T2 and the decay at the shared porosity.
type PoreCurve struct {
	Radius Micrometers
	Sphere Sphere
	T2     Milliseconds
	Curve  Curve
}

// SweepPoreSizes models the same porosity across several pore radii. Unlike
// GenerateScenarios, every radius gets its own T2.
func SweepPoreSizes(relaxivity MicrometersPerMillisecond, radii []Micrometers, porosity Percent, domain TimeDomain) ([]PoreCurve, error) {
	if len(radii) == 0 {
		return nil, invalidParam("radii_len", 0)
	}
	out := make([]PoreCurve, len(radii))
	for i, r := range radii {
		sphere, err := SphereGeometry(r)
		if err != nil {
			return nil, err
		}
		t2, err := T2(relaxivity, sphere.SurfaceToVolume())
		if err != nil {
			return nil, err
		}
		curve, err := DecayCurve(t2, porosity, domain)
		if err != nil {
			return nil, err
		}
		out[i] = PoreCurve{Radius: r, Sphere: sphere, T2: t2, Curve: curve}
	}
	return out, nil
}
