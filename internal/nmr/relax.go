package nmr

import "math"

// T2 derives the surface-relaxation time constant from relaxivity and
// surface-to-volume ratio: T2 = 1 / (p * S/V).
func T2(relaxivity MicrometersPerMillisecond, sv PerMicrometer) (Milliseconds, error) {
	if relaxivity <= 0 {
		return 0, invalidParam("relaxivity", float64(relaxivity))
	}
	if sv <= 0 {
		return 0, invalidParam("surface_to_volume", float64(sv))
	}
	return Milliseconds(1.0 / (float64(relaxivity) * float64(sv))), nil
}

// Sample is one (time, magnetization amplitude) point of a decay curve.
type Sample struct {
	Time      Milliseconds
	Amplitude float64
}

// Curve is an ordered magnetization decay, one sample per time-domain point.
type Curve []Sample

// Amplitudes returns the amplitude column of the curve.
func (c Curve) Amplitudes() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.Amplitude
	}
	return out
}

// Times returns the time column of the curve.
func (c Curve) Times() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = float64(s.Time)
	}
	return out
}

// DecayCurve evaluates Mt(t) = amplitude * exp(-t/t2) over the domain.
// The sample at t=0, if present, equals the initial amplitude exactly.
// A negative amplitude is accepted mathematically; rejecting it as a
// porosity is the caller's job.
func DecayCurve(t2 Milliseconds, amplitude Percent, domain TimeDomain) (Curve, error) {
	if t2 <= 0 {
		return nil, invalidParam("t2", float64(t2))
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	curve := make(Curve, len(domain))
	for i, t := range domain {
		mt := float64(amplitude)
		if t != 0 {
			mt *= math.Exp(-float64(t) / float64(t2))
		}
		curve[i] = Sample{Time: t, Amplitude: mt}
	}
	return curve, nil
}
