package nmr

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the grid resolution used when the caller does not
// supply one. It only affects plot fidelity, not the physics.
const DefaultSamples = 200

// TimeDomain is a non-decreasing sequence of non-negative sample times.
type TimeDomain []Milliseconds

// Validate reports the first defect found: empty domain, negative time,
// or decreasing order.
func (d TimeDomain) Validate() error {
	if len(d) == 0 {
		return invalidParam("time_domain_len", 0)
	}
	prev := Milliseconds(-1)
	for _, t := range d {
		if t < 0 {
			return invalidParam("time", float64(t))
		}
		if t < prev {
			return invalidParam("time_order", float64(t))
		}
		prev = t
	}
	return nil
}

// UniformDomain builds an evenly spaced grid over [0, 5*t2], wide enough
// for the curve to visibly reach near-zero.
func UniformDomain(t2 Milliseconds, samples int) (TimeDomain, error) {
	if t2 <= 0 {
		return nil, invalidParam("t2", float64(t2))
	}
	if samples < 2 {
		return nil, invalidParam("samples", float64(samples))
	}
	grid := make([]float64, samples)
	floats.Span(grid, 0, 5*float64(t2))
	return fromFloats(grid), nil
}

// GeometricDomain builds a logarithmically spaced grid over [start, stop],
// matching the classic 0.5..1024 ms acquisition ladder.
func GeometricDomain(start, stop Milliseconds, samples int) (TimeDomain, error) {
	if start <= 0 {
		return nil, invalidParam("start", float64(start))
	}
	if stop <= start {
		return nil, invalidParam("stop", float64(stop))
	}
	if samples < 2 {
		return nil, invalidParam("samples", float64(samples))
	}
	grid := make([]float64, samples)
	floats.LogSpan(grid, float64(start), float64(stop))
	return fromFloats(grid), nil
}

// ParseTimeDomain parses a comma-separated list of times in milliseconds,
// e.g. "0.5, 1, 2, 4". The result must still validate.
func ParseTimeDomain(s string) (TimeDomain, error) {
	parts := strings.Split(s, ",")
	domain := make(TimeDomain, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, invalidParam("time_value", 0)
		}
		domain = append(domain, Milliseconds(v))
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	return domain, nil
}

func fromFloats(grid []float64) TimeDomain {
	domain := make(TimeDomain, len(grid))
	for i, v := range grid {
		domain[i] = Milliseconds(v)
	}
	return domain
}
