package nmr

import (
	"errors"
	"math"
	"testing"
)

func TestSphereGeometry(t *testing.T) {
	s, err := SphereGeometry(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantArea := 4 * math.Pi * 100
	if math.Abs(float64(s.SurfaceArea)-wantArea) > 1e-9 {
		t.Errorf("expected surface area %f, got %f", wantArea, float64(s.SurfaceArea))
	}

	wantVolume := (4.0 / 3.0) * math.Pi * 1000
	if math.Abs(float64(s.Volume)-wantVolume) > 1e-9 {
		t.Errorf("expected volume %f, got %f", wantVolume, float64(s.Volume))
	}
}

func TestSurfaceToVolumeIsThreeOverRadius(t *testing.T) {
	for _, r := range []float64{0.1, 0.5, 1.0, 2.5, 10.0, 123.4} {
		s, err := SphereGeometry(Micrometers(r))
		if err != nil {
			t.Fatalf("radius %f: unexpected error: %v", r, err)
		}
		got := float64(s.SurfaceToVolume())
		want := 3.0 / r
		if math.Abs(got-want)/want > 1e-9 {
			t.Errorf("radius %f: expected S/V %f, got %f", r, want, got)
		}
	}
}

func TestSphereGeometryInvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -5} {
		_, err := SphereGeometry(Micrometers(r))
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("radius %f: expected ErrInvalidParameter, got %v", r, err)
		}
	}
}

func TestSphereGeometryIdempotent(t *testing.T) {
	a, _ := SphereGeometry(2.5)
	b, _ := SphereGeometry(2.5)
	if a != b {
		t.Errorf("expected identical results, got %+v and %+v", a, b)
	}
}
