package nmr

import "math"

// Sphere holds the derived geometry of a spherical pore body.
type Sphere struct {
	Radius      Micrometers
	SurfaceArea SquareMicrometers
	Volume      CubicMicrometers
}

// SphereGeometry derives surface area and volume for a pore of the given
// radius. The radius must be strictly positive.
func SphereGeometry(radius Micrometers) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, invalidParam("radius", float64(radius))
	}
	r := float64(radius)
	return Sphere{
		Radius:      radius,
		SurfaceArea: SquareMicrometers(4 * math.Pi * r * r),
		Volume:      CubicMicrometers((4.0 / 3.0) * math.Pi * r * r * r),
	}, nil
}

// SurfaceToVolume returns S/V, which for a sphere reduces to 3/radius.
func (s Sphere) SurfaceToVolume() PerMicrometer {
	return PerMicrometer(float64(s.SurfaceArea) / float64(s.Volume))
}
