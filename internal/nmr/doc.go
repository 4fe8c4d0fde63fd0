// Package nmr provides the core petrophysical primitives for NMR T2
// relaxation of idealized spherical pores.
//
// The package covers three stages, evaluated leaf-first:
//
//   - [SphereGeometry]: surface area, volume, and surface-to-volume ratio
//     of a spherical pore
//   - [T2]: surface-relaxation time constant from relaxivity and S/V
//   - [GenerateScenarios]: one magnetization decay curve per porosity
//     scenario, all sharing a single T2
//
// # Example
//
//	sphere, _ := nmr.SphereGeometry(10)
//	t2, _ := nmr.T2(0.003, sphere.SurfaceToVolume())
//	domain, _ := nmr.UniformDomain(t2, 200)
//	curves, _ := nmr.GenerateScenarios(t2, scenarios, domain)
//
// # Units
//
// Lengths are micrometers and times are milliseconds throughout; the
// semantic types ([Micrometers], [Milliseconds], ...) exist so that the
// compiler catches unit-mixing rather than convention.
//
// # Thread Safety
//
// Every function is a pure transformation of its inputs with no retained
// state, so all of them are safe for concurrent use.
package nmr
