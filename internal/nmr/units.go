package nmr

// Semantic unit types. The original formulas work in a consistent µm/ms
// scale; carrying the units in the type system keeps a radius from being
// fed where a time belongs.
type (
	// Micrometers is a pore-scale length.
	Micrometers float64

	// SquareMicrometers is a surface area.
	SquareMicrometers float64

	// CubicMicrometers is a volume.
	CubicMicrometers float64

	// PerMicrometer is a surface-to-volume ratio.
	PerMicrometer float64

	// Milliseconds is a relaxation or acquisition time.
	Milliseconds float64

	// MicrometersPerMillisecond is a surface relaxivity.
	MicrometersPerMillisecond float64

	// Percent is a porosity, used as the initial magnetization amplitude.
	Percent float64
)

// FromNanometers converts a length given in nanometers.
func FromNanometers(nm float64) Micrometers { return Micrometers(nm / 1000.0) }

// Nanometers reports the length in nanometers.
func (m Micrometers) Nanometers() float64 { return float64(m) * 1000.0 }

// FromSeconds converts a time given in seconds.
func FromSeconds(s float64) Milliseconds { return Milliseconds(s * 1000.0) }

// Seconds reports the time in seconds.
func (t Milliseconds) Seconds() float64 { return float64(t) / 1000.0 }
