package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/nmrsim/internal/nmr"
)

// Report is the self-contained result of one evaluation: the inputs, the
// derived geometry, and every scenario curve.
type Report struct {
	Relaxivity      float64        `json:"relaxivity_um_per_ms"`
	Radius          float64        `json:"radius_um"`
	SurfaceArea     float64        `json:"surface_area_um2"`
	Volume          float64        `json:"volume_um3"`
	SurfaceToVolume float64        `json:"surface_to_volume_per_um"`
	T2              float64        `json:"t2_ms"`
	Times           []float64      `json:"times_ms"`
	Scenarios       []ScenarioData `json:"scenarios"`
}

type ScenarioData struct {
	Label      string    `json:"label"`
	Porosity   float64   `json:"porosity_percent"`
	Amplitudes []float64 `json:"amplitudes"`
}

// NewReport assembles a Report from core results.
func NewReport(relaxivity nmr.MicrometersPerMillisecond, sphere nmr.Sphere, t2 nmr.Milliseconds, curves nmr.ScenarioCurves) Report {
	report := Report{
		Relaxivity:      float64(relaxivity),
		Radius:          float64(sphere.Radius),
		SurfaceArea:     float64(sphere.SurfaceArea),
		Volume:          float64(sphere.Volume),
		SurfaceToVolume: float64(sphere.SurfaceToVolume()),
		T2:              float64(t2),
		Scenarios:       make([]ScenarioData, len(curves)),
	}
	if len(curves) > 0 {
		report.Times = curves[0].Curve.Times()
	}
	for i, sc := range curves {
		report.Scenarios[i] = ScenarioData{
			Label:      sc.Label,
			Porosity:   float64(sc.Porosity),
			Amplitudes: sc.Curve.Amplitudes(),
		}
	}
	return report
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
