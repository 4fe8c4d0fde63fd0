package viz

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/nmrsim/internal/nmr"
)

// WriteGeometry prints the derived sphere parameters and T2.
func WriteGeometry(w io.Writer, sphere nmr.Sphere, relaxivity nmr.MicrometersPerMillisecond, t2 nmr.Milliseconds) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "radius (r)\t%.4f µm\n", float64(sphere.Radius))
	fmt.Fprintf(tw, "surface area (S)\t%.4f µm²\n", float64(sphere.SurfaceArea))
	fmt.Fprintf(tw, "volume (V)\t%.4f µm³\n", float64(sphere.Volume))
	fmt.Fprintf(tw, "surface-to-volume (S/V)\t%.4f 1/µm\n", float64(sphere.SurfaceToVolume()))
	fmt.Fprintf(tw, "relaxivity (p)\t%.4f µm/ms\n", float64(relaxivity))
	fmt.Fprintf(tw, "T2\t%.4f ms\n", float64(t2))
	return tw.Flush()
}

// WriteTables prints one T2-vs-Mt table per scenario, in scenario order.
func WriteTables(w io.Writer, curves nmr.ScenarioCurves) error {
	for _, sc := range curves {
		fmt.Fprintf(w, "%s (%.0f%%)\n", sc.Label, float64(sc.Porosity))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "T2 (ms)\tMt\t")
		for _, s := range sc.Curve {
			fmt.Fprintf(tw, "%.1f\t%.4f\t\n", float64(s.Time), s.Amplitude)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteSweepTable prints the per-radius geometry and T2 of a pore-size
// sweep, one row per radius.
func WriteSweepTable(w io.Writer, curves []nmr.PoreCurve) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RADIUS\tS\tV\tS/V\tT2")
	for _, pc := range curves {
		fmt.Fprintf(tw, "%.2f µm\t%.4f µm²\t%.4f µm³\t%.4f 1/µm\t%.4f ms\n",
			float64(pc.Radius),
			float64(pc.Sphere.SurfaceArea),
			float64(pc.Sphere.Volume),
			float64(pc.Sphere.SurfaceToVolume()),
			float64(pc.T2),
		)
	}
	return tw.Flush()
}
