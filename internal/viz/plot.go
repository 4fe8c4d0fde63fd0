package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nmrsim/internal/nmr"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Fuchsia,
	asciigraph.Aqua,
	asciigraph.White,
}

// CrossPlot renders all scenario decays over the shared time domain as a
// terminal graph with a per-scenario legend.
func CrossPlot(curves nmr.ScenarioCurves, width, height int) string {
	if len(curves) == 0 {
		return ""
	}

	data := make([][]float64, len(curves))
	colors := make([]asciigraph.AnsiColor, len(curves))
	for i, sc := range curves {
		data[i] = sc.Curve.Amplitudes()
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("porosity t2 decay (Mt vs sample)"),
		asciigraph.SeriesColors(colors...),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n\n")
	for i, sc := range curves {
		style := SeriesStyles[i%len(SeriesStyles)]
		b.WriteString("  " + style.Render(fmt.Sprintf("── %s (%.0f%%)", sc.Label, float64(sc.Porosity))))
	}
	b.WriteString("\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("  x: %d samples over %.1f..%.1f ms   y: Mt (porosity %%)",
		len(curves[0].Curve),
		float64(curves[0].Curve[0].Time),
		float64(curves[0].Curve[len(curves[0].Curve)-1].Time))))
	b.WriteString("\n")
	return b.String()
}
