package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/nmrsim/internal/nmr"
)

// series colors and marker shapes cycle per scenario, echoing the usual
// o/s/^ plot markers.
var svgPalette = []string{"#00ff88", "#ffcc00", "#ff4444", "#00ccff", "#ff88ff"}

type markerShape int

const (
	markerCircle markerShape = iota
	markerSquare
	markerTriangle
)

// WriteSVG renders the cross-plot of all scenario curves as an SVG
// document: one polyline with markers per scenario plus a legend.
func WriteSVG(w io.Writer, curves nmr.ScenarioCurves, width, height int) error {
	if len(curves) == 0 || len(curves[0].Curve) < 2 {
		return fmt.Errorf("export: not enough data to plot")
	}

	xMin, xMax := float64(curves[0].Curve[0].Time), float64(curves[0].Curve[0].Time)
	yMin, yMax := curves[0].Curve[0].Amplitude, curves[0].Curve[0].Amplitude
	for _, sc := range curves {
		for _, s := range sc.Curve {
			xMin, xMax = minMax(xMin, xMax, float64(s.Time))
			yMin, yMax = minMax(yMin, yMax, s.Amplitude)
		}
	}

	rangeX := xMax - xMin
	rangeY := yMax - yMin
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	xMin -= rangeX * 0.05
	yMin -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	toX := func(t float64) float64 { return (t - xMin) / rangeX * float64(width) }
	toY := func(a float64) float64 { return float64(height) - (a-yMin)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, sc := range curves {
		color := svgPalette[i%len(svgPalette)]
		shape := markerShape(i % 3)

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, s := range sc.Curve {
			x, y := toX(float64(s.Time)), toY(s.Amplitude)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		for _, s := range sc.Curve {
			writeMarker(&sb, toX(float64(s.Time)), toY(s.Amplitude), shape, color)
		}

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="12">%s (%.0f%%)</text>
`, 10, 16+i*16, color, sc.Label, float64(sc.Porosity)))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarker(sb *strings.Builder, x, y float64, shape markerShape, color string) {
	switch shape {
	case markerSquare:
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="5" height="5" fill="%s"/>
`, x-2.5, y-2.5, color))
	case markerTriangle:
		sb.WriteString(fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, x, y-3, x-3, y+3, x+3, y+3, color))
	default:
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>
`, x, y, color))
	}
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
