package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/sdelab/internal/convergence"
)

var svgRefColors = []string{"#4477ff", "#00cc66", "#ffcc00", "#cc44cc"}

// ConvergenceSVG renders the log-log convergence plot as a standalone SVG:
// the measured mean-error curve plus the dashed reference-order lines, each
// labeled with its order at the right edge.
func ConvergenceSVG(res *convergence.Result, width, height int) string {
	if len(res.StepSizes) < 2 {
		return ""
	}

	margin := 40.0
	w, h := float64(width), float64(height)

	anchor := res.MeanErrors[len(res.MeanErrors)-1]
	curves := [][]float64{log10Series(res.MeanErrors)}
	for _, order := range RefOrders {
		curves = append(curves, log10Series(ReferenceLine(res.StepSizes, anchor, order)))
	}
	xs := log10Series(res.StepSizes)

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := curves[0][0], curves[0][0]
	for _, c := range curves {
		for _, y := range c {
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if maxX == minX || maxY == minY {
		return ""
	}

	toX := func(x float64) float64 {
		return margin + (x-minX)/(maxX-minX)*(w-2*margin)
	}
	toY := func(y float64) float64 {
		// SVG y grows downward.
		return h - margin - (y-minY)/(maxY-minY)*(h-2*margin)
	}

	points := func(c []float64) string {
		var parts []string
		for i := range c {
			parts = append(parts, fmt.Sprintf("%.1f,%.1f", toX(xs[i]), toY(c[i])))
		}
		return strings.Join(parts, " ")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, order := range RefOrders {
		c := curves[i+1]
		sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-dasharray="6,4" stroke-width="1.5"/>
`, points(c), svgRefColors[i]))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="12" font-family="monospace">%.1f</text>
`, toX(xs[len(xs)-1])+6, toY(c[len(c)-1]), svgRefColors[i], order))
	}

	sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#ff4444" stroke-width="2.5"/>
`, points(curves[0])))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#cccccc" font-size="12" font-family="monospace">log10(h) vs log10(err), %s</text>
`, margin, margin/2, res.Scheme))
	sb.WriteString("</svg>")
	return sb.String()
}
