package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sdelab/internal/convergence"
)

// RefOrders are the theoretical convergence orders overlaid on the plot.
var RefOrders = []float64{0.5, 1.0, 1.5, 2.0}

var (
	measuredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	bandStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	refStyles     = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	refColors = []asciigraph.AnsiColor{
		asciigraph.Blue,
		asciigraph.Green,
		asciigraph.Yellow,
		asciigraph.Magenta,
	}
)

// ReferenceLine returns the overlay curve of the given order across the
// sweep, anchored so it passes through anchor (the measured mean error) at
// the largest step size: ref(h) = anchor * (h/hMax)^order.
func ReferenceLine(stepSizes []float64, anchor, order float64) []float64 {
	hMax := stepSizes[len(stepSizes)-1]
	out := make([]float64, len(stepSizes))
	for i, h := range stepSizes {
		out[i] = anchor * math.Pow(h/hMax, order)
	}
	return out
}

// Convergence renders the log-log convergence plot: the measured mean
// error, a mean+std band, and one reference line per order in RefOrders.
// The x axis is the sweep index, ascending in step size.
func Convergence(res *convergence.Result) string {
	anchor := res.MeanErrors[len(res.MeanErrors)-1]

	series := make([][]float64, 0, 2+len(RefOrders))
	series = append(series, log10Series(res.MeanErrors))

	band := make([]float64, len(res.MeanErrors))
	for i := range band {
		band[i] = res.MeanErrors[i] + res.StdErrors[i]
	}
	series = append(series, log10Series(band))

	for _, order := range RefOrders {
		series = append(series, log10Series(ReferenceLine(res.StepSizes, anchor, order)))
	}

	colors := append([]asciigraph.AnsiColor{asciigraph.Red, asciigraph.Default}, refColors...)

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(72),
		asciigraph.Caption("log10 terminal error vs step size (ascending)"),
		asciigraph.SeriesColors(colors...),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString(measuredStyle.Render("── mean error"))
	sb.WriteString("  ")
	sb.WriteString(bandStyle.Render("── mean+std"))
	for i, order := range RefOrders {
		sb.WriteString("  ")
		sb.WriteString(refStyles[i].Render(fmt.Sprintf("── order %.1f", order)))
	}
	sb.WriteString("\n")
	return sb.String()
}

func log10Series(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x <= 0 {
			// Keep degenerate points on the chart floor.
			out[i] = -16
			continue
		}
		out[i] = math.Log10(x)
	}
	return out
}
