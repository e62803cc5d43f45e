// Package report renders sweep results: console tables, terminal log-log
// convergence plots, and SVG export.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/sdelab/internal/convergence"
)

// Table writes the per-step-size error statistics.
func Table(w io.Writer, res *convergence.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "H\tGRID\tMEAN ERR\tSTD ERR")
	for i, h := range res.StepSizes {
		fmt.Fprintf(tw, "%.6g\t%d\t%.6e\t%.6e\n",
			h, res.GridSizes[i], res.MeanErrors[i], res.StdErrors[i])
	}
	return tw.Flush()
}

// Timing writes the sweep timing summary. Per-step time is normalized by
// the summed grid lengths, not by individual paths, matching the solver's
// reported throughput.
func Timing(w io.Writer, res *convergence.Result) {
	fmt.Fprintf(w, "total simulation time: %v\n", res.TotalTime)
	fmt.Fprintf(w, "time per time-step column: %.3e s\n", res.SecondsPerStep())
}

// Summary writes the scheme, ensemble and fitted order header.
func Summary(w io.Writer, res *convergence.Result) {
	fmt.Fprintf(w, "scheme: %s  paths: %d  seed: %d  a=%.4g b=%.4g\n",
		res.Scheme, res.Paths, res.Seed, res.Drift, res.Diffusion)
	fmt.Fprintf(w, "empirical strong order: %.3f\n", res.EmpiricalOrder())
}
