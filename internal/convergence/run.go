package convergence

import (
	"math"
	"time"

	"github.com/san-kum/sdelab/internal/sde"
)

// Result holds the error statistics of one sweep, indexed identically to
// the ascending-sorted step sizes.
type Result struct {
	StepSizes  []float64
	MeanErrors []float64
	StdErrors  []float64
	GridSizes  []int

	Paths     int
	Drift     float64
	Diffusion float64
	Scheme    sde.Type
	Seed      int64

	// TotalTime is wall-clock time spent inside the integrator across the
	// sweep. TotalSteps sums grid lengths only; it is NOT multiplied by
	// the ensemble size, so SecondsPerStep is time per time-step column
	// of the ensemble matrix, not per individual path.
	TotalTime  time.Duration
	TotalSteps int
}

// SecondsPerStep returns the average integrator time per time-step column.
func (r *Result) SecondsPerStep() float64 {
	if r.TotalSteps == 0 {
		return 0
	}
	return r.TotalTime.Seconds() / float64(r.TotalSteps)
}

// EmpiricalOrder estimates the strong convergence order from the sweep by
// log-log slope regression of mean error against step size.
func (r *Result) EmpiricalOrder() float64 {
	return FitOrder(r.StepSizes, r.MeanErrors)
}

// Progress reports one completed step size to an observer.
type Progress struct {
	Index    int
	StepSize float64
	Mean     float64
	Std      float64
	GridSize int
	Elapsed  time.Duration
}

// Run validates p and executes the sweep.
func Run(p Params) (*Result, error) {
	return RunWithObserver(p, nil)
}

// RunWithObserver is Run with a per-step-size callback, invoked after each
// step size completes. The callback runs on the sweep goroutine.
func RunWithObserver(p Params, observe func(Progress)) (*Result, error) {
	norm, err := p.validate()
	if err != nil {
		return nil, err
	}

	f := func(t float64, y sde.Vector) sde.Vector { return y.Scale(norm.a) }
	g := func(t float64, y sde.Vector) sde.Vector { return y.Scale(norm.b) }
	y0 := sde.Ones(norm.paths)
	tf := norm.horizon()

	// Warm-up on the smallest step over the minimal interval [0, h],
	// outside the timed window. Output discarded.
	warm := []float64{0, norm.stepSizes[0]}
	if _, err := sde.Euler(f, g, warm, y0, norm.opts); err != nil {
		return nil, err
	}

	res := &Result{
		StepSizes:  norm.stepSizes,
		MeanErrors: make([]float64, len(norm.stepSizes)),
		StdErrors:  make([]float64, len(norm.stepSizes)),
		GridSizes:  make([]int, len(norm.stepSizes)),
		Paths:      norm.paths,
		Drift:      norm.a,
		Diffusion:  norm.b,
		Scheme:     norm.opts.Type,
		Seed:       norm.opts.SeedOr(DefaultSeed),
	}

	for i, h := range norm.stepSizes {
		grid := sde.TimeGrid(0, tf, h)

		start := time.Now()
		sol, err := sde.Euler(f, g, grid, y0, norm.opts)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		res.TotalTime += elapsed
		res.TotalSteps += len(grid)
		res.GridSizes[i] = len(grid)

		// Replay the exact Brownian displacement the integrator consumed
		// through the closed-form solution at the same terminal instant.
		tEnd := grid[len(grid)-1]
		exact := sde.GBMTerminal(norm.a, norm.b, 0, tEnd, y0, sol.Displacement(), norm.opts.Type)

		res.MeanErrors[i], res.StdErrors[i] = terminalError(sol.Terminal(), exact)

		if observe != nil {
			observe(Progress{
				Index:    i,
				StepSize: h,
				Mean:     res.MeanErrors[i],
				Std:      res.StdErrors[i],
				GridSize: len(grid),
				Elapsed:  elapsed,
			})
		}
	}

	return res, nil
}

// terminalError reduces the elementwise absolute difference of two
// terminal ensembles to mean and sample standard deviation.
func terminalError(numeric, exact sde.Vector) (mean, std float64) {
	diffs := make([]float64, len(numeric))
	for i := range numeric {
		diffs[i] = math.Abs(numeric[i] - exact[i])
	}
	return MeanStd(diffs)
}
