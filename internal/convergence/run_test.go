package convergence

import (
	"math"
	"testing"

	"github.com/san-kum/sdelab/internal/sde"
)

func logspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(n-1))
	}
	return out
}

func TestRunResultShape(t *testing.T) {
	p := Params{
		StepSizes: []float64{0.1, 0.01, 0.05}, // deliberately unsorted
		Paths:     16,
		Outputs:   2,
	}

	res, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(res.MeanErrors) != len(p.StepSizes) {
		t.Errorf("expected %d mean errors, got %d", len(p.StepSizes), len(res.MeanErrors))
	}
	if len(res.StdErrors) != len(p.StepSizes) {
		t.Errorf("expected %d std errors, got %d", len(p.StepSizes), len(res.StdErrors))
	}
	for i := 1; i < len(res.StepSizes); i++ {
		if res.StepSizes[i] < res.StepSizes[i-1] {
			t.Fatal("result step sizes not ascending")
		}
	}
	for i, m := range res.MeanErrors {
		if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			t.Errorf("index %d: mean error %v not positive finite", i, m)
		}
	}
	if res.TotalSteps == 0 {
		t.Error("expected accumulated step count")
	}
}

func TestRunDeterminism(t *testing.T) {
	p := Params{
		StepSizes: []float64{0.01, 0.1},
		Paths:     32,
		Outputs:   2,
	}

	a, err := Run(p)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := Run(p)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for i := range a.MeanErrors {
		if a.MeanErrors[i] != b.MeanErrors[i] {
			t.Errorf("index %d: mean errors differ: %v vs %v", i, a.MeanErrors[i], b.MeanErrors[i])
		}
		if a.StdErrors[i] != b.StdErrors[i] {
			t.Errorf("index %d: std errors differ: %v vs %v", i, a.StdErrors[i], b.StdErrors[i])
		}
	}
}

func TestRunSinglePathStd(t *testing.T) {
	p := Params{
		StepSizes: []float64{0.01, 0.1},
		Paths:     1,
		Outputs:   2,
	}

	res, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for i, s := range res.StdErrors {
		if s != 0 {
			t.Errorf("index %d: expected zero std for a single path, got %v", i, s)
		}
	}
}

func TestRunObserver(t *testing.T) {
	p := Params{
		StepSizes: []float64{0.1, 0.01},
		Paths:     8,
		Outputs:   2,
	}

	var seen []Progress
	res, err := RunWithObserver(p, func(pr Progress) { seen = append(seen, pr) })
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(seen) != len(res.StepSizes) {
		t.Fatalf("expected %d progress events, got %d", len(res.StepSizes), len(seen))
	}
	for i, pr := range seen {
		if pr.Index != i {
			t.Errorf("event %d: index %d", i, pr.Index)
		}
		if pr.Mean != res.MeanErrors[i] {
			t.Errorf("event %d: mean %v != result %v", i, pr.Mean, res.MeanErrors[i])
		}
		if pr.GridSize != res.GridSizes[i] {
			t.Errorf("event %d: grid %d != result %d", i, pr.GridSize, res.GridSizes[i])
		}
	}
}

func TestRunStratonovichOrder(t *testing.T) {
	p := Params{
		StepSizes: logspace(-3, -1, 3),
		Paths:     1000,
		Options:   optr(sde.DefaultOptions().WithType(sde.Stratonovich)),
		Outputs:   2,
	}

	res, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Error must grow with step size on this well-behaved example.
	for i := 1; i < len(res.MeanErrors); i++ {
		if res.MeanErrors[i] < res.MeanErrors[i-1] {
			t.Errorf("mean error decreased from h=%v to h=%v", res.StepSizes[i-1], res.StepSizes[i])
		}
	}

	order := res.EmpiricalOrder()
	if order < 0.75 || order > 1.3 {
		t.Errorf("expected empirical order ~1.0 for Euler-Heun, got %.3f", order)
	}
}

func TestRunItoOrder(t *testing.T) {
	p := Params{
		StepSizes: logspace(-3, -1, 3),
		Paths:     1000,
		Options:   optr(sde.DefaultOptions().WithType(sde.Ito)),
		Outputs:   2,
	}

	res, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	order := res.EmpiricalOrder()
	if order < 0.3 || order > 0.75 {
		t.Errorf("expected empirical order ~0.5 for Euler-Maruyama, got %.3f", order)
	}
}

func TestRunThroughputNormalization(t *testing.T) {
	p := Params{
		StepSizes: []float64{0.05, 0.1},
		Paths:     64,
		Outputs:   0,
	}

	res, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// TotalSteps sums grid lengths only, independent of the ensemble width.
	want := 0
	for _, g := range res.GridSizes {
		want += g
	}
	if res.TotalSteps != want {
		t.Errorf("expected total steps %d (sum of grid lengths), got %d", want, res.TotalSteps)
	}
	if res.SecondsPerStep() <= 0 {
		t.Error("expected positive per-step time")
	}
}
