package convergence

import (
	"math"
	"testing"
)

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5.0) > 1e-12 {
		t.Errorf("expected mean 5, got %v", mean)
	}
	if math.Abs(std-2.138089935299395) > 1e-12 {
		t.Errorf("expected sample std ~2.138, got %v", std)
	}
}

func TestMeanStdBoundaries(t *testing.T) {
	mean, std := MeanStd([]float64{3.5})
	if mean != 3.5 || std != 0 {
		t.Errorf("single sample: expected (3.5, 0), got (%v, %v)", mean, std)
	}

	mean, std = MeanStd(nil)
	if mean != 0 || std != 0 {
		t.Errorf("empty: expected (0, 0), got (%v, %v)", mean, std)
	}
}

func TestFitOrderExactSlope(t *testing.T) {
	hs := []float64{0.001, 0.01, 0.1}
	for _, order := range []float64{0.5, 1.0, 1.5, 2.0} {
		errs := make([]float64, len(hs))
		for i, h := range hs {
			errs[i] = 0.3 * math.Pow(h, order)
		}
		got := FitOrder(hs, errs)
		if math.Abs(got-order) > 1e-9 {
			t.Errorf("order %.1f: fit returned %.6f", order, got)
		}
	}
}

func TestFitOrderDegenerate(t *testing.T) {
	if got := FitOrder([]float64{0.1}, []float64{0.01}); !math.IsNaN(got) {
		t.Errorf("single point: expected NaN, got %v", got)
	}
	if got := FitOrder([]float64{0.1, 0.2}, []float64{0, 0}); !math.IsNaN(got) {
		t.Errorf("non-positive errors: expected NaN, got %v", got)
	}
}
