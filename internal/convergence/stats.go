package convergence

import "math"

// MeanStd returns the mean and sample standard deviation of xs. A single
// sample has zero deviation by convention.
func MeanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	if len(xs) < 2 {
		return mean, 0
	}
	for _, x := range xs {
		std += (x - mean) * (x - mean)
	}
	std = math.Sqrt(std / float64(len(xs)-1))
	return mean, std
}

// FitOrder estimates the convergence order as the least-squares slope of
// log(err) against log(h). Pairs with a non-positive error are skipped;
// fewer than two usable pairs yield NaN.
func FitOrder(stepSizes, errs []float64) float64 {
	var xs, ys []float64
	for i := range stepSizes {
		if i < len(errs) && errs[i] > 0 && stepSizes[i] > 0 {
			xs = append(xs, math.Log(stepSizes[i]))
			ys = append(ys, math.Log(errs[i]))
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}
	n := float64(len(xs))
	return (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
}
