package sde

import (
	"math"
	"math/rand"
)

// wienerIncrements samples the Brownian increments for one step of size h.
// With diagonal noise each of the n paths gets an independent N(0, h)
// increment; otherwise a single shared increment is broadcast. With
// antithetic sampling the second half of the ensemble mirrors the first.
// The result is written into dst to avoid per-step allocation.
func wienerIncrements(rng *rand.Rand, dst Vector, h float64, opts Options) {
	n := len(dst)
	sqh := math.Sqrt(h)

	if !opts.DiagonalNoise {
		dw := sqh * rng.NormFloat64()
		for i := range dst {
			dst[i] = dw
		}
		return
	}

	if opts.Antithetic {
		half := (n + 1) / 2
		for i := 0; i < half; i++ {
			dst[i] = sqh * rng.NormFloat64()
		}
		for i := half; i < n; i++ {
			dst[i] = -dst[i-half]
		}
		return
	}

	for i := range dst {
		dst[i] = sqh * rng.NormFloat64()
	}
}
