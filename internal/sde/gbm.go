package sde

import "math"

// GBMTerminal evaluates the exact geometric Brownian motion solution of
// dy = a*y dt + b*y dW at time tf, driven by the prescribed net Brownian
// displacement w = W(tf) - W(t0) per path. Pinning w to the displacement an
// integrator run actually consumed makes the difference between the two
// terminal states pure discretization error.
//
// The closed form depends on the interpretation:
//
//	Ito:          y(tf) = y0 * exp((a - b²/2)(tf-t0) + b*w)
//	Stratonovich: y(tf) = y0 * exp(a(tf-t0) + b*w)
func GBMTerminal(a, b, t0, tf float64, y0, w Vector, typ Type) Vector {
	dt := tf - t0
	drift := a * dt
	if typ == Ito {
		drift = (a - 0.5*b*b) * dt
	}

	out := make(Vector, len(y0))
	for i := range y0 {
		out[i] = y0[i] * math.Exp(drift+b*w[i])
	}
	return out
}

// GBMPath evaluates the exact solution at each requested instant given the
// pinned Brownian path value at that instant. times and w must have equal
// length; row k of the result is the ensemble at times[k].
func GBMPath(a, b float64, times []float64, y0 Vector, w []Vector, typ Type) []Vector {
	out := make([]Vector, len(times))
	for k, t := range times {
		out[k] = GBMTerminal(a, b, times[0], t, y0, w[k], typ)
	}
	return out
}
