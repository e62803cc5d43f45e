// Package sde provides fixed-step numerical integration of stochastic
// differential equations (SDEs) with linear diagonal noise.
//
// The package defines the primitives an SDE solver needs:
//
//   - [Vector]: state of an ensemble of scalar paths
//   - [Drift], [Diffusion]: the coefficient functions f(t,y) and g(t,y)
//   - [Options]: integration options (interpretation, seed, noise structure)
//   - [Euler]: explicit Euler scheme (Euler-Maruyama or Euler-Heun)
//   - [GBMTerminal]: exact geometric Brownian motion driven by a
//     prescribed Brownian displacement
//
// # Interpretation
//
// An SDE does not have a unique meaning until the stochastic integral is
// interpreted. [Ito] selects the Euler-Maruyama step (strong order 0.5),
// [Stratonovich] selects the Euler-Heun predictor-corrector step (strong
// order 1.0 for commutative noise).
//
// # Example
//
//	f := func(t float64, y sde.Vector) sde.Vector { return y.Scale(a) }
//	g := func(t float64, y sde.Vector) sde.Vector { return y.Scale(b) }
//	grid := sde.TimeGrid(0, 2, 0.01)
//	sol, err := sde.Euler(f, g, grid, y0, sde.DefaultOptions().WithSeed(1))
package sde
