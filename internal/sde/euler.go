package sde

// Euler integrates dy = f dt + g dW over the given time grid with the
// explicit fixed-step Euler scheme selected by opts.Type: Euler-Maruyama
// for Ito, Euler-Heun for Stratonovich. The returned Solution carries the
// full state history and the cumulative Brownian path the run consumed, so
// a caller can replay the identical noise through a reference solution.
func Euler(f Drift, g Diffusion, grid []float64, y0 Vector, opts Options) (*Solution, error) {
	if len(grid) < 2 {
		return nil, ErrInvalidGrid
	}
	for k := 1; k < len(grid); k++ {
		if grid[k] <= grid[k-1] {
			return nil, ErrInvalidGrid
		}
	}
	if len(y0) == 0 || !y0.IsValid() {
		return nil, ErrInvalidInitial
	}
	if !opts.Type.Valid() {
		return nil, ErrInvalidType
	}

	n := len(y0)
	steps := len(grid) - 1
	rng := opts.rng()

	sol := &Solution{
		Times:  grid,
		States: make([]Vector, 0, steps+1),
		Wiener: make([]Vector, 0, steps+1),
	}

	y := y0.Clone()
	w := make(Vector, n)
	sol.States = append(sol.States, y.Clone())
	sol.Wiener = append(sol.Wiener, w.Clone())

	// Constant-coefficient fast paths evaluate f/g once up front.
	var fConst, gConst Vector
	if opts.ConstDrift {
		fConst = f(grid[0], y0)
	}
	if opts.ConstDiffusion {
		gConst = g(grid[0], y0)
	}

	dw := make(Vector, n)
	next := make(Vector, n)
	pred := make(Vector, n)

	for k := 0; k < steps; k++ {
		t := grid[k]
		h := grid[k+1] - t
		wienerIncrements(rng, dw, h, opts)

		fy := fConst
		if fy == nil {
			fy = f(t, y)
		}
		gy := gConst
		if gy == nil {
			gy = g(t, y)
		}

		switch opts.Type {
		case Ito:
			for i := 0; i < n; i++ {
				next[i] = y[i] + fy[i]*h + gy[i]*dw[i]
			}
		case Stratonovich:
			// Heun average of the diffusion at the predictor point.
			for i := 0; i < n; i++ {
				pred[i] = y[i] + gy[i]*dw[i]
			}
			gp := gConst
			if gp == nil {
				gp = g(grid[k+1], pred)
			}
			for i := 0; i < n; i++ {
				next[i] = y[i] + fy[i]*h + 0.5*(gy[i]+gp[i])*dw[i]
			}
		}

		copy(y, next)
		if !y.IsValid() {
			return nil, ErrUnstable
		}
		for i := 0; i < n; i++ {
			w[i] += dw[i]
		}

		sol.States = append(sol.States, y.Clone())
		sol.Wiener = append(sol.Wiener, w.Clone())
	}

	return sol, nil
}
