package sde

import "math"

// Vector holds one value per path of the ensemble.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

// Ones returns a vector of n ones, the conventional initial condition for
// ensemble validation runs.
func Ones(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}

// Drift is the deterministic coefficient f(t,y) of dy = f dt + g dW.
type Drift func(t float64, y Vector) Vector

// Diffusion is the stochastic coefficient g(t,y) of dy = f dt + g dW.
type Diffusion func(t float64, y Vector) Vector

// Solution is the output of one integrator run over a time grid.
type Solution struct {
	Times  []float64
	States []Vector // len(Times) rows
	Wiener []Vector // cumulative Brownian path per grid point, Wiener[0] = 0
}

// Terminal returns the state at the last grid point.
func (s *Solution) Terminal() Vector {
	return s.States[len(s.States)-1]
}

// Displacement returns the net Brownian displacement W(tf) - W(t0) per path.
func (s *Solution) Displacement() Vector {
	first := s.Wiener[0]
	last := s.Wiener[len(s.Wiener)-1]
	d := make(Vector, len(last))
	for i := range d {
		d[i] = last[i] - first[i]
	}
	return d
}

// TimeGrid builds the uniform grid t0, t0+h, t0+2h, ... up to and
// including the largest multiple of h that does not exceed tf.
func TimeGrid(t0, tf, h float64) []float64 {
	steps := int(math.Floor((tf - t0) / h * (1 + 1e-12)))
	grid := make([]float64, steps+1)
	for k := range grid {
		grid[k] = t0 + float64(k)*h
	}
	return grid
}
