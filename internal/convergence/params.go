package convergence

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/sdelab/internal/sde"
)

// Defaults applied during validation.
const (
	DefaultCoefficient = 1.0 // drift and diffusion when neither is supplied
	DefaultSeed        = 1   // injected when the caller leaves the seed unset
	HorizonFactor      = 20  // tf = HorizonFactor * max(StepSizes)
)

// Params describes one validation sweep. Drift and Diffusion are pointers
// so "not supplied" is distinguishable from zero: both must be set or both
// nil, in which case (1, 1) is used.
type Params struct {
	// StepSizes is the sweep of fixed step sizes, at least two. Values are
	// reordered ascending during validation but never deduplicated.
	StepSizes []float64

	// Paths is the ensemble size: independent paths per step size.
	Paths int

	// Drift and Diffusion are the a and b of dy = a*y dt + b*y dW.
	Drift     *float64
	Diffusion *float64

	// Options configures the integrator. Nil means defaults. The harness
	// normalizes a copy; the caller's value is never touched.
	Options *sde.Options

	// Outputs is the number of requested error sequences: 0 (timing
	// only), 1 (mean) or 2 (mean and standard deviation).
	Outputs int
}

// normalized is the validated, immutable form Params take before the sweep.
type normalized struct {
	stepSizes []float64
	paths     int
	a, b      float64
	opts      sde.Options
	outputs   int
}

// validate checks p against the harness contract and returns the
// normalized sweep inputs: step sizes sorted ascending, coefficients
// defaulted, options pinned to the reproducible general-path configuration
// (fixed seed, diagonal noise, no constant-coefficient specializations).
func (p Params) validate() (normalized, error) {
	var norm normalized

	if len(p.StepSizes) < 2 {
		return norm, ErrSweepLength
	}
	for _, h := range p.StepSizes {
		if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return norm, fmt.Errorf("%w: got %v", ErrInvalidStepSizes, h)
		}
	}
	norm.stepSizes = make([]float64, len(p.StepSizes))
	copy(norm.stepSizes, p.StepSizes)
	sort.Float64s(norm.stepSizes)

	if p.Paths < 1 {
		return norm, fmt.Errorf("%w: got %d", ErrInvalidPathCount, p.Paths)
	}
	norm.paths = p.Paths

	switch {
	case p.Drift == nil && p.Diffusion == nil:
		norm.a, norm.b = DefaultCoefficient, DefaultCoefficient
	case p.Drift == nil || p.Diffusion == nil:
		return norm, ErrIncompleteCoefficients
	default:
		norm.a, norm.b = *p.Drift, *p.Diffusion
	}
	if math.IsNaN(norm.a) || math.IsInf(norm.a, 0) {
		return norm, fmt.Errorf("%w: drift %v", ErrInvalidCoefficient, norm.a)
	}
	if math.IsNaN(norm.b) || math.IsInf(norm.b, 0) {
		return norm, fmt.Errorf("%w: diffusion %v", ErrInvalidCoefficient, norm.b)
	}

	opts := sde.DefaultOptions()
	if p.Options != nil {
		opts = *p.Options
	}
	if !opts.Type.Valid() {
		return norm, fmt.Errorf("%w: sde type %q", ErrInvalidOptions, opts.Type)
	}
	if opts.RandSource != nil {
		return norm, ErrUnsupportedRandSource
	}
	if opts.Antithetic {
		return norm, ErrUnsupportedAntithetic
	}

	// Pin the configuration the whole sweep runs under: deterministic
	// stream, per-path noise, and the general (non-specialized) code path.
	if !opts.Seeded() {
		opts = opts.WithSeed(DefaultSeed)
	}
	opts = opts.WithDiagonalNoise(true).WithConstDrift(false).WithConstDiffusion(false)
	norm.opts = opts

	if p.Outputs < 0 || p.Outputs > 2 {
		return norm, fmt.Errorf("%w: got %d", ErrTooManyOutputs, p.Outputs)
	}
	norm.outputs = p.Outputs

	return norm, nil
}

// horizon is the shared integration endpoint: every step size integrates
// over the same physical interval, just at a different resolution.
func (n normalized) horizon() float64 {
	return HorizonFactor * n.stepSizes[len(n.stepSizes)-1]
}
