package convergence

import "errors"

// Validation errors. All are raised before any simulation work begins; a
// failed check aborts the whole run.
var (
	// ErrInvalidStepSizes indicates a step size that is not a positive
	// finite real.
	ErrInvalidStepSizes = errors.New("convergence: step sizes must be positive finite reals")

	// ErrSweepLength indicates a step-size sweep shorter than two entries.
	ErrSweepLength = errors.New("convergence: at least two step sizes are required")

	// ErrInvalidPathCount indicates a non-positive ensemble size.
	ErrInvalidPathCount = errors.New("convergence: path count must be a positive integer")

	// ErrIncompleteCoefficients indicates that only one of the drift and
	// diffusion coefficients was supplied.
	ErrIncompleteCoefficients = errors.New("convergence: drift and diffusion coefficients must be supplied together")

	// ErrInvalidCoefficient indicates a NaN or Inf model coefficient.
	ErrInvalidCoefficient = errors.New("convergence: coefficients must be finite reals")

	// ErrInvalidOptions indicates malformed integrator options.
	ErrInvalidOptions = errors.New("convergence: malformed integrator options")

	// ErrUnsupportedRandSource rejects custom random sources; the harness
	// mandates the default seeded stream for reproducibility.
	ErrUnsupportedRandSource = errors.New("convergence: custom random sources are not supported")

	// ErrUnsupportedAntithetic rejects antithetic variates, which would
	// bias the error statistics across the ensemble.
	ErrUnsupportedAntithetic = errors.New("convergence: antithetic variates are not supported")

	// ErrTooManyOutputs indicates a request for more than the mean and
	// standard-deviation error sequences.
	ErrTooManyOutputs = errors.New("convergence: at most two error sequences may be requested")
)
