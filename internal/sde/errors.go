package sde

import "errors"

// Domain errors for integrator runs.
var (
	// ErrInvalidGrid indicates a time grid that is too short or not
	// strictly increasing.
	ErrInvalidGrid = errors.New("sde: time grid must be strictly increasing with at least two points")

	// ErrInvalidInitial indicates an initial condition with NaN or Inf
	// entries, or zero length.
	ErrInvalidInitial = errors.New("sde: invalid initial condition")

	// ErrInvalidType indicates an unrecognized SDE interpretation flag.
	ErrInvalidType = errors.New("sde: unknown SDE type")

	// ErrUnstable indicates the integration produced NaN or Inf states.
	ErrUnstable = errors.New("sde: integration diverged (NaN or Inf state)")
)
