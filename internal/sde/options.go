package sde

import "math/rand"

// Type selects the interpretation of the stochastic integral.
type Type string

const (
	Ito          Type = "ito"
	Stratonovich Type = "stratonovich"
)

// Valid reports whether t names a supported interpretation.
func (t Type) Valid() bool {
	return t == Ito || t == Stratonovich
}

// Options carries integrator configuration. The zero value is not usable;
// start from DefaultOptions. All With* methods return a modified copy and
// never mutate the receiver, so an Options value can be shared freely once
// constructed.
type Options struct {
	// Type selects Ito (Euler-Maruyama) or Stratonovich (Euler-Heun).
	Type Type

	// Seed for the default pseudo-random stream. Nil means unseeded;
	// callers that need reproducibility must set it.
	Seed *int64

	// DiagonalNoise drives each path by its own independent Brownian
	// source. When false a single scalar source drives all paths.
	DiagonalNoise bool

	// ConstDrift and ConstDiffusion enable constant-coefficient fast
	// paths: the coefficient function is evaluated once at (t0, y0) and
	// reused. Only valid for state- and time-independent coefficients.
	ConstDrift     bool
	ConstDiffusion bool

	// Antithetic mirrors the increments of the second half of the
	// ensemble against the first half (variance reduction).
	Antithetic bool

	// RandSource overrides the seeded default stream when non-nil.
	RandSource rand.Source
}

// DefaultOptions returns the conventional defaults: Stratonovich
// interpretation with diagonal noise and no fast paths.
func DefaultOptions() Options {
	return Options{
		Type:          Stratonovich,
		DiagonalNoise: true,
	}
}

func (o Options) WithType(t Type) Options {
	o.Type = t
	return o
}

func (o Options) WithSeed(seed int64) Options {
	o.Seed = &seed
	return o
}

func (o Options) WithDiagonalNoise(on bool) Options {
	o.DiagonalNoise = on
	return o
}

func (o Options) WithConstDrift(on bool) Options {
	o.ConstDrift = on
	return o
}

func (o Options) WithConstDiffusion(on bool) Options {
	o.ConstDiffusion = on
	return o
}

func (o Options) WithAntithetic(on bool) Options {
	o.Antithetic = on
	return o
}

func (o Options) WithRandSource(src rand.Source) Options {
	o.RandSource = src
	return o
}

// Seeded reports whether an explicit seed has been set.
func (o Options) Seeded() bool {
	return o.Seed != nil
}

// SeedOr returns the configured seed, or def when unset.
func (o Options) SeedOr(def int64) int64 {
	if o.Seed == nil {
		return def
	}
	return *o.Seed
}

// rng builds the random stream for one integrator run.
func (o Options) rng() *rand.Rand {
	if o.RandSource != nil {
		return rand.New(o.RandSource)
	}
	return rand.New(rand.NewSource(o.SeedOr(1)))
}
