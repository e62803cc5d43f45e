// Package convergence measures the empirical strong convergence order of
// the fixed-step Euler SDE integrator against the exact geometric Brownian
// motion solution.
//
// For every step size in a sweep the harness integrates an ensemble of
// linear SDE paths, replays the identical Brownian displacement through the
// closed-form solution, and aggregates the per-path terminal error into a
// mean and standard deviation. Sharing the noise between the scheme and the
// reference is what makes the measured discrepancy pure discretization
// error; two independently sampled solutions would mix in sampling error.
//
// The sweep is validated up front and aborts on the first bad input; no
// simulation work happens before validation passes. Timing covers the
// integrator calls only, after one untimed warm-up run.
package convergence
