package rhf

import "fmt"

// DomainError reports an input outside the ranges the core declares it can
// handle (Boys order > 12, angular momentum beyond the Pascal-table bound,
// non-positive exponent, odd or negative electron count).
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "rhf: domain error: " + e.Msg }

func domainErrorf(format string, a ...any) error {
	return &DomainError{Msg: fmt.Sprintf(format, a...)}
}

// RangeError reports an internal index outside a precomputed table's bounds.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return "rhf: range error: " + e.Msg }

func rangeErrorf(format string, a ...any) error {
	return &RangeError{Msg: fmt.Sprintf(format, a...)}
}

// NumericError reports a matrix that failed a numerical precondition: an
// overlap matrix with a non-positive eigenvalue, or an eigendecomposition
// that did not converge. Assembled matrix elements are not checked for NaN
// or Inf.
type NumericError struct {
	Matrix string
	Msg    string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("rhf: numeric error in %s: %s", e.Matrix, e.Msg)
}

func numericErrorf(matrix, format string, a ...any) error {
	return &NumericError{Matrix: matrix, Msg: fmt.Sprintf(format, a...)}
}

// NonConvergenceError is returned by RunSCF when the iteration limit is
// reached without the density matrix settling below the requested
// tolerance. It is a normal return value, not a panic.
type NonConvergenceError struct {
	Iterations int
	DeltaP     float64
	Tolerance  float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf(
		"rhf: SCF did not converge after %d iterations (||dP||=%.3e, tolerance=%.3e)",
		e.Iterations, e.DeltaP, e.Tolerance,
	)
}

// ConfigError reports an inconsistent basis or run configuration: an element
// with no basis parameters (as returned by basis builders such as
// internal/sto3g), or a malformed SCFConfig such as an unrecognized
// initial-guess strategy.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "rhf: config error: " + e.Msg }

func configErrorf(format string, a ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}
