package ransac

// Model is a solver-defined, opaque fitted model. The core never inspects
// it; it is only ever handed back to the Solver that produced it. Go has no
// direct equivalent of a copyable/assignable/default-constructible template
// parameter, so Model is realized as any — the usual stand-in for "opaque
// caller data" elsewhere in Go (see e.g. context.Value). Implementations
// should favor small, by-value structs so that assignment is a real copy.
type Model = any

// Solver is the polymorphism boundary between the estimation driver and a
// specific model-fitting problem. It owns the data being fit and implements
// the problem-specific minimal and non-minimal solvers, least-squares
// refinement, and per-point residual evaluation. A Solver instance is used
// for the duration of a single EstimateModel call and is never mutated by
// the driver.
type Solver interface {
	// MinSampleSize returns the smallest number of points the minimal
	// solver needs.
	MinSampleSize() int
	// NonMinimalSampleSize returns the smallest number of points the
	// non-minimal (overdetermined) solver needs. Solvers that do not
	// implement NonMinimalSolver/LeastSquares must still return a valid
	// value here.
	NonMinimalSampleSize() int
	// NumData returns the total number of data points, N.
	NumData() int
	// MinimalSolver fits zero or more candidate models to the given minimal
	// sample. Returning an empty slice signals a degenerate sample; the
	// driver skips the iteration.
	MinimalSolver(sample []int) []Model
	// NonMinimalSolver fits a single model to a non-minimal sample. It may
	// be a dummy that always returns (nil, false) if the solver does not
	// support non-minimal fitting.
	NonMinimalSolver(sample []int) (Model, bool)
	// LeastSquares refines model against the given index set and returns
	// the refined model. It may be a no-op that returns model unchanged
	// (with ok=false) if the solver does not support least-squares
	// refinement.
	LeastSquares(inliers []int, model Model) (refined Model, ok bool)
	// EvaluateModelOnPoint returns the non-negative squared residual of
	// point i under model. Must be deterministic and side-effect-free.
	EvaluateModelOnPoint(model Model, i int) float64
}
