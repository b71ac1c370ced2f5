// Package linefit is an example ransac.Solver: it fits a 2-D line to a set
// of points contaminated by outliers. It plugs into the ransac package
// purely through the Solver contract and is used both as a worked example
// and as the concrete model behind the package's end-to-end tests.
package linefit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point is a single 2-D data point.
type Point struct {
	X, Y float64
}

// Model is a line in normal form: A*x + B*y = C, with A^2+B^2 = 1 so that
// EvaluateModelOnPoint's residual is an exact squared perpendicular
// distance.
type Model struct {
	A, B, C float64
}

// Solver fits Model to Points using the ransac.Solver contract.
type Solver struct {
	Points []Point
}

func (s *Solver) MinSampleSize() int        { return 2 }
func (s *Solver) NonMinimalSampleSize() int { return 3 }
func (s *Solver) NumData() int              { return len(s.Points) }

// MinimalSolver fits the unique line through two points. Returns no
// candidates if the points coincide.
func (s *Solver) MinimalSolver(sample []int) []any {
	p0, p1 := s.Points[sample[0]], s.Points[sample[1]]
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	norm := math.Hypot(dx, dy)
	if norm < 1e-12 {
		return nil
	}
	// Line direction (dx, dy); normal is the perpendicular (-dy, dx).
	a, b := -dy/norm, dx/norm
	c := a*p0.X + b*p0.Y
	return []any{Model{A: a, B: b, C: c}}
}

// NonMinimalSolver fits a total-least-squares line to an overdetermined
// sample via SVD of the centered point matrix.
func (s *Solver) NonMinimalSolver(sample []int) (any, bool) {
	return fitLineTLS(s.Points, sample)
}

// LeastSquares refines model against inliers via the same total-least-
// squares fit used by NonMinimalSolver.
func (s *Solver) LeastSquares(inliers []int, model any) (any, bool) {
	return fitLineTLS(s.Points, inliers)
}

func fitLineTLS(points []Point, sample []int) (Model, bool) {
	n := len(sample)
	if n < 2 {
		return Model{}, false
	}

	var cx, cy float64
	for _, i := range sample {
		cx += points[i].X
		cy += points[i].Y
	}
	cx /= float64(n)
	cy /= float64(n)

	centered := mat.NewDense(n, 2, nil)
	for r, i := range sample {
		centered.Set(r, 0, points[i].X-cx)
		centered.Set(r, 1, points[i].Y-cy)
	}

	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return Model{}, false
	}
	var v mat.Dense
	svd.VTo(&v)

	// The second right-singular vector is the direction of least variance:
	// the line's normal.
	a, b := v.At(0, 1), v.At(1, 1)
	norm := math.Hypot(a, b)
	if norm < 1e-12 {
		return Model{}, false
	}
	a, b = a/norm, b/norm
	c := a*cx + b*cy

	return Model{A: a, B: b, C: c}, true
}

// EvaluateModelOnPoint returns the squared perpendicular distance from
// point i to the line.
func (s *Solver) EvaluateModelOnPoint(model any, i int) float64 {
	m := model.(Model)
	p := s.Points[i]
	d := m.A*p.X + m.B*p.Y - m.C
	return d * d
}
