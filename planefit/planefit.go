// Package planefit fits a 3-D plane to a point set with ransac.Solver,
// mirroring the normal-vector construction used by the point-cloud editor's
// surface model but expressed as a generic solver rather than a bespoke
// voxel-grid scan.
package planefit

import (
	"gonum.org/v1/gonum/mat"

	rmat "github.com/robovision/loransac/mat"
)

// Model is a plane in normal form: A*x + B*y + C*z = D, with (A, B, C) a
// unit vector.
type Model struct {
	Normal rmat.Vec3
	D      float32
}

// Solver fits planes to Points using a ransac.Solver-shaped contract: three
// points for the minimal solver, total-least-squares (SVD) refinement for
// the non-minimal solver and LeastSquares.
type Solver struct {
	Points []rmat.Vec3
}

func (s *Solver) MinSampleSize() int        { return 3 }
func (s *Solver) NonMinimalSampleSize() int { return 4 }
func (s *Solver) NumData() int              { return len(s.Points) }

func (s *Solver) MinimalSolver(sample []int) []any {
	p0, p1, p2 := s.Points[sample[0]], s.Points[sample[1]], s.Points[sample[2]]
	v1, v2 := p1.Sub(p0), p2.Sub(p0)
	normal := v1.Cross(v2)
	if normal.NormSq() < 1e-12 {
		return nil
	}
	normal = normal.Normalized()
	d := normal.Dot(p0)
	return []any{Model{Normal: normal, D: d}}
}

func (s *Solver) NonMinimalSolver(sample []int) (any, bool) {
	return fitPlaneTLS(s.Points, sample)
}

func (s *Solver) LeastSquares(inliers []int, model any) (any, bool) {
	return fitPlaneTLS(s.Points, inliers)
}

func fitPlaneTLS(points []rmat.Vec3, sample []int) (Model, bool) {
	n := len(sample)
	if n < 3 {
		return Model{}, false
	}
	var centroid rmat.Vec3
	for _, i := range sample {
		centroid = centroid.Add(points[i])
	}
	centroid = centroid.Mul(1.0 / float32(n))

	centered := mat.NewDense(n, 3, nil)
	for r, i := range sample {
		p := points[i].Sub(centroid)
		centered.Set(r, 0, float64(p[0]))
		centered.Set(r, 1, float64(p[1]))
		centered.Set(r, 2, float64(p[2]))
	}

	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return Model{}, false
	}
	var v mat.Dense
	svd.VTo(&v)

	normal := rmat.Vec3{
		float32(v.At(0, 2)),
		float32(v.At(1, 2)),
		float32(v.At(2, 2)),
	}
	if normal.NormSq() < 1e-12 {
		return Model{}, false
	}
	normal = normal.Normalized()
	d := normal.Dot(centroid)

	return Model{Normal: normal, D: d}, true
}

// EvaluateModelOnPoint returns the squared perpendicular distance of point i
// from model's plane.
func (s *Solver) EvaluateModelOnPoint(model any, i int) float64 {
	m := model.(Model)
	p := s.Points[i]
	dist := m.Normal.Dot(p) - m.D
	return float64(dist) * float64(dist)
}
