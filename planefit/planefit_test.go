package planefit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rmat "github.com/robovision/loransac/mat"
	"github.com/robovision/loransac/planefit"
	"github.com/robovision/loransac/ransac"
)

// buildPlaneSolver samples numInliers points on the z=0 plane with Gaussian
// noise sigma in z, contaminated by numOutliers uniform points.
func buildPlaneSolver(sigma float64, numInliers, numOutliers int, seed int64) *planefit.Solver {
	rng := rand.New(rand.NewSource(seed))
	points := make([]rmat.Vec3, 0, numInliers+numOutliers)
	for i := 0; i < numInliers; i++ {
		x := rng.Float64()*10 - 5
		y := rng.Float64()*10 - 5
		z := rng.NormFloat64() * sigma
		points = append(points, rmat.Vec3{float32(x), float32(y), float32(z)})
	}
	for i := 0; i < numOutliers; i++ {
		points = append(points, rmat.Vec3{
			float32(rng.Float64()*10 - 5),
			float32(rng.Float64()*10 - 5),
			float32(rng.Float64()*10 - 5),
		})
	}
	return &planefit.Solver{Points: points}
}

func TestMinimalSolverRecoversPlaneNormal(t *testing.T) {
	solver := &planefit.Solver{Points: []rmat.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}}
	models := solver.MinimalSolver([]int{0, 1, 2})
	require.Len(t, models, 1)

	m := models[0].(planefit.Model)
	assert.InDelta(t, 0, m.Normal[0], 1e-6)
	assert.InDelta(t, 0, m.Normal[1], 1e-6)
	assert.InDelta(t, 1, math.Abs(float64(m.Normal[2])), 1e-6)
	assert.InDelta(t, 0, m.D, 1e-6)
}

func TestMinimalSolverDegenerateSampleReturnsNoModel(t *testing.T) {
	solver := &planefit.Solver{Points: []rmat.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
	}}
	models := solver.MinimalSolver([]int{0, 1, 2})
	assert.Empty(t, models)
}

func TestPlaneFitCleanData(t *testing.T) {
	solver := buildPlaneSolver(0.005, 150, 0, 1)
	opts := ransac.NewLORansacOptions()
	opts.SqrInlierThreshold = 0.001

	model, stats, numInliers := ransac.EstimateModel(opts, solver)
	require.NotNil(t, model)
	require.GreaterOrEqual(t, numInliers, 140)

	m := model.(planefit.Model)
	// The fitted plane should be near-horizontal: |normal.z| close to 1.
	assert.Greater(t, math.Abs(float64(m.Normal[2])), 0.99)
	assert.InDelta(t, 0, m.D, 0.02)
	assert.Equal(t, numInliers, stats.BestNumInliers)
}

func TestPlaneFitWithOutliers(t *testing.T) {
	solver := buildPlaneSolver(0.01, 100, 80, 2)
	opts := ransac.NewLORansacOptions()
	opts.SqrInlierThreshold = 0.01
	opts.Seed = 2

	model, _, numInliers := ransac.EstimateModel(opts, solver)
	require.NotNil(t, model)
	assert.GreaterOrEqual(t, numInliers, 80)

	m := model.(planefit.Model)
	assert.Greater(t, math.Abs(float64(m.Normal[2])), 0.95)
}

func TestEvaluateModelOnPointIsSquaredDistance(t *testing.T) {
	solver := &planefit.Solver{Points: []rmat.Vec3{{0, 0, 3}}}
	model := planefit.Model{Normal: rmat.Vec3{0, 0, 1}, D: 0}
	got := solver.EvaluateModelOnPoint(model, 0)
	assert.InDelta(t, 9.0, got, 1e-9)
}
