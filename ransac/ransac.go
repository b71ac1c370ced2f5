// Package ransac implements Locally Optimized RANSAC with MSAC (top-hat)
// scoring: a parametric, Solver-agnostic robust model-fitting engine.
package ransac

import (
	"math"
	"math/rand"
)

// EstimateModel estimates a model using solver, which owns the data and
// implements the minimal/non-minimal solvers and scoring primitives.
//
// Returns the best model found, its statistics, and the number of inliers
// (equal to statistics.BestNumInliers). If solver.MinSampleSize() is <= 0 or
// exceeds solver.NumData(), EstimateModel is a no-op and returns a
// zero-value model with zero iterations, zero inliers and no inlier indices
// (BestModelScore keeps its +Inf sentinel). This is an expected
// precondition failure, not an error.
func EstimateModel(options LORansacOptions, solver Solver) (Model, RansacStatistics, int) {
	stats := resetStatistics()

	minSampleSize := solver.MinSampleSize()
	numData := solver.NumData()
	if minSampleSize > numData || minSampleSize <= 0 {
		return nil, stats, 0
	}

	sampler := NewSampler(options.Seed, numData, minSampleSize)
	loRNG := rand.New(rand.NewSource(int64(options.Seed)))

	maxIterations := options.MaxIterations
	if options.MinIterations > maxIterations {
		maxIterations = options.MinIterations
	}

	sqrInlierThresh := options.SqrInlierThreshold

	var bestModel Model
	var bestMinimalModel Model
	bestMinModelScore := math.Inf(1)

	minimalSample := make([]int, minSampleSize)

	for stats.NumIterations = 0; stats.NumIterations < maxIterations; stats.NumIterations++ {
		sampler.Sample(minimalSample)

		estimatedModels := solver.MinimalSolver(minimalSample)
		if len(estimatedModels) == 0 {
			continue
		}

		bestLocalIdx, bestLocalScore := bestEstimatedModel(solver, estimatedModels, sqrInlierThresh)
		bestLocalModel := estimatedModels[bestLocalIdx]

		if bestLocalScore < bestMinModelScore {
			bestMinModelScore = bestLocalScore
			bestMinimalModel = bestLocalModel

			refinedModel, scoreRefinedModel := localOptimization(options, solver, loRNG, bestMinimalModel, bestMinModelScore)

			if scoreRefinedModel < stats.BestModelScore {
				stats.BestModelScore = scoreRefinedModel
				bestModel = refinedModel

				stats.InlierIndices = collectInliers(solver, bestModel, sqrInlierThresh)
				stats.BestNumInliers = len(stats.InlierIndices)
				stats.InlierRatio = float64(stats.BestNumInliers) / float64(numData)

				maxIterations = numRequiredIterations(
					stats.InlierRatio, 1.0-options.SuccessProbability,
					minSampleSize, options.MinIterations, options.MaxIterations,
				)
			}
		}
	}

	return bestModel, stats, stats.BestNumInliers
}
