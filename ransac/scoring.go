package ransac

// scoreModel computes the MSAC (top-hat) score of model over all of the
// solver's data: the sum of min(squared_error, sqrInlierThreshold) over all
// N points. Lower is better.
func scoreModel(solver Solver, model Model, sqrInlierThreshold float64) float64 {
	n := solver.NumData()
	var score float64
	for i := 0; i < n; i++ {
		sqrErr := solver.EvaluateModelOnPoint(model, i)
		if sqrErr < sqrInlierThreshold {
			score += sqrErr
		} else {
			score += sqrInlierThreshold
		}
	}
	return score
}

// countInliers returns the number of points whose residual under model is
// strictly below threshold.
func countInliers(solver Solver, model Model, threshold float64) int {
	n := solver.NumData()
	count := 0
	for i := 0; i < n; i++ {
		if solver.EvaluateModelOnPoint(model, i) < threshold {
			count++
		}
	}
	return count
}

// collectInliers returns, in ascending order, the indices of points whose
// residual under model is strictly below threshold.
func collectInliers(solver Solver, model Model, threshold float64) []int {
	n := solver.NumData()
	inliers := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if solver.EvaluateModelOnPoint(model, i) < threshold {
			inliers = append(inliers, i)
		}
	}
	return inliers
}

// bestEstimatedModel scores every candidate under threshold and returns the
// index and score of the lowest-scoring one. Ties keep the lowest index
// (the first one found, since later candidates only replace on strict <).
func bestEstimatedModel(solver Solver, models []Model, threshold float64) (bestIdx int, bestScore float64) {
	bestScore = scoreModel(solver, models[0], threshold)
	bestIdx = 0
	for i := 1; i < len(models); i++ {
		score := scoreModel(solver, models[i], threshold)
		if score < bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return bestIdx, bestScore
}
