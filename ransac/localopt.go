package ransac

import "math/rand"

// localOptimization refines bestMinimalModel (scoring scoreBestMinimalModel)
// via non-minimal resampling interleaved with threshold-annealed IRLS. The
// returned model/score are never worse than the input: the input model is
// itself a candidate throughout. rng is a stream seeded independently of
// the outer sampler's stream, so local optimization's random draws never
// perturb the outer sampling sequence.
func localOptimization(options LORansacOptions, solver Solver, rng *rand.Rand, bestMinimalModel Model, scoreBestMinimalModel float64) (refinedModel Model, scoreRefinedModel float64) {
	refinedModel = bestMinimalModel
	scoreRefinedModel = scoreBestMinimalModel

	numData := solver.NumData()
	minNonMinSampleSize := solver.NonMinimalSampleSize()
	if minNonMinSampleSize > numData {
		return refinedModel, scoreRefinedModel
	}

	sqInThresh := options.SqrInlierThreshold
	threshMult := options.ThresholdMultiplier

	mInit := leastSquaresFit(options, sqInThresh*threshMult, solver, rng, bestMinimalModel)

	score := scoreModel(solver, mInit, sqInThresh)
	refinedModel, scoreRefinedModel = updateBestModel(score, mInit, scoreRefinedModel, refinedModel)

	inliersBase := collectInliers(solver, mInit, sqInThresh)

	nonMinSampleSize := minNonMinSampleSize * options.NonMinSampleMultiplier
	if half := len(inliersBase) / 2; nonMinSampleSize > half {
		nonMinSampleSize = half
	}
	if nonMinSampleSize < minNonMinSampleSize {
		nonMinSampleSize = minNonMinSampleSize
	}

	sampleBuf := make([]int, len(inliersBase))
	for r := 0; r < options.NumLOSteps; r++ {
		copy(sampleBuf, inliersBase)
		sample := randomShuffleAndResize(rng, sampleBuf, nonMinSampleSize)

		mNonMin, ok := solver.NonMinimalSolver(sample)
		if !ok {
			continue
		}

		score = scoreModel(solver, mNonMin, sqInThresh)
		refinedModel, scoreRefinedModel = updateBestModel(score, mNonMin, scoreRefinedModel, refinedModel)

		// Threshold-annealed IRLS: start at threshMult*tau^2 and step down
		// to tau^2 on the final pass.
		thresh := threshMult * sqInThresh
		threshStep := (threshMult - 1.0) * sqInThresh / float64(options.NumLSQIterations-1)
		for i := 0; i < options.NumLSQIterations; i++ {
			mNonMin = leastSquaresFit(options, thresh, solver, rng, mNonMin)

			score = scoreModel(solver, mNonMin, sqInThresh)
			refinedModel, scoreRefinedModel = updateBestModel(score, mNonMin, scoreRefinedModel, refinedModel)
			thresh -= threshStep
		}
	}

	return refinedModel, scoreRefinedModel
}

// leastSquaresFit collects the inliers of model under thresh, takes a
// random subset of at most MinSampleMultiplicator*MinSampleSize of them,
// and hands that subset to the solver's least-squares refinement. If the
// solver declines (ok=false), model is returned unchanged.
func leastSquaresFit(options LORansacOptions, thresh float64, solver Solver, rng *rand.Rand, model Model) Model {
	lsqSampleSize := options.MinSampleMultiplicator * solver.MinSampleSize()

	inliers := collectInliers(solver, model, thresh)
	lsqDataSize := lsqSampleSize
	if len(inliers) < lsqDataSize {
		lsqDataSize = len(inliers)
	}
	inliers = randomShuffleAndResize(rng, inliers, lsqDataSize)

	refined, ok := solver.LeastSquares(inliers, model)
	if !ok {
		return model
	}
	return refined
}

// randomShuffleAndResize partially Fisher-Yates shuffles v so that its
// first min(k, len(v)) elements form a uniform random subset of v's
// elements, and returns that prefix.
func randomShuffleAndResize(rng *rand.Rand, v []int, k int) []int {
	n := len(v)
	if k > n {
		k = n
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		v[i], v[j] = v[j], v[i]
	}
	return v[:k]
}

func updateBestModel(scoreCurr float64, mCurr Model, scoreBest float64, mBest Model) (Model, float64) {
	if scoreCurr < scoreBest {
		return mCurr, scoreCurr
	}
	return mBest, scoreBest
}
