package ransac

import "math"

// numRequiredIterations computes the number of RANSAC trials needed to miss
// the best model with probability at most probMissingBestModel, given an
// observed inlier ratio and sample size, clamped to [minIterations,
// maxIterations].
func numRequiredIterations(inlierRatio, probMissingBestModel float64, sampleSize int, minIterations, maxIterations uint32) uint32 {
	if inlierRatio <= 0.0 {
		return maxIterations
	}
	if inlierRatio >= 1.0 {
		return minIterations
	}

	probNonInlierSample := 1.0 - math.Pow(inlierRatio, float64(sampleSize))
	logNumerator := math.Log(probMissingBestModel)
	logDenominator := math.Log(probNonInlierSample)

	numIters := math.Ceil(logNumerator/logDenominator + 0.5)

	numReqIterations := uint32(numIters)
	if numIters > float64(maxIterations) {
		numReqIterations = maxIterations
	}
	if numReqIterations < minIterations {
		numReqIterations = minIterations
	}
	return numReqIterations
}
