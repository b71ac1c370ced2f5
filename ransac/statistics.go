package ransac

import "math"

// RansacStatistics summarizes one EstimateModel call.
type RansacStatistics struct {
	NumIterations  uint32
	BestNumInliers int
	BestModelScore float64
	InlierRatio    float64
	InlierIndices  []int
}

func resetStatistics() RansacStatistics {
	return RansacStatistics{
		BestNumInliers: 0,
		BestModelScore: math.Inf(1),
		NumIterations:  0,
		InlierRatio:    0,
		InlierIndices:  nil,
	}
}
