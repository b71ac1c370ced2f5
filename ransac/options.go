package ransac

import "math"

// RansacOptions configures the outer random-sampling loop. The zero value is
// not usable directly; construct options with NewRansacOptions or
// NewLORansacOptions to get the documented defaults.
type RansacOptions struct {
	// MinIterations is the minimum number of outer iterations run, regardless
	// of the observed inlier ratio.
	MinIterations uint32
	// MaxIterations caps the adaptively recomputed iteration budget.
	MaxIterations uint32
	// SuccessProbability is the target probability that at least one minimal
	// sample drawn over the run contains only inliers. Must be in (0, 1).
	SuccessProbability float64
	// SqrInlierThreshold is the squared residual threshold (tau^2) below
	// which a point counts as an inlier.
	SqrInlierThreshold float64
	// Seed drives both the outer sampler's RNG stream and (independently)
	// the local-optimization shuffler's RNG stream.
	Seed uint64
}

// NewRansacOptions returns RansacOptions populated with the library defaults.
func NewRansacOptions() RansacOptions {
	return RansacOptions{
		MinIterations:      100,
		MaxIterations:      10000,
		SuccessProbability: 0.9999,
		SqrInlierThreshold: 1.0,
		Seed:               0,
	}
}

// LORansacOptions extends RansacOptions with the parameters of Lebeda et
// al.'s local optimization step (Lebeda, Matas, Chum, "Fixing the Locally
// Optimized RANSAC", BMVC 2012, Table 1).
type LORansacOptions struct {
	RansacOptions

	// NumLOSteps is the number of non-minimal resampling rounds run inside
	// local optimization.
	NumLOSteps int
	// ThresholdMultiplier (>= 1) relaxes the inlier threshold during the
	// initial least-squares fit and the start of IRLS annealing.
	ThresholdMultiplier float64
	// NumLSQIterations is the number of IRLS passes per LO step. Must be
	// >= 2 so the annealed threshold can step from ThresholdMultiplier*tau^2
	// down to tau^2.
	NumLSQIterations int
	// MinSampleMultiplicator bounds the size of the sample handed to
	// Solver.LeastSquares at min(MinSampleMultiplicator*MinSampleSize, #inliers).
	MinSampleMultiplicator int
	// NonMinSampleMultiplier bounds the size of the non-minimal sample drawn
	// each LO step, see localOptimization.
	NonMinSampleMultiplier int
}

// NewLORansacOptions returns LORansacOptions populated with the library
// defaults.
func NewLORansacOptions() LORansacOptions {
	return LORansacOptions{
		RansacOptions:          NewRansacOptions(),
		NumLOSteps:             10,
		ThresholdMultiplier:    math.Sqrt2,
		NumLSQIterations:       4,
		MinSampleMultiplicator: 7,
		NonMinSampleMultiplier: 3,
	}
}
