// Package ransacconfig loads ransac.LORansacOptions from a YAML document
// using gopkg.in/yaml.v3. Any field the document does not name keeps the
// library default for that field; a field set explicitly, even to zero, is
// applied as written.
package ransacconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robovision/loransac/ransac"
)

// document mirrors ransac.LORansacOptions but with every field optional, so
// a config file only needs to name the settings it wants to override.
type document struct {
	MinIterations          *uint32  `yaml:"min_iterations"`
	MaxIterations          *uint32  `yaml:"max_iterations"`
	SuccessProbability     *float64 `yaml:"success_probability"`
	SqrInlierThreshold     *float64 `yaml:"sqr_inlier_threshold"`
	Seed                   *uint64  `yaml:"seed"`
	NumLOSteps             *int     `yaml:"num_lo_steps"`
	ThresholdMultiplier    *float64 `yaml:"threshold_multiplier"`
	NumLSQIterations       *int     `yaml:"num_lsq_iterations"`
	MinSampleMultiplicator *int     `yaml:"min_sample_multiplicator"`
	NonMinSampleMultiplier *int     `yaml:"non_min_sample_multiplier"`
}

// Load reads a YAML document from r and returns LORansacOptions with the
// library defaults applied to any field the document left unset.
func Load(r io.Reader) (ransac.LORansacOptions, error) {
	opts := ransac.NewLORansacOptions()

	b, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("ransacconfig: reading config: %w", err)
	}
	if len(b) == 0 {
		return opts, nil
	}

	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return opts, fmt.Errorf("ransacconfig: parsing config: %w", err)
	}

	applyOverrides(&opts, &doc)
	return opts, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (ransac.LORansacOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return ransac.NewLORansacOptions(), fmt.Errorf("ransacconfig: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func applyOverrides(opts *ransac.LORansacOptions, doc *document) {
	if doc.MinIterations != nil {
		opts.MinIterations = *doc.MinIterations
	}
	if doc.MaxIterations != nil {
		opts.MaxIterations = *doc.MaxIterations
	}
	if doc.SuccessProbability != nil {
		opts.SuccessProbability = *doc.SuccessProbability
	}
	if doc.SqrInlierThreshold != nil {
		opts.SqrInlierThreshold = *doc.SqrInlierThreshold
	}
	if doc.Seed != nil {
		opts.Seed = *doc.Seed
	}
	if doc.NumLOSteps != nil {
		opts.NumLOSteps = *doc.NumLOSteps
	}
	if doc.ThresholdMultiplier != nil {
		opts.ThresholdMultiplier = *doc.ThresholdMultiplier
	}
	if doc.NumLSQIterations != nil {
		opts.NumLSQIterations = *doc.NumLSQIterations
	}
	if doc.MinSampleMultiplicator != nil {
		opts.MinSampleMultiplicator = *doc.MinSampleMultiplicator
	}
	if doc.NonMinSampleMultiplier != nil {
		opts.NonMinSampleMultiplier = *doc.NonMinSampleMultiplier
	}
}
