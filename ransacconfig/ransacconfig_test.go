package ransacconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robovision/loransac/ransac"
	"github.com/robovision/loransac/ransacconfig"
)

func TestLoadEmptyDocumentReturnsDefaults(t *testing.T) {
	got, err := ransacconfig.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, ransac.NewLORansacOptions(), got)
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	doc := `
seed: 42
max_iterations: 500
threshold_multiplier: 2.0
`
	got, err := ransacconfig.Load(strings.NewReader(doc))
	require.NoError(t, err)

	want := ransac.NewLORansacOptions()
	want.Seed = 42
	want.MaxIterations = 500
	want.ThresholdMultiplier = 2.0

	assert.Equal(t, want, got)
}

func TestLoadAllFields(t *testing.T) {
	doc := `
min_iterations: 10
max_iterations: 200
success_probability: 0.95
sqr_inlier_threshold: 0.5
seed: 7
num_lo_steps: 3
threshold_multiplier: 1.5
num_lsq_iterations: 2
min_sample_multiplicator: 5
non_min_sample_multiplier: 4
`
	got, err := ransacconfig.Load(strings.NewReader(doc))
	require.NoError(t, err)

	want := ransac.LORansacOptions{
		RansacOptions: ransac.RansacOptions{
			MinIterations:      10,
			MaxIterations:      200,
			SuccessProbability: 0.95,
			SqrInlierThreshold: 0.5,
			Seed:               7,
		},
		NumLOSteps:             3,
		ThresholdMultiplier:    1.5,
		NumLSQIterations:       2,
		MinSampleMultiplicator: 5,
		NonMinSampleMultiplier: 4,
	}
	assert.Equal(t, want, got)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	_, err := ransacconfig.Load(strings.NewReader("seed: [this is not a scalar"))
	assert.Error(t, err)
}

func TestLoadFileMissingPathReturnsError(t *testing.T) {
	_, err := ransacconfig.LoadFile("/nonexistent/path/to/config.yaml")
	assert.Error(t, err)
}
