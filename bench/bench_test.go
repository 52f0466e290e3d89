package bench_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/bench"
)

func TestDecodeStrawman1aFindsExactDropCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := bench.DecodeStrawman1a(rng, 200, 15)
	require.NoError(t, err)
}

func TestDecodePowerSum32FindsAtLeastDropCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	_, err := bench.DecodePowerSum32(rng, 20, 200, 15)
	require.NoError(t, err)
}

func TestDecodePowerSumFactor32MatchesDropCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, err := bench.DecodePowerSumFactor32(rng, 20, 200, 15)
	require.NoError(t, err)
}

func TestRunTrialRejectsStrawman1b(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	_, err := bench.RunTrial(rng, bench.Strawman1b, 10, 1, bench.Params{})
	assert.Error(t, err)
}

func TestRunBenchmarkSummarizesTrials(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	summary, err := bench.RunBenchmark(rng, bench.PowerSum, 3, 200, 15, bench.Params{Threshold: 20, NumBitsID: 32})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.NumTrials)
	assert.GreaterOrEqual(t, summary.PacketsPerS, float64(0))
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "power-sum", bench.PowerSum.String())
	assert.Equal(t, "strawman1a", bench.Strawman1a.String())
}
