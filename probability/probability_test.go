package probability_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/probability"
)

func TestExpectedFalsePositivesMatchesLogOverPrime(t *testing.T) {
	got := probability.ExpectedFalsePositives[field.W32](6)
	want := big.NewFloat(6.0 / 4294967291.0)

	diff := new(big.Float).Sub(got, want)
	diff.Abs(diff)
	assert.True(t, diff.Cmp(big.NewFloat(1e-12)) < 0, "got %s, want ~%s", got.String(), want.String())
}

func TestExpectedFalsePositivesZeroLogIsZero(t *testing.T) {
	got := probability.ExpectedFalsePositives[field.W16](0)
	assert.True(t, got.Sign() == 0)
}

func TestProbabilityOfAnyFalsePositiveIsSmallForSmallLog(t *testing.T) {
	got := probability.ProbabilityOfAnyFalsePositive[field.W32](6)
	assert.True(t, got.Sign() > 0)
	assert.True(t, got.Cmp(big.NewFloat(1e-6)) < 0)
}

func TestProbabilityOfAnyFalsePositiveGrowsWithLogLength(t *testing.T) {
	small := probability.ProbabilityOfAnyFalsePositive[field.W16](10)
	large := probability.ProbabilityOfAnyFalsePositive[field.W16](10000)
	assert.True(t, large.Cmp(small) > 0)
}

func TestProbabilityWidensByFieldSize(t *testing.T) {
	// A smaller field (w=16) has a higher false-positive probability than a
	// larger one (w=64) for the same log length.
	p16 := probability.ProbabilityOfAnyFalsePositive[field.W16](1000)
	p64 := probability.ProbabilityOfAnyFalsePositive[field.W64](1000)
	assert.True(t, p16.Cmp(p64) > 0)
}
