package quack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/quack"
)

func buildDiff(t *testing.T, threshold int, full, removed []uint64) *quack.PowerSumQuack[field.W32] {
	t.Helper()
	a := quack.New[field.W32](threshold)
	for _, v := range full {
		a.Insert(v)
	}
	b := quack.New[field.W32](threshold)
	for _, v := range removed {
		b.Insert(v)
	}
	return a.Sub(b)
}

// Small decode where the longest-run suffix dominates the missing count.
func TestDecodeSmallLogAndSuffix(t *testing.T) {
	log := []uint64{1, 2, 3, 4, 5, 6}
	diff := buildDiff(t, 3, log, []uint64{1, 3, 4})
	require.Equal(t, uint16(3), diff.Count())

	missing := quack.DecodeWithLog[field.W32](diff, log)
	assert.Equal(t, []uint64{2, 5, 6}, missing)

	d := quack.Decode[field.W32](diff, log)
	assert.Equal(t, 3, d.TotalNumMissing())
	assert.Equal(t, 2, d.NumSuffix())
	assert.Equal(t, 1, d.NumMissing())
	assert.Equal(t, []int{1}, d.Missing())
}

// Collisions in the log are preserved as duplicates.
func TestDecodeCollisionsInLog(t *testing.T) {
	log := []uint64{1, 2, 2, 3, 4, 5, 6}
	diff := buildDiff(t, 4, log, []uint64{1, 3, 4})

	missing := quack.DecodeWithLog[field.W32](diff, log)
	assert.Equal(t, []uint64{2, 2, 5, 6}, missing)
}

// An incomplete log yields a shorter-than-count result.
func TestDecodeIncompleteLog(t *testing.T) {
	log := []uint64{1, 2, 3, 4, 5, 6}
	diff := buildDiff(t, 3, log, []uint64{1, 3, 4})

	missing := quack.DecodeWithLog[field.W32](diff, log[2:])
	assert.Equal(t, []uint64{5, 6}, missing)
	assert.Less(t, len(missing), int(diff.Count()))
}

// An empty (self-minus-self) sketch decodes to nothing.
func TestDecodeEmptySketch(t *testing.T) {
	log := []uint64{1, 2, 3, 4, 5, 6}
	a := quack.New[field.W32](3)
	for _, v := range log {
		a.Insert(v)
	}
	diff := a.Sub(a)
	require.Equal(t, uint16(0), diff.Count())

	assert.Empty(t, diff.ToCoeffs())
	assert.Empty(t, quack.DecodeWithLog[field.W32](diff, log))
	d := quack.Decode[field.W32](diff, log)
	assert.Equal(t, 0, d.TotalNumMissing())
}

// Factorization recovers the same roots as log-based decoding.
func TestDecodeByFactorizationMatchesLogDecode(t *testing.T) {
	log := []uint64{1, 2, 3, 4, 5, 6}
	diff := buildDiff(t, 3, log, []uint64{1, 3, 4})

	roots, err := quack.DecodeByFactorization[field.W32](diff)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 5, 6}, roots)
}

func TestDecodeByFactorizationEmptySketch(t *testing.T) {
	q := quack.New[field.W32](3)
	roots, err := quack.DecodeByFactorization[field.W32](q)
	require.NoError(t, err)
	assert.Empty(t, roots)
}
