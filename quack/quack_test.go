package quack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/quack"
	"github.com/thearossman/quack/quacktest"
)

func TestInsertRemoveIsInverse(t *testing.T) {
	q := quack.New[field.W32](5)
	q.Insert(42)
	q.Insert(17)
	snapshot := q.ToCoeffs()
	count := q.Count()

	q.Insert(99)
	q.Remove(99)

	assert.Equal(t, count, q.Count())
	assert.Equal(t, snapshot, q.ToCoeffs())
}

func TestCommutativityUnderPermutation(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	prng, err := quacktest.NewKeyedPRNG(key)
	require.NoError(t, err)
	ids := prng.Identifiers(50, 32)

	q1 := quack.New[field.W32](10)
	for _, id := range ids {
		q1.Insert(id)
	}

	shuffled := append([]uint64(nil), ids...)
	prng.Shuffle(shuffled)
	q2 := quack.New[field.W32](10)
	for _, id := range shuffled {
		q2.Insert(id)
	}

	assert.True(t, q1.Equal(q2))
}

func TestHomomorphismOverDisjointSets(t *testing.T) {
	a := []uint64{1, 2, 3}
	b := []uint64{4, 5}

	union := quack.New[field.W32](5)
	for _, v := range append(append([]uint64(nil), a...), b...) {
		union.Insert(v)
	}
	qb := quack.New[field.W32](5)
	for _, v := range b {
		qb.Insert(v)
	}
	qa := quack.New[field.W32](5)
	for _, v := range a {
		qa.Insert(v)
	}

	assert.True(t, union.Sub(qb).Equal(qa))
}

func TestSubWithMismatchedThresholdsPanics(t *testing.T) {
	q1 := quack.New[field.W32](5)
	q2 := quack.New[field.W32](4)
	assert.Panics(t, func() { q1.Sub(q2) })
}

func TestCountWrapsOnSubtraction(t *testing.T) {
	q1 := quack.New[field.W16](3)
	q2 := quack.New[field.W16](3)
	q2.Insert(1)
	q2.Insert(2)
	q2.Insert(3)

	diff := q1.Sub(q2)
	// 0 - 3 wraps to 2^16 - 3.
	assert.Equal(t, uint16(65533), diff.Count())
}

func TestNumericRegressionPowerSums(t *testing.T) {
	inserts := []uint64{1143971604, 734067013, 130412990, 2072080394, 748120679}
	want := []uint64{533685389, 1847039354, 2727275532, 1272499396, 2347942976}

	q := quack.New[field.W32](5)
	for _, v := range inserts {
		q.Insert(v)
	}
	assert.Equal(t, uint16(5), q.Count())

	got := q.PowerSumValues()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w, got[i], "power_sums[%d]", i)
	}
}

func TestNumericRegressionCoefficients(t *testing.T) {
	inserts := []uint64{3616712547, 2333013068, 2234311686, 2462729946, 670144905}
	want := []uint64{1567989721, 1613776244, 517289688, 17842621, 3562381446}

	q := quack.New[field.W32](5)
	for _, v := range inserts {
		q.Insert(v)
	}
	coeffs := q.ToCoeffs()
	require.Len(t, coeffs, len(want))
	for i, w := range want {
		assert.Equal(t, w, coeffs[i].Uint64(), "coeffs[%d]", i)
	}
}
