package quack_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/quack"
)

func sortedUint64(xs []uint64) []uint64 {
	out := append([]uint64(nil), xs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PowerSumQuack, PowerTableQuack, and MontgomeryQuack must decode to the
// same identifier set for the same inputs. PowerTableQuack is fixed to
// w=16 and MontgomeryQuack to w=64, so each is compared against a
// PowerSumQuack instantiated at the matching width.
func TestAcceleratorEquivalencePowerTable(t *testing.T) {
	const threshold = 4
	full := []uint64{10, 200, 3000, 40000, 500, 6000}
	removed := []uint64{10, 3000, 500}

	base := quack.New[field.W16](threshold)
	baseMinus := quack.New[field.W16](threshold)
	for _, v := range full {
		base.Insert(v)
	}
	for _, v := range removed {
		baseMinus.Insert(v)
	}
	baseDiff := base.Sub(baseMinus)

	table := quack.NewPowerTable(threshold)
	acc := quack.NewPowerTableQuack(table)
	accMinus := quack.NewPowerTableQuack(table)
	for _, v := range full {
		acc.Insert(uint16(v))
	}
	for _, v := range removed {
		accMinus.Insert(uint16(v))
	}
	accDiff := acc.Sub(accMinus)

	require.Equal(t, baseDiff.Count(), accDiff.Count())

	wantMissing := quack.DecodeWithLog[field.W16](baseDiff, full)
	gotMissing := quack.DecodeWithLog[field.W16](accDiff, full)
	assert.Equal(t, wantMissing, gotMissing)
}

func TestAcceleratorEquivalenceMontgomery(t *testing.T) {
	const threshold = 4
	full := []uint64{1143971604111, 734067013222, 130412990333, 2072080394444, 748120679555, 9999999999}
	removed := []uint64{1143971604111, 130412990333, 748120679555}

	base := quack.New[field.W64](threshold)
	baseMinus := quack.New[field.W64](threshold)
	for _, v := range full {
		base.Insert(v)
	}
	for _, v := range removed {
		baseMinus.Insert(v)
	}
	baseDiff := base.Sub(baseMinus)

	acc := quack.NewMontgomeryQuack(threshold)
	accMinus := quack.NewMontgomeryQuack(threshold)
	for _, v := range full {
		acc.Insert(v)
	}
	for _, v := range removed {
		accMinus.Insert(v)
	}
	accDiff := acc.Sub(accMinus)

	require.Equal(t, baseDiff.Count(), accDiff.Count())

	want := sortedUint64(quack.DecodeWithLog[field.W64](baseDiff, full))
	got := sortedUint64(quack.DecodeWithLog[field.W64](accDiff, full))
	assert.Equal(t, want, got)
}
