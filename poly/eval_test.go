package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/poly"
)

func TestEvalEmptyCoeffsReturnsOne(t *testing.T) {
	var c []field.Element[field.W32]
	got := poly.Eval[field.W32](c, field.New[field.W32](uint32(42)))
	assert.Equal(t, uint64(1), got.Uint64())
}

func TestEvalAtZeroReturnsLastCoeff(t *testing.T) {
	c := []field.Element[field.W32]{
		field.New[field.W32](uint32(7)),
		field.New[field.W32](uint32(11)),
	}
	got := poly.Eval[field.W32](c, field.Zero[field.W32]())
	assert.Equal(t, uint64(11), got.Uint64())
}

func TestEvalRootsOfKnownVector(t *testing.T) {
	roots := []uint64{3616712547, 2333013068, 2234311686, 2462729946, 670144905}
	coeffVals := []uint64{1567989721, 1613776244, 517289688, 17842621, 3562381446}
	c := make([]field.Element[field.W32], len(coeffVals))
	for i, v := range coeffVals {
		c[i] = field.New[field.W32](v)
	}
	for _, root := range roots {
		got := poly.Eval[field.W32](c, field.New[field.W32](root))
		assert.True(t, got.IsZero(), "expected root %d to evaluate to zero", root)
	}
	// A value outside the root set should (almost certainly) be nonzero.
	got := poly.Eval[field.W32](c, field.New[field.W32](uint64(42)))
	assert.False(t, got.IsZero())
}
