package quack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/quack"
)

func TestMarshalBinaryRoundtrip(t *testing.T) {
	q := quack.New[field.W32](5)
	for _, v := range []uint64{1143971604, 734067013, 130412990, 2072080394, 748120679} {
		q.Insert(v)
	}

	data, err := q.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, quack.WireSize[field.W32](5), len(data))

	got := quack.New[field.W32](5)
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, q.Equal(got))
}

func TestMarshalBinaryRoundtripZeroCount(t *testing.T) {
	q := quack.New[field.W16](3)

	data, err := q.MarshalBinary()
	require.NoError(t, err)

	got := quack.New[field.W16](3)
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, q.Equal(got))
	assert.Equal(t, uint16(0), got.Count())
}

func TestUnmarshalBinaryRejectsWrongLength(t *testing.T) {
	q := quack.New[field.W32](5)
	err := q.UnmarshalBinary([]byte{1, 2, 3})
	assert.Error(t, err)
}
