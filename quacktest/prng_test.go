package quacktest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thearossman/quack/quacktest"
)

func testKey() []byte {
	return []byte{
		0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98,
	}
}

func TestSameKeyProducesSameStream(t *testing.T) {
	a, err := quacktest.NewKeyedPRNG(testKey())
	require.NoError(t, err)
	b, err := quacktest.NewKeyedPRNG(testKey())
	require.NoError(t, err)

	assert.Equal(t, a.Identifiers(32, 32), b.Identifiers(32, 32))
}

func TestResetReplaysStream(t *testing.T) {
	p, err := quacktest.NewKeyedPRNG(testKey())
	require.NoError(t, err)

	first := p.Identifiers(16, 64)
	for i := 0; i < 128; i++ {
		p.Uint64()
	}
	p.Reset()
	second := p.Identifiers(16, 64)

	assert.Equal(t, first, second)
}

func TestIdentifiersRespectBitWidth(t *testing.T) {
	p, err := quacktest.NewKeyedPRNG(testKey())
	require.NoError(t, err)

	ids := p.Identifiers(256, 16)
	for _, id := range ids {
		assert.Less(t, id, uint64(1<<16))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	p, err := quacktest.NewKeyedPRNG(testKey())
	require.NoError(t, err)

	ids := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := append([]uint64(nil), ids...)
	p.Shuffle(shuffled)

	assert.ElementsMatch(t, ids, shuffled)
}

func TestNewKeyedPRNGRejectsWrongKeyLength(t *testing.T) {
	_, err := quacktest.NewKeyedPRNG([]byte{1, 2, 3})
	assert.Error(t, err)
}
