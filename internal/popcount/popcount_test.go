package popcount

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMatchesStdlib(t *testing.T) {
	words := []uint64{0, 1, 0xFF, 0xFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xAAAAAAAAAAAAAAAA}
	for _, w := range words {
		assert.Equal(t, bits.OnesCount64(w), Count(w))
		assert.Equal(t, bits.OnesCount32(uint32(w)), Count(uint32(w)))
	}
}

func TestPrefixCounts(t *testing.T) {
	// low byte has 4 bits set, second byte has 1, rest zero.
	w := uint64(0x010F)
	p := NewPrefix(w)
	assert.Equal(t, 4, p.Lo8)
	assert.Equal(t, 5, p.Lo16)
	assert.Equal(t, 5, p.Lo24)
	assert.Equal(t, 5, p.Lo32)
	assert.Equal(t, 5, p.Lo56)
}

func TestPrefixAllOnes(t *testing.T) {
	p := NewPrefix(uint64(0xFFFFFFFFFFFFFFFF))
	assert.Equal(t, 8, p.Lo8)
	assert.Equal(t, 16, p.Lo16)
	assert.Equal(t, 24, p.Lo24)
	assert.Equal(t, 32, p.Lo32)
	assert.Equal(t, 40, p.Lo40)
	assert.Equal(t, 48, p.Lo48)
	assert.Equal(t, 56, p.Lo56)
}
