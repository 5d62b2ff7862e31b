package selecttable

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		byteVal := byte(b)
		count := bits.OnesCount8(byteVal)
		for i := 0; i < count; i++ {
			pos := Select(i, byteVal)
			assert.True(t, pos >= 0 && pos < 8, "byte %#x index %d: pos %d out of range", b, i, pos)
			assert.NotZero(t, byteVal&(1<<uint(pos)), "byte %#x index %d: bit %d not set", b, i, pos)
			// exactly i set bits strictly below pos
			below := bits.OnesCount8(byteVal & ((1 << uint(pos)) - 1))
			assert.Equal(t, i, below, "byte %#x index %d: expected %d set bits below pos %d, got %d", b, i, i, pos, below)
		}
	}
}

func TestSelectKnownBytes(t *testing.T) {
	assert.Equal(t, 0, Select(0, 0b00000001))
	assert.Equal(t, 7, Select(0, 0b10000000))
	assert.Equal(t, 1, Select(1, 0b00000011))
	assert.Equal(t, 0, Select(0, 0b10101010>>1)) // 0b01010101 -> bit 0
}
