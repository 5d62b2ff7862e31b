package flatvector

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/succinct-vector/bitio"
)

func TestBuildGetW64(t *testing.T) {
	values := []uint32{0, 1, 7, 8, 255}
	v := New[uint64]()
	v.Build(values)

	assert.Equal(t, uint32(8), v.ValueSize())
	assert.Equal(t, uint32(0xFF), v.Mask())
	assert.Equal(t, uint64(len(values)), v.Size())

	for i, want := range values {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuildGetW32(t *testing.T) {
	values := []uint32{0, 1, 7, 8, 255}
	v := New[uint32]()
	v.Build(values)

	for i, want := range values {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestEmpty(t *testing.T) {
	v := New[uint64]()
	v.Build(nil)

	assert.True(t, v.Empty())
	assert.Equal(t, uint32(0), v.ValueSize())
	assert.Equal(t, uint64(0), v.Size())
	assert.Equal(t, 0, v.TotalSize())
	assert.Equal(t, 16, v.IOSize()) // two u32 scalars + one u64 scalar, no words
}

func TestAllZero(t *testing.T) {
	v := New[uint64]()
	v.Build([]uint32{0, 0, 0, 0})

	assert.Equal(t, uint32(0), v.ValueSize())
	for i := 0; i < 4; i++ {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	}
}

func TestGetOutOfBounds(t *testing.T) {
	v := New[uint64]()
	v.Build([]uint32{1, 2, 3})

	_, err := v.Get(3)
	assert.Error(t, err)
	_, err = v.Get(-1)
	assert.Error(t, err)
}

func TestMonotoneWidth(t *testing.T) {
	// max < 2^k implies value_size <= k.
	cases := []struct {
		values []uint32
		k      uint32
	}{
		{[]uint32{0, 1, 2, 3}, 2},
		{[]uint32{0, 100, 200}, 8},
		{[]uint32{0, 1 << 20}, 21},
	}
	for _, c := range cases {
		v := New[uint64]()
		v.Build(c.values)
		assert.LessOrEqual(t, v.ValueSize(), c.k)
	}
}

func TestStraddlingWordsW32(t *testing.T) {
	// value_size=5 values straddle 32-bit word boundaries regularly.
	values := make([]uint32, 50)
	for i := range values {
		values[i] = uint32(i) % 31
	}
	v := New[uint32]()
	v.Build(values)
	for i, want := range values {
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRoundTripWriteRead(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint32, 1000)
	for i := range values {
		values[i] = uint32(rng.Intn(1 << 20))
	}

	v := New[uint64]()
	v.Build(values)

	var buf bytes.Buffer
	require.NoError(t, v.Write(bitio.NewStreamWriter(&buf)))

	v2 := New[uint64]()
	require.NoError(t, v2.Read(bitio.NewStreamReader(&buf)))

	assert.Equal(t, v.ValueSize(), v2.ValueSize())
	assert.Equal(t, v.Mask(), v2.Mask())
	assert.Equal(t, v.Size(), v2.Size())
	for i, want := range values {
		got, err := v2.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRoundTripMap(t *testing.T) {
	values := []uint32{0, 5, 10, 1000, 1 << 16}
	v := New[uint64]()
	v.Build(values)

	var buf bytes.Buffer
	require.NoError(t, v.Write(bitio.NewStreamWriter(&buf)))

	v2 := New[uint64]()
	require.NoError(t, v2.Map(bitio.NewByteMapper(buf.Bytes())))

	for i, want := range values {
		got, err := v2.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestClear(t *testing.T) {
	v := New[uint64]()
	v.Build([]uint32{1, 2, 3})
	v.Clear()
	assert.True(t, v.Empty())
	assert.Equal(t, uint32(0), v.ValueSize())
}
