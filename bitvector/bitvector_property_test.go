package bitvector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/xflash-panda/succinct-vector/bitio"
)

// TestUniversalInvariants checks the cross-cutting invariants spec §8
// pins down for any bit sequence: rank1/rank0 complementarity and the
// rank-select round trip, including the bit found at the selected position.
func TestUniversalInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(rapid.Boolean(), 0, 3000).Draw(t, "bits")

		b := NewBuilder[uint64]()
		for _, bit := range bits {
			b.PushBack(bit)
		}
		v := New[uint64]()
		v.Build(b, true, true)

		n := uint64(len(bits))
		if n > 0 {
			i := rapid.Uint64Range(0, n).Draw(t, "i")
			r1, err := v.Rank1(i)
			require.NoError(t, err)
			r0, err := v.Rank0(i)
			require.NoError(t, err)
			if r1+r0 != i {
				t.Fatalf("rank1(%d)+rank0(%d) = %d+%d != %d", i, i, r1, r0, i)
			}
		}

		if v.Num1s() > 0 {
			idx := rapid.Uint64Range(0, v.Num1s()-1).Draw(t, "select1-idx")
			pos, err := v.Select1(idx)
			require.NoError(t, err)
			r1, err := v.Rank1(pos)
			require.NoError(t, err)
			if r1 != idx {
				t.Fatalf("rank1(select1(%d))=%d, want %d", idx, r1, idx)
			}
			bit, err := v.At(pos)
			require.NoError(t, err)
			if !bit {
				t.Fatalf("bit at select1(%d)=%d is not set", idx, pos)
			}
		}

		if v.Num0s() > 0 {
			idx := rapid.Uint64Range(0, v.Num0s()-1).Draw(t, "select0-idx")
			pos, err := v.Select0(idx)
			require.NoError(t, err)
			r0, err := v.Rank0(pos)
			require.NoError(t, err)
			if r0 != idx {
				t.Fatalf("rank0(select0(%d))=%d, want %d", idx, r0, idx)
			}
			bit, err := v.At(pos)
			require.NoError(t, err)
			if bit {
				t.Fatalf("bit at select0(%d)=%d is set", idx, pos)
			}
		}
	})
}

// TestSelectMonotone checks that consecutive select1/select0 results are
// strictly increasing, per spec §8.
func TestSelectMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(rapid.Boolean(), 1, 2000).Draw(t, "bits")

		b := NewBuilder[uint64]()
		for _, bit := range bits {
			b.PushBack(bit)
		}
		v := New[uint64]()
		v.Build(b, true, true)

		var prev uint64
		for i := uint64(0); i < v.Num1s(); i++ {
			pos, err := v.Select1(i)
			require.NoError(t, err)
			if i > 0 && pos <= prev {
				t.Fatalf("select1(%d)=%d not strictly greater than select1(%d)=%d", i, pos, i-1, prev)
			}
			prev = pos
		}

		prev = 0
		for i := uint64(0); i < v.Num0s(); i++ {
			pos, err := v.Select0(i)
			require.NoError(t, err)
			if i > 0 && pos <= prev {
				t.Fatalf("select0(%d)=%d not strictly greater than select0(%d)=%d", i, pos, i-1, prev)
			}
			prev = pos
		}
	})
}

// TestRoundTripPreservesQueries checks that writing then reading a
// vector back preserves rank1 at five sampled positions and select1 at
// the middle set bit.
func TestRoundTripPreservesQueries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(rapid.Boolean(), 0, 2000).Draw(t, "bits")

		b := NewBuilder[uint32]()
		for _, bit := range bits {
			b.PushBack(bit)
		}
		v := New[uint32]()
		v.Build(b, true, true)

		var buf bytes.Buffer
		require.NoError(t, v.Write(bitio.NewStreamWriter(&buf)))

		v2 := New[uint32]()
		require.NoError(t, v2.Read(bitio.NewStreamReader(&buf)))

		n := uint64(len(bits))
		for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			i := uint64(float64(n) * frac)
			r1, err := v.Rank1(i)
			require.NoError(t, err)
			r2, err := v2.Rank1(i)
			require.NoError(t, err)
			if r1 != r2 {
				t.Fatalf("rank1(%d) mismatch after round trip: %d vs %d", i, r1, r2)
			}
		}

		if v.Num1s() > 0 {
			idx := v.Num1s() / 2
			p1, err := v.Select1(idx)
			require.NoError(t, err)
			p2, err := v2.Select1(idx)
			require.NoError(t, err)
			if p1 != p2 {
				t.Fatalf("select1(%d) mismatch after round trip: %d vs %d", idx, p1, p2)
			}
		}
	})
}
