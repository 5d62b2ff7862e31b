package bitvector

import (
	"fmt"

	"github.com/xflash-panda/succinct-vector/internal/diag"
	"github.com/xflash-panda/succinct-vector/internal/popcount"
	"github.com/xflash-panda/succinct-vector/vecerr"
)

// buildIndex walks words bit-by-bit (spec §4.4), filling in one rank
// record per 512-bit super-block and, when requested, the sparse
// select-sample arrays. The last, possibly partial, super-block's
// untouched rel_j fields are filled in afterward so that the pinned
// property from spec §9 holds regardless of where the walk stopped:
// for every super-block k and every j in [1,7],
// rank1(min(512k+64j, n)) == ranks[k].abs + ranks[k].rel_j.
func buildIndex[W Word](words []W, size uint64, wantSelect0, wantSelect1 bool) (ranks []rankIndex, sel0, sel1 []uint32, num1s uint64) {
	numSuperblocks := int(size / 512)
	if size%512 != 0 {
		numSuperblocks++
	}
	ranks = make([]rankIndex, numSuperblocks+1)
	lastJ := make([]int, numSuperblocks)

	wb := uint64(wordBits[W]())
	var c0, c1 uint64

	for i := uint64(0); i < size; i++ {
		if i%64 == 0 {
			k := int(i / 512)
			j := int(i/64) % 8
			if j == 0 {
				ranks[k].abs = uint32(c1)
			} else {
				ranks[k].setRelN(j, uint32(c1-uint64(ranks[k].abs)))
			}
			lastJ[k] = j
		}

		bit := (words[i/wb]>>uint(i%wb))&1 != 0
		if bit {
			if wantSelect1 && c1%512 == 0 {
				sel1 = append(sel1, uint32(i))
			}
			c1++
		} else {
			if wantSelect0 && c0%512 == 0 {
				sel0 = append(sel0, uint32(i))
			}
			c0++
		}
	}

	if size%512 != 0 {
		k := numSuperblocks - 1
		for j := lastJ[k] + 1; j <= 7; j++ {
			ranks[k].setRelN(j, uint32(c1-uint64(ranks[k].abs)))
		}
	}

	ranks[len(ranks)-1].abs = uint32(c1)

	if wantSelect0 {
		sel0 = append(sel0, uint32(size))
	}
	if wantSelect1 {
		sel1 = append(sel1, uint32(size))
	}

	return ranks, sel0, sel1, c1
}

// Rank1 returns the number of set bits in [0, i).
func (v *Vector[W]) Rank1(i uint64) (uint64, error) {
	if v.ranks == nil {
		return 0, fmt.Errorf("bitvector: Rank1: %w", vecerr.ErrState)
	}
	if i > v.size {
		diag.Precondition("bitvector.Rank1", int(i), int(v.size))
		return 0, fmt.Errorf("bitvector: Rank1(%d): %w", i, vecerr.ErrBound)
	}
	return v.rank1(i), nil
}

// Rank0 returns the number of unset bits in [0, i).
func (v *Vector[W]) Rank0(i uint64) (uint64, error) {
	r1, err := v.Rank1(i)
	if err != nil {
		return 0, err
	}
	return i - r1, nil
}

func (v *Vector[W]) rank1(i uint64) uint64 {
	wb := uint64(wordBits[W]())
	k := i / 512
	j := int((i / 64) % 8)

	offset := uint64(v.ranks[k].abs)
	if j >= 1 {
		offset += uint64(v.ranks[k].relN(j))
	}

	if wb == 32 && (i/32)%2 == 1 {
		offset += uint64(popcount.Count(v.words[i/32-1]))
	}

	if residual := i % wb; residual > 0 {
		mask := (W(1) << uint(residual)) - 1
		offset += uint64(popcount.Count(v.words[i/wb] & mask))
	}

	return offset
}
