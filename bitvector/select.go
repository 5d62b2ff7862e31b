package bitvector

import (
	"fmt"

	"github.com/xflash-panda/succinct-vector/internal/diag"
	"github.com/xflash-panda/succinct-vector/internal/popcount"
	"github.com/xflash-panda/succinct-vector/internal/selecttable"
	"github.com/xflash-panda/succinct-vector/vecerr"
)

// Select1 returns the position of the (i+1)-th set bit.
func (v *Vector[W]) Select1(i uint64) (uint64, error) {
	if v.sel1 == nil {
		return 0, fmt.Errorf("bitvector: Select1: %w", vecerr.ErrState)
	}
	if i >= v.num1s {
		diag.Precondition("bitvector.Select1", int(i), int(v.num1s))
		return 0, fmt.Errorf("bitvector: Select1(%d): %w", i, vecerr.ErrBound)
	}
	return v.selectCore(i, true)
}

// Select0 returns the position of the (i+1)-th unset bit.
func (v *Vector[W]) Select0(i uint64) (uint64, error) {
	if v.sel0 == nil {
		return 0, fmt.Errorf("bitvector: Select0: %w", vecerr.ErrState)
	}
	if i >= v.Num0s() {
		diag.Precondition("bitvector.Select0", int(i), int(v.Num0s()))
		return 0, fmt.Errorf("bitvector: Select0(%d): %w", i, vecerr.ErrBound)
	}
	return v.selectCore(i, false)
}

// selectCore implements spec §4.6 for both select1 (want1=true) and
// select0 (want1=false): the only difference between the two is which
// sample array is consulted and that every count is taken against the
// complement of the word stream for select0 (the symmetric formulation
// spec §4.6 describes).
func (v *Vector[W]) selectCore(i uint64, want1 bool) (uint64, error) {
	wb := uint64(wordBits[W]())
	samples := v.sel1
	if !want1 {
		samples = v.sel0
	}

	s := i / 512
	if int(s)+1 >= len(samples) {
		return 0, fmt.Errorf("bitvector: select: %w", vecerr.ErrFormat)
	}
	if i%512 == 0 {
		return uint64(samples[s]), nil
	}

	effAbs := func(k uint64) uint64 {
		if want1 {
			return uint64(v.ranks[k].abs)
		}
		return 512*k - uint64(v.ranks[k].abs)
	}

	begin := uint64(samples[s]) / 512
	end := (uint64(samples[s+1]) + 511) / 512

	if int(end-begin) <= v.tuning.LinearScanThreshold {
		for i >= effAbs(begin+1) {
			begin++
		}
	} else {
		for begin+1 < end {
			mid := (begin + end) / 2
			if i < effAbs(mid) {
				end = mid
			} else {
				begin = mid
			}
		}
	}

	k := begin
	i -= effAbs(k)
	rank := v.ranks[k]

	effRel := func(j int) uint64 {
		if want1 {
			return uint64(rank.relN(j))
		}
		return uint64(64*j) - uint64(rank.relN(j))
	}

	j := 0
	for jj := 7; jj >= 1; jj-- {
		if i >= effRel(jj) {
			j = jj
			break
		}
	}
	if j > 0 {
		i -= effRel(j)
	}

	unitsPerSuperblock := 512 / wb
	wordsPer64 := 64 / wb
	unitID := k*unitsPerSuperblock + uint64(j)*wordsPer64

	getWord := func(id uint64) W {
		w := v.words[id]
		if !want1 {
			w = ^w
		}
		return w
	}

	word := getWord(unitID)
	if wb == 32 {
		c := popcount.Count(word)
		if i >= uint64(c) {
			i -= uint64(c)
			unitID++
			word = getWord(unitID)
		}
	}

	within := selectWithinWord(word, i)
	return unitID*wb + within, nil
}

// selectWithinWord finds the bit offset, within a single word, of the
// (i+1)-th set bit, using the popcount kernel's byte-boundary prefix
// counts and the precomputed byte-select table (spec §4.6 step 4-5).
func selectWithinWord[W Word](word W, i uint64) uint64 {
	p := popcount.NewPrefix(word)
	bounds := [7]int{p.Lo8, p.Lo16, p.Lo24, p.Lo32, p.Lo40, p.Lo48, p.Lo56}

	b := 56
	prev := p.Lo56
	for k, bound := range bounds {
		if i < uint64(bound) {
			b = k * 8
			if k == 0 {
				prev = 0
			} else {
				prev = bounds[k-1]
			}
			break
		}
	}

	i -= uint64(prev)
	shifted := uint64(word) >> uint(b)
	return uint64(b) + uint64(selecttable.Select(int(i), byte(shifted&0xFF)))
}
