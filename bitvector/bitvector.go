// Package bitvector implements the bit vector with rank/select index
// (spec §3, §4.4-§4.6): an immutable bit sequence stored as a stream of
// W-bit words, with a three-level (super-block/sub-block/word) rank
// index and two optional sparse select-sample arrays.
package bitvector

import (
	"fmt"

	"github.com/xflash-panda/succinct-vector/internal/diag"
	"github.com/xflash-panda/succinct-vector/internal/popcount"
	"github.com/xflash-panda/succinct-vector/internal/wordio"
	"github.com/xflash-panda/succinct-vector/vecerr"
)

// Word is the underlying word type a Vector is instantiated over.
type Word = popcount.Word

// Vector is an immutable bit sequence with rank and, optionally,
// select0/select1 acceleration.
type Vector[W Word] struct {
	words  []W
	size   uint64
	num1s  uint64
	ranks  []rankIndex
	sel0   []uint32
	sel1   []uint32
	tuning Tuning
}

// New returns an empty Vector with default tuning. Call Build to
// populate it from a Builder.
func New[W Word]() *Vector[W] {
	return &Vector[W]{tuning: DefaultTuning()}
}

func wordBits[W Word]() int { return wordio.Bits[W]() }

// Build constructs the rank/select index over src and installs it into
// v, following the "build temporary, swap on success" pattern (§4.7):
// v is left untouched until the whole index has been built.
func (v *Vector[W]) Build(src *Builder[W], wantSelect0, wantSelect1 bool) {
	temp := &Vector[W]{tuning: v.tuning}
	temp.buildFrom(src, wantSelect0, wantSelect1)
	*v = *temp
}

func (v *Vector[W]) buildFrom(src *Builder[W], wantSelect0, wantSelect1 bool) {
	ranks, sel0, sel1, num1s := buildIndex[W](src.words, src.size, wantSelect0, wantSelect1)
	v.words = src.words
	v.size = src.size
	v.num1s = num1s
	v.ranks = ranks
	v.sel0 = sel0
	v.sel1 = sel1
}

// SetTuning overrides the select search-strategy tuning (§4.6's "chosen
// constant", §5's YAML-loadable knob). Safe to call before or after
// Build; it never touches the word or rank data.
func (v *Vector[W]) SetTuning(t Tuning) { v.tuning = t }

// At returns the bit at position i.
func (v *Vector[W]) At(i uint64) (bool, error) {
	if i >= v.size {
		diag.Precondition("bitvector.At", int(i), int(v.size))
		return false, fmt.Errorf("bitvector: At(%d): %w", i, vecerr.ErrBound)
	}
	return v.at(i), nil
}

func (v *Vector[W]) at(i uint64) bool {
	wb := uint64(wordBits[W]())
	return (v.words[i/wb]>>uint(i%wb))&1 != 0
}

// Size returns the number of bits in the sequence.
func (v *Vector[W]) Size() uint64 { return v.size }

// Num1s returns the total number of set bits.
func (v *Vector[W]) Num1s() uint64 { return v.num1s }

// Num0s returns the total number of unset bits.
func (v *Vector[W]) Num0s() uint64 { return v.size - v.num1s }

// Empty reports whether the vector holds zero bits.
func (v *Vector[W]) Empty() bool { return v.size == 0 }

// HasSelect0 reports whether select0 acceleration was built.
func (v *Vector[W]) HasSelect0() bool { return v.sel0 != nil }

// HasSelect1 reports whether select1 acceleration was built.
func (v *Vector[W]) HasSelect1() bool { return v.sel1 != nil }

// TotalSize returns the in-memory byte footprint of the word array.
func (v *Vector[W]) TotalSize() int {
	return len(v.words) * (wordBits[W]() / 8)
}

// IOSize returns the byte cost of the persisted image.
func (v *Vector[W]) IOSize() int {
	size := 8 + v.TotalSize() + 8 + 8 // word count + words + size + num_1s
	size += 8 + len(v.ranks)*16   // rank array count + records
	size += 8 + len(v.sel0)*4
	size += 8 + len(v.sel1)*4
	return size
}

// Clear resets v to its default-constructed, empty state.
func (v *Vector[W]) Clear() {
	*v = Vector[W]{tuning: v.tuning}
}
