// Package vector re-exports the two word-width instantiations of the
// flat vector and bit vector as concrete types, mirroring the original
// marisa::grimoire::vector.h convention of a single FlatVector/BitVector
// alias selected by the build's word size.
package vector

import (
	"github.com/xflash-panda/succinct-vector/bitvector"
	"github.com/xflash-panda/succinct-vector/flatvector"
)

type (
	// FlatVector32 packs values over a stream of 32-bit words.
	FlatVector32 = flatvector.Vector[uint32]
	// FlatVector64 packs values over a stream of 64-bit words.
	FlatVector64 = flatvector.Vector[uint64]

	// BitVector32 stores bits over a stream of 32-bit words.
	BitVector32 = bitvector.Vector[uint32]
	// BitVector64 stores bits over a stream of 64-bit words.
	BitVector64 = bitvector.Vector[uint64]

	// Builder32 accumulates bits for a BitVector32.
	Builder32 = bitvector.Builder[uint32]
	// Builder64 accumulates bits for a BitVector64.
	Builder64 = bitvector.Builder[uint64]
)

// NewFlatVector32 returns an empty FlatVector32.
func NewFlatVector32() *FlatVector32 { return flatvector.New[uint32]() }

// NewFlatVector64 returns an empty FlatVector64.
func NewFlatVector64() *FlatVector64 { return flatvector.New[uint64]() }

// NewBitVector32 returns an empty BitVector32.
func NewBitVector32() *BitVector32 { return bitvector.New[uint32]() }

// NewBitVector64 returns an empty BitVector64.
func NewBitVector64() *BitVector64 { return bitvector.New[uint64]() }

// NewBuilder32 returns an empty Builder32.
func NewBuilder32() *Builder32 { return bitvector.NewBuilder[uint32]() }

// NewBuilder64 returns an empty Builder64.
func NewBuilder64() *Builder64 { return bitvector.NewBuilder[uint64]() }
