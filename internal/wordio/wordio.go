// Package wordio carries the word-array persistence logic shared by the
// flat vector and the bit vector: both store a []W word stream (W being
// uint32 or uint64, spec §9's "template instantiation over word widths")
// prefixed by a u64 element count, and both need that stream written,
// read back, or mapped identically. Centralizing it here is what keeps
// the on-disk layout width-invariant except for the element width, as
// spec §9 requires.
package wordio

import (
	"fmt"

	"github.com/xflash-panda/succinct-vector/bitio"
	"github.com/xflash-panda/succinct-vector/internal/popcount"
)

// Bits returns 32 or 64 for the instantiated word type W.
func Bits[W popcount.Word]() int {
	var zero W
	switch any(zero).(type) {
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic(fmt.Sprintf("wordio: unsupported word type %T", zero))
	}
}

// WriteArray appends the u64 element count and then the word array
// itself to w.
func WriteArray[W popcount.Word](w bitio.Writer, words []W) error {
	if err := w.WriteUint64(uint64(len(words))); err != nil {
		return fmt.Errorf("wordio: write word count: %w", err)
	}
	if len(words) == 0 {
		return nil
	}
	switch Bits[W]() {
	case 32:
		buf := make([]uint32, len(words))
		for i, word := range words {
			buf[i] = uint32(word)
		}
		return w.WriteUint32Array(buf)
	default:
		buf := make([]uint64, len(words))
		for i, word := range words {
			buf[i] = uint64(word)
		}
		return w.WriteUint64Array(buf)
	}
}

// ReadArray reads back a word array written by WriteArray.
func ReadArray[W popcount.Word](r bitio.Reader) ([]W, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("wordio: read word count: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]W, n)
	switch Bits[W]() {
	case 32:
		buf, err := r.ReadUint32Array(int(n))
		if err != nil {
			return nil, fmt.Errorf("wordio: read word array: %w", err)
		}
		for i, v := range buf {
			out[i] = W(v)
		}
	default:
		buf, err := r.ReadUint64Array(int(n))
		if err != nil {
			return nil, fmt.Errorf("wordio: read word array: %w", err)
		}
		for i, v := range buf {
			out[i] = W(v)
		}
	}
	return out, nil
}

// MapArray borrows a word array directly out of a memory mapping. When
// W is uint32 the borrowed slice aliases the mapping with no copy; when
// W is uint64 likewise.
func MapArray[W popcount.Word](m bitio.Mapper) ([]W, error) {
	n, err := m.MapUint64()
	if err != nil {
		return nil, fmt.Errorf("wordio: map word count: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	switch Bits[W]() {
	case 32:
		buf, err := m.MapUint32Array(int(n))
		if err != nil {
			return nil, fmt.Errorf("wordio: map word array: %w", err)
		}
		return any(buf).([]W), nil
	default:
		buf, err := m.MapUint64Array(int(n))
		if err != nil {
			return nil, fmt.Errorf("wordio: map word array: %w", err)
		}
		return any(buf).([]W), nil
	}
}
