package bitvector

import (
	"fmt"

	"github.com/xflash-panda/succinct-vector/bitio"
	"github.com/xflash-panda/succinct-vector/internal/wordio"
	"github.com/xflash-panda/succinct-vector/vecerr"
)

// Write persists v in the layout described in spec §6: word array, u64
// size, u64 num_1s, rank array, select0s array, select1s array.
func (v *Vector[W]) Write(w bitio.Writer) error {
	if err := wordio.WriteArray[W](w, v.words); err != nil {
		return fmt.Errorf("bitvector: write: %w", err)
	}
	if err := w.WriteUint64(v.size); err != nil {
		return fmt.Errorf("bitvector: write size: %w", err)
	}
	if err := w.WriteUint64(v.num1s); err != nil {
		return fmt.Errorf("bitvector: write num_1s: %w", err)
	}
	if err := writeRanks(w, v.ranks); err != nil {
		return err
	}
	if err := writeSamples(w, v.sel0); err != nil {
		return fmt.Errorf("bitvector: write select0s: %w", err)
	}
	if err := writeSamples(w, v.sel1); err != nil {
		return fmt.Errorf("bitvector: write select1s: %w", err)
	}
	return nil
}

func writeRanks(w bitio.Writer, ranks []rankIndex) error {
	if err := w.WriteUint64(uint64(len(ranks))); err != nil {
		return fmt.Errorf("bitvector: write rank count: %w", err)
	}
	for _, r := range ranks {
		if err := w.WriteUint32(r.abs); err != nil {
			return fmt.Errorf("bitvector: write rank abs: %w", err)
		}
		if err := w.WriteUint64(r.rel); err != nil {
			return fmt.Errorf("bitvector: write rank rel: %w", err)
		}
		if err := w.WriteUint32(0); err != nil { // 4 bytes alignment padding
			return fmt.Errorf("bitvector: write rank padding: %w", err)
		}
	}
	return nil
}

func writeSamples(w bitio.Writer, samples []uint32) error {
	if err := w.WriteUint64(uint64(len(samples))); err != nil {
		return err
	}
	return w.WriteUint32Array(samples)
}

// Read reconstructs v from r, following the build-temporary-then-swap
// pattern: a failed read leaves v untouched.
func (v *Vector[W]) Read(r bitio.Reader) error {
	temp := &Vector[W]{tuning: v.tuning}
	if err := temp.readFrom(r); err != nil {
		return err
	}
	*v = *temp
	return nil
}

func (v *Vector[W]) readFrom(r bitio.Reader) error {
	words, err := wordio.ReadArray[W](r)
	if err != nil {
		return fmt.Errorf("bitvector: read: %w", err)
	}
	size, err := r.ReadUint64()
	if err != nil {
		return fmt.Errorf("bitvector: read size: %w", err)
	}
	if size > uint64(^uint(0)>>1) {
		return fmt.Errorf("bitvector: size %d exceeds addressable range: %w", size, vecerr.ErrSize)
	}
	num1s, err := r.ReadUint64()
	if err != nil {
		return fmt.Errorf("bitvector: read num_1s: %w", err)
	}
	ranks, err := readRanks(r)
	if err != nil {
		return err
	}
	if err := validateRankCount(len(ranks), size); err != nil {
		return err
	}
	sel0, err := readSamples(r)
	if err != nil {
		return fmt.Errorf("bitvector: read select0s: %w", err)
	}
	if err := validateSentinel(sel0, size); err != nil {
		return err
	}
	sel1, err := readSamples(r)
	if err != nil {
		return fmt.Errorf("bitvector: read select1s: %w", err)
	}
	if err := validateSentinel(sel1, size); err != nil {
		return err
	}

	v.words = words
	v.size = size
	v.num1s = num1s
	v.ranks = ranks
	v.sel0 = sel0
	v.sel1 = sel1
	return nil
}

func readRanks(r bitio.Reader) ([]rankIndex, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("bitvector: read rank count: %w", err)
	}
	ranks := make([]rankIndex, n)
	for idx := range ranks {
		abs, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("bitvector: read rank abs: %w", err)
		}
		rel, err := r.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("bitvector: read rank rel: %w", err)
		}
		if _, err := r.ReadUint32(); err != nil { // padding
			return nil, fmt.Errorf("bitvector: read rank padding: %w", err)
		}
		ranks[idx] = rankIndex{abs: abs, rel: rel}
	}
	return ranks, nil
}

func readSamples(r bitio.Reader) ([]uint32, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.ReadUint32Array(int(n))
}

func validateRankCount(got int, size uint64) error {
	want := int(size/512) + 1
	if size%512 != 0 {
		want++
	}
	if got != want {
		return fmt.Errorf("bitvector: rank count %d inconsistent with size %d: %w", got, size, vecerr.ErrFormat)
	}
	return nil
}

func validateSentinel(samples []uint32, size uint64) error {
	if samples == nil {
		return nil
	}
	if samples[len(samples)-1] != uint32(size) {
		return fmt.Errorf("bitvector: select sentinel %d does not match size %d: %w", samples[len(samples)-1], size, vecerr.ErrFormat)
	}
	return nil
}

// Map reconstructs v as a borrowed view into a memory-mapped region,
// following the same build-temporary-then-swap pattern as Read.
func (v *Vector[W]) Map(m bitio.Mapper) error {
	temp := &Vector[W]{tuning: v.tuning}
	if err := temp.mapFrom(m); err != nil {
		return err
	}
	*v = *temp
	return nil
}

func (v *Vector[W]) mapFrom(m bitio.Mapper) error {
	words, err := wordio.MapArray[W](m)
	if err != nil {
		return fmt.Errorf("bitvector: map: %w", err)
	}
	size, err := m.MapUint64()
	if err != nil {
		return fmt.Errorf("bitvector: map size: %w", err)
	}
	if size > uint64(^uint(0)>>1) {
		return fmt.Errorf("bitvector: size %d exceeds addressable range: %w", size, vecerr.ErrSize)
	}
	num1s, err := m.MapUint64()
	if err != nil {
		return fmt.Errorf("bitvector: map num_1s: %w", err)
	}
	ranks, err := mapRanks(m)
	if err != nil {
		return err
	}
	if err := validateRankCount(len(ranks), size); err != nil {
		return err
	}
	sel0, err := mapSamples(m)
	if err != nil {
		return fmt.Errorf("bitvector: map select0s: %w", err)
	}
	if err := validateSentinel(sel0, size); err != nil {
		return err
	}
	sel1, err := mapSamples(m)
	if err != nil {
		return fmt.Errorf("bitvector: map select1s: %w", err)
	}
	if err := validateSentinel(sel1, size); err != nil {
		return err
	}

	v.words = words
	v.size = size
	v.num1s = num1s
	v.ranks = ranks
	v.sel0 = sel0
	v.sel1 = sel1
	return nil
}

func mapRanks(m bitio.Mapper) ([]rankIndex, error) {
	n, err := m.MapUint64()
	if err != nil {
		return nil, fmt.Errorf("bitvector: map rank count: %w", err)
	}
	ranks := make([]rankIndex, n)
	for idx := range ranks {
		abs, err := m.MapUint32()
		if err != nil {
			return nil, fmt.Errorf("bitvector: map rank abs: %w", err)
		}
		rel, err := m.MapUint64()
		if err != nil {
			return nil, fmt.Errorf("bitvector: map rank rel: %w", err)
		}
		if _, err := m.MapUint32(); err != nil { // padding
			return nil, fmt.Errorf("bitvector: map rank padding: %w", err)
		}
		ranks[idx] = rankIndex{abs: abs, rel: rel}
	}
	return ranks, nil
}

func mapSamples(m bitio.Mapper) ([]uint32, error) {
	n, err := m.MapUint64()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return m.MapUint32Array(int(n))
}
