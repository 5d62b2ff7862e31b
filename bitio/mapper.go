package bitio

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/xflash-panda/succinct-vector/vecerr"
)

// MappedFile is a read-only memory mapping of a file. It is the
// externally owned region §5 describes: ByteMapper views borrow from it,
// and the mapping must outlive every dependent instance.
type MappedFile struct {
	data []byte
}

// OpenMapped memory-maps path for reading.
func OpenMapped(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitio: open mapped file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("bitio: stat mapped file: %w", err)
	}
	if fi.Size() == 0 {
		return &MappedFile{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("bitio: mmap: %w", err)
	}
	return &MappedFile{data: data}, nil
}

// Close unmaps the region. Every ByteMapper borrowed from this mapping
// must have gone out of use before Close is called.
func (m *MappedFile) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}

// NewMapper returns a Mapper that reads sequentially from the start of
// the mapping.
func (m *MappedFile) NewMapper() *ByteMapper {
	return &ByteMapper{data: m.data}
}

// ByteMapper implements Mapper over an in-memory byte slice, whether
// backed by a real mapping (via MappedFile) or an ordinary []byte (e.g.
// in tests). Array accessors return zero-copy slices that alias data.
type ByteMapper struct {
	data []byte
	off  int
}

// NewByteMapper wraps data as a Mapper. data is not copied.
func NewByteMapper(data []byte) *ByteMapper {
	return &ByteMapper{data: data}
}

func (bm *ByteMapper) remaining() int {
	return len(bm.data) - bm.off
}

func (bm *ByteMapper) MapUint32() (uint32, error) {
	if bm.remaining() < 4 {
		return 0, fmt.Errorf("bitio: map uint32: %w", vecerr.ErrFormat)
	}
	v := binary.LittleEndian.Uint32(bm.data[bm.off:])
	bm.off += 4
	return v, nil
}

func (bm *ByteMapper) MapUint64() (uint64, error) {
	if bm.remaining() < 8 {
		return 0, fmt.Errorf("bitio: map uint64: %w", vecerr.ErrFormat)
	}
	v := binary.LittleEndian.Uint64(bm.data[bm.off:])
	bm.off += 8
	return v, nil
}

// MapUint32Array borrows n consecutive little-endian uint32 elements
// directly out of the mapping. The native build target is little-endian,
// so no byte-swapping copy is needed.
func (bm *ByteMapper) MapUint32Array(n int) ([]uint32, error) {
	if n == 0 {
		return nil, nil
	}
	size := n * 4
	if bm.remaining() < size {
		return nil, fmt.Errorf("bitio: map uint32 array: %w", vecerr.ErrFormat)
	}
	s := unsafe.Slice((*uint32)(unsafe.Pointer(&bm.data[bm.off])), n)
	bm.off += size
	return s, nil
}

// MapUint64Array borrows n consecutive little-endian uint64 elements
// directly out of the mapping.
func (bm *ByteMapper) MapUint64Array(n int) ([]uint64, error) {
	if n == 0 {
		return nil, nil
	}
	size := n * 8
	if bm.remaining() < size {
		return nil, fmt.Errorf("bitio: map uint64 array: %w", vecerr.ErrFormat)
	}
	s := unsafe.Slice((*uint64)(unsafe.Pointer(&bm.data[bm.off])), n)
	bm.off += size
	return s, nil
}
