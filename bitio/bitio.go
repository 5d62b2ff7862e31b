// Package bitio defines the byte-stream collaborators the vector engine
// consumes for persistence: Reader and Writer for stream I/O, and Mapper
// for zero-copy memory-mapped access (spec §6). All three read and write
// little-endian, matching the native little-endian build target assumed
// throughout this module.
package bitio

// Reader reads a persisted vector image from a sequential byte stream.
type Reader interface {
	// ReadUint32 reads one little-endian uint32 scalar.
	ReadUint32() (uint32, error)
	// ReadUint64 reads one little-endian uint64 scalar.
	ReadUint64() (uint64, error)
	// ReadUint32Array reads exactly n little-endian uint32 elements.
	ReadUint32Array(n int) ([]uint32, error)
	// ReadUint64Array reads exactly n little-endian uint64 elements.
	ReadUint64Array(n int) ([]uint64, error)
}

// Writer appends a persisted vector image to a sequential byte stream.
type Writer interface {
	WriteUint32(v uint32) error
	WriteUint64(v uint64) error
	WriteUint32Array(v []uint32) error
	WriteUint64Array(v []uint64) error
}

// Mapper borrows views into an externally owned memory-mapped region.
// Unlike Reader, the returned arrays alias the mapping directly: the
// caller must keep the backing mapping alive for at least as long as any
// value produced by a Mapper method is in use.
type Mapper interface {
	MapUint32() (uint32, error)
	MapUint64() (uint64, error)
	MapUint32Array(n int) ([]uint32, error)
	MapUint64Array(n int) ([]uint64, error)
}
