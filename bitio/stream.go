package bitio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/xflash-panda/succinct-vector/vecerr"
)

// StreamReader reads a persisted vector image from an io.Reader.
type StreamReader struct {
	r io.Reader
}

// NewStreamReader wraps r as a Reader.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

func (sr *StreamReader) ReadUint32() (uint32, error) {
	var v uint32
	if err := binary.Read(sr.r, binary.LittleEndian, &v); err != nil {
		return 0, wrapShortRead("read uint32", err)
	}
	return v, nil
}

func (sr *StreamReader) ReadUint64() (uint64, error) {
	var v uint64
	if err := binary.Read(sr.r, binary.LittleEndian, &v); err != nil {
		return 0, wrapShortRead("read uint64", err)
	}
	return v, nil
}

func (sr *StreamReader) ReadUint32Array(n int) ([]uint32, error) {
	buf := make([]uint32, n)
	if n == 0 {
		return buf, nil
	}
	if err := binary.Read(sr.r, binary.LittleEndian, buf); err != nil {
		return nil, wrapShortRead("read uint32 array", err)
	}
	return buf, nil
}

func (sr *StreamReader) ReadUint64Array(n int) ([]uint64, error) {
	buf := make([]uint64, n)
	if n == 0 {
		return buf, nil
	}
	if err := binary.Read(sr.r, binary.LittleEndian, buf); err != nil {
		return nil, wrapShortRead("read uint64 array", err)
	}
	return buf, nil
}

func wrapShortRead(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("bitio: %s: %w: %v", op, vecerr.ErrIO, err)
	}
	return fmt.Errorf("bitio: %s: %w", op, err)
}

// StreamWriter appends a persisted vector image to an io.Writer.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter wraps w as a Writer.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

func (sw *StreamWriter) WriteUint32(v uint32) error {
	if err := binary.Write(sw.w, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("bitio: write uint32: %w", err)
	}
	return nil
}

func (sw *StreamWriter) WriteUint64(v uint64) error {
	if err := binary.Write(sw.w, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("bitio: write uint64: %w", err)
	}
	return nil
}

func (sw *StreamWriter) WriteUint32Array(v []uint32) error {
	if len(v) == 0 {
		return nil
	}
	if err := binary.Write(sw.w, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("bitio: write uint32 array: %w", err)
	}
	return nil
}

func (sw *StreamWriter) WriteUint64Array(v []uint64) error {
	if len(v) == 0 {
		return nil
	}
	if err := binary.Write(sw.w, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("bitio: write uint64 array: %w", err)
	}
	return nil
}
