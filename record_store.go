package offheap

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/offheap/internal/conv"
	"github.com/hupe1980/offheap/internal/mmap"
)

// headerLength is the number of bytes each slot reserves for the sort key.
const headerLength = 8

// RecordStore is a fixed-slot record store backed by one contiguous
// anonymous off-heap memory region of Size() * (8 + PayloadLength())
// bytes. Slot i occupies the 8-byte little-endian header at byte offset
// i*(8+P) followed by P payload bytes. All five Addressable operations
// reduce to an offset computation plus a bounded copy.
//
// A RecordStore must be released exactly once with Close. Close is
// idempotent, but any Addressable operation after Close panics with
// ErrClosed (best-effort use-after-release detection).
//
// RecordStore is not safe for concurrent mutation. A single Sort
// invocation is assumed to be the sole mutator for its duration;
// independent stores may be sorted concurrently.
type RecordStore struct {
	mapping    *mmap.Mapping
	data       []byte
	size       int
	payloadLen int
	stride     int
	logger     *Logger
}

// Stats reports the fixed geometry and memory footprint of a RecordStore.
type Stats struct {
	Size          int // slot count
	PayloadLength int // payload bytes per slot
	Stride        int // bytes per slot (header + payload)
	BytesReserved int // total off-heap bytes
}

// New creates a RecordStore with the given slot count and payload length,
// both fixed for the store's lifetime. The backing region is allocated
// once, zero-filled, and released by Close.
func New(size, payloadLength int, opts ...Option) (*RecordStore, error) {
	if size < 0 || payloadLength < 0 {
		return nil, fmt.Errorf("%w: size=%d payloadLength=%d", ErrInvalidSize, size, payloadLength)
	}

	o := applyOptions(opts)

	stride := headerLength + payloadLength

	sizeU, err := conv.IntToUint64(size)
	if err != nil {
		return nil, err
	}
	strideU, err := conv.IntToUint64(stride)
	if err != nil {
		return nil, err
	}
	totalU, err := conv.MulUint64(sizeU, strideU)
	if err != nil {
		return nil, err
	}
	total, err := conv.Uint64ToInt(totalU)
	if err != nil {
		return nil, err
	}

	mapping, err := mmap.MapAnon(total)
	if err != nil {
		return nil, fmt.Errorf("offheap: map region: %w", err)
	}

	// Sorting touches slots in data-dependent order.
	_ = mapping.Advise(mmap.AccessRandom)

	s := &RecordStore{
		mapping:    mapping,
		data:       mapping.Bytes(),
		size:       size,
		payloadLen: payloadLength,
		stride:     stride,
		logger:     o.logger.WithSlots(size).WithPayloadLength(payloadLength),
	}

	s.logger.Debug("record store created", "bytes_reserved", total)

	return s, nil
}

// Size returns the total slot count, fixed for the store's lifetime.
func (s *RecordStore) Size() int {
	return s.size
}

// PayloadLength returns the fixed payload length in bytes.
func (s *RecordStore) PayloadLength() int {
	return s.payloadLen
}

// Header returns the sort key at index.
// It panics with *IndexError if index is out of range, or with ErrClosed
// if the store has been closed.
func (s *RecordStore) Header(index int) int64 {
	s.checkAccess(index)
	off := index * s.stride
	return int64(binary.LittleEndian.Uint64(s.data[off:]))
}

// Payload copies the payload at index into dst.
// It panics with *IndexError if index is out of range, with *SizeError
// if len(dst) != PayloadLength(), or with ErrClosed after Close.
func (s *RecordStore) Payload(index int, dst []byte) {
	s.checkAccess(index)
	if len(dst) != s.payloadLen {
		panic(&SizeError{Expected: s.payloadLen, Actual: len(dst)})
	}
	off := index*s.stride + headerLength
	copy(dst, s.data[off:off+s.payloadLen])
}

// Set overwrites both header and payload at index.
// It panics with *IndexError if index is out of range, with *SizeError
// if len(payload) != PayloadLength(), or with ErrClosed after Close.
func (s *RecordStore) Set(index int, header int64, payload []byte) {
	s.checkAccess(index)
	if len(payload) != s.payloadLen {
		panic(&SizeError{Expected: s.payloadLen, Actual: len(payload)})
	}
	off := index * s.stride
	binary.LittleEndian.PutUint64(s.data[off:], uint64(header))
	copy(s.data[off+headerLength:], payload)
}

// Close releases the backing memory region. It is idempotent; the first
// call unmaps, later calls return nil. After Close every Addressable
// operation panics with ErrClosed.
func (s *RecordStore) Close() error {
	if s.mapping.Closed() {
		return nil
	}
	s.data = nil
	err := s.mapping.Close()
	s.logger.Debug("record store closed")
	return err
}

// Stats returns the store's fixed geometry and memory footprint.
func (s *RecordStore) Stats() Stats {
	return Stats{
		Size:          s.size,
		PayloadLength: s.payloadLen,
		Stride:        s.stride,
		BytesReserved: s.size * s.stride,
	}
}

func (s *RecordStore) String() string {
	return fmt.Sprintf("RecordStore{slots: %d, payload: %d B, reserved: %.2f MB}",
		s.size, s.payloadLen, float64(s.size*s.stride)/(1024*1024))
}

func (s *RecordStore) checkAccess(index int) {
	if s.mapping.Closed() {
		panic(ErrClosed)
	}
	if index < 0 || index >= s.size {
		panic(&IndexError{Index: index, Size: s.size})
	}
}
