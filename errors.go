package offheap

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is the panic value for any operation on a store whose
	// backing memory region has already been released. Detection is
	// best-effort; see RecordStore.Close.
	ErrClosed = errors.New("offheap: store is closed")

	// ErrInvalidSize is returned when a store is constructed with a
	// negative slot count or payload length.
	ErrInvalidSize = errors.New("offheap: size and payload length must be non-negative")
)

// IndexError indicates an index argument outside the valid range for a
// store. Store accessors panic with it; SortRange returns it.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("offheap: index %d out of range for store of size %d", e.Index, e.Size)
}

// SizeError indicates a payload buffer whose length does not equal the
// store's fixed payload length.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("offheap: payload length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// RangeError indicates a sort range with fromIndex > toIndex.
type RangeError struct {
	From int
	To   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("offheap: invalid range: from %d > to %d", e.From, e.To)
}
