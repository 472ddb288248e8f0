package offheap

// Addressable is the capability contract giving index-based access to
// (header, payload) records, independent of the backing representation.
// The sorter depends on this interface exclusively, which also allows
// testing it against a plain in-memory store.
//
// All index arguments must lie in [0, Size()) and all payload buffers
// must have length exactly PayloadLength(). Implementations enforce
// these preconditions before touching memory and panic with a typed
// error value (*IndexError, *SizeError, or ErrClosed) on violation,
// the same way Go slice indexing treats misuse. A violation surfaced
// mid-sort is fatal to the sort; there is no retry and no
// partial-result guarantee once mutation has begun.
//
// No operation blocks, performs I/O, or has side effects beyond the
// addressed slot.
type Addressable interface {
	// Size returns the total slot count, fixed for the store's lifetime.
	Size() int

	// PayloadLength returns the fixed payload length in bytes.
	PayloadLength() int

	// Header returns the 64-bit signed sort key at index.
	Header(index int) int64

	// Payload copies the payload at index into dst, which must have
	// length PayloadLength().
	Payload(index int, dst []byte)

	// Set overwrites both header and payload at index. The two halves
	// are always written together; no operation updates one half
	// independently.
	Set(index int, header int64, payload []byte)
}
