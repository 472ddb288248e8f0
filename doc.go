// Package offheap provides a fixed-slot record store backed by anonymous
// off-heap memory, plus an in-place sort over it.
//
// Each record pairs a 64-bit signed sort key (the header) with an opaque
// fixed-length byte payload. Records are addressed by a dense integer
// index; header and payload stay physically coupled through any
// reordering.
//
// # Quick Start
//
//	store, _ := offheap.New(1_000_000, 16)
//	defer store.Close()
//
//	payload := make([]byte, 16)
//	binary.LittleEndian.PutUint64(payload, someValue)
//	store.Set(0, someKey, payload)
//	// ... fill remaining slots ...
//
//	_ = offheap.Sort(store)
//
// # Design
//
// The sorter depends only on the Addressable contract, never on the
// concrete store. A single sort invocation allocates a handful of scratch
// payload buffers up front and performs no further allocation while it
// recurses; independent stores can therefore be sorted concurrently from
// separate goroutines.
//
// The store's backing region lives outside the Go heap (anonymous mmap),
// so millions of small records add no GC scan pressure. Capacity and
// payload length are fixed at construction; there is no insert or delete,
// only positional overwrite.
package offheap
