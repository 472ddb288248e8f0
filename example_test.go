package offheap_test

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/hupe1980/offheap"
)

func Example() {
	// Three slots, each holding an 8-byte header and a 4-byte payload.
	store, err := offheap.New(3, 4)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Populate out of order; each payload encodes its own header value.
	payload := make([]byte, 4)
	for i, h := range []int64{44, 42, 43} {
		binary.LittleEndian.PutUint32(payload, uint32(h))
		store.Set(i, h, payload)
	}

	if err := offheap.Sort(store); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < store.Size(); i++ {
		store.Payload(i, payload)
		fmt.Println(store.Header(i), binary.LittleEndian.Uint32(payload))
	}
	// Output:
	// 42 42
	// 43 43
	// 44 44
}

func ExampleSortRange() {
	store, err := offheap.New(5, 2)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	for i, h := range []int64{9, 5, 3, 1, 0} {
		store.Set(i, h, []byte{byte(h), 0})
	}

	// Sort only the middle three slots.
	if err := offheap.SortRange(store, 1, 4); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < store.Size(); i++ {
		fmt.Print(store.Header(i), " ")
	}
	// Output:
	// 9 1 3 5 0
}
