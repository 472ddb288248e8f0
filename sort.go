package offheap

// The dual-pivot quicksort below is adapted from the Dual-Pivot Quicksort
// algorithm by Vladimir Yaroslavskiy, Jon Bentley, and Joshua Bloch. It
// offers O(n log(n)) performance on many data sets that cause other
// quicksorts to degrade to quadratic performance, and is typically faster
// than traditional (one-pivot) quicksort implementations.
//
// The adaptation sorts (header, payload) records through the Addressable
// contract: every comparison reads only headers, and every relocation
// moves the full record, carrying the payload through a small fixed set
// of scratch buffers allocated once per top-level call.

// insertionSortThreshold is the range length below which insertion sort
// is used in preference to quicksort.
const insertionSortThreshold = 32

// Sort sorts the entire store into ascending header order.
func Sort(a Addressable) error {
	return SortRange(a, 0, a.Size())
}

// SortRange sorts the range [fromIndex, toIndex) of the store into
// ascending header order. If fromIndex == toIndex, the range to be
// sorted is empty (and the call is a no-op).
//
// The range is validated before any mutation: the store is guaranteed
// unmodified if SortRange returns an error. It returns *IndexError if
// fromIndex < 0 or toIndex > a.Size(), and *RangeError if
// fromIndex > toIndex.
func SortRange(a Addressable, fromIndex, toIndex int) error {
	size := a.Size()
	if fromIndex < 0 {
		return &IndexError{Index: fromIndex, Size: size}
	}
	if toIndex > size {
		return &IndexError{Index: toIndex, Size: size}
	}
	if fromIndex > toIndex {
		return &RangeError{From: fromIndex, To: toIndex}
	}
	if fromIndex == toIndex {
		return nil
	}

	// One scratch allocation per invocation; the recursion below only
	// reuses these buffers. Keeping them call-scoped (never package
	// state) is what makes concurrent sorts of independent stores safe.
	n := a.PayloadLength()
	doSort(a, fromIndex, toIndex-1,
		make([]byte, n), make([]byte, n), make([]byte, n), make([]byte, n),
		make([]byte, n), make([]byte, n), make([]byte, n))
	return nil
}

// doSort sorts the inclusive range [left, right]. It does no range
// checking; pi..pe5 are the seven scratch payload buffers threaded
// through the recursion.
func doSort(a Addressable, left, right int, pi, pj, pe1, pe2, pe3, pe4, pe5 []byte) {
	if right-left+1 < insertionSortThreshold {
		// Insertion sort on tiny ranges: hold the record in scratch,
		// shift larger-keyed predecessors right, drop it in place.
		for i := left + 1; i <= right; i++ {
			ai := a.Header(i)
			a.Payload(i, pi)
			j := i - 1
			for ; j >= left && ai < a.Header(j); j-- {
				a.Payload(j, pj)
				a.Set(j+1, a.Header(j), pj)
			}
			a.Set(j+1, ai, pi)
		}
		return
	}
	dualPivotQuicksort(a, left, right, pi, pj, pe1, pe2, pe3, pe4, pe5)
}

func dualPivotQuicksort(a Addressable, left, right int, pi, pj, pe1, pe2, pe3, pe4, pe5 []byte) {
	// Compute indices of five evenly spaced elements.
	sixth := (right - left + 1) / 6
	e1 := left + sixth
	e5 := right - sixth
	e3 := int(uint(left+right) >> 1) // the midpoint
	e4 := e3 + sixth
	e2 := e3 - sixth

	// Sort these elements using a 9-comparison sorting network. Each
	// exchange swaps header and payload buffer together so the pairs
	// stay coupled.
	ae1, ae2, ae3, ae4, ae5 := a.Header(e1), a.Header(e2), a.Header(e3), a.Header(e4), a.Header(e5)
	a.Payload(e1, pe1)
	a.Payload(e2, pe2)
	a.Payload(e3, pe3)
	a.Payload(e4, pe4)
	a.Payload(e5, pe5)

	if ae1 > ae2 {
		ae1, ae2 = ae2, ae1
		pe1, pe2 = pe2, pe1
	}
	if ae4 > ae5 {
		ae4, ae5 = ae5, ae4
		pe4, pe5 = pe5, pe4
	}
	if ae1 > ae3 {
		ae1, ae3 = ae3, ae1
		pe1, pe3 = pe3, pe1
	}
	if ae2 > ae3 {
		ae2, ae3 = ae3, ae2
		pe2, pe3 = pe3, pe2
	}
	if ae1 > ae4 {
		ae1, ae4 = ae4, ae1
		pe1, pe4 = pe4, pe1
	}
	if ae3 > ae4 {
		ae3, ae4 = ae4, ae3
		pe3, pe4 = pe4, pe3
	}
	if ae2 > ae5 {
		ae2, ae5 = ae5, ae2
		pe2, pe5 = pe5, pe2
	}
	if ae2 > ae3 {
		ae2, ae3 = ae3, ae2
		pe2, pe3 = pe3, pe2
	}
	if ae4 > ae5 {
		ae4, ae5 = ae5, ae4
		pe4, pe5 = pe5, pe4
	}

	a.Set(e1, ae1, pe1)
	a.Set(e3, ae3, pe3)
	a.Set(e5, ae5, pe5)

	// Use the second and fourth of the five sorted elements as pivots.
	// These values are inexpensive approximations of the first and
	// second terciles of the range. Note that pivot1 <= pivot2.
	//
	// The pivot records are held in (pivot1, pe2) and (pivot2, pe4);
	// the first and last records of the range are moved into the
	// locations formerly occupied by the pivots so the partition scan
	// can overwrite them safely. When partitioning is complete, the
	// pivots are swapped back into their final positions, and excluded
	// from subsequent sorting.
	a.Payload(left, pe1)
	pivot1 := ae2
	a.Set(e2, a.Header(left), pe1)
	a.Payload(right, pe1)
	pivot2 := ae4
	a.Set(e4, a.Header(right), pe1)

	// Pointers
	less := left + 1   // the index of the first element of the center part
	great := right - 1 // the index before the first element of the right part

	pivotsDiffer := pivot1 != pivot2

	if pivotsDiffer {
		// Partitioning:
		//
		//   left part         center part                    right part
		// +------------------------------------------------------------+
		// | < pivot1  |  pivot1 <= && <= pivot2  |    ?    |  > pivot2 |
		// +------------------------------------------------------------+
		//              ^                          ^       ^
		//              |                          |       |
		//             less                        k     great
		//
		// Invariants:
		//
		//              all in (left, less)   < pivot1
		//    pivot1 <= all in [less, k)     <= pivot2
		//              all in (great, right) > pivot2
		//
		// Pointer k is the first index of the ?-part.
	outer:
		for k := less; k <= great; k++ {
			ak := a.Header(k)
			a.Payload(k, pe1)
			if ak < pivot1 { // move a[k] to the left part
				if k != less {
					a.Payload(less, pe3)
					a.Set(k, a.Header(less), pe3)
					a.Set(less, ak, pe1)
				}
				less++
			} else if ak > pivot2 { // move a[k] to the right part
				for a.Header(great) > pivot2 {
					if great == k {
						great--
						break outer
					}
					great--
				}
				if a.Header(great) < pivot1 {
					a.Payload(less, pe3)
					a.Set(k, a.Header(less), pe3)
					a.Payload(great, pe3)
					a.Set(less, a.Header(great), pe3)
					less++
					a.Set(great, ak, pe1)
					great--
				} else { // pivot1 <= a[great] <= pivot2
					a.Payload(great, pe3)
					a.Set(k, a.Header(great), pe3)
					a.Set(great, ak, pe1)
					great--
				}
			}
		}
	} else { // pivots are equal
		// Partition degenerates to the traditional 3-way,
		// or "Dutch National Flag", partition:
		//
		//   left part   center part            right part
		// +----------------------------------------------+
		// |  < pivot  |  == pivot  |    ?    |  > pivot  |
		// +----------------------------------------------+
		//              ^            ^       ^
		//              |            |       |
		//             less          k     great
		//
		// Invariants:
		//
		//   all in (left, less)   < pivot
		//   all in [less, k)     == pivot
		//   all in (great, right) > pivot
		//
		// Pointer k is the first index of the ?-part.
		for k := less; k <= great; k++ {
			ak := a.Header(k)
			a.Payload(k, pe1)
			if ak == pivot1 {
				continue
			}
			if ak < pivot1 { // move a[k] to the left part
				if k != less {
					a.Payload(less, pe3)
					a.Set(k, a.Header(less), pe3)
					a.Set(less, ak, pe1)
				}
				less++
			} else { // a[k] > pivot1 - move a[k] to the right part
				// We know that pivot1 == a[e3] == pivot2. Thus, we know
				// that great will still be >= k when the following loop
				// terminates, even though we don't test for it explicitly.
				// In other words, a[e3] acts as a sentinel for great.
				for a.Header(great) > pivot1 {
					great--
				}
				if a.Header(great) < pivot1 {
					a.Payload(less, pe3)
					a.Set(k, a.Header(less), pe3)
					a.Payload(great, pe3)
					a.Set(less, a.Header(great), pe3)
					less++
					a.Set(great, ak, pe1)
					great--
				} else { // a[great] == pivot1
					// a[great] is pivot-valued but carries its own
					// payload; it must travel to k intact.
					a.Payload(great, pj)
					a.Set(k, pivot1, pj)
					a.Set(great, ak, pe1)
					great--
				}
			}
		}
	}

	// Swap pivots into their final positions.
	a.Payload(less-1, pe1)
	a.Set(left, a.Header(less-1), pe1)
	a.Set(less-1, pivot1, pe2)
	a.Payload(great+1, pe1)
	a.Set(right, a.Header(great+1), pe1)
	a.Set(great+1, pivot2, pe4)

	// Sort left and right parts recursively, excluding known pivot values.
	doSort(a, left, less-2, pi, pj, pe1, pe2, pe3, pe4, pe5)
	doSort(a, great+2, right, pi, pj, pe1, pe2, pe3, pe4, pe5)

	// If pivot1 == pivot2, all elements from the center
	// part are equal and, therefore, already sorted.
	if !pivotsDiffer {
		return
	}

	// If the center part is too large (comprises > 2/3 of the range),
	// swap internal pivot-valued records to the ends.
	if less < e1 && great > e5 {
		for a.Header(less) == pivot1 {
			less++
		}
		for a.Header(great) == pivot2 {
			great--
		}

		// Partitioning:
		//
		//   left part       center part                   right part
		// +----------------------------------------------------------+
		// | == pivot1 |  pivot1 < && < pivot2  |    ?    | == pivot2 |
		// +----------------------------------------------------------+
		//              ^                        ^       ^
		//              |                        |       |
		//             less                      k     great
		//
		// Invariants:
		//
		//              all in (*, less)  == pivot1
		//     pivot1 < all in [less, k)   < pivot2
		//              all in (great, *) == pivot2
		//
		// Pointer k is the first index of the ?-part.
	stripOuter:
		for k := less; k <= great; k++ {
			ak := a.Header(k)
			a.Payload(k, pe1)
			if ak == pivot2 { // move a[k] to the right part
				for a.Header(great) == pivot2 {
					if great == k {
						great--
						break stripOuter
					}
					great--
				}
				if a.Header(great) == pivot1 {
					a.Payload(less, pe3)
					a.Set(k, a.Header(less), pe3)
					a.Payload(great, pj)
					a.Set(less, pivot1, pj)
					less++
				} else { // pivot1 < a[great] < pivot2
					a.Payload(great, pe3)
					a.Set(k, a.Header(great), pe3)
				}
				a.Set(great, ak, pe1)
				great--
			} else if ak == pivot1 { // move a[k] to the left part
				a.Payload(less, pe3)
				a.Set(k, a.Header(less), pe3)
				a.Set(less, ak, pe1)
				less++
			}
		}
	}

	// Sort the center part recursively, excluding known pivot values.
	doSort(a, less, great, pi, pj, pe1, pe2, pe3, pe4, pe5)
}
