package market

// Slot scanning primitives shared by every fixed-capacity index in the
// ledger (user deposit slots, user borrow slots, order position slots).
// Linear scan is a deliberate trade-off at these capacities; callers must
// not assume better than O(capacity).

// findSlot returns the index of the first slot holding want for which live
// reports true, or -1 when no live slot matches.
func findSlot[T ~uint64](slots []T, want T, live func(T) bool) int {
	for i, id := range slots {
		if id == want && live(id) {
			return i
		}
	}
	return -1
}

// freeSlot returns the index of the first slot whose referent is not live
// (including the zero sentinel), or -1 when the table is full.
func freeSlot[T ~uint64](slots []T, live func(T) bool) int {
	for i, id := range slots {
		if id == 0 || !live(id) {
			return i
		}
	}
	return -1
}
