package market

import "testing"

func TestFindSlotSkipsDeadReferents(t *testing.T) {
	slots := []OrderID{3, 7, 3}
	live := func(id OrderID) bool { return id == 7 }

	if i := findSlot(slots, 3, live); i != -1 {
		t.Errorf("dead referent matched at slot %d", i)
	}
	if i := findSlot(slots, 7, live); i != 1 {
		t.Errorf("expected slot 1, got %d", i)
	}
}

func TestFreeSlotPrefersFirstDead(t *testing.T) {
	slots := []OrderID{5, 0, 9}
	live := func(id OrderID) bool { return id == 5 || id == 9 }

	if i := freeSlot(slots, live); i != 1 {
		t.Errorf("expected slot 1, got %d", i)
	}

	// A dead referent counts as free even when nonzero.
	live = func(id OrderID) bool { return id == 9 }
	if i := freeSlot(slots, live); i != 0 {
		t.Errorf("expected slot 0, got %d", i)
	}
}

func TestFreeSlotFullTable(t *testing.T) {
	slots := []OrderID{1, 2, 3}
	live := func(OrderID) bool { return true }

	if i := freeSlot(slots, live); i != -1 {
		t.Errorf("expected no free slot, got %d", i)
	}
}
