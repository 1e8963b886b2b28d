package market

import (
	"errors"
	"testing"
)

// Lend 900 quote to bob against his 100 base collateral order, then have
// carol take the lending order. The position must be written off and 100
// base seized from bob's deposit.
func TestTakeLiquidatesPositions(t *testing.T) {
	m, quote, base := newTestMarket()

	lend, _, _ := m.Deposit(alice, 1800, 9*WAD, true)
	coll, _, _ := m.Deposit(bob, 100, 8*WAD, false)
	if _, err := m.Borrow(bob, lend, 900); err != nil {
		t.Fatalf("borrow: %v", err)
	}

	out, paid, err := m.Take(carol, lend, 900)
	if err != nil {
		t.Fatalf("take: %v", err)
	}
	if out != 900 || paid != 100 {
		t.Fatalf("out=%d paid=%d, want 900/100", out, paid)
	}

	if m.LivePositions() != 0 {
		t.Error("position should be written off")
	}
	if m.state.Order(coll).Live() {
		t.Error("collateral order should be fully seized")
	}
	if q := m.state.Order(lend).Quantity; q != 900 {
		t.Errorf("lend order quantity = %d, want 900", q)
	}

	// Bob keeps the borrowed quote; his seized base stays in custody.
	if got := quote.BalanceOf(bob); got != seed+900 {
		t.Errorf("borrower quote = %d, want +900", got)
	}
	if got := base.Custody(); got != 100 {
		t.Errorf("custody base = %d, want the seized 100", got)
	}
}

// Even a 1-unit take writes off every position in full.
func TestPartialTakeLiquidatesInFull(t *testing.T) {
	m, _, _ := newTestMarket()

	lend, _, _ := m.Deposit(alice, 1800, 9*WAD, true)
	m.Deposit(bob, 100, 8*WAD, false)
	if _, err := m.Borrow(bob, lend, 450); err != nil {
		t.Fatalf("borrow: %v", err)
	}

	if _, _, err := m.Take(carol, lend, 1); err != nil {
		t.Fatalf("take: %v", err)
	}
	if m.LivePositions() != 0 {
		t.Error("partial take must still liquidate in full")
	}
	if m.Available(lend) != 1799 {
		t.Errorf("available = %d, want 1799", m.Available(lend))
	}
}

// Seizure walks the borrower's deposit slots in order, draining each
// collateral-side order before moving to the next.
func TestLiquidationSeizesAcrossOrders(t *testing.T) {
	m, _, _ := newTestMarket()

	lend, _, _ := m.Deposit(alice, 1800, 9*WAD, true)
	coll1, _, _ := m.Deposit(bob, 60, 8*WAD, false)
	coll2, _, _ := m.Deposit(bob, 50, 7*WAD, false)
	if _, err := m.Borrow(bob, lend, 900); err != nil {
		t.Fatalf("borrow: %v", err)
	}

	if _, _, err := m.Take(carol, lend, 900); err != nil {
		t.Fatalf("take: %v", err)
	}

	// 100 base owed: 60 from the first slot, 40 from the second.
	if m.state.Order(coll1).Live() {
		t.Error("first collateral order should be drained")
	}
	if q := m.state.Order(coll2).Quantity; q != 10 {
		t.Errorf("second collateral order = %d, want 10", q)
	}
}

// Same-side deposits are never collateral and must survive liquidation.
func TestLiquidationSkipsSameSideOrders(t *testing.T) {
	m, _, _ := newTestMarket()

	lend, _, _ := m.Deposit(alice, 1800, 9*WAD, true)
	own, _, _ := m.Deposit(bob, 500, 8*WAD, true)
	m.Deposit(bob, 100, 8*WAD, false)
	if _, err := m.Borrow(bob, lend, 900); err != nil {
		t.Fatalf("borrow: %v", err)
	}

	if _, _, err := m.Take(carol, lend, 900); err != nil {
		t.Fatalf("take: %v", err)
	}
	if q := m.state.Order(own).Quantity; q != 500 {
		t.Errorf("same-side order touched by seizure: %d", q)
	}
}

// Collateral orders may themselves have lent assets out. That portion sits
// with its own borrowers, so seizure must spare it and spill over to the
// next deposit slot.
func TestSeizureSparesLentOutBalance(t *testing.T) {
	m, _, _ := newTestMarket()
	dave := uint64(4)
	mintBoth(m, dave)

	lend, _, _ := m.Deposit(alice, 1000, 9*WAD, true)
	collX, _, _ := m.Deposit(bob, 120, 8*WAD, false)
	collY, _, _ := m.Deposit(bob, 100, 7*WAD, false)

	// Carol borrows 80 of collX's base; bob then pledges his base for a
	// 900 quote loan needing 100 base of cover.
	m.Deposit(carol, 1000, WAD, true)
	if _, err := m.Borrow(carol, collX, 80); err != nil {
		t.Fatalf("carol borrow: %v", err)
	}
	if _, err := m.Borrow(bob, lend, 900); err != nil {
		t.Fatalf("bob borrow: %v", err)
	}

	if _, _, err := m.Take(dave, lend, 100); err != nil {
		t.Fatalf("take: %v", err)
	}

	// collX had only 40 free (80 of its 120 lent to carol): 40 seized
	// there, the remaining 60 from collY.
	if q := m.state.Order(collX).Quantity; q != 80 {
		t.Errorf("collX quantity = %d, want 80", q)
	}
	if q := m.state.Order(collY).Quantity; q != 40 {
		t.Errorf("collY quantity = %d, want 40", q)
	}

	// collX is now exactly backing carol's loan: nothing available, and
	// an oversized take must reject instead of wrapping past the balance.
	if avail := m.Available(collX); avail != 0 {
		t.Fatalf("collX available = %d, want 0", avail)
	}
	if _, _, err := m.Take(dave, collX, 1_000_000); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("take of fully lent order: got %v", err)
	}
	if _, err := m.Withdraw(bob, collX, 80); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("withdraw of fully lent order: got %v", err)
	}
}

// If the borrower's collateral was itself taken away first, liquidation
// cannot cover the debt and the whole take must roll back.
func TestLiquidationShortfallAbortsTake(t *testing.T) {
	m, _, _ := newTestMarket()

	lend, _, _ := m.Deposit(alice, 1800, 9*WAD, true)
	coll, _, _ := m.Deposit(bob, 100, 8*WAD, false)
	if _, err := m.Borrow(bob, lend, 900); err != nil {
		t.Fatalf("borrow: %v", err)
	}

	// Carol takes bob's collateral order outright; nothing borrows from it,
	// so the take is legal even though it strands the loan.
	if _, _, err := m.Take(carol, coll, 100); err != nil {
		t.Fatalf("collateral take: %v", err)
	}

	_, _, err := m.Take(carol, lend, 1)
	if !errors.Is(err, ErrLiquidationShortfall) {
		t.Fatalf("expected shortfall, got %v", err)
	}

	// Rollback: order and position untouched.
	if q := m.state.Order(lend).Quantity; q != 1800 {
		t.Errorf("lend quantity = %d, want 1800 after rollback", q)
	}
	if m.LivePositions() != 1 {
		t.Errorf("live positions = %d, want 1 after rollback", m.LivePositions())
	}
	pid, ok := m.state.findPosition(bob, lend)
	if !ok || m.state.Position(pid).Borrowed != 900 {
		t.Error("position principal must survive the aborted take")
	}
}
