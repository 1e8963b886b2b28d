package token

import "testing"

func TestLedgerTransferFromAndBack(t *testing.T) {
	l := NewLedger()
	l.Mint(1, 500)

	if !l.TransferFrom(1, 200) {
		t.Fatal("pull into custody refused")
	}
	if l.BalanceOf(1) != 300 || l.Custody() != 200 {
		t.Fatalf("balance=%d custody=%d, want 300/200", l.BalanceOf(1), l.Custody())
	}

	if !l.Transfer(2, 150) {
		t.Fatal("payout refused")
	}
	if l.BalanceOf(2) != 150 || l.Custody() != 50 {
		t.Fatalf("balance=%d custody=%d, want 150/50", l.BalanceOf(2), l.Custody())
	}
}

func TestLedgerRefusesOverdraft(t *testing.T) {
	l := NewLedger()
	l.Mint(1, 100)

	if l.TransferFrom(1, 101) {
		t.Error("pull above balance must fail")
	}
	if l.Transfer(1, 1) {
		t.Error("payout from empty custody must fail")
	}
	if l.TransferFrom(2, 1) {
		t.Error("pull from unknown owner must fail")
	}
	if l.BalanceOf(1) != 100 || l.Custody() != 0 {
		t.Error("failed transfers must not move funds")
	}
}

func TestLedgerRefusesZeroAmount(t *testing.T) {
	l := NewLedger()
	l.Mint(1, 100)
	l.TransferFrom(1, 50)

	if l.TransferFrom(1, 0) || l.Transfer(1, 0) {
		t.Error("zero-amount transfers must be refused")
	}
}

func TestSinkAcceptsEverything(t *testing.T) {
	var s Sink
	if !s.Transfer(1, 1<<60) || !s.TransferFrom(2, 1<<60) {
		t.Error("sink must accept any transfer")
	}
	if s.BalanceOf(1) != 0 {
		t.Error("sink holds no balances")
	}
}
