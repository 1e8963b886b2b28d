package token

import "sync"

// Ledger is an in-memory Token. It backs the demo wiring in cmd/server and
// the conservation tests; a deployment substitutes the real asset adapter.
type Ledger struct {
	mu       sync.Mutex
	balances map[uint64]uint64
	custody  uint64 // market custody, kept separate from owner balances
}

// NewLedger returns an empty token ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[uint64]uint64)}
}

// Mint credits an owner out of thin air. Test and bootstrap helper.
func (l *Ledger) Mint(owner, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[owner] += amount
}

// Transfer pays out of custody.
func (l *Ledger) Transfer(to uint64, amount uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount == 0 || l.custody < amount {
		return false
	}
	l.custody -= amount
	l.balances[to] += amount
	return true
}

// TransferFrom pulls an owner's funds into custody.
func (l *Ledger) TransferFrom(from uint64, amount uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount == 0 || l.balances[from] < amount {
		return false
	}
	l.balances[from] -= amount
	l.custody += amount
	return true
}

// BalanceOf reports an owner's balance.
func (l *Ledger) BalanceOf(owner uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[owner]
}

// Custody reports the market's holdings of this asset.
func (l *Ledger) Custody() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.custody
}
