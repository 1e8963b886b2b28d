// Package token defines the external transfer capability the market depends
// on, one instance per asset of the pair. The market never inspects token
// internals: it invokes transfers as the final step of an operation, and any
// failed transfer aborts (and rolls back) that whole operation.
package token

// Token moves one asset between owners and the market's custody.
// All three calls are invoked only with amount > 0.
type Token interface {
	// Transfer pays amount out of the market's custody to an owner.
	// A false return means the transfer did not happen.
	Transfer(to uint64, amount uint64) bool

	// TransferFrom pulls amount from an owner into the market's custody.
	TransferFrom(from uint64, amount uint64) bool

	// BalanceOf reports an owner's current balance.
	BalanceOf(owner uint64) uint64
}

// Sink accepts every transfer and holds no balances. Journal replay runs
// against it: replayed operations settled their transfers when they first
// executed, so replay must re-apply ledger effects only.
type Sink struct{}

func (Sink) Transfer(uint64, uint64) bool     { return true }
func (Sink) TransferFrom(uint64, uint64) bool { return true }
func (Sink) BalanceOf(uint64) uint64          { return 0 }
